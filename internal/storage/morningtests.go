// ABOUTME: Morning test CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for orthostatic tests.
package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vinprj/hrmconnect/internal/models"
)

// CreateMorningTest stores a completed orthostatic test result.
func (d *DB) CreateMorningTest(m *models.MorningTestResult) error {
	query := `
		INSERT INTO morning_tests (id, timestamp, lying_avg_hr, standing_avg_hr, hr_delta, lying_rmssd, standing_rmssd, readiness_score, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		m.ID.String(),
		m.Timestamp.Format(time.RFC3339),
		m.LyingAvgHR,
		m.StandingAvgHR,
		m.HRDelta,
		m.LyingRMSSD,
		m.StandingRMSSD,
		m.ReadinessScore,
		time.Now().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create morning test: %w", err)
	}
	return nil
}

// ListMorningTests retrieves tests sorted by Timestamp descending.
func (d *DB) ListMorningTests(limit int) ([]*models.MorningTestResult, error) {
	query := `
		SELECT id, timestamp, lying_avg_hr, standing_avg_hr, hr_delta, lying_rmssd, standing_rmssd, readiness_score
		FROM morning_tests
		ORDER BY timestamp DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list morning tests: %w", err)
	}
	defer rows.Close()

	var tests []*models.MorningTestResult
	for rows.Next() {
		var m models.MorningTestResult
		var idStr, timestamp string

		err := rows.Scan(&idStr, &timestamp, &m.LyingAvgHR, &m.StandingAvgHR,
			&m.HRDelta, &m.LyingRMSSD, &m.StandingRMSSD, &m.ReadinessScore)
		if err != nil {
			return nil, fmt.Errorf("scan morning test: %w", err)
		}

		m.ID, _ = uuid.Parse(idStr)
		m.Timestamp, _ = time.Parse(time.RFC3339, timestamp)
		tests = append(tests, &m)
	}

	return tests, rows.Err()
}

// DeleteMorningTest removes a test by ID or prefix.
func (d *DB) DeleteMorningTest(idOrPrefix string) error {
	id, err := d.resolveID("morning_tests", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete morning test: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM morning_tests WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete morning test: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete morning test: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}

	return nil
}
