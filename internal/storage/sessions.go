// ABOUTME: Session CRUD operations for SQLite storage.
// ABOUTME: Serializes raw series and derived stats as JSON columns.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vinprj/hrmconnect/internal/models"
)

// CreateSession stores a completed session in the database.
func (d *DB) CreateSession(s *models.Session) error {
	hrData, err := json.Marshal(s.HRData)
	if err != nil {
		return fmt.Errorf("marshal hr data: %w", err)
	}
	rrIntervals, err := json.Marshal(s.RRIntervals)
	if err != nil {
		return fmt.Errorf("marshal rr intervals: %w", err)
	}
	stats, err := json.Marshal(s.Stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	advanced, err := json.Marshal(s.Advanced)
	if err != nil {
		return fmt.Errorf("marshal advanced stats: %w", err)
	}

	query := `
		INSERT INTO sessions (id, start_time, end_time, hr_data, rr_intervals, stats, advanced_stats, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = d.db.Exec(query,
		s.ID.String(),
		s.StartTime.Format(time.RFC3339),
		s.EndTime.Format(time.RFC3339),
		string(hrData),
		string(rrIntervals),
		string(stats),
		string(advanced),
		s.Notes,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

// GetSession retrieves a session by ID or ID prefix.
func (d *DB) GetSession(idOrPrefix string) (*models.Session, error) {
	id, err := d.resolveID("sessions", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, start_time, end_time, hr_data, rr_intervals, stats, advanced_stats, notes, created_at
		FROM sessions
		WHERE id = ?
	`
	row := d.db.QueryRow(query, id)
	s, err := scanSession(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("not found: %s", idOrPrefix)
		}
		return nil, err
	}
	return s, nil
}

// ListSessions retrieves sessions sorted by StartTime descending (most
// recent first).
func (d *DB) ListSessions(limit int) ([]*models.Session, error) {
	query := `
		SELECT id, start_time, end_time, hr_data, rr_intervals, stats, advanced_stats, notes, created_at
		FROM sessions
		ORDER BY start_time DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// DeleteSession removes a session by ID or prefix.
func (d *DB) DeleteSession(idOrPrefix string) error {
	id, err := d.resolveID("sessions", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}

	return nil
}

// resolveID finds the full ID from a prefix in the given table.
func (d *DB) resolveID(table, idOrPrefix string) (string, error) {
	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	// Search by prefix
	query := fmt.Sprintf(`SELECT id FROM %s WHERE id LIKE ? || '%%'`, table)
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan ID: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSession scans one row into a Session struct.
func scanSession(row rowScanner) (*models.Session, error) {
	var s models.Session
	var idStr, startTime, endTime, hrData, rrIntervals, stats, advanced, createdAt string
	var notes sql.NullString

	err := row.Scan(&idStr, &startTime, &endTime, &hrData, &rrIntervals, &stats, &advanced, &notes, &createdAt)
	if err != nil {
		return nil, err
	}

	s.ID, _ = uuid.Parse(idStr)
	s.StartTime, _ = time.Parse(time.RFC3339, startTime)
	s.EndTime, _ = time.Parse(time.RFC3339, endTime)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if notes.Valid {
		s.Notes = &notes.String
	}

	if err := json.Unmarshal([]byte(hrData), &s.HRData); err != nil {
		return nil, fmt.Errorf("unmarshal hr data: %w", err)
	}
	if err := json.Unmarshal([]byte(rrIntervals), &s.RRIntervals); err != nil {
		return nil, fmt.Errorf("unmarshal rr intervals: %w", err)
	}
	if err := json.Unmarshal([]byte(stats), &s.Stats); err != nil {
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}
	if err := json.Unmarshal([]byte(advanced), &s.Advanced); err != nil {
		return nil, fmt.Errorf("unmarshal advanced stats: %w", err)
	}

	return &s, nil
}
