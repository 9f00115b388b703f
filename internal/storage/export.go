// ABOUTME: Export and import functionality for HRV data.
// ABOUTME: Supports JSON and YAML export of sessions and morning tests.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/vinprj/hrmconnect/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for HRV data.
type ExportData struct {
	Version      string                      `json:"version" yaml:"version"`
	ExportedAt   time.Time                   `json:"exported_at" yaml:"exported_at"`
	Tool         string                      `json:"tool" yaml:"tool"`
	Sessions     []*models.Session           `json:"sessions" yaml:"sessions"`
	MorningTests []*models.MorningTestResult `json:"morning_tests" yaml:"morning_tests"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	sessions, err := d.ListSessions(0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	tests, err := d.ListMorningTests(0)
	if err != nil {
		return nil, fmt.Errorf("list morning tests: %w", err)
	}

	return &ExportData{
		Version:      "1.0",
		ExportedAt:   time.Now(),
		Tool:         "hrm",
		Sessions:     sessions,
		MorningTests: tests,
	}, nil
}

// ImportData imports data from an export file.
func (d *DB) ImportData(data *ExportData) error {
	for _, s := range data.Sessions {
		if err := d.CreateSession(s); err != nil {
			return fmt.Errorf("import session: %w", err)
		}
	}
	for _, m := range data.MorningTests {
		if err := d.CreateMorningTest(m); err != nil {
			return fmt.Errorf("import morning test: %w", err)
		}
	}
	return nil
}

// ExportJSON exports all repository data as JSON.
func ExportJSON(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all repository data as YAML. The raw series are
// elided in favor of the computed stats, keeping the output
// human-readable.
func ExportYAML(repo Repository) ([]byte, error) {
	data, err := repo.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version      string            `yaml:"version"`
		ExportedAt   string            `yaml:"exported_at"`
		Tool         string            `yaml:"tool"`
		Sessions     []yamlSession     `yaml:"sessions"`
		MorningTests []yamlMorningTest `yaml:"morning_tests"`
	}{
		Version:      data.Version,
		ExportedAt:   data.ExportedAt.Format(time.RFC3339),
		Tool:         data.Tool,
		Sessions:     make([]yamlSession, 0, len(data.Sessions)),
		MorningTests: make([]yamlMorningTest, 0, len(data.MorningTests)),
	}

	for _, s := range data.Sessions {
		ys := yamlSession{
			ID:              s.ID.String()[:8],
			StartTime:       s.StartTime.Format(time.RFC3339),
			EndTime:         s.EndTime.Format(time.RFC3339),
			DurationSeconds: s.Stats.DurationSeconds,
			AvgHR:           s.Stats.AvgHR,
			SDNN:            s.Stats.SDNN,
			RMSSD:           s.Stats.RMSSD,
			PNN50:           s.Advanced.PNN50,
			StressIndex:     s.Advanced.StressIndex,
			LFHFRatio:       s.Advanced.LFHFRatio,
			RespirationRate: s.Advanced.RespirationRate,
		}
		if s.Notes != nil {
			ys.Notes = *s.Notes
		}
		yamlData.Sessions = append(yamlData.Sessions, ys)
	}

	for _, m := range data.MorningTests {
		yamlData.MorningTests = append(yamlData.MorningTests, yamlMorningTest{
			ID:             m.ID.String()[:8],
			Timestamp:      m.Timestamp.Format(time.RFC3339),
			LyingAvgHR:     m.LyingAvgHR,
			StandingAvgHR:  m.StandingAvgHR,
			HRDelta:        m.HRDelta,
			LyingRMSSD:     m.LyingRMSSD,
			StandingRMSSD:  m.StandingRMSSD,
			ReadinessScore: m.ReadinessScore,
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlSession struct {
	ID              string  `yaml:"id"`
	StartTime       string  `yaml:"start_time"`
	EndTime         string  `yaml:"end_time"`
	DurationSeconds int     `yaml:"duration_seconds"`
	AvgHR           int     `yaml:"avg_hr"`
	SDNN            int     `yaml:"sdnn"`
	RMSSD           int     `yaml:"rmssd"`
	PNN50           float64 `yaml:"pnn50"`
	StressIndex     int     `yaml:"stress_index"`
	LFHFRatio       float64 `yaml:"lf_hf_ratio"`
	RespirationRate int     `yaml:"respiration_rate"`
	Notes           string  `yaml:"notes,omitempty"`
}

type yamlMorningTest struct {
	ID             string  `yaml:"id"`
	Timestamp      string  `yaml:"timestamp"`
	LyingAvgHR     float64 `yaml:"lying_avg_hr"`
	StandingAvgHR  float64 `yaml:"standing_avg_hr"`
	HRDelta        float64 `yaml:"hr_delta"`
	LyingRMSSD     float64 `yaml:"lying_rmssd"`
	StandingRMSSD  float64 `yaml:"standing_rmssd"`
	ReadinessScore int     `yaml:"readiness_score"`
}

// ImportJSON imports data from JSON bytes into the repository.
func ImportJSON(repo Repository, data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return repo.ImportData(&exportData)
}
