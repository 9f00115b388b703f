// ABOUTME: Tests for export/import round-trips and report rendering.
// ABOUTME: Exercises JSON, YAML, Markdown, and CSV output paths.
package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/vinprj/hrmconnect/internal/models"
)

func TestExportImportJSONRoundTrip(t *testing.T) {
	src := setupTestDB(t)

	s := testSession(t, time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC))
	if err := src.CreateSession(s); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	m := models.NewMorningTestResult(52, 64, 68, 42, 78)
	if err := src.CreateMorningTest(m); err != nil {
		t.Fatalf("CreateMorningTest() error = %v", err)
	}

	data, err := ExportJSON(src)
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	dst := setupTestDB(t)
	if err := ImportJSON(dst, data); err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}

	got, err := dst.GetSession(s.ID.String())
	if err != nil {
		t.Fatalf("GetSession() after import error = %v", err)
	}
	if got.Stats.RMSSD != s.Stats.RMSSD {
		t.Errorf("RMSSD = %d, want %d", got.Stats.RMSSD, s.Stats.RMSSD)
	}

	tests, err := dst.ListMorningTests(0)
	if err != nil {
		t.Fatalf("ListMorningTests() error = %v", err)
	}
	if len(tests) != 1 || tests[0].ID != m.ID {
		t.Errorf("morning tests after import = %v, want one with ID %v", tests, m.ID)
	}
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)

	s := testSession(t, time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)).
		WithNotes("easy morning")
	if err := db.CreateSession(s); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}

	out, err := ExportYAML(db)
	if err != nil {
		t.Fatalf("ExportYAML() error = %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"tool: hrm",
		s.ID.String()[:8],
		"rmssd: 45",
		"easy morning",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("YAML output missing %q:\n%s", want, text)
		}
	}
}

func TestSessionReportMarkdown(t *testing.T) {
	s := testSession(t, time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC)).
		WithNotes("intervals day")

	out := SessionReportMarkdown(s)

	for _, want := range []string{
		"# HRV Session - 2025-06-01",
		s.ID.String()[:8],
		"| RMSSD | 45 ms |",
		"| Stress Index | 85 |",
		"Notes: intervals day",
		"RR intervals recorded: 3",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Markdown report missing %q", want)
		}
	}
}

func TestSessionReportCSV(t *testing.T) {
	s := testSession(t, time.Date(2025, 6, 1, 7, 0, 0, 0, time.UTC))

	out := SessionReportCSV(s)

	for _, want := range []string{
		"metric,value\n",
		"rmssd_ms,45\n",
		"index,rr_interval_ms\n",
		"0,950.0\n",
		"2,980.0\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("CSV report missing %q", want)
		}
	}
}
