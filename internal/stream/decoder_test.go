// ABOUTME: Tests for the NDJSON sample decoder.
// ABOUTME: Covers valid streams, skipping of malformed lines, and EOF.
package stream

import (
	"io"
	"strings"
	"testing"
)

func TestDecoderValidStream(t *testing.T) {
	input := `{"heart_rate_bpm":62,"rr_intervals_ms":[950.5,940.2],"timestamp_ms":1748761200000}
{"heart_rate_bpm":64,"timestamp_ms":1748761201000}
`
	d := NewDecoder(strings.NewReader(input))

	s1, err := d.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if s1.HeartRateBPM != 62 {
		t.Errorf("HeartRateBPM = %d, want 62", s1.HeartRateBPM)
	}
	if len(s1.RRIntervalsMS) != 2 || s1.RRIntervalsMS[0] != 950.5 {
		t.Errorf("RRIntervalsMS = %v, want [950.5 940.2]", s1.RRIntervalsMS)
	}
	if s1.Time().UnixMilli() != 1748761200000 {
		t.Errorf("Time() = %v, want ms 1748761200000", s1.Time())
	}

	s2, err := d.Next()
	if err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if s2.HeartRateBPM != 64 || len(s2.RRIntervalsMS) != 0 {
		t.Errorf("sample 2 = %+v, want bpm 64 without RR intervals", s2)
	}

	if _, err := d.Next(); err != io.EOF {
		t.Errorf("Next() at end = %v, want io.EOF", err)
	}
}

func TestDecoderSkipsMalformedLines(t *testing.T) {
	input := `{"heart_rate_bpm":60,"timestamp_ms":1}
not json at all
{"heart_rate_bpm":0,"timestamp_ms":2}

{"heart_rate_bpm":-5,"timestamp_ms":3}
{"heart_rate_bpm":61,"timestamp_ms":4}
`
	d := NewDecoder(strings.NewReader(input))

	var bpms []int
	for {
		s, err := d.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		bpms = append(bpms, s.HeartRateBPM)
	}

	if len(bpms) != 2 || bpms[0] != 60 || bpms[1] != 61 {
		t.Errorf("decoded bpms = %v, want [60 61]", bpms)
	}
	// Blank lines are not counted; the garbage line plus two
	// non-positive readings are.
	if d.Skipped() != 3 {
		t.Errorf("Skipped() = %d, want 3", d.Skipped())
	}
}

func TestDecoderEmptyStream(t *testing.T) {
	d := NewDecoder(strings.NewReader(""))
	if _, err := d.Next(); err != io.EOF {
		t.Errorf("Next() = %v, want io.EOF", err)
	}
	if d.Skipped() != 0 {
		t.Errorf("Skipped() = %d, want 0", d.Skipped())
	}
}
