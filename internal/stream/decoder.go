// ABOUTME: NDJSON decoder for heart-rate monitor samples.
// ABOUTME: One sample per line; malformed lines are counted and skipped.
package stream

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"time"
)

// Sample is one heart-rate monitor notification. RR intervals are
// optional: not every notification carries them.
type Sample struct {
	HeartRateBPM  int       `json:"heart_rate_bpm"`
	RRIntervalsMS []float64 `json:"rr_intervals_ms,omitempty"`
	TimestampMS   int64     `json:"timestamp_ms"`
}

// Time returns the sample timestamp as a time.Time.
func (s Sample) Time() time.Time {
	return time.UnixMilli(s.TimestampMS)
}

// Decoder reads newline-delimited JSON samples from a stream.
type Decoder struct {
	scanner *bufio.Scanner
	skipped int
}

// NewDecoder wraps r in a line-oriented sample decoder.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Decoder{scanner: sc}
}

// Next returns the next valid sample. Blank and malformed lines are
// skipped. Returns io.EOF when the stream is exhausted.
func (d *Decoder) Next() (Sample, error) {
	for d.scanner.Scan() {
		line := strings.TrimSpace(d.scanner.Text())
		if line == "" {
			continue
		}

		var s Sample
		if err := json.Unmarshal([]byte(line), &s); err != nil {
			d.skipped++
			continue
		}
		if s.HeartRateBPM <= 0 {
			d.skipped++
			continue
		}
		return s, nil
	}

	if err := d.scanner.Err(); err != nil {
		return Sample{}, err
	}
	return Sample{}, io.EOF
}

// Skipped reports how many malformed or invalid lines were dropped.
func (d *Decoder) Skipped() int {
	return d.skipped
}
