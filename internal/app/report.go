package app

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/bft-labs/framezip/internal/domain"
)

// FormatRate renders the compression rate line. An empty run has no rate.
func FormatRate(s domain.Stats) string {
	rate, ok := s.Rate()
	if !ok {
		return "Compression rate: N/A"
	}
	return fmt.Sprintf("Compression rate: %.2f%%", rate)
}

// FormatElapsed renders the wall-clock time line.
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("Time: %.2f seconds", d.Seconds())
}

// WriteReport prints the rate and time lines.
func WriteReport(w io.Writer, s domain.Stats, elapsed time.Duration) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", FormatRate(s), FormatElapsed(elapsed))
	return err
}

// WriteFrameCSV writes one CSV row per compressed frame, with a header.
func WriteFrameCSV(w io.Writer, frames []domain.FrameResult) error {
	return gocsv.Marshal(&frames, w)
}
