package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/yumegusa/nekotoki/internal/stopwatch"
)

// GenerateSnapshotPDF writes a one-page timecard with the current reading.
// It is a read-only export; nothing is ever loaded back from it. Returns
// the path written.
func GenerateSnapshotPDF(dir string, now time.Time, elapsed time.Duration, state stopwatch.State) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "NekoToki Timecard")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Captured: %s", now.Format("2006-01-02 15:04:05")))
	pdf.Ln(8)

	clock, centis := FormatClock(elapsed)
	pdf.SetFont("Arial", "B", 28)
	pdf.Cell(0, 16, clock+centis)
	pdf.Ln(18)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("State: %s", state))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Elapsed: %s", FormatDuration(elapsed)))

	filename := filepath.Join(dir, fmt.Sprintf("timecard_%s.pdf", now.Format("20060102_150405")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}
	return filename, nil
}
