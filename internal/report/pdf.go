package report

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"
)

// BuildPDF renders the trail lines as a single fixed-pitch A4 page.
func BuildPDF(lines []string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Courier", "", 12)
	pdf.AddPage()

	pdf.Cell(0, 8, "Service Load Calculation")
	pdf.Ln(10)
	for _, line := range lines {
		pdf.Cell(0, 6, tr(line))
		pdf.Ln(6)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
