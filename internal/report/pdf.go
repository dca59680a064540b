package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

var paperSizes = map[string]string{
	"a4paper":     "A4",
	"a5paper":     "A5",
	"letterpaper": "Letter",
	"legalpaper":  "Legal",
}

// PaperSize maps a LaTeX paper option to the page size of the PDF report.
// Unknown options fall back to A4.
func PaperSize(latexPaper string) string {
	if size, ok := paperSizes[strings.ToLower(strings.TrimSpace(latexPaper))]; ok {
		return size
	}
	return "A4"
}

// PDFPath returns the path of the PDF that sits next to a markdown report.
func PDFPath(markdownPath string) string {
	return strings.TrimSuffix(markdownPath, filepath.Ext(markdownPath)) + ".pdf"
}

// WritePDF typesets a rendered markdown report into pdfPath in portrait.
func WritePDF(markdown []byte, pdfPath, paperSize string) error {
	renderer := mdtopdf.NewPdfRenderer("P", paperSize, pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(markdown); err != nil {
		return fmt.Errorf("renderer.Process(%s) > %w", pdfPath, err)
	}
	return nil
}
