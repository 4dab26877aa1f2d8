package pdf

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"
)

// ConvertMarkdownToPDF converts a markdown worksheet to PDF using mdtopdf package
// The PDF file will be created next to the markdown file, with the .pdf extension
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	if err := RenderPDF(content, pdfPath); err != nil {
		return "", fmt.Errorf("RenderPDF() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

// RenderPDF writes markdown content as an A4 portrait PDF to pdfPath
func RenderPDF(content []byte, pdfPath string) error {
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return fmt.Errorf("renderer.Process() > %w", err)
	}
	slog.Default().Debug("rendered a PDF",
		slog.String("path", pdfPath),
		slog.Int("markdownBytes", len(content)),
	)
	return nil
}
