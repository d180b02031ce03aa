package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/jonathan/screenplay-agent/internal/types"
)

// Page geometry in points. Letter with screenplay margins: 1.5" left,
// 1" right/top/bottom, Courier body text.
const (
	leftMargin   = 108
	rightMargin  = 72
	topMargin    = 72
	bottomMargin = 72
	pageWidth    = 612

	characterIndent     = 158 // 2.2"
	parentheticalIndent = 130 // 1.8"
	dialogueIndent      = 94  // 1.3"
	dialogueRightInset  = 108 // 1.5"
	transitionIndent    = 288 // 4.0"

	bodyLineHeight = 14
	imageSize      = 216 // 3.0"
)

// PDFExporter renders the final screenplay document under OutputDir.
type PDFExporter struct {
	OutputDir string
}

// NewPDFExporter creates an exporter writing PDFs under outputDir.
func NewPDFExporter(outputDir string) *PDFExporter {
	return &PDFExporter{OutputDir: outputDir}
}

// Export writes the complete document and returns the PDF path. Unlike the
// generation stages, filesystem failures here are fatal: there is no
// sensible degraded output without the file.
func (e *PDFExporter) Export(title, author string, characters []types.Character, scenes []types.Scene) (string, error) {
	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(e.OutputDir, FileName(title))

	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(leftMargin, topMargin, rightMargin)
	pdf.SetAutoPageBreak(true, bottomMargin)

	writeTitlePage(pdf, title, author)
	if len(characters) > 0 {
		writeCharacterPages(pdf, characters)
	}
	writeScreenplayPages(pdf, scenes)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing pdf: %w", err)
	}
	return path, nil
}

func writeTitlePage(pdf *fpdf.Fpdf, title, author string) {
	pdf.AddPage()
	pdf.SetY(topMargin + 180)

	pdf.SetFont("Courier", "B", 14)
	pdf.MultiCell(0, 18, strings.ToUpper(title), "", "C", false)
	pdf.Ln(22)

	pdf.SetFont("Courier", "", 12)
	pdf.MultiCell(0, bodyLineHeight, "Written by", "", "C", false)
	pdf.Ln(8)
	pdf.MultiCell(0, bodyLineHeight, author, "", "C", false)
}

func writeCharacterPages(pdf *fpdf.Fpdf, characters []types.Character) {
	pdf.AddPage()
	pdf.SetFont("Courier", "B", 14)
	pdf.MultiCell(0, 18, "CHARACTER REFERENCE", "", "C", false)

	for _, c := range characters {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 22, c.Name, "", "L", false)
		pdf.Ln(8)

		if c.ImagePath != "" {
			if _, err := os.Stat(c.ImagePath); err == nil {
				pdf.ImageOptions(c.ImagePath, leftMargin, pdf.GetY(), imageSize, imageSize, true,
					fpdf.ImageOptions{ReadDpi: true}, 0, "")
				pdf.Ln(14)
			}
		}

		pdf.SetFont("Helvetica", "", 11)
		if c.Age > 0 {
			pdf.MultiCell(0, bodyLineHeight, fmt.Sprintf("Age: %d", c.Age), "", "L", false)
		}
		pdf.MultiCell(0, bodyLineHeight, fmt.Sprintf("Role: %s", titleCase(string(c.Role))), "", "L", false)
		pdf.Ln(6)

		pdf.MultiCell(0, bodyLineHeight, "Description:", "", "L", false)
		pdf.MultiCell(0, bodyLineHeight, c.Description, "", "L", false)

		if c.Arc != "" {
			pdf.Ln(6)
			pdf.MultiCell(0, bodyLineHeight, "Character Arc:", "", "L", false)
			pdf.MultiCell(0, bodyLineHeight, c.Arc, "", "L", false)
		}
	}
}

func writeScreenplayPages(pdf *fpdf.Fpdf, scenes []types.Scene) {
	pdf.AddPage()

	for _, line := range ScreenplayLines(scenes) {
		switch line.Kind {
		case LineFadeIn, LineSceneHeading:
			pdf.SetFont("Courier", "B", 12)
			pdf.SetX(leftMargin)
			pdf.MultiCell(0, bodyLineHeight, line.Text, "", "L", false)
			pdf.Ln(6)
		case LineEpisodeMarker:
			pdf.Ln(16)
			pdf.SetFont("Courier", "B", 12)
			pdf.SetX(leftMargin)
			pdf.MultiCell(0, bodyLineHeight, line.Text, "", "L", false)
			pdf.Ln(16)
		case LineAction:
			pdf.SetFont("Courier", "", 12)
			pdf.SetX(leftMargin)
			pdf.MultiCell(0, bodyLineHeight, line.Text, "", "L", false)
			pdf.Ln(6)
		case LineCharacter, LineTheEnd:
			pdf.SetFont("Courier", "", 12)
			pdf.SetX(leftMargin + characterIndent)
			pdf.MultiCell(0, bodyLineHeight, line.Text, "", "L", false)
		case LineParenthetical:
			pdf.SetFont("Courier", "", 12)
			pdf.SetX(leftMargin + parentheticalIndent)
			pdf.MultiCell(0, bodyLineHeight, line.Text, "", "L", false)
		case LineDialogue:
			pdf.SetFont("Courier", "", 12)
			pdf.SetX(leftMargin + dialogueIndent)
			width := pageWidth - (leftMargin + dialogueIndent) - rightMargin - dialogueRightInset
			pdf.MultiCell(float64(width), bodyLineHeight, line.Text, "", "L", false)
			pdf.Ln(6)
		case LineTransition, LineFadeOut:
			pdf.Ln(6)
			pdf.SetFont("Courier", "B", 12)
			pdf.SetX(leftMargin + transitionIndent)
			pdf.MultiCell(0, bodyLineHeight, line.Text, "", "L", false)
			pdf.Ln(6)
		}
	}
}

// titleCase upper-cases only the first letter, for role labels.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
