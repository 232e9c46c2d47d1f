package report

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"

	"github.com/user/plant_plotter_go/internal/analysis"
)

const (
	inchToMm               = 25.4
	pdfPageWidthLandscape  = 11 * inchToMm // Letter landscape
	pdfPageHeightLandscape = 8.5 * inchToMm
	pdfMargin              = 0.5 * inchToMm
	pdfContentWidth        = pdfPageWidthLandscape - (2 * pdfMargin)
)

// pdfStyler holds reusable styling and the flowing Y position of a page.
type pdfStyler struct {
	pdf         *gofpdf.Fpdf
	styles      map[string]func()
	lineHeight  float64
	currentY    float64
	pageHeight  float64
	contentTopY float64
}

func newPDFStyler(pdf *gofpdf.Fpdf) *pdfStyler {
	s := &pdfStyler{
		pdf:         pdf,
		styles:      make(map[string]func()),
		lineHeight:  6, // mm
		pageHeight:  pdfPageHeightLandscape - pdfMargin,
		contentTopY: pdfMargin,
	}
	s.currentY = s.contentTopY
	s.defineStyles()
	return s
}

func (s *pdfStyler) defineStyles() {
	s.styles["h1"] = func() {
		s.pdf.SetFont("Arial", "B", 16)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["normal"] = func() {
		s.pdf.SetFont("Arial", "", 10)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableHeader"] = func() {
		s.pdf.SetFont("Arial", "B", 9)
		s.pdf.SetFillColor(200, 200, 200)
		s.pdf.SetTextColor(0, 0, 0)
	}
	s.styles["tableCell"] = func() {
		s.pdf.SetFont("Arial", "", 9)
		s.pdf.SetTextColor(50, 50, 50)
	}
}

func (s *pdfStyler) applyStyle(styleName string) {
	if fn, ok := s.styles[styleName]; ok {
		fn()
	} else {
		s.styles["normal"]()
	}
}

func (s *pdfStyler) checkAddPage(neededHeight float64) {
	if s.currentY+neededHeight > s.pageHeight {
		s.pdf.AddPage()
		s.currentY = s.contentTopY
	}
}

func (s *pdfStyler) writeParagraph(text string, styleName string, align string) {
	s.applyStyle(styleName)
	s.checkAddPage(s.lineHeight)
	s.pdf.SetXY(pdfMargin, s.currentY)
	s.pdf.MultiCell(pdfContentWidth, s.lineHeight, text, "", align, false)
	s.currentY = s.pdf.GetY() + 1
}

func (s *pdfStyler) addSpacer(height float64) {
	s.checkAddPage(height)
	s.currentY += height
}

func (s *pdfStyler) addImage(imageBytes []byte, imageName string, width float64, height float64) {
	s.pdf.RegisterImageOptionsReader(imageName, gofpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(imageBytes))
	s.checkAddPage(height)
	x := pdfMargin + (pdfContentWidth-width)/2
	s.pdf.ImageOptions(imageName, x, s.currentY, width, height, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	s.currentY += height
}

func (s *pdfStyler) writeTable(headers []string, colWidthsRel []float64, rows [][]string) {
	colWidthsAbs := make([]float64, len(colWidthsRel))
	for i, rel := range colWidthsRel {
		colWidthsAbs[i] = rel * pdfContentWidth
	}
	s.checkAddPage(s.lineHeight * float64(len(rows)+1))

	sX := pdfMargin
	s.applyStyle("tableHeader")
	for i, header := range headers {
		s.pdf.SetXY(sX, s.currentY)
		s.pdf.CellFormat(colWidthsAbs[i], s.lineHeight, header, "1", 0, "C", true, 0, "")
		sX += colWidthsAbs[i]
	}
	s.currentY += s.lineHeight

	s.applyStyle("tableCell")
	for _, row := range rows {
		s.checkAddPage(s.lineHeight)
		sX = pdfMargin
		for i, cell := range row {
			s.pdf.SetXY(sX, s.currentY)
			s.pdf.CellFormat(colWidthsAbs[i], s.lineHeight, cell, "1", 0, "C", false, 0, "")
			sX += colWidthsAbs[i]
		}
		s.currentY += s.lineHeight
	}
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.3f", v)
}

// BuildPDFReport writes the chart and the per-series summary to a landscape
// Letter PDF at path.
func BuildPDFReport(path string, source string, summary *analysis.Summary, chartPNG []byte) error {
	if summary == nil {
		return errors.New("no summary to report")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "cannot create directory for %s", path)
	}

	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()

	styler := newPDFStyler(pdf)
	styler.writeParagraph(ChartTitle, "h1", "C")
	styler.writeParagraph(fmt.Sprintf("Source: %s (%d time steps)", source, summary.Steps), "normal", "C")
	styler.addSpacer(2)

	if len(chartPNG) > 0 {
		imgWidth := pdfContentWidth * 0.7
		imgHeight := imgWidth * float64(FigureHeight/FigureWidth)
		styler.addImage(chartPNG, "chart", imgWidth, imgHeight)
		styler.addSpacer(3)
	} else {
		styler.writeParagraph("Chart not available.", "normal", "L")
	}

	rows := make([][]string, 0, 3)
	for _, st := range summary.Stats() {
		rows = append(rows, []string{
			st.Name,
			formatStat(st.Min),
			formatStat(st.Max),
			formatStat(st.Mean),
			formatStat(st.StdDev),
			formatStat(st.Final),
		})
	}
	styler.writeTable(
		[]string{"Series", "Min", "Max", "Mean", "Std Dev", "Final"},
		[]float64{0.3, 0.14, 0.14, 0.14, 0.14, 0.14},
		rows,
	)
	styler.addSpacer(2)

	tr := summary.Tracking
	styler.writeParagraph(fmt.Sprintf("Height tracking error: mean |e| %s m, RMS %s m, max |e| %s m, final %s m",
		formatStat(tr.MeanAbsError), formatStat(tr.RMSError), formatStat(tr.MaxAbsError), formatStat(tr.FinalError)),
		"normal", "L")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return errors.Wrapf(err, "failed to write PDF %s", path)
	}
	return nil
}
