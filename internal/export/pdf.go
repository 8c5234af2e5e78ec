// Package export renders the week's entries as a paginated PDF document.
package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/arifzakri/belajar/internal/planner"
)

// WritePDF renders the grouped week to w. Every weekday gets its own
// section in Monday-first order; days without entries render "No entries."
func WritePDF(w io.Writer, groups []planner.DayGroup) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Weekly Study Timetable", true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Weekly Study Timetable", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	for _, group := range groups {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 10, group.Day.String(), "", 1, "L", false, 0, "")

		if len(group.Entries) == 0 {
			pdf.SetFont("Helvetica", "I", 11)
			pdf.CellFormat(0, 7, "No entries.", "", 1, "L", false, 0, "")
			pdf.Ln(1)
			continue
		}

		for _, entry := range group.Entries {
			writeEntry(pdf, entry)
		}
		pdf.Ln(1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func writeEntry(pdf *gofpdf.Fpdf, entry planner.Entry) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Subject: "+entry.Subject, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	// Core fonts cannot render the box-drawing delimiter; show a dash.
	pdf.CellFormat(0, 6, "Time: "+planner.DisplayRange(entry.TimeRange), "", 1, "L", false, 0, "")
	if entry.HasDate() {
		pdf.CellFormat(0, 6, "Date: "+entry.Date.Format("Mon, 02 Jan 2006"), "", 1, "L", false, 0, "")
	}
	pdf.MultiCell(0, 6, "Goal: "+entry.Goal, "", "L", false)
	pdf.Ln(2)
}
