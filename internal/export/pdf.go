package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"example.com/tripfit/backend/internal/ai"
)

// Document описывает содержимое PDF: маршрут и необязательную шапку поездки.
type Document struct {
	Destination  string
	StartDate    string
	EndDate      string
	NumTravelers int
	Itinerary    ai.Itinerary
}

// ItineraryPDF рендерит маршрут в PDF и возвращает байты документа.
func ItineraryPDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// Header bar
	pdf.SetFillColor(255, 153, 51)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(170, 10, "TripFit", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Your journey, perfectly fitted.", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, tr(doc.Itinerary.Title), "", "L", false)

	if summary := tripSummary(doc); summary != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 116, 139)
		pdf.MultiCell(0, 6, tr(summary), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.Ln(4)

	// Seasonal advisory
	pdf.SetFillColor(255, 248, 225)
	pdf.SetDrawColor(212, 168, 67)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 7, "Seasonal Advisory", "LTR", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, tr(doc.Itinerary.SeasonalAdvice), "LBR", "L", true)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	for _, day := range doc.Itinerary.DailyPlan {
		heading := fmt.Sprintf("Day %d", day.Day)
		if theme := strings.TrimSpace(day.Theme); theme != "" {
			heading += ": " + theme
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, tr(heading), "B", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, activity := range day.Activities {
			pdf.MultiCell(0, 6, tr("- "+activity), "", "L", false)
		}
		if gem := strings.TrimSpace(day.HiddenGem); gem != "" {
			pdf.SetFont("Helvetica", "I", 10)
			pdf.MultiCell(0, 6, tr("Hidden gem: "+gem), "", "L", false)
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Packing List", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for i, item := range doc.Itinerary.PackingList {
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", i+1, item)), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render itinerary pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func tripSummary(doc Document) string {
	parts := make([]string, 0, 3)
	if destination := strings.TrimSpace(doc.Destination); destination != "" {
		parts = append(parts, destination)
	}
	if doc.StartDate != "" && doc.EndDate != "" {
		parts = append(parts, doc.StartDate+" to "+doc.EndDate)
	}
	if doc.NumTravelers > 0 {
		parts = append(parts, fmt.Sprintf("%d Travelers", doc.NumTravelers))
	}
	return strings.Join(parts, " | ")
}
