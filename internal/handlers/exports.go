package handlers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/tripfit/backend/internal/ai"
	"example.com/tripfit/backend/internal/export"
)

const (
	exportTypePlan    = "plan"
	exportTypePacking = "packing"
)

var filenameUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

type ExportRequest struct {
	Destination  string       `json:"destination"`
	StartDate    string       `json:"startDate"`
	EndDate      string       `json:"endDate"`
	NumTravelers int          `json:"numTravelers" validate:"gte=0"`
	Itinerary    ai.Itinerary `json:"itinerary"`
}

type ExportHandler struct{}

// NewExportHandler создает обработчик выгрузки маршрутов.
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// ExportPDF выгружает переданный маршрут в PDF-файл.
func (h *ExportHandler) ExportPDF(c echo.Context) error {
	req, err := bindExportRequest(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	data, err := export.ItineraryPDF(export.Document{
		Destination:  req.Destination,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		NumTravelers: req.NumTravelers,
		Itinerary:    req.Itinerary,
	})
	if err != nil {
		return serverError(c)
	}

	filename := exportFilename(req) + ".pdf"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	c.Response().Header().Set("Cache-Control", "no-store")
	return c.Blob(http.StatusOK, "application/pdf", data)
}

// ExportCSV выгружает план по дням или список вещей в CSV-файл.
func (h *ExportHandler) ExportCSV(c echo.Context) error {
	exportType := strings.ToLower(strings.TrimSpace(c.QueryParam("type")))
	if exportType == "" {
		exportType = exportTypePlan
	}
	if exportType != exportTypePlan && exportType != exportTypePacking {
		return badRequest(c, "invalid export type")
	}

	req, err := bindExportRequest(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	switch exportType {
	case exportTypePacking:
		err = writePackingCSV(writer, req.Itinerary)
	default:
		err = writePlanCSV(writer, req.Itinerary)
	}
	if err != nil {
		return serverError(c)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return serverError(c)
	}

	filename := exportFilename(req) + "-" + exportType + ".csv"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename=\""+filename+"\"")
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// bindExportRequest разбирает тело запроса; текст ошибки пригоден для ответа клиенту.
func bindExportRequest(c echo.Context) (ExportRequest, error) {
	var req ExportRequest
	if err := c.Bind(&req); err != nil {
		return req, errors.New("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, errors.New("validation failed")
	}
	if err := ai.ValidateItinerary(req.Itinerary); err != nil {
		return req, err
	}

	req.Destination = strings.TrimSpace(req.Destination)
	return req, nil
}

func writePlanCSV(writer *csv.Writer, itinerary ai.Itinerary) error {
	header := []string{
		"title",
		"day",
		"theme",
		"activity_index",
		"activity",
		"hidden_gem",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, day := range itinerary.DailyPlan {
		for i, activity := range day.Activities {
			record := []string{
				itinerary.Title,
				formatInt(day.Day),
				day.Theme,
				formatInt(i + 1),
				activity,
				day.HiddenGem,
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	return nil
}

func writePackingCSV(writer *csv.Writer, itinerary ai.Itinerary) error {
	if err := writer.Write([]string{"title", "item_index", "item"}); err != nil {
		return err
	}

	for i, item := range itinerary.PackingList {
		record := []string{
			itinerary.Title,
			formatInt(i + 1),
			item,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}

func exportFilename(req ExportRequest) string {
	name := strings.Trim(filenameUnsafe.ReplaceAllString(strings.ToLower(req.Destination), "-"), "-")
	if name == "" {
		return "itinerary"
	}
	return "itinerary-" + name
}

func formatInt(value int) string {
	return strconv.Itoa(value)
}
