package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"milletsurvey/internal/catalog"
	"milletsurvey/internal/model"
	"milletsurvey/internal/repository"
)

// ReportService renders the printable field report: a summary of totals per
// ward followed by one detail section per ward listing every response's
// answered questions grouped by questionnaire section.
type ReportService struct {
	responseRepo repository.ResponseRepo
	catalog      *catalog.Catalog
}

// NewReportService creates a new report service
func NewReportService(responseRepo repository.ResponseRepo, cat *catalog.Catalog) *ReportService {
	return &ReportService{
		responseRepo: responseRepo,
		catalog:      cat,
	}
}

// ExportPDF builds the full report document over all persisted responses.
func (s *ReportService) ExportPDF(ctx context.Context) ([]byte, error) {
	responses, err := s.responseRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading responses for report: %w", err)
	}

	wards := GeographicCounts(responses)
	byWard := map[string][]*model.SurveyResponse{}
	for _, r := range responses {
		ward := r.Ward
		if ward == "" {
			ward = "Unknown"
		}
		byWard[ward] = append(byWard[ward], r)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Field Survey Report", false)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Finger Millet Field Survey Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%d responses collected", len(responses)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Summary table of totals per ward
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Responses by Location", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 240, 235)
	pdf.CellFormat(120, 7, "Ward", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 7, "Responses", "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, ward := range wards {
		pdf.CellFormat(120, 7, ward.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, strconv.Itoa(ward.Count), "1", 1, "R", false, 0, "")
	}

	// Detail pages, one block per ward
	for _, ward := range wards {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 9, "Ward: "+ward.Name, "", 1, "L", false, 0, "")

		for _, r := range byWard[ward.Name] {
			pdf.Ln(3)
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 7, fmt.Sprintf("%s  (%s)", r.FarmerID, r.Date.Format("2 Jan 2006")), "B", 1, "L", false, 0, "")
			s.writeResponse(pdf, r)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering report pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// writeResponse lists one response's answered questions grouped by section,
// preserving catalog order.
func (s *ReportService) writeResponse(pdf *gofpdf.Fpdf, r *model.SurveyResponse) {
	var currentSection model.Section
	for _, q := range s.catalog.Questions() {
		if q.Type == model.QuestionTypeInfo {
			continue
		}
		if _, answered := r.Answers[q.ID]; !answered {
			continue
		}

		if q.Section != currentSection {
			currentSection = q.Section
			pdf.SetFont("Helvetica", "B", 9)
			pdf.SetTextColor(20, 90, 60)
			pdf.CellFormat(0, 6, string(q.Section), "", 1, "L", false, 0, "")
			pdf.SetTextColor(0, 0, 0)
		}

		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, q.Text(model.LanguageEnglish), "", "L", false)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, "    "+formatAnswer(q, r.Answers), "", "L", false)
	}
}

// formatAnswer renders a stored answer value as report text, resolving
// option values back to their display labels.
func formatAnswer(q model.Question, answers model.AnswerMap) string {
	switch q.Type {
	case model.QuestionTypeCheckbox:
		values := answers.List(q.ID)
		if len(values) == 0 {
			return "-"
		}
		out := ""
		for i, v := range values {
			if i > 0 {
				out += "; "
			}
			out += q.OptionLabel(v, model.LanguageEnglish)
		}
		return out
	case model.QuestionTypeRadio:
		return q.OptionLabel(answers.String(q.ID), model.LanguageEnglish)
	case model.QuestionTypeCounter, model.QuestionTypeNumber:
		return strconv.FormatFloat(answers.Number(q.ID), 'f', -1, 64)
	case model.QuestionTypeLikert:
		if v := answers.String(q.ID); v != "" {
			return v + " / 5"
		}
		return "-"
	default:
		if v := answers.String(q.ID); v != "" {
			return v
		}
		return "-"
	}
}
