package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"leadscore_backend/internal/scoring/repository"
	"leadscore_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ResultRow is the reporting projection of one stored score.
type ResultRow struct {
	Name                  string `json:"name"`
	Role                  string `json:"role"`
	Company               string `json:"company"`
	Intent                string `json:"intent"`
	Score                 int    `json:"score"`
	Reasoning             string `json:"reasoning"`
	RoleScore             int    `json:"-"`
	IndustryScore         int    `json:"-"`
	DataCompletenessScore int    `json:"-"`
	RuleScore             int    `json:"-"`
	AIScore               int    `json:"-"`
}

// ResultColumns is the column order of the CSV export.
var ResultColumns = []string{"name", "role", "company", "intent", "score", "reasoning"}

var xlsxColumns = []string{
	"Name", "Role", "Company", "Intent", "Score", "Reasoning",
	"Role Score", "Industry Score", "Completeness Score", "Rule Score", "AI Score",
}

// Results returns the scored leads for an existing offer.
func (s *Service) Results(ctx context.Context, offerID uuid.UUID) ([]ResultRow, error) {
	const op = "scoring.Results"
	if _, err := s.loadOffer(ctx, offerID, op); err != nil {
		return nil, err
	}

	stored, err := s.scores.ListResultsByOffer(ctx, offerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load results", err).WithOp(op)
	}

	rows := make([]ResultRow, 0, len(stored))
	for _, r := range stored {
		rows = append(rows, toResultRow(r))
	}
	return rows, nil
}

func toResultRow(r repository.Result) ResultRow {
	return ResultRow{
		Name:                  r.Name,
		Role:                  r.Role,
		Company:               r.Company,
		Intent:                r.Intent,
		Score:                 r.Total(),
		Reasoning:             r.Reasoning,
		RoleScore:             r.RoleScore,
		IndustryScore:         r.IndustryScore,
		DataCompletenessScore: r.DataCompletenessScore,
		RuleScore:             r.RuleScore,
		AIScore:               r.AIScore,
	}
}

// WriteResultsCSV writes rows with a header line in ResultColumns order.
func WriteResultsCSV(w io.Writer, rows []ResultRow) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ResultColumns); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{r.Name, r.Role, r.Company, r.Intent, strconv.Itoa(r.Score), r.Reasoning}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteResultsXLSX writes rows to a single-sheet workbook with a bold
// header row and the per-rule breakdown.
func WriteResultsXLSX(w io.Writer, rows []ResultRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Results"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, header := range xlsxColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return err
		}
	}
	lastHeader, _ := excelize.CoordinatesToCellName(len(xlsxColumns), 1)
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		return err
	}

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{
			r.Name, r.Role, r.Company, r.Intent, r.Score, r.Reasoning,
			r.RoleScore, r.IndustryScore, r.DataCompletenessScore, r.RuleScore, r.AIScore,
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	for i := range xlsxColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := 15.0
		if xlsxColumns[i] == "Reasoning" {
			width = 60
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return err
		}
	}

	return f.Write(w)
}
