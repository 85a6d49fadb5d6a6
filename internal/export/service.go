package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"persondocs/internal/repository"
)

// Service is a tiny façade over the person repository that produces an
// XLSX snapshot of the whole catalog.
type Service struct {
	people repository.PersonRepository
	logger *slog.Logger
}

func NewService(people repository.PersonRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{people: people, logger: logger}
}

// ExportCatalogXLSX returns an XLSX workbook (as bytes) listing every
// person and their documents, one row per document. People without
// documents still get a row so the export is a complete roster.
func (s *Service) ExportCatalogXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	people, err := s.people.ListWithDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("query people: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Documents"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Person ID",
		"Person Name",
		"Document Name",
		"Category",
		"Date Uploaded",
		"Description",
		"File On Disk",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	docCount := 0
	for _, p := range people {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		if len(p.Edges.Documents) == 0 {
			write(1, p.UniqueID)
			write(2, p.DisplayName)
			row++
			continue
		}

		for _, d := range p.Edges.Documents {
			write(1, p.UniqueID)
			write(2, p.DisplayName)
			write(3, d.DocumentName)
			write(4, d.Category)
			if !d.DateUploaded.IsZero() {
				write(5, d.DateUploaded.Format("2006-01-02"))
			} else {
				write(5, "")
			}
			write(6, truncate(d.Description, 140))
			write(7, d.FilenameOnDisk)
			row++
			docCount++
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 14) // person id
	_ = f.SetColWidth(sheet, "B", "B", 24) // person name
	_ = f.SetColWidth(sheet, "C", "C", 32) // document name
	_ = f.SetColWidth(sheet, "D", "D", 18) // category
	_ = f.SetColWidth(sheet, "E", "E", 14) // date
	_ = f.SetColWidth(sheet, "F", "F", 60) // description
	_ = f.SetColWidth(sheet, "G", "G", 40) // file name

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"people", len(people),
		"documents", docCount,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
