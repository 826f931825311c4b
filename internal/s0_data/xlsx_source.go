package s0_data

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/wonny/scout/backend/internal/contracts"
)

// XLSXSource reads the dataset from an Excel workbook
type XLSXSource struct {
	path  string
	sheet string // empty = first sheet
}

// NewXLSXSource creates a new workbook source
func NewXLSXSource(path, sheet string) *XLSXSource {
	return &XLSXSource{path: path, sheet: sheet}
}

// Name returns the source label used in logs and the load report
func (s *XLSXSource) Name() string {
	return "xlsx:" + s.path
}

// Read streams the sheet rows; the first row is the header
func (s *XLSXSource) Read(ctx context.Context) ([]contracts.RawRow, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.ErrDataUnavailable, err)
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: %s: workbook has no sheets", contracts.ErrDataUnavailable, s.Name())
		}
		sheet = sheets[0]
	}

	it, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: sheet %q: %v", contracts.ErrDataUnavailable, s.Name(), sheet, err)
	}
	defer it.Close()

	var (
		idx  map[string]int
		rows []contracts.RawRow
	)
	for n := 0; it.Next(); n++ {
		if n%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		cells, err := it.Columns()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: row %d: %v", contracts.ErrDataUnavailable, s.Name(), n+1, err)
		}

		if idx == nil {
			idx = indexHeader(cells)
			if missing := missingColumns(idx); len(missing) > 0 {
				return nil, headerError(s.Name(), missing)
			}
			continue
		}
		if isBlank(cells) {
			continue
		}
		rows = append(rows, rowFromCells(idx, cells))
	}
	if err := it.Error(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", contracts.ErrDataUnavailable, s.Name(), err)
	}
	if idx == nil {
		return nil, fmt.Errorf("%w: %s: sheet %q is empty", contracts.ErrDataUnavailable, s.Name(), sheet)
	}

	return rows, nil
}
