package s0_data

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/wonny/scout/backend/internal/contracts"
)

// CSVSource reads the dataset from a local CSV file
type CSVSource struct {
	path string
}

// NewCSVSource creates a new CSV file source
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Name returns the source label used in logs and the load report
func (s *CSVSource) Name() string {
	return "csv:" + s.path
}

// Read parses every row of the file
func (s *CSVSource) Read(ctx context.Context) ([]contracts.RawRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contracts.ErrDataUnavailable, err)
	}
	defer f.Close()

	return ReadCSV(ctx, s.Name(), f)
}

// ReadCSV parses a header-first CSV stream into raw rows
// ⭐ SSOT: CSV 파싱은 여기서만 (file, http 소스 공용)
func ReadCSV(ctx context.Context, source string, r io.Reader) ([]contracts.RawRow, error) {
	reader := csv.NewReader(stripBOM(r))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s: empty file", contracts.ErrDataUnavailable, source)
		}
		return nil, fmt.Errorf("%w: %s: read header: %v", contracts.ErrDataUnavailable, source, err)
	}

	idx := indexHeader(header)
	if missing := missingColumns(idx); len(missing) > 0 {
		return nil, headerError(source, missing)
	}

	var rows []contracts.RawRow
	for line := 2; ; line++ {
		if line%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: line %d: %v", contracts.ErrDataUnavailable, source, line, err)
		}
		if isBlank(cells) {
			continue
		}
		rows = append(rows, rowFromCells(idx, cells))
	}

	return rows, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// stripBOM drops a UTF-8 byte order mark from the start of r
func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if b, err := br.Peek(3); err == nil && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		_, _ = br.Discard(3)
	}
	return br
}
