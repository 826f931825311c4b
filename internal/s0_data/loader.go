package s0_data

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/wonny/scout/backend/internal/contracts"
	"github.com/wonny/scout/backend/pkg/logger"
)

// Loader builds the canonical dataset from a record source
// ⭐ SSOT: S0 정제 규칙 (계약 유효, 시장가치 > 0, Overall 내림차순)
type Loader struct {
	source      contracts.RecordSource
	currentYear int              // 0 = now().Year()
	now         func() time.Time // injectable clock
	logger      *logger.Logger
}

// NewLoader creates a new Loader; currentYear 0 means the wall clock year
func NewLoader(source contracts.RecordSource, currentYear int, log *logger.Logger) *Loader {
	return &Loader{
		source:      source,
		currentYear: currentYear,
		now:         time.Now,
		logger:      log.Component("s0_data"),
	}
}

// WithClock replaces the clock used to derive the current year
func (l *Loader) WithClock(now func() time.Time) *Loader {
	l.now = now
	return l
}

// CurrentYear returns the year contracts are compared against
func (l *Loader) CurrentYear() int {
	if l.currentYear > 0 {
		return l.currentYear
	}
	return l.now().Year()
}

// Source returns the underlying record source
func (l *Loader) Source() contracts.RecordSource {
	return l.source
}

// Load reads the source and returns the canonical dataset
// Returns ErrDataUnavailable when the source fails or no row survives
func (l *Loader) Load(ctx context.Context) (*contracts.Dataset, error) {
	start := time.Now()
	year := l.CurrentYear()

	raw, err := l.source.Read(ctx)
	if err != nil {
		if !errors.Is(err, contracts.ErrDataUnavailable) && ctx.Err() == nil {
			err = fmt.Errorf("%w: %v", contracts.ErrDataUnavailable, err)
		}
		return nil, fmt.Errorf("read %s: %w", l.source.Name(), err)
	}

	records, report := Canonicalize(raw, year)
	report.Source = l.source.Name()

	l.logger.WithFields(map[string]interface{}{
		"source":           report.Source,
		"current_year":     year,
		"total":            report.Total,
		"eligible":         report.Eligible,
		"contract_expired": report.Excluded[contracts.ExcludedContractExpired],
		"no_market_value":  report.Excluded[contracts.ExcludedNoMarketValue],
		"malformed":        report.Excluded[contracts.ExcludedMalformed],
		"duration":         time.Since(start),
	}).Info("Dataset loaded")

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: no eligible rows (%d read)",
			contracts.ErrDataUnavailable, report.Source, report.Total)
	}

	return &contracts.Dataset{
		Records:     records,
		CurrentYear: year,
		LoadedAt:    l.now(),
		Report:      report,
	}, nil
}

// Canonicalize applies the eligibility rules and the Overall ordering to raw rows
func Canonicalize(raw []contracts.RawRow, currentYear int) ([]contracts.PlayerRecord, contracts.LoadReport) {
	report := contracts.LoadReport{
		Total:    len(raw),
		Excluded: make(map[string]int),
	}

	records := make([]contracts.PlayerRecord, 0, len(raw))
	for _, row := range raw {
		v := parseRow(row, currentYear)
		if v.reason != "" {
			report.Excluded[v.reason]++
			continue
		}
		records = append(records, v.record)
	}
	report.Eligible = len(records)

	// 동점은 원본 순서 유지
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Overall > records[j].Overall
	})

	return records, report
}
