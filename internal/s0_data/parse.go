package s0_data

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wonny/scout/backend/internal/contracts"
)

// parseNumber accepts integers and float notations ("2026.0", "1.075E8")
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parseWhole accepts a number that has no fractional part
func parseWhole(s string) (int64, bool) {
	v, ok := parseNumber(s)
	if !ok || v != math.Trunc(v) {
		return 0, false
	}
	return int64(v), true
}

// rowVerdict is the outcome of parsing one row
type rowVerdict struct {
	record contracts.PlayerRecord
	reason string // "" = eligible
}

// parseRow converts a RawRow and applies the eligibility rules
// 계약 만료/시장가치 ≤ 0 (또는 비어 있음) 은 제외, 그 외 숫자 오류는 malformed
func parseRow(row contracts.RawRow, currentYear int) rowVerdict {
	var (
		rec contracts.PlayerRecord
		ok  bool
		n   int64
	)

	if rec.ID, ok = parseWhole(row[ColID]); !ok {
		return rowVerdict{reason: contracts.ExcludedMalformed}
	}
	if n, ok = parseWhole(row[ColAge]); !ok || n < 0 {
		return rowVerdict{reason: contracts.ExcludedMalformed}
	}
	rec.Age = int(n)
	if n, ok = parseWhole(row[ColOverall]); !ok {
		return rowVerdict{reason: contracts.ExcludedMalformed}
	}
	rec.Overall = int(n)
	if n, ok = parseWhole(row[ColPotential]); !ok {
		return rowVerdict{reason: contracts.ExcludedMalformed}
	}
	rec.Potential = int(n)
	if rec.Wage, ok = parseNumber(row[ColWage]); !ok {
		return rowVerdict{reason: contracts.ExcludedMalformed}
	}

	rec.Name = row[ColName]
	rec.Nationality = row[ColNationality]
	rec.Position = row[ColPosition]
	rec.Club = row[ColClub]
	rec.PhotoURL = row[ColPhoto]
	rec.FlagURL = row[ColFlag]

	// 빈 값은 비교 불가 → 제외
	contract, ok := parseNumber(row[ColContract])
	if !ok || int(contract) < currentYear {
		return rowVerdict{reason: contracts.ExcludedContractExpired}
	}
	rec.ContractValidUntil = int(contract)

	value, ok := parseNumber(row[ColValue])
	if !ok || value <= 0 {
		return rowVerdict{reason: contracts.ExcludedNoMarketValue}
	}
	rec.MarketValue = value

	return rowVerdict{record: rec}
}

// headerError reports missing required columns
func headerError(source string, missing []string) error {
	return fmt.Errorf("%w: %s: missing columns %s",
		contracts.ErrDataUnavailable, source, strings.Join(missing, ", "))
}
