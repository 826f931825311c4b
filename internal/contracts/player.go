package contracts

import "time"

// PlayerRecord is one row of the canonical dataset
// ⭐ SSOT: S0 → S1 선수 레코드
type PlayerRecord struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	PhotoURL           string  `json:"photo_url"`
	FlagURL            string  `json:"flag_url"`
	Age                int     `json:"age"`
	Nationality        string  `json:"nationality"`
	Position           string  `json:"position"`  // 포지션 코드 (ST, CB, ...)
	Overall            int     `json:"overall"`   // 0 ~ 100
	Potential          int     `json:"potential"` // 0 ~ 100
	ContractValidUntil int     `json:"contract_valid_until"`
	MarketValue        float64 `json:"market_value"` // £
	Wage               float64 `json:"wage"`         // £ / week
	Club               string  `json:"club"`
}

// PotentialGap returns Potential − Overall
func (p *PlayerRecord) PotentialGap() int {
	return p.Potential - p.Overall
}

// Dataset is the canonical record set held for a session
// Records are sorted by Overall descending; ties keep source order
type Dataset struct {
	Records     []PlayerRecord `json:"records"`
	CurrentYear int            `json:"current_year"`
	LoadedAt    time.Time      `json:"loaded_at"`
	Report      LoadReport     `json:"report"`
}

// Count returns the number of canonical records
func (d *Dataset) Count() int {
	return len(d.Records)
}

// Exclusion reasons reported by the loader
const (
	ExcludedContractExpired = "contract_expired"
	ExcludedNoMarketValue   = "no_market_value"
	ExcludedMalformed       = "malformed"
)

// LoadReport summarizes one dataset load
type LoadReport struct {
	Source   string         `json:"source"`
	Total    int            `json:"total"`
	Eligible int            `json:"eligible"`
	Excluded map[string]int `json:"excluded"` // 제외 사유: 건수
}

// ExcludedCount returns the number of rows dropped for any reason
func (r *LoadReport) ExcludedCount() int {
	n := 0
	for _, c := range r.Excluded {
		n += c
	}
	return n
}

// Outcomes flattens the report into outcome → row count (metrics labels)
func (r *LoadReport) Outcomes() map[string]int {
	out := map[string]int{
		"total":    r.Total,
		"eligible": r.Eligible,
	}
	for _, reason := range []string{ExcludedContractExpired, ExcludedNoMarketValue, ExcludedMalformed} {
		out[reason] = r.Excluded[reason]
	}
	return out
}
