package contracts

import (
	"strconv"
	"strings"
)

// AllValue is the sentinel that disables a filter dimension
const AllValue = "All"

// FilterCriteria selects a view of the canonical dataset
// ⭐ SSOT: S1 필터 조건 (각 차원은 "All" 또는 정확한 값)
type FilterCriteria struct {
	Position    string `json:"position"`
	Nationality string `json:"nationality"`
	Age         string `json:"age"`
}

// IsAll reports whether a criterion value means "no filter"
func IsAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, AllValue)
}

// PositionActive reports whether the position dimension filters
func (c FilterCriteria) PositionActive() bool { return !IsAll(c.Position) }

// NationalityActive reports whether the nationality dimension filters
func (c FilterCriteria) NationalityActive() bool { return !IsAll(c.Nationality) }

// AgeActive reports whether the age dimension filters
func (c FilterCriteria) AgeActive() bool { return !IsAll(c.Age) }

// AgeValue returns the numeric age criterion
func (c FilterCriteria) AgeValue() (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(c.Age))
	if err != nil {
		return 0, &ValidationError{Field: "age", Message: "must be an integer or " + AllValue}
	}
	return age, nil
}

// IsEmpty reports whether no dimension is active
func (c FilterCriteria) IsEmpty() bool {
	return !c.PositionActive() && !c.NationalityActive() && !c.AgeActive()
}

// FilterOptions lists the selectable values of each filter dimension, "All" first
type FilterOptions struct {
	Positions     []string `json:"positions"`     // 빈도 내림차순
	Nationalities []string `json:"nationalities"` // 오름차순
	Ages          []string `json:"ages"`          // 숫자 오름차순
}

// Overview holds the summary metrics of a view
type Overview struct {
	NationalityCount int  `json:"nationality_count"`
	PlayerCount      int  `json:"player_count"` // distinct player IDs
	Empty            bool `json:"empty"`
}

// ScatterPoint is one marker of a two-axis chart
type ScatterPoint struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Club string  `json:"club,omitempty"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Size float64 `json:"size,omitempty"`
}
