package s1_view

import (
	"net/url"
	"strings"

	"github.com/wonny/scout/backend/internal/contracts"
)

// Filter returns the records matching every active criterion
// ⭐ SSOT: S0 → S1 필터 (순서 보존, 빈 결과 허용)
func Filter(records []contracts.PlayerRecord, criteria contracts.FilterCriteria) ([]contracts.PlayerRecord, error) {
	var (
		age      int
		ageOn    = criteria.AgeActive()
		position = strings.TrimSpace(criteria.Position)
		nation   = strings.TrimSpace(criteria.Nationality)
	)
	if ageOn {
		v, err := criteria.AgeValue()
		if err != nil {
			return nil, err
		}
		age = v
	}

	view := make([]contracts.PlayerRecord, 0, len(records))
	for _, r := range records {
		if criteria.PositionActive() && r.Position != position {
			continue
		}
		if criteria.NationalityActive() && r.Nationality != nation {
			continue
		}
		if ageOn && r.Age != age {
			continue
		}
		view = append(view, r)
	}

	return view, nil
}

// ParseCriteria reads position, nationality and age from query values
func ParseCriteria(q url.Values) (contracts.FilterCriteria, error) {
	c := contracts.FilterCriteria{
		Position:    strings.TrimSpace(q.Get("position")),
		Nationality: strings.TrimSpace(q.Get("nationality")),
		Age:         strings.TrimSpace(q.Get("age")),
	}
	if c.AgeActive() {
		if _, err := c.AgeValue(); err != nil {
			return contracts.FilterCriteria{}, err
		}
	}
	return c, nil
}
