package s1_view

import (
	"sort"
	"strconv"

	"github.com/wonny/scout/backend/internal/contracts"
)

// Options lists the selectable filter values of the canonical dataset
// Positions by frequency (ties by first appearance), nationalities and ages ascending
func Options(records []contracts.PlayerRecord) contracts.FilterOptions {
	type posCount struct {
		code  string
		count int
		first int
	}

	positions := make(map[string]*posCount)
	nations := make(map[string]struct{})
	ages := make(map[int]struct{})

	for i, r := range records {
		if pc, ok := positions[r.Position]; ok {
			pc.count++
		} else {
			positions[r.Position] = &posCount{code: r.Position, count: 1, first: i}
		}
		nations[r.Nationality] = struct{}{}
		ages[r.Age] = struct{}{}
	}

	ranked := make([]*posCount, 0, len(positions))
	for _, pc := range positions {
		ranked = append(ranked, pc)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].first < ranked[j].first
	})

	opts := contracts.FilterOptions{
		Positions:     make([]string, 0, len(ranked)+1),
		Nationalities: make([]string, 0, len(nations)+1),
		Ages:          make([]string, 0, len(ages)+1),
	}

	opts.Positions = append(opts.Positions, contracts.AllValue)
	for _, pc := range ranked {
		opts.Positions = append(opts.Positions, pc.code)
	}

	nationList := make([]string, 0, len(nations))
	for n := range nations {
		nationList = append(nationList, n)
	}
	sort.Strings(nationList)
	opts.Nationalities = append(opts.Nationalities, contracts.AllValue)
	opts.Nationalities = append(opts.Nationalities, nationList...)

	ageList := make([]int, 0, len(ages))
	for a := range ages {
		ageList = append(ageList, a)
	}
	sort.Ints(ageList)
	opts.Ages = append(opts.Ages, contracts.AllValue)
	for _, a := range ageList {
		opts.Ages = append(opts.Ages, strconv.Itoa(a))
	}

	return opts
}
