package s0_data

import (
	"strings"
	"unicode"
)

// Dataset column keys (normalized header names)
// "Value(£)" → "value", "Contract Valid Until" / contract_valid_until → "contractvaliduntil"
const (
	ColID          = "id"
	ColName        = "name"
	ColAge         = "age"
	ColPhoto       = "photo"
	ColNationality = "nationality"
	ColFlag        = "flag"
	ColOverall     = "overall"
	ColPotential   = "potential"
	ColClub        = "club"
	ColValue       = "value"
	ColWage        = "wage"
	ColPosition    = "position"
	ColContract    = "contractvaliduntil"
)

// RequiredColumns must be present in every source header
var RequiredColumns = []string{
	ColID, ColName, ColAge, ColNationality, ColOverall, ColPotential,
	ColValue, ColWage, ColPosition, ColContract,
}

// OptionalColumns are read when present
var OptionalColumns = []string{ColPhoto, ColFlag, ColClub}

// NormalizeHeader maps a raw header to its column key
// Only ASCII letters and digits survive, so currency suffixes and separators drop out
func NormalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(h)) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// missingColumns returns the required keys absent from header
func missingColumns(header map[string]int) []string {
	var missing []string
	for _, col := range RequiredColumns {
		if _, ok := header[col]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}

// indexHeader maps column key → cell index; the first occurrence wins
func indexHeader(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := NormalizeHeader(h)
		if key == "" {
			continue // leading unnamed index column
		}
		if _, seen := idx[key]; !seen {
			idx[key] = i
		}
	}
	return idx
}

// rowFromCells builds a RawRow from one positional record
func rowFromCells(idx map[string]int, cells []string) map[string]string {
	row := make(map[string]string, len(idx))
	for key, i := range idx {
		if i < len(cells) {
			row[key] = strings.TrimSpace(cells[i])
		}
	}
	return row
}
