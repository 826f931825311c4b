package contracts

import "testing"

func TestFilterCriteria_Active(t *testing.T) {
	tests := []struct {
		name     string
		criteria FilterCriteria
		empty    bool
	}{
		{"zero value", FilterCriteria{}, true},
		{"all sentinel", FilterCriteria{Position: "All", Nationality: "all", Age: " All "}, true},
		{"position only", FilterCriteria{Position: "ST"}, false},
		{"age only", FilterCriteria{Age: "21"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.criteria.IsEmpty(); got != tt.empty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.empty)
			}
		})
	}
}

func TestFilterCriteria_AgeValue(t *testing.T) {
	age, err := FilterCriteria{Age: "23"}.AgeValue()
	if err != nil || age != 23 {
		t.Fatalf("AgeValue() = %d, %v", age, err)
	}

	_, err = FilterCriteria{Age: "twenty"}.AgeValue()
	if !IsValidationError(err) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}

func TestTaxonomy_Index(t *testing.T) {
	idx := DefaultTaxonomy().Index()

	tests := map[string]string{
		"GK":  "Goalkeepers",
		"RCB": "Defenders",
		"LDM": "Midfielders",
		"LF":  "Attackers",
	}
	for code, want := range tests {
		if got := idx[code]; got != want {
			t.Errorf("Index()[%s] = %q, want %q", code, got, want)
		}
	}

	// Wing backs are not part of the default taxonomy
	if _, ok := idx["LWB"]; ok {
		t.Error("LWB must not be classified")
	}
}

func TestLoadReport_Outcomes(t *testing.T) {
	r := LoadReport{
		Total:    10,
		Eligible: 6,
		Excluded: map[string]int{ExcludedContractExpired: 3, ExcludedMalformed: 1},
	}

	if got := r.ExcludedCount(); got != 4 {
		t.Errorf("ExcludedCount() = %d, want 4", got)
	}

	out := r.Outcomes()
	if out["total"] != 10 || out["eligible"] != 6 || out[ExcludedNoMarketValue] != 0 {
		t.Errorf("Outcomes() = %v", out)
	}
}

func TestStage_ShortName(t *testing.T) {
	for i, s := range AllStages() {
		want := "S" + string(rune('0'+i))
		if got := s.ShortName(); got != want {
			t.Errorf("%s.ShortName() = %s, want %s", s, got, want)
		}
		if !IsValidStage(string(s)) {
			t.Errorf("IsValidStage(%s) = false", s)
		}
	}
}
