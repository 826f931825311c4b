package stats

// Fences holds the Tukey outlier bounds of a sample
type Fences struct {
	Q1    float64 `json:"q1"`
	Q3    float64 `json:"q3"`
	IQR   float64 `json:"iqr"`
	Lower float64 `json:"lower"` // Q1 − 1.5·IQR
	Upper float64 `json:"upper"` // Q3 + 1.5·IQR
}

// TukeyK is the fence multiplier
const TukeyK = 1.5

// TukeyFences computes quartiles and fences; values need not be sorted
func TukeyFences(values []float64) Fences {
	sorted := Sorted(values)
	q1 := Quantile(sorted, 0.25)
	q3 := Quantile(sorted, 0.75)
	iqr := q3 - q1
	return Fences{
		Q1:    q1,
		Q3:    q3,
		IQR:   iqr,
		Lower: q1 - TukeyK*iqr,
		Upper: q3 + TukeyK*iqr,
	}
}

// IsOutlier reports a value strictly outside the fences
func (f Fences) IsOutlier(v float64) bool {
	return v < f.Lower || v > f.Upper
}

// CountOutliers counts values strictly outside the Tukey fences
// The count does not depend on input order
func CountOutliers(values []float64) int {
	if len(values) == 0 {
		return 0
	}
	f := TukeyFences(values)
	n := 0
	for _, v := range values {
		if f.IsOutlier(v) {
			n++
		}
	}
	return n
}
