// internal/gunamilan/ashtakoot.go
package gunamilan

// Band is the qualitative grade of an Ashtakoot total.
type Band string

const (
	BandExcellent    Band = "excellent"
	BandGood         Band = "good"
	BandAverage      Band = "average"
	BandBelowAverage Band = "below_average"
)

// MinFavorableScore is the traditional pass mark out of 36.
const MinFavorableScore = 18

type AshtakootReport struct {
	Kootas     []KootaResult `json:"kootas"`
	Total      float64       `json:"total"`
	MaxPoints  float64       `json:"maxPoints"`
	Band       Band          `json:"band"`
	Conclusion string        `json:"conclusion"`
}

var bandConclusions = map[Band]string{
	BandExcellent:    "Excellent match. The couple share a highly harmonious bond across most kootas.",
	BandGood:         "Good match. The kootas support a stable and happy union.",
	BandAverage:      "Average match. Compatibility is moderate and some areas will need mutual understanding.",
	BandBelowAverage: "Below average match. Compatibility is weak and remedies are recommended before proceeding.",
}

func ComputeAshtakoot(male, female AstroFact) AshtakootReport {
	kootas := make([]KootaResult, 0, len(AshtakootScorers))
	var total float64
	for _, score := range AshtakootScorers {
		k := score(male, female)
		total += k.Points
		kootas = append(kootas, k)
	}

	band := BandFor(total)
	return AshtakootReport{
		Kootas:     kootas,
		Total:      total,
		MaxPoints:  AshtakootMax,
		Band:       band,
		Conclusion: bandConclusions[band],
	}
}

func BandFor(total float64) Band {
	switch {
	case total >= 25:
		return BandExcellent
	case total >= MinFavorableScore:
		return BandGood
	case total >= 12:
		return BandAverage
	default:
		return BandBelowAverage
	}
}
