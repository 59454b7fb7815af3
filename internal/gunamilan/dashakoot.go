// internal/gunamilan/dashakoot.go
package gunamilan

// DashakootReport adds the informational Rajju and Vedha checks to the eight kootas.
// Neither carries points, so Total always equals the Ashtakoot total.
type DashakootReport struct {
	Kootas     []KootaResult `json:"kootas"`
	Total      float64       `json:"total"`
	MaxPoints  float64       `json:"maxPoints"`
	RajjuDosha bool          `json:"rajjuDosha"`
	Conclusion string        `json:"conclusion"`
}

func ComputeDashakoot(ashtakoot AshtakootReport, male, female AstroFact) DashakootReport {
	rajju := scoreRajju(male, female)
	vedha := scoreVedha(male, female)

	kootas := make([]KootaResult, 0, len(ashtakoot.Kootas)+2)
	kootas = append(kootas, ashtakoot.Kootas...)
	kootas = append(kootas, rajju, vedha)

	conclusion := ashtakoot.Conclusion
	if *rajju.HasDosha {
		conclusion += " Rajju dosha is present, as both nakshatras fall in the same rajju."
	}

	return DashakootReport{
		Kootas:     kootas,
		Total:      ashtakoot.Total,
		MaxPoints:  ashtakoot.MaxPoints,
		RajjuDosha: *rajju.HasDosha,
		Conclusion: conclusion,
	}
}

func scoreRajju(male, female AstroFact) KootaResult {
	a, b := male.Nakshatra.Rajju(), female.Nakshatra.Rajju()
	dosha := a == b
	return KootaResult{
		Name:     "Rajju",
		Area:     "Longevity",
		Male:     a.String(),
		Female:   b.String(),
		HasDosha: &dosha,
	}
}

// scoreVedha records the nakshatra pair only. Blocking-pair scoring is not applied.
func scoreVedha(male, female AstroFact) KootaResult {
	return KootaResult{
		Name:   "Vedha",
		Area:   "Obstruction",
		Male:   male.Nakshatra.String(),
		Female: female.Nakshatra.String(),
	}
}
