// internal/gunamilan/engine.go
package gunamilan

// EngineVersion changes whenever a scoring rule or lookup table changes, so
// reports computed under an older rule set are never reused.
const EngineVersion = "2"

// PersonInput is everything the engine needs for one person, already fetched upstream.
type PersonInput struct {
	BirthDetails map[string]interface{}   `json:"birthDetails,omitempty" yaml:"birthDetails,omitempty"`
	AstroDetails map[string]interface{}   `json:"astroDetails,omitempty" yaml:"astroDetails,omitempty"`
	Planets      []map[string]interface{} `json:"planets,omitempty" yaml:"planets,omitempty"`
	Manglik      bool                     `json:"manglik" yaml:"manglik"`
}

// PersonSummary echoes the birth details and shows the facts that were scored.
type PersonSummary struct {
	BirthDetails map[string]interface{} `json:"birthDetails,omitempty"`
	Facts        AstroFact              `json:"facts"`
	Notes        []Note                 `json:"notes,omitempty"`
}

type Result struct {
	Language    Language           `json:"language"`
	Male        PersonSummary      `json:"male"`
	Female      PersonSummary      `json:"female"`
	Ashtakoot   AshtakootReport    `json:"ashtakoot"`
	Dashakoot   DashakootReport    `json:"dashakoot"`
	Rajju       RajjuDoshaResult   `json:"rajju"`
	Papasamyam  PapasamyamResult   `json:"papasamyam"`
	Manglik     ManglikMatchResult `json:"manglik"`
	MatchMaking MatchMakingReport  `json:"matchMaking"`
}

// Evaluate runs the full matching pipeline. It is deterministic and never fails;
// unresolvable input degrades to defaults recorded in each person's Notes.
func Evaluate(male, female PersonInput, lang string) *Result {
	maleFacts, maleNotes := NormalizeFacts(male.AstroDetails)
	femaleFacts, femaleNotes := NormalizeFacts(female.AstroDetails)
	language := ParseLanguage(lang)

	ashtakoot := ComputeAshtakoot(maleFacts, femaleFacts)
	rajju := EvaluateRajju(maleFacts.Nakshatra, femaleFacts.Nakshatra)

	return &Result{
		Language: language,
		Male: PersonSummary{
			BirthDetails: male.BirthDetails,
			Facts:        maleFacts,
			Notes:        maleNotes,
		},
		Female: PersonSummary{
			BirthDetails: female.BirthDetails,
			Facts:        femaleFacts,
			Notes:        femaleNotes,
		},
		Ashtakoot:   ashtakoot,
		Dashakoot:   ComputeDashakoot(ashtakoot, maleFacts, femaleFacts),
		Rajju:       rajju,
		Papasamyam:  ComparePapasamyam(NormalizePlanets(male.Planets), NormalizePlanets(female.Planets)),
		Manglik:     EvaluateManglik(male.Manglik, female.Manglik),
		MatchMaking: ComposeReport(ashtakoot.Total, rajju.HasDosha, male.Manglik, female.Manglik, language),
	}
}
