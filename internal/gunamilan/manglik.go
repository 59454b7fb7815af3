// internal/gunamilan/manglik.go
package gunamilan

type ManglikVerdict string

const (
	ManglikBoth   ManglikVerdict = "both"
	ManglikNone   ManglikVerdict = "none"
	ManglikMale   ManglikVerdict = "male_only"
	ManglikFemale ManglikVerdict = "female_only"
)

type ManglikMatchResult struct {
	Male       bool           `json:"male"`
	Female     bool           `json:"female"`
	Verdict    ManglikVerdict `json:"verdict"`
	Compatible bool           `json:"compatible"`
	Narrative  LocalizedText  `json:"narrative"`
}

func EvaluateManglik(male, female bool) ManglikMatchResult {
	r := ManglikMatchResult{Male: male, Female: female}
	switch {
	case male && female:
		r.Verdict = ManglikBoth
		r.Compatible = true
		r.Narrative = LocalizedText{
			En: "Both partners are Manglik, so the dosha is mutually neutralized and the match is compatible.",
			Hi: "वर और वधू दोनों मांगलिक हैं, अतः मांगलिक दोष परस्पर निष्प्रभावी हो जाता है और मिलान अनुकूल है।",
		}
	case !male && !female:
		r.Verdict = ManglikNone
		r.Compatible = true
		r.Narrative = LocalizedText{
			En: "Neither partner is Manglik. There is no Manglik dosha and the match is favorable.",
			Hi: "वर और वधू में से कोई भी मांगलिक नहीं है। मांगलिक दोष नहीं है और मिलान शुभ है।",
		}
	case male:
		r.Verdict = ManglikMale
		r.Narrative = LocalizedText{
			En: "The male partner is Manglik while the female partner is not. Remedies are recommended for the male partner.",
			Hi: "वर मांगलिक है परंतु वधू मांगलिक नहीं है। वर के लिए उपाय करने की सलाह दी जाती है।",
		}
	default:
		r.Verdict = ManglikFemale
		r.Narrative = LocalizedText{
			En: "The female partner is Manglik while the male partner is not. Remedies are recommended for the female partner.",
			Hi: "वधू मांगलिक है परंतु वर मांगलिक नहीं है। वधू के लिए उपाय करने की सलाह दी जाती है।",
		}
	}
	return r
}
