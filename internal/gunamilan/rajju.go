// internal/gunamilan/rajju.go
package gunamilan

import "fmt"

type RajjuDoshaResult struct {
	MaleNakshatra   Nakshatra     `json:"maleNakshatra"`
	FemaleNakshatra Nakshatra     `json:"femaleNakshatra"`
	MaleRajju       RajjuGroup    `json:"maleRajju"`
	FemaleRajju     RajjuGroup    `json:"femaleRajju"`
	HasDosha        bool          `json:"hasDosha"`
	Narrative       LocalizedText `json:"narrative"`
}

var rajjuHindiNames = [numRajjuGroups]string{"पाद", "कटि", "नाभि", "कंठ", "शिर"}

// Traditional consequence of a shared rajju, per body zone.
var rajjuEffects = [numRajjuGroups]LocalizedText{
	{En: "this is associated with frequent travel and separation", Hi: "यह बार-बार यात्रा और वियोग का संकेत है"},
	{En: "this is associated with financial hardship", Hi: "यह आर्थिक कठिनाइयों का संकेत है"},
	{En: "this is associated with concerns about progeny", Hi: "यह संतान संबंधी चिंताओं का संकेत है"},
	{En: "this is associated with the health of the bride", Hi: "यह वधू के स्वास्थ्य के लिए अशुभ माना जाता है"},
	{En: "this is associated with the longevity of the groom", Hi: "यह वर की आयु के लिए अशुभ माना जाता है"},
}

func EvaluateRajju(male, female Nakshatra) RajjuDoshaResult {
	a, b := male.Rajju(), female.Rajju()
	r := RajjuDoshaResult{
		MaleNakshatra:   male,
		FemaleNakshatra: female,
		MaleRajju:       a,
		FemaleRajju:     b,
		HasDosha:        a == b,
	}

	if r.HasDosha {
		effect := rajjuEffects[a]
		r.Narrative = LocalizedText{
			En: fmt.Sprintf("Rajju dosha is present: both %s and %s belong to %s rajju, and %s. Remedies are recommended.",
				male, female, a, effect.En),
			Hi: fmt.Sprintf("रज्जु दोष उपस्थित है: दोनों नक्षत्र %s रज्जु में आते हैं, %s। उपाय करने की सलाह दी जाती है।",
				rajjuHindiNames[a], effect.Hi),
		}
		return r
	}

	r.Narrative = LocalizedText{
		En: fmt.Sprintf("No Rajju dosha: %s falls in %s rajju and %s in %s rajju.", male, a, female, b),
		Hi: fmt.Sprintf("रज्जु दोष नहीं है: वर का नक्षत्र %s रज्जु में और वधू का नक्षत्र %s रज्जु में है।",
			rajjuHindiNames[a], rajjuHindiNames[b]),
	}
	return r
}
