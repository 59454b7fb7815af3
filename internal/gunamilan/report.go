// internal/gunamilan/report.go
package gunamilan

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Language selects the narrative variant of the final report.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// ParseLanguage maps any unsupported selector to English.
func ParseLanguage(s string) Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hi", "hin", "hindi":
		return Hindi
	default:
		return English
	}
}

// LocalizedText carries the same message in both supported languages.
type LocalizedText struct {
	En string `json:"en"`
	Hi string `json:"hi"`
}

func (t LocalizedText) In(lang Language) string {
	if lang == Hindi {
		return t.Hi
	}
	return t.En
}

type MatchMakingReport struct {
	Score      float64  `json:"score"`
	MaxPoints  float64  `json:"maxPoints"`
	Percentage float64  `json:"percentage"`
	Favorable  bool     `json:"favorable"`
	Language   Language `json:"language"`
	Conclusion string   `json:"conclusion"`
}

// ComposeReport turns the Ashtakoot total, the Rajju verdict and both Manglik flags
// into the final verdict. Favorable requires the pass mark and no Rajju dosha.
func ComposeReport(total float64, rajjuDosha, maleManglik, femaleManglik bool, lang Language) MatchMakingReport {
	lang = ParseLanguage(string(lang))
	pct := Percentage(total)
	favorable := total >= MinFavorableScore && !rajjuDosha

	var sentences []string
	score := strconv.FormatFloat(total, 'f', -1, 64)

	if lang == Hindi {
		verdict := "जो विवाह के लिए शुभ है।"
		if !favorable {
			verdict = "जो विवाह के लिए अनुकूल नहीं है।"
		}
		sentences = append(sentences, fmt.Sprintf("इस मिलान में 36 में से %s गुण (%.1f%%) मिलते हैं, %s", score, pct, verdict))
		if rajjuDosha {
			sentences = append(sentences, "रज्जु दोष उपस्थित है।")
		} else {
			sentences = append(sentences, "रज्जु दोष नहीं है।")
		}
		if total < MinFavorableScore {
			sentences = append(sentences, "गुण संख्या न्यूनतम 18 से कम है।")
		}
		sentences = append(sentences, manglikSentence(maleManglik, femaleManglik).Hi)
	} else {
		verdict := "which is favorable for marriage."
		if !favorable {
			verdict = "which is not favorable for marriage."
		}
		sentences = append(sentences, fmt.Sprintf("The couple scores %s out of 36 (%.1f%%), %s", score, pct, verdict))
		if rajjuDosha {
			sentences = append(sentences, "Rajju dosha is present.")
		} else {
			sentences = append(sentences, "There is no Rajju dosha.")
		}
		if total < MinFavorableScore {
			sentences = append(sentences, "The score is below the minimum of 18 points.")
		}
		sentences = append(sentences, manglikSentence(maleManglik, femaleManglik).En)
	}

	return MatchMakingReport{
		Score:      total,
		MaxPoints:  AshtakootMax,
		Percentage: pct,
		Favorable:  favorable,
		Language:   lang,
		Conclusion: strings.Join(sentences, " "),
	}
}

func manglikSentence(male, female bool) LocalizedText {
	switch {
	case male && female:
		return LocalizedText{
			En: "Both partners are Manglik, which neutralizes the dosha.",
			Hi: "दोनों मांगलिक हैं, जिससे दोष निष्प्रभावी हो जाता है।",
		}
	case male:
		return LocalizedText{
			En: "The male partner is Manglik and remedies are advised.",
			Hi: "वर मांगलिक है, उपाय की सलाह दी जाती है।",
		}
	case female:
		return LocalizedText{
			En: "The female partner is Manglik and remedies are advised.",
			Hi: "वधू मांगलिक है, उपाय की सलाह दी जाती है।",
		}
	default:
		return LocalizedText{
			En: "Neither partner is Manglik.",
			Hi: "कोई भी मांगलिक नहीं है।",
		}
	}
}

// Percentage of the 36-point maximum, rounded to one decimal.
func Percentage(total float64) float64 {
	return math.Round(total/AshtakootMax*1000) / 10
}
