// internal/gunamilan/engine_test.go
package gunamilan

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gopkg.in/yaml.v3"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ==========================
// Golden Fixture Tests
// ==========================

type goldenCase struct {
	Name   string      `yaml:"name"`
	Male   PersonInput `yaml:"male"`
	Female PersonInput `yaml:"female"`
	Expect struct {
		Points     []float64 `yaml:"points"`
		Total      float64   `yaml:"total"`
		Percentage float64   `yaml:"percentage"`
		Band       Band      `yaml:"band"`
		RajjuDosha bool      `yaml:"rajjuDosha"`
		Favorable  bool      `yaml:"favorable"`
	} `yaml:"expect"`
}

func loadGolden(t *testing.T) []goldenCase {
	t.Helper()
	data, err := os.ReadFile("testdata/golden.yaml")
	require.NoError(t, err)

	var doc struct {
		Cases []goldenCase `yaml:"cases"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	require.NotEmpty(t, doc.Cases)
	return doc.Cases
}

func TestEvaluate_Golden(t *testing.T) {
	for _, gc := range loadGolden(t) {
		t.Run(gc.Name, func(t *testing.T) {
			res := Evaluate(gc.Male, gc.Female, "en")

			points := make([]float64, 0, len(res.Ashtakoot.Kootas))
			for _, k := range res.Ashtakoot.Kootas {
				points = append(points, k.Points)
			}
			if diff := cmp.Diff(gc.Expect.Points, points); diff != "" {
				t.Errorf("koota points mismatch (-want +got):\n%s", diff)
			}

			assert.Equal(t, gc.Expect.Total, res.Ashtakoot.Total)
			assert.Equal(t, gc.Expect.Total, res.Dashakoot.Total)
			assert.Equal(t, gc.Expect.Total, res.MatchMaking.Score)
			assert.Equal(t, gc.Expect.Percentage, res.MatchMaking.Percentage)
			assert.Equal(t, gc.Expect.Band, res.Ashtakoot.Band)
			assert.Equal(t, gc.Expect.RajjuDosha, res.Rajju.HasDosha)
			assert.Equal(t, gc.Expect.RajjuDosha, res.Dashakoot.RajjuDosha)
			assert.Equal(t, gc.Expect.Favorable, res.MatchMaking.Favorable)
		})
	}
}

func TestEvaluate_IsDeterministic(t *testing.T) {
	cases := loadGolden(t)
	for _, lang := range []string{"en", "hi"} {
		first, err := json.Marshal(Evaluate(cases[1].Male, cases[1].Female, lang))
		require.NoError(t, err)
		second, err := json.Marshal(Evaluate(cases[1].Male, cases[1].Female, lang))
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestEvaluate_EmptyInputDegradesToDefaults(t *testing.T) {
	res := Evaluate(PersonInput{}, PersonInput{}, "fr")

	assert.Equal(t, English, res.Language)
	assert.Len(t, res.Male.Notes, 7)
	assert.Len(t, res.Female.Notes, 7)

	// Both default to Aries/Ashwini/Aadi: same nadi, same rajju.
	assert.Equal(t, float64(0), res.Ashtakoot.Kootas[7].Points)
	assert.True(t, res.Rajju.HasDosha)
	assert.False(t, res.MatchMaking.Favorable)
	assert.Equal(t, 0, res.Papasamyam.Male.Total)
	assert.True(t, res.Papasamyam.Balanced)
	assert.Equal(t, ManglikNone, res.Manglik.Verdict)
}

func TestEvaluate_PassesBirthDetailsThrough(t *testing.T) {
	male := PersonInput{BirthDetails: map[string]interface{}{"name": "A", "place": "Pune"}}
	female := PersonInput{BirthDetails: map[string]interface{}{"name": "B"}}

	res := Evaluate(male, female, "hi")

	assert.Equal(t, male.BirthDetails, res.Male.BirthDetails)
	assert.Equal(t, female.BirthDetails, res.Female.BirthDetails)
	assert.Equal(t, Hindi, res.MatchMaking.Language)
}

// ==========================
// Dashakoot & Rajju Tests
// ==========================

func TestDashakoot_AddsInformationalKootas(t *testing.T) {
	male, female := FactFromChart(Leo, Magha), FactFromChart(Sagittarius, Mula)
	ash := ComputeAshtakoot(male, female)
	dash := ComputeDashakoot(ash, male, female)

	require.Len(t, dash.Kootas, 10)
	assert.Equal(t, ash.Total, dash.Total)

	rajju, vedha := dash.Kootas[8], dash.Kootas[9]
	assert.Equal(t, "Rajju", rajju.Name)
	assert.Zero(t, rajju.MaxPoints)
	assert.Zero(t, rajju.Points)
	require.NotNil(t, rajju.HasDosha)
	assert.True(t, *rajju.HasDosha)

	assert.Equal(t, "Vedha", vedha.Name)
	assert.Zero(t, vedha.MaxPoints)
	assert.Zero(t, vedha.Points)
	assert.Nil(t, vedha.HasDosha)
}

func TestEvaluateRajju(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Nakshatra
		wantDosha bool
		wantGroup RajjuGroup
	}{
		{name: "both paada", a: Ashwini, b: Magha, wantDosha: true, wantGroup: Paada},
		{name: "paada and kati", a: Ashwini, b: Bharani, wantDosha: false, wantGroup: Paada},
		{name: "both shira", a: Mrigashira, b: Dhanishta, wantDosha: true, wantGroup: Shira},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRajju(tt.a, tt.b)
			assert.Equal(t, tt.wantDosha, got.HasDosha)
			assert.Equal(t, tt.wantGroup, got.MaleRajju)
			assert.NotEmpty(t, got.Narrative.En)
			assert.NotEmpty(t, got.Narrative.Hi)
			if tt.wantDosha {
				assert.Contains(t, got.Narrative.En, "Rajju dosha is present")
			} else {
				assert.Contains(t, got.Narrative.En, "No Rajju dosha")
			}
		})
	}
}

// ==========================
// Papasamyam Tests
// ==========================

func TestComputePapaScore(t *testing.T) {
	planets := []PlanetPosition{
		{Name: "Ascendant", Sign: Aries},
		{Name: "Moon", Sign: Aries},
		{Name: "Venus", Sign: Taurus},
		{Name: "Sun", Sign: Aries},
		{Name: "Mars", Sign: Cancer},
		{Name: "Saturn", Sign: Libra},
		{Name: "Rahu", Sign: Virgo},
	}

	got := ComputePapaScore(planets)

	assert.Equal(t, 3, got.Ascendant)
	assert.Equal(t, 3, got.Moon)
	assert.Equal(t, 1, got.Venus)
	assert.Equal(t, 7, got.Total)
	assert.Equal(t, []PapaContribution{
		{Planet: Sun, Ascendant: 1, Moon: 1, Venus: 1},
		{Planet: Mars, Ascendant: 1, Moon: 1, Venus: 0},
		{Planet: Saturn, Ascendant: 1, Moon: 1, Venus: 0},
		{Planet: Rahu, Ascendant: 0, Moon: 0, Venus: 0},
	}, got.Contributions)
}

func TestComputePapaScore_MissingBodiesContributeZero(t *testing.T) {
	got := ComputePapaScore([]PlanetPosition{
		{Name: "LAGNA", Sign: Leo},
		{Name: "surya", Sign: Leo},
		{Name: "mars", Sign: Scorpio},
	})

	assert.Equal(t, 2, got.Ascendant)
	assert.Equal(t, 0, got.Moon)
	assert.Equal(t, 0, got.Venus)
	assert.Equal(t, 2, got.Total)
}

func TestComparePapasamyam(t *testing.T) {
	heavy := []PlanetPosition{
		{Name: "Ascendant", Sign: Aries},
		{Name: "Moon", Sign: Aries},
		{Name: "Venus", Sign: Taurus},
		{Name: "Sun", Sign: Aries},
		{Name: "Mars", Sign: Cancer},
		{Name: "Saturn", Sign: Libra},
		{Name: "Rahu", Sign: Virgo},
	}
	light := []PlanetPosition{
		{Name: "Ascendant", Sign: Leo},
		{Name: "Sun", Sign: Leo},
		{Name: "Mars", Sign: Scorpio},
	}

	t.Run("imbalanced", func(t *testing.T) {
		got := ComparePapasamyam(heavy, nil)
		assert.Equal(t, 7, got.Difference)
		assert.False(t, got.Balanced)
		assert.Contains(t, got.Narrative.En, "groom carries the heavier load")
	})

	t.Run("balanced at the threshold", func(t *testing.T) {
		got := ComparePapasamyam(nil, light)
		assert.Equal(t, 2, got.Difference)
		assert.True(t, got.Balanced)
		assert.Contains(t, got.Narrative.En, "balanced")
	})

	t.Run("bride heavier", func(t *testing.T) {
		got := ComparePapasamyam(light, heavy)
		assert.Equal(t, 5, got.Difference)
		assert.Contains(t, got.Narrative.En, "bride carries the heavier load")
	})
}

// ==========================
// Manglik & Report Tests
// ==========================

func TestEvaluateManglik(t *testing.T) {
	tests := []struct {
		name          string
		male, female  bool
		wantVerdict   ManglikVerdict
		wantCompat    bool
		wantNarrative string
	}{
		{name: "both", male: true, female: true, wantVerdict: ManglikBoth, wantCompat: true, wantNarrative: "mutually neutralized"},
		{name: "neither", male: false, female: false, wantVerdict: ManglikNone, wantCompat: true, wantNarrative: "no Manglik dosha"},
		{name: "male only", male: true, female: false, wantVerdict: ManglikMale, wantNarrative: "for the male partner"},
		{name: "female only", male: false, female: true, wantVerdict: ManglikFemale, wantNarrative: "for the female partner"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateManglik(tt.male, tt.female)
			assert.Equal(t, tt.wantVerdict, got.Verdict)
			assert.Equal(t, tt.wantCompat, got.Compatible)
			assert.Contains(t, got.Narrative.En, tt.wantNarrative)
			assert.NotEmpty(t, got.Narrative.Hi)
		})
	}
}

func TestComposeReport(t *testing.T) {
	tests := []struct {
		name          string
		total         float64
		rajju         bool
		male, female  bool
		lang          Language
		wantPct       float64
		wantFavorable bool
		wantContains  []string
	}{
		{
			name: "favorable english", total: 27, lang: English,
			wantPct: 75, wantFavorable: true,
			wantContains: []string{"27 out of 36", "75.0%", "is favorable", "no Rajju dosha", "Neither partner is Manglik"},
		},
		{
			name: "rajju dosha overrides score", total: 30.5, rajju: true, male: true, lang: English,
			wantPct: 84.7, wantFavorable: false,
			wantContains: []string{"30.5 out of 36", "not favorable", "Rajju dosha is present", "male partner is Manglik"},
		},
		{
			name: "low score hindi", total: 17.5, female: true, lang: Hindi,
			wantPct: 48.6, wantFavorable: false,
			wantContains: []string{"17.5", "48.6%", "अनुकूल नहीं", "वधू मांगलिक"},
		},
		{
			name: "pass mark", total: 18, lang: "xx",
			wantPct: 50, wantFavorable: true,
			wantContains: []string{"18 out of 36"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeReport(tt.total, tt.rajju, tt.male, tt.female, tt.lang)
			assert.Equal(t, tt.wantPct, got.Percentage)
			assert.Equal(t, tt.wantFavorable, got.Favorable)
			assert.Equal(t, float64(36), got.MaxPoints)
			for _, s := range tt.wantContains {
				assert.Contains(t, got.Conclusion, s)
			}
		})
	}
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, Hindi, ParseLanguage("HI"))
	assert.Equal(t, Hindi, ParseLanguage(" hindi "))
	assert.Equal(t, English, ParseLanguage("en"))
	assert.Equal(t, English, ParseLanguage(""))
	assert.Equal(t, English, ParseLanguage("ta"))
}

func TestBandFor(t *testing.T) {
	assert.Equal(t, BandExcellent, BandFor(25))
	assert.Equal(t, BandGood, BandFor(24.5))
	assert.Equal(t, BandGood, BandFor(18))
	assert.Equal(t, BandAverage, BandFor(12))
	assert.Equal(t, BandBelowAverage, BandFor(11.5))
}

// ==========================
// Benchmarks
// ==========================

func BenchmarkEvaluate(b *testing.B) {
	male := PersonInput{
		AstroDetails: map[string]interface{}{"sign": "Aries", "Naksahtra": "Ashwini", "Varna": "Kshatriya", "Gan": "Dev", "Nadi": "Aadi"},
		Planets:      []map[string]interface{}{{"name": "Sun", "sign": "Aries"}, {"name": "Ascendant", "sign": "Leo"}},
	}
	female := PersonInput{
		AstroDetails: map[string]interface{}{"sign": "Taurus", "Naksahtra": "Rohini", "Varna": "Vaishya", "Gan": "Manushya", "Nadi": "Antya"},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(male, female, "en")
	}
}
