// internal/gunamilan/koota_test.go
package gunamilan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allFacts() []AstroFact {
	facts := make([]AstroFact, 0, numSigns*numNakshatras)
	for s := Aries; s <= Pisces; s++ {
		for n := Ashwini; n <= Revati; n++ {
			facts = append(facts, FactFromChart(s, n))
		}
	}
	return facts
}

// ==========================
// Table Shape Tests
// ==========================

func TestAshtakootMaximaSumTo36(t *testing.T) {
	assert.Equal(t, 36, AshtakootMax)

	f := FactFromChart(Aries, Ashwini)
	var sum float64
	for i, score := range AshtakootScorers {
		k := score(f, f)
		assert.Equal(t, float64(i+1), k.MaxPoints, k.Name)
		sum += k.MaxPoints
	}
	assert.Equal(t, float64(36), sum)
}

func TestRajjuGroupSizes(t *testing.T) {
	counts := map[RajjuGroup]int{}
	for n := Ashwini; n <= Revati; n++ {
		counts[n.Rajju()]++
	}
	assert.Equal(t, map[RajjuGroup]int{Paada: 6, Kati: 6, Nabhi: 6, Kantha: 6, Shira: 3}, counts)
}

func TestSelfCompatibilityDiagonals(t *testing.T) {
	for y := Horse; y <= Lion; y++ {
		assert.Equal(t, float64(YoniMax), yoniMatrix[y][y], y.String())
	}
	for v := Manav; v <= Keeta; v++ {
		assert.Equal(t, float64(VashyaMax), vashyaMatrix[v][v], v.String())
	}
	for g := Dev; g <= Rakshas; g++ {
		assert.Equal(t, float64(GanaMax), ganaMatrix[g][g], g.String())
	}
}

// ==========================
// Scorer Property Tests
// ==========================

func TestAwardsNeverExceedMaximum(t *testing.T) {
	facts := allFacts()
	for _, a := range facts {
		for _, b := range facts {
			var total float64
			for _, score := range AshtakootScorers {
				k := score(a, b)
				if k.Points < 0 || k.Points > k.MaxPoints {
					t.Fatalf("%s awarded %v of %v for %v/%v", k.Name, k.Points, k.MaxPoints, a, b)
				}
				total += k.Points
			}
			if total < 0 || total > AshtakootMax {
				t.Fatalf("total %v out of range for %v/%v", total, a, b)
			}
		}
	}
}

func TestTaraIsSymmetric(t *testing.T) {
	for a := Ashwini; a <= Revati; a++ {
		for b := Ashwini; b <= Revati; b++ {
			fa, fb := FactFromChart(Aries, a), FactFromChart(Aries, b)
			require.Equal(t, ScoreTara(fa, fb).Points, ScoreTara(fb, fa).Points, "%s/%s", a, b)
		}
	}
}

func TestTara(t *testing.T) {
	tests := []struct {
		name string
		a, b Nakshatra
		want float64
	}{
		// Ashwini -> Rohini is 3 (auspicious), Rohini -> Ashwini is 24, remainder 6 (inauspicious).
		{name: "directions disagree", a: Ashwini, b: Rohini, want: 1.5},
		{name: "same nakshatra", a: Magha, b: Magha, want: 0},
		{name: "adjacent", a: Ashwini, b: Bharani, want: 1.5},
		{name: "nine apart", a: Magha, b: Mula, want: 0},
		{name: "eighteen apart", a: Ashwini, b: Mula, want: 0},
		{name: "across the wrap", a: Revati, b: Ashwini, want: 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fa, fb := FactFromChart(Aries, tt.a), FactFromChart(Aries, tt.b)
			assert.Equal(t, tt.want, ScoreTara(fa, fb).Points)
			assert.Equal(t, tt.want, ScoreTara(fb, fa).Points)
		})
	}
}

// Opposite remainders sum to 9, so exactly one is even unless both are 0.
func TestTara_OnlyMultiplesOfNineScoreZero(t *testing.T) {
	for a := Ashwini; a <= Revati; a++ {
		for b := Ashwini; b <= Revati; b++ {
			want := 1.5
			if (int(b)-int(a))%9 == 0 {
				want = 0
			}
			got := ScoreTara(FactFromChart(Aries, a), FactFromChart(Aries, b))
			require.Equal(t, want, got.Points, "%s/%s", a, b)
		}
	}
}

func TestNadiIsBinary(t *testing.T) {
	tests := []struct {
		name string
		a, b Nadi
		want float64
	}{
		{name: "same aadi", a: Aadi, b: Aadi, want: 0},
		{name: "same antya", a: Antya, b: Antya, want: 0},
		{name: "aadi madhya", a: Aadi, b: Madhya, want: 8},
		{name: "madhya antya", a: Madhya, b: Antya, want: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreNadi(AstroFact{Nadi: tt.a}, AstroFact{Nadi: tt.b})
			assert.Equal(t, tt.want, got.Points)
		})
	}
}

func TestBhakoot(t *testing.T) {
	tests := []struct {
		female Sign
		want   float64
	}{
		{Taurus, 0},
		{Leo, 0},
		{Aries, 7},
		{Gemini, 7},
		{Virgo, 0},
		{Libra, 7},
		{Scorpio, 0},
		{Sagittarius, 0},
		{Pisces, 0},
	}
	for _, tt := range tests {
		t.Run("Aries/"+tt.female.String(), func(t *testing.T) {
			got := ScoreBhakoot(AstroFact{Sign: Aries}, AstroFact{Sign: tt.female})
			assert.Equal(t, tt.want, got.Points)
		})
	}
}

func TestVarnaIsDirectional(t *testing.T) {
	brahmin := AstroFact{Varna: Brahmin}
	shudra := AstroFact{Varna: Shudra}

	assert.Equal(t, float64(1), ScoreVarna(brahmin, shudra).Points)
	assert.Equal(t, float64(0), ScoreVarna(shudra, brahmin).Points)
	assert.Equal(t, float64(1), ScoreVarna(shudra, shudra).Points)
}

func TestGrahaMaitri(t *testing.T) {
	tests := []struct {
		name string
		a, b Sign
		want float64
	}{
		{name: "same lord", a: Aries, b: Scorpio, want: 5},
		{name: "mutual friends", a: Leo, b: Sagittarius, want: 5},
		{name: "friend and neutral", a: Leo, b: Gemini, want: 4},
		{name: "mutually neutral", a: Aries, b: Taurus, want: 3},
		{name: "neutral and enemy", a: Aries, b: Gemini, want: 1},
		{name: "mutual enemies", a: Leo, b: Taurus, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreGrahaMaitri(AstroFact{Sign: tt.a, SignLord: tt.a.Lord()}, AstroFact{Sign: tt.b, SignLord: tt.b.Lord()})
			assert.Equal(t, tt.want, got.Points)
			assert.Equal(t, tt.a.Lord().String(), got.Male)
		})
	}
}

func TestGanaIsAsymmetric(t *testing.T) {
	dev := AstroFact{Gana: Dev}
	rakshas := AstroFact{Gana: Rakshas}

	assert.Equal(t, float64(0), ScoreGana(dev, rakshas).Points)
	assert.Equal(t, float64(1), ScoreGana(rakshas, dev).Points)
}

func TestVashyaIsDirectional(t *testing.T) {
	tests := []struct {
		name string
		a, b VashyaClass
		want float64
	}{
		{name: "vanachar over chatushpad", a: Vanachar, b: Chatushpad, want: 1},
		{name: "chatushpad over vanachar", a: Chatushpad, b: Vanachar, want: 0},
		{name: "chatushpad with jalachar", a: Chatushpad, b: Jalachar, want: 1},
		{name: "jalachar with chatushpad", a: Jalachar, b: Chatushpad, want: 1},
		{name: "manav with jalachar", a: Manav, b: Jalachar, want: 0},
		{name: "keeta with keeta", a: Keeta, b: Keeta, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreVashya(AstroFact{Vashya: tt.a}, AstroFact{Vashya: tt.b})
			assert.Equal(t, tt.want, got.Points)
			assert.Equal(t, tt.a.String(), got.Male)
			assert.Equal(t, tt.b.String(), got.Female)
		})
	}

	assert.NotEqual(t, vashyaMatrix[Vanachar][Chatushpad], vashyaMatrix[Chatushpad][Vanachar])
}

func TestYoniGrades(t *testing.T) {
	tests := []struct {
		name string
		a, b Yoni
		want float64
	}{
		{name: "friendly", a: Horse, b: Serpent, want: 3},
		{name: "neutral", a: Elephant, b: Dog, want: 2},
		{name: "unfriendly", a: Cow, b: Serpent, want: 1},
		{name: "enemies", a: Cat, b: Rat, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreYoni(AstroFact{Yoni: tt.a}, AstroFact{Yoni: tt.b}).Points)
			assert.Equal(t, tt.want, ScoreYoni(AstroFact{Yoni: tt.b}, AstroFact{Yoni: tt.a}).Points)
		})
	}
}

func TestYoniEnemies(t *testing.T) {
	// Horse (Ashwini) and Buffalo (Hasta) are sworn enemies.
	got := ScoreYoni(FactFromChart(Aries, Ashwini), FactFromChart(Aries, Hasta))
	assert.Equal(t, float64(0), got.Points)
	assert.Equal(t, "Horse", got.Male)
	assert.Equal(t, "Buffalo", got.Female)
}
