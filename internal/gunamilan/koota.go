// internal/gunamilan/koota.go
package gunamilan

// KootaResult is one scored factor. Male is the first person, Female the second.
type KootaResult struct {
	Name      string  `json:"name"`
	Area      string  `json:"area"`
	Male      string  `json:"male"`
	Female    string  `json:"female"`
	MaxPoints float64 `json:"maxPoints"`
	Points    float64 `json:"points"`
	HasDosha  *bool   `json:"hasDosha,omitempty"`
}

const (
	VarnaMax       = 1
	VashyaMax      = 2
	TaraMax        = 3
	YoniMax        = 4
	GrahaMaitriMax = 5
	GanaMax        = 6
	BhakootMax     = 7
	NadiMax        = 8

	AshtakootMax = VarnaMax + VashyaMax + TaraMax + YoniMax + GrahaMaitriMax + GanaMax + BhakootMax + NadiMax
)

// Scorer compares two facts for a single koota.
type Scorer func(male, female AstroFact) KootaResult

// AshtakootScorers lists the eight kootas in traditional order.
var AshtakootScorers = []Scorer{
	ScoreVarna,
	ScoreVashya,
	ScoreTara,
	ScoreYoni,
	ScoreGrahaMaitri,
	ScoreGana,
	ScoreBhakoot,
	ScoreNadi,
}

// ==========================
// Compatibility matrices
// ==========================

// Rows are the first person, columns the second. Order: Manav, Vanachar, Chatushpad, Jalachar, Keeta.
var vashyaMatrix = [numVashyaClasses][numVashyaClasses]float64{
	{2, 0, 1, 0, 1},
	{0, 2, 1, 0, 0},
	{1, 0, 2, 1, 1},
	{0, 0, 1, 2, 1},
	{1, 0, 1, 1, 2},
}

var yoniMatrix = [numYonis][numYonis]float64{
	//  Hrs Ele Shp Srp Dog Cat Rat Cow Buf Tgr Der Mnk Mgs Lio
	{4, 2, 2, 3, 2, 2, 2, 1, 0, 1, 3, 3, 2, 1}, // Horse
	{2, 4, 3, 3, 2, 2, 2, 2, 3, 1, 2, 3, 2, 0}, // Elephant
	{2, 3, 4, 2, 1, 2, 1, 3, 3, 1, 2, 0, 3, 1}, // Sheep
	{3, 3, 2, 4, 2, 1, 1, 1, 1, 2, 2, 2, 0, 2}, // Serpent
	{2, 2, 1, 2, 4, 2, 1, 2, 2, 1, 0, 2, 1, 1}, // Dog
	{2, 2, 2, 1, 2, 4, 0, 2, 2, 1, 3, 3, 2, 1}, // Cat
	{2, 2, 1, 1, 1, 0, 4, 2, 2, 2, 2, 2, 1, 2}, // Rat
	{1, 2, 3, 1, 2, 2, 2, 4, 3, 0, 3, 2, 2, 1}, // Cow
	{0, 3, 3, 1, 2, 2, 2, 3, 4, 1, 2, 2, 2, 1}, // Buffalo
	{1, 1, 1, 2, 1, 1, 2, 0, 1, 4, 1, 1, 2, 1}, // Tiger
	{3, 2, 2, 2, 0, 3, 2, 3, 2, 1, 4, 2, 2, 1}, // Deer
	{3, 3, 0, 2, 2, 3, 2, 2, 2, 1, 2, 4, 3, 2}, // Monkey
	{2, 2, 3, 0, 1, 2, 1, 2, 2, 2, 2, 3, 4, 2}, // Mongoose
	{1, 0, 1, 2, 1, 1, 2, 1, 1, 1, 1, 2, 2, 4}, // Lion
}

// Planetary friendship, 2 friend, 1 neutral, 0 enemy. Order: Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn.
var friendshipMatrix = [numClassicalPlanets][numClassicalPlanets]int{
	{2, 2, 2, 1, 2, 0, 0},
	{2, 2, 1, 2, 1, 1, 1},
	{2, 2, 2, 0, 2, 1, 1},
	{2, 0, 1, 2, 1, 2, 1},
	{2, 2, 2, 0, 2, 0, 1},
	{0, 0, 1, 2, 1, 2, 2},
	{0, 0, 0, 2, 1, 2, 2},
}

// Indexed by the combined friendship sum 0..4.
var grahaMaitriPoints = [5]float64{0, 1, 3, 4, 5}

// Rows are the first person. Order: Dev, Manushya, Rakshas.
var ganaMatrix = [numGanas][numGanas]float64{
	{6, 6, 0},
	{5, 6, 0},
	{1, 0, 6},
}

// Sign distances (1..12) that break Bhakoot.
var bhakootDoshaDistances = map[int]bool{2: true, 5: true, 6: true, 8: true, 9: true, 12: true}

// ==========================
// Scorers
// ==========================

func ScoreVarna(male, female AstroFact) KootaResult {
	r := KootaResult{
		Name:      "Varna",
		Area:      "Work",
		Male:      male.Varna.String(),
		Female:    female.Varna.String(),
		MaxPoints: VarnaMax,
	}
	if male.Varna.Rank() >= female.Varna.Rank() {
		r.Points = VarnaMax
	}
	return r
}

// ScoreVashya reads each person's resolved vashya class.
func ScoreVashya(male, female AstroFact) KootaResult {
	a, b := male.Vashya, female.Vashya
	return KootaResult{
		Name:      "Vashya",
		Area:      "Dominance",
		Male:      a.String(),
		Female:    b.String(),
		MaxPoints: VashyaMax,
		Points:    vashyaMatrix[a][b],
	}
}

// ScoreTara checks the nakshatra distance in both directions, reduced mod 9.
// Even remainders are inauspicious, so a pair scores 0 when they coincide.
func ScoreTara(male, female AstroFact) KootaResult {
	forward := taraRemainder(male.Nakshatra, female.Nakshatra)
	backward := taraRemainder(female.Nakshatra, male.Nakshatra)

	bad := 0
	if forward%2 == 0 {
		bad++
	}
	if backward%2 == 0 {
		bad++
	}

	r := KootaResult{
		Name:      "Tara",
		Area:      "Destiny",
		Male:      male.Nakshatra.String(),
		Female:    female.Nakshatra.String(),
		MaxPoints: TaraMax,
	}
	switch bad {
	case 0:
		r.Points = TaraMax
	case 1:
		r.Points = TaraMax / 2.0
	}
	return r
}

func taraRemainder(from, to Nakshatra) int {
	return ((int(to)-int(from))%9 + 9) % 9
}

// ScoreYoni reads each person's resolved yoni.
func ScoreYoni(male, female AstroFact) KootaResult {
	a, b := male.Yoni, female.Yoni
	return KootaResult{
		Name:      "Yoni",
		Area:      "Mentality",
		Male:      a.String(),
		Female:    b.String(),
		MaxPoints: YoniMax,
		Points:    yoniMatrix[a][b],
	}
}

func ScoreGrahaMaitri(male, female AstroFact) KootaResult {
	a, b := classicalLord(male), classicalLord(female)
	sum := friendshipMatrix[a][b] + friendshipMatrix[b][a]
	return KootaResult{
		Name:      "Graha Maitri",
		Area:      "Compatibility",
		Male:      a.String(),
		Female:    b.String(),
		MaxPoints: GrahaMaitriMax,
		Points:    grahaMaitriPoints[sum],
	}
}

// classicalLord guards the 7x7 friendship table against node lords.
func classicalLord(f AstroFact) Planet {
	if f.SignLord >= Sun && f.SignLord < Rahu {
		return f.SignLord
	}
	return f.Sign.Lord()
}

func ScoreGana(male, female AstroFact) KootaResult {
	return KootaResult{
		Name:      "Gana",
		Area:      "Guna Level",
		Male:      male.Gana.String(),
		Female:    female.Gana.String(),
		MaxPoints: GanaMax,
		Points:    ganaMatrix[male.Gana][female.Gana],
	}
}

func ScoreBhakoot(male, female AstroFact) KootaResult {
	r := KootaResult{
		Name:      "Bhakoot",
		Area:      "Love",
		Male:      male.Sign.String(),
		Female:    female.Sign.String(),
		MaxPoints: BhakootMax,
	}
	if !bhakootDoshaDistances[SignDistance(male.Sign, female.Sign)] {
		r.Points = BhakootMax
	}
	return r
}

// SignDistance counts signs from a to b inclusively, giving 1..12.
func SignDistance(a, b Sign) int {
	return (int(b)-int(a)+numSigns)%numSigns + 1
}

func ScoreNadi(male, female AstroFact) KootaResult {
	r := KootaResult{
		Name:      "Nadi",
		Area:      "Health",
		Male:      male.Nadi.String(),
		Female:    female.Nadi.String(),
		MaxPoints: NadiMax,
	}
	if male.Nadi != female.Nadi {
		r.Points = NadiMax
	}
	return r
}
