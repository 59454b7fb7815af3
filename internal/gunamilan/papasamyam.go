// internal/gunamilan/papasamyam.go
package gunamilan

import "fmt"

// Malefics counted for papa load, in reporting order.
var Malefics = []Planet{Sun, Mars, Saturn, Rahu}

// Houses, counted from a reference point, in which a malefic afflicts it.
var afflictingHouses = map[int]bool{1: true, 2: true, 4: true, 7: true, 8: true, 12: true}

// MaxPapaDifference is the largest gap between two papa totals still considered balanced.
const MaxPapaDifference = 2

// PapaContribution holds one malefic's affliction bits against each reference point.
type PapaContribution struct {
	Planet    Planet `json:"planet"`
	Ascendant int    `json:"ascendant"`
	Moon      int    `json:"moon"`
	Venus     int    `json:"venus"`
}

type PapaScore struct {
	Contributions []PapaContribution `json:"contributions"`
	Ascendant     int                `json:"ascendant"`
	Moon          int                `json:"moon"`
	Venus         int                `json:"venus"`
	Total         int                `json:"total"`
}

type PapasamyamResult struct {
	Male       PapaScore     `json:"male"`
	Female     PapaScore     `json:"female"`
	Difference int           `json:"difference"`
	Balanced   bool          `json:"balanced"`
	Narrative  LocalizedText `json:"narrative"`
}

// chartPositions maps body names to signs. The first entry for a name wins.
type chartPositions map[string]Sign

func positionsOf(planets []PlanetPosition) chartPositions {
	out := make(chartPositions, len(planets))
	for _, p := range planets {
		key := bodyKey(p.Name)
		if key == "" {
			continue
		}
		if _, seen := out[key]; !seen {
			out[key] = p.Sign
		}
	}
	return out
}

// bodyKey canonicalizes a body name so lookups are case and spelling insensitive.
func bodyKey(name string) string {
	t := fold(name)
	switch t {
	case "ascendant", "asc", "lagna", "lagnam":
		return "ascendant"
	}
	if p, ok := planetAliases[t]; ok {
		return p.String()
	}
	return t
}

func (c chartPositions) sign(key string) (Sign, bool) {
	s, ok := c[key]
	return s, ok
}

// ComputePapaScore scores one chart. Missing bodies contribute nothing.
func ComputePapaScore(planets []PlanetPosition) PapaScore {
	pos := positionsOf(planets)
	asc, hasAsc := pos.sign("ascendant")
	moon, hasMoon := pos.sign(Moon.String())
	venus, hasVenus := pos.sign(Venus.String())

	score := PapaScore{Contributions: make([]PapaContribution, 0, len(Malefics))}
	for _, m := range Malefics {
		c := PapaContribution{Planet: m}
		if ms, ok := pos.sign(m.String()); ok {
			c.Ascendant = afflicts(ms, asc, hasAsc)
			c.Moon = afflicts(ms, moon, hasMoon)
			c.Venus = afflicts(ms, venus, hasVenus)
		}
		score.Ascendant += c.Ascendant
		score.Moon += c.Moon
		score.Venus += c.Venus
		score.Contributions = append(score.Contributions, c)
	}
	score.Total = score.Ascendant + score.Moon + score.Venus
	return score
}

func afflicts(malefic, reference Sign, present bool) int {
	if !present {
		return 0
	}
	if afflictingHouses[HouseFrom(reference, malefic)] {
		return 1
	}
	return 0
}

// HouseFrom returns the house (1..12) that sign occupies counted from reference.
func HouseFrom(reference, sign Sign) int {
	return SignDistance(reference, sign)
}

func ComparePapasamyam(male, female []PlanetPosition) PapasamyamResult {
	a, b := ComputePapaScore(male), ComputePapaScore(female)
	diff := a.Total - b.Total
	if diff < 0 {
		diff = -diff
	}

	r := PapasamyamResult{
		Male:       a,
		Female:     b,
		Difference: diff,
		Balanced:   diff <= MaxPapaDifference,
	}

	if r.Balanced {
		r.Narrative = LocalizedText{
			En: fmt.Sprintf("Papasamyam is balanced: the malefic load is %d for the groom and %d for the bride, which is favorable.", a.Total, b.Total),
			Hi: fmt.Sprintf("पापसाम्य संतुलित है: वर का पाप अंक %d और वधू का पाप अंक %d है, जो शुभ है।", a.Total, b.Total),
		}
		return r
	}

	heavier, heavierHi := "groom", "वर"
	if b.Total > a.Total {
		heavier, heavierHi = "bride", "वधू"
	}
	r.Narrative = LocalizedText{
		En: fmt.Sprintf("Papasamyam is imbalanced: the malefic load is %d for the groom and %d for the bride. The %s carries the heavier load and remedies are recommended.",
			a.Total, b.Total, heavier),
		Hi: fmt.Sprintf("पापसाम्य असंतुलित है: वर का पाप अंक %d और वधू का पाप अंक %d है। %s पर पाप प्रभाव अधिक है, उपाय करने की सलाह दी जाती है।",
			a.Total, b.Total, heavierHi),
	}
	return r
}
