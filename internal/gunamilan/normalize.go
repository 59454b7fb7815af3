// internal/gunamilan/normalize.go
package gunamilan

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AstroFact is the canonical per-person record every koota reads from.
type AstroFact struct {
	Varna         Varna       `json:"varna"`
	Vashya        VashyaClass `json:"vashya"`
	Yoni          Yoni        `json:"yoni"`
	Gana          Gana        `json:"gana"`
	Nadi          Nadi        `json:"nadi"`
	Nakshatra     Nakshatra   `json:"nakshatra"`
	Sign          Sign        `json:"sign"`
	SignLord      Planet      `json:"signLord"`
	NakshatraLord Planet      `json:"nakshatraLord"`
}

// Note records a field that could not be resolved from upstream data.
type Note struct {
	Field   string `json:"field"`
	Raw     string `json:"raw,omitempty"`
	Applied string `json:"applied"`
}

func (n Note) String() string {
	if n.Raw == "" {
		return fmt.Sprintf("%s missing, using %s", n.Field, n.Applied)
	}
	return fmt.Sprintf("%s %q not recognised, using %s", n.Field, n.Raw, n.Applied)
}

// Key spellings seen in upstream astro-details payloads, tried in order.
var (
	varnaKeys         = []string{"Varna", "varna"}
	vashyaKeys        = []string{"Vashya", "vashya"}
	yoniKeys          = []string{"Yoni", "yoni"}
	ganaKeys          = []string{"Gan", "gan", "gana", "Gana"}
	nadiKeys          = []string{"Nadi", "nadi"}
	nakshatraKeys     = []string{"Naksahtra", "naksahtra", "nakshatra", "Nakshatra"}
	signKeys          = []string{"sign", "Sign", "moon_sign", "moonSign", "rashi", "Rashi"}
	signLordKeys      = []string{"SignLord", "sign_lord", "signLord"}
	nakshatraLordKeys = []string{"NaksahtraLord", "naksahtra_lord", "nakshatra_lord", "NakshatraLord", "nakshatraLord"}
)

// NormalizeFacts resolves a loosely typed astro-details record into an AstroFact.
// It never fails: unresolved fields fall back to fixed defaults and are reported as notes.
func NormalizeFacts(raw map[string]interface{}) (AstroFact, []Note) {
	var notes []Note
	note := func(field string, rawVal string, applied fmt.Stringer) {
		notes = append(notes, Note{Field: field, Raw: rawVal, Applied: applied.String()})
	}

	var f AstroFact

	signRaw := lookup(raw, signKeys)
	s, signOK := parseSignValue(signRaw)
	if signOK {
		f.Sign = s
	} else {
		f.Sign = Aries
		note("sign", signRaw.text, f.Sign)
	}

	nakRaw := lookup(raw, nakshatraKeys)
	n, nakOK := parseNakshatraValue(nakRaw)
	if nakOK {
		f.Nakshatra = n
	} else {
		f.Nakshatra = Ashwini
		note("nakshatra", nakRaw.text, f.Nakshatra)
	}

	varnaRaw := lookup(raw, varnaKeys)
	if v, ok := ParseVarna(varnaRaw.text); ok {
		f.Varna = v
	} else {
		f.Varna = Shudra
		note("varna", varnaRaw.text, f.Varna)
	}

	// Vashya and yoni follow the resolved sign and nakshatra when not given.
	// The fixed defaults apply only when their source was defaulted too.
	vashyaRaw := lookup(raw, vashyaKeys)
	if v, ok := ParseVashya(vashyaRaw.text); ok {
		f.Vashya = v
	} else if signOK {
		f.Vashya = f.Sign.Vashya()
		if vashyaRaw.text != "" {
			note("vashya", vashyaRaw.text, f.Vashya)
		}
	} else {
		f.Vashya = Manav
		note("vashya", vashyaRaw.text, f.Vashya)
	}

	yoniRaw := lookup(raw, yoniKeys)
	if y, ok := ParseYoni(yoniRaw.text); ok {
		f.Yoni = y
	} else if nakOK {
		f.Yoni = f.Nakshatra.Yoni()
		if yoniRaw.text != "" {
			note("yoni", yoniRaw.text, f.Yoni)
		}
	} else {
		f.Yoni = Horse
		note("yoni", yoniRaw.text, f.Yoni)
	}

	ganaRaw := lookup(raw, ganaKeys)
	if g, ok := ParseGana(ganaRaw.text); ok {
		f.Gana = g
	} else {
		f.Gana = Dev
		note("gana", ganaRaw.text, f.Gana)
	}

	nadiRaw := lookup(raw, nadiKeys)
	if n, ok := ParseNadi(nadiRaw.text); ok {
		f.Nadi = n
	} else {
		f.Nadi = Aadi
		note("nadi", nadiRaw.text, f.Nadi)
	}

	// Lords fall back to the ones implied by sign and nakshatra.
	signLordRaw := lookup(raw, signLordKeys)
	if p, ok := ParsePlanet(signLordRaw.text); ok && p < Rahu {
		f.SignLord = p
	} else {
		f.SignLord = f.Sign.Lord()
		if signLordRaw.text != "" {
			note("signLord", signLordRaw.text, f.SignLord)
		}
	}

	nakLordRaw := lookup(raw, nakshatraLordKeys)
	if p, ok := ParsePlanet(nakLordRaw.text); ok {
		f.NakshatraLord = p
	} else {
		f.NakshatraLord = f.Nakshatra.Lord()
		if nakLordRaw.text != "" {
			note("nakshatraLord", nakLordRaw.text, f.NakshatraLord)
		}
	}

	return f, notes
}

// FactFromChart builds the fact record implied by a sign and nakshatra alone.
func FactFromChart(sign Sign, nak Nakshatra) AstroFact {
	return AstroFact{
		Varna:         sign.Varna(),
		Vashya:        sign.Vashya(),
		Yoni:          nak.Yoni(),
		Gana:          nak.Gana(),
		Nadi:          nak.Nadi(),
		Nakshatra:     nak,
		Sign:          sign,
		SignLord:      sign.Lord(),
		NakshatraLord: nak.Lord(),
	}
}

// PlanetPosition is one body's placement as used by Papasamyam.
type PlanetPosition struct {
	Name string `json:"name"`
	Sign Sign   `json:"sign"`
}

var (
	planetNameKeys = []string{"name", "Name", "planet", "Planet"}
	planetSignKeys = []string{"sign", "Sign", "signId", "sign_id", "rasi", "rashi"}
	planetDegKeys  = []string{"fullDegree", "full_degree", "longitude"}
)

// NormalizePlanets extracts named sign placements from a loosely typed planet list.
// Entries without a usable name or sign are dropped.
func NormalizePlanets(raw []map[string]interface{}) []PlanetPosition {
	out := make([]PlanetPosition, 0, len(raw))
	for _, entry := range raw {
		name := strings.TrimSpace(lookup(entry, planetNameKeys).text)
		if name == "" {
			continue
		}
		sign, ok := parseSignValue(lookup(entry, planetSignKeys))
		if !ok {
			deg, hasDeg := lookup(entry, planetDegKeys).number()
			if !hasDeg {
				continue
			}
			sign = signFromLongitude(deg)
		}
		out = append(out, PlanetPosition{Name: name, Sign: sign})
	}
	return out
}

func signFromLongitude(deg float64) Sign {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return Sign(int(deg/30) % numSigns)
}

// ==========================
// Raw value handling
// ==========================

type rawValue struct {
	text  string
	value interface{}
}

func (r rawValue) number() (float64, bool) {
	switch v := r.value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	}
	return 0, false
}

func lookup(raw map[string]interface{}, keys []string) rawValue {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		text := strings.TrimSpace(fmt.Sprint(v))
		if text == "" {
			continue
		}
		return rawValue{text: text, value: v}
	}
	return rawValue{}
}

// Numeric sign and nakshatra values are 1-based, as upstream chart APIs number them.
func parseSignValue(r rawValue) (Sign, bool) {
	if r.text == "" {
		return 0, false
	}
	if n, ok := r.number(); ok {
		i := int(n)
		if float64(i) == n && i >= 1 && i <= numSigns {
			return Sign(i - 1), true
		}
		return 0, false
	}
	return ParseSign(r.text)
}

func parseNakshatraValue(r rawValue) (Nakshatra, bool) {
	if r.text == "" {
		return 0, false
	}
	if n, ok := r.number(); ok {
		i := int(n)
		if float64(i) == n && i >= 1 && i <= numNakshatras {
			return Nakshatra(i - 1), true
		}
		return 0, false
	}
	return ParseNakshatra(r.text)
}

// fold lowercases and drops separators, so "P.Phalguni" and "p phalguni" share one alias.
func fold(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '.', '-', '_', '\'', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var signAliases = map[string]Sign{
	"aries": Aries, "mesha": Aries, "mesh": Aries,
	"taurus": Taurus, "vrishabha": Taurus, "vrishabh": Taurus, "vrushabh": Taurus, "vrishabam": Taurus,
	"gemini": Gemini, "mithuna": Gemini, "mithun": Gemini,
	"cancer": Cancer, "karka": Cancer, "kark": Cancer, "karkata": Cancer, "kataka": Cancer,
	"leo": Leo, "simha": Leo, "singh": Leo, "simh": Leo,
	"virgo": Virgo, "kanya": Virgo,
	"libra": Libra, "tula": Libra, "thula": Libra,
	"scorpio": Scorpio, "vrischika": Scorpio, "vrishchika": Scorpio, "vrishchik": Scorpio, "vrischik": Scorpio,
	"sagittarius": Sagittarius, "dhanu": Sagittarius, "dhanus": Sagittarius,
	"capricorn": Capricorn, "makara": Capricorn, "makar": Capricorn,
	"aquarius": Aquarius, "kumbha": Aquarius, "kumbh": Aquarius,
	"pisces": Pisces, "meena": Pisces, "meen": Pisces,
}

var nakshatraAliases = map[string]Nakshatra{
	"ashwini": Ashwini, "aswini": Ashwini, "ashvini": Ashwini,
	"bharani": Bharani,
	"krittika": Krittika, "kritika": Krittika, "krithika": Krittika, "kruthika": Krittika,
	"rohini": Rohini,
	"mrigashira": Mrigashira, "mrigashirsha": Mrigashira, "mrigasira": Mrigashira, "mrigshira": Mrigashira, "mrigasheersha": Mrigashira,
	"ardra": Ardra, "aardra": Ardra, "arudra": Ardra, "aridra": Ardra,
	"punarvasu": Punarvasu, "punarvasi": Punarvasu,
	"pushya": Pushya, "pushyami": Pushya, "pooyam": Pushya, "pusya": Pushya,
	"ashlesha": Ashlesha, "aslesha": Ashlesha, "ashlesa": Ashlesha, "ayilyam": Ashlesha,
	"magha": Magha, "makha": Magha, "magam": Magha,
	"purvaphalguni": PurvaPhalguni, "poorvaphalguni": PurvaPhalguni, "pphalguni": PurvaPhalguni, "purvaphalgini": PurvaPhalguni, "pubba": PurvaPhalguni,
	"uttaraphalguni": UttaraPhalguni, "uttraphalguni": UttaraPhalguni, "uphalguni": UttaraPhalguni, "uttaraphalgini": UttaraPhalguni,
	"hasta": Hasta, "hast": Hasta, "hastha": Hasta,
	"chitra": Chitra, "chithra": Chitra, "chitta": Chitra,
	"swati": Swati, "svati": Swati, "swathi": Swati,
	"vishakha": Vishakha, "visakha": Vishakha, "vishaka": Vishakha, "vishakam": Vishakha,
	"anuradha": Anuradha, "anuraadha": Anuradha, "anusham": Anuradha,
	"jyeshtha": Jyeshtha, "jyestha": Jyeshtha, "jyeshta": Jyeshtha, "jyesta": Jyeshtha, "kettai": Jyeshtha,
	"mula": Mula, "moola": Mula, "moolam": Mula,
	"purvashadha": PurvaAshadha, "purvaashadha": PurvaAshadha, "poorvashadha": PurvaAshadha, "pashadha": PurvaAshadha, "purvashada": PurvaAshadha,
	"uttarashadha": UttaraAshadha, "uttaraashadha": UttaraAshadha, "uttarashada": UttaraAshadha, "uashadha": UttaraAshadha, "uttrashadha": UttaraAshadha,
	"shravana": Shravana, "sravana": Shravana, "shravan": Shravana, "thiruvonam": Shravana,
	"dhanishta": Dhanishta, "dhanishtha": Dhanishta, "shravishtha": Dhanishta, "avittam": Dhanishta,
	"shatabhisha": Shatabhisha, "shatabhishak": Shatabhisha, "satabhisha": Shatabhisha, "shatataraka": Shatabhisha, "sadayam": Shatabhisha,
	"purvabhadrapada": PurvaBhadrapada, "poorvabhadrapada": PurvaBhadrapada, "pbhadrapada": PurvaBhadrapada, "purvabhadra": PurvaBhadrapada, "purvabhadrapad": PurvaBhadrapada,
	"uttarabhadrapada": UttaraBhadrapada, "uttarabhadra": UttaraBhadrapada, "ubhadrapada": UttaraBhadrapada, "uttrabhadrapada": UttaraBhadrapada, "uttarabhadrapad": UttaraBhadrapada,
	"revati": Revati, "revathi": Revati,
}

var varnaAliases = map[string]Varna{
	"brahmin": Brahmin, "brahmana": Brahmin, "brahman": Brahmin, "vipra": Brahmin,
	"kshatriya": Kshatriya, "kshatriy": Kshatriya, "kshetriya": Kshatriya,
	"vaishya": Vaishya, "vaishy": Vaishya, "vaisya": Vaishya, "vaishnav": Vaishya,
	"shudra": Shudra, "sudra": Shudra, "shoodra": Shudra,
}

var vashyaAliases = map[string]VashyaClass{
	"manav": Manav, "manava": Manav, "nara": Manav, "human": Manav, "dwipad": Manav, "dwipada": Manav,
	"vanachar": Vanachar, "vanchar": Vanachar, "vanachara": Vanachar, "wild": Vanachar,
	"chatushpad": Chatushpad, "chatuspad": Chatushpad, "chatushpada": Chatushpad, "quadruped": Chatushpad,
	"jalachar": Jalachar, "jalchar": Jalachar, "jalachara": Jalachar, "water": Jalachar,
	"keeta": Keeta, "keet": Keeta, "kita": Keeta, "keetak": Keeta, "insect": Keeta,
}

var yoniAliases = map[string]Yoni{
	"horse": Horse, "ashwa": Horse, "ashva": Horse,
	"elephant": Elephant, "gaja": Elephant, "gaj": Elephant,
	"sheep": Sheep, "goat": Sheep, "mesha": Sheep, "mesh": Sheep, "ram": Sheep,
	"serpent": Serpent, "snake": Serpent, "sarpa": Serpent, "sarp": Serpent,
	"dog": Dog, "shwan": Dog, "shvan": Dog, "shwana": Dog,
	"cat": Cat, "marjar": Cat, "marjara": Cat,
	"rat": Rat, "mouse": Rat, "mushak": Rat, "mooshak": Rat, "mushaka": Rat,
	"cow": Cow, "gau": Cow, "go": Cow, "bull": Cow,
	"buffalo": Buffalo, "mahish": Buffalo, "mahisha": Buffalo,
	"tiger": Tiger, "vyaghra": Tiger, "vyaghr": Tiger,
	"deer": Deer, "hare": Deer, "mriga": Deer, "mrig": Deer,
	"monkey": Monkey, "vanar": Monkey, "vanara": Monkey,
	"mongoose": Mongoose, "nakul": Mongoose, "nakula": Mongoose,
	"lion": Lion, "simha": Lion, "singh": Lion,
}

var planetAliases = map[string]Planet{
	"sun": Sun, "surya": Sun, "ravi": Sun,
	"moon": Moon, "chandra": Moon, "soma": Moon,
	"mars": Mars, "mangal": Mars, "kuja": Mars, "angaraka": Mars,
	"mercury": Mercury, "budh": Mercury, "budha": Mercury,
	"jupiter": Jupiter, "guru": Jupiter, "brihaspati": Jupiter,
	"venus": Venus, "shukra": Venus, "sukra": Venus,
	"saturn": Saturn, "shani": Saturn, "sani": Saturn,
	"rahu": Rahu,
	"ketu": Ketu,
}

func ParseSign(s string) (Sign, bool) {
	v, ok := signAliases[fold(s)]
	return v, ok
}

func ParseNakshatra(s string) (Nakshatra, bool) {
	v, ok := nakshatraAliases[fold(s)]
	return v, ok
}

func ParseVarna(s string) (Varna, bool) {
	v, ok := varnaAliases[fold(s)]
	return v, ok
}

func ParseVashya(s string) (VashyaClass, bool) {
	v, ok := vashyaAliases[fold(s)]
	return v, ok
}

func ParseYoni(s string) (Yoni, bool) {
	v, ok := yoniAliases[fold(s)]
	return v, ok
}

func ParsePlanet(s string) (Planet, bool) {
	v, ok := planetAliases[fold(s)]
	return v, ok
}

// ParseGana buckets free text by substring. Rakshas is checked first so "Asura" never lands in Dev.
func ParseGana(s string) (Gana, bool) {
	t := fold(s)
	switch {
	case t == "":
		return Dev, false
	case containsAny(t, "raksh", "asura", "demon"):
		return Rakshas, true
	case containsAny(t, "manush", "manav", "human", "nara"):
		return Manushya, true
	case containsAny(t, "dev", "divine"):
		return Dev, true
	}
	return Dev, false
}

// ParseNadi buckets free text by substring, including the vata/pitta/kapha humor names.
func ParseNadi(s string) (Nadi, bool) {
	t := fold(s)
	switch {
	case t == "":
		return Aadi, false
	case containsAny(t, "madhya", "madya", "pitta", "pitt"):
		return Madhya, true
	case containsAny(t, "antya", "anthya", "kapha", "kaph"):
		return Antya, true
	case containsAny(t, "aadi", "adi", "vata", "vaat"):
		return Aadi, true
	}
	return Aadi, false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
