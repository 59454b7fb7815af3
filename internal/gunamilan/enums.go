// internal/gunamilan/enums.go
package gunamilan

import "fmt"

// Sign is one of the twelve rashis, Aries first.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

const numSigns = 12

var signNames = [numSigns]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Nakshatra is one of the 27 lunar mansions, Ashwini first.
type Nakshatra int

const (
	Ashwini Nakshatra = iota
	Bharani
	Krittika
	Rohini
	Mrigashira
	Ardra
	Punarvasu
	Pushya
	Ashlesha
	Magha
	PurvaPhalguni
	UttaraPhalguni
	Hasta
	Chitra
	Swati
	Vishakha
	Anuradha
	Jyeshtha
	Mula
	PurvaAshadha
	UttaraAshadha
	Shravana
	Dhanishta
	Shatabhisha
	PurvaBhadrapada
	UttaraBhadrapada
	Revati
)

const numNakshatras = 27

var nakshatraNames = [numNakshatras]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// Planet covers the seven classical grahas followed by the two lunar nodes.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

const (
	numPlanets          = 9
	numClassicalPlanets = 7
)

var planetNames = [numPlanets]string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu",
}

// Varna is ordered lowest rank first so that the underlying value doubles as rank-1.
type Varna int

const (
	Shudra Varna = iota
	Vaishya
	Kshatriya
	Brahmin
)

const numVarnas = 4

var varnaNames = [numVarnas]string{"Shudra", "Vaishya", "Kshatriya", "Brahmin"}

// Rank returns 4 for Brahmin down to 1 for Shudra.
func (v Varna) Rank() int { return int(v) + 1 }

type VashyaClass int

const (
	Manav VashyaClass = iota
	Vanachar
	Chatushpad
	Jalachar
	Keeta
)

const numVashyaClasses = 5

var vashyaNames = [numVashyaClasses]string{"Manav", "Vanachar", "Chatushpad", "Jalachar", "Keeta"}

type Yoni int

const (
	Horse Yoni = iota
	Elephant
	Sheep
	Serpent
	Dog
	Cat
	Rat
	Cow
	Buffalo
	Tiger
	Deer
	Monkey
	Mongoose
	Lion
)

const numYonis = 14

var yoniNames = [numYonis]string{
	"Horse", "Elephant", "Sheep", "Serpent", "Dog", "Cat", "Rat",
	"Cow", "Buffalo", "Tiger", "Deer", "Monkey", "Mongoose", "Lion",
}

type Gana int

const (
	Dev Gana = iota
	Manushya
	Rakshas
)

const numGanas = 3

var ganaNames = [numGanas]string{"Dev", "Manushya", "Rakshas"}

type Nadi int

const (
	Aadi Nadi = iota
	Madhya
	Antya
)

const numNadis = 3

var nadiNames = [numNadis]string{"Aadi", "Madhya", "Antya"}

// RajjuGroup is the body zone a nakshatra is assigned to.
type RajjuGroup int

const (
	Paada RajjuGroup = iota
	Kati
	Nabhi
	Kantha
	Shira
)

const numRajjuGroups = 5

var rajjuNames = [numRajjuGroups]string{"Paada", "Kati", "Nabhi", "Kantha", "Shira"}

func (s Sign) String() string        { return enumName(signNames[:], int(s)) }
func (n Nakshatra) String() string   { return enumName(nakshatraNames[:], int(n)) }
func (p Planet) String() string      { return enumName(planetNames[:], int(p)) }
func (v Varna) String() string       { return enumName(varnaNames[:], int(v)) }
func (v VashyaClass) String() string { return enumName(vashyaNames[:], int(v)) }
func (y Yoni) String() string        { return enumName(yoniNames[:], int(y)) }
func (g Gana) String() string        { return enumName(ganaNames[:], int(g)) }
func (n Nadi) String() string        { return enumName(nadiNames[:], int(n)) }
func (r RajjuGroup) String() string  { return enumName(rajjuNames[:], int(r)) }

func (s Sign) MarshalText() ([]byte, error)        { return []byte(s.String()), nil }
func (n Nakshatra) MarshalText() ([]byte, error)   { return []byte(n.String()), nil }
func (p Planet) MarshalText() ([]byte, error)      { return []byte(p.String()), nil }
func (v Varna) MarshalText() ([]byte, error)       { return []byte(v.String()), nil }
func (v VashyaClass) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (y Yoni) MarshalText() ([]byte, error)        { return []byte(y.String()), nil }
func (g Gana) MarshalText() ([]byte, error)        { return []byte(g.String()), nil }
func (n Nadi) MarshalText() ([]byte, error)        { return []byte(n.String()), nil }
func (r RajjuGroup) MarshalText() ([]byte, error)  { return []byte(r.String()), nil }

func (s *Sign) UnmarshalText(b []byte) error        { return unmarshalEnum(signNames[:], b, s) }
func (n *Nakshatra) UnmarshalText(b []byte) error   { return unmarshalEnum(nakshatraNames[:], b, n) }
func (p *Planet) UnmarshalText(b []byte) error      { return unmarshalEnum(planetNames[:], b, p) }
func (v *Varna) UnmarshalText(b []byte) error       { return unmarshalEnum(varnaNames[:], b, v) }
func (v *VashyaClass) UnmarshalText(b []byte) error { return unmarshalEnum(vashyaNames[:], b, v) }
func (y *Yoni) UnmarshalText(b []byte) error        { return unmarshalEnum(yoniNames[:], b, y) }
func (g *Gana) UnmarshalText(b []byte) error        { return unmarshalEnum(ganaNames[:], b, g) }
func (n *Nadi) UnmarshalText(b []byte) error        { return unmarshalEnum(nadiNames[:], b, n) }
func (r *RajjuGroup) UnmarshalText(b []byte) error  { return unmarshalEnum(rajjuNames[:], b, r) }

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("Unknown(%d)", i)
	}
	return names[i]
}

// unmarshalEnum only accepts canonical names. Loose spellings go through the normalizer.
func unmarshalEnum[T ~int](names []string, b []byte, out *T) error {
	s := string(b)
	for i, name := range names {
		if name == s {
			*out = T(i)
			return nil
		}
	}
	return fmt.Errorf("gunamilan: unknown value %q", s)
}

// ==========================
// Derived attribute tables
// ==========================

var signLords = [numSigns]Planet{
	Mars, Venus, Mercury, Moon, Sun, Mercury,
	Venus, Mars, Jupiter, Saturn, Saturn, Jupiter,
}

var signVarnas = [numSigns]Varna{
	Kshatriya, Vaishya, Shudra, Brahmin, Kshatriya, Vaishya,
	Shudra, Brahmin, Kshatriya, Vaishya, Shudra, Brahmin,
}

var signVashyas = [numSigns]VashyaClass{
	Chatushpad, Chatushpad, Manav, Jalachar, Vanachar, Manav,
	Manav, Keeta, Chatushpad, Jalachar, Manav, Jalachar,
}

// Lords cycle Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury.
var nakshatraLordCycle = [9]Planet{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

var nakshatraYonis = [numNakshatras]Yoni{
	Horse, Elephant, Sheep, Serpent, Serpent, Dog, Cat, Sheep, Cat,
	Rat, Rat, Cow, Buffalo, Tiger, Buffalo, Tiger, Deer, Deer,
	Dog, Monkey, Mongoose, Monkey, Lion, Horse, Lion, Cow, Elephant,
}

var nakshatraGanas = [numNakshatras]Gana{
	Dev, Manushya, Rakshas, Manushya, Dev, Manushya, Dev, Dev, Rakshas,
	Rakshas, Manushya, Manushya, Dev, Rakshas, Dev, Rakshas, Dev, Rakshas,
	Rakshas, Manushya, Manushya, Dev, Rakshas, Rakshas, Manushya, Manushya, Dev,
}

var nakshatraNadis = [numNakshatras]Nadi{
	Aadi, Madhya, Antya, Antya, Madhya, Aadi, Aadi, Madhya, Antya,
	Antya, Madhya, Aadi, Aadi, Madhya, Antya, Antya, Madhya, Aadi,
	Aadi, Madhya, Antya, Antya, Madhya, Aadi, Aadi, Madhya, Antya,
}

var nakshatraRajjus = [numNakshatras]RajjuGroup{
	Paada, Kati, Nabhi, Kantha, Shira, Kantha, Nabhi, Kati, Paada,
	Paada, Kati, Nabhi, Kantha, Shira, Kantha, Nabhi, Kati, Paada,
	Paada, Kati, Nabhi, Kantha, Shira, Kantha, Nabhi, Kati, Paada,
}

// Lord returns the ruling planet of the sign.
func (s Sign) Lord() Planet { return signLords[s] }

// Varna returns the varna traditionally associated with the sign.
func (s Sign) Varna() Varna { return signVarnas[s] }

// Vashya returns the vashya class of the sign.
func (s Sign) Vashya() VashyaClass { return signVashyas[s] }

func (n Nakshatra) Lord() Planet { return nakshatraLordCycle[int(n)%len(nakshatraLordCycle)] }

func (n Nakshatra) Yoni() Yoni { return nakshatraYonis[n] }

func (n Nakshatra) Gana() Gana { return nakshatraGanas[n] }

func (n Nakshatra) Nadi() Nadi { return nakshatraNadis[n] }

func (n Nakshatra) Rajju() RajjuGroup { return nakshatraRajjus[n] }
