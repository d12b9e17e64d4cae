package zoo

// Character is a participant in a fight. Strength can be read but not changed
// through the interface.
type Character interface {
	Health() int
	SetHealth(int)
	Strength() int
	Aim() int
	SetAim(int)
}

// HenchmanStrength is the strength every henchman has
const HenchmanStrength int = 200

// henchmanTraits supplies the default strength. Only Henchman embeds it.
type henchmanTraits struct{}

func (henchmanTraits) Strength() int { return HenchmanStrength }

type Henchman struct {
	henchmanTraits
	health int
	aim    int
}

func NewHenchman(health, aim int) *Henchman {
	return &Henchman{health: health, aim: aim}
}

func (h *Henchman) Health() int     { return h.health }
func (h *Henchman) SetHealth(v int) { h.health = v }
func (h *Henchman) Aim() int        { return h.aim }
func (h *Henchman) SetAim(v int)    { h.aim = v }

type Hero struct {
	health   int
	strength int
	aim      int
}

func NewHero(health, strength, aim int) *Hero {
	return &Hero{health: health, strength: strength, aim: aim}
}

func (h *Hero) Health() int     { return h.health }
func (h *Hero) SetHealth(v int) { h.health = v }
func (h *Hero) Strength() int   { return h.strength }
func (h *Hero) Aim() int        { return h.aim }
func (h *Hero) SetAim(v int)    { h.aim = v }

var (
	_ Character = &Henchman{}
	_ Character = &Hero{}
)
