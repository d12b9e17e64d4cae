package zoo

import "fmt"

type Biped interface {
	Name() string
	Walk()
}

type Hairy interface {
	HairColor() string
}

// HairyBiped is satisfied only by types that are both a Biped and Hairy
type HairyBiped interface {
	Biped
	Hairy
}

type Dog struct{}

func (Dog) HairColor() string { return "White" }

type Ostrich struct{}

func (Ostrich) Name() string      { return "Ostrich" }
func (Ostrich) Walk()             {}
func (Ostrich) HairColor() string { return "Black" }

// Describe tells the hair color of a hairy biped
func Describe(item HairyBiped) string {
	return fmt.Sprintf("%s's hair color is %s", item.Name(), item.HairColor())
}

var (
	_ Hairy      = Dog{}
	_ HairyBiped = Ostrich{}
)
