package zoo

type Food string

const (
	Fish     Food = "fish"
	Sandwich Food = "sandwich"
)

type Mammal interface {
	Eat() Food
}

type Orca struct{}

func (Orca) Eat() Food { return Fish }

type Human struct{}

func (Human) Eat() Food { return Sandwich }

// Marker capabilities. They carry no behaviour of their own and are combined
// into richer capabilities below.
type Vertebrate interface{ isVertebrate() }
type Flyer interface{ canFly() }
type Swimmer interface{ canSwim() }

type Bird interface {
	Flyer
	Vertebrate
}

type vertebrate struct{}

func (vertebrate) isVertebrate() {}

type swimmer struct{}

func (swimmer) canSwim() {}

type flyer struct{}

func (flyer) canFly() {}

type Sparrow struct {
	vertebrate
	flyer
}

type Salmon struct {
	vertebrate
	swimmer
}

type Amphibian struct {
	vertebrate
	swimmer
}

// SandwichSize requires a readable and writable diameter
type SandwichSize interface {
	Diameter() int
	SetDiameter(int)
}

type Sub struct {
	diameter int
}

func (s *Sub) Diameter() int     { return s.diameter }
func (s *Sub) SetDiameter(d int) { s.diameter = d }

var (
	_ Mammal       = Orca{}
	_ Mammal       = Human{}
	_ Bird         = Sparrow{}
	_ Vertebrate   = Salmon{}
	_ Swimmer      = Salmon{}
	_ Swimmer      = Amphibian{}
	_ SandwichSize = &Sub{}
)
