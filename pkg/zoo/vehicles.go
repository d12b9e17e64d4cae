package zoo

// Vehicle represents anything with speed, wheels, doors and a model name
type Vehicle interface {
	MaxSpeed() int
	SetMaxSpeed(int)
	NumberOfWheels() int
	SetNumberOfWheels(int)
	NumberOfDoors() int
	SetNumberOfDoors(int)
	Model() string
	SetModel(string)
}

type vehicleSpec struct {
	maxSpeed       int
	numberOfWheels int
	numberOfDoors  int
	model          string
}

func (v *vehicleSpec) MaxSpeed() int           { return v.maxSpeed }
func (v *vehicleSpec) SetMaxSpeed(s int)       { v.maxSpeed = s }
func (v *vehicleSpec) NumberOfWheels() int     { return v.numberOfWheels }
func (v *vehicleSpec) SetNumberOfWheels(n int) { v.numberOfWheels = n }
func (v *vehicleSpec) NumberOfDoors() int      { return v.numberOfDoors }
func (v *vehicleSpec) SetNumberOfDoors(n int)  { v.numberOfDoors = n }
func (v *vehicleSpec) Model() string           { return v.model }
func (v *vehicleSpec) SetModel(model string)   { v.model = model }

type Car struct{ vehicleSpec }
type Truck struct{ vehicleSpec }
type Motorcycle struct{ vehicleSpec }
type Bus struct{ vehicleSpec }

func NewCar(maxSpeed, wheels, doors int, model string) *Car {
	return &Car{newVehicleSpec(maxSpeed, wheels, doors, model)}
}

func NewTruck(maxSpeed, wheels, doors int, model string) *Truck {
	return &Truck{newVehicleSpec(maxSpeed, wheels, doors, model)}
}

func NewMotorcycle(maxSpeed, wheels, doors int, model string) *Motorcycle {
	return &Motorcycle{newVehicleSpec(maxSpeed, wheels, doors, model)}
}

func NewBus(maxSpeed, wheels, doors int, model string) *Bus {
	return &Bus{newVehicleSpec(maxSpeed, wheels, doors, model)}
}

func newVehicleSpec(maxSpeed, wheels, doors int, model string) vehicleSpec {
	return vehicleSpec{
		maxSpeed:       maxSpeed,
		numberOfWheels: wheels,
		numberOfDoors:  doors,
		model:          model,
	}
}

var (
	_ Vehicle = &Car{}
	_ Vehicle = &Truck{}
	_ Vehicle = &Motorcycle{}
	_ Vehicle = &Bus{}
)
