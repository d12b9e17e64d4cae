package greeting

import (
	"errors"
	"fmt"

	"github.com/diwise/playgrounds/pkg/optional"
)

const InvalidPersonMessage string = "This is not a valid person object."

// Person is someone who can be introduced by name
type Person struct {
	name string
}

func NewPerson(name string) Person {
	return Person{name: name}
}

func (p Person) Name() string {
	return p.name
}

// MyNameIs introduces the person by name, unwrapping the option conditionally
func MyNameIs(person optional.Option[Person]) string {
	if p, ok := person.Get(); ok {
		return introduce(p.Name())
	}

	return InvalidPersonMessage
}

// MyNameIsSwitch produces the same introduction as MyNameIs by matching on
// both cases of the option
func MyNameIsSwitch(person optional.Option[Person]) string {
	return optional.Match(person,
		func(p Person) string { return introduce(p.Name()) },
		func() string { return InvalidPersonMessage },
	)
}

func introduce(name string) string {
	return fmt.Sprintf("My name is %s.", name)
}

// Variant names one of the two equivalent greeting implementations
type Variant string

const (
	Binding Variant = "binding"
	Match   Variant = "match"
)

var ErrUnknownVariant = errors.New("unknown variant")

// Greeter returns the greeting implementation named by v. The empty variant
// selects Binding.
func Greeter(v Variant) (func(optional.Option[Person]) string, error) {
	switch v {
	case "", Binding:
		return MyNameIs, nil
	case Match:
		return MyNameIsSwitch, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownVariant, string(v))
}
