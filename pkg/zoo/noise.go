package zoo

import (
	"fmt"
	"io"
)

// NoiseMaker is anything that can make a noise
type NoiseMaker interface {
	Noise() string
}

type Elephant struct{}

func (Elephant) Noise() string { return "Paon" }

type Pig struct{}

func (Pig) Noise() string { return "Bu-Hi, Bu-Hi" }

type Cow struct{}

func (Cow) Noise() string { return "Moo" }

// MakeNoises lets every noise maker make its noise, one per line and in order
func MakeNoises(w io.Writer, makers ...NoiseMaker) error {
	for _, m := range makers {
		if _, err := fmt.Fprintln(w, m.Noise()); err != nil {
			return err
		}
	}
	return nil
}

// Barnyard returns the default collection of noise makers
func Barnyard() []NoiseMaker {
	return []NoiseMaker{Elephant{}, Pig{}, Cow{}}
}
