package exercises

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestRunGreetings(t *testing.T) {
	is, runner := setupRunnerTest(t)
	buf := &bytes.Buffer{}

	err := runner.Run(context.Background(), buf, SectionGreetings)
	is.NoErr(err)

	is.Equal(buf.String(), `--- greetings ---
My name is Kaichi.
My name is Kaichi.
This is not a valid person object.
This is not a valid person object.
`)
}

func TestRunPredicates(t *testing.T) {
	is, runner := setupRunnerTest(t)
	buf := &bytes.Buffer{}

	err := runner.Run(context.Background(), buf, SectionPredicates)
	is.NoErr(err)

	is.Equal(buf.String(), "--- predicates ---\ntrue\nfalse\nfalse\nfalse\ntrue\n")
}

func TestRunStringsOmitsAbsentResults(t *testing.T) {
	is, runner := setupRunnerTest(t)
	buf := &bytes.Buffer{}

	err := runner.Run(context.Background(), buf, SectionStrings)
	is.NoErr(err)

	is.Equal(buf.String(), "--- strings ---\nabcdef\nMomoKaic\n")
}

func TestRunZoo(t *testing.T) {
	is, runner := setupRunnerTest(t)
	buf := &bytes.Buffer{}

	err := runner.Run(context.Background(), buf, SectionZoo)
	is.NoErr(err)

	is.Equal(buf.String(), `--- zoo ---
human eats sandwich
orca eats fish
henchman strength 200
hero strength 1000 health 200
Ostrich's hair color is Black
Volvo V70: 180 km/h, 4 wheels, 5 doors
Scania R450: 90 km/h, 6 wheels, 2 doors
Ducati Monster: 220 km/h, 2 wheels, 0 doors
Volvo 7900: 100 km/h, 6 wheels, 3 doors
Paon
Bu-Hi, Bu-Hi
Moo
false
false
true
2
5
9
0
4
2
6
8
3
`)
}

func TestRunAllSectionsInOrder(t *testing.T) {
	is, runner := setupRunnerTest(t)
	buf := &bytes.Buffer{}

	err := runner.Run(context.Background(), buf)
	is.NoErr(err)

	out := buf.String()
	greetings := bytes.Index([]byte(out), []byte("--- greetings ---"))
	strs := bytes.Index([]byte(out), []byte("--- strings ---"))

	is.Equal(greetings, 0)
	is.True(strs > greetings)
}

func TestRunUnknownSectionFails(t *testing.T) {
	is, runner := setupRunnerTest(t)
	buf := &bytes.Buffer{}

	err := runner.Run(context.Background(), buf, SectionGreetings, "aquarium")

	is.True(errors.Is(err, ErrUnknownSection))
	is.Equal(buf.Len(), 0) // nothing should be written before sections are validated
}

func TestNewWithUnknownVehicleFails(t *testing.T) {
	is := is.New(t)

	cfg := &Config{Zoo: ZooConfig{Vehicles: []VehicleConfig{{Kind: "zeppelin"}}}}
	_, err := New(cfg)

	is.True(errors.Is(err, ErrUnknownVehicle))
}

func setupRunnerTest(t *testing.T) (*is.I, Runner) {
	is := is.New(t)
	t.Setenv("PLAYGROUND_PERSON", "")

	cfg, err := DefaultConfiguration()
	is.NoErr(err)

	runner, err := New(cfg)
	is.NoErr(err)

	return is, runner
}
