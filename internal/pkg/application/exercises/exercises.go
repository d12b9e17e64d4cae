package exercises

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/diwise/playgrounds/pkg/greeting"
	"github.com/diwise/playgrounds/pkg/optional"
	"github.com/diwise/playgrounds/pkg/predicates"
	"github.com/diwise/playgrounds/pkg/zoo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("playgrounds/exercises")

var ErrUnknownSection = errors.New("unknown section")
var ErrUnknownVehicle = errors.New("unknown vehicle kind")

const (
	SectionGreetings  string = "greetings"
	SectionZoo        string = "zoo"
	SectionPredicates string = "predicates"
	SectionStrings    string = "strings"
)

// Sections lists every section in the order they are run
var Sections = []string{SectionGreetings, SectionZoo, SectionPredicates, SectionStrings}

type Runner interface {
	Run(ctx context.Context, w io.Writer, sections ...string) error
}

type runnerImpl struct {
	cfg      *Config
	vehicles []zoo.Vehicle
	sections map[string]func(w io.Writer) error
}

func New(cfg *Config) (Runner, error) {
	r := &runnerImpl{cfg: cfg}

	for _, vc := range cfg.Zoo.Vehicles {
		v, err := NewVehicle(vc)
		if err != nil {
			return nil, err
		}
		r.vehicles = append(r.vehicles, v)
	}

	r.sections = map[string]func(w io.Writer) error{
		SectionGreetings:  r.greetings,
		SectionZoo:        r.zoo,
		SectionPredicates: r.predicates,
		SectionStrings:    r.strings,
	}

	return r, nil
}

// NewVehicle creates the vehicle described by a VehicleConfig
func NewVehicle(vc VehicleConfig) (zoo.Vehicle, error) {
	switch vc.Kind {
	case "car":
		return zoo.NewCar(vc.MaxSpeed, vc.Wheels, vc.Doors, vc.Model), nil
	case "truck":
		return zoo.NewTruck(vc.MaxSpeed, vc.Wheels, vc.Doors, vc.Model), nil
	case "motorcycle":
		return zoo.NewMotorcycle(vc.MaxSpeed, vc.Wheels, vc.Doors, vc.Model), nil
	case "bus":
		return zoo.NewBus(vc.MaxSpeed, vc.Wheels, vc.Doors, vc.Model), nil
	}

	return nil, fmt.Errorf("%w \"%s\"", ErrUnknownVehicle, vc.Kind)
}

// Run writes the transcript of the selected sections, or of all sections if
// none are selected
func (r *runnerImpl) Run(ctx context.Context, w io.Writer, sections ...string) error {
	var err error

	ctx, span := tracer.Start(ctx, "run-exercises")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	if len(sections) == 0 {
		sections = Sections
	}

	for _, s := range sections {
		if !slices.Contains(Sections, s) {
			err = fmt.Errorf("%w \"%s\"", ErrUnknownSection, s)
			return err
		}
	}

	runID := uuid.NewString()
	log := logging.GetFromContext(ctx).With("run_id", runID)
	log.Debug("running exercises", "sections", sections)

	for _, s := range sections {
		if _, err = fmt.Fprintf(w, "--- %s ---\n", s); err != nil {
			return err
		}

		err = r.sections[s](w)
		if err != nil {
			log.Error("exercise section failed", "section", s, "err", err.Error())
			return err
		}
	}

	log.Debug("exercises completed", "count", len(sections))

	return nil
}

func (r *runnerImpl) greetings(w io.Writer) error {
	for _, pc := range r.cfg.Greeter.People {
		person := optional.Map(optional.FromPointer(pc.Name), greeting.NewPerson)

		if _, err := fmt.Fprintln(w, greeting.MyNameIs(person)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, greeting.MyNameIsSwitch(person)); err != nil {
			return err
		}
	}
	return nil
}

func (r *runnerImpl) zoo(w io.Writer) error {
	lines := []string{
		fmt.Sprintf("human eats %s", zoo.Human{}.Eat()),
		fmt.Sprintf("orca eats %s", zoo.Orca{}.Eat()),
	}

	stormtrooper := zoo.NewHenchman(100, -100)
	hero := zoo.NewHero(100, 1000, 100)
	hero.SetHealth(200)

	lines = append(lines,
		fmt.Sprintf("henchman strength %d", stormtrooper.Strength()),
		fmt.Sprintf("hero strength %d health %d", hero.Strength(), hero.Health()),
		zoo.Describe(zoo.Ostrich{}),
	)

	for _, v := range r.vehicles {
		lines = append(lines, fmt.Sprintf("%s: %d km/h, %d wheels, %d doors",
			v.Model(), v.MaxSpeed(), v.NumberOfWheels(), v.NumberOfDoors()))
	}

	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}

	if err := zoo.MakeNoises(w, zoo.Barnyard()...); err != nil {
		return err
	}

	for _, a := range r.cfg.Zoo.Artists {
		if _, err := fmt.Fprintln(w, zoo.Equals(a, r.cfg.Zoo.Compare)); err != nil {
			return err
		}
	}

	return zoo.PrintFlattened(w, r.cfg.Zoo.Grid)
}

func (r *runnerImpl) predicates(w io.Writer) error {
	for _, p := range r.cfg.Predicates.DivisibleByThree {
		if _, err := fmt.Fprintln(w, predicates.Apply(p[0], p[1], predicates.BothDivisibleByThree)); err != nil {
			return err
		}
	}

	for _, p := range r.cfg.Predicates.SameDigitSum {
		if _, err := fmt.Fprintln(w, predicates.Apply(p[0], p[1], predicates.SameDigitSum)); err != nil {
			return err
		}
	}

	return nil
}

func (r *runnerImpl) strings(w io.Writer) error {
	for _, p := range r.cfg.Strings.Pairs {
		if err := predicates.ManipulateStrings(w, p[0], p[1], predicates.ConcatenateSmallStrings); err != nil {
			return err
		}
	}
	return nil
}
