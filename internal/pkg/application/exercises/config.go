package exercises

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"github.com/diwise/playgrounds/pkg/zoo"
	"github.com/drone/envsubst"
	yaml "gopkg.in/yaml.v2"
)

//go:embed default.yaml
var defaultConfig []byte

// PersonConfig describes a person that may or may not exist. A missing name
// means that there is no person.
type PersonConfig struct {
	Name *string `yaml:"name"`
}

type GreeterConfig struct {
	People []PersonConfig `yaml:"people"`
}

type VehicleConfig struct {
	Kind     string `yaml:"kind"`
	MaxSpeed int    `yaml:"maxSpeed"`
	Wheels   int    `yaml:"wheels"`
	Doors    int    `yaml:"doors"`
	Model    string `yaml:"model"`
}

type ZooConfig struct {
	Vehicles []VehicleConfig `yaml:"vehicles"`
	Artists  []zoo.Artist    `yaml:"artists"`
	Compare  zoo.Artist      `yaml:"compareWith"`
	Grid     [][]int         `yaml:"grid"`
}

type PredicatesConfig struct {
	DivisibleByThree [][2]int `yaml:"divisibleByThree"`
	SameDigitSum     [][2]int `yaml:"sameDigitSum"`
}

type StringsConfig struct {
	Pairs [][2]string `yaml:"pairs"`
}

type Config struct {
	Greeter    GreeterConfig    `yaml:"greeter"`
	Zoo        ZooConfig        `yaml:"zoo"`
	Predicates PredicatesConfig `yaml:"predicates"`
	Strings    StringsConfig    `yaml:"strings"`
}

// LoadConfiguration reads a yaml configuration. ${VAR} references in string
// values are expanded from the environment after the document has been
// parsed, so an expanded value is always read back as a string and never
// as yaml syntax.
func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	var doc any
	err = yaml.Unmarshal(buf, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	doc, err = expandEnv(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to expand environment variables in configuration: %w", err)
	}

	expanded, err := yaml.Marshal(doc)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.UnmarshalStrict(expanded, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return cfg, nil
}

func expandEnv(node any) (any, error) {
	var err error

	switch n := node.(type) {
	case string:
		return envsubst.EvalEnv(n)
	case []any:
		for i := range n {
			if n[i], err = expandEnv(n[i]); err != nil {
				return nil, err
			}
		}
	case map[any]any:
		for k, v := range n {
			if n[k], err = expandEnv(v); err != nil {
				return nil, err
			}
		}
	}

	return node, nil
}

// DefaultConfiguration returns the configuration with the sample values the
// playgrounds were written against
func DefaultConfiguration() (*Config, error) {
	return LoadConfiguration(bytes.NewReader(defaultConfig))
}
