package zoo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Style is the art movement an artist belongs to
type Style string

const (
	Impressionism Style = "impressionism"
	Surrealism    Style = "surrealism"
	Cubism        Style = "cubism"
	PopArt        Style = "popArt"
)

var styles = map[Style]struct{}{
	Impressionism: {},
	Surrealism:    {},
	Cubism:        {},
	PopArt:        {},
}

func ParseStyle(s string) (Style, error) {
	if _, ok := styles[Style(s)]; !ok {
		return "", fmt.Errorf("unknown style %q", s)
	}
	return Style(s), nil
}

func (s *Style) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}

	style, err := ParseStyle(str)
	if err != nil {
		return err
	}

	*s = style
	return nil
}

func (s *Style) UnmarshalYAML(unmarshal func(any) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}

	style, err := ParseStyle(str)
	if err != nil {
		return err
	}

	*s = style
	return nil
}

type Artist struct {
	Name     string `json:"name" yaml:"name"`
	Style    Style  `json:"style" yaml:"style"`
	YearBorn int    `json:"yearBorn" yaml:"yearBorn"`
}

var ErrMissingStyle = errors.New("artist has no style")

// UnmarshalJSON decodes an artist and rejects artists without a style, since
// comparisons between artists are made on style alone. Unknown fields are
// rejected as well.
func (a *Artist) UnmarshalJSON(data []byte) error {
	type artist Artist

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var v artist
	if err := dec.Decode(&v); err != nil {
		return err
	}

	if v.Style == "" {
		return fmt.Errorf("%w: %q", ErrMissingStyle, v.Name)
	}

	*a = Artist(v)
	return nil
}

func (a *Artist) UnmarshalYAML(unmarshal func(any) error) error {
	type artist Artist

	var v artist
	if err := unmarshal(&v); err != nil {
		return err
	}

	if v.Style == "" {
		return fmt.Errorf("%w: %q", ErrMissingStyle, v.Name)
	}

	*a = Artist(v)
	return nil
}

// Equals reports whether two artists work in the same style. This is a
// partial equality: name and year of birth are ignored.
func Equals(a, b Artist) bool {
	return a.Style == b.Style
}

// Equals is the method form of the package level Equals
func (a Artist) Equals(other Artist) bool {
	return Equals(a, other)
}
