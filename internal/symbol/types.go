// Package symbol maps annex hostility and finiteness classes to the visual
// vocabulary of a pictograph: ring style, ring geometry and annotation glyph.
package symbol

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidHostility is returned for any hostility outside safe/moderate/hazardous.
	ErrInvalidHostility = errors.New("invalid hostility class")

	// ErrInvalidFiniteness is returned for any finiteness outside finite/infinite.
	ErrInvalidFiniteness = errors.New("invalid finiteness")
)

// Hostility is the categorical danger rating that drives the ring style.
type Hostility string

const (
	HostilitySafe      Hostility = "safe"
	HostilityModerate  Hostility = "moderate"
	HostilityHazardous Hostility = "hazardous"
)

// Hostilities lists the recognised hostility classes in display order.
var Hostilities = []Hostility{HostilitySafe, HostilityModerate, HostilityHazardous}

// Finiteness is the categorical rating that drives the annotation glyph.
type Finiteness string

const (
	FinitenessInfinite Finiteness = "infinite"
	FinitenessFinite   Finiteness = "finite"
)

// Finitenesses lists the recognised finiteness classes in display order.
var Finitenesses = []Finiteness{FinitenessInfinite, FinitenessFinite}

// RingStyle is the visual treatment of the central ring(s).
type RingStyle string

const (
	RingDotted RingStyle = "dotted"
	RingSolid  RingStyle = "solid"
	RingDouble RingStyle = "double"
)

// Valid reports whether h is one of the recognised hostility classes.
func (h Hostility) Valid() bool {
	switch h {
	case HostilitySafe, HostilityModerate, HostilityHazardous:
		return true
	}
	return false
}

// Valid reports whether f is one of the recognised finiteness classes.
func (f Finiteness) Valid() bool {
	switch f {
	case FinitenessFinite, FinitenessInfinite:
		return true
	}
	return false
}

// ParseHostility normalises user input (case and surrounding whitespace)
// into a Hostility.
func ParseHostility(s string) (Hostility, error) {
	h := Hostility(strings.ToLower(strings.TrimSpace(s)))
	if !h.Valid() {
		return "", hostilityError(s)
	}
	return h, nil
}

// ParseFiniteness normalises user input (case and surrounding whitespace)
// into a Finiteness.
func ParseFiniteness(s string) (Finiteness, error) {
	f := Finiteness(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", finitenessError(s)
	}
	return f, nil
}

func hostilityError(value string) error {
	return fmt.Errorf("%w %q: choose from 'safe', 'moderate', or 'hazardous'", ErrInvalidHostility, value)
}

func finitenessError(value string) error {
	return fmt.Errorf("%w %q: choose from 'infinite' or 'finite'", ErrInvalidFiniteness, value)
}
