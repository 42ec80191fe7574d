package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors returned by the loaders.
var (
	// ErrBadTurbine indicates a turbine spec field out of range.
	ErrBadTurbine = errors.New("config: invalid turbine spec")

	// ErrBadFarm indicates a farm config field out of range.
	ErrBadFarm = errors.New("config: invalid farm config")

	// ErrBadBoundary indicates a boundary polygon with fewer than three
	// vertices or mismatched coordinate arrays.
	ErrBadBoundary = errors.New("config: invalid boundary polygon")
)

// Turbine is the machine specification a design case runs with.
type Turbine struct {
	Name          string  `yaml:"name"`
	RotorDiameter float64 `yaml:"rotor_diameter"` // m
	HubHeight     float64 `yaml:"hub_height"`     // m
	RatedPowerKW  float64 `yaml:"rated_power_kW"`
	TCCPerKW      float64 `yaml:"tcc_per_kW"`    // USD/kW
	OffsetTCC     float64 `yaml:"offset_tcc_per_kW"`
	OpexPerKW     float64 `yaml:"opex_per_kW"` // USD/kW/yr
}

// Validate range-checks the spec.
func (t Turbine) Validate() error {
	switch {
	case t.RotorDiameter <= 0:
		return fmt.Errorf("%w: rotor_diameter %g", ErrBadTurbine, t.RotorDiameter)
	case t.HubHeight <= 0:
		return fmt.Errorf("%w: hub_height %g", ErrBadTurbine, t.HubHeight)
	case t.RatedPowerKW <= 0:
		return fmt.Errorf("%w: rated_power_kW %g", ErrBadTurbine, t.RatedPowerKW)
	case t.TCCPerKW < 0 || t.OpexPerKW < 0:
		return fmt.Errorf("%w: negative cost rate", ErrBadTurbine)
	}
	return nil
}

// Polygon is one boundary ring as parallel coordinate arrays, metres.
type Polygon struct {
	X []float64 `yaml:"x"`
	Y []float64 `yaml:"y"`
}

// Substation is one collection root position.
type Substation struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Farm is the site half of a design case.
type Farm struct {
	NTurbines            int          `yaml:"n_turbines"`
	Boundaries           []Polygon    `yaml:"boundaries"`
	Substations          []Substation `yaml:"substations"`
	MaxTurbinesPerString int          `yaml:"max_turbines_per_string"`
}

// Validate range-checks the farm and its boundary rings.
func (f Farm) Validate() error {
	if f.NTurbines < 1 {
		return fmt.Errorf("%w: n_turbines %d", ErrBadFarm, f.NTurbines)
	}
	if len(f.Substations) < 1 {
		return fmt.Errorf("%w: at least one substation required", ErrBadFarm)
	}
	if f.MaxTurbinesPerString < 1 {
		return fmt.Errorf("%w: max_turbines_per_string %d", ErrBadFarm, f.MaxTurbinesPerString)
	}
	for i, p := range f.Boundaries {
		if len(p.X) != len(p.Y) {
			return fmt.Errorf("%w: polygon %d has %d x, %d y", ErrBadBoundary, i, len(p.X), len(p.Y))
		}
		if len(p.X) < 3 {
			return fmt.Errorf("%w: polygon %d has %d vertices", ErrBadBoundary, i, len(p.X))
		}
	}
	return nil
}

// Case is a full design case file.
type Case struct {
	Turbine Turbine `yaml:"turbine"`
	Farm    Farm    `yaml:"farm"`
}

// Load reads and validates a design case from a YAML file.
func Load(path string) (Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Case{}, fmt.Errorf("config: read case: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// Parse decodes and validates a design case. Unknown YAML keys are errors:
// a typoed field name must not silently fall back to a zero default.
func Parse(r io.Reader) (Case, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Case
	if err := dec.Decode(&c); err != nil {
		return Case{}, fmt.Errorf("config: decode case: %w", err)
	}
	if err := c.Turbine.Validate(); err != nil {
		return Case{}, err
	}
	if err := c.Farm.Validate(); err != nil {
		return Case{}, err
	}
	return c, nil
}
