// Package instance loads TSP instances from YAML files.
//
// A file names the instance and gives either city coordinates, converted to
// a Euclidean matrix, or an explicit distance matrix:
//
//	name: square
//	cities:
//	  - {label: A, x: 0, y: 0}
//	  - {label: B, x: 1, y: 0}
//	  - {label: C, x: 1, y: 1}
//
//	name: triangle
//	matrix:
//	  - [0, 1, 2]
//	  - [1, 0, 3]
//	  - [2, 3, 0]
//
// Structural rules are declared with validator tags; distance-level rules
// (square, finite, zero diagonal, at least three cities) are delegated to
// tsp.ValidateDistances so files fail exactly like in-memory matrices do.
package instance

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metatsp/matrix"
	"github.com/katalvlaran/metatsp/tsp"
)

// ErrInvalidInstance is returned when a file is malformed or breaks a
// structural rule. Distance-level failures wrap the tsp sentinels instead.
var ErrInvalidInstance = errors.New("instance: invalid instance")

// City is one named location in the plane.
type City struct {
	Label string  `yaml:"label" validate:"required,max=64"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// File mirrors the YAML document.
type File struct {
	Name   string      `yaml:"name" validate:"required,max=128"`
	Cities []City      `yaml:"cities" validate:"omitempty,dive"`
	Matrix [][]float64 `yaml:"matrix" validate:"omitempty,dive,required"`
}

// Instance is a validated problem ready for the optimizers.
type Instance struct {
	Name   string
	Labels []string       // one per city; generated "0".."n-1" for explicit matrices
	Points []matrix.Point // nil when the file gave an explicit matrix
	Dist   *matrix.Dense
}

// N returns the number of cities.
func (in *Instance) N() int { return len(in.Labels) }

// Route maps a tour of indices to city labels.
func (in *Instance) Route(tour []int) []string {
	out := make([]string, len(tour))
	var i int
	for i = range tour {
		out[i] = in.Labels[tour[i]]
	}

	return out
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(fileSourceRule, File{})
}

// fileSourceRule requires exactly one of cities or matrix, and unique labels.
func fileSourceRule(sl validator.StructLevel) {
	f := sl.Current().Interface().(File)
	switch {
	case len(f.Cities) == 0 && len(f.Matrix) == 0:
		sl.ReportError(f.Cities, "Cities", "cities", "required_without", "Matrix")
	case len(f.Cities) > 0 && len(f.Matrix) > 0:
		sl.ReportError(f.Matrix, "Matrix", "matrix", "excluded_with", "Cities")
	}

	seen := make(map[string]struct{}, len(f.Cities))
	for _, c := range f.Cities {
		if _, dup := seen[c.Label]; dup {
			sl.ReportError(f.Cities, "Cities", "cities", "unique_label", c.Label)
			return
		}
		seen[c.Label] = struct{}{}
	}
}

// Parse decodes and validates a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Instance, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("instance: decode: %v: %w", err, ErrInvalidInstance)
	}

	return FromFile(f)
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: %w", err)
	}
	in, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return in, nil
}

// FromFile validates an already decoded document and builds its matrix.
func FromFile(f File) (*Instance, error) {
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("instance %q: %v: %w", f.Name, err, ErrInvalidInstance)
	}

	in := &Instance{Name: f.Name}
	var err error
	if len(f.Cities) > 0 {
		in.Points = make([]matrix.Point, len(f.Cities))
		in.Labels = make([]string, len(f.Cities))
		for i, c := range f.Cities {
			in.Points[i] = matrix.Point{X: c.X, Y: c.Y}
			in.Labels[i] = c.Label
		}
		if in.Dist, err = matrix.NewEuclidean(in.Points); err != nil {
			return nil, fmt.Errorf("instance %q: %w", f.Name, err)
		}
	} else {
		if in.Dist, err = matrix.NewDenseFromRows(f.Matrix); err != nil {
			return nil, fmt.Errorf("instance %q: %v: %w", f.Name, err, tsp.ErrNonSquare)
		}
		in.Labels = make([]string, len(f.Matrix))
		for i := range in.Labels {
			in.Labels[i] = strconv.Itoa(i)
		}
	}

	if _, err = tsp.ValidateDistances(in.Dist); err != nil {
		return nil, fmt.Errorf("instance %q: %w", f.Name, err)
	}

	return in, nil
}
