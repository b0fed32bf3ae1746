// SPDX-License-Identifier: MIT

package model

import (
	"encoding/json"
	"fmt"
)

// DemographicPrefix namespaces demographic columns so they never collide
// with item columns.
const DemographicPrefix = "DEM_"

// DemographicKind tags the three demographic variants.
type DemographicKind string

const (
	KindCategorical DemographicKind = "categorical"
	KindNumerical   DemographicKind = "numerical"
	KindOrdinal     DemographicKind = "ordinal"
)

// Demographic is a sealed sum type over Categorical, Numerical and Ordinal.
type Demographic interface {
	// VarName is the user-facing variable name (without prefix).
	VarName() string
	// Kind reports the variant.
	Kind() DemographicKind

	sealed()
}

// ColumnName returns the table column used for d.
func ColumnName(d Demographic) string { return DemographicPrefix + d.VarName() }

// Categorical draws labels with the given probabilities (uniform when nil).
type Categorical struct {
	Name          string
	Categories    []string
	Probabilities []float64
}

// Numerical draws N(Mean, Std), clips to [Min, Max] and rounds.
type Numerical struct {
	Name                string
	Min, Max, Mean, Std float64
}

// Ordinal draws integer codes 1..len(Levels) with the given probabilities.
type Ordinal struct {
	Name          string
	Levels        []string
	Probabilities []float64
}

func (c Categorical) VarName() string       { return c.Name }
func (c Categorical) Kind() DemographicKind { return KindCategorical }
func (Categorical) sealed()                 {}

func (n Numerical) VarName() string       { return n.Name }
func (n Numerical) Kind() DemographicKind { return KindNumerical }
func (Numerical) sealed()                 {}

func (o Ordinal) VarName() string       { return o.Name }
func (o Ordinal) Kind() DemographicKind { return KindOrdinal }
func (Ordinal) sealed()                 {}

// NewNumerical applies the decoder defaults: min 18, max 65, mean at the
// midpoint and std (max-min)/6. Nil pointers mean "not given".
func NewNumerical(name string, lo, hi, mean, std *float64) Numerical {
	n := Numerical{Name: name, Min: DefaultNumericalMin, Max: DefaultNumericalMax}
	if lo != nil {
		n.Min = *lo
	}
	if hi != nil {
		n.Max = *hi
	}
	n.Mean = (n.Min + n.Max) / 2
	if mean != nil {
		n.Mean = *mean
	}
	n.Std = (n.Max - n.Min) / 6
	if std != nil {
		n.Std = *std
	}
	return n
}

// demographicWire is the flat wire shape shared by all variants and all
// spec formats.
type demographicWire struct {
	Name          string          `json:"name" yaml:"name" toml:"name"`
	Type          DemographicKind `json:"type" yaml:"type" toml:"type"`
	Categories    []string        `json:"categories,omitempty" yaml:"categories" toml:"categories"`
	Levels        []string        `json:"levels,omitempty" yaml:"levels" toml:"levels"`
	Probabilities []float64       `json:"probabilities,omitempty" yaml:"probabilities" toml:"probabilities"`
	Min           *float64        `json:"min,omitempty" yaml:"min" toml:"min"`
	Max           *float64        `json:"max,omitempty" yaml:"max" toml:"max"`
	Mean          *float64        `json:"mean,omitempty" yaml:"mean" toml:"mean"`
	Std           *float64        `json:"std,omitempty" yaml:"std" toml:"std"`
}

// MarshalJSON renders the flat tagged shape.
func (c Categorical) MarshalJSON() ([]byte, error) {
	return json.Marshal(demographicWire{Name: c.Name, Type: KindCategorical, Categories: c.Categories, Probabilities: c.Probabilities})
}

// MarshalJSON renders the flat tagged shape.
func (n Numerical) MarshalJSON() ([]byte, error) {
	return json.Marshal(demographicWire{Name: n.Name, Type: KindNumerical, Min: &n.Min, Max: &n.Max, Mean: &n.Mean, Std: &n.Std})
}

// MarshalJSON renders the flat tagged shape.
func (o Ordinal) MarshalJSON() ([]byte, error) {
	return json.Marshal(demographicWire{Name: o.Name, Type: KindOrdinal, Levels: o.Levels, Probabilities: o.Probabilities})
}

// toDemographic converts the flat shape into its variant.
func (d demographicWire) toDemographic() (Demographic, error) {
	switch d.Type {
	case KindCategorical:
		return Categorical{Name: d.Name, Categories: d.Categories, Probabilities: d.Probabilities}, nil
	case KindNumerical:
		return NewNumerical(d.Name, d.Min, d.Max, d.Mean, d.Std), nil
	case KindOrdinal:
		return Ordinal{Name: d.Name, Levels: d.Levels, Probabilities: d.Probabilities}, nil
	}
	return nil, fmt.Errorf("%w %q for %q", ErrUnknownDemographicKind, d.Type, d.Name)
}
