// SPDX-License-Identifier: MIT

package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format names a spec file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Raw wire shapes. Pointer fields distinguish "absent" from zero so the
// documented defaults can be applied after decoding.
type (
	rawItem struct {
		Name     string   `json:"name" yaml:"name" toml:"name"`
		Mean     *float64 `json:"mean" yaml:"mean" toml:"mean"`
		Std      *float64 `json:"std" yaml:"std" toml:"std"`
		Skewness *float64 `json:"skewness" yaml:"skewness" toml:"skewness"`
		Kurtosis *float64 `json:"kurtosis" yaml:"kurtosis" toml:"kurtosis"`
	}

	rawConstruct struct {
		Name        string    `json:"name" yaml:"name" toml:"name"`
		Items       []rawItem `json:"items" yaml:"items" toml:"items"`
		TargetAlpha *float64  `json:"target_cronbach_alpha" yaml:"target_cronbach_alpha" toml:"target_cronbach_alpha"`
		TargetCR    *float64  `json:"target_cr" yaml:"target_cr" toml:"target_cr"`
		TargetAVE   *float64  `json:"target_ave" yaml:"target_ave" toml:"target_ave"`
	}

	rawPath struct {
		From        string   `json:"from" yaml:"from" toml:"from"`
		To          string   `json:"to" yaml:"to" toml:"to"`
		Beta        *float64 `json:"beta" yaml:"beta" toml:"beta"`
		Significant *bool    `json:"significant" yaml:"significant" toml:"significant"`
		EffectSize  *string  `json:"effect_size" yaml:"effect_size" toml:"effect_size"`
	}

	rawRequest struct {
		SampleSize   *int              `json:"sample_size" yaml:"sample_size" toml:"sample_size"`
		LikertScale  *int              `json:"likert_scale" yaml:"likert_scale" toml:"likert_scale"`
		AddNoise     *bool             `json:"add_noise" yaml:"add_noise" toml:"add_noise"`
		NoiseLevel   *float64          `json:"noise_level" yaml:"noise_level" toml:"noise_level"`
		RandomSeed   *int64            `json:"random_seed" yaml:"random_seed" toml:"random_seed"`
		Constructs   []rawConstruct    `json:"constructs" yaml:"constructs" toml:"constructs"`
		Paths        []rawPath         `json:"paths" yaml:"paths" toml:"paths"`
		Demographics []demographicWire `json:"demographic_variables" yaml:"demographic_variables" toml:"demographic_variables"`
	}
)

// ParseRequest decodes a spec document. Unknown keys are rejected in every
// format, and YAML/JSON input must hold exactly one document.
//
// Errors:
//   - decoder errors wrapped with "parse spec".
//   - ErrUnknownDemographicKind for a demographic "type" outside the three variants.
//   - ErrUnsupportedFormat for an unknown Format.
func ParseRequest(data []byte, format Format) (*Request, error) {
	var raw rawRequest
	var err error
	switch format {
	case FormatYAML:
		err = decodeYAML(data, &raw)
	case FormatJSON:
		err = decodeJSON(data, &raw)
	case FormatTOML:
		err = decodeTOML(data, &raw)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse spec: %w", err)
	}
	return raw.toRequest()
}

// LoadRequest reads and decodes the spec file at path.
func LoadRequest(path string) (*Request, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spec: %w", err)
	}
	return ParseRequest(data, format)
}

func decodeYAML(data []byte, out *rawRequest) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(out); err != nil {
		return err
	}
	var extra yaml.Node
	if err := decoder.Decode(&extra); err != io.EOF {
		return errors.New("multiple YAML documents are not supported")
	}
	return nil
}

func decodeJSON(data []byte, out *rawRequest) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(out); err != nil {
		return err
	}
	if decoder.More() {
		return errors.New("trailing data after JSON document")
	}
	return nil
}

func decodeTOML(data []byte, out *rawRequest) error {
	md, err := toml.Decode(string(data), out)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// toRequest applies defaults and converts raw shapes to typed ones.
func (r rawRequest) toRequest() (*Request, error) {
	req := &Request{
		LikertScale: DefaultLikertScale,
		AddNoise:    true,
		NoiseLevel:  DefaultNoiseLevel,
		Seed:        r.RandomSeed,
	}
	if r.SampleSize != nil {
		req.SampleSize = *r.SampleSize
	}
	if r.LikertScale != nil {
		req.LikertScale = *r.LikertScale
	}
	if r.AddNoise != nil {
		req.AddNoise = *r.AddNoise
	}
	if r.NoiseLevel != nil {
		req.NoiseLevel = *r.NoiseLevel
	}

	req.Model.Constructs = make([]Construct, 0, len(r.Constructs))
	for _, rc := range r.Constructs {
		c := Construct{
			Name: rc.Name,
			Targets: Targets{
				CronbachAlpha:        orDefault(rc.TargetAlpha, DefaultTargetAlpha),
				CompositeReliability: orDefault(rc.TargetCR, DefaultTargetCR),
				AVE:                  orDefault(rc.TargetAVE, DefaultTargetAVE),
			},
			Items: make([]Item, 0, len(rc.Items)),
		}
		for _, ri := range rc.Items {
			c.Items = append(c.Items, Item{
				Name:     ri.Name,
				Mean:     orDefault(ri.Mean, DefaultItemMean),
				Std:      orDefault(ri.Std, DefaultItemStd),
				Skewness: orDefault(ri.Skewness, 0),
				Kurtosis: orDefault(ri.Kurtosis, 0),
			})
		}
		req.Model.Constructs = append(req.Model.Constructs, c)
	}

	req.Model.Paths = make([]Path, 0, len(r.Paths))
	for _, rp := range r.Paths {
		p := Path{
			From:        rp.From,
			To:          rp.To,
			Beta:        orDefault(rp.Beta, DefaultBeta),
			Significant: true,
			EffectSize:  DefaultEffectSize,
		}
		if rp.Significant != nil {
			p.Significant = *rp.Significant
		}
		if rp.EffectSize != nil {
			p.EffectSize = *rp.EffectSize
		}
		req.Model.Paths = append(req.Model.Paths, p)
	}

	for _, rd := range r.Demographics {
		d, err := rd.toDemographic()
		if err != nil {
			return nil, fmt.Errorf("parse spec: %w", err)
		}
		req.Model.Demographics = append(req.Model.Demographics, d)
	}

	return req, nil
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
