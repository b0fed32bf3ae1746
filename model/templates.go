// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"sort"
)

// Template is a ready-made research model.
type Template struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Model       Model  `json:"model"`
}

// templateSpec is the compact form templates are written in: constructs as
// (name, item prefix) pairs with three items each.
type templateSpec struct {
	name, description string
	constructs        [][2]string
	paths             []Path
}

var templates = map[string]templateSpec{
	"TAM": {
		name:        "Technology Acceptance Model",
		description: "Classic TAM model for technology adoption",
		constructs: [][2]string{
			{"Perceived Usefulness", "PU"},
			{"Perceived Ease of Use", "PEOU"},
			{"Attitude", "ATT"},
			{"Behavioral Intention", "BI"},
		},
		paths: []Path{
			{From: "Perceived Ease of Use", To: "Perceived Usefulness", Beta: 0.4},
			{From: "Perceived Usefulness", To: "Attitude", Beta: 0.5},
			{From: "Perceived Ease of Use", To: "Attitude", Beta: 0.3},
			{From: "Attitude", To: "Behavioral Intention", Beta: 0.5},
			{From: "Perceived Usefulness", To: "Behavioral Intention", Beta: 0.3},
		},
	},
	"UTAUT": {
		name:        "Unified Theory of Acceptance and Use of Technology",
		description: "Extended model for technology acceptance",
		constructs: [][2]string{
			{"Performance Expectancy", "PE"},
			{"Effort Expectancy", "EE"},
			{"Social Influence", "SI"},
			{"Facilitating Conditions", "FC"},
			{"Behavioral Intention", "BI"},
		},
		paths: []Path{
			{From: "Performance Expectancy", To: "Behavioral Intention", Beta: 0.4},
			{From: "Effort Expectancy", To: "Behavioral Intention", Beta: 0.25},
			{From: "Social Influence", To: "Behavioral Intention", Beta: 0.2},
			{From: "Facilitating Conditions", To: "Behavioral Intention", Beta: 0.15},
		},
	},
	"TPB": {
		name:        "Theory of Planned Behavior",
		description: "Theory of planned behavior",
		constructs: [][2]string{
			{"Attitude", "ATT"},
			{"Subjective Norm", "SN"},
			{"Perceived Behavioral Control", "PBC"},
			{"Intention", "INT"},
			{"Behavior", "BEH"},
		},
		paths: []Path{
			{From: "Attitude", To: "Intention", Beta: 0.4},
			{From: "Subjective Norm", To: "Intention", Beta: 0.25},
			{From: "Perceived Behavioral Control", To: "Intention", Beta: 0.3},
			{From: "Intention", To: "Behavior", Beta: 0.5},
			{From: "Perceived Behavioral Control", To: "Behavior", Beta: 0.2},
		},
	},
	"CSR_Performance": {
		name:        "CSR and Performance Model",
		description: "Corporate Social Responsibility impact model",
		constructs: [][2]string{
			{"CSR Activities", "CSR"},
			{"Corporate Reputation", "REP"},
			{"Customer Loyalty", "LOY"},
			{"Financial Performance", "FIN"},
		},
		paths: []Path{
			{From: "CSR Activities", To: "Corporate Reputation", Beta: 0.5},
			{From: "Corporate Reputation", To: "Customer Loyalty", Beta: 0.45},
			{From: "Customer Loyalty", To: "Financial Performance", Beta: 0.4},
			{From: "CSR Activities", To: "Financial Performance", Beta: 0.15},
		},
	},
}

const templateItemsPerConstruct = 3

// TemplateKeys lists the available template keys, sorted.
func TemplateKeys() []string {
	keys := make([]string, 0, len(templates))
	for k := range templates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Templates returns every template, sorted by key. Each call builds fresh
// values, so callers may modify the result.
func Templates() []Template {
	out := make([]Template, 0, len(templates))
	for _, k := range TemplateKeys() {
		t, _ := LookupTemplate(k)
		out = append(out, t)
	}
	return out
}

// LookupTemplate expands the template under key into a full model with
// default item parameters and targets.
func LookupTemplate(key string) (Template, error) {
	spec, ok := templates[key]
	if !ok {
		return Template{}, fmt.Errorf("%w %q", ErrUnknownTemplate, key)
	}
	t := Template{Key: key, Name: spec.name, Description: spec.description}
	for _, c := range spec.constructs {
		con := Construct{
			Name: c[0],
			Targets: Targets{
				CronbachAlpha:        DefaultTargetAlpha,
				CompositeReliability: DefaultTargetCR,
				AVE:                  DefaultTargetAVE,
			},
		}
		for i := 1; i <= templateItemsPerConstruct; i++ {
			con.Items = append(con.Items, Item{
				Name: fmt.Sprintf("%s%d", c[1], i),
				Mean: DefaultItemMean,
				Std:  DefaultItemStd,
			})
		}
		t.Model.Constructs = append(t.Model.Constructs, con)
	}
	for _, p := range spec.paths {
		p.Significant = true
		p.EffectSize = DefaultEffectSize
		t.Model.Paths = append(t.Model.Paths, p)
	}
	return t, nil
}
