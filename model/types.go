// SPDX-License-Identifier: MIT

package model

// Defaults applied by the decoder when a field is omitted.
const (
	DefaultItemMean     = 4.0
	DefaultItemStd      = 1.0
	DefaultBeta         = 0.3
	DefaultEffectSize   = "medium"
	DefaultTargetAlpha  = 0.8
	DefaultTargetCR     = 0.8
	DefaultTargetAVE    = 0.6
	DefaultLikertScale  = 7
	DefaultNoiseLevel   = 0.05
	DefaultNumericalMin = 18.0
	DefaultNumericalMax = 65.0
)

// Item is an observed variable. Its name is unique across the whole model
// and doubles as the table column name.
type Item struct {
	Name     string  `json:"name"`
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"` // excess kurtosis
}

// Targets are advisory reliability goals. They are recorded with the
// construct and checked against bounds, but the generator does not chase them.
type Targets struct {
	CronbachAlpha        float64 `json:"target_cronbach_alpha"`
	CompositeReliability float64 `json:"target_cr"`
	AVE                  float64 `json:"target_ave"`
}

// Construct is a latent variable measured by an ordered list of items.
type Construct struct {
	Name    string  `json:"name"`
	Items   []Item  `json:"items"`
	Targets Targets `json:"targets"`
}

// ItemNames returns the construct's item names in declaration order.
func (c *Construct) ItemNames() []string {
	out := make([]string, len(c.Items))
	for i := range c.Items {
		out[i] = c.Items[i].Name
	}
	return out
}

// Path is a hypothesized directed effect From → To.
type Path struct {
	From        string  `json:"from"`
	To          string  `json:"to"`
	Beta        float64 `json:"beta"`
	Significant bool    `json:"significant"`
	EffectSize  string  `json:"effect_size,omitempty"`
}

// Model is the full construct/path/demographic specification.
type Model struct {
	Constructs   []Construct   `json:"constructs"`
	Paths        []Path        `json:"paths"`
	Demographics []Demographic `json:"demographic_variables,omitempty"`
}

// ConstructNames returns construct names in declaration order.
func (m *Model) ConstructNames() []string {
	out := make([]string, len(m.Constructs))
	for i := range m.Constructs {
		out[i] = m.Constructs[i].Name
	}
	return out
}

// ItemNames returns every item name, construct by construct.
func (m *Model) ItemNames() []string {
	var out []string
	for i := range m.Constructs {
		out = append(out, m.Constructs[i].ItemNames()...)
	}
	return out
}

// Construct looks a construct up by name.
func (m *Model) Construct(name string) (*Construct, bool) {
	for i := range m.Constructs {
		if m.Constructs[i].Name == name {
			return &m.Constructs[i], true
		}
	}
	return nil, false
}

// Index maps construct name → declaration position. On duplicate names
// the first declaration wins.
func (m *Model) Index() map[string]int {
	idx := make(map[string]int, len(m.Constructs))
	for i := range m.Constructs {
		if _, dup := idx[m.Constructs[i].Name]; !dup {
			idx[m.Constructs[i].Name] = i
		}
	}
	return idx
}

// CheckPaths fails with ErrUnknownConstruct (naming the construct) on the
// first path endpoint that is not declared. Both numeric packages call it
// before doing any work.
func (m *Model) CheckPaths() error {
	idx := m.Index()
	for _, p := range m.Paths {
		if _, ok := idx[p.From]; !ok {
			return unknownConstruct(p.From)
		}
		if _, ok := idx[p.To]; !ok {
			return unknownConstruct(p.To)
		}
	}
	return nil
}

// Request bundles a model with the generation settings that travel with it
// in a spec file.
type Request struct {
	SampleSize  int     `json:"sample_size"`
	LikertScale int     `json:"likert_scale"`
	AddNoise    bool    `json:"add_noise"`
	NoiseLevel  float64 `json:"noise_level"`
	Seed        *int64  `json:"random_seed,omitempty"`
	Model       Model   `json:"model"`
}
