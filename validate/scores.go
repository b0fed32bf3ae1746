// SPDX-License-Identifier: MIT

package validate

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/semsynth/dataset"
	"github.com/katalvlaran/semsynth/model"
)

// prepared is the construct-level view of a table: scored constructs in
// model order, their item columns restricted to complete rows, and their
// scores (row means).
type prepared struct {
	m     *model.Model
	graph *model.Graph

	names  []string       // scored constructs, model order
	index  map[string]int // construct → position in names
	items  [][]string     // item names per scored construct
	scores [][]float64    // score per scored construct
	cols   map[string][]float64
	owner  map[string]string // item → construct, every model item
	n      int
}

func (p *prepared) scored(name string) bool {
	_, ok := p.index[name]
	return ok
}

func (p *prepared) score(name string) []float64 { return p.scores[p.index[name]] }

// itemColumn returns the item's column in t when it is present and numeric.
func itemColumn(t *dataset.Table, name string) ([]float64, bool) {
	if !t.IsNumeric(name) {
		return nil, false
	}
	col, err := t.Numeric(name)
	return col, err == nil
}

// prepare scores every construct whose items are all numeric columns of t.
// Rows holding a non-finite value in any scored item are dropped.
//
// Errors: model.ErrUnknownConstruct when a path names an undeclared
// construct.
func prepare(t *dataset.Table, m *model.Model, log zerolog.Logger) (*prepared, error) {
	g, err := model.NewGraph(m)
	if err != nil {
		return nil, err
	}
	p := &prepared{
		m:     m,
		graph: g,
		index: make(map[string]int),
		cols:  make(map[string][]float64),
		owner: make(map[string]string),
	}

	var raw [][]float64
	for ci := range m.Constructs {
		c := &m.Constructs[ci]
		for _, it := range c.Items {
			if _, dup := p.owner[it.Name]; !dup {
				p.owner[it.Name] = c.Name
			}
		}
		if _, dup := p.index[c.Name]; dup || len(c.Items) == 0 {
			continue
		}
		cols := make([][]float64, 0, len(c.Items))
		var missing []string
		for _, it := range c.Items {
			col, ok := itemColumn(t, it.Name)
			if !ok {
				missing = append(missing, it.Name)
				continue
			}
			cols = append(cols, col)
		}
		if len(missing) > 0 {
			log.Warn().Str("construct", c.Name).Strs("missing_items", missing).Msg("construct skipped")
			continue
		}
		p.index[c.Name] = len(p.names)
		p.names = append(p.names, c.Name)
		p.items = append(p.items, c.ItemNames())
		raw = append(raw, cols...)
	}

	keep := make([]int, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		complete := true
		for _, col := range raw {
			if math.IsNaN(col[i]) || math.IsInf(col[i], 0) {
				complete = false
				break
			}
		}
		if complete {
			keep = append(keep, i)
		}
	}
	if dropped := t.Len() - len(keep); dropped > 0 {
		log.Info().Int("dropped_rows", dropped).Int("rows", len(keep)).Msg("listwise deletion")
	}
	p.n = len(keep)

	for _, items := range p.items {
		for _, name := range items {
			src, _ := itemColumn(t, name)
			col := make([]float64, len(keep))
			for k, i := range keep {
				col[k] = src[i]
			}
			p.cols[name] = col
		}
	}
	for _, items := range p.items {
		s := make([]float64, p.n)
		for _, name := range items {
			for i, v := range p.cols[name] {
				s[i] += v
			}
		}
		k := float64(len(items))
		for i := range s {
			s[i] /= k
		}
		p.scores = append(p.scores, s)
	}
	return p, nil
}

// presentItems returns every model item that is a numeric column of t, in
// model order, with its non-finite values removed.
func presentItems(t *dataset.Table, m *model.Model) ([]string, map[string][]float64) {
	var names []string
	vals := make(map[string][]float64)
	for ci := range m.Constructs {
		for _, it := range m.Constructs[ci].Items {
			if _, seen := vals[it.Name]; seen {
				continue
			}
			col, ok := itemColumn(t, it.Name)
			if !ok {
				continue
			}
			clean := make([]float64, 0, len(col))
			for _, v := range col {
				if !math.IsNaN(v) && !math.IsInf(v, 0) {
					clean = append(clean, v)
				}
			}
			names = append(names, it.Name)
			vals[it.Name] = clean
		}
	}
	return names, vals
}
