// SPDX-License-Identifier: MIT

package synth

import "github.com/katalvlaran/semsynth/model"

// PreviewResult describes what Generate will aim for without drawing data.
type PreviewResult struct {
	CorrelationMatrix  [][]float64             `json:"expected_correlation_matrix"`
	ConstructOrder     []string                `json:"construct_order"`
	ExpectedStatistics map[string][]model.Item `json:"expected_statistics"`
	PathsSummary       []model.Path            `json:"paths_summary"`
	Cycles             [][]string              `json:"cycles,omitempty"`
}

// Preview returns the projected construct correlation matrix, the requested
// item parameters per construct, the paths and any path cycles.
//
// Errors: as CorrelationStructure.
func Preview(m *model.Model) (*PreviewResult, error) {
	names, corr, err := CorrelationStructure(m)
	if err != nil {
		return nil, err
	}
	res := &PreviewResult{
		CorrelationMatrix:  corr.ToRows(),
		ConstructOrder:     names,
		ExpectedStatistics: make(map[string][]model.Item, len(m.Constructs)),
		PathsSummary:       append([]model.Path(nil), m.Paths...),
	}
	for _, c := range m.Constructs {
		res.ExpectedStatistics[c.Name] = append([]model.Item(nil), c.Items...)
	}
	if g, gerr := model.NewGraph(m); gerr == nil {
		res.Cycles = model.DetectCycles(g)
	}
	return res, nil
}
