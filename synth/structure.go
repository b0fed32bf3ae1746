// SPDX-License-Identifier: MIT

package synth

import (
	"github.com/katalvlaran/semsynth/matrix"
	"github.com/katalvlaran/semsynth/model"
)

const opStructure = "CorrelationStructure"

// CorrelationStructure builds the construct correlation matrix implied by
// the paths. Rows and columns follow m.ConstructNames(). Each path writes its
// beta to both (from, to) and (to, from); later paths overwrite earlier ones
// and self-loops leave the unit diagonal alone. The raw matrix is projected
// with matrix.NearestPD and rescaled to a unit diagonal.
//
// Errors:
//   - ErrNilModel, ErrEmptyModel.
//   - model.ErrUnknownConstruct naming the first undeclared path endpoint.
//   - matrix sentinels from the projection (non-finite betas, repair
//     exhaustion).
func CorrelationStructure(m *model.Model) ([]string, *matrix.Dense, error) {
	if m == nil {
		return nil, nil, synthErrorf(opStructure, ErrNilModel)
	}
	if len(m.Constructs) == 0 {
		return nil, nil, synthErrorf(opStructure, ErrEmptyModel)
	}
	if err := m.CheckPaths(); err != nil {
		return nil, nil, synthErrorf(opStructure, err)
	}

	names := m.ConstructNames()
	idx := m.Index()
	raw, err := matrix.NewIdentity(len(names))
	if err != nil {
		return nil, nil, synthErrorf(opStructure, err)
	}
	for _, p := range m.Paths {
		i, j := idx[p.From], idx[p.To]
		if i == j {
			continue
		}
		if err = raw.Set(i, j, p.Beta); err != nil {
			return nil, nil, synthErrorf(opStructure, err)
		}
		if err = raw.Set(j, i, p.Beta); err != nil {
			return nil, nil, synthErrorf(opStructure, err)
		}
	}

	pd, err := matrix.NearestPD(raw)
	if err != nil {
		return nil, nil, synthErrorf(opStructure, err)
	}
	corr, err := matrix.ToCorrelation(pd)
	if err != nil {
		return nil, nil, synthErrorf(opStructure, err)
	}
	return names, corr, nil
}
