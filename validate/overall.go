// SPDX-License-Identifier: MIT

package validate

import (
	"fmt"

	"github.com/katalvlaran/semsynth/model"
)

// Check names used in Issue.Check.
const (
	CheckScored        = "scored"
	CheckCronbachAlpha = "cronbach_alpha"
	CheckCR            = "composite_reliability"
	CheckAVE           = "ave"
	CheckVIF           = "vif"
)

// Issue is one failed overall-validity criterion.
type Issue struct {
	Construct string `json:"construct"`
	Check     string `json:"check"`
	Message   string `json:"message"`
}

// Overall is the aggregate verdict of CheckOverall.
type Overall struct {
	Valid  bool
	Issues []Issue
}

// CheckOverall passes when every construct of m has a reliability entry
// meeting alpha >= 0.7, CR >= 0.7 and AVE >= 0.5, and every reported VIF is
// acceptable (< 5). It lists each failure instead of stopping at the first.
// A nil report or model fails with a single issue.
func CheckOverall(rep *Report, m *model.Model) Overall {
	if rep == nil || m == nil {
		return Overall{Issues: []Issue{{Check: CheckScored, Message: "no report or model"}}}
	}
	var issues []Issue
	add := func(c, check, format string, args ...any) {
		issues = append(issues, Issue{Construct: c, Check: check, Message: fmt.Sprintf(format, args...)})
	}

	seen := make(map[string]struct{}, len(m.Constructs))
	for _, c := range m.Constructs {
		if _, dup := seen[c.Name]; dup {
			continue
		}
		seen[c.Name] = struct{}{}

		r, ok := rep.Reliability[c.Name]
		if !ok {
			add(c.Name, CheckScored, "no reliability entry (items missing from the data)")
			continue
		}
		if !r.CronbachAcceptable {
			add(c.Name, CheckCronbachAlpha, "cronbach's alpha %.3f below %.2f", r.CronbachAlpha, minAlpha)
		}
		if !r.CRAcceptable {
			add(c.Name, CheckCR, "composite reliability %.3f below %.2f", r.CompositeReliability, minCR)
		}
		if !r.AVEAcceptable {
			add(c.Name, CheckAVE, "AVE %.3f below %.2f", r.AVE, minAVE)
		}
		if v, ok := rep.Multicollinearity[c.Name]; ok && !v.Acceptable {
			add(c.Name, CheckVIF, "VIF %.3f not below %.0f", v.VIF, maxAcceptableVIF)
		}
	}
	return Overall{Valid: len(issues) == 0, Issues: issues}
}
