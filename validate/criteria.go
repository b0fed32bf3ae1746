// SPDX-License-Identifier: MIT

package validate

// Criteria is the catalogue of thresholds the validator applies, with the
// literature they come from.
type Criteria struct {
	Normality       NormalityCriteria   `json:"normality"`
	Reliability     ReliabilityCriteria `json:"reliability"`
	Validity        ValidityCriteria    `json:"validity"`
	StructuralModel StructuralCriteria  `json:"structural_model"`
	ModelFit        FitCriteria         `json:"model_fit"`
	References      []string            `json:"references"`
}

// NormalityCriteria lists the normality tests and acceptance ranges.
type NormalityCriteria struct {
	Tests    []string   `json:"tests"`
	PValue   float64    `json:"p_value"`
	Skewness [2]float64 `json:"skewness"`
	Kurtosis [2]float64 `json:"kurtosis"`
}

// Levels maps a label ("threshold", "good", …) to a cut-off.
type Levels map[string]float64

// ReliabilityCriteria holds the alpha, CR and AVE cut-offs.
type ReliabilityCriteria struct {
	CronbachAlpha        Levels `json:"cronbach_alpha"`
	CompositeReliability Levels `json:"composite_reliability"`
	AVE                  Levels `json:"ave"`
}

// ValidityCriteria describes the discriminant-validity rules.
type ValidityCriteria struct {
	FornellLarcker string `json:"fornell_larcker"`
	HTMT           Levels `json:"htmt"`
}

// StructuralCriteria holds the R², f² and VIF cut-offs.
type StructuralCriteria struct {
	RSquared Levels `json:"r_squared"`
	FSquared Levels `json:"f_squared"`
	VIF      Levels `json:"vif"`
}

// FitCriteria holds the GoF and SRMR cut-offs.
type FitCriteria struct {
	GoF  Levels `json:"gof"`
	SRMR Levels `json:"srmr"`
}

// DefaultCriteria returns the thresholds used by Validate.
func DefaultCriteria() Criteria {
	return Criteria{
		Normality: NormalityCriteria{
			Tests:    []string{"Kolmogorov-Smirnov", "Shapiro-Wilk"},
			PValue:   DefaultAlpha,
			Skewness: [2]float64{-maxAbsSkew, maxAbsSkew},
			Kurtosis: [2]float64{-maxAbsKurtosis, maxAbsKurtosis},
		},
		Reliability: ReliabilityCriteria{
			CronbachAlpha:        Levels{"threshold": minAlpha, "acceptable": minAlpha, "good": 0.8, "excellent": 0.9},
			CompositeReliability: Levels{"threshold": minCR, "excellent": 0.9},
			AVE:                  Levels{"threshold": minAVE, "good": 0.7},
		},
		Validity: ValidityCriteria{
			FornellLarcker: "squared correlation < AVE of the construct",
			HTMT:           Levels{"threshold": maxHTMT, "conservative": maxHTMT, "liberal": 0.90},
		},
		StructuralModel: StructuralCriteria{
			RSquared: Levels{"substantial": 0.75, "moderate": 0.50, "weak": 0.25},
			FSquared: Levels{"large": 0.35, "medium": 0.15, "small": 0.02},
			VIF:      Levels{"threshold": maxAcceptableVIF, "ideal": maxGoodVIF},
		},
		ModelFit: FitCriteria{
			GoF:  Levels{"large": 0.36, "medium": 0.25, "small": 0.10},
			SRMR: Levels{"threshold": maxSRMR},
		},
		References: []string{
			"Hair et al. (2019) - PLS-SEM guidelines",
			"Henseler et al. (2015) - HTMT",
			"Fornell & Larcker (1981) - Discriminant validity",
		},
	}
}
