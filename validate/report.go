// SPDX-License-Identifier: MIT

package validate

// Report is the full validation result. Map keys are item names
// (normality, descriptive stats, cross-loadings), construct names
// (reliability, R², VIF) or "A_vs_B" construct pairs (Fornell–Larcker, HTMT).
type Report struct {
	Normality         map[string]ItemNormality `json:"normality"`
	Reliability       map[string]Reliability   `json:"reliability"`
	Validity          Validity                 `json:"validity"`
	StructuralModel   Structural               `json:"structural_model"`
	Multicollinearity map[string]VIF           `json:"multicollinearity"`
	DescriptiveStats  map[string]Descriptive   `json:"descriptive_stats"`
	ModelFit          ModelFit                 `json:"model_fit"`
	OverallValid      bool                     `json:"overall_valid"`
	OverallIssues     []Issue                  `json:"overall_issues,omitempty"`
	Rows              int                      `json:"rows_used"`
}

// TestResult is one normality test. Fields are nil when the test was not
// run (Shapiro–Wilk for n >= 5000 or n < 3).
type TestResult struct {
	Statistic *float64 `json:"statistic"`
	PValue    *float64 `json:"p_value"`
	Normal    *bool    `json:"normal"`
}

// ItemNormality groups the normality diagnostics of one item.
type ItemNormality struct {
	KolmogorovSmirnov  TestResult `json:"kolmogorov_smirnov"`
	ShapiroWilk        TestResult `json:"shapiro_wilk"`
	Skewness           float64    `json:"skewness"`
	Kurtosis           float64    `json:"kurtosis"`
	SkewnessAcceptable bool       `json:"skewness_acceptable"`
	KurtosisAcceptable bool       `json:"kurtosis_acceptable"`
}

// Reliability holds the internal-consistency metrics of one construct.
type Reliability struct {
	CronbachAlpha        float64            `json:"cronbach_alpha"`
	CronbachAcceptable   bool               `json:"cronbach_acceptable"`
	CompositeReliability float64            `json:"composite_reliability"`
	CRAcceptable         bool               `json:"cr_acceptable"`
	AVE                  float64            `json:"ave"`
	AVEAcceptable        bool               `json:"ave_acceptable"`
	Loadings             map[string]float64 `json:"loadings"`
}

// Validity groups the discriminant-validity checks.
type Validity struct {
	FornellLarcker        map[string]FornellLarcker     `json:"fornell_larcker"`
	HTMT                  map[string]HTMT               `json:"htmt"`
	CrossLoadings         map[string]CrossLoading       `json:"cross_loadings"`
	ConstructCorrelations map[string]map[string]float64 `json:"construct_correlations"`
}

// FornellLarcker compares a squared construct correlation with the row
// construct's AVE.
type FornellLarcker struct {
	Correlation        float64 `json:"correlation"`
	SquaredCorrelation float64 `json:"squared_correlation"`
	AVE                float64 `json:"ave"`
	Valid              bool    `json:"valid"`
}

// HTMT is the (score-based) heterotrait–monotrait ratio of a construct pair.
type HTMT struct {
	HTMT  float64 `json:"htmt"`
	Valid bool    `json:"valid"`
}

// CrossLoading lists an item's correlation with every scored construct.
type CrossLoading struct {
	Loadings        map[string]float64 `json:"loadings"`
	OwnConstruct    string             `json:"own_construct"`
	OwnLoading      float64            `json:"own_loading"`
	MaxCrossLoading float64            `json:"max_cross_loading"`
	Valid           bool               `json:"valid"`
}

// Structural groups the structural-model results.
type Structural struct {
	Paths              []PathResult        `json:"paths"`
	RSquared           map[string]RSquared `json:"r_squared"`
	IndirectEffects    []IndirectEffect    `json:"indirect_effects"`
	TotalEffects       []TotalEffect       `json:"total_effects"`
	ModerationAnalysis []Moderation        `json:"moderation_analysis"`
}

// PathResult is the estimate for one hypothesized path.
type PathResult struct {
	From                string  `json:"from"`
	To                  string  `json:"to"`
	Beta                float64 `json:"beta"`
	TStatistic          float64 `json:"t_statistic"`
	PValue              float64 `json:"p_value"`
	Significant         bool    `json:"significant"`
	ExpectedSignificant bool    `json:"expected_significant"`
}

// RSquared is the explained variance of an endogenous construct.
type RSquared struct {
	RSquared       float64 `json:"r_squared"`
	Interpretation string  `json:"interpretation"`
}

// IndirectEffect is a two-hop mediation chain From → Mediator → To.
// IndirectEffect uses the hypothesized betas; EstimatedIndirectEffect uses
// standardized coefficients estimated from the data.
type IndirectEffect struct {
	Path                    string  `json:"path"`
	From                    string  `json:"from"`
	Mediator                string  `json:"mediator"`
	To                      string  `json:"to"`
	IndirectEffect          float64 `json:"indirect_effect"`
	BetaAM                  float64 `json:"beta_am"`
	BetaMC                  float64 `json:"beta_mc"`
	ZScore                  float64 `json:"z_score"`
	PValue                  float64 `json:"p_value"`
	Significant             bool    `json:"significant"`
	EstimatedIndirectEffect float64 `json:"estimated_indirect_effect"`
}

// TotalEffect combines a chain with the matching direct path.
type TotalEffect struct {
	From                  string  `json:"from"`
	To                    string  `json:"to"`
	Mediator              string  `json:"mediator"`
	DirectEffect          float64 `json:"direct_effect"`
	IndirectEffect        float64 `json:"indirect_effect"`
	TotalEffect           float64 `json:"total_effect"`
	MediationType         string  `json:"mediation_type"`
	VarianceAccountedFor  float64 `json:"variance_accounted_for"`
	EstimatedDirectEffect float64 `json:"estimated_direct_effect"`
}

// Moderation is one candidate moderator of a path.
type Moderation struct {
	Independent            string  `json:"independent"`
	Dependent              string  `json:"dependent"`
	Moderator              string  `json:"moderator"`
	InteractionCoefficient float64 `json:"interaction_coefficient"`
	R2Change               float64 `json:"r2_change"`
	FSquared               float64 `json:"f_squared"`
	EffectSize             string  `json:"effect_size"`
	Significant            bool    `json:"significant"`
	Interpretation         string  `json:"interpretation"`
}

// VIF is the variance inflation factor of one construct score.
type VIF struct {
	VIF        float64 `json:"vif"`
	Acceptable bool    `json:"acceptable"`
	Good       bool    `json:"good"`
}

// Descriptive holds per-item summary statistics.
type Descriptive struct {
	Mean     float64 `json:"mean"`
	Median   float64 `json:"median"`
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis"`
}

// ModelFit holds the global fit indices.
type ModelFit struct {
	GoF  GoF  `json:"gof"`
	SRMR SRMR `json:"srmr"`
}

// GoF is sqrt(mean AVE · mean R²).
type GoF struct {
	Value          float64 `json:"value"`
	Interpretation string  `json:"interpretation"`
}

// SRMR is the standardized root mean square residual between observed and
// loading-implied item correlations.
type SRMR struct {
	Value      float64 `json:"value"`
	Acceptable bool    `json:"acceptable"`
}
