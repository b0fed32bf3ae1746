// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/semsynth/validate"
)

// reportEnvelope is the JSON document written by the validate command.
type reportEnvelope struct {
	RunID  string           `json:"run_id"`
	Model  string           `json:"model"`
	Data   string           `json:"data"`
	Alpha  float64          `json:"alpha"`
	Report *validate.Report `json:"report"`
}

type validateFlags struct {
	modelFlags
	data    string
	format  string
	out     string
	summary bool
	strict  bool
}

func (a *app) validateCmd() *cobra.Command {
	var f validateFlags
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate survey data against a model",
		Long: `Validate scores every construct from its items and reports normality,
reliability (alpha, CR, AVE), discriminant validity (Fornell-Larcker, HTMT,
cross-loadings), path estimates, mediation, moderation, VIF and model fit.

The JSON report goes to --out (default stdout); a colored summary goes to
stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error { return a.runValidate(cmd, &f) },
	}
	f.register(cmd)
	fs := cmd.Flags()
	fs.StringVarP(&f.data, "data", "d", "-", "data file (.csv or .json), - for stdin")
	fs.StringVar(&f.format, "format", "", "data format: csv or json (default from --data extension, else csv)")
	fs.StringVarP(&f.out, "out", "o", "", "report file (default stdout)")
	fs.Float64("alpha", validate.DefaultAlpha, "significance level")
	fs.BoolVar(&f.summary, "summary", true, "print a construct summary to stderr")
	fs.BoolVar(&f.strict, "strict", false, "exit non-zero when the overall check fails")
	bindFlags(a.v, fs, map[string]string{keyAlpha: "alpha"})
	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, f *validateFlags) error {
	req, err := f.load()
	if err != nil {
		return err
	}
	format, err := dataFormat(a.formatOr(f.format), f.data)
	if err != nil {
		return err
	}
	alpha := a.v.GetFloat64(keyAlpha)
	if !(alpha > 0 && alpha < 1) {
		return fmt.Errorf("alpha must be within (0, 1), got %g", alpha)
	}

	r, err := openInput(cmd, f.data)
	if err != nil {
		return err
	}
	t, err := readTable(r, format)
	r.Close()
	if err != nil {
		return fmt.Errorf("read data: %w", err)
	}

	rep, err := validate.Run(t, &req.Model, validate.WithAlpha(alpha), validate.WithLogger(a.log))
	if err != nil {
		return err
	}

	w, err := createOutput(cmd, f.out)
	if err != nil {
		return err
	}
	env := reportEnvelope{RunID: a.runID, Model: f.source(), Data: f.data, Alpha: alpha, Report: rep}
	if err = writeJSON(w, env); err != nil {
		w.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	a.log.Info().Int("rows", rep.Rows).Bool("valid", rep.OverallValid).Int("issues", len(rep.OverallIssues)).Msg("validation finished")
	if f.summary {
		fmt.Fprintln(cmd.ErrOrStderr(), renderSummary(rep, req.Model.ConstructNames(), a.v.GetBool(keyNoColor)))
	}
	if f.strict && !rep.OverallValid {
		return fmt.Errorf("overall validity failed with %d issue(s)", len(rep.OverallIssues))
	}
	return nil
}
