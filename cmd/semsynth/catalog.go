// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/semsynth/model"
	"github.com/katalvlaran/semsynth/validate"
)

func (a *app) sampleSizeCmd() *cobra.Command {
	in := model.SampleSizeInput{}
	cmd := &cobra.Command{
		Use:   "sample-size",
		Short: "Recommend a sample size for a PLS-SEM study",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			advice, err := model.RecommendSampleSize(in)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), advice)
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&in.Constructs, "constructs", 4, "number of constructs (2-20)")
	fs.IntVar(&in.ItemsPerConstruct, "items", 3, "items per construct (3-10)")
	fs.Float64Var(&in.Power, "power", 0.8, "statistical power (0.7-0.95)")
	fs.StringVar(&in.EffectSize, "effect", "medium", "expected effect size: small, medium or large")
	return cmd
}

func (a *app) criteriaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "criteria",
		Short: "Print the validation thresholds and their references",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), validate.DefaultCriteria())
		},
	}
}

func (a *app) templatesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "templates [key]",
		Short: "List the built-in research model templates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				tpl, err := model.LookupTemplate(args[0])
				if err != nil {
					return err
				}
				return writeJSON(out, tpl)
			}
			tpls := model.Templates()
			if asJSON {
				return writeJSON(out, tpls)
			}
			key := color.New(color.FgCyan, color.Bold)
			for _, t := range tpls {
				key.Fprintf(out, "%-16s", t.Key)
				fmt.Fprintf(out, "%s: %s (%d constructs, %d paths)\n",
					t.Name, t.Description, len(t.Model.Constructs), len(t.Model.Paths))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print full templates as JSON")
	return cmd
}
