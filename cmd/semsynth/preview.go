// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/semsynth/model"
	"github.com/katalvlaran/semsynth/synth"
)

func (a *app) previewCmd() *cobra.Command {
	var f modelFlags
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the construct correlation structure a model implies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := f.load()
			if err != nil {
				return err
			}
			if err = model.ValidateModel(&req.Model); err != nil {
				return err
			}
			res, err := synth.Preview(&req.Model)
			if err != nil {
				return err
			}
			for _, c := range res.Cycles {
				a.log.Warn().Strs("cycle", c).Msg("path cycle")
				color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "warning: path cycle %v\n", c)
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
	f.register(cmd)
	return cmd
}
