// SPDX-License-Identifier: MIT

package main

import (
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is stamped at build time.
var Version = "dev"

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	log     zerolog.Logger
	runID   string
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper(), log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "semsynth",
		Short: "Synthetic survey data for SEM / PLS-SEM models",
		Long: `semsynth draws Likert-scale survey responses whose construct scores follow
a hypothesized path model, and validates survey data against such a model
(normality, reliability, discriminant validity, structural paths, mediation,
moderation, collinearity and global fit).

Model files are YAML, JSON or TOML. Data files are CSV or JSON records.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.init(cmd) },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default ./semsynth.yaml)")
	pf.String("log-level", "warn", "log level: trace, debug, info, warn, error")
	pf.Bool("no-color", false, "disable colored output")
	bindFlags(a.v, pf, map[string]string{keyLogLevel: "log-level", keyNoColor: "no-color"})

	root.AddCommand(
		a.generateCmd(),
		a.validateCmd(),
		a.previewCmd(),
		a.sampleSizeCmd(),
		a.criteriaCmd(),
		a.templatesCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	if err := loadConfig(a.v, a.cfgFile); err != nil {
		return err
	}
	noColor := a.v.GetBool(keyNoColor)
	if noColor {
		color.NoColor = true
	}
	log, err := newLogger(cmd.ErrOrStderr(), a.v.GetString(keyLogLevel), noColor)
	if err != nil {
		return err
	}
	a.runID = uuid.NewString()
	a.log = log.With().Str("run_id", a.runID).Str("cmd", cmd.Name()).Logger()
	a.log.Debug().Str("config", a.v.ConfigFileUsed()).Msg("configuration loaded")
	return nil
}
