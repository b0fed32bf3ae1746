// SPDX-License-Identifier: MIT

// Command semsynth generates synthetic Likert survey data for structural
// equation models and validates survey data against a model.
//
//	semsynth generate --spec model.yaml --out data.csv
//	semsynth validate --spec model.yaml --data data.csv
//	semsynth preview  --template TAM
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
