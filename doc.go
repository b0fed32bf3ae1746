// SPDX-License-Identifier: MIT

// Package semsynth generates synthetic Likert-scale survey data for
// structural equation models (SEM / PLS-SEM) and validates survey data
// against such models.
//
// A model is a set of latent constructs, each measured by observed items,
// plus hypothesized directed paths between constructs and optional
// demographic variables. The generator draws one row per respondent so that
// construct scores follow the declared path coefficients; the validator
// scores the constructs back from the items and reports the measurement and
// structural diagnostics a PLS-SEM study is judged by.
//
// Everything is organized under five packages and one command:
//
//	model/    — constructs, items, paths, demographics; spec decoding
//	            (YAML/JSON/TOML), boundary validation, path graph and cycle
//	            detection, templates, sample-size advice
//	matrix/   — dense matrices, Cholesky, nearest positive-definite
//	            projection, correlation and OLS kernels
//	dataset/  — ordered column tables with CSV and JSON record codecs
//	synth/    — correlation structure, power-transform marginals, path
//	            propagation, noise, demographics, preview
//	validate/ — normality, reliability, discriminant validity, structural
//	            paths, mediation, moderation, VIF, GoF/SRMR, overall check
//	cmd/semsynth — cobra CLI over the packages above
//
// Quick example:
//
//	tpl, _ := model.LookupTemplate("TAM")
//	data, _ := synth.Generate(&tpl.Model, 300, synth.WithSeed(42))
//	rep, _ := validate.Run(data, &tpl.Model)
//	fmt.Println(rep.OverallValid)
//
// Determinism: with a fixed seed, Generate returns bit-identical tables.
//
//	go get github.com/katalvlaran/semsynth
package semsynth
