// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/semsynth/dataset"
	"github.com/katalvlaran/semsynth/model"
)

// Data file formats.
const (
	formatCSV  = "csv"
	formatJSON = "json"
)

var errNoModel = errors.New("one of --spec or --template is required")

// modelFlags are the model-source flags shared by generate, validate and
// preview.
type modelFlags struct {
	spec     string
	template string
}

func (f *modelFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.spec, "spec", "s", "", "model file (.yaml, .yml, .json, .toml)")
	cmd.Flags().StringVarP(&f.template, "template", "t", "", "built-in model template (see 'semsynth templates')")
	cmd.MarkFlagsMutuallyExclusive("spec", "template")
}

// load returns the request described by the spec file or template. A
// template request carries the default generation settings.
func (f *modelFlags) load() (*model.Request, error) {
	switch {
	case f.spec != "":
		return model.LoadRequest(f.spec)
	case f.template != "":
		tpl, err := model.LookupTemplate(f.template)
		if err != nil {
			return nil, err
		}
		return &model.Request{
			LikertScale: model.DefaultLikertScale,
			AddNoise:    true,
			NoiseLevel:  model.DefaultNoiseLevel,
			Model:       tpl.Model,
		}, nil
	}
	return nil, errNoModel
}

// source names the model for logs and report envelopes.
func (f *modelFlags) source() string {
	if f.spec != "" {
		return f.spec
	}
	return "template:" + f.template
}

// formatOr returns flag, or the configured data format when flag is empty.
func (a *app) formatOr(flag string) string {
	if flag != "" {
		return flag
	}
	return a.v.GetString(keyFormat)
}

// dataFormat picks the data format: an explicit choice wins, then the file
// extension, then CSV.
func dataFormat(explicit, path string) (string, error) {
	if explicit == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".json":
			return formatJSON, nil
		default:
			return formatCSV, nil
		}
	}
	switch f := strings.ToLower(explicit); f {
	case formatCSV, formatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unsupported data format %q (want csv or json)", explicit)
}

func readTable(r io.Reader, format string) (*dataset.Table, error) {
	if format == formatJSON {
		return dataset.ReadJSON(r)
	}
	return dataset.ReadCSV(r)
}

func writeTable(w io.Writer, t *dataset.Table, format string) error {
	if format == formatJSON {
		return t.WriteJSON(w)
	}
	return t.WriteCSV(w)
}

// openInput opens path, or returns stdin for "" and "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data: %w", err)
	}
	return f, nil
}

// createOutput creates path, or returns stdout for "" and "-".
func createOutput(cmd *cobra.Command, path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
