package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/paramparser"
	"github.com/dmitrymomot/paramparser/pkg/binder"
	"github.com/dmitrymomot/paramparser/pkg/specfile"
)

type validateOptions struct {
	spec   string
	input  string
	output string
}

func newValidateCmd(a *app) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate one record against a spec file",
		Long: `Validate reads a record from --input (JSON by default, YAML or TOML by file
extension, "-" for stdin) and checks it against the spec file given with --spec.

The cleaned record is printed on success. Otherwise the failure kind and
messages are printed and the command exits with status 1.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runValidate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.spec, "spec", "s", "", "spec file (.yaml, .yml, .json or .toml)")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "record file, - for stdin")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "json", "output format: json, yaml or spew")
	_ = cmd.MarkFlagRequired("spec")

	return cmd
}

func (a *app) runValidate(cmd *cobra.Command, opts *validateOptions) error {
	write, err := writer(opts.output)
	if err != nil {
		return err
	}

	spec, defaults, err := specfile.Load(opts.spec)
	if err != nil {
		return err
	}

	record, err := readRecord(cmd.InOrStdin(), opts.input)
	if err != nil {
		return err
	}

	parser := paramparser.New(
		paramparser.WithLogger(a.log),
		paramparser.WithEnvironment(a.cfg.environment()),
	)

	out, err := parser.Parse(record, spec, defaults)
	if err != nil {
		ve, ok := paramparser.AsValidateError(err)
		if !ok {
			return err
		}
		if werr := write(cmd.OutOrStdout(), failureReport(ve)); werr != nil {
			return werr
		}
		return &exitError{code: 1, err: err}
	}

	return write(cmd.OutOrStdout(), out)
}

type failure struct {
	Field   string `json:"field,omitempty" yaml:"field,omitempty"`
	Message string `json:"message" yaml:"message"`
}

type report struct {
	Kind     string    `json:"kind" yaml:"kind"`
	Failures []failure `json:"failures" yaml:"failures"`
}

func failureReport(ve *paramparser.ValidateError) report {
	r := report{Kind: string(ve.Kind)}
	for _, e := range ve.Errors {
		r.Failures = append(r.Failures, failure{Field: e.Field, Message: e.Message})
	}
	return r
}

// readRecord decodes the record at name. The format follows the file
// extension; stdin and unknown extensions are read as JSON.
func readRecord(stdin io.Reader, name string) (paramparser.Record, error) {
	var (
		data []byte
		err  error
	)
	if name == "" || name == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var record map[string]any
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &record)
	case ".toml":
		err = toml.Unmarshal(data, &record)
	default:
		record, err = binder.DecodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode input: %w", err)
	}
	if record == nil {
		record = paramparser.Record{}
	}
	return record, nil
}

type writeFunc func(w io.Writer, v any) error

func writer(format string) (writeFunc, error) {
	switch strings.ToLower(format) {
	case "json":
		return func(w io.Writer, v any) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(v)
		}, nil
	case "yaml":
		return func(w io.Writer, v any) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(plain(v)); err != nil {
				return err
			}
			return enc.Close()
		}, nil
	case "spew":
		return func(w io.Writer, v any) error {
			cfg := spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}
			cfg.Fdump(w, v)
			return nil
		}, nil
	}
	return nil, fmt.Errorf("unsupported output format %q (use json, yaml or spew)", format)
}

// plain replaces json.Number values with int64 or float64 so YAML renders
// them as numbers instead of strings.
func plain(v any) any {
	switch x := v.(type) {
	case json.Number:
		if n, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(string(x), 64); err == nil {
			return f
		}
		return string(x)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = plain(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = plain(val)
		}
		return out
	}
	return v
}
