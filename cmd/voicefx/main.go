// Command voicefx applies voice-changer preset chains to a WAV file.
//
// Usage:
//
//	voicefx --input in.wav --output out [flags]
//
// Every selected preset writes <output>/<name>.wav. Presets that fail are
// reported on stderr and skipped; the batch keeps going.
//
// Examples:
//
//	voicefx --list
//	voicefx -i speech.wav -o out
//	voicefx -i speech.wav -o out -p robot_vocoder -p demon
//	voicefx -i speech.wav -o out --chains my_chains.yaml --seed 42
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-voicefx/dsp/buffer"
	"github.com/cwbudde/algo-voicefx/dsp/engine"
	"github.com/cwbudde/algo-voicefx/dsp/preset"
	"github.com/cwbudde/algo-voicefx/wavio"
)

type options struct {
	input     string
	output    string
	presets   []string
	chains    string
	stretcher string
	seed      uint64
	list      bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "voicefx: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "voicefx",
		Short:         "Apply voice-changer preset chains to a WAV file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input WAV file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "out", "output directory")
	cmd.Flags().StringArrayVarP(&opts.presets, "preset", "p", nil,
		"preset to apply (repeatable; default: all)")
	cmd.Flags().StringVar(&opts.chains, "chains", "",
		"YAML file with additional preset chains")
	cmd.Flags().StringVar(&opts.stretcher, "stretcher", engine.StretcherVocoder.String(),
		"time stretcher backend (vocoder or wsola)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "seed for noise-based effects")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list available presets and exit")

	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	reg, err := buildRegistry(opts)
	if err != nil {
		return err
	}

	if opts.list {
		for _, name := range reg.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}

		return nil
	}

	if opts.input == "" {
		return fmt.Errorf("--input is required (or --list to show presets)")
	}

	in, err := wavio.Load(opts.input)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	results, err := runPresets(reg, opts.presets, in)
	if err != nil {
		return err
	}

	return writeResults(cmd, opts.output, results)
}

func buildRegistry(opts options) (*preset.Registry, error) {
	kind, err := engine.ParseStretcherKind(opts.stretcher)
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(engine.WithStretcher(kind))
	if err != nil {
		return nil, err
	}

	reg, err := preset.NewRegistry(eng, preset.WithNoiseSeed(opts.seed))
	if err != nil {
		return nil, err
	}

	if err := preset.RegisterBuiltins(reg); err != nil {
		return nil, err
	}

	if opts.chains == "" {
		return reg, nil
	}

	chains, err := preset.LoadChains(opts.chains)
	if err != nil {
		return nil, err
	}

	for _, chain := range chains {
		if err := reg.Register(chain); err != nil {
			return nil, err
		}
	}

	return reg, nil
}

// runPresets applies the named presets, or every registered preset when
// names is empty. Naming an unregistered preset is an argument error and
// aborts before any processing.
func runPresets(reg *preset.Registry, names []string, in buffer.Buffer) (map[string]preset.Result, error) {
	if len(names) == 0 {
		return reg.RunAll(in), nil
	}

	for _, name := range names {
		if _, ok := reg.Lookup(name); !ok {
			return nil, fmt.Errorf("unknown preset %q (use --list)", name)
		}
	}

	results := make(map[string]preset.Result, len(names))
	for _, name := range names {
		out, err := reg.Run(name, in)
		results[name] = preset.Result{Output: out, Err: err}
	}

	return results, nil
}

func writeResults(cmd *cobra.Command, dir string, results map[string]preset.Result) error {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}

	sort.Strings(names)

	failed := 0
	writeErrs := 0

	for _, name := range names {
		res := results[name]
		if res.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "voicefx: %v\n", res.Err)
			failed++

			continue
		}

		path := filepath.Join(dir, name+".wav")
		if err := wavio.Save(path, res.Output); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "voicefx: %v\n", err)

			failed++
			writeErrs++

			continue
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	switch {
	case len(results) > 0 && failed == len(results):
		return fmt.Errorf("all %d presets failed", failed)
	case writeErrs > 0:
		return fmt.Errorf("%d of %d outputs could not be written", writeErrs, len(results))
	}

	return nil
}
