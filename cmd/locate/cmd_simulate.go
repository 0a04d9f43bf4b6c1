package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-location"
)

type simulateOptions struct {
	configPath string
	from       string
	timeout    time.Duration
}

func newSimulateCmd(opts *options) *cobra.Command {
	sim := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate <step>...",
		Short: "Replay navigation steps against a configured source",
		Long: `Replay navigation steps and print the location seen after each one.

Steps:
  push:<location>     navigate to a location relative to the base
  replace:<location>  navigate, replacing the current entry
  back                go back one history entry`,
		Example: `  locate simulate --base /app push:/users replace:/users/1 back
  locate simulate --config location.yaml push:~/logout`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := sim.config(cmd, opts)
			if err != nil {
				return err
			}
			return runSimulation(cmd.Context(), cmd.OutOrStdout(), cfg, sim.timeout, args)
		},
	}

	cmd.Flags().StringVarP(&sim.configPath, "config", "c", "", "YAML location config")
	cmd.Flags().StringVar(&sim.from, "from", "", "initial raw path of the memory source")
	cmd.Flags().DurationVar(&sim.timeout, "timeout", time.Second, "how long to wait for asynchronous events")

	return cmd
}

func (s *simulateOptions) config(cmd *cobra.Command, opts *options) (location.Config, error) {
	cfg := location.ConfigDefault
	if s.configPath != "" {
		loaded, err := location.LoadConfigFile(s.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("base") || cfg.Base == "" {
		cfg.Base = opts.base
	}
	if cmd.Flags().Changed("case-folding") {
		cfg.CaseFolding = location.CaseFolding(opts.caseFolding)
	}
	if s.from != "" {
		cfg.Memory.Path = s.from
	}
	if cfg.Source == location.SourceAuto || cfg.Source == location.SourceMemory {
		cfg.Source = location.SourceMemory
		cfg.Memory.Record = true
	}
	return cfg, nil
}

type traversable interface {
	Back() bool
}

type settler interface {
	Settle(ctx context.Context) error
}

func runSimulation(ctx context.Context, out io.Writer, cfg location.Config, timeout time.Duration, steps []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	r, err := cfg.Router()
	if err != nil {
		return err
	}
	defer r.Close()

	settle := func() error {
		s, ok := windowOf(r.Source()).(settler)
		if !ok {
			return nil
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return s.Settle(ctx)
	}

	fmt.Fprintf(out, "%s %s\n", stepLabel("start"), formatLocation(r.Location()))

	for _, step := range steps {
		action, to, _ := strings.Cut(step, ":")
		switch action {
		case "push":
			r.Navigate(to)
		case "replace":
			r.Navigate(to, location.Replace())
		case "back":
			t, ok := r.Source().(traversable)
			if !ok {
				t, ok = windowOf(r.Source()).(traversable)
			}
			if !ok || !t.Back() {
				return fmt.Errorf("step %q: no history to go back to", step)
			}
		default:
			return fmt.Errorf("unknown step %q", step)
		}

		if err := settle(); err != nil {
			return fmt.Errorf("step %q: %w", step, err)
		}

		fmt.Fprintf(out, "%s %s %s\n", stepLabel(step), formatLocation(r.Location()), faint(r.Source().Current()))
	}

	if mem, ok := r.Source().(*location.Memory); ok {
		if history := mem.History(); history != nil {
			fmt.Fprintf(out, "%s %s\n", stepLabel("history"), strings.Join(history, " "))
		}
	}
	return nil
}

func windowOf(src location.Source) location.Window {
	switch s := src.(type) {
	case *location.Browser:
		return s.Window()
	case *location.Hash:
		return s.Window()
	}
	return nil
}
