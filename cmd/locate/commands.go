package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-location"
)

const envBase = "LOCATION_BASE"

type options struct {
	base        string
	caseFolding string
	envFiles    []string
	noColor     bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "locate",
		Short: "Inspect how locations resolve against an application base",
		Long: `locate resolves, joins and encodes locations the way a mounted
router sees them, and replays navigation steps against a source.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if len(opts.envFiles) > 0 {
				if err := godotenv.Load(opts.envFiles...); err != nil {
					return fmt.Errorf("load env files: %w", err)
				}
			}
			if !cmd.Flags().Changed("base") {
				if base, ok := os.LookupEnv(envBase); ok {
					opts.base = base
				}
			}
			switch location.CaseFolding(opts.caseFolding) {
			case location.CaseFoldingSimple, location.CaseFoldingFull:
			default:
				return fmt.Errorf("unknown case folding %q", opts.caseFolding)
			}
			if opts.noColor {
				color.NoColor = true
			}
			location.LoggerEnabled = opts.verbose
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.base, "base", "b", "", "application base path (default $"+envBase+")")
	flags.StringVar(&opts.caseFolding, "case-folding", string(location.CaseFoldingSimple), "segment comparison: simple or full")
	flags.StringSliceVar(&opts.envFiles, "env-file", nil, "dotenv files to load before reading the environment")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log navigation and window events")

	rootCmd.AddCommand(
		newResolveCmd(opts),
		newJoinCmd(opts),
		newDecodeCmd(),
		newEncodeCmd(),
		newSimulateCmd(opts),
	)

	return rootCmd
}

func (o *options) newBase() location.Base {
	return location.NewBase(o.base, location.WithBaseCaseFolding(location.CaseFolding(o.caseFolding)))
}

var (
	outsideBase = color.New(color.FgYellow).SprintFunc()
	stepLabel   = color.New(color.FgCyan).SprintFunc()
	faint       = color.New(color.Faint).SprintFunc()
)

func formatLocation(loc string) string {
	if strings.HasPrefix(loc, location.OutsideBaseMarker) {
		return outsideBase(loc)
	}
	return loc
}

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Strip the base from raw paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := opts.newBase()
			for _, raw := range args {
				fmt.Fprintln(cmd.OutOrStdout(), formatLocation(base.Strip(raw)))
			}
			return nil
		},
	}
}

func newJoinCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "join <location>...",
		Short: "Prefix relative locations with the base",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base := opts.newBase()
			for _, rel := range args {
				fmt.Fprintln(cmd.OutOrStdout(), base.Join(rel))
			}
			return nil
		},
	}
}

func newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <text>...",
		Short: "Percent-decode paths, keeping reserved characters encoded",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				fmt.Fprintln(cmd.OutOrStdout(), location.Decode(s))
			}
			return nil
		},
	}
}

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <text>...",
		Short: "Percent-encode paths the way an address bar does",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				fmt.Fprintln(cmd.OutOrStdout(), location.Encode(s))
			}
			return nil
		},
	}
}
