package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wildfunctions/exprfold/pkg/demo"
	"github.com/wildfunctions/exprfold/pkg/gen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := demo.DefaultConfig()

	root := &cobra.Command{
		Use:           "exprfold",
		Short:         "Build, evaluate, and constant-fold arithmetic expression trees",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfg.Format, "format", cfg.Format, "output format (text, json)")
	root.PersistentFlags().BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "log each transform")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the classic demonstration expressions",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := demo.New(cfg)
			if err != nil {
				return err
			}
			final, err := r.Scenarios()
			if err != nil {
				return err
			}
			return write(cmd, cfg.Format, final)
		},
	}

	randCmd := &cobra.Command{
		Use:   "rand",
		Short: "Generate random expressions and fold them",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := demo.New(cfg)
			if err != nil {
				return err
			}
			return write(cmd, cfg.Format, r.Random())
		},
	}
	randCmd.Flags().StringVar(&cfg.Profile, "profile", cfg.Profile,
		"generator profile ("+strings.Join(gen.Names(), ", ")+")")
	randCmd.Flags().IntVar(&cfg.Count, "count", cfg.Count, "number of expressions")
	randCmd.Flags().IntVar(&cfg.MaxDepth, "maxdepth", cfg.MaxDepth, "max tree depth")
	randCmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = random)")

	root.AddCommand(demoCmd, randCmd)
	return root
}

func write(cmd *cobra.Command, format string, final demo.FinalReport) error {
	switch format {
	case "json":
		return demo.WriteJSON(cmd.OutOrStdout(), final)
	default:
		demo.WriteText(cmd.OutOrStdout(), final)
		return nil
	}
}
