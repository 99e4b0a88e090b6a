package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sghaida/patterns/behavioral/strategy"
	"github.com/sghaida/patterns/catalog"
	"github.com/sghaida/patterns/creational/abstractfactory"
	"github.com/sghaida/patterns/creational/factorymethod"
	"github.com/sghaida/patterns/internal/config"
	"github.com/sghaida/patterns/internal/logging"
	"github.com/sghaida/patterns/internal/numfmt"
	"github.com/sghaida/patterns/internal/web"
	"github.com/sghaida/patterns/structural/composite"
	"github.com/sghaida/patterns/structural/decorator"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(catalog.Default())
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

func newRootCmd(reg *catalog.Registry) *cobra.Command {
	root := &cobra.Command{
		Use:           "patterns",
		Short:         "Classic design patterns, runnable",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newListCmd(reg),
		newRunCmd(reg),
		newStrategyCmd(),
		newAbstractFactoryCmd(),
		newFactoryMethodCmd(),
		newCompositeCmd(),
		newDecoratorCmd(),
		newServeCmd(),
	)
	return root
}

func newListCmd(reg *catalog.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range reg.Names() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newRunCmd(reg *catalog.Registry) *cobra.Command {
	return &cobra.Command{
		Use:       "run <demo>",
		Short:     "Run one demo",
		Args:      cobra.ExactArgs(1),
		ValidArgs: reg.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return reg.Run(args[0], cmd.OutOrStdout())
		},
	}
}

func newStrategyCmd() *cobra.Command {
	var op string
	cmd := &cobra.Command{
		Use:   "strategy <a> <b>",
		Short: "Apply one arithmetic strategy to two numbers",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := strategy.Lookup(op)
			if err != nil {
				return err
			}
			a, err := parseNumber(args[0])
			if err != nil {
				return err
			}
			b, err := parseNumber(args[1])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), numfmt.Format(strategy.NewContext(s).Calculate(a, b)))
			return nil
		},
	}
	cmd.Flags().StringVar(&op, "op", "add", "one of add, subtract, multiply, divide")
	return cmd
}

func newAbstractFactoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "abstract-factory <family>",
		Short:     "Render the button and checkbox of a widget family",
		Args:      cobra.ExactArgs(1),
		ValidArgs: abstractfactory.Families(),
		RunE: func(cmd *cobra.Command, args []string) error {
			gui, err := abstractfactory.ForFamily(args[0])
			if err != nil {
				return err
			}
			return abstractfactory.Program(cmd.OutOrStdout(), gui)
		},
	}
}

func newFactoryMethodCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "factory-method <platform>",
		Short:     "Greet the user from a platform",
		Args:      cobra.ExactArgs(1),
		ValidArgs: factorymethod.Platforms(),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, err := factorymethod.ForPlatform(args[0])
			if err != nil {
				return err
			}
			return factorymethod.ClientCode(cmd.OutOrStdout(), platform)
		},
	}
}

func newCompositeCmd() *cobra.Command {
	var roofType, material, width, length string
	cmd := &cobra.Command{
		Use:   "composite",
		Short: "Estimate roof materials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := composite.RoofParams{
				Width:  composite.ParseDimension(width),
				Length: composite.ParseDimension(length),
			}
			total := composite.CalculateMaterialsForRoofType(roofType, material, params)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), composite.Summary(total))
			return nil
		},
	}
	cmd.Flags().StringVar(&roofType, "roof-type", composite.RoofSingleSlope, "single-slope, double-slope or four-slope")
	cmd.Flags().StringVar(&material, "material", composite.MaterialRoll, "roll, tile, sheet, film or mastic")
	cmd.Flags().StringVar(&width, "width", "", "roof width")
	cmd.Flags().StringVar(&length, "length", "", "roof length")
	return cmd
}

func newDecoratorCmd() *cobra.Command {
	var f decorator.Features
	cmd := &cobra.Command{
		Use:   "decorator",
		Short: "Describe a drug with optional attributes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), decorator.ApplyFeatures(f).Info())
			return nil
		},
	}
	cmd.Flags().StringVar(&f.Name, "name", "", "drug name")
	cmd.Flags().StringVar(&f.Expiration, "expiration", "", "expiration date (skipped when empty)")
	cmd.Flags().StringVar(&f.Dosage, "dosage", "", "dosage (skipped when empty)")
	cmd.Flags().StringVar(&f.Manufacturer, "manufacturer", "", "manufacturer (skipped when empty)")
	return cmd
}

func newServeCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalogue over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Log.Level)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			zap.ReplaceGlobals(logger)

			if cfg.HTTP.Mode != "" {
				gin.SetMode(cfg.HTTP.Mode)
			}
			return web.New(cfg.HTTP, logger).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file (optional)")
	return cmd
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}
