// Command optiqctl loads a JSON-encoded logical plan fixture, runs the
// default rule executor over it, and prints the plan before and after so a
// developer can eyeball what a rule batch actually did.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/optiqdb/optiq/pkg/config"
	"github.com/optiqdb/optiq/pkg/metrics"
	"github.com/optiqdb/optiq/pkg/optimizer"
	"github.com/optiqdb/optiq/pkg/tree"
)

var (
	cfgFile  string
	planFile string
	logger   *zap.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "optiqctl",
	Short: "Run the optiq rule executor over a fixture plan",
	Long: `optiqctl loads a JSON-encoded logical plan, runs the default
FixedPoint optimization batch over it, and prints the plan before and after
as a pretty-printed tree, for inspecting what the rule library did to a
specific shape without writing a Go test.`,
	RunE: run,
}

func init() {
	cobra.OnInitialize(initLogger)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default search path is /etc/optiq, $HOME/.optiq, .)")
	rootCmd.Flags().StringVar(&planFile, "plan", "", "path to a JSON-encoded plan fixture (or set plan_file in config)")
}

func initLogger() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	defer logger.Sync()

	cliCfg, err := config.LoadCLIConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if planFile == "" {
		planFile = cliCfg.PlanFile
	}
	if planFile == "" {
		return fmt.Errorf("optiqctl: --plan is required (or set plan_file in config)")
	}

	data, err := os.ReadFile(planFile)
	if err != nil {
		return fmt.Errorf("reading plan file: %w", err)
	}

	p, err := DecodePlanJSON(data)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector("optiqctl")

	logger.Info("running optimizer", zap.String("plan_file", planFile))
	fmt.Println("before:")
	fmt.Println(tree.PrettyTree(p))

	out, err := optimizer.Optimize(p,
		optimizer.WithLogger(logger),
		optimizer.WithMetrics(collector),
	)
	if err != nil {
		if oerr, ok := err.(*optimizer.OptimizerError); ok && !oerr.IsFatal() {
			logger.Warn("optimizer did not converge, showing best-effort plan", zap.Error(oerr))
		} else {
			return fmt.Errorf("optimizing plan: %w", err)
		}
	}

	fmt.Println("after:")
	fmt.Println(tree.PrettyTree(out))
	return nil
}
