package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lifesim/lifesim/internal/calculation"
	"github.com/lifesim/lifesim/internal/config"
	"github.com/lifesim/lifesim/internal/journal"
	"github.com/lifesim/lifesim/internal/modelpoints"
	"github.com/lifesim/lifesim/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lifesim",
	Short: "Insurance portfolio projection CLI",
	Long:  "Projects a portfolio of insurance policy groups forward in monthly steps and aggregates the resulting cashflows",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

var projectCmd = &cobra.Command{
	Use:   "project [scenario-file]",
	Short: "Run a projection and print the cashflow statement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenarioFile := args[0]

		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(scenarioFile)
		if err != nil {
			return err
		}
		model, err := cfg.BuildModel()
		if err != nil {
			return err
		}
		groups, err := modelpoints.Load(cfg.ModelPoints)
		if err != nil {
			return err
		}
		if err := cfg.ValidateModelPoints(model, groups); err != nil {
			return err
		}

		engine := calculation.NewEngine(model)
		result := engine.Project(groups, cfg.Simulation.Months, nil)

		if journalPath, _ := cmd.Flags().GetString("journal"); journalPath != "" {
			if err := recordRun(journalPath, scenarioFile, len(groups), result); err != nil {
				return fmt.Errorf("failed to journal run: %w", err)
			}
		}

		format, _ := cmd.Flags().GetString("format")
		formatter, err := output.NewFormatter(format)
		if err != nil {
			return err
		}
		rendered, err := formatter.Format(result)
		if err != nil {
			return err
		}

		if outFile, _ := cmd.Flags().GetString("output"); outFile != "" {
			return os.WriteFile(outFile, rendered, 0o644)
		}
		_, err = os.Stdout.Write(rendered)
		return err
	},
}

var estimateCmd = &cobra.Command{
	Use:   "estimate [scenario-file]",
	Short: "Back-solve level premiums from the scenario's assumptions",
	Long:  "Runs a decrement-only forward pass and writes a model-point table whose premiums cover the discounted expected claims plus loading",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cfg, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}
		model, err := cfg.BuildModel()
		if err != nil {
			return err
		}
		groups, err := modelpoints.Load(cfg.ModelPoints)
		if err != nil {
			return err
		}
		if err := cfg.ValidateModelPoints(model, groups); err != nil {
			return err
		}

		engine := calculation.NewEngine(model)
		months, _ := cmd.Flags().GetInt("months")
		if months <= 0 {
			months = cfg.Simulation.Months
		}
		estimated := engine.EstimatePremiums(groups, months)

		outFile, _ := cmd.Flags().GetString("out")
		if outFile == "" {
			return modelpoints.Write(os.Stdout, estimated)
		}
		if err := modelpoints.Save(outFile, estimated); err != nil {
			return err
		}
		fmt.Printf("Wrote %d model points to %s\n", len(estimated), outFile)
		return nil
	},
}

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List journaled projection runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		journalPath, _ := cmd.Flags().GetString("journal")
		j, err := journal.NewSQLite(journalPath)
		if err != nil {
			return err
		}
		defer j.Close()

		runs, err := j.ListRuns()
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs journaled yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "RUN\tWHEN\tCONFIG\tPRODUCT\tMONTHS\tGROUPS\tNET\tDISCOUNTED")
		for _, r := range runs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
				r.RunID,
				r.CreatedAt.Format("2006-01-02 15:04"),
				r.Config,
				r.Product,
				r.Months,
				r.GroupCount,
				r.Total.Net.StringFixed(2),
				r.Total.Discounted.StringFixed(2),
			)
		}
		return w.Flush()
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "lifesim %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Version)
			}
		},
	}
}

func recordRun(journalPath, configName string, groupCount int, result *calculation.Result) error {
	j, err := journal.NewSQLite(journalPath)
	if err != nil {
		return err
	}
	defer j.Close()

	run := journal.NewRunRecord(configName, groupCount, result)
	if err := j.RecordRun(run, result.Periods); err != nil {
		return err
	}
	logrus.WithField("run_id", run.RunID).Info("run journaled")
	return nil
}

func main() {
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	projectCmd.Flags().String("format", "table", "output format: table or csv")
	projectCmd.Flags().String("output", "", "write output to a file instead of stdout")
	projectCmd.Flags().String("journal", "", "journal the run to this SQLite database")

	estimateCmd.Flags().Int("months", 0, "estimation horizon (defaults to simulation.months)")
	estimateCmd.Flags().String("out", "", "write the estimated model points to this file")

	runsCmd.Flags().String("journal", "lifesim.db", "journal database to list")

	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
