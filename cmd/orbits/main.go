// Command orbits computes Hohmann transfers from the command line.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
	commit  = ""
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orbits",
		Short: "Hohmann transfer calculator",
		Long:  "orbits computes the Δv budget and time of flight of Hohmann transfers between circular orbits.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP("log", "l", "warn", "Set log level. Available: debug, info, warn, error")
	cmd.PersistentFlags().StringP("output", "o", "text", "Output format. Available: text, json, yaml")

	cmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		levelStr, _ := c.Flags().GetString("log")
		level, err := logrus.ParseLevel(levelStr)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)
		logrus.SetOutput(c.ErrOrStderr())
		format, _ := c.Flags().GetString("output")
		_, err = newPrinter(format, c.OutOrStdout())
		return err
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newSimpleCmd())
	cmd.AddCommand(newInterplanetaryCmd())
	cmd.AddCommand(newCatalogCmd())
	cmd.AddCommand(newBodiesCmd())
	cmd.AddCommand(newScenarioCmd())
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
