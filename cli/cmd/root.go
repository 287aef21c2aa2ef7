package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "snowballc",
		Short:        "snowballc",
		SilenceUsage: true,
		Long:         `Compiles Snowball stemming-algorithm source into a standalone Go package.`,
	}

	packageName string
	debug       bool
	verbose     bool
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&packageName, "package", "p", "stemmer", "package name for the generated Go source")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "generate entry points that return the *runtime.StringMachine and *Program they ran")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log compilation progress")
	return rootCmd.Execute()
}

func logger() logrus.FieldLogger {
	l := logrus.New()
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return l
}
