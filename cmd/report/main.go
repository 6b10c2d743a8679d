package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:           "coupon-report",
		Short:         "Generate coupon usage reports from Nuvemshop orders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the coupon-report version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	cfgDir  string
	version = "dev"
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&cfgDir, "config", "c", ".", "directory holding the .env file")
	rootCmd.AddCommand(versionCmd, newGenerateCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
