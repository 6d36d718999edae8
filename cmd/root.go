package cmd

import (
	"fmt"
	"os"

	"github.com/axelroques/ditto/cmd/generate"
	"github.com/axelroques/ditto/cmd/mine"
	"github.com/axelroques/ditto/cmd/show"
	"github.com/axelroques/ditto/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "0.3.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "ditto",
		Short: "pattern mining for multivariate symbolic sequences",
		Long: fmt.Sprintf(`ditto (v%s)

Finds the set of patterns that best compresses a database of aligned symbolic
sequences, following the Minimum Description Length principle.`, Version),
		SilenceUsage: true,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of ditto",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("ditto v%s\n", Version)
		},
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(mine.MineCmd)
	RootCmd.AddCommand(show.ShowCmd)
	RootCmd.AddCommand(generate.GenerateCmd)
	RootCmd.AddCommand(versionCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
