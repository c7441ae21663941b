package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	goVersion "go.hein.dev/go-version"
)

// versionCmd represents the version command
var (
	shortened   = false
	mainVersion = "dev"
	mainCommit  = "none"
	mainDate    = "unknown"
	output      = "json"
	versionCmd  = &cobra.Command{
		Use:   "version",
		Short: "Version will output the current build information",
		Long:  ``,
		Run:   versionFunc,
	}
)

func versionFunc(cmd *cobra.Command, args []string) {
	resp := goVersion.FuncWithOutput(shortened, mainVersion, mainCommit, mainDate, output)
	fmt.Print(resp)
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVarP(&shortened, "short", "s", false, "Print just the version number.")
	versionCmd.Flags().StringVarP(&output, "output", "o", "json", "Output format. One of 'yaml' or 'json'.")
}
