package cmd

import (
	"fmt"
	"os"

	awscloud "github.com/iamsec/aws-cli/cloud/aws"
	"github.com/spf13/cobra"
)

var (
	csvLocation string
	skipInvalid bool
	profilePath string
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import CSV credentials generated from the AWS web console",
	Long: `Import CSV credentials generated from the AWS web console into the
shared credentials file. For example:

aws-cli import --csv file://credentials.csv
aws-cli import --csv file://credentials.csv --skip-invalid`,
	RunE: func(cmd *cobra.Command, args []string) error {
		csvPath, err := resolveCSVPath(csvLocation)
		if err != nil {
			return err
		}
		contents, err := os.ReadFile(csvPath)
		if err != nil {
			return err
		}

		credentials, err := awscloud.ParseCredentials(string(contents), !skipInvalid)
		if err != nil {
			return err
		}

		credentialsFile := profilePath
		if credentialsFile == "" {
			credentialsFile, err = awscloud.CredentialsFilePath()
			if err != nil {
				return err
			}
		}

		for _, credential := range credentials {
			err = awscloud.UpdateProfile(awscloud.ProfileSection{
				Name: credential.UserName,
				Cred: credential.Cred,
			}, credentialsFile)
			if err != nil {
				return err
			}
		}

		fmt.Printf("Successfully imported %d profile(s)\n", len(credentials))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVar(&csvLocation, "csv", "", "The credentials in CSV format generated by the AWS web console")
	importCmd.MarkFlagRequired("csv")
	importCmd.Flags().BoolVar(&skipInvalid, "skip-invalid", false, "Skip entries that are invalid or do not have programmatic access instead of failing")
	importCmd.Flags().StringVar(&profilePath, "profile-path", "", "Credentials file to update (default is ~/.aws/credentials)")
}
