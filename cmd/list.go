package cmd

import (
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sts"
	awscloud "github.com/iamsec/aws-cli/cloud/aws"
	colorable "github.com/mattn/go-colorable"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists all cloud access keys",
	Long: `Lists the access keys found in the shared credentials file and the
credential environment variables. The current profile is highlighted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		profiles, err := awscloud.FromConfigFile(true)
		if err != nil {
			return err
		}

		// Check for and add environment variable credentials
		if p, envErr := awscloud.FromEnviron(); envErr == nil {
			profiles.Profiles = append(profiles.Profiles, p)
		}

		// Sort by profile name
		sort.Slice(profiles.Profiles, func(i, j int) bool { return profiles.Profiles[i].Name < profiles.Profiles[j].Name })

		return printTable(profiles.Profiles)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func getCurrentUserName(sess *session.Session) (string, error) {
	// AWS sts:GetCallerIdentity API
	svc := sts.New(sess)
	result, err := svc.GetCallerIdentity(&sts.GetCallerIdentityInput{})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok {
			fmt.Println(aerr.Error())
		} else {
			// Print the error, cast err to awserr.Error to get the Code and
			// Message from an error.
			fmt.Println(err.Error())
		}
		return "", err
	}

	return UserName(*result.Arn)
}

func printTable(profiles []awscloud.Profile) error {
	table := tablewriter.NewWriter(colorable.NewColorableStdout())
	table.SetHeader([]string{"Cloud", "Name", "Access Key ID", "Source"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("   ") // pad with tabs
	table.SetNoWhiteSpace(true)

	for _, profile := range profiles {
		if profile.IsCurrent {
			table.Rich([]string{
				profile.Cloud,
				profile.Name,
				obfuscateString(profile.Cred.AccessKeyID, 4),
				profile.Source,
			}, []tablewriter.Colors{
				tablewriter.Color(tablewriter.FgYellowColor),
				tablewriter.Color(tablewriter.FgYellowColor),
				tablewriter.Color(tablewriter.FgYellowColor),
				tablewriter.Color(tablewriter.FgYellowColor),
			})
		} else {
			table.Append([]string{
				profile.Cloud,
				profile.Name,
				obfuscateString(profile.Cred.AccessKeyID, 4),
				profile.Source,
			})
		}
	}
	table.Render()

	return nil
}

func obfuscateString(s string, n int) string {
	var ret string
	for i, v := range s {
		if i >= n && i < len(s)-n {
			ret += "*"
		} else {
			ret += string(v)
		}
	}
	return ret
}
