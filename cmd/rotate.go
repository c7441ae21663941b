package cmd

import (
	"fmt"

	awssdk "github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/iam"
	awscloud "github.com/iamsec/aws-cli/cloud/aws"
	"github.com/spf13/cobra"
)

var profileName string

// rotateCmd represents the rotate command
var rotateCmd = &cobra.Command{
	Use:   "rotate",
	Short: "Rotate the cloud access key",
	Long: `Rotate the access key of a profile in the shared credentials file:
create a new access key for the IAM user, store it in the profile, then
delete the old key using the new credentials.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := awscloud.ByName(profileName)
		if err != nil {
			return err
		}
		if p.Cred.AccessKeyID == "" {
			return awscloud.ErrCredentialNotFound
		}
		oldAccessKeyID := p.Cred.AccessKeyID

		sess := p.Session()
		userName, err := getCurrentUserName(sess)
		if err != nil {
			return err
		}

		created, err := iam.New(sess).CreateAccessKey(&iam.CreateAccessKeyInput{
			UserName: awssdk.String(userName),
		})
		if err != nil {
			return err
		}
		newCred, err := awscloud.FromAccessKey(*created.AccessKey)
		if err != nil {
			return err
		}

		if err := p.UpdateCredential(newCred); err != nil {
			return err
		}

		// Delete the old key with the new credential so rotation still
		// succeeds when the old key is disabled right after the swap.
		newSess := session.Must(session.NewSession(&awssdk.Config{
			Credentials: credentials.NewStaticCredentials(newCred.AccessKeyID, newCred.SecretAccessKey, ""),
		}))
		_, err = iam.New(newSess).DeleteAccessKey(&iam.DeleteAccessKeyInput{
			AccessKeyId: awssdk.String(oldAccessKeyID),
			UserName:    awssdk.String(userName),
		})
		if err != nil {
			return err
		}

		fmt.Printf("Rotated access key for profile %s\n", p.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rotateCmd)

	rotateCmd.Flags().StringVarP(&profileName, "profile", "p", "default", "Profile to rotate")
}
