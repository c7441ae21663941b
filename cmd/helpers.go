package cmd

import (
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go/aws/arn"
	homedir "github.com/mitchellh/go-homedir"
)

// UserName gets the user name from the ARN (passed as string)
func UserName(a string) (string, error) {
	// Parse ARN
	resultArn, err := arn.Parse(a)
	if err != nil {
		return "", err
	}

	// Verify is a user
	s := strings.Split(resultArn.Resource, "/")
	if s[0] != "user" {
		return "", errors.New("Not a user")
	}
	userName := s[1]

	return userName, nil
}

// resolveCSVPath turns a --csv value into a local file path. A file:// prefix
// is accepted to avoid shell-escaping concerns and may carry a relative or
// absolute path; anything else is treated as a plain path with ~ expansion.
func resolveCSVPath(location string) (string, error) {
	if strings.HasPrefix(location, "file://") {
		return strings.TrimPrefix(location, "file://"), nil
	}
	return homedir.Expand(location)
}
