package aws

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/mitchellh/go-homedir"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Profile is a local profile containing the credential and configuration.
type Profile struct {
	Name      string
	Cloud     string
	Cred      Credential
	Source    string
	IsCurrent bool
}

// Profiles is a collection of Profile
type Profiles struct {
	Profiles []Profile
}

// Session creates an AWS session
func (p *Profile) Session() *session.Session {
	switch p.Source {
	case "EnvironmentVariable":
		return session.Must(session.NewSession(&aws.Config{
			Credentials: credentials.NewEnvCredentials(),
		}))
	case "ConfigFile":
		return session.Must(session.NewSessionWithOptions(session.Options{
			Profile: p.Name,
		}))
	}
	return session.Must(session.NewSession())
}

// Current gets the current profile
func Current() (Profile, error) {
	envProfile, err := FromEnviron()
	if err == nil { // we found a profile in env
		return envProfile, err
	}
	// Didn't find profile in environment variable, get profile from config file
	configProfiles, err := FromConfigFile(true)
	if err == nil { // we found profile(s) in config file
		for _, p := range configProfiles.Profiles {
			if p.IsCurrent {
				return p, err
			}
		}
	}
	// Didn't find profile in either environment variable or config file, return error
	return Profile{}, ErrCredentialNotFound
}

// ByName gets a named profile from the configuration file.
func ByName(name string) (Profile, error) {
	configProfiles, err := FromConfigFile(false)
	if err != nil {
		return Profile{}, err
	}
	for _, p := range configProfiles.Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, ErrCredentialNotFound
}

// FromEnviron gets a profile from the credential environment variables
func FromEnviron() (Profile, error) {
	if c, ok := getCredentialFromEnviron(); ok {
		return Profile{
			Name:      "",
			Cloud:     "aws",
			Cred:      c,
			Source:    "EnvironmentVariable",
			IsCurrent: true,
		}, nil
	}
	return Profile{}, ErrCredentialNotFound
}

// FromConfigFile gets a list of profiles from the configuration file (default path/file is ~/.aws/credentials)
func FromConfigFile(findDefault bool) (Profiles, error) {
	credentialsFile, err := CredentialsFilePath()
	if err != nil {
		return Profiles{}, err
	}
	return parseConfigFile(credentialsFile, findDefault)
}

func parseConfigFile(path string, findDefault bool) (Profiles, error) {
	var profiles Profiles

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")
	err := v.ReadInConfig()
	if err != nil {
		return profiles, err // Returning profiles since it's empty here
	}
	allSettings := v.AllSettings()

	var currentProfile string
	if findDefault {
		currentProfile = getCurrentProfile()
	}

	for key, value := range allSettings {
		var cred Credential
		mapstructure.Decode(value, &cred)
		profiles.Profiles = append(profiles.Profiles, Profile{
			Name:      key,
			Cloud:     "aws",
			Cred:      cred,
			Source:    "ConfigFile",
			IsCurrent: findDefault && currentProfile == key,
		})
	}

	// Sort by profile name
	sort.Slice(profiles.Profiles, func(i, j int) bool { return profiles.Profiles[i].Name < profiles.Profiles[j].Name })

	return profiles, err
}

func getConfigPath() (string, error) {
	hd, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	hde, err := homedir.Expand(hd)
	if err != nil {
		return "", err
	}
	return hde + string(os.PathSeparator) + ".aws", nil
}

// CredentialsFilePath returns the path of the shared credentials file
// (~/.aws/credentials).
func CredentialsFilePath() (string, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(configPath, "credentials"), nil
}

func getCurrentProfile() string {
	currentProfile := "default"

	// Check environment variables
	profileVars := []string{
		"AWS_DEFAULT_PROFILE",
		"AWS_PROFILE",
	}
	for _, env := range profileVars {
		v, ok := os.LookupEnv(env)
		if ok {
			currentProfile = v
		}
	}
	return currentProfile
}

// UpdateCredential locally updates the credential based on the profile type
func (p *Profile) UpdateCredential(cred Credential) error {
	switch p.Source {
	case "EnvironmentVariable":
		os.Setenv("AWS_ACCESS_KEY_ID", cred.AccessKeyID)
		os.Setenv("AWS_SECRET_ACCESS_KEY", cred.SecretAccessKey)
	case "ConfigFile":
		credentialsFile, err := CredentialsFilePath()
		if err != nil {
			return err
		}
		err = UpdateProfile(ProfileSection{Name: p.Name, Cred: cred}, credentialsFile)
		if err != nil {
			return err
		}
	default:
		return ErrUnknownSource
	}
	p.Cred = cred

	return nil
}
