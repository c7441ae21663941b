package aws

import "errors"

// ErrCredentialNotFound means no credential existed that can be rotated.
var ErrCredentialNotFound = errors.New("No rotatable credential found. You may need to import or configure one first")

// ErrUnknownSource is for a source not configured in our AWS cloud provider
var ErrUnknownSource = errors.New("Unknown source in profile")

// ErrUnsupportedIdentityType is for any IAM resource that's not a user
var ErrUnsupportedIdentityType = errors.New("Unsupported Identity Type--only supports user type")

// ErrEmptyCSV means the CSV text passed to ParseCredentials was empty or
// whitespace-only.
var ErrEmptyCSV = errors.New("Provided CSV contains no contents")

// ErrHeaderNotFound means a required column label was missing from the CSV
// header row. Wrapped with the missing label.
var ErrHeaderNotFound = errors.New("Expected header not found")

// ErrInvalidUserName means a row had an empty user name in strict mode.
// Wrapped with the entry number.
var ErrInvalidUserName = errors.New("Failed to parse User Name")

// ErrInvalidSecret means a row was missing its access key id or secret in
// strict mode. Wrapped with the entry number.
var ErrInvalidSecret = errors.New("Failed to parse Access Key ID or Secret Access Key")
