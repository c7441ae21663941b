package aws

import (
	"fmt"
	"strings"
)

// Column labels required in a credentials CSV downloaded from the AWS web
// console. Matching is case-insensitive and ignores surrounding whitespace;
// extra columns (password, console login link) are ignored.
const (
	userNameHeader        = "User Name"
	accessKeyIDHeader     = "Access Key ID"
	secretAccessKeyHeader = "Secret Access key"
)

// NamedCredential is one row of a credentials CSV: an IAM user name and its
// access key pair.
type NamedCredential struct {
	UserName string
	Cred     Credential
}

// ParseCredentials parses CSV text exported from the AWS web console into an
// ordered list of credentials. Fields are split on literal commas; quoting is
// not supported. Expected format:
//
//	User name,Password,Access key ID,Secret access key,Console login link
//	username1,pw,akid,sak,https://console.link
//
// In strict mode any row with an empty user name, access key id, or secret
// aborts parsing; otherwise such rows are silently skipped.
func ParseCredentials(csvText string, strict bool) ([]NamedCredential, error) {
	if strings.TrimSpace(csvText) == "" {
		return nil, ErrEmptyCSV
	}

	lines := strings.Split(csvText, "\n")
	// A single trailing newline is a line terminator, not an empty row.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	userIdx, akidIdx, sakIdx, err := parseHeaders(lines[0])
	if err != nil {
		return nil, err
	}

	return parseRows(lines[1:], userIdx, akidIdx, sakIdx, strict)
}

func formatHeader(header string) string {
	return strings.ToLower(strings.TrimSpace(header))
}

func parseHeaders(header string) (userIdx, akidIdx, sakIdx int, err error) {
	parsed := strings.Split(header, ",")
	for i, h := range parsed {
		parsed[i] = formatHeader(h)
	}

	indices := make([]int, 0, 3)
	for _, expected := range []string{userNameHeader, accessKeyIDHeader, secretAccessKeyHeader} {
		idx := -1
		for i, h := range parsed {
			if h == formatHeader(expected) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrHeaderNotFound, expected)
		}
		indices = append(indices, idx)
	}

	return indices[0], indices[1], indices[2], nil
}

func parseRows(rows []string, userIdx, akidIdx, sakIdx int, strict bool) ([]NamedCredential, error) {
	credentials := []NamedCredential{}

	count := 0
	for _, row := range rows {
		count++
		cols := strings.Split(row, ",")
		username := field(cols, userIdx)
		akid := field(cols, akidIdx)
		sak := field(cols, sakIdx)

		if username == "" {
			if strict {
				return nil, fmt.Errorf("%w for entry #%d", ErrInvalidUserName, count)
			}
			continue
		}
		if akid == "" || sak == "" {
			if strict {
				return nil, fmt.Errorf("%w for entry #%d", ErrInvalidSecret, count)
			}
			continue
		}

		credentials = append(credentials, NamedCredential{
			UserName: username,
			Cred: Credential{
				AccessKeyID:     akid,
				SecretAccessKey: sak,
			},
		})
	}

	return credentials, nil
}

// field reads cols[i] trimmed of whitespace. A row shorter than the header
// implies reads as empty for the missing columns.
func field(cols []string, i int) string {
	if i >= len(cols) {
		return ""
	}
	return strings.TrimSpace(cols[i])
}
