package aws

import (
	"os"
	"strings"

	"github.com/google/renameio"
)

// Key names as written into the shared credentials file.
const (
	accessKeyIDKey     = "aws_access_key_id"
	secretAccessKeyKey = "aws_secret_access_key"
	sessionTokenKey    = "aws_session_token"
)

const credentialsFileMode = 0600

// ProfileSection is one named section of the shared credentials file.
type ProfileSection struct {
	Name string
	Cred Credential
}

// keys returns the section's key/value pairs in write order. The session
// token is omitted when empty.
func (p ProfileSection) keys() [][2]string {
	kv := [][2]string{
		{accessKeyIDKey, p.Cred.AccessKeyID},
		{secretAccessKeyKey, p.Cred.SecretAccessKey},
	}
	if p.Cred.SessionToken != "" {
		kv = append(kv, [2]string{sessionTokenKey, p.Cred.SessionToken})
	}
	return kv
}

// UpdateProfile merges the profile's keys into the credentials file at path,
// creating the file or the section as needed. Existing key lines are updated
// in place; every line outside the edited ones (comments, blank lines, other
// sections) is preserved byte-for-byte. The file is replaced atomically.
func UpdateProfile(profile ProfileSection, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	merged := mergeSection(string(raw), profile)
	return renameio.WriteFile(path, []byte(merged), credentialsFileMode)
}

func mergeSection(content string, profile ProfileSection) string {
	lines := strings.Split(content, "\n")

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "["+profile.Name+"]" {
			start = i
			break
		}
	}
	if start < 0 {
		return appendSection(content, profile)
	}

	// The section spans from just after its header to the next header or EOF.
	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if isSectionHeader(lines[i]) {
			end = i
			break
		}
	}

	for _, kv := range profile.keys() {
		key, value := kv[0], kv[1]

		replaced := false
		for i := start + 1; i < end; i++ {
			name, ok := keyToken(lines[i])
			if !ok || name != key {
				continue
			}
			indent := lines[i][:len(lines[i])-len(strings.TrimLeft(lines[i], " \t"))]
			lines[i] = indent + key + " = " + value
			replaced = true
			break
		}
		if replaced {
			continue
		}

		// Insert after the last non-blank line of the section.
		at := start
		for i := start + 1; i < end; i++ {
			if strings.TrimSpace(lines[i]) != "" {
				at = i
			}
		}
		line := "  " + key + " = " + value
		lines = append(lines[:at+1], append([]string{line}, lines[at+1:]...)...)
		end++
	}

	return strings.Join(lines, "\n")
}

func appendSection(content string, profile ProfileSection) string {
	var b strings.Builder

	if content != "" {
		b.WriteString(content)
		if !strings.HasSuffix(content, "\n") {
			b.WriteString("\n")
		}
		if !strings.HasSuffix(b.String(), "\n\n") {
			b.WriteString("\n")
		}
	}

	b.WriteString("[" + profile.Name + "]\n")
	for _, kv := range profile.keys() {
		b.WriteString(kv[0] + " = " + kv[1] + "\n")
	}

	return b.String()
}

func isSectionHeader(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")
}

// keyToken returns the key of a "key = value" line, trimmed of whitespace.
// Blank lines and comments carry no key.
func keyToken(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
		return "", false
	}
	eq := strings.Index(line, "=")
	if eq < 0 {
		return "", false
	}
	return strings.TrimSpace(line[:eq]), true
}
