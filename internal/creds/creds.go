// Package creds loads the sign-in credential pair for the appointment site.
// Loaded once at process start and immutable afterwards.
package creds

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/example/usvsched/internal/crypto"
)

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Load reads the credential file at path. When encKey is non-empty the file
// body is an AES-GCM-sealed base64 string (see `usvsched creds encrypt`)
// and is decrypted before parsing.
func Load(path string, encKey []byte) (Credentials, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("reading credentials: %w", err)
	}

	if len(encKey) > 0 {
		a, err := crypto.New(encKey)
		if err != nil {
			return Credentials{}, err
		}
		pt, err := a.DecryptString(strings.TrimSpace(string(b)))
		if err != nil {
			return Credentials{}, fmt.Errorf("decrypting %s: %w", path, err)
		}
		b = []byte(pt)
	}

	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return Credentials{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if c.Username == "" || c.Password == "" {
		return Credentials{}, fmt.Errorf("%s must set username and password", path)
	}
	return c, nil
}
