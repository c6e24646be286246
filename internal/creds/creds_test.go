package creds

import (
	"crypto/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/usvsched/internal/crypto"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadPlaintext(t *testing.T) {
	path := writeFile(t, "config.json", `{"username":"user@example.com","password":"hunter2"}`)

	c, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, Credentials{Username: "user@example.com", Password: "hunter2"}, c)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"), nil)
	assert.Error(t, err)
}

func TestLoadRejectsIncomplete(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing password", `{"username":"u"}`},
		{"missing username", `{"password":"p"}`},
		{"empty object", `{}`},
		{"not json", `username=u`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "config.json", tt.body)
			_, err := Load(path, nil)
			assert.Error(t, err)
		})
	}
}

func TestLoadEncrypted(t *testing.T) {
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)

	a, err := crypto.New(key)
	require.NoError(t, err)
	sealed, err := a.EncryptToString(`{"username":"user@example.com","password":"hunter2"}`)
	require.NoError(t, err)

	// Trailing newline from the encrypt command must not break decryption.
	path := writeFile(t, "config.enc", sealed+"\n")

	c, err := Load(path, key)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", c.Username)

	// Wrong key must not fall through to a plaintext parse.
	wrong := make([]byte, 32)
	_, err = rand.Read(wrong)
	require.NoError(t, err)
	_, err = Load(path, wrong)
	assert.Error(t, err)
}
