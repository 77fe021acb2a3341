// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API keys and credentials from a directory of plain-text files.
// Each file in the directory represents one secret: the filename is the key name and the
// file contents (trimmed) are the value.
//
// Supported key files: anthropic-api-key, openai-api-key.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// providerKeys maps each hosted provider to its key file and environment variable.
var providerKeys = []struct {
	provider types.Provider
	file     string
	env      string
}{
	{types.ProviderAnthropic, "anthropic-api-key", "ANTHROPIC_API_KEY"},
	{types.ProviderOpenAI, "openai-api-key", "OPENAI_API_KEY"},
}

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// ProviderKeys returns the API key of each hosted provider. A value in the
// environment wins over the key file; providers with neither are omitted.
func ProviderKeys(secrets map[string]string) map[types.Provider]string {
	keys := make(map[types.Provider]string)
	for _, pk := range providerKeys {
		if v := strings.TrimSpace(os.Getenv(pk.env)); v != "" {
			keys[pk.provider] = v
			continue
		}
		if v, ok := secrets[pk.file]; ok {
			keys[pk.provider] = v
		}
	}
	return keys
}
