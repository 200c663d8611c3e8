package cryptox

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// pepperSize is the number of random bytes in a freshly generated pepper.
const pepperSize = 32

var pepperState struct {
	mu    sync.RWMutex
	path  string
	value string
}

// SetPepperPath points the package at the pepper file and forgets any pepper
// already in memory. The file is read lazily on first use.
func SetPepperPath(path string) {
	pepperState.mu.Lock()
	defer pepperState.mu.Unlock()
	pepperState.path = filepath.Clean(path)
	pepperState.value = ""
}

// LoadPepper reads the pepper file, creating it with a random value if it
// does not exist yet. Call it at startup so a broken file fails fast.
func LoadPepper() error {
	pepperState.mu.Lock()
	defer pepperState.mu.Unlock()

	v, err := readOrCreatePepper(pepperState.path)
	if err != nil {
		return err
	}
	pepperState.value = v
	return nil
}

func pepper() (string, error) {
	pepperState.mu.RLock()
	v := pepperState.value
	pepperState.mu.RUnlock()
	if v != "" {
		return v, nil
	}
	if err := LoadPepper(); err != nil {
		return "", err
	}
	pepperState.mu.RLock()
	defer pepperState.mu.RUnlock()
	return pepperState.value, nil
}

func readOrCreatePepper(path string) (string, error) {
	if path == "" || path == "." {
		return "", fmt.Errorf("cryptox: pepper path not set")
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		v := strings.TrimSpace(string(b))
		if v == "" {
			return "", fmt.Errorf("cryptox: pepper file %s is empty", path)
		}
		return v, nil
	case !os.IsNotExist(err):
		return "", fmt.Errorf("cryptox: read pepper: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("cryptox: create pepper dir: %w", err)
	}
	raw := make([]byte, pepperSize)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("cryptox: generate pepper: %w", err)
	}
	v := base64.RawURLEncoding.EncodeToString(raw)
	if err := os.WriteFile(path, []byte(v), 0o600); err != nil {
		return "", fmt.Errorf("cryptox: write pepper: %w", err)
	}
	return v, nil
}
