// Package config resolves the handful of settings the shop reads at boot.
//
// Values come from built-in defaults, then config/app.json, then .env. Both
// files are optional; a fresh checkout runs with defaults only.
package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
)

const (
	defaultAppName  = "kashvi-shop"
	defaultAppEnv   = "local"
	defaultLogLevel = "warn"

	// JSONPath and EnvPath are the files Load reads, relative to the
	// working directory.
	JSONPath = "config/app.json"
	EnvPath  = ".env"
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()
)

// Load reads JSONPath and EnvPath once per process.
func Load() error {
	loadOnce.Do(func() {
		loadErr = load(JSONPath, EnvPath)
	})
	return loadErr
}

// LoadFrom replaces the current values with defaults overlaid by the given
// files. Missing files are skipped. A later Load is a no-op.
func LoadFrom(jsonPath, envPath string) error {
	loadOnce.Do(func() {})
	return load(jsonPath, envPath)
}

func load(jsonPath, envPath string) error {
	loaded := defaultValues()

	for _, merge := range []struct {
		path string
		fn   func(string, map[string]string) error
	}{
		{jsonPath, mergeJSONConfig},
		{envPath, mergeDotEnv},
	} {
		if merge.path == "" {
			continue
		}
		if err := merge.fn(merge.path, loaded); err != nil && !os.IsNotExist(err) {
			return err
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()
	return nil
}

func defaultValues() map[string]string {
	return map[string]string{
		"APP_NAME":  defaultAppName,
		"APP_ENV":   defaultAppEnv,
		"LOG_LEVEL": defaultLogLevel,
	}
}

func AppName() string {
	_ = Load()
	return get("APP_NAME", defaultAppName)
}

func AppEnv() string {
	_ = Load()
	return strings.ToLower(get("APP_ENV", defaultAppEnv))
}

// LogLevel is one of debug, info, warn, error.
func LogLevel() string {
	_ = Load()
	level := strings.ToLower(get("LOG_LEVEL", defaultLogLevel))
	switch level {
	case "debug", "info", "warn", "error":
		return level
	default:
		return defaultLogLevel
	}
}

// Get reads any key with a fallback.
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}

func mergeJSONConfig(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var raw map[string]any
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	for key, val := range raw {
		s, ok := val.(string)
		if !ok {
			continue
		}
		if k := normalizeKey(key); k != "" {
			out[k] = strings.TrimSpace(s)
		}
	}
	return nil
}

func mergeDotEnv(path string, out map[string]string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseEnvLine(scanner.Text())
		if ok {
			out[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// parseEnvLine accepts KEY=value, skipping blanks and # comments.
func parseEnvLine(line string) (string, string, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	k, v, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key := normalizeKey(k)
	if key == "" {
		return "", "", false
	}
	return key, strings.Trim(strings.TrimSpace(v), `"'`), true
}

func normalizeKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}
	return fallback
}
