/*
Copyright 2026 the Energy Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	// DefaultBaseURL is the public candidate test deployment of the energy API.
	DefaultBaseURL = "https://qacandidatetest.ensek.io/ENSEK"

	// DefaultQuantity is the number of units bought per energy type.
	DefaultQuantity = 10
)

type TestConfig struct {
	BaseURL         string
	Username        string
	Password        string
	DefaultQuantity int
	RequestTimeout  time.Duration
	TestTimeout     time.Duration
	ValidateSchema  bool
	SkipIntegration bool
	DebugLogging    bool
	LogRequests     bool
	LogResponses    bool
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if a configuration value is malformed.
func LoadTestConfig() (*TestConfig, error) {
	config := ReadTestConfig()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ReadTestConfig reads configuration like LoadTestConfig but leaves
// validation to the caller, so command line flags can still correct it.
func ReadTestConfig() *TestConfig {
	loadEnvFile()

	return &TestConfig{
		BaseURL:         getStringWithDefault("API_BASE_URL", DefaultBaseURL),
		Username:        os.Getenv("API_USERNAME"),
		Password:        os.Getenv("API_PASSWORD"),
		DefaultQuantity: getIntWithDefault("DEFAULT_QUANTITY", DefaultQuantity),
		RequestTimeout:  getDurationWithDefault("REQUEST_TIMEOUT", 30*time.Second),
		TestTimeout:     getDurationWithDefault("TEST_TIMEOUT", 2*time.Minute),
		ValidateSchema:  getBoolWithDefault("VALIDATE_SCHEMA", false),
		SkipIntegration: getBoolWithDefault("SKIP_INTEGRATION", false),
		DebugLogging:    getBoolWithDefault("DEBUG_LOGGING", false),
		LogRequests:     getBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:    getBoolWithDefault("LOG_RESPONSES", false),
	}
}

// AddFlags registers command line overrides for every field, using the
// current values as defaults.
func (c *TestConfig) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&c.BaseURL, "base-url", c.BaseURL, "Base URL of the energy API.")
	f.StringVar(&c.Username, "username", c.Username, "Username for authenticated scenarios.")
	f.StringVar(&c.Password, "password", c.Password, "Password for authenticated scenarios.")
	f.IntVar(&c.DefaultQuantity, "quantity", c.DefaultQuantity, "Units bought per energy type.")
	f.DurationVar(&c.RequestTimeout, "request-timeout", c.RequestTimeout, "Timeout applied to each HTTP request.")
	f.DurationVar(&c.TestTimeout, "scenario-timeout", c.TestTimeout, "Timeout applied to each scenario.")
	f.BoolVar(&c.ValidateSchema, "validate-schema", c.ValidateSchema, "Validate responses against the API contract document.")
	f.BoolVar(&c.DebugLogging, "debug", c.DebugLogging, "Enable debug logging.")
	f.BoolVar(&c.LogRequests, "log-requests", c.LogRequests, "Log every request with its status and duration.")
	f.BoolVar(&c.LogResponses, "log-responses", c.LogResponses, "Log every response body.")
}

// HasCredentials reports whether authenticated scenarios can run.
func (c *TestConfig) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}

// Credentials returns the configured login.
func (c *TestConfig) Credentials() Credentials {
	return Credentials{
		Username: c.Username,
		Password: c.Password,
	}
}

// Validate checks that configuration values are usable.
func (c *TestConfig) Validate() error {
	var problems []string

	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems = append(problems, fmt.Sprintf("API_BASE_URL %q is not an absolute http(s) URL", c.BaseURL))
	}

	if c.DefaultQuantity <= 0 {
		problems = append(problems, fmt.Sprintf("DEFAULT_QUANTITY must be positive, got %d", c.DefaultQuantity))
	}

	if c.RequestTimeout <= 0 {
		problems = append(problems, "REQUEST_TIMEOUT must be positive")
	}

	if c.TestTimeout <= 0 {
		problems = append(problems, "TEST_TIMEOUT must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

func getStringWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getIntWithDefault gets an integer from environment variable or returns default.
func getIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

// getDurationWithDefault gets a duration from environment variable or returns default.
func getDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// getBoolWithDefault gets a boolean from environment variable or returns default.
func getBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}

func loadEnvFile() {
	envPaths := []string{
		os.Getenv("ENV_FILE"),
		".env",
		"test/.env",  // From the repository root
		"../.env",    // From test/api
		"../../.env", // From test/api/suites
	}

	var envPath string

	for _, path := range envPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment variables win over the file.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}
