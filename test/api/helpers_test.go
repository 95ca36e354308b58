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

package api_test

import (
	"os"
	"testing"
	"time"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/require"

	"github.com/energy-qa/energy-conformance/test/api"
	"github.com/energy-qa/energy-conformance/test/api/apitest"
)

func unsetenv(t *testing.T, key string) {
	t.Helper()

	// Registers restoration of the original value.
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func testConfig(baseURL string) *api.TestConfig {
	return &api.TestConfig{
		BaseURL:         baseURL,
		DefaultQuantity: api.DefaultQuantity,
		RequestTimeout:  5 * time.Second,
		TestTimeout:     30 * time.Second,
	}
}

// newClient returns a client for a fresh test double.
func newClient(t *testing.T, config func(*api.TestConfig), opts ...apitest.Option) (*api.APIClient, *apitest.Server) {
	t.Helper()

	server := apitest.NewServer(t, opts...)

	c := testConfig(server.URL)
	if config != nil {
		config(c)
	}

	client, err := api.NewAPIClientWithConfig(c, api.WithLogger(testr.New(t)))
	require.NoError(t, err)

	return client, server
}

// newFixture returns empty run state logging to the test.
func newFixture(t *testing.T) *api.Fixture {
	t.Helper()

	return api.NewFixture(testConfig(api.DefaultBaseURL), testr.New(t))
}

// jsonResponse builds a canned client response.
func jsonResponse(status int, body string) *api.Response {
	return &api.Response{
		StatusCode: status,
		Body:       []byte(body),
	}
}
