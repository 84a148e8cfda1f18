package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"cmddoc/internal/config"
	"cmddoc/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	server     *httptest.Server

	mu       sync.Mutex
	requests []*http.Request
	status   int
	body     string
}

// setupCLITestEnv isolates HOME, the working directory and credential
// variables, and starts a fake Discord API the config points at.
func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"DISCORD_APPLICATION_ID", "DISCORD_BOT_TOKEN", "DISCORD_GUILD_ID"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Chdir(t.TempDir())

	env := &cliTestEnv{status: http.StatusOK, body: testsupport.SampleCommandsJSON}
	env.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		env.mu.Lock()
		env.requests = append(env.requests, r.Clone(r.Context()))
		status, body := env.status, env.body
		env.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(env.server.Close)

	opts = append([]testsupport.ConfigOption{
		testsupport.WithAPIBaseURL(env.server.URL),
		testsupport.WithoutOutputPath(),
	}, opts...)
	env.cfg = testsupport.NewConfig(t, opts...)
	env.configPath = testsupport.WriteConfigFile(t, env.cfg)
	return env
}

func (e *cliTestEnv) respond(status int, body string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status = status
	e.body = body
}

func (e *cliTestEnv) lastRequest(t *testing.T) *http.Request {
	t.Helper()
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.requests) == 0 {
		t.Fatal("expected a request to the Discord API")
	}
	return e.requests[len(e.requests)-1]
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
