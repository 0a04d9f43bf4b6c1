package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestResolveCommand(t *testing.T) {
	out, err := execute(t, "resolve", "--base", "/MyApp", "/myapp/users/JohnDoe", "/MyOtherApp", "/MyApp")
	require.NoError(t, err)
	assert.Equal(t, []string{"/users/JohnDoe", "~/MyOtherApp", "/"}, lines(out))
}

func TestResolveCommandReadsBaseFromEnv(t *testing.T) {
	t.Setenv(envBase, "/from-env")

	out, err := execute(t, "resolve", "/from-env/x")
	require.NoError(t, err)
	assert.Equal(t, "/x\n", out)

	out, err = execute(t, "resolve", "--base", "/flag", "/from-env/x")
	require.NoError(t, err)
	assert.Equal(t, "~/from-env/x\n", out)
}

func TestResolveCommandLoadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(envBase+"=/dotenv\n"), 0o600))

	t.Setenv(envBase, "")
	os.Unsetenv(envBase)

	out, err := execute(t, "--env-file", envFile, "resolve", "/dotenv/page")
	require.NoError(t, err)
	assert.Equal(t, "/page\n", out)

	_, err = execute(t, "--env-file", filepath.Join(dir, "missing.env"), "resolve", "/x")
	assert.Error(t, err)
}

func TestJoinCommand(t *testing.T) {
	out, err := execute(t, "join", "-b", "/app", "/users", "settings", "~/logout", "/")
	require.NoError(t, err)
	assert.Equal(t, []string{"/app/users", "/app/settings", "/logout", "/app"}, lines(out))
}

func TestCodecCommands(t *testing.T) {
	out, err := execute(t, "decode", "/%D1%88%D0%B5%D0%BB%D0%BB%D1%8B", "/a%2Fb")
	require.NoError(t, err)
	assert.Equal(t, []string{"/шеллы", "/a%2Fb"}, lines(out))

	out, err = execute(t, "encode", "/hello мир")
	require.NoError(t, err)
	assert.Equal(t, "/hello%20%D0%BC%D0%B8%D1%80\n", out)
}

func TestCaseFoldingFlag(t *testing.T) {
	out, err := execute(t, "resolve", "--case-folding", "full", "--base", "/Straße", "/STRASSE/home")
	require.NoError(t, err)
	assert.Equal(t, "/home\n", out)

	_, err = execute(t, "resolve", "--case-folding", "turkish", "/x")
	assert.Error(t, err)
}

func TestSimulateMemory(t *testing.T) {
	out, err := execute(t, "simulate", "--base", "/app", "--from", "/app",
		"push:/users", "replace:/users/1", "push:~/logout", "back")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"start /",
		"push:/users /users /app/users",
		"replace:/users/1 /users/1 /app/users/1",
		"push:~/logout ~/logout /logout",
		"back /users/1 /app/users/1",
		"history /app /app/users/1",
	}, lines(out))
}

func TestSimulateHashFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "location.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
base: /app
source: hash
url: https://example.com/index.html#/app/inbox
`), 0o600))

	out, err := execute(t, "simulate", "--config", path, "push:/sent", "back")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"start /inbox",
		"push:/sent /sent /app/sent",
		"back /inbox /app/inbox",
	}, lines(out))
}

func TestSimulateErrors(t *testing.T) {
	_, err := execute(t, "simulate", "jump:/x")
	assert.ErrorContains(t, err, "unknown step")

	_, err = execute(t, "simulate", "back")
	assert.ErrorContains(t, err, "no history")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: telegraph\n"), 0o600))
	_, err = execute(t, "simulate", "--config", path, "push:/x")
	assert.Error(t, err)
}
