package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTCPServer(t *testing.T) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()
	return strconv.Itoa(listener.Addr().(*net.TCPAddr).Port)
}

func closedPort(t *testing.T) string {
	t.Helper()
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := strconv.Itoa(listener.Addr().(*net.TCPAddr).Port)
	require.NoError(t, listener.Close())
	return port
}

func execute(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunConnected(t *testing.T) {
	port := startTCPServer(t)

	code, stdout, _ := execute(t, "127.0.0.1", port, "--timeout", "5s")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Target: 127.0.0.1\n")
	assert.Contains(t, stdout, "Target Port: "+port+"\n")
	assert.Contains(t, stdout, "Successfully connected to 127.0.0.1:"+port)
}

func TestRunFailedExitsZeroByDefault(t *testing.T) {
	port := closedPort(t)

	code, stdout, _ := execute(t, "127.0.0.1", port, "--timeout", "5s")

	assert.Equal(t, exitOK, code)
	assert.NotContains(t, stdout, "Successfully connected")
	assert.Contains(t, stdout, "Next steps:")
}

func TestRunFailedWithExitCode(t *testing.T) {
	port := closedPort(t)

	code, _, stderr := execute(t, "127.0.0.1", port, "--timeout", "5s", "--exit-code")

	assert.Equal(t, exitFailed, code)
	assert.Empty(t, stderr)
}

func TestRunExitCodeFromEnv(t *testing.T) {
	t.Setenv("CONNDIAG_EXIT_CODE", "true")
	port := closedPort(t)

	code, _, _ := execute(t, "127.0.0.1", port, "--timeout", "5s")

	assert.Equal(t, exitFailed, code)
}

func TestRunFlagOverridesEnv(t *testing.T) {
	t.Setenv("CONNDIAG_OUTPUT", "json")
	port := closedPort(t)

	code, stdout, _ := execute(t, "127.0.0.1", port, "--timeout", "5s", "-o", "text")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Target: 127.0.0.1\n")
	assert.Contains(t, stdout, "Next steps:")
}

func TestRunEnvOutputWithoutFlag(t *testing.T) {
	t.Setenv("CONNDIAG_OUTPUT", "json")
	port := closedPort(t)

	code, stdout, _ := execute(t, "127.0.0.1", port, "--timeout", "5s")

	require.Equal(t, exitOK, code)
	assert.True(t, json.Valid([]byte(stdout)), stdout)
}

func TestRunJSON(t *testing.T) {
	port := closedPort(t)

	code, stdout, _ := execute(t, "127.0.0.1", port, "-o", "json", "--timeout", "5s")

	require.Equal(t, exitOK, code)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &got), stdout)
	assert.Equal(t, "failed", got["status"])
	assert.Contains(t, []any{"refused", "timed_out"}, got["class"])
	assert.NotNil(t, got["advice"])
}

func TestRunDebugLogsToStderr(t *testing.T) {
	port := startTCPServer(t)

	code, stdout, stderr := execute(t, "127.0.0.1", port, "--log-level", "debug", "--log-format", "json")

	require.Equal(t, exitOK, code)
	assert.NotContains(t, stdout, "attempting connection")
	assert.Contains(t, stderr, `"msg":"attempting connection"`)
	assert.Contains(t, stderr, `"destination":"127.0.0.1"`)
}

func TestRunInteractiveWithoutTerminal(t *testing.T) {
	port := startTCPServer(t)

	code, stdout, _ := execute(t, "127.0.0.1", port, "-i")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "Successfully connected")
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing arguments", []string{}, "accepts 2 arg(s)"},
		{"missing port", []string{"example.com"}, "accepts 2 arg(s)"},
		{"too many arguments", []string{"example.com", "80", "90"}, "accepts 2 arg(s)"},
		{"non-numeric port", []string{"example.com", "http"}, `invalid port "http"`},
		{"port out of range", []string{"example.com", "70000"}, `invalid port "70000"`},
		{"bad output", []string{"example.com", "80", "-o", "yaml"}, `invalid output "yaml"`},
		{"bad log level", []string{"example.com", "80", "--log-level", "loud"}, `invalid log level "loud"`},
		{"negative timeout", []string{"example.com", "80", "--timeout", "-1s"}, "must not be negative"},
		{"unknown flag", []string{"example.com", "80", "--retries", "3"}, "unknown flag"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := execute(t, tc.args...)

			assert.Equal(t, exitUsageError, code)
			assert.Contains(t, stderr, tc.wantErr)
			assert.NotContains(t, stdout, "Target:")
		})
	}
}

func TestRunHelpAndVersion(t *testing.T) {
	SetVersionBuildCommitString("v1.2.3", "abc123", "2026-10-19")

	code, stdout, _ := execute(t, "--version")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "v1.2.3 (commit abc123, built 2026-10-19)")

	code, stdout, _ = execute(t, "--help")
	assert.Equal(t, exitOK, code)
	assert.True(t, strings.Contains(stdout, "conndiag <destination> <port>"), stdout)
	assert.Contains(t, stdout, "--exit-code")
}
