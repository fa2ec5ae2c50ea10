package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	app := newApp(&out, &errOut)
	err := app.Run(append([]string{"bsearch"}, args...))
	return out.String(), errOut.String(), err
}

func TestDemo(t *testing.T) {
	out, errOut, err := run(t)
	require.NoError(t, err)

	assert.Equal(t, "Integer 23 found at index 4.\nString 'raspberry' found at index 4.\n", out)
	assert.Empty(t, errOut)
}

func TestDemo_DebugLogging(t *testing.T) {
	out, errOut, err := run(t, "--log-level", "debug")
	require.NoError(t, err)

	assert.Equal(t, "Integer 23 found at index 4.\nString 'raspberry' found at index 4.\n", out)
	assert.Contains(t, errOut, "demo")
	assert.Contains(t, errOut, "search finished")
}

func TestDemo_LogLevelFromEnv(t *testing.T) {
	t.Setenv("BSEARCH_LOG_LEVEL", "debug")

	_, errOut, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, errOut, "search finished")
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "--log-level", "chatty")
	assert.ErrorContains(t, err, "chatty")
}

func TestSearchCommand(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		expect string
	}{
		{"IntegerFound", []string{"--target", "6", "1", "3", "4", "6", "8", "9", "11"}, "Integer 6 found at index 3.\n"},
		{"IntegerFirst", []string{"--target", "1", "1", "3", "4", "6", "8", "9", "11"}, "Integer 1 found at index 0.\n"},
		{"IntegerMissing", []string{"--target", "7", "1", "3", "4", "6", "8", "9", "11"}, "Integer 7 not found.\n"},
		{"Negative", []string{"--target", "-3", "--", "-9", "-3", "0", "12"}, "Integer -3 found at index 1.\n"},
		{"Empty", []string{"--target", "5"}, "Integer 5 not found.\n"},
		{"TextDuplicates", []string{"--text", "--target", "apple", "apple", "apple", "banana", "cherry", "raspberry"}, "String 'apple' found at index 1.\n"},
		{"TextMissing", []string{"--text", "--target", "kiwi", "apple", "banana", "cherry"}, "String 'kiwi' not found.\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, _, err := run(t, append([]string{"search"}, test.args...)...)
			require.NoError(t, err)
			assert.Equal(t, test.expect, out)
		})
	}
}

func TestSearchCommand_InvalidInput(t *testing.T) {
	_, _, err := run(t, "search", "--target", "six", "1", "2")
	assert.ErrorContains(t, err, "target")

	_, _, err = run(t, "search", "--target", "2", "1", "two", "3")
	assert.ErrorContains(t, err, `"two"`)

	_, _, err = run(t, "search", "1", "2", "3")
	assert.Error(t, err)
}
