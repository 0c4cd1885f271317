package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/inputkit/pkg/input"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "default rule", args: []string{"convert", `<a href="x">Tom & Jerry</a>`}, want: "&lt;a href=&quot;x&quot;&gt;Tom &amp; Jerry&lt;/a&gt;\n"},
		{name: "topic", args: []string{"convert", "--rule", "topic", "a   b"}, want: "a b\n"},
		{name: "tag syntax limit", args: []string{"convert", "-r", "description,5", "<p>Hello world</p>"}, want: "Hello\n"},
		{name: "flag limit", args: []string{"convert", "-r", "keywords", "-l", "3", "golang"}, want: "gol\n"},
		{name: "date from stdin", stdin: "2016-01-01 20:20\n", args: []string{"convert", "--rule", "date"}, want: "2016-01-01 20:20:00\n"},
		{name: "number", args: []string{"convert", "-r", "number", "0.12345"}, want: "012345\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		wantErr error
	}{
		{name: "unknown rule", args: []string{"convert", "-r", "shout", "x"}, wantErr: input.ErrUnknownRule},
		{name: "limit not supported", args: []string{"convert", "-r", "text", "-l", "3", "x"}, wantErr: input.ErrLimitNotSupported},
		{name: "null result", args: []string{"convert", "-r", "date_strict", "12/05/2024"}, wantErr: errNullResult},
		{name: "no value", args: []string{"convert"}, wantErr: errNoValue},
		{name: "unknown source", args: []string{"--source", "header", "convert", "x"}, wantErr: input.ErrUnknownSource},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConvertDebugLogOmitsValue(t *testing.T) {
	_, stderr, err := run(t, "", "--log-level", "debug", "--source", "cookie", "convert", "-r", "password", "hunter 2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "converting value")
	assert.Contains(t, stderr, "COOKIE")
	assert.NotContains(t, stderr, "hunter")
}

func TestInspect(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		out, _, err := run(t, "", "--source", "post", "inspect", "-o", "json", "2016-01-01 20:20")
		require.NoError(t, err)

		var rep report
		require.NoError(t, json.Unmarshal([]byte(out), &rep))
		assert.Equal(t, "2016-01-01 20:20", rep.Input)
		assert.Equal(t, "POST", rep.Source)
		assert.True(t, rep.Exists)
		require.Len(t, rep.Rules, len(input.Rules()))

		byRule := map[string]*string{}
		for _, r := range rep.Rules {
			byRule[r.Rule] = r.Value
		}
		require.NotNil(t, byRule["date_strict"])
		assert.Equal(t, "2016-01-01 20:20:00", *byRule["date_strict"])
		require.NotNil(t, byRule["number"])
		assert.Equal(t, "201601012020", *byRule["number"])
		assert.Equal(t, 2016, rep.Scalars.Int)
	})

	t.Run("yaml null values", func(t *testing.T) {
		out, _, err := run(t, "", "inspect", "--output", "yaml", "tomorrow")
		require.NoError(t, err)

		var rep report
		require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
		assert.Equal(t, "NONE", rep.Source)
		assert.False(t, rep.Exists)
		for _, r := range rep.Rules {
			if r.Rule == "date" || r.Rule == "date_strict" {
				assert.Nil(t, r.Value, r.Rule)
			}
		}
		assert.Equal(t, 1, rep.Scalars.Boolean)
	})

	t.Run("text", func(t *testing.T) {
		out, _, err := run(t, "", "inspect", "a<b")
		require.NoError(t, err)
		assert.Contains(t, out, "input")
		assert.Contains(t, out, "a&lt;b")
		assert.Contains(t, out, "<null>")
		assert.Contains(t, out, "to_boolean")
	})

	t.Run("output from environment", func(t *testing.T) {
		t.Setenv("INPUTKIT_OUTPUT", "json")
		out, _, err := run(t, "", "inspect", "x")
		require.NoError(t, err)
		assert.True(t, json.Valid([]byte(out)))
	})

	t.Run("unknown output", func(t *testing.T) {
		_, _, err := run(t, "", "inspect", "-o", "xml", "x")
		require.Error(t, err)
	})
}

func TestRules(t *testing.T) {
	out, _, err := run(t, "", "rules")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(input.Rules()))
	assert.Contains(t, out, "description")
	for _, line := range lines {
		if strings.HasPrefix(line, "keywords") {
			assert.Contains(t, line, "accepts limit")
		}
		if strings.HasPrefix(line, "text ") || line == "text" {
			assert.NotContains(t, line, "accepts limit")
		}
	}

	out, _, err = run(t, "", "rules", "-o", "json")
	require.NoError(t, err)
	var infos []ruleInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	assert.Len(t, infos, len(input.Rules()))
}

func TestParseOutput(t *testing.T) {
	for in, want := range map[string]outputFormat{
		"":      outputText,
		"TEXT":  outputText,
		"json":  outputJSON,
		"yml":   outputYAML,
		" yaml": outputYAML,
	} {
		got, err := parseOutput(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseOutput("csv")
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "inputkit v"+Version)
}
