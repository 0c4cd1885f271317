package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/inputkit/pkg/input"
)

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

func parseOutput(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case outputText, outputJSON, outputYAML:
		return f, nil
	case "yml":
		return outputYAML, nil
	case "":
		return outputText, nil
	}
	return "", fmt.Errorf("unknown output format %q: must be text, json or yaml", s)
}

type ruleResult struct {
	Rule  string  `json:"rule" yaml:"rule"`
	Value *string `json:"value" yaml:"value"`
}

type scalarResult struct {
	Boolean int     `json:"boolean" yaml:"boolean"`
	Int     int     `json:"int" yaml:"int"`
	Float   float64 `json:"float" yaml:"float"`
}

type report struct {
	Input   string       `json:"input" yaml:"input"`
	Source  string       `json:"source" yaml:"source"`
	Exists  bool         `json:"exists" yaml:"exists"`
	Rules   []ruleResult `json:"rules" yaml:"rules"`
	Scalars scalarResult `json:"scalars" yaml:"scalars"`
}

type ruleInfo struct {
	Name         string `json:"name" yaml:"name"`
	AcceptsLimit bool   `json:"accepts_limit" yaml:"accepts_limit"`
}

func buildReport(v input.Value) report {
	rep := report{
		Input:  v.String(),
		Source: v.Source().String(),
		Exists: v.Exists(),
		Scalars: scalarResult{
			Boolean: v.ToBoolean(),
			Int:     v.ToInt(),
			Float:   v.ToFloat(),
		},
	}

	for _, rule := range input.Rules() {
		res := ruleResult{Rule: string(rule)}
		// Registered rules with a zero limit never fail.
		if s, ok, err := v.Convert(rule, 0); err == nil && ok {
			res.Value = &s
		}
		rep.Rules = append(rep.Rules, res)
	}
	return rep
}

func renderReport(w io.Writer, format outputFormat, rep report) error {
	switch format {
	case outputJSON:
		return encodeJSON(w, rep)
	case outputYAML:
		return encodeYAML(w, rep)
	}

	r := lipgloss.NewRenderer(w)
	key := r.NewStyle().Bold(true).Width(14)
	null := r.NewStyle().Faint(true)

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s\n", key.Render("input"), rep.Input)
	fmt.Fprintf(&b, "%s%s\n", key.Render("source"), rep.Source)
	fmt.Fprintf(&b, "%s%t\n\n", key.Render("exists"), rep.Exists)

	for _, res := range rep.Rules {
		value := null.Render("<null>")
		if res.Value != nil {
			value = *res.Value
		}
		fmt.Fprintf(&b, "%s%s\n", key.Render(res.Rule), value)
	}

	fmt.Fprintf(&b, "\n%s%d\n", key.Render("to_boolean"), rep.Scalars.Boolean)
	fmt.Fprintf(&b, "%s%d\n", key.Render("to_int"), rep.Scalars.Int)
	fmt.Fprintf(&b, "%s%v\n", key.Render("to_float"), rep.Scalars.Float)

	_, err := io.WriteString(w, b.String())
	return err
}

func renderRules(w io.Writer, format outputFormat, rules []ruleInfo) error {
	switch format {
	case outputJSON:
		return encodeJSON(w, rules)
	case outputYAML:
		return encodeYAML(w, rules)
	}

	r := lipgloss.NewRenderer(w)
	name := r.NewStyle().Width(14)
	note := r.NewStyle().Faint(true)

	var b strings.Builder
	for _, info := range rules {
		line := name.Render(info.Name)
		if info.AcceptsLimit {
			line += note.Render("accepts limit")
		}
		b.WriteString(strings.TrimRight(line, " ") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// encodeJSON writes indented JSON without HTML escaping, so converted
// entities are shown as produced.
func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
