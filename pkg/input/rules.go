package input

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Rule names a string conversion so it can be chosen at runtime, for example
// from a struct tag or a command line flag.
type Rule string

const (
	RuleColor       Rule = "color"
	RuleDate        Rule = "date"
	RuleDateStrict  Rule = "date_strict"
	RuleDescription Rule = "description"
	RuleDetail      Rule = "detail"
	RuleHTML        Rule = "html"
	RuleKeywords    Rule = "keywords"
	RuleNumber      Rule = "number"
	RulePassword    Rule = "password"
	RuleQuote       Rule = "quote"
	RuleRaw         Rule = "raw"
	RuleText        Rule = "text"
	RuleTextarea    Rule = "textarea"
	RuleTopic       Rule = "topic"
	RuleURL         Rule = "url"
	RuleUsername    Rule = "username"
)

type converter struct {
	limited bool
	fn      func(v Value, limit int) (string, bool)
}

func plain(fn func(Value) string) converter {
	return converter{fn: func(v Value, _ int) (string, bool) { return fn(v), true }}
}

func limited(fn func(Value, int) string) converter {
	return converter{limited: true, fn: func(v Value, limit int) (string, bool) { return fn(v, limit), true }}
}

var converters = map[Rule]converter{
	RuleColor:       plain(Value.Color),
	RuleDate:        {fn: func(v Value, _ int) (string, bool) { return v.Date(false) }},
	RuleDateStrict:  {fn: func(v Value, _ int) (string, bool) { return v.Date(true) }},
	RuleDescription: limited(Value.Description),
	RuleDetail:      plain(Value.Detail),
	RuleHTML:        plain(Value.HTML),
	RuleKeywords:    limited(Value.Keywords),
	RuleNumber:      plain(Value.Number),
	RulePassword:    plain(Value.Password),
	RuleQuote:       plain(Value.Quote),
	RuleRaw:         {fn: func(v Value, _ int) (string, bool) { return v.ToString() }},
	RuleText:        plain(Value.Text),
	RuleTextarea:    plain(Value.Textarea),
	RuleTopic:       plain(Value.Topic),
	RuleURL:         plain(Value.URL),
	RuleUsername:    plain(Value.Username),
}

// Rules returns every registered rule in alphabetical order.
func Rules() []Rule {
	rules := make([]Rule, 0, len(converters))
	for r := range converters {
		rules = append(rules, r)
	}
	slices.Sort(rules)
	return rules
}

// Valid reports whether r is a registered rule.
func (r Rule) Valid() bool {
	_, ok := converters[r]
	return ok
}

// AcceptsLimit reports whether r honours a maximum length.
func (r Rule) AcceptsLimit() bool {
	return converters[r].limited
}

// ParseRule parses the "name[,limit]" syntax used by struct tags, for
// example "topic" or "description,160".
func ParseRule(tag string) (Rule, int, error) {
	name, limitPart, hasLimit := strings.Cut(strings.TrimSpace(tag), ",")
	rule := Rule(strings.ToLower(strings.TrimSpace(name)))
	if !rule.Valid() {
		return "", 0, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	if !hasLimit {
		return rule, 0, nil
	}

	limit, err := strconv.Atoi(strings.TrimSpace(limitPart))
	if err != nil || limit < 0 {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidRuleLimit, limitPart)
	}
	if limit > 0 && !rule.AcceptsLimit() {
		return "", 0, fmt.Errorf("%w: %s", ErrLimitNotSupported, rule)
	}
	return rule, limit, nil
}

// Convert applies rule to v. ok is false when the conversion produced a null
// result (an invalid date, a nil raw value under RuleRaw). A positive limit
// is only accepted by rules that support it.
func (v Value) Convert(rule Rule, limit int) (s string, ok bool, err error) {
	c, found := converters[rule]
	if !found {
		return "", false, fmt.Errorf("%w: %q", ErrUnknownRule, string(rule))
	}
	if limit > 0 && !c.limited {
		return "", false, fmt.Errorf("%w: %s", ErrLimitNotSupported, rule)
	}
	s, ok = c.fn(v, limit)
	return s, ok, nil
}
