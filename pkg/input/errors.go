package input

import "errors"

var (
	ErrUnknownRule       = errors.New("input.unknown_rule")
	ErrUnknownSource     = errors.New("input.unknown_source")
	ErrLimitNotSupported = errors.New("input.limit_not_supported")
	ErrInvalidRuleLimit  = errors.New("input.invalid_rule_limit")
)
