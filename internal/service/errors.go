package service

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnknownComponent  = errors.New("unknown pricing component")
	ErrStrategyNotPriced = errors.New("pricing strategy has no configured multiplier")
	ErrDuplicateMember   = errors.New("team member already exists")
)
