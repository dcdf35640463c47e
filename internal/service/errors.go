package service

import "errors"

var (
	ErrTokenLimitExceeded = errors.New("token limit exceeded")
	ErrMissingPrompt      = errors.New("missing prompt")
	ErrMissingName        = errors.New("missing customer name")
)
