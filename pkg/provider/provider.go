package provider

import (
	"fmt"
)

type Provider = any

type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Error is an upstream failure reported by a text or speech service.
type Error struct {
	Provider string

	Code    int
	Message string

	Err error
}

func (e *Error) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("%s: %s (%d)", e.Provider, e.Message, e.Code)
	}

	return fmt.Sprintf("%s: %s", e.Provider, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
