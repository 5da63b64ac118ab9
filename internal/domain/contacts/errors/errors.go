package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInternal           = errors.New("internal error")
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token-codec failures. The transport never sees these directly: the
	// auth service collapses them into ErrUnauthorized or
	// ErrUnprocessableToken so a caller cannot probe which check failed.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrWrongScope   = errors.New("invalid scope for token")

	ErrUnauthorized       = errors.New("could not validate credentials")
	ErrUnprocessableToken = errors.New("invalid token for email verification")

	ErrCacheMiss = errors.New("cache miss")
)

func NewInvalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

func WrapInternal(err error, context string) error {
	return fmt.Errorf("%w: %s: %v", ErrInternal, context, err)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsInternal(err error) bool {
	return errors.Is(err, ErrInternal)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsInvalidToken(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}

func IsTokenExpired(err error) bool {
	return errors.Is(err, ErrTokenExpired)
}

func IsWrongScope(err error) bool {
	return errors.Is(err, ErrWrongScope)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func IsUnprocessableToken(err error) bool {
	return errors.Is(err, ErrUnprocessableToken)
}

func IsCacheMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}
