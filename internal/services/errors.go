// Package services defines the business logic for bookmarks, learning
// progress, quiz results, web search and report export. This file
// centralizes the service-level error values and the typed StoreError so that
// callers can branch on a failure's kind instead of parsing messages.
//
// Translation into HTTP status codes is performed by the handlers package.
package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/transport-edu-backend/internal/repo"
)

// Kind classifies a store failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindStorageUnavailable
	KindConstraintViolation
	KindInvalidInput
)

// String returns the snake_case label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindStorageUnavailable:
		return "storage_unavailable"
	case KindConstraintViolation:
		return "constraint_violation"
	case KindInvalidInput:
		return "invalid_input"
	}
	return "unknown"
}

// Kind sentinels. errors.Is(err, ErrStorageUnavailable) matches any
// *StoreError of that kind.
var (
	ErrNotFound            = errors.New("not found")
	ErrStorageUnavailable  = errors.New("storage unavailable")
	ErrConstraintViolation = errors.New("constraint violation")
	ErrInvalidInput        = errors.New("invalid input")
)

// Input validation errors. They are always wrapped in a *StoreError of
// KindInvalidInput.
var (
	ErrEmptyUserID     = errors.New("user id is empty")
	ErrEmptyItemID     = errors.New("item id is empty")
	ErrInvalidItemType = errors.New("item type must be 장비, 용어 or 기술")
	ErrInvalidPage     = errors.New("unknown page name")
	ErrInvalidScore    = errors.New("score must be between 0 and total questions")
	ErrUnknownLevel    = errors.New("unknown quiz level")
	ErrEmptyQuery      = errors.New("query is empty")
)

// StoreError is returned by every service operation that touches storage.
type StoreError struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *StoreError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Is matches the sentinel of the error's kind.
func (e *StoreError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func (k Kind) sentinel() error {
	switch k {
	case KindNotFound:
		return ErrNotFound
	case KindStorageUnavailable:
		return ErrStorageUnavailable
	case KindConstraintViolation:
		return ErrConstraintViolation
	case KindInvalidInput:
		return ErrInvalidInput
	}
	return nil
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// invalid wraps a validation error.
func invalid(op string, err error) error {
	return &StoreError{Op: op, Kind: KindInvalidInput, Err: err}
}

// storeErr classifies a raw persistence error.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Op: op, Kind: classify(err), Err: err}
}

func classify(err error) Kind {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return KindNotFound
	case errors.Is(err, repo.ErrDuplicate), repo.IsUniqueViolation(err), isCheckViolation(err):
		return KindConstraintViolation
	}
	// Cancellation, dropped connections, a locked database or a missing table
	// all leave the store unusable for this call.
	return KindStorageUnavailable
}

func isCheckViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "check constraint") ||
		strings.Contains(msg, "not null constraint") ||
		strings.Contains(msg, "violates not-null") ||
		strings.Contains(msg, "sqlstate 23514")
}
