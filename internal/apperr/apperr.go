// Package apperr defines the typed errors services raise. Each error carries
// the resource kind it refers to and, for validation failures, per-field
// reasons, so the HTTP layer can map it to a status and envelope without
// inspecting message strings.
package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

type Kind int

const (
	KindNotFound Kind = iota
	KindValidation
	KindUnauthenticated
	KindForbidden
)

type Error struct {
	Kind     Kind
	Resource string
	Fields   map[string]string
	Message  string
}

func (e *Error) Error() string { return e.Message }

// NotFound reports that an id did not resolve for the given resource kind.
func NotFound(resource, id string) *Error {
	return &Error{
		Kind:     KindNotFound,
		Resource: resource,
		Message:  fmt.Sprintf("Couldn't find %s with 'id'=%s", resource, id),
	}
}

// Validation reports field-level failures (including uniqueness collisions)
// keyed to a resource kind. The message lists every failing field in key
// order so the same input always produces the same string.
func Validation(resource string, fields map[string]string) *Error {
	msg := "Validation failed"
	if len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for f := range fields {
			keys = append(keys, f)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, f := range keys {
			parts = append(parts, f+" "+fields[f])
		}
		msg = "Validation failed: " + strings.Join(parts, ", ")
	}
	return &Error{Kind: KindValidation, Resource: resource, Fields: fields, Message: msg}
}

// Forbidden reports that an authenticated principal's role lacks the required
// permission.
func Forbidden(action, resource string) *Error {
	return &Error{
		Kind:     KindForbidden,
		Resource: resource,
		Message:  fmt.Sprintf("You are not authorized to %s %s", action, resource),
	}
}

// Unauthenticated reports a missing or unusable credential.
func Unauthenticated() *Error {
	return &Error{Kind: KindUnauthenticated, Message: "Authentication required"}
}

func as(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

func IsNotFound(err error) bool {
	e, ok := as(err)
	return ok && e.Kind == KindNotFound
}

func IsValidation(err error) bool {
	e, ok := as(err)
	return ok && e.Kind == KindValidation
}

func IsForbidden(err error) bool {
	e, ok := as(err)
	return ok && e.Kind == KindForbidden
}
