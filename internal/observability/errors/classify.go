// Package errors normalizes Go errors into stable class names used to tag
// improvement failure metrics and notifications.
package errors

import (
	"context"
	goerrors "errors"
	"reflect"
	"strings"
)

// Classify returns a normalized class name for an error. Transform attempts
// run under context deadlines, so the context sentinels get their own stable
// classes; everything else is named after the innermost concrete error type.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case goerrors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case goerrors.Is(err, context.Canceled):
		return "canceled"
	}

	return typeName(rootCause(err))
}

// rootCause unwraps to the innermost error for better signal.
func rootCause(err error) error {
	for {
		unwrapped := goerrors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}

func typeName(err error) string {
	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}

	name := strings.ToLower(strings.NewReplacer("*", "", ".", "_").Replace(t.String()))
	if name == "" {
		return "unknown"
	}
	return name
}
