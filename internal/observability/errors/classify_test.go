package errors

import (
	"context"
	goerrors "errors"
	"fmt"
	"testing"
)

type transformError struct{ msg string }

func (e *transformError) Error() string { return e.msg }

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "deadline maps to timeout", err: context.DeadlineExceeded, want: "timeout"},
		{
			name: "wrapped deadline maps to timeout",
			err:  fmt.Errorf("transform attempt: %w", context.DeadlineExceeded),
			want: "timeout",
		},
		{name: "canceled", err: context.Canceled, want: "canceled"},
		{
			name: "concrete type drives the class",
			err:  &transformError{msg: "upstream broken"},
			want: "errors_transformerror",
		},
		{
			name: "innermost error wins",
			err:  fmt.Errorf("retry 3: %w", fmt.Errorf("attempt: %w", &transformError{msg: "boom"})),
			want: "errors_transformerror",
		},
		{name: "plain errors.New", err: goerrors.New("boom"), want: "errors_errorstring"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Classify(tt.err); got != tt.want {
				t.Fatalf("Classify(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}
