package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/resumelab/resumelab/internal/errors"
)

func TestRegisterRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  RegisterRequest{Email: "alice@example.com", Password: "correct horse"},
		},
		{
			name: "normalizes email case and whitespace",
			req:  RegisterRequest{Email: "  Alice@Example.COM ", Password: "correct horse"},
		},
		{
			name:    "missing email",
			req:     RegisterRequest{Password: "correct horse"},
			wantErr: "email is required",
		},
		{
			name:    "malformed email",
			req:     RegisterRequest{Email: "not-an-address", Password: "correct horse"},
			wantErr: "valid address",
		},
		{
			name:    "short password",
			req:     RegisterRequest{Email: "alice@example.com", Password: "short"},
			wantErr: "at least 8",
		},
		{
			name:    "overlong password",
			req:     RegisterRequest{Email: "alice@example.com", Password: strings.Repeat("x", 73)},
			wantErr: "at most 72",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, strings.ToLower(strings.TrimSpace(tt.req.Email)), tt.req.Email)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	t.Parallel()

	req := LoginRequest{Email: " Bob@Example.com ", Password: "pw"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "bob@example.com", req.Email)

	err := (&LoginRequest{Email: "bob@example.com"}).Validate()
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, "password", apperrors.GetField(err))
}

func TestCreateResumeRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     CreateResumeRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  CreateResumeRequest{Title: "Backend Engineer", Content: "experience..."},
		},
		{
			name:    "blank title",
			req:     CreateResumeRequest{Title: "   ", Content: "experience..."},
			wantErr: "title is required",
		},
		{
			name:    "overlong title",
			req:     CreateResumeRequest{Title: strings.Repeat("t", 256), Content: "x"},
			wantErr: "title is too long",
		},
		{
			name:    "empty content",
			req:     CreateResumeRequest{Title: "Backend Engineer"},
			wantErr: "content is required",
		},
		{
			name:    "oversized content",
			req:     CreateResumeRequest{Title: "BE", Content: strings.Repeat("c", 200_001)},
			wantErr: "content is too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUpdateResumeRequestValidate(t *testing.T) {
	t.Parallel()

	t.Run("requires at least one field", func(t *testing.T) {
		t.Parallel()
		err := (&UpdateResumeRequest{}).Validate()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("trims title in place", func(t *testing.T) {
		t.Parallel()
		title := "  New Title  "
		req := UpdateResumeRequest{Title: &title}
		require.NoError(t, req.Validate())
		assert.Equal(t, "New Title", *req.Title)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()
		empty := ""
		err := (&UpdateResumeRequest{Content: &empty}).Validate()
		require.Error(t, err)
		assert.Equal(t, "content", apperrors.GetField(err))
	})

	t.Run("content only is fine", func(t *testing.T) {
		t.Parallel()
		content := "rewritten"
		require.NoError(t, (&UpdateResumeRequest{Content: &content}).Validate())
	})
}
