// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/mission-planner/models"
)

func TestNewCredentialsValidator(t *testing.T) {
	v := NewCredentialsValidator()
	require.NotNil(t, v)
}

func TestCredentialsValidator_Validate(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		obj     any
		fields  []string
		wantErr error
	}{
		{
			name: "valid value",
			obj:  models.Credentials{Username: "ops", Password: "secret"},
		},
		{
			name: "valid pointer",
			obj:  &models.Credentials{Username: "ops", Password: "secret"},
		},
		{
			name:    "nil pointer",
			obj:     (*models.Credentials)(nil),
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "unsupported type",
			obj:     "ops:secret",
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "empty username",
			obj:     models.Credentials{Username: "", Password: "secret"},
			wantErr: ErrEmptyUsername,
		},
		{
			name:    "blank username",
			obj:     models.Credentials{Username: "   ", Password: "secret"},
			wantErr: ErrEmptyUsername,
		},
		{
			name:    "username with space",
			obj:     models.Credentials{Username: "field ops", Password: "secret"},
			wantErr: ErrInvalidUsername,
		},
		{
			name:    "username too long",
			obj:     models.Credentials{Username: strings.Repeat("u", 256), Password: "secret"},
			wantErr: ErrUsernameTooLong,
		},
		{
			name:    "empty password",
			obj:     models.Credentials{Username: "ops"},
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "password too long",
			obj:     models.Credentials{Username: "ops", Password: strings.Repeat("p", 73)},
			wantErr: ErrPasswordTooLong,
		},
		{
			name:   "only username checked",
			obj:    models.Credentials{Username: "ops"},
			fields: []string{FieldUsername},
		},
		{
			name:    "unknown field",
			obj:     models.Credentials{Username: "ops", Password: "secret"},
			fields:  []string{"email"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
