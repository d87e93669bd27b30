package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodoRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       TodoRequest
		wantField string
	}{
		{"valid", TodoRequest{Title: "Buy milk"}, ""},
		{"empty title", TodoRequest{Title: ""}, "title"},
		{"whitespace title", TodoRequest{Title: "   "}, "title"},
		{"title too long", TodoRequest{Title: strings.Repeat("x", 121)}, "title"},
		{"description too long", TodoRequest{Title: "ok", Description: strings.Repeat("x", 1001)}, "description"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var fieldErrs FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
		})
	}
}

func TestSignUpRequest_Validate(t *testing.T) {
	valid := SignUpRequest{FirstName: "Jane", Email: "jane@example.com", Password: "pw"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name      string
		mutate    func(*SignUpRequest)
		wantField string
	}{
		{"missing first name", func(r *SignUpRequest) { r.FirstName = "" }, "first_name"},
		{"missing email", func(r *SignUpRequest) { r.Email = "" }, "email"},
		{"bad email", func(r *SignUpRequest) { r.Email = "not-an-email" }, "email"},
		{"email with display name", func(r *SignUpRequest) { r.Email = "Jane <jane@example.com>" }, "email"},
		{"missing password", func(r *SignUpRequest) { r.Password = "" }, "password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := req.Validate()
			require.Error(t, err)
			var fieldErrs FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, tt.wantField, fieldErrs[0].Field)
		})
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var req TodoRequest

	err := json.Unmarshal([]byte(`{"title":"t","due_date":"2026-09-01"}`), &req)
	require.NoError(t, err)
	require.NotNil(t, req.DueDate.Ptr())
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *req.DueDate.Ptr())

	err = json.Unmarshal([]byte(`{"title":"t","due_date":"2026-09-01T12:30:00Z"}`), &req)
	require.NoError(t, err)
	require.NotNil(t, req.DueDate.Ptr())
	assert.Equal(t, 12, req.DueDate.Ptr().Hour())

	err = json.Unmarshal([]byte(`{"title":"t","due_date":""}`), &req)
	require.NoError(t, err)
	assert.Nil(t, req.DueDate.Ptr())

	err = json.Unmarshal([]byte(`{"title":"t"}`), &req)
	require.NoError(t, err)

	err = json.Unmarshal([]byte(`{"title":"t","due_date":"next tuesday"}`), &req)
	assert.Error(t, err)
}
