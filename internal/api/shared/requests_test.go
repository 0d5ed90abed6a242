package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	tests := []struct {
		name        string
		requestBody string
		wantErr     bool
		errContains string
	}{
		{name: "valid json", requestBody: `{"name": "test", "age": 30}`},
		{name: "invalid json", requestBody: `{"name": "test", "age": 30,}`, wantErr: true, errContains: "invalid character"},
		{name: "empty body", requestBody: "", wantErr: true, errContains: "EOF"},
		{name: "wrong type", requestBody: `{"age": "thirty"}`, wantErr: true, errContains: "cannot unmarshal"},
		{name: "trailing value", requestBody: `{"name": "a"} {"name": "b"}`, wantErr: true, errContains: "single JSON value"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.requestBody))
			var target payload

			err := DecodeJSON(req, &target)
			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, payload{Name: "test", Age: 30}, target)
		})
	}
}

type selfValidating struct{ ok bool }

func (s selfValidating) Validate() error {
	if !s.ok {
		return errors.New("custom validation failed")
	}
	return nil
}

func TestValidateRequest(t *testing.T) {
	type request struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}

	assert.NoError(t, ValidateRequest(&request{Email: "a@example.com", Password: "secret1"}))

	err := ValidateRequest(&request{Email: "nope", Password: "x"})
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 2)
	assert.Equal(t, "email", verrs[0].Field(), "field names come from json tags")
	assert.Equal(t, "password", verrs[1].Field())

	assert.NoError(t, ValidateRequest(selfValidating{ok: true}))
	assert.EqualError(t, ValidateRequest(selfValidating{}), "custom validation failed")
}
