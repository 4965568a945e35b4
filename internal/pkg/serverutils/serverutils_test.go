package serverutils

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type showRequest struct {
	Id   uint   `validate:"required,gt=0"`
	Name string `validate:"max=3"`
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     showRequest
		wantErr string
	}{
		{name: "valid", req: showRequest{Id: 1, Name: "abc"}},
		{name: "missing id", req: showRequest{Name: "a"}, wantErr: "Id is required"},
		{name: "name too long", req: showRequest{Id: 2, Name: "abcd"}, wantErr: "Name must be at most 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest(tt.req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var fe *fiber.Error
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, fiber.StatusBadRequest, fe.Code)
			assert.Equal(t, tt.wantErr, fe.Message)
		})
	}
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/fiber", func(ctx *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Note not found")
	})
	app.Get("/internal", func(ctx *fiber.Ctx) error {
		return errors.New("pq: connection refused at 10.0.0.3")
	})

	t.Run("fiber error keeps code and message", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/fiber", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		var body ErrorBody
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.Equal(t, "Note not found", body.Error)
	})

	t.Run("internal error is not leaked", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/internal", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)

		var body ErrorBody
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, genericErrorMessage, body.Error)
		assert.NotContains(t, body.Error, "10.0.0.3")
	})
}

func TestSuccessResponseAlwaysHasData(t *testing.T) {
	tests := []struct {
		name string
		body any
		want string
	}{
		{"empty list", SuccessResponse("Success list notes", []string{}), `{"success":true,"message":"Success list notes","data":[]}`},
		{"nil data", SuccessResponse[any]("ok", nil), `{"success":true,"message":"ok","data":null}`},
		{"error", ErrorResponse(400, "Validation error: Topic is required"), `{"success":false,"code":400,"error":"Validation error: Topic is required"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := json.Marshal(tt.body)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(encoded))
		})
	}
}
