package http_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/domain"
	apphttp "github.com/jhoicas/storefront-api/internal/interfaces/http"
)

const sqlDetail = `pq: relation "public.products" does not exist (SELECT id, price FROM products WHERE slug = $1)`

// captureGlobalLog redirige el logger global de zerolog a un buffer durante el test.
func captureGlobalLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func errorApp(err error) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/boom", func(c *fiber.Ctx) error { return err })
	return app
}

func callBoom(t *testing.T, app *fiber.App) (int, dto.ErrorResponse, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body, string(raw)
}

func TestErrorHandler_ErrorInterno_NoExponeDetalleAlCliente(t *testing.T) {
	logs := captureGlobalLog(t)

	status, body, raw := callBoom(t, errorApp(fmt.Errorf("listar productos: %w", errors.New(sqlDetail))))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.NotEmpty(t, body.Message)
	assert.NotContains(t, raw, "pq:")
	assert.NotContains(t, raw, "SELECT")
	assert.NotContains(t, raw, "listar productos")

	assert.Contains(t, logs.String(), "public.products")
	assert.Contains(t, logs.String(), `"path":"/boom"`)
}

func TestErrorHandler_ErrorDeDominio_ConservaMensaje(t *testing.T) {
	logs := captureGlobalLog(t)

	status, body, _ := callBoom(t, errorApp(fmt.Errorf("producto x: %w", domain.ErrNotFound)))

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body.Code)
	assert.Contains(t, body.Message, "producto x")
	assert.Empty(t, logs.String())
}

func TestErrorHandler_FiberError_UsaSuStatus(t *testing.T) {
	status, body, _ := callBoom(t, errorApp(fiber.NewError(fiber.StatusMethodNotAllowed, "método no permitido")))

	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, "HTTP_ERROR", body.Code)
	assert.Equal(t, "método no permitido", body.Message)
}
