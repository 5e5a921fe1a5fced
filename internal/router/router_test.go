package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/item-service/internal/config"
	"github.com/deppfellow/item-service/internal/errs"
	"github.com/deppfellow/item-service/internal/handler"
	"github.com/deppfellow/item-service/internal/model"
	"github.com/deppfellow/item-service/internal/repository"
	"github.com/deppfellow/item-service/internal/server"
	"github.com/deppfellow/item-service/internal/service"
)

type testApp struct {
	server *server.Server
	router *echo.Echo
	logs   *bytes.Buffer
}

func setupTestApp(t *testing.T, env string) *testApp {
	cfg := config.DefaultConfig()
	cfg.Primary.Env = env
	cfg.Observability.Environment = env
	cfg.Database.Path = filepath.Join(t.TempDir(), "items.db")
	logs := &bytes.Buffer{}
	logger := zerolog.New(logs).Level(zerolog.DebugLevel)

	s, err := server.New(cfg, &logger, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.DB.Close() })

	services, err := service.NewService(s, repository.NewRepositories(s))
	require.NoError(t, err)

	return &testApp{
		server: s,
		router: NewRouter(s, handler.NewHandlers(s, services)),
		logs:   logs,
	}
}

func (a *testApp) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (a *testApp) createItem(t *testing.T, name, description string) model.Item {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/items/", fmt.Sprintf(`{"name":%q,"description":%q}`, name, description))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[model.Item](t, rec)
}

func TestRoot(t *testing.T) {
	app := setupTestApp(t, "test")

	rec := app.do(t, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Hello World"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestItemLifecycle(t *testing.T) {
	app := setupTestApp(t, "test")

	created := app.createItem(t, "Test Item", "This is a test item")
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Test Item", created.Name)
	assert.Equal(t, "This is a test item", created.Description)

	itemPath := fmt.Sprintf("/items/%d", created.ID)

	rec := app.do(t, http.MethodGet, itemPath, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[model.Item](t, rec))

	rec = app.do(t, http.MethodPut, itemPath, `{"name":"Updated Item","description":"Updated description"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.Item{ID: created.ID, Name: "Updated Item", Description: "Updated description"}, decode[model.Item](t, rec))

	rec = app.do(t, http.MethodDelete, itemPath, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"message":"Item with id %d deleted successfully"}`, created.ID), rec.Body.String())

	rec = app.do(t, http.MethodGet, itemPath, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListItems(t *testing.T) {
	app := setupTestApp(t, "test")

	rec := app.do(t, http.MethodGet, "/items/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	first := app.createItem(t, "Item 1", "First")
	second := app.createItem(t, "Item 2", "Second")

	rec = app.do(t, http.MethodGet, "/items/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.ElementsMatch(t, []model.Item{first, second}, decode[[]model.Item](t, rec))
}

func TestTrailingSlashIsOptional(t *testing.T) {
	app := setupTestApp(t, "test")
	created := app.createItem(t, "Item", "Description")

	for _, path := range []string{"/items", "/items/"} {
		rec := app.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := app.do(t, http.MethodGet, fmt.Sprintf("/items/%d/", created.ID), "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNotFoundMessages(t *testing.T) {
	app := setupTestApp(t, "test")

	tests := []struct {
		method string
		body   string
		detail string
	}{
		{http.MethodGet, "", "Item with id 999999 not found."},
		{http.MethodPut, `{"name":"Non-existent Item","description":"Non-existent description"}`, "Item with id 999999 not found."},
		{http.MethodDelete, "", "item id 999999 does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			rec := app.do(t, tt.method, "/items/999999", tt.body)

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"detail":%q}`, tt.detail), rec.Body.String())
		})
	}

	rec := app.do(t, http.MethodGet, "/items/", "")
	assert.JSONEq(t, `[]`, rec.Body.String(), "update of a missing id must not create it")
}

func TestCreateItemValidation(t *testing.T) {
	app := setupTestApp(t, "test")

	tests := []struct {
		name     string
		body     string
		loc      []string
		errType  string
		errCount int
	}{
		{"missing description", `{"name":"Test Item"}`, []string{"body", "description"}, "missing", 1},
		{"null description", `{"name":"Test Item","description":null}`, []string{"body", "description"}, "missing", 1},
		{"description wrong type", `{"name":"Test Item","description":123}`, []string{"body", "description"}, "string_type", 1},
		{"malformed json", `{"name":"Test Item","description":`, []string{"body"}, "json_invalid", 1},
		{"empty object", `{}`, []string{"body", "name"}, "missing", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.do(t, http.MethodPost, "/items/", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

			body := decode[errs.HTTPError](t, rec)
			assert.Equal(t, errs.InvalidInputMessage, body.Message)
			require.Len(t, body.Errors, tt.errCount)
			assert.Equal(t, tt.loc, body.Errors[0].Loc)
			assert.Equal(t, tt.errType, body.Errors[0].Type)
		})
	}

	rec := app.do(t, http.MethodGet, "/items/", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateItemAcceptsEmptyStrings(t *testing.T) {
	app := setupTestApp(t, "test")

	created := app.createItem(t, "", "")
	assert.Equal(t, "", created.Name)
	assert.Equal(t, "", created.Description)
}

func TestCreateItemContentTypes(t *testing.T) {
	app := setupTestApp(t, "test")

	tests := []struct {
		contentType string
		status      int
	}{
		{"", http.StatusCreated},
		{echo.MIMEApplicationJSONCharsetUTF8, http.StatusCreated},
		{"application/vnd.api+json", http.StatusCreated},
		{echo.MIMETextPlain, http.StatusBadRequest},
		{echo.MIMEApplicationForm, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/items", strings.NewReader(`{"name":"a","description":"b"}`))
			if tt.contentType != "" {
				req.Header.Set(echo.HeaderContentType, tt.contentType)
			}
			rec := httptest.NewRecorder()
			app.router.ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			if tt.status == http.StatusBadRequest {
				body := decode[errs.HTTPError](t, rec)
				require.Len(t, body.Errors, 1)
				assert.Equal(t, []string{"body"}, body.Errors[0].Loc)
				assert.Equal(t, "model_attributes_type", body.Errors[0].Type)
			}
		})
	}
}

func TestInvalidPathID(t *testing.T) {
	app := setupTestApp(t, "test")

	rec := app.do(t, http.MethodGet, "/items/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode[errs.HTTPError](t, rec)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, []string{"path", "id"}, body.Errors[0].Loc)
	assert.Equal(t, "int_parsing", body.Errors[0].Type)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	app := setupTestApp(t, "test")

	rec := app.do(t, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Not Found"}`, rec.Body.String())

	rec = app.do(t, http.MethodPatch, "/items/1", `{}`)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStorageFailureIsInternalError(t *testing.T) {
	app := setupTestApp(t, "test")
	require.NoError(t, app.server.DB.Close())

	rec := app.do(t, http.MethodGet, "/items/", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decode[errs.HTTPError](t, rec)
	assert.True(t, strings.HasPrefix(body.Message, "Internal server error: "), body.Message)
}

func TestStorageFailureIsRedactedInProduction(t *testing.T) {
	app := setupTestApp(t, "production")
	require.NoError(t, app.server.DB.Close())

	rec := app.do(t, http.MethodPost, "/items/", `{"name":"a","description":"b"}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"detail":"Internal Server Error"}`, rec.Body.String())
}

func TestHealth(t *testing.T) {
	app := setupTestApp(t, "test")

	rec := app.do(t, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[handler.HealthResponse](t, rec)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks["database"].Status)

	require.NoError(t, app.server.DB.Close())

	rec = app.do(t, http.MethodGet, "/status", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body = decode[handler.HealthResponse](t, rec)
	assert.Equal(t, "unhealthy", body.Status)
	assert.NotEmpty(t, body.Checks["database"].Error)
}

func TestDocs(t *testing.T) {
	app := setupTestApp(t, "test")

	rec := app.do(t, http.MethodGet, "/docs", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/static/openapi.json")

	rec = app.do(t, http.MethodGet, "/static/openapi.json", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Contains(t, doc["paths"], "/items/{id}")
}

func TestRequestContextCarriesLogger(t *testing.T) {
	app := setupTestApp(t, "test")

	app.router.GET("/context-check", func(c echo.Context) error {
		zerolog.Ctx(c.Request().Context()).Info().Msg("handler reached")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/context-check", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))

	var handlerLine map[string]any
	for _, line := range strings.Split(strings.TrimSpace(app.logs.String()), "\n") {
		if strings.Contains(line, "handler reached") {
			require.NoError(t, json.Unmarshal([]byte(line), &handlerLine))
		}
	}
	require.NotNil(t, handlerLine, app.logs.String())
	assert.Equal(t, "req-123", handlerLine["request_id"])
	assert.Equal(t, "/context-check", handlerLine["path"])
}
