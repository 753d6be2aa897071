package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"postboard/internal/pkg/logger"
	"postboard/internal/pkg/serverutils"
	"postboard/internal/repository/memory"
	"postboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApiTestApp(t *testing.T) (*fiber.App, service.IPostService) {
	t.Helper()

	svc, err := service.NewPostService(memory.NewCacheStore(), logger.NewNopLogger(), nil)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewPostController(svc).RegisterRoutes(api)

	return app, svc
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := app.Test(req)
	require.NoError(t, err)

	var parsed map[string]interface{}
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &parsed))

	return res, parsed
}

func TestApiCreatePost(t *testing.T) {
	app, svc := newApiTestApp(t)

	res, parsed := doJSON(t, app, http.MethodPost, "/api/post/v1", map[string]interface{}{
		"title":   "A",
		"content": "body",
		"tags":    []string{"x"},
	})

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, true, parsed["success"])

	posts, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}

func TestApiCreateRejectsEmptyContent(t *testing.T) {
	app, svc := newApiTestApp(t)

	res, parsed := doJSON(t, app, http.MethodPost, "/api/post/v1", map[string]interface{}{
		"title": "A",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Equal(t, false, parsed["success"])

	posts, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestApiListAndFilter(t *testing.T) {
	app, svc := newApiTestApp(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, createReq("A", "body1", []string{"x"}))
	require.NoError(t, err)
	_, err = svc.Create(ctx, createReq("B", "body2", []string{"x", "y"}))
	require.NoError(t, err)

	_, parsed := doJSON(t, app, http.MethodGet, "/api/post/v1", nil)
	assert.Len(t, parsed["data"], 2)

	_, parsed = doJSON(t, app, http.MethodGet, "/api/post/v1?tag=y", nil)
	data := parsed["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "B", data[0].(map[string]interface{})["title"])
}

func TestApiTags(t *testing.T) {
	app, svc := newApiTestApp(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, createReq("A", "body", []string{"b", "a"}))
	require.NoError(t, err)
	_, err = svc.Create(ctx, createReq("B", "body", []string{"a"}))
	require.NoError(t, err)

	_, parsed := doJSON(t, app, http.MethodGet, "/api/post/v1/tags", nil)
	data := parsed["data"].(map[string]interface{})
	assert.Equal(t, []interface{}{"a", "b"}, data["tags"])
}

func TestApiShowNotFound(t *testing.T) {
	app, _ := newApiTestApp(t)

	res, parsed := doJSON(t, app, http.MethodGet, "/api/post/v1/424242", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, false, parsed["success"])
}

func TestApiUpdateNotFound(t *testing.T) {
	app, svc := newApiTestApp(t)

	res, _ := doJSON(t, app, http.MethodPut, "/api/post/v1/424242", map[string]interface{}{
		"title":   "X",
		"content": "Y",
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	posts, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestApiMalformedIdIsBadRequest(t *testing.T) {
	app, _ := newApiTestApp(t)

	res, parsed := doJSON(t, app, http.MethodGet, "/api/post/v1/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, false, parsed["success"])

	res, _ = doJSON(t, app, http.MethodDelete, "/api/post/v1/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestApiDeleteUnknownIdIsAccepted(t *testing.T) {
	app, _ := newApiTestApp(t)

	res, parsed := doJSON(t, app, http.MethodDelete, "/api/post/v1/424242", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, true, parsed["success"])
}
