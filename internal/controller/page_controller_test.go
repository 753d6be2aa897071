package controller

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"postboard/internal/dto"
	"postboard/internal/pkg/logger"
	"postboard/internal/pkg/serverutils"
	"postboard/internal/repository/memory"
	"postboard/internal/service"
	"postboard/internal/view"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageTestApp(t *testing.T) (*fiber.App, service.IPostService) {
	t.Helper()

	svc, err := service.NewPostService(memory.NewCacheStore(), logger.NewNopLogger(), nil)
	require.NoError(t, err)

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewPageController(svc, renderer, logger.NewNopLogger()).RegisterRoutes(app)

	return app, svc
}

func createReq(title, content string, tags []string) *dto.CreatePostRequest {
	return &dto.CreatePostRequest{Title: title, Content: content, Tags: tags}
}

func submitForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	res, err := app.Test(req)
	require.NoError(t, err)
	return res
}

func getBody(t *testing.T, app *fiber.App, path string) string {
	t.Helper()
	res, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return string(body)
}

func TestSubmitCreatesPost(t *testing.T) {
	app, svc := newPageTestApp(t)

	res := submitForm(t, app, "/posts", url.Values{
		"title":   {"First post"},
		"content": {"Hello"},
		"tags":    {"go, notes , ,go"},
	})
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)
	assert.Equal(t, "/", res.Header.Get("Location"))

	posts, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "First post", posts[0].Title)
	assert.Equal(t, []string{"go", "notes", "go"}, posts[0].Tags)
}

func TestSubmitEmptyContentIsNoOp(t *testing.T) {
	app, svc := newPageTestApp(t)

	res := submitForm(t, app, "/posts", url.Values{
		"title":   {"Only a title"},
		"content": {"   "},
	})
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)

	posts, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestSubmitWithHiddenIdUpdates(t *testing.T) {
	app, svc := newPageTestApp(t)

	submitForm(t, app, "/posts", url.Values{
		"title":   {"Original"},
		"content": {"body"},
	})
	posts, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	id := posts[0].Id

	submitForm(t, app, "/posts", url.Values{
		"id":      {strconv.FormatInt(id, 10)},
		"title":   {"Edited"},
		"content": {"new body"},
		"tags":    {"x"},
	})

	posts, err = svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Edited", posts[0].Title)
	assert.Equal(t, []string{"x"}, posts[0].Tags)
}

func TestSubmitUnknownIdFallsThroughSilently(t *testing.T) {
	app, svc := newPageTestApp(t)

	res := submitForm(t, app, "/posts", url.Values{
		"id":      {"424242"},
		"title":   {"Ghost"},
		"content": {"body"},
	})
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)

	posts, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestIndexRendersPosts(t *testing.T) {
	app, svc := newPageTestApp(t)

	_, err := svc.Create(context.Background(), createReq("Visible post", "line1\nline2", []string{"x"}))
	require.NoError(t, err)

	body := getBody(t, app, "/")
	assert.Contains(t, body, "Visible post")
	assert.Contains(t, body, "line1<br>line2")
	assert.Contains(t, body, `<span class="tag">x</span>`)
}

func TestIndexTagFilter(t *testing.T) {
	app, svc := newPageTestApp(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, createReq("A", "body1", []string{"x"}))
	require.NoError(t, err)
	_, err = svc.Create(ctx, createReq("B", "body2", []string{"x", "y"}))
	require.NoError(t, err)

	body := getBody(t, app, "/?tag=y")
	assert.Contains(t, body, `<h2>B</h2>`)
	assert.NotContains(t, body, `<h2>A</h2>`)

	// The sentinel and an unknown tag both render the full list.
	body = getBody(t, app, "/?tag=all")
	assert.Contains(t, body, `<h2>A</h2>`)
	assert.Contains(t, body, `<h2>B</h2>`)

	body = getBody(t, app, "/?tag=gone")
	assert.Contains(t, body, `<h2>A</h2>`)
	assert.Contains(t, body, `<h2>B</h2>`)
}

func TestIndexEditModePrefillsForm(t *testing.T) {
	app, svc := newPageTestApp(t)

	post, err := svc.Create(context.Background(), createReq("Editable", "body", []string{"x", "y"}))
	require.NoError(t, err)

	body := getBody(t, app, "/?edit="+strconv.FormatInt(post.Id, 10))
	assert.Contains(t, body, "Save changes")
	assert.Contains(t, body, "Cancel")
	assert.Contains(t, body, `value="Editable"`)
	assert.Contains(t, body, `value="x, y"`)

	// Unknown edit id degrades to create mode.
	body = getBody(t, app, "/?edit=424242")
	assert.Contains(t, body, "Add post")
}

func TestDeleteFlow(t *testing.T) {
	app, svc := newPageTestApp(t)

	post, err := svc.Create(context.Background(), createReq("Doomed", "body", nil))
	require.NoError(t, err)
	idParam := strconv.FormatInt(post.Id, 10)

	// Confirmation page first, nothing deleted yet.
	body := getBody(t, app, "/posts/"+idParam+"/delete")
	assert.Contains(t, body, "Doomed")

	posts, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	// Confirmed delete removes the post.
	res := submitForm(t, app, "/posts/"+idParam+"/delete", url.Values{})
	assert.Equal(t, http.StatusSeeOther, res.StatusCode)

	posts, err = svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestSplitTags(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: []string{}},
		{name: "single", raw: "go", want: []string{"go"}},
		{name: "trims and drops empties", raw: " go , , notes ,", want: []string{"go", "notes"}},
		{name: "keeps duplicates and order", raw: "b,a,b", want: []string{"b", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitTags(tt.raw))
		})
	}
}
