package controller

import (
	"strconv"
	"strings"

	"postboard/internal/dto"
	"postboard/internal/pkg/logger"
	"postboard/internal/service"
	"postboard/internal/view"

	"github.com/gofiber/fiber/v2"
)

// FilterAll is the sentinel value of the tag filter meaning "no filter".
const FilterAll = "all"

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	ConfirmDelete(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type pageController struct {
	postService service.IPostService
	renderer    *view.Renderer
	logger      logger.ILogger
}

func NewPageController(postService service.IPostService, renderer *view.Renderer, log logger.ILogger) IPageController {
	return &pageController{
		postService: postService,
		renderer:    renderer,
		logger:      log,
	}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)
	r.Post("/posts", c.Submit)
	r.Get("/posts/:id/delete", c.ConfirmDelete)
	r.Post("/posts/:id/delete", c.Delete)
}

// Index renders the whole page: the two-mode form, the tag filter and the
// post list, rebuilt from scratch on every request.
func (c *pageController) Index(ctx *fiber.Ctx) error {
	tags, err := c.postService.Tags(ctx.Context())
	if err != nil {
		return err
	}

	// The "all" sentinel and a filter tag that no longer exists both mean
	// no filter, so a stale selection degrades to the full list.
	filterTag := ctx.Query("tag")
	if filterTag == FilterAll || !containsTag(tags, filterTag) {
		filterTag = ""
	}

	posts, err := c.postService.List(ctx.Context(), filterTag)
	if err != nil {
		return err
	}

	form := view.FormView{}
	if editParam := ctx.Query("edit"); editParam != "" {
		id, _ := strconv.ParseInt(editParam, 10, 64)
		post, err := c.postService.Get(ctx.Context(), id)
		if err != nil {
			return err
		}
		if post != nil {
			form = view.EditForm(post)
		}
	}

	page := view.Page{
		Form:      form,
		FilterTag: filterTag,
		Tags:      tags,
		Posts:     view.NewPostViews(posts),
	}

	ctx.Type("html", "utf-8")
	return c.renderer.RenderPage(ctx.Response().BodyWriter(), page)
}

// Submit handles both modes of the form: a hidden id dispatches to update,
// otherwise a new post is created. An empty title or content is a silent
// no-op; either way the browser lands back on a fresh create-mode page.
func (c *pageController) Submit(ctx *fiber.Ctx) error {
	title := strings.TrimSpace(ctx.FormValue("title"))
	content := strings.TrimSpace(ctx.FormValue("content"))
	tags := SplitTags(ctx.FormValue("tags"))

	if title == "" || content == "" {
		return ctx.Redirect("/", fiber.StatusSeeOther)
	}

	if idParam := ctx.FormValue("id"); idParam != "" {
		id, _ := strconv.ParseInt(idParam, 10, 64)
		// An unknown id (deleted in the meantime) falls through silently.
		_, err := c.postService.Update(ctx.Context(), &dto.UpdatePostRequest{
			Id:      id,
			Title:   title,
			Content: content,
			Tags:    tags,
		})
		if err != nil {
			return err
		}
	} else {
		_, err := c.postService.Create(ctx.Context(), &dto.CreatePostRequest{
			Title:   title,
			Content: content,
			Tags:    tags,
		})
		if err != nil {
			return err
		}
	}

	return ctx.Redirect("/", fiber.StatusSeeOther)
}

// ConfirmDelete is the interactive confirmation step. Declining is just
// the cancel link back to the index.
func (c *pageController) ConfirmDelete(ctx *fiber.Ctx) error {
	id, _ := strconv.ParseInt(ctx.Params("id"), 10, 64)
	post, err := c.postService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	if post == nil {
		return ctx.Redirect("/", fiber.StatusSeeOther)
	}

	ctx.Type("html", "utf-8")
	return c.renderer.RenderConfirmDelete(ctx.Response().BodyWriter(), view.ConfirmDelete{
		Id:    post.Id,
		Title: post.Title,
	})
}

func (c *pageController) Delete(ctx *fiber.Ctx) error {
	id, _ := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err := c.postService.Delete(ctx.Context(), id); err != nil {
		return err
	}
	return ctx.Redirect("/", fiber.StatusSeeOther)
}

// SplitTags turns the raw comma-separated input into a tag list: split,
// trim, drop empties. Order and duplicates are kept as entered.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := []string{}
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
