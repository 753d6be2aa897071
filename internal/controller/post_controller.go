package controller

import (
	"strconv"

	"postboard/internal/dto"
	"postboard/internal/entity"
	"postboard/internal/pkg/serverutils"
	"postboard/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPostController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Tags(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type postController struct {
	postService service.IPostService
}

func NewPostController(postService service.IPostService) IPostController {
	return &postController{
		postService: postService,
	}
}

func (c *postController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/post/v1")
	h.Get("tags", c.Tags)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *postController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	post, err := c.postService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create post", toPostResponse(post)))
}

func (c *postController) List(ctx *fiber.Ctx) error {
	tag := ctx.Query("tag", "")

	posts, err := c.postService.List(ctx.Context(), tag)
	if err != nil {
		return err
	}

	res := make([]*dto.PostResponse, len(posts))
	for i, p := range posts {
		res[i] = toPostResponse(p)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list posts", res))
}

func (c *postController) Tags(ctx *fiber.Ctx) error {
	tags, err := c.postService.Tags(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list tags", &dto.TagListResponse{Tags: tags}))
}

func (c *postController) Show(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}

	post, err := c.postService.Get(ctx.Context(), id)
	if err != nil {
		return err
	}
	if post == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "Post not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show post", toPostResponse(post)))
}

func (c *postController) Update(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdatePostRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	post, err := c.postService.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}
	if post == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(fiber.StatusNotFound, "Post not found"))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update post", toPostResponse(post)))
}

func (c *postController) Delete(ctx *fiber.Ctx) error {
	id, err := parseId(ctx)
	if err != nil {
		return err
	}

	// Deleting an unknown id is accepted as a no-op.
	if err := c.postService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success delete post", nil))
}

// parseId rejects a malformed path id with a 400; the HTML surface keeps
// its silent treatment, but garbage on the API is a caller error.
func parseId(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, fiber.ErrBadRequest
	}
	return id, nil
}

func toPostResponse(p *entity.Post) *dto.PostResponse {
	return &dto.PostResponse{
		Id:        p.Id,
		Title:     p.Title,
		Content:   p.Content,
		Tags:      p.Tags,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
