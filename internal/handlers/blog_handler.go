package handlers

import (
	"errors"
	"mime/multipart"

	"chai/internal/forms"
	"chai/internal/models"
	"chai/internal/services"

	"github.com/gofiber/fiber/v2"
)

// BlogHandler serves the blog pages.
type BlogHandler struct {
	service   *services.BlogService
	validator *forms.Validator
}

// NewBlogHandler creates a new instance of BlogHandler.
func NewBlogHandler(service *services.BlogService, validator *forms.Validator) *BlogHandler {
	return &BlogHandler{service: service, validator: validator}
}

// RegisterRoutes mounts the blog pages on router.
func (h *BlogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/insertBlog", h.HandleInsert)
	router.Post("/insertBlog", h.HandleInsert)
	router.Get("/showPosts", h.HandleList)
	router.Get("/blogpost_detail/:id<int>", h.HandleDetail)
}

// HandleInsert shows the post form and creates a post with its optional thumbnail.
func (h *BlogHandler) HandleInsert(c *fiber.Ctx) error {
	var post models.BlogPost
	if c.Method() != fiber.MethodPost {
		return render(c, fiber.StatusOK, "insert_form", fiber.Map{"form": post, "blogpost_created": false})
	}

	if err := c.BodyParser(&post); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form data")
	}
	post.ID = 0
	if errs := h.validator.Check(post); errs != nil {
		return render(c, fiber.StatusBadRequest, "insert_form", fiber.Map{"form": post, "errors": errs, "blogpost_created": false})
	}

	if err := h.service.CreatePost(&post, thumbnail(c)); err != nil {
		if errors.Is(err, services.ErrInvalidImage) {
			return render(c, fiber.StatusBadRequest, "insert_form", fiber.Map{
				"form":             post,
				"errors":           forms.FieldErrors{"thumbnail": "Upload a valid image. The file you uploaded was either not an image or a corrupted image."},
				"blogpost_created": false,
			})
		}
		return err
	}
	return render(c, fiber.StatusOK, "insert_form", fiber.Map{"form": models.BlogPost{}, "blogpost_created": true})
}

func (h *BlogHandler) HandleList(c *fiber.Ctx) error {
	posts, err := h.service.ListPosts()
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "blogposts", fiber.Map{"posts": posts})
}

func (h *BlogHandler) HandleDetail(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}
	post, err := h.service.GetPost(id)
	if err != nil {
		return err
	}
	return render(c, fiber.StatusOK, "blogpost_detail", fiber.Map{"post": post})
}

// thumbnail returns the uploaded file, or nil when the request carries none.
func thumbnail(c *fiber.Ctx) *multipart.FileHeader {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	files := form.File["thumbnail"]
	if len(files) == 0 || files[0].Size == 0 {
		return nil
	}
	return files[0]
}
