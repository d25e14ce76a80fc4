package controller

import (
	"activitylog-be/internal/dto"
	"activitylog-be/internal/pkg/serverutils"
	"activitylog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/note/v1")
	h.Post("", c.Create)
	h.Get("", c.List)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.AddNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Add(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add note", res))
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	from := ctx.Query("from")
	to := ctx.Query("to")
	limit := ctx.QueryInt("limit")
	offset := ctx.QueryInt("offset")

	res, err := c.noteService.List(ctx.Context(), from, to, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}
