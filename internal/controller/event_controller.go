package controller

import (
	"activitylog-be/internal/dto"
	"activitylog-be/internal/pkg/serverutils"
	"activitylog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEventController interface {
	RegisterRoutes(r fiber.Router)
	RecordWindow(ctx *fiber.Ctx) error
	RecordKeys(ctx *fiber.Ctx) error
	LastWindow(ctx *fiber.Ctx) error
}

type eventController struct {
	eventService service.IEventService
}

func NewEventController(eventService service.IEventService) IEventController {
	return &eventController{
		eventService: eventService,
	}
}

func (c *eventController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/event/v1")
	h.Post("window", c.RecordWindow)
	h.Get("window/last", c.LastWindow)
	h.Post("keys", c.RecordKeys)
}

func (c *eventController) RecordWindow(ctx *fiber.Ctx) error {
	var req dto.RecordWindowEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.eventService.RecordWindowEvent(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record window event", res))
}

func (c *eventController) LastWindow(ctx *fiber.Ctx) error {
	res, err := c.eventService.LastWindowEvent(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get last window event", res))
}

func (c *eventController) RecordKeys(ctx *fiber.Ctx) error {
	var req dto.RecordKeySampleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.eventService.RecordKeySample(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record key sample", res))
}
