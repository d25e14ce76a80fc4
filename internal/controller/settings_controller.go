package controller

import (
	"activitylog-be/internal/dto"
	"activitylog-be/internal/pkg/serverutils"
	"activitylog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISettingsController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type settingsController struct {
	settingsService service.ISettingsService
}

func NewSettingsController(settingsService service.ISettingsService) ISettingsController {
	return &settingsController{
		settingsService: settingsService,
	}
}

func (c *settingsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/settings/v1")
	h.Get("", c.Show)
	h.Put(":key", c.Update)
}

func (c *settingsController) Show(ctx *fiber.Ctx) error {
	res, err := c.settingsService.GetResponse(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get settings", res))
}

func (c *settingsController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdateSettingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	key := ctx.Params("key")
	if err := c.settingsService.Update(ctx.Context(), key, req.Value); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update setting", key))
}
