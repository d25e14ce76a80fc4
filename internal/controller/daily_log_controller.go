package controller

import (
	"activitylog-be/internal/dto"
	"activitylog-be/internal/pkg/serverutils"
	"activitylog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IDailyLogController interface {
	RegisterRoutes(r fiber.Router)
	Show(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
}

type dailyLogController struct {
	dailyLogService service.IDailyLogService
}

func NewDailyLogController(dailyLogService service.IDailyLogService) IDailyLogController {
	return &dailyLogController{
		dailyLogService: dailyLogService,
	}
}

func (c *dailyLogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/log/v1")
	h.Get(":date", c.Show)
	h.Put(":date", c.Save)
}

func (c *dailyLogController) Show(ctx *fiber.Ctx) error {
	res, err := c.dailyLogService.Get(ctx.Context(), ctx.Params("date"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get daily log", res))
}

func (c *dailyLogController) Save(ctx *fiber.Ctx) error {
	var req dto.SaveDailyLogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.dailyLogService.Save(ctx.Context(), ctx.Params("date"), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save daily log", res))
}
