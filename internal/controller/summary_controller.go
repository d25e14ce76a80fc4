package controller

import (
	"activitylog-be/internal/pkg/serverutils"
	"activitylog-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISummaryController interface {
	RegisterRoutes(r fiber.Router)
	DaySummary(ctx *fiber.Ctx) error
	DayAppUsage(ctx *fiber.Ctx) error
	Overview(ctx *fiber.Ctx) error
	Rollup(ctx *fiber.Ctx) error
	AppHistory(ctx *fiber.Ctx) error
	AvailableDates(ctx *fiber.Ctx) error
}

type summaryController struct {
	summaryService service.ISummaryService
}

func NewSummaryController(summaryService service.ISummaryService) ISummaryController {
	return &summaryController{
		summaryService: summaryService,
	}
}

func (c *summaryController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/summary/v1")
	h.Get("overview", c.Overview)
	h.Get("rollup", c.Rollup)
	h.Get("apps", c.AppHistory)
	h.Get("dates", c.AvailableDates)
	h.Get("day/:date", c.DaySummary)
	h.Get("day/:date/apps", c.DayAppUsage)
}

func (c *summaryController) DaySummary(ctx *fiber.Ctx) error {
	res, err := c.summaryService.GetDaySummary(ctx.Context(), ctx.Params("date"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get day summary", res))
}

func (c *summaryController) DayAppUsage(ctx *fiber.Ctx) error {
	res, err := c.summaryService.GetAppUsage(ctx.Context(), ctx.Params("date"))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get app usage", res))
}

func (c *summaryController) Overview(ctx *fiber.Ctx) error {
	from := ctx.Query("from")
	to := ctx.Query("to")
	limit := ctx.QueryInt("limit")

	res, err := c.summaryService.GetOverview(ctx.Context(), from, to, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get overview", res))
}

func (c *summaryController) Rollup(ctx *fiber.Ctx) error {
	from := ctx.Query("from")
	to := ctx.Query("to")
	limit := ctx.QueryInt("limit")

	res, err := c.summaryService.GetRollup(ctx.Context(), from, to, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get rollup", res))
}

func (c *summaryController) AppHistory(ctx *fiber.Ctx) error {
	app := ctx.Query("name")
	from := ctx.Query("from")
	to := ctx.Query("to")
	limit := ctx.QueryInt("limit")
	offset := ctx.QueryInt("offset")

	res, err := c.summaryService.GetAppHistory(ctx.Context(), app, from, to, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get app history", res))
}

func (c *summaryController) AvailableDates(ctx *fiber.Ctx) error {
	res, err := c.summaryService.GetAvailableDates(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get available dates", res))
}
