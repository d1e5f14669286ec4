package controller

import (
	"invoicing-be/internal/pkg/serverutils"
	"invoicing-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStatsController interface {
	RegisterRoutes(r fiber.Router)
	GetStats(ctx *fiber.Ctx) error
}

type statsController struct {
	service service.IStatsService
}

func NewStatsController(service service.IStatsService) IStatsController {
	return &statsController{service: service}
}

func (c *statsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/stats/v1")
	h.Get("", c.GetStats)
}

func (c *statsController) GetStats(ctx *fiber.Ctx) error {
	res, err := c.service.GetStats(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get invoice stats", res))
}
