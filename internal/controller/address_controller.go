package controller

import (
	"invoicing-be/internal/pkg/serverutils"
	"invoicing-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAddressController interface {
	RegisterRoutes(r fiber.Router)
	Cleanup(ctx *fiber.Ctx) error
}

type addressController struct {
	service service.IAddressService
}

func NewAddressController(service service.IAddressService) IAddressController {
	return &addressController{service: service}
}

func (c *addressController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/address/v1")
	h.Post("cleanup", c.Cleanup)
}

func (c *addressController) Cleanup(ctx *fiber.Ctx) error {
	res, err := c.service.Cleanup(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success cleanup addresses", res))
}
