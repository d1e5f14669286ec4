package controller

import (
	"strconv"

	"invoicing-be/internal/dto"
	"invoicing-be/internal/pkg/apperror"
	"invoicing-be/internal/pkg/serverutils"
	"invoicing-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IInvoiceController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
	GetById(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	AddItem(ctx *fiber.Ctx) error
}

type invoiceController struct {
	service service.IInvoiceService
}

func NewInvoiceController(service service.IInvoiceService) IInvoiceController {
	return &invoiceController{service: service}
}

func (c *invoiceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/invoice/v1")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get(":id", c.GetById)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Post(":id/items", c.AddItem)
}

func parseIdParam(ctx *fiber.Ctx) (uint, error) {
	idParam := ctx.Params("id")
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		return 0, apperror.NewValidation("invalid invoice id '%s'", idParam)
	}
	return uint(id), nil
}

func (c *invoiceController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateInvoiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create invoice", res))
}

func (c *invoiceController) GetAll(ctx *fiber.Ctx) error {
	var req dto.ListInvoicesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return apperror.NewValidation("invalid query parameters")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all invoices", res))
}

func (c *invoiceController) GetById(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetById(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get invoice", res))
}

func (c *invoiceController) Update(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateInvoiceRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update invoice", res))
}

func (c *invoiceController) Delete(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Delete(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete invoice", res))
}

func (c *invoiceController) AddItem(ctx *fiber.Ctx) error {
	id, err := parseIdParam(ctx)
	if err != nil {
		return err
	}

	var req dto.AddInvoiceItemRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("invalid request body")
	}
	req.InvoiceId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.AddItem(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success add invoice item", res))
}
