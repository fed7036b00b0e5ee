package controller

import (
	"ai-memoire-be/internal/dto"
	"ai-memoire-be/internal/pkg/serverutils"
	"ai-memoire-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	Analyze(ctx *fiber.Ctx) error
	Sections(ctx *fiber.Ctx) error
	Examples(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type assistantController struct {
	service service.IAssistantService
}

func NewAssistantController(service service.IAssistantService) IAssistantController {
	return &assistantController{service: service}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Post("/ask", c.Ask)
	h.Post("/analyze", c.Analyze)
	h.Get("/sections", c.Sections)
	h.Get("/examples", c.Examples)
	h.Get("/health", c.Health)
}

func (c *assistantController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Ask(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success generate response", res))
}

func (c *assistantController) Analyze(ctx *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze prompt", c.service.Analyze(&req)))
}

func (c *assistantController) Sections(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get sections", c.service.Sections()))
}

func (c *assistantController) Examples(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get examples", c.service.Examples()))
}

func (c *assistantController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success check health", c.service.Health(ctx.Context())))
}
