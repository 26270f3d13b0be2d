package controller

import (
	"activity-insights-be/internal/pkg/serverutils"
	"activity-insights-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISuggestionController interface {
	RegisterRoutes(r fiber.Router)
	GetSuggestions(ctx *fiber.Ctx) error
	GetPatterns(ctx *fiber.Ctx) error
}

type suggestionController struct {
	suggestionService service.ISuggestionService
}

func NewSuggestionController(suggestionService service.ISuggestionService) ISuggestionController {
	return &suggestionController{
		suggestionService: suggestionService,
	}
}

func (c *suggestionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/insight/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("suggestions", c.GetSuggestions)
	h.Get("patterns", c.GetPatterns)
}

func (c *suggestionController) GetSuggestions(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.suggestionService.GetSuggestions(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get template suggestions", res))
}

func (c *suggestionController) GetPatterns(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	limit := ctx.QueryInt("limit", 20)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.suggestionService.GetMinedPatterns(ctx.Context(), userId, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get mined patterns", res))
}
