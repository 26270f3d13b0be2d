package controller

import (
	"encoding/json"

	"activity-insights-be/internal/dto"
	"activity-insights-be/internal/pkg/serverutils"
	"activity-insights-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMiningController interface {
	RegisterRoutes(r fiber.Router)
	RunMining(ctx *fiber.Ctx) error
}

type miningController struct {
	publisherService service.IPublisherService
}

func NewMiningController(publisherService service.IPublisherService) IMiningController {
	return &miningController{
		publisherService: publisherService,
	}
}

func (c *miningController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/insight/v1/mining")
	h.Use(serverutils.JwtMiddleware)
	h.Post("run", c.RunMining)
}

// RunMining enqueues an async mining run. The heavy lifting happens in the
// background consumer; the request returns immediately.
func (c *miningController) RunMining(ctx *fiber.Ctx) error {
	var req dto.RunMiningRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return err
		}
	}

	payload, err := json.Marshal(dto.MiningRequestMessage{UserId: req.UserId})
	if err != nil {
		return err
	}

	if err := c.publisherService.Publish(ctx.Context(), payload); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusAccepted).JSON(serverutils.SuccessResponse[any]("Mining run queued", nil))
}
