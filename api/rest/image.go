package rest

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"quickly/api/model"
	"quickly/config"
)

// ImageProcessor is the request-to-bytes pipeline behind the controller.
type ImageProcessor interface {
	Process(ctx context.Context, path string, req model.ResizeRequest) ([]byte, error)
}

type ImageController struct {
	cfg     *config.Config
	service ImageProcessor
	logger  *zap.Logger
}

func NewImageController(app *fiber.App, cfg *config.Config, service ImageProcessor, logger *zap.Logger) *ImageController {
	i := &ImageController{cfg: cfg, service: service, logger: logger}

	app.Get("/*", i.Transform)

	return i
}

// Transform proxies the origin image at the wildcard path, applying the
// resize described by the query parameters. Pipeline failures after path
// extraction collapse to a bare 500; error detail stays in the log.
func (i *ImageController) Transform(c *fiber.Ctx) error {
	path := c.Params("*")
	if path == "" {
		return c.SendStatus(fiber.StatusUnprocessableEntity)
	}

	params := model.ParseQuery(c.Queries())

	i.logger.Debug(fmt.Sprintf("Processing image %s with params: %+v", path, params))

	buf, err := i.service.Process(c.UserContext(), path, params)
	if err != nil {
		i.logger.Error("Error processing image", zap.String("path", path), zap.Error(err))
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, "application/octet-stream")

	return c.Status(fiber.StatusOK).Send(buf)
}
