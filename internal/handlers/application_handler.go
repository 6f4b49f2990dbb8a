package handlers

import (
	"errors"

	"edu-turkish-backend/internal/dto"
	"edu-turkish-backend/internal/services"
	"edu-turkish-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ApplicationHandler struct {
	service services.ApplicationService
	logger  *logrus.Logger
}

func NewApplicationHandler(service services.ApplicationService, logger *logrus.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		service: service,
		logger:  logger,
	}
}

// CreateApplication godoc
// @Summary Submit an application request
// @Description Stores a lead form submission from the website
// @Tags applications
// @Accept json
// @Produce json
// @Param lang query string false "Locale of the submitting page" default(ru)
// @Param application body dto.ApplicationInput true "Application data"
// @Success 201 {object} utils.StandardResponse{data=dto.ApplicationReceipt}
// @Failure 400 {object} utils.StandardResponse{data=map[string]string}
// @Failure 500 {object} utils.StandardResponse
// @Router /applications [post]
func (h *ApplicationHandler) CreateApplication(c *fiber.Ctx) error {
	var input dto.ApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	receipt, err := h.service.Submit(c.Context(), input, requestLocale(c))
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			return utils.ErrorWithDataResponse(c, fiber.StatusBadRequest, "Validation failed", verr.Fields)
		}
		h.logger.WithError(err).Error("Failed to store application")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to submit application")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Application submitted successfully", receipt)
}
