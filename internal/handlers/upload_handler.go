package handlers

import (
	"context"
	"errors"

	"edu-turkish-backend/internal/services"
	"edu-turkish-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// MediaStore is the part of the media service the upload endpoints need.
type MediaStore interface {
	GeneratePresignedURL(ctx context.Context, kind, filename string) (*services.PresignedUpload, error)
	DeleteFile(ctx context.Context, objectPath string) error
}

type UploadHandler struct {
	media  MediaStore
	logger *logrus.Logger
}

func NewUploadHandler(media MediaStore, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		media:  media,
		logger: logger,
	}
}

func (h *UploadHandler) mediaError(c *fiber.Ctx, err error, message string) error {
	switch {
	case errors.Is(err, services.ErrUploadsDisabled):
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, "Media storage is not configured")
	case errors.Is(err, services.ErrUnknownUploadKind):
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error())
	}
	h.logger.WithError(err).Error(message)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, message)
}

// GetPresignedURL godoc
// @Summary Get presigned URL for file upload
// @Description Generate a presigned URL for uploading university, gallery, blog or review media to MinIO/S3
// @Tags Upload
// @Accept json
// @Produce json
// @Param filename query string true "Filename"
// @Param kind query string false "university, gallery, blog or review" default(university)
// @Success 200 {object} utils.StandardResponse{data=services.PresignedUpload}
// @Failure 400 {object} utils.StandardResponse
// @Failure 500 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse
// @Router /upload/presign [get]
func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	kind := c.Query("kind", "university")

	upload, err := h.media.GeneratePresignedURL(c.Context(), kind, filename)
	if err != nil {
		return h.mediaError(c, err, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", upload)
}

// DeleteFile godoc
// @Summary Delete an uploaded file
// @Tags Upload
// @Produce json
// @Param path query string true "Object path or public URL"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Failure 503 {object} utils.StandardResponse
// @Router /upload [delete]
func (h *UploadHandler) DeleteFile(c *fiber.Ctx) error {
	objectPath := c.Query("path")
	if objectPath == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "path is required")
	}

	if err := h.media.DeleteFile(c.Context(), objectPath); err != nil {
		return h.mediaError(c, err, "Failed to delete file")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "File deleted successfully", nil)
}
