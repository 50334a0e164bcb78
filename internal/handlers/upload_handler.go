package handlers

import (
	"stagebook/internal/services"
	"stagebook/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// UploadHandler hands out presigned PUT URLs so the venue and artist
// forms can upload images straight to the bucket and submit the public
// URL as the image link.
type UploadHandler struct {
	mediaService *services.MediaService
	logger       *logrus.Logger
}

func NewUploadHandler(mediaService *services.MediaService, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		mediaService: mediaService,
		logger:       logger,
	}
}

func (h *UploadHandler) GetPresignedURL(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	contentType := c.Query("contentType", "image/jpeg")

	presignedURL, publicURL, err := h.mediaService.GeneratePresignedURL(filename, contentType)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate presigned URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate presigned URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Presigned URL generated successfully", fiber.Map{
		"presigned_url": presignedURL,
		"public_url":    publicURL,
	})
}
