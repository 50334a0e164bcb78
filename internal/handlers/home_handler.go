package handlers

import (
	"stagebook/internal/services"
	"stagebook/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type HomeHandler struct {
	venueService  services.VenueService
	artistService services.ArtistService
	flash         *utils.FlashStore
	logger        *logrus.Logger
}

func NewHomeHandler(venueService services.VenueService, artistService services.ArtistService, flash *utils.FlashStore, logger *logrus.Logger) *HomeHandler {
	return &HomeHandler{
		venueService:  venueService,
		artistService: artistService,
		flash:         flash,
		logger:        logger,
	}
}

// Index renders the homepage with the ten most recently listed venues
// and artists.
func (h *HomeHandler) Index(c *fiber.Ctx) error {
	venues, err := h.venueService.ListRecent(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load recent venues")
		return fiber.ErrInternalServerError
	}

	artists, err := h.artistService.ListRecent(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to load recent artists")
		return fiber.ErrInternalServerError
	}

	return render(c, h.flash, "pages/home", fiber.Map{
		"Venues":  venues,
		"Artists": artists,
	})
}
