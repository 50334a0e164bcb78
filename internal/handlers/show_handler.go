package handlers

import (
	"errors"

	"stagebook/internal/repository"
	"stagebook/internal/services"
	"stagebook/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ShowHandler struct {
	service services.ShowService
	flash   *utils.FlashStore
	logger  *logrus.Logger
}

func NewShowHandler(service services.ShowService, flash *utils.FlashStore, logger *logrus.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		flash:   flash,
		logger:  logger,
	}
}

// List renders every show joined with its venue and artist.
func (h *ShowHandler) List(c *fiber.Ctx) error {
	shows, err := h.service.ListAll(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list shows")
		return fiber.ErrInternalServerError
	}

	return render(c, h.flash, "pages/shows", fiber.Map{
		"Shows": shows,
	})
}

// CreateForm renders the empty show form.
func (h *ShowHandler) CreateForm(c *fiber.Ctx) error {
	return render(c, h.flash, "forms/new_show", nil)
}

// Create books an artist into a venue at a start time. Success and
// failure both flash a notice and redirect home.
func (h *ShowHandler) Create(c *fiber.Ctx) error {
	var form ShowForm
	if err := c.BodyParser(&form); err != nil {
		h.flash.Add(c, "An error occurred. Show could not be listed.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if err := validate.Struct(&form); err != nil {
		h.logger.WithError(err).Warn("Invalid show form")
		h.flash.Add(c, "An error occurred. Show could not be listed.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	err := h.service.CreateShow(c.Context(), form.VenueID, form.ArtistID, form.StartTime)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrForeignKey):
			h.flash.Add(c, "An error occurred. Show references an unknown venue or artist.")
		case errors.Is(err, repository.ErrDuplicateShow):
			h.flash.Add(c, "An error occurred. That show is already listed.")
		default:
			h.flash.Add(c, "An error occurred. Show could not be listed.")
		}
		h.logger.WithError(err).WithFields(logrus.Fields{
			"venue_id":  form.VenueID,
			"artist_id": form.ArtistID,
		}).Error("Failed to create show")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	h.flash.Add(c, "Show was successfully listed!")
	return c.Redirect("/", fiber.StatusSeeOther)
}
