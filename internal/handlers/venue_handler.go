package handlers

import (
	"errors"
	"fmt"

	"stagebook/internal/repository"
	"stagebook/internal/services"
	"stagebook/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type VenueHandler struct {
	service services.VenueService
	flash   *utils.FlashStore
	logger  *logrus.Logger
}

func NewVenueHandler(service services.VenueService, flash *utils.FlashStore, logger *logrus.Logger) *VenueHandler {
	return &VenueHandler{
		service: service,
		flash:   flash,
		logger:  logger,
	}
}

// List renders every venue grouped by (city, state).
func (h *VenueHandler) List(c *fiber.Ctx) error {
	areas, err := h.service.GroupByLocation(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list venues")
		return fiber.ErrInternalServerError
	}

	return render(c, h.flash, "pages/venues", fiber.Map{
		"Areas": areas,
	})
}

// Search renders venues whose name contains the submitted term.
func (h *VenueHandler) Search(c *fiber.Ctx) error {
	var form SearchForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	venues, count, err := h.service.Search(c.Context(), form.SearchTerm)
	if err != nil {
		h.logger.WithError(err).WithField("term", form.SearchTerm).Error("Venue search failed")
		return fiber.ErrInternalServerError
	}

	return render(c, h.flash, "pages/search_venues", fiber.Map{
		"Count":      count,
		"Venues":     venues,
		"SearchTerm": form.SearchTerm,
	})
}

// Show renders the venue page with its past and upcoming shows.
func (h *VenueHandler) Show(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}

	detail, err := h.service.GetVenueDetail(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.ErrNotFound
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to load venue")
		return fiber.ErrInternalServerError
	}

	return render(c, h.flash, "pages/show_venue", fiber.Map{
		"Venue": detail,
	})
}

// CreateForm renders the empty venue form.
func (h *VenueHandler) CreateForm(c *fiber.Ctx) error {
	return render(c, h.flash, "forms/new_venue", fiber.Map{
		"GenreChoices": GenreChoices,
	})
}

// Create lists a new venue. Success and failure both flash a notice and
// redirect home.
func (h *VenueHandler) Create(c *fiber.Ctx) error {
	var form VenueForm
	if err := c.BodyParser(&form); err != nil {
		h.flash.Add(c, "An error occurred. Venue could not be listed.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if err := validate.Struct(&form); err != nil {
		h.logger.WithError(err).Warn("Invalid venue form")
		h.flash.Add(c, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if err := h.service.CreateVenue(c.Context(), form.ToVenue()); err != nil {
		h.logger.WithError(err).WithField("name", form.Name).Error("Failed to create venue")
		h.flash.Add(c, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	h.flash.Add(c, fmt.Sprintf("Venue %s was successfully listed!", form.Name))
	return c.Redirect("/", fiber.StatusSeeOther)
}

// EditForm renders the venue form pre-filled with the stored record.
func (h *VenueHandler) EditForm(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}

	venue, err := h.service.GetVenue(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.ErrNotFound
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to load venue for edit")
		return fiber.ErrInternalServerError
	}

	return render(c, h.flash, "forms/edit_venue", fiber.Map{
		"Venue":        venue,
		"GenreChoices": GenreChoices,
	})
}

// Edit replaces every field of an existing venue, then redirects back to
// its detail page.
func (h *VenueHandler) Edit(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}
	detailPath := fmt.Sprintf("/venues/%d", id)

	var form VenueForm
	if err := c.BodyParser(&form); err != nil {
		h.flash.Add(c, "An error occurred. Venue could not be updated.")
		return c.Redirect(detailPath, fiber.StatusSeeOther)
	}

	if err := validate.Struct(&form); err != nil {
		h.logger.WithError(err).Warn("Invalid venue form")
		h.flash.Add(c, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		return c.Redirect(detailPath, fiber.StatusSeeOther)
	}

	if err := h.service.UpdateVenue(c.Context(), id, form.ToVenue()); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update venue")
		h.flash.Add(c, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		return c.Redirect(detailPath, fiber.StatusSeeOther)
	}

	h.flash.Add(c, fmt.Sprintf("Venue %s was successfully updated!", form.Name))
	return c.Redirect(detailPath, fiber.StatusSeeOther)
}

// Delete removes a venue and its shows, then redirects home.
func (h *VenueHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := h.service.DeleteVenue(c.Context(), id); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete venue")
		h.flash.Add(c, fmt.Sprintf("An error occurred. Venue %d could not be deleted.", id))
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	h.flash.Add(c, fmt.Sprintf("Venue %d was successfully deleted!", id))
	return c.Redirect("/", fiber.StatusSeeOther)
}
