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

type ArtistHandler struct {
	service services.ArtistService
	flash   *utils.FlashStore
	logger  *logrus.Logger
}

func NewArtistHandler(service services.ArtistService, flash *utils.FlashStore, logger *logrus.Logger) *ArtistHandler {
	return &ArtistHandler{
		service: service,
		flash:   flash,
		logger:  logger,
	}
}

// List renders every artist ordered by id.
func (h *ArtistHandler) List(c *fiber.Ctx) error {
	artists, err := h.service.ListAll(c.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list artists")
		return fiber.ErrInternalServerError
	}

	return render(c, h.flash, "pages/artists", fiber.Map{
		"Artists": artists,
	})
}

// Search renders artists whose name contains the submitted term.
func (h *ArtistHandler) Search(c *fiber.Ctx) error {
	var form SearchForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	artists, count, err := h.service.Search(c.Context(), form.SearchTerm)
	if err != nil {
		h.logger.WithError(err).WithField("term", form.SearchTerm).Error("Artist search failed")
		return fiber.ErrInternalServerError
	}

	return render(c, h.flash, "pages/search_artists", fiber.Map{
		"Count":      count,
		"Artists":    artists,
		"SearchTerm": form.SearchTerm,
	})
}

// Show renders the artist page with its past and upcoming shows.
func (h *ArtistHandler) Show(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}

	detail, err := h.service.GetArtistDetail(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.ErrNotFound
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to load artist")
		return fiber.ErrInternalServerError
	}

	return render(c, h.flash, "pages/show_artist", fiber.Map{
		"Artist": detail,
	})
}

// CreateForm renders the empty artist form.
func (h *ArtistHandler) CreateForm(c *fiber.Ctx) error {
	return render(c, h.flash, "forms/new_artist", fiber.Map{
		"GenreChoices": GenreChoices,
	})
}

// Create lists a new artist. Success and failure both flash a notice and
// redirect home.
func (h *ArtistHandler) Create(c *fiber.Ctx) error {
	var form ArtistForm
	if err := c.BodyParser(&form); err != nil {
		h.flash.Add(c, "An error occurred. Artist could not be listed.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if err := validate.Struct(&form); err != nil {
		h.logger.WithError(err).Warn("Invalid artist form")
		h.flash.Add(c, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	if err := h.service.CreateArtist(c.Context(), form.ToArtist()); err != nil {
		h.logger.WithError(err).WithField("name", form.Name).Error("Failed to create artist")
		h.flash.Add(c, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	h.flash.Add(c, fmt.Sprintf("Artist %s was successfully listed!", form.Name))
	return c.Redirect("/", fiber.StatusSeeOther)
}

// EditForm renders the artist form pre-filled with the stored record.
func (h *ArtistHandler) EditForm(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}

	artist, err := h.service.GetArtist(c.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.ErrNotFound
		}
		h.logger.WithError(err).WithField("id", id).Error("Failed to load artist for edit")
		return fiber.ErrInternalServerError
	}

	return render(c, h.flash, "forms/edit_artist", fiber.Map{
		"Artist":       artist,
		"GenreChoices": GenreChoices,
	})
}

// Edit replaces every field of an existing artist, then redirects back to
// its detail page.
func (h *ArtistHandler) Edit(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}
	detailPath := fmt.Sprintf("/artists/%d", id)

	var form ArtistForm
	if err := c.BodyParser(&form); err != nil {
		h.flash.Add(c, "An error occurred. Artist could not be updated.")
		return c.Redirect(detailPath, fiber.StatusSeeOther)
	}

	if err := validate.Struct(&form); err != nil {
		h.logger.WithError(err).Warn("Invalid artist form")
		h.flash.Add(c, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		return c.Redirect(detailPath, fiber.StatusSeeOther)
	}

	if err := h.service.UpdateArtist(c.Context(), id, form.ToArtist()); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to update artist")
		h.flash.Add(c, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		return c.Redirect(detailPath, fiber.StatusSeeOther)
	}

	h.flash.Add(c, fmt.Sprintf("Artist %s was successfully updated!", form.Name))
	return c.Redirect(detailPath, fiber.StatusSeeOther)
}

// Delete removes an artist and its shows, then redirects home.
func (h *ArtistHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fiber.ErrNotFound
	}

	if err := h.service.DeleteArtist(c.Context(), id); err != nil {
		h.logger.WithError(err).WithField("id", id).Error("Failed to delete artist")
		h.flash.Add(c, fmt.Sprintf("An error occurred. Artist %d could not be deleted.", id))
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	h.flash.Add(c, fmt.Sprintf("Artist %d was successfully deleted!", id))
	return c.Redirect("/", fiber.StatusSeeOther)
}
