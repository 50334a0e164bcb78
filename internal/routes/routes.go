package routes

import (
	"stagebook/internal/handlers"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App, home *handlers.HomeHandler, venues *handlers.VenueHandler, artists *handlers.ArtistHandler, shows *handlers.ShowHandler, uploads *handlers.UploadHandler) {
	app.Get("/", home.Index)

	// Venue routes. Fixed paths are registered before the :id routes so
	// /venues/create never resolves as an id.
	venueGroup := app.Group("/venues")
	{
		venueGroup.Get("/", venues.List)
		venueGroup.Post("/search", venues.Search)
		venueGroup.Get("/create", venues.CreateForm)
		venueGroup.Post("/create", venues.Create)
		venueGroup.Get("/:id", venues.Show)
		venueGroup.Get("/:id/edit", venues.EditForm)
		venueGroup.Post("/:id/edit", venues.Edit)
		venueGroup.Post("/:id/delete", venues.Delete)
	}

	// Artist routes mirror the venue routes.
	artistGroup := app.Group("/artists")
	{
		artistGroup.Get("/", artists.List)
		artistGroup.Post("/search", artists.Search)
		artistGroup.Get("/create", artists.CreateForm)
		artistGroup.Post("/create", artists.Create)
		artistGroup.Get("/:id", artists.Show)
		artistGroup.Get("/:id/edit", artists.EditForm)
		artistGroup.Post("/:id/edit", artists.Edit)
		artistGroup.Post("/:id/delete", artists.Delete)
	}

	// Show routes - created only, never edited or deleted.
	showGroup := app.Group("/shows")
	{
		showGroup.Get("/", shows.List)
		showGroup.Get("/create", shows.CreateForm)
		showGroup.Post("/create", shows.Create)
	}

	uploadGroup := app.Group("/uploads")
	{
		uploadGroup.Get("/presign", uploads.GetPresignedURL)
	}
}
