package handlers

import (
	"strconv"

	"stagebook/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// render merges the pending flash messages into the template bind and
// renders the named view.
func render(c *fiber.Ctx, flash *utils.FlashStore, name string, bind fiber.Map) error {
	if bind == nil {
		bind = fiber.Map{}
	}
	bind["Flashes"] = flash.Pop(c)
	return c.Render(name, bind)
}

// parseID reads a positive integer route parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
