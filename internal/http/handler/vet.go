package handler

import (
	"github.com/gofiber/fiber/v2"

	"petclinic/internal/service"
)

// ListVets returns all vets with their specialties.
//
// @Summary Veterinarians
// @Tags vets
// @Produce json
// @Success 200 {array} model.Vet
// @Router /vets [get]
func ListVets(svc service.VetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vets, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(vets)
	}
}
