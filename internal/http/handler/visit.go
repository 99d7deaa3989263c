package handler

import (
	"github.com/gofiber/fiber/v2"

	"petclinic/internal/service"
)

// ListVisits returns the visits of a pet.
//
// @Summary Pet visits
// @Tags visits
// @Produce json
// @Param ownerId path int true "Owner ID"
// @Param petId path int true "Pet ID"
// @Success 200 {array} model.Visit
// @Failure 404 {object} errorPayload
// @Router /owners/{ownerId}/pets/{petId}/visits [get]
func ListVisits(svc service.VisitService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, ok := pathID(c, "ownerId")
		if !ok {
			return invalidID(c)
		}
		petID, ok := pathID(c, "petId")
		if !ok {
			return invalidID(c)
		}
		visits, err := svc.List(c.UserContext(), ownerID, petID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(visits)
	}
}

// AddVisit records a visit for a pet.
//
// @Summary Add visit
// @Tags visits
// @Accept json
// @Produce json
// @Param ownerId path int true "Owner ID"
// @Param petId path int true "Pet ID"
// @Param visit body service.VisitInput true "Visit"
// @Success 201 {object} model.Visit
// @Failure 404 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /owners/{ownerId}/pets/{petId}/visits [post]
func AddVisit(svc service.VisitService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, ok := pathID(c, "ownerId")
		if !ok {
			return invalidID(c)
		}
		petID, ok := pathID(c, "petId")
		if !ok {
			return invalidID(c)
		}
		var in service.VisitInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		visit, err := svc.Add(c.UserContext(), ownerID, petID, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(visit)
	}
}
