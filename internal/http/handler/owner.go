package handler

import (
	"github.com/gofiber/fiber/v2"

	"petclinic/internal/service"
)

// FindOwners lists owners whose last name starts with the lastName query parameter.
//
// @Summary Find owners by last name prefix
// @Tags owners
// @Produce json
// @Param lastName query string false "Last name prefix; empty lists all owners"
// @Success 200 {array} model.Owner
// @Router /owners [get]
func FindOwners(svc service.OwnerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		owners, err := svc.Find(c.UserContext(), c.Query("lastName"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(owners)
	}
}

// CreateOwner registers a new owner.
//
// @Summary Create owner
// @Tags owners
// @Accept json
// @Produce json
// @Param owner body service.OwnerInput true "Owner"
// @Success 201 {object} model.Owner
// @Failure 422 {object} errorPayload
// @Router /owners [post]
func CreateOwner(svc service.OwnerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.OwnerInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		owner, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(owner)
	}
}

// GetOwner returns an owner with pets and visits.
//
// @Summary Owner details
// @Tags owners
// @Produce json
// @Param ownerId path int true "Owner ID"
// @Success 200 {object} model.Owner
// @Failure 404 {object} errorPayload
// @Router /owners/{ownerId} [get]
func GetOwner(svc service.OwnerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "ownerId")
		if !ok {
			return invalidID(c)
		}
		owner, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(owner)
	}
}

// UpdateOwner changes an owner's details.
//
// @Summary Update owner
// @Tags owners
// @Accept json
// @Produce json
// @Param ownerId path int true "Owner ID"
// @Param owner body service.OwnerInput true "Owner"
// @Success 200 {object} model.Owner
// @Failure 404 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /owners/{ownerId} [put]
func UpdateOwner(svc service.OwnerService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := pathID(c, "ownerId")
		if !ok {
			return invalidID(c)
		}
		var in service.OwnerInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		owner, err := svc.Update(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(owner)
	}
}
