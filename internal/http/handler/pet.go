package handler

import (
	"github.com/gofiber/fiber/v2"

	"petclinic/internal/service"
)

// ListPetTypes returns the known pet types.
//
// @Summary Pet types
// @Tags pets
// @Produce json
// @Success 200 {array} model.PetType
// @Router /pettypes [get]
func ListPetTypes(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		types, err := svc.Types(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(types)
	}
}

// CreatePet adds a pet to an owner.
//
// @Summary Add pet
// @Tags pets
// @Accept json
// @Produce json
// @Param ownerId path int true "Owner ID"
// @Param pet body service.PetInput true "Pet"
// @Success 201 {object} model.Pet
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /owners/{ownerId}/pets [post]
func CreatePet(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, ok := pathID(c, "ownerId")
		if !ok {
			return invalidID(c)
		}
		var in service.PetInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		pet, err := svc.Create(c.UserContext(), ownerID, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(pet)
	}
}

// GetPet returns a pet of the owner.
//
// @Summary Pet details
// @Tags pets
// @Produce json
// @Param ownerId path int true "Owner ID"
// @Param petId path int true "Pet ID"
// @Success 200 {object} model.Pet
// @Failure 404 {object} errorPayload
// @Router /owners/{ownerId}/pets/{petId} [get]
func GetPet(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, ok := pathID(c, "ownerId")
		if !ok {
			return invalidID(c)
		}
		petID, ok := pathID(c, "petId")
		if !ok {
			return invalidID(c)
		}
		pet, err := svc.Get(c.UserContext(), ownerID, petID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(pet)
	}
}

// UpdatePet changes a pet of the owner.
//
// @Summary Update pet
// @Tags pets
// @Accept json
// @Produce json
// @Param ownerId path int true "Owner ID"
// @Param petId path int true "Pet ID"
// @Param pet body service.PetInput true "Pet"
// @Success 200 {object} model.Pet
// @Failure 404 {object} errorPayload
// @Failure 409 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Router /owners/{ownerId}/pets/{petId} [put]
func UpdatePet(svc service.PetService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, ok := pathID(c, "ownerId")
		if !ok {
			return invalidID(c)
		}
		petID, ok := pathID(c, "petId")
		if !ok {
			return invalidID(c)
		}
		var in service.PetInput
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
		pet, err := svc.Update(c.UserContext(), ownerID, petID, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(pet)
	}
}
