package handler

import (
	"github.com/gofiber/fiber/v2"

	"petclinic/internal/service"
)

// UploadPhoto stores the pet's photo (multipart/form-data, field name: file).
//
// @Summary Upload pet photo
// @Tags pets
// @Accept multipart/form-data
// @Produce json
// @Param ownerId path int true "Owner ID"
// @Param petId path int true "Pet ID"
// @Param file formData file true "Image"
// @Success 200 {object} map[string]any
// @Failure 404 {object} errorPayload
// @Failure 422 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /owners/{ownerId}/pets/{petId}/photo [put]
func UploadPhoto(svc service.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, ok := pathID(c, "ownerId")
		if !ok {
			return invalidID(c)
		}
		petID, ok := pathID(c, "petId")
		if !ok {
			return invalidID(c)
		}

		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		info, err := svc.Upload(c.UserContext(), ownerID, petID, f, ct, fh.Size)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{
			"key":         info.Key,
			"size":        info.Size,
			"contentType": info.ContentType,
		})
	}
}

// GetPhoto redirects to a short-lived download URL of the pet's photo.
//
// @Summary Pet photo
// @Tags pets
// @Param ownerId path int true "Owner ID"
// @Param petId path int true "Pet ID"
// @Success 307
// @Failure 404 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /owners/{ownerId}/pets/{petId}/photo [get]
func GetPhoto(svc service.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, ok := pathID(c, "ownerId")
		if !ok {
			return invalidID(c)
		}
		petID, ok := pathID(c, "petId")
		if !ok {
			return invalidID(c)
		}
		u, err := svc.URL(c.UserContext(), ownerID, petID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Redirect(u, fiber.StatusTemporaryRedirect)
	}
}

// DeletePhoto removes the pet's photo.
//
// @Summary Delete pet photo
// @Tags pets
// @Produce json
// @Param ownerId path int true "Owner ID"
// @Param petId path int true "Pet ID"
// @Success 204
// @Failure 404 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /owners/{ownerId}/pets/{petId}/photo [delete]
func DeletePhoto(svc service.PhotoService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, ok := pathID(c, "ownerId")
		if !ok {
			return invalidID(c)
		}
		petID, ok := pathID(c, "petId")
		if !ok {
			return invalidID(c)
		}
		if err := svc.Delete(c.UserContext(), ownerID, petID); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
