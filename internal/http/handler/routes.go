package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"

	"petclinic/internal/service"
)

// Services bundles the use cases the HTTP API exposes.
type Services struct {
	Owners service.OwnerService
	Pets   service.PetService
	Visits service.VisitService
	Vets   service.VetService
	Photos service.PhotoService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers only translate between HTTP and the services.
func RegisterRoutes(app *fiber.App, db *sql.DB, metrics prometheus.Gatherer, svc Services) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", Metrics(metrics))

	app.Get("/pettypes", ListPetTypes(svc.Pets))
	app.Get("/vets", ListVets(svc.Vets))

	owners := app.Group("/owners")
	owners.Get("/", FindOwners(svc.Owners))
	owners.Post("/", CreateOwner(svc.Owners))
	owners.Get("/:ownerId", GetOwner(svc.Owners))
	owners.Put("/:ownerId", UpdateOwner(svc.Owners))

	pets := owners.Group("/:ownerId/pets")
	pets.Post("/", CreatePet(svc.Pets))
	pets.Get("/:petId", GetPet(svc.Pets))
	pets.Put("/:petId", UpdatePet(svc.Pets))
	pets.Put("/:petId/photo", UploadPhoto(svc.Photos))
	pets.Get("/:petId/photo", GetPhoto(svc.Photos))
	pets.Delete("/:petId/photo", DeletePhoto(svc.Photos))
	pets.Get("/:petId/visits", ListVisits(svc.Visits))
	pets.Post("/:petId/visits", AddVisit(svc.Visits))
}
