package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campusbooking/internal/api"
	"campusbooking/internal/auth"
	"campusbooking/internal/booking"
	"campusbooking/internal/building"
	"campusbooking/internal/cupboard"
	"campusbooking/internal/facility"
	"campusbooking/internal/maintenance"
	"campusbooking/internal/resource"
	"campusbooking/internal/resourcetype"
	"campusbooking/internal/shelf"
	"campusbooking/internal/user"
	"campusbooking/pkg/config"
)

type Dependencies struct {
	Cfg config.Config
	DB  *pgxpool.Pool
}

func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	usersRepo := user.NewRepository(deps.DB)
	authHandlers := auth.Handlers{
		Cfg:   deps.Cfg,
		Users: usersRepo,
	}
	buildingHandlers := building.Handlers{Buildings: building.NewRepository(deps.DB)}
	typeHandlers := resourcetype.Handlers{Types: resourcetype.NewRepository(deps.DB)}
	resourceHandlers := resource.Handlers{Resources: resource.NewRepository(deps.DB)}
	facilityHandlers := facility.Handlers{Facilities: facility.NewRepository(deps.DB)}
	cupboardHandlers := cupboard.Handlers{Cupboards: cupboard.NewRepository(deps.DB)}
	shelfHandlers := shelf.Handlers{Shelves: shelf.NewRepository(deps.DB)}
	bookingHandlers := booking.Handlers{
		DB:       deps.DB,
		Bookings: booking.NewRepository(deps.DB),
	}
	maintenanceHandlers := maintenance.Handlers{Records: maintenance.NewRepository(deps.DB)}

	r.Route("/v1", func(r chi.Router) {
		r.Use(api.CORSMiddleware(api.CORSOptions{
			AllowedOrigins: deps.Cfg.AllowedOrigins,
		}))

		// Public: account creation and login.
		r.Post("/auth/signup", authHandlers.Signup)
		r.Post("/auth/login", authHandlers.Login)

		// Everything else requires a bearer token.
		r.Group(func(r chi.Router) {
			r.Use(api.BearerAuth(deps.Cfg, usersRepo))

			r.Get("/me", authHandlers.Me)

			r.Get("/buildings", buildingHandlers.List)
			r.Get("/resource-types", typeHandlers.List)
			r.Get("/resources", resourceHandlers.List)
			r.Get("/resources/by-location", resourceHandlers.ByLocation)
			r.Get("/resources/{id}", resourceHandlers.Get)
			r.Get("/facilities", facilityHandlers.List)
			r.Get("/facilities/{id}", facilityHandlers.Get)
			r.Get("/cupboards", cupboardHandlers.List)
			r.Get("/cupboards/{id}", cupboardHandlers.Get)
			r.Get("/shelves", shelfHandlers.List)
			r.Get("/shelves/{id}", shelfHandlers.Get)

			// Booking workflow. The per-operation authorization gate lives
			// inside the handlers, not in middleware, because cancel depends
			// on booking ownership.
			r.Get("/bookings", bookingHandlers.List)
			r.Post("/bookings", bookingHandlers.Create)
			r.Get("/bookings/{id}", bookingHandlers.Get)
			r.Patch("/bookings/{id}/status", bookingHandlers.PatchStatus)

			// Facility administration.
			r.Group(func(r chi.Router) {
				r.Use(api.RequireRole(user.RoleAdmin))

				r.Post("/buildings", buildingHandlers.Create)
				r.Put("/buildings/{id}", buildingHandlers.Update)
				r.Delete("/buildings/{id}", buildingHandlers.Delete)

				r.Post("/resource-types", typeHandlers.Create)
				r.Put("/resource-types/{id}", typeHandlers.Update)
				r.Delete("/resource-types/{id}", typeHandlers.Delete)

				r.Post("/resources", resourceHandlers.Create)
				r.Put("/resources/{id}", resourceHandlers.Update)
				r.Delete("/resources/{id}", resourceHandlers.Delete)

				r.Post("/facilities", facilityHandlers.Create)
				r.Put("/facilities/{id}", facilityHandlers.Update)
				r.Delete("/facilities/{id}", facilityHandlers.Delete)

				r.Post("/cupboards", cupboardHandlers.Create)
				r.Put("/cupboards/{id}", cupboardHandlers.Update)
				r.Delete("/cupboards/{id}", cupboardHandlers.Delete)

				r.Post("/shelves", shelfHandlers.Create)
				r.Put("/shelves/{id}", shelfHandlers.Update)
				r.Delete("/shelves/{id}", shelfHandlers.Delete)

				r.Get("/users", authHandlers.ListUsers)
				r.Get("/users/{id}", authHandlers.GetUser)
				r.Put("/users/{id}", authHandlers.UpdateUser)
				r.Delete("/users/{id}", authHandlers.DeleteUser)

				r.Get("/maintenance", maintenanceHandlers.List)
				r.Post("/maintenance", maintenanceHandlers.Create)
				r.Put("/maintenance/{id}", maintenanceHandlers.Update)
				r.Delete("/maintenance/{id}", maintenanceHandlers.Delete)
			})
		})
	})

	return r
}
