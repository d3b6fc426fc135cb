package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/ayasuda/vehicle-catalog/internal/api/handlers"
	"github.com/ayasuda/vehicle-catalog/internal/config"
	"github.com/ayasuda/vehicle-catalog/internal/metrics"
	"github.com/ayasuda/vehicle-catalog/internal/middleware"
	"github.com/ayasuda/vehicle-catalog/internal/models"
	"github.com/ayasuda/vehicle-catalog/internal/services"
)

type RouterDeps struct {
	Cfg        config.Config
	AuthMW     *middleware.AuthMiddleware
	UserSvc    *services.UserService
	SegmentSvc *services.SegmentService
	BrandSvc   *services.BrandService
	VehicleSvc *services.VehicleService
}

func NewRouter(d RouterDeps) http.Handler {
	authH := handlers.NewAuthHandler(d.UserSvc)
	profileH := handlers.NewProfileHandler(d.UserSvc)
	segmentH := handlers.NewSegmentHandler(d.SegmentSvc)
	brandH := handlers.NewBrandHandler(d.BrandSvc)
	vehicleH := handlers.NewVehicleHandler(d.VehicleSvc)
	userAdminH := handlers.NewUserAdminHandler(d.UserSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		// no token required for registration and login
		r.Post("/create", authH.Register)
		r.Post("/auth", authH.Token)

		r.Group(func(r chi.Router) {
			r.Use(d.AuthMW.Auth)

			r.Get("/profile", profileH.Get)
			r.Put("/profile", profileH.NotAllowed("PUT"))
			r.Patch("/profile", profileH.NotAllowed("PATCH"))

			r.Route("/segments", func(r chi.Router) {
				r.Get("/", segmentH.List)
				r.Post("/", segmentH.Create)
				r.Get("/{id}", segmentH.Get)
				r.Put("/{id}", segmentH.Replace)
				r.Patch("/{id}", segmentH.PartialUpdate)
				r.Delete("/{id}", segmentH.Delete)
			})

			r.Route("/brands", func(r chi.Router) {
				r.Get("/", brandH.List)
				r.Post("/", brandH.Create)
				r.Get("/{id}", brandH.Get)
				r.Put("/{id}", brandH.Replace)
				r.Patch("/{id}", brandH.PartialUpdate)
				r.Delete("/{id}", brandH.Delete)
			})

			r.Route("/vehicles", func(r chi.Router) {
				r.Get("/", vehicleH.List)
				r.Post("/", vehicleH.Create)
				r.Get("/{id}", vehicleH.Get)
				r.Put("/{id}", vehicleH.Replace)
				r.Patch("/{id}", vehicleH.PartialUpdate)
				r.Delete("/{id}", vehicleH.Delete)
			})

			r.With(middleware.RequireRole(models.RoleAdmin)).
				Delete("/users/{id}", userAdminH.Delete)
		})
	})

	return r
}
