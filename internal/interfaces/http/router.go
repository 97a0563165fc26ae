package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/ekraf-client/internal/application/dto"
	"github.com/jhoicas/ekraf-client/internal/infrastructure/devstore"
	"github.com/jhoicas/ekraf-client/pkg/config"
	"github.com/jhoicas/ekraf-client/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName  string
	Store    *devstore.Store
	JWT      config.JWTConfig
	Log      *logger.Logger
	Registry *prometheus.Registry // nil = registro propio
}

// NewApp construye la app Fiber completa: recover, métricas, /health, /metrics y rutas.
func NewApp(deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Registry == nil {
		deps.Registry = prometheus.NewRegistry()
	}
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(dto.ErrorResponse{Message: err.Error()})
		},
	})
	app.Use(recover.New())
	app.Use(requestMetrics(deps.Registry))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))

	Router(app, deps)
	return app
}

// Router registra las rutas del contrato del API Ekraf.
func Router(app *fiber.App, deps RouterDeps) {
	auth := AuthMiddleware(deps.JWT.Secret)
	staff := RequireStaff()

	// Auth (público)
	authHandler := NewAuthHandler(deps.Store, deps.JWT, deps.Log.Named("auth"))
	authGroup := app.Group("/auth")
	authGroup.Post("/login/:level", authHandler.Login)
	authGroup.Post("/register/umkm", authHandler.Register)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Post("/verify-email", authHandler.VerifyEmail)

	// Users: /profile antes de /:id
	userHandler := NewUserHandler(deps.Store)
	users := app.Group("/users")
	users.Get("/profile", auth, userHandler.Profile)
	users.Get("/", auth, staff, userHandler.List)
	users.Get("/:id", auth, userHandler.GetByID)
	users.Put("/:id", auth, userHandler.Update)
	users.Delete("/:id", auth, staff, userHandler.Delete)
	users.Get("/:id/products", userHandler.Products)
	users.Get("/:id/articles", userHandler.Articles)

	// Products: lectura pública, escritura autenticada
	productHandler := NewProductHandler(deps.Store)
	products := app.Group("/products")
	products.Get("/", productHandler.List)
	products.Get("/statuses", productHandler.Statuses)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", auth, productHandler.Create)
	products.Put("/:id", auth, productHandler.Update)
	products.Delete("/:id", auth, productHandler.Delete)
	products.Post("/:id/links", auth, productHandler.CreateLink)
	products.Put("/:id/links/:linkId", auth, productHandler.UpdateLink)

	// Articles
	articleHandler := NewArticleHandler(deps.Store)
	articles := app.Group("/articles")
	articles.Get("/", articleHandler.List)
	articles.Get("/:id", articleHandler.GetByID)
	articles.Post("/", auth, staff, articleHandler.Create)
	articles.Put("/:id", auth, staff, articleHandler.Update)
	articles.Delete("/:id", auth, staff, articleHandler.Delete)

	// Taxonomías
	tax := NewTaxonomyHandler(deps.Store)
	master := app.Group("/master-data")
	master.Get("/business-categories", tax.Categories)
	master.Get("/levels", tax.Levels)
	master.Get("/subsectors", tax.Subsectors)

	categories := app.Group("/business-categories")
	categories.Get("/", tax.Categories)
	categories.Get("/:id", tax.Category)
	categories.Post("/", auth, staff, tax.CreateCategory)
	categories.Put("/:id", auth, staff, tax.UpdateCategory)
	categories.Delete("/:id", auth, staff, tax.DeleteCategory)

	subsectors := app.Group("/subsectors")
	subsectors.Get("/", tax.Subsectors)
	subsectors.Get("/:id", tax.Subsector)
	subsectors.Post("/", auth, staff, tax.CreateSubsector)
	subsectors.Put("/:id", auth, staff, tax.UpdateSubsector)
	subsectors.Delete("/:id", auth, staff, tax.DeleteSubsector)

	app.Get("/statistics", auth, staff, tax.Statistics)

	// Host de imágenes
	uploads := NewUploadHandler()
	app.Post("/upload", uploads.Upload)
	app.Get("/uploads/:name", uploads.Serve)
}

// requestMetrics cuenta las peticiones por ruta, método y status.
func requestMetrics(reg prometheus.Registerer) fiber.Handler {
	requests := promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Namespace: "ekraf_devserver",
		Name:      "http_requests_total",
		Help:      "Peticiones atendidas por el servidor de desarrollo.",
	}, []string{"route", "method", "status"})
	return func(c *fiber.Ctx) error {
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		requests.WithLabelValues(c.Route().Path, c.Method(), strconv.Itoa(status)).Inc()
		return err
	}
}
