package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"wedshare/internal/presentation"
	"wedshare/internal/presentation/handler"
	"wedshare/internal/presentation/middleware"
)

// ContentSecurityPolicy lets the bundled SPA load its fonts and remote images.
const ContentSecurityPolicy = "default-src 'self'; script-src 'self' 'unsafe-inline' 'unsafe-eval'; " +
	"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; " +
	"font-src 'self' data: https://fonts.gstatic.com; img-src 'self' data: https:; connect-src 'self' https:;"

type Config struct {
	// StaticDir holds the prebuilt SPA. Empty disables static serving.
	StaticDir    string   `yaml:"static_dir"`
	AllowOrigins []string `yaml:"allow_origins"`
	// RateLimit is requests per second per client; zero disables limiting.
	RateLimit float64 `yaml:"rate_limit"`
	// JSONBodyLimit caps POST /api/photos bodies, e.g. "100M".
	JSONBodyLimit string `yaml:"json_body_limit"`
}

type Handlers struct {
	List        *handler.ListHandler
	Get         *handler.GetHandler
	Create      *handler.CreateHandler
	Upload      *handler.UploadHandler
	UploadMedia *handler.UploadHandler
	Download    *handler.DownloadHandler
	Health      *handler.HealthHandler
}

func New(cfg Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = presentation.NewValidator()

	origins := cfg.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: origins,
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		MaxAge:       86400,
	}))
	e.Use(echoMiddleware.LoggerWithConfig(echoMiddleware.LoggerConfig{Output: os.Stderr}))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.SecureWithConfig(echoMiddleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		ContentSecurityPolicy: ContentSecurityPolicy,
	}))
	e.Use(middleware.Metrics())

	if cfg.RateLimit > 0 {
		e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.RateLimit))))
	}

	if cfg.StaticDir != "" {
		e.Use(echoMiddleware.StaticWithConfig(echoMiddleware.StaticConfig{
			Root:    cfg.StaticDir,
			Index:   "index.html",
			HTML5:   true,
			Skipper: skipServerRoutes,
		}))
	}

	bodyLimit := cfg.JSONBodyLimit
	if bodyLimit == "" {
		bodyLimit = "100M"
	}

	e.GET("/health", h.Health.HandleHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	api.GET("/photos", h.List.HandleList)
	api.POST("/photos", h.Create.HandleCreate, echoMiddleware.BodyLimit(bodyLimit))
	api.POST("/photos/upload", h.Upload.HandleUpload)
	api.POST("/photos/upload/media", h.UploadMedia.HandleUpload)
	api.GET("/photos/:"+presentation.IDParam, h.Get.HandleGet)
	api.GET("/photos/:"+presentation.IDParam+"/download", h.Download.HandleDownload)
	api.Any("/*", handler.HandleAPINotFound)

	return e
}

func skipServerRoutes(c echo.Context) bool {
	p := c.Request().URL.Path

	return p == "/api" || strings.HasPrefix(p, "/api/") || p == "/health" || p == "/metrics"
}
