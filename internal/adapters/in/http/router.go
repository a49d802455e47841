package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"courierdispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

// BaseURL prefixes every API route.
const BaseURL = "/api/v1"

// RouterConfig carries what the router needs besides the API handlers.
type RouterConfig struct {
	LogLevel string
	// Registry receives the HTTP request metrics and is served on /metrics.
	Registry *prometheus.Registry
	// Health reports whether dependencies (the database) are reachable.
	Health func(ctx context.Context) error
}

// NewRouter assembles the echo instance: the API under BaseURL plus /health,
// /metrics and the Swagger UI.
func NewRouter(server servers.ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	if err := registerSwaggerDoc(); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(gommonLevel(cfg.LogLevel))
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = errorHandler

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	e.Use(middleware.Recover())
	e.Use(newRequestMetrics(registry).middleware)

	e.GET("/health", healthHandler(cfg.Health))
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	servers.RegisterHandlersWithBaseURL(e, server, BaseURL)
	return e, nil
}

func healthHandler(check func(ctx context.Context) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if check != nil {
			if err := check(ctx.Request().Context()); err != nil {
				return ctx.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
			}
		}
		return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

func gommonLevel(level string) log.Lvl {
	switch strings.ToLower(level) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	default:
		return log.INFO
	}
}

type swaggerDoc struct {
	doc string
}

// ReadDoc implements swag.Swagger.
func (s swaggerDoc) ReadDoc() string {
	return s.doc
}

var (
	swaggerOnce sync.Once
	swaggerErr  error
)

// registerSwaggerDoc publishes the OpenAPI document in the swag registry, where
// echo-swagger reads doc.json from. swag panics on a second registration.
func registerSwaggerDoc() error {
	swaggerOnce.Do(func() {
		doc, err := servers.GetSwagger()
		if err != nil {
			swaggerErr = err
			return
		}
		raw, err := json.Marshal(doc)
		if err != nil {
			swaggerErr = err
			return
		}
		swag.Register(swag.Name, swaggerDoc{doc: string(raw)})
	})
	return swaggerErr
}
