// Package service ties the Sankhya web service together: it holds the gin
// router and the dependencies handlers need (language registry, result
// cache, metrics, logger, config) and exposes route registration.
//
// Handlers receive the Service alongside the gin context, so everything they
// depend on is injected rather than reached through globals:
//
//	s := service.NewService(router).
//		WithLogger(logger).
//		WithRegistry(vocab.NewRegistry()).
//		WithCache(resultCache)
//	s.RegisterRoute(http.MethodPost, "/convert", convsvc.HandleConvertRequest)
//
// Cache and Metrics are optional; handlers must tolerate them being nil.
package service

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/remiges-tech/logharbour/logharbour"

	"github.com/remiges-tech/sankhya/cache"
	"github.com/remiges-tech/sankhya/config"
	"github.com/remiges-tech/sankhya/metrics"
	"github.com/remiges-tech/sankhya/vocab"
)

// Dependencies holds arbitrary extra dependencies by name. Assert the type
// before use.
type Dependencies map[string]any

// Service is the core struct for the web service.
type Service struct {
	Config       config.Config
	Router       *gin.Engine
	Logger       *logharbour.Logger
	Registry     *vocab.Registry
	Cache        cache.ResultCache
	Metrics      *metrics.ConversionMetrics
	Dependencies Dependencies
}

// NewService constructs a Service over the given router.
func NewService(r *gin.Engine) *Service {
	return &Service{Router: r}
}

// WithConfig injects the configuration source.
func (s *Service) WithConfig(c config.Config) *Service {
	s.Config = c
	return s
}

// WithLogger injects the LogHarbour logger.
func (s *Service) WithLogger(l *logharbour.Logger) *Service {
	s.Logger = l
	return s
}

// WithRegistry injects the language registry.
func (s *Service) WithRegistry(r *vocab.Registry) *Service {
	s.Registry = r
	return s
}

// WithCache injects the conversion result cache.
func (s *Service) WithCache(c cache.ResultCache) *Service {
	s.Cache = c
	return s
}

// WithMetrics injects the Prometheus instruments.
func (s *Service) WithMetrics(m *metrics.ConversionMetrics) *Service {
	s.Metrics = m
	return s
}

// WithDependency injects an arbitrary named dependency.
func (s *Service) WithDependency(key string, value any) *Service {
	if s.Dependencies == nil {
		s.Dependencies = make(Dependencies)
	}
	s.Dependencies[key] = value
	return s
}

// HandlerFunc is a request handler that receives the Service alongside the
// gin context.
type HandlerFunc func(*gin.Context, *Service)

// RegisterRoute registers a single route on the service's router.
func (s *Service) RegisterRoute(method, path string, handler HandlerFunc) {
	wrapped := func(c *gin.Context) {
		handler(c, s)
	}
	switch method {
	case http.MethodGet:
		s.Router.GET(path, wrapped)
	case http.MethodPost:
		s.Router.POST(path, wrapped)
	case http.MethodPut:
		s.Router.PUT(path, wrapped)
	case http.MethodDelete:
		s.Router.DELETE(path, wrapped)
	default:
		log.Printf("Unsupported method: %s", method)
	}
}

// RouteGroup represents a group of routes sharing a path prefix.
type RouteGroup struct {
	service *Service
	Group   *gin.RouterGroup
}

// CreateGroup creates a new route group with the given path prefix.
func (s *Service) CreateGroup(path string) *RouteGroup {
	return &RouteGroup{service: s, Group: s.Router.Group(path)}
}

// RegisterRoute registers a single route in the group.
func (g *RouteGroup) RegisterRoute(method, path string, handler HandlerFunc) {
	wrapped := func(c *gin.Context) {
		handler(c, g.service)
	}
	switch method {
	case http.MethodGet:
		g.Group.GET(path, wrapped)
	case http.MethodPost:
		g.Group.POST(path, wrapped)
	case http.MethodPut:
		g.Group.PUT(path, wrapped)
	case http.MethodDelete:
		g.Group.DELETE(path, wrapped)
	default:
		log.Printf("Unsupported method: %s", method)
	}
}
