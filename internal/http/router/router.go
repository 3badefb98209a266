// Package router assembles the HTTP handler: chi routing, the middleware
// stack and the huma API with every operation registered.
package router

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/janisto/hello-cicd/internal/http/health"
	"github.com/janisto/hello-cicd/internal/http/v1/routes"
	"github.com/janisto/hello-cicd/internal/platform/config"
	applog "github.com/janisto/hello-cicd/internal/platform/logging"
	appmiddleware "github.com/janisto/hello-cicd/internal/platform/middleware"
	"github.com/janisto/hello-cicd/internal/platform/respond"
)

const (
	apiTitle = "Hello CI/CD API"

	// maxRequestBody caps request bodies; no route reads one.
	maxRequestBody = 1 << 20
)

// New returns the root router and the huma API mounted on it.
func New(cfg config.Config, version string) (chi.Router, huma.API) {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	router.Use(
		appmiddleware.Security(cfg.DocsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP trusts X-Forwarded-For / X-Real-IP; only safe behind a proxy such as Cloud Run.
		chimiddleware.RealIP,
		chimiddleware.RequestSize(maxRequestBody),
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler(version))

	api := humachi.New(router, apiConfig(cfg, version))
	routes.Register(api)
	return router, api
}

func apiConfig(cfg config.Config, version string) huma.Config {
	hc := huma.DefaultConfig(apiTitle, version)
	hc.DocsPath = cfg.DocsPath
	hc.Info.Description = "Static greeting endpoints used as a CI/CD smoke-test target."
	// The default create hook injects a $schema field and a schema Link
	// header into every body. Payloads here must be exactly the documented object.
	hc.CreateHooks = nil
	hc.OnAddOperation = append(hc.OnAddOperation, addCBORContent)
	return hc
}

// addCBORContent advertises application/cbor wherever application/json is
// documented; the CBOR format is registered by the formats/cbor import.
func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}
