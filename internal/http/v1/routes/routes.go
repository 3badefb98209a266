package routes

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/janisto/hello-cicd/internal/http/v1/hello"
	"github.com/janisto/hello-cicd/internal/http/v1/root"
)

// Register wires all API operations into the provided API router.
func Register(api huma.API) {
	root.Register(api)
	hello.Register(api)
}
