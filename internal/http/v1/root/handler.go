// Package root serves the service banner at the API root.
package root

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-cicd/internal/platform/logging"
)

// Register wires GET / into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-root",
		Method:      http.MethodGet,
		Path:        "/",
		Summary:     "Service banner",
		Tags:        []string{"Greetings"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "root get", zap.String("path", "/"))
	return &GetOutput{Body: Banner{Message: Message}}, nil
}
