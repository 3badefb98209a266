package hello

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/hello-cicd/internal/platform/logging"
)

// Register wires the hello route into the provided API router.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-hello",
		Method:      http.MethodGet,
		Path:        "/hello",
		Summary:     "Say hello",
		Description: "Returns a fixed greeting. Used by deployment pipelines as a smoke check.",
		Tags:        []string{"Greetings"},
	}, getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "hello get", zap.String("path", "/hello"))
	return &GetOutput{Body: Greeting{Message: Message}}, nil
}
