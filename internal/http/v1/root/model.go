package root

// Message is the fixed payload returned by GET /.
const Message = "Hello CI/CD"

// Banner models the response payload for the root endpoint.
type Banner struct {
	Message string `json:"message" doc:"Service banner" example:"Hello CI/CD"`
}
