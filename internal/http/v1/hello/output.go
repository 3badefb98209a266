package hello

// GetOutput is the response wrapper for GET /hello.
type GetOutput struct {
	Body Greeting
}
