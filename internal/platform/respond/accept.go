package respond

import "github.com/danielgtaylor/huma/v2/negotiation"

// problemFormats mirrors the format keys huma negotiates success bodies
// against, so an error follows the same Accept rules as the operation would.
// JSON is first so it wins ties; wildcards match nothing and fall back to JSON.
var problemFormats = []string{
	"application/json",
	"application/problem+json",
	"application/cbor",
	"application/problem+cbor",
}

// prefersCBOR reports whether negotiation selects CBOR for a problem body.
func prefersCBOR(accept string) bool {
	switch negotiation.SelectQValueFast(accept, problemFormats) {
	case "application/cbor", "application/problem+cbor":
		return true
	default:
		return false
	}
}
