package respond

import "testing"

func TestPrefersCBOR(t *testing.T) {
	tests := []struct {
		accept string
		want   bool
	}{
		{"", false},
		{"*/*", false},
		{"application/*", false},
		{"application/json", false},
		{"application/problem+json", false},
		{"text/plain", false},
		{"cbor", false},
		{"application/cbor", true},
		{"application/problem+cbor", true},
		{"application/cbor, application/json", false},
		{"application/cbor, */*", true},
		{"application/cbor, application/json;q=0.5", true},
		{"application/json;q=0.9, application/cbor", true},
		{"application/cbor;q=0.5, */*", true},
		{"text/html, application/cbor;q=0.8", true},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			if got := prefersCBOR(tt.accept); got != tt.want {
				t.Fatalf("prefersCBOR(%q) = %v, want %v", tt.accept, got, tt.want)
			}
		})
	}
}
