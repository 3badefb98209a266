package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const sampleTraceparent = "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01"

func TestParseTraceparent(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		ok      bool
		sampled bool
	}{
		{"sampled", sampleTraceparent, true, true},
		{"not sampled", "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-00", true, false},
		{"extra flag bits", "00-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-0b", true, true},
		{"empty", "", false, false},
		{"garbage", "invalid", false, false},
		{"legacy cloud trace format", "105445aa7843bc8bf206b120001000/1;o=1", false, false},
		{"forbidden version", "ff-3d23d071b5bfd6579171efce907685cb-08f067aa0ba902b7-01", false, false},
		{"zero trace id", "00-00000000000000000000000000000000-08f067aa0ba902b7-01", false, false},
		{"zero span id", "00-3d23d071b5bfd6579171efce907685cb-0000000000000000-01", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, ok := parseTraceparent(tt.header)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && tc.sampled != tt.sampled {
				t.Fatalf("sampled = %v, want %v", tc.sampled, tt.sampled)
			}
		})
	}
}

func TestTraceFields(t *testing.T) {
	fields := traceFields(sampleTraceparent, "test-project")
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[0].Key != "logging.googleapis.com/trace" ||
		fields[0].String != "projects/test-project/traces/3d23d071b5bfd6579171efce907685cb" {
		t.Fatalf("unexpected trace field: %+v", fields[0])
	}
	if fields[1].Key != "logging.googleapis.com/spanId" || fields[1].String != "08f067aa0ba902b7" {
		t.Fatalf("unexpected span field: %+v", fields[1])
	}
	if fields[2].Type != zapcore.BoolType || fields[2].Integer != 1 {
		t.Fatalf("unexpected sampled field: %+v", fields[2])
	}

	if fields := traceFields(sampleTraceparent, ""); fields != nil {
		t.Fatalf("expected nil fields without project, got %v", fields)
	}
	if fields := traceFields("invalid", "test-project"); fields != nil {
		t.Fatalf("expected nil fields for invalid header, got %v", fields)
	}
}

func TestTraceResource(t *testing.T) {
	if got := traceResource(sampleTraceparent, "p"); got != "projects/p/traces/3d23d071b5bfd6579171efce907685cb" {
		t.Fatalf("unexpected resource %q", got)
	}
	if got := traceResource(sampleTraceparent, ""); got != "" {
		t.Fatalf("expected empty resource without project, got %q", got)
	}
}

func TestLoggerWithTrace(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	loggerWithTrace(base, sampleTraceparent, "test-project", "req-123").Info("hello")
	loggerWithTrace(base, "", "", "").Info("bare")

	entries := recorded.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["requestId"] != "req-123" {
		t.Fatalf("missing requestId: %v", fields)
	}
	if fields["logging.googleapis.com/spanId"] != "08f067aa0ba902b7" {
		t.Fatalf("missing span field: %v", fields)
	}
	if len(entries[1].Context) != 0 {
		t.Fatalf("expected no context fields, got %v", entries[1].Context)
	}

	if loggerWithTrace(nil, "", "", "req") == nil {
		t.Fatal("expected non-nil logger for nil base")
	}
}
