package platformerrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

func TestErrorTypeToHTTPStatus(t *testing.T) {
	cases := []struct {
		errorType ErrorType
		want      int
	}{
		{ErrorTypeNotFound, http.StatusNotFound},
		{ErrorTypeValidation, http.StatusBadRequest},
		{ErrorTypeExternal, http.StatusBadGateway},
		{ErrorTypeInternal, http.StatusInternalServerError},
		{ErrorType("UNKNOWN"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := ErrorTypeToHTTPStatus(tc.errorType); got != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.errorType, got, tc.want)
		}
	}
}

func TestNewErrorCarriesRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), "requestID", "req-123")
	err := NewError(ctx, LayerRoute, ErrorTypeValidation, "bad input", nil, "uuid-1")

	if err.GetRequestID() != "req-123" {
		t.Errorf("request id = %q, want req-123", err.GetRequestID())
	}
	if err.GetUUID() != "uuid-1" {
		t.Errorf("uuid = %q", err.GetUUID())
	}
}

func TestIsErrorTypeUnwrapsChain(t *testing.T) {
	base := NewError(context.Background(), LayerInfrastructure, ErrorTypeExternal, "backend down", nil, "uuid-2")
	wrapped := fmt.Errorf("search failed: %w", base)

	if !IsErrorType(wrapped, ErrorTypeExternal) {
		t.Error("wrapped platform error not detected")
	}
	if IsErrorType(wrapped, ErrorTypeNotFound) {
		t.Error("wrong type matched")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeExternal) {
		t.Error("plain error should not match")
	}
	if IsErrorType(nil, ErrorTypeExternal) {
		t.Error("nil error should not match")
	}
}

func TestErrorStringIncludesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewError(context.Background(), LayerInfrastructure, ErrorTypeExternal, "backend unreachable", cause, "uuid-3")

	msg := err.Error()
	for _, part := range []string{"infrastructure", "EXTERNAL", "uuid-3", "backend unreachable", "connection refused"} {
		if !strings.Contains(msg, part) {
			t.Errorf("error string %q missing %q", msg, part)
		}
	}

	if !errors.Is(err, cause) {
		t.Error("cause not reachable via errors.Is")
	}
}
