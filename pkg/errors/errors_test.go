package errors

import (
	stderrors "errors"
	"testing"
)

func TestBotErrorMessageAndCause(t *testing.T) {
	base := NewBotError("lookup failed", CodeBotError, 500, map[string]any{"op": "fetch"})
	if base.Error() != "lookup failed" {
		t.Errorf("Error() = %q", base.Error())
	}

	cause := stderrors.New("connection reset")
	withCause := base.WithCause(cause)
	if withCause.Error() != "lookup failed: connection reset" {
		t.Errorf("Error() with cause = %q", withCause.Error())
	}
	if !stderrors.Is(withCause, cause) {
		t.Error("cause not reachable through Unwrap")
	}
}

func TestTypedErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		got  *BotError
		code string
	}{
		{"not found", NewNotFoundError("card", 42).BotError, CodeNotFound},
		{"upstream", NewUpstreamError("mirror down", "sekai-mirror", 502, nil).BotError, CodeUpstream},
		{"validation", NewValidationError("invalid id", "id", "abc").BotError, CodeValidation},
		{"permission", NewPermissionError("set server language").BotError, CodePermission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.Code != tt.code {
				t.Errorf("Code = %q, want %q", tt.got.Code, tt.code)
			}
		})
	}
}

func TestNotFoundErrorFields(t *testing.T) {
	err := NewNotFoundError("gacha", 300)
	if err.EntityKind != "gacha" || err.ID != 300 {
		t.Errorf("fields = %s/%d", err.EntityKind, err.ID)
	}
	if err.StatusCode != 404 {
		t.Errorf("StatusCode = %d", err.StatusCode)
	}
}

func TestUpstreamErrorWrapsCause(t *testing.T) {
	cause := stderrors.New("timeout")
	err := NewUpstreamError("request failed", "bestdori", 0, cause)
	if !stderrors.Is(err, cause) {
		t.Error("cause not reachable through Unwrap")
	}
	if err.Source != "bestdori" {
		t.Errorf("Source = %q", err.Source)
	}
}

func TestPermissionErrorFields(t *testing.T) {
	err := NewPermissionError("set server language")
	if err.Operation != "set server language" {
		t.Errorf("Operation = %q", err.Operation)
	}
	if err.StatusCode != 403 {
		t.Errorf("StatusCode = %d", err.StatusCode)
	}
}
