package provider

import (
	stderrors "errors"
	"testing"

	"github.com/chu3/chu3-discord-bot-go/pkg/errors"
)

func TestRouteMirrorPrefix(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"pjsk042", 42},
		{"pjsk1", 1},
		{"PJSK77", 77},
		{" pjsk7 ", 7},
	}

	for _, tc := range cases {
		ident, err := Route(tc.raw)
		if err != nil {
			t.Fatalf("Route(%q) returned error: %v", tc.raw, err)
		}
		if ident.Source != SourceMirror {
			t.Errorf("Route(%q).Source = %s, want mirror", tc.raw, ident.Source)
		}
		if ident.ID != tc.want {
			t.Errorf("Route(%q).ID = %d, want %d", tc.raw, ident.ID, tc.want)
		}
	}
}

func TestRoutePrimary(t *testing.T) {
	ident, err := Route("77")
	if err != nil {
		t.Fatalf("Route(77) returned error: %v", err)
	}
	if ident.Source != SourcePrimary || ident.ID != 77 {
		t.Errorf("Route(77) = %+v, want primary/77", ident)
	}
}

func TestRouteMissingArgument(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		if _, err := Route(raw); !stderrors.Is(err, ErrMissingArgument) {
			t.Errorf("Route(%q) error = %v, want ErrMissingArgument", raw, err)
		}
	}
}

func TestRouteInvalidIdentifiers(t *testing.T) {
	cases := []string{"pjsk", "pjskabc", "pjsk-1", "pjsk 42", "abc", "-5", "12x"}

	for _, raw := range cases {
		_, err := Route(raw)
		if err == nil {
			t.Errorf("Route(%q) succeeded, want validation error", raw)
			continue
		}
		var validation *errors.ValidationError
		if !stderrors.As(err, &validation) {
			t.Errorf("Route(%q) error = %v, want *errors.ValidationError", raw, err)
		}
	}
}
