package clipboard

import (
	"errors"
	"strings"
	"testing"
)

func TestSystem_WriteText(t *testing.T) {
	var got string
	cb := NewSystemWithWriter(func(text string) error {
		got = text
		return nil
	})

	if err := cb.WriteText("leaves fall slow..."); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	if got != "leaves fall slow..." {
		t.Fatalf("written = %q, want %q", got, "leaves fall slow...")
	}
}

func TestSystem_WriteTextError(t *testing.T) {
	cb := NewSystemWithWriter(func(string) error {
		return errors.New("exec: xclip not found")
	})

	err := cb.WriteText("x")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "xclip not found") {
		t.Fatalf("error = %v, expected wrapped cause", err)
	}
}

func TestSystem_Unconfigured(t *testing.T) {
	var cb System
	if err := cb.WriteText("x"); err == nil {
		t.Fatal("expected error for zero-value clipboard")
	}
}
