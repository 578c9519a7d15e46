package binding

import (
	"errors"
	"testing"

	"github.com/jokarl/resbind/internal/catalog"
	"github.com/jokarl/resbind/internal/resolver"
)

func TestBind(t *testing.T) {
	ui, err := Bind(catalog.New())
	if err != nil {
		t.Fatalf("Bind error: %v", err)
	}
	if ui.Image != "image 101" {
		t.Errorf("Image = %q, want %q", ui.Image, "image 101")
	}
	if ui.Text != "text 102" {
		t.Errorf("Text = %q, want %q", ui.Text, "text 102")
	}

	lines := ui.Lines()
	if len(lines) != 2 || lines[0] != "image 101" || lines[1] != "text 102" {
		t.Errorf("Lines() = %v", lines)
	}
}

func TestBindFields(t *testing.T) {
	b, err := BindFields(catalog.New(), []string{"text", "image", "text"})
	if err != nil {
		t.Fatalf("BindFields error: %v", err)
	}

	lines := b.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %v", lines)
	}
	if lines[0] != "text 102" || lines[1] != "image 101" {
		t.Errorf("Lines() = %v", lines)
	}

	if v, ok := b.Get("image"); !ok || v != "image 101" {
		t.Errorf("Get(image) = %q, %v", v, ok)
	}
	if _, ok := b.Get("foo"); ok {
		t.Error("expected Get(foo) to miss")
	}
}

func TestBindFields_Unrecognized(t *testing.T) {
	b, err := BindFields(catalog.New(), []string{"image", "video", "text"})
	if err == nil {
		t.Fatal("expected error")
	}
	if b != nil {
		t.Error("expected nil binding on error")
	}
	if !errors.Is(err, resolver.ErrUnrecognizedField) {
		t.Errorf("expected ErrUnrecognizedField, got %v", err)
	}
	if err.Error() != "Error video" {
		t.Errorf("Error() = %q, want %q", err.Error(), "Error video")
	}
}

func TestBindFields_Empty(t *testing.T) {
	b, err := BindFields(catalog.New(), nil)
	if err != nil {
		t.Fatalf("BindFields error: %v", err)
	}
	if len(b.Lines()) != 0 {
		t.Errorf("expected no lines, got %v", b.Lines())
	}
}
