package view

import (
	"strings"
	"testing"

	"github.com/tesso57/poemgen/internal/presentation/tui/components/form"
	"github.com/tesso57/poemgen/internal/presentation/tui/components/home"
	mainview "github.com/tesso57/poemgen/internal/presentation/tui/components/main"
	"github.com/tesso57/poemgen/internal/presentation/tui/components/modal"
	"github.com/tesso57/poemgen/internal/presentation/tui/components/navbar"
	"github.com/tesso57/poemgen/internal/presentation/tui/components/toast"
)

func TestRender_ModalReplacesScreen(t *testing.T) {
	got := Render(Props{
		Navbar: navbar.Props{Brand: "AI Apps"},
		Modal:  modal.Props{Visible: true, Kind: modal.Quit, Body: "Are you sure you want to quit?"},
	})
	if !strings.Contains(got, "Are you sure you want to quit?") {
		t.Fatal("expected modal body")
	}
	if strings.Contains(got, "AI Apps") {
		t.Fatal("modal should replace the screen")
	}
}

func TestRender_Home(t *testing.T) {
	got := Render(Props{
		Navbar: navbar.Props{Brand: "AI Apps", Width: 80},
		Home:   &home.Props{Title: "Welcome to AI Apps", Cards: []home.Card{{Title: "Poem Generator"}}},
		Footer: "FOOTER",
	})
	for _, want := range []string{"AI Apps", "Welcome to AI Apps", "Poem Generator", "FOOTER"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q", want)
		}
	}
	if strings.Contains(got, "Create Your Poem") {
		t.Error("home should not render the form")
	}
}

func TestRender_Generator(t *testing.T) {
	got := Render(Props{
		Navbar: navbar.Props{Brand: "AI Apps", Width: 100},
		Form:   form.Props{Title: "Create Your Poem", Button: "Generate Poem", Width: 40},
		Panel:  mainview.Props{Title: "Your Generated Poem", Placeholder: "Ready to create poetry", Width: 59},
		Toasts: toast.Props{Items: []toast.Item{{Level: toast.Success, Text: "Poem generated successfully!"}}},
		Footer: "FOOTER",
	})
	for _, want := range []string{"Create Your Poem", "Your Generated Poem", "Ready to create poetry", "Poem generated successfully!", "FOOTER"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q", want)
		}
	}
}
