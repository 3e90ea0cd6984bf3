// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/tesso57/poemgen/internal/presentation/tui/components/form"
	"github.com/tesso57/poemgen/internal/presentation/tui/components/home"
	"github.com/tesso57/poemgen/internal/presentation/tui/components/layout"
	mainview "github.com/tesso57/poemgen/internal/presentation/tui/components/main"
	"github.com/tesso57/poemgen/internal/presentation/tui/components/modal"
	"github.com/tesso57/poemgen/internal/presentation/tui/components/navbar"
	"github.com/tesso57/poemgen/internal/presentation/tui/components/toast"
)

// Props aggregates properties for all UI components.
type Props struct {
	Navbar  navbar.Props
	Home    *home.Props
	Form    form.Props
	Panel   mainview.Props
	Stacked bool
	Toasts  toast.Props
	Modal   modal.Props
	Footer  string
}

// Render renders the complete UI view based on the provided props.
// Home is set on the landing route; otherwise the generator is drawn.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}

	var body string
	if p.Home != nil {
		body = home.Render(*p.Home)
	} else {
		body = layout.Columns(form.Render(p.Form), mainview.Render(p.Panel), p.Stacked)
	}

	return layout.Render(layout.Props{
		Navbar:  navbar.Render(p.Navbar),
		Body:    body,
		Notices: toast.Render(p.Toasts),
		Footer:  p.Footer,
	})
}
