// gridcut-view — desktop viewer for saved GridCut projects
//
// Opens a project file produced by the gridcut CLI and renders the
// packed layout in a window.
//
// Build:
//
//	go build -o gridcut-view ./cmd/gridcut-view
package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/GridCut/internal/project"
	"github.com/piwi3910/GridCut/internal/ui/widgets"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: gridcut-view <project.json>")
	}

	proj, err := project.Load(os.Args[1])
	if err != nil {
		log.Fatalf("cannot load project: %v", err)
	}

	application := app.NewWithID("com.piwi3910.gridcut")
	window := application.NewWindow("GridCut — " + proj.Name)

	window.SetContent(widgets.RenderLayout(proj.Result, proj.Settings))
	window.Resize(fyne.NewSize(800, 600))
	window.CenterOnScreen()
	window.ShowAndRun()
}
