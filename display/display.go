// Package display shows rendered distribution figures in a desktop window.
package display

import (
	"errors"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/vdobler/gnssdist"
)

// ErrNothingToShow is returned if View is called without figures.
var ErrNothingToShow = errors.New("display: no figures")

// Window is a gnssdist.Viewer opening one window with a tab per figure.
// A fyne application can run only once per process, so View must be
// called at most once.
type Window struct {
	// Initial window size in device independent pixels; 1200x800 if zero.
	Width, Height float32
}

var _ gnssdist.Viewer = Window{}

// View shows figures and blocks until the window is closed.
func (w Window) View(title string, figures []gnssdist.Rendered) error {
	if len(figures) == 0 {
		return ErrNothingToShow
	}

	a := app.New()
	win := a.NewWindow(title)

	tabs := container.NewAppTabs()
	for _, fig := range figures {
		tabs.Append(container.NewTabItem(fig.Constellation, figurePane(fig)))
	}
	win.SetContent(tabs)

	width, height := w.Width, w.Height
	if width <= 0 || height <= 0 {
		width, height = 1200, 800
	}
	win.Resize(fyne.NewSize(width, height))
	win.ShowAndRun()
	return nil
}

func figurePane(fig gnssdist.Rendered) fyne.CanvasObject {
	var img *canvas.Image
	if fig.Image != nil {
		img = canvas.NewImageFromImage(fig.Image)
	} else {
		img = canvas.NewImageFromFile(fig.Path)
	}
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(400, 240))
	caption := widget.NewLabel(filepath.Base(fig.Path))
	return container.NewBorder(nil, caption, nil, nil, img)
}
