package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"LocalWhiteboard/internal/board"
	"LocalWhiteboard/internal/export"
	"LocalWhiteboard/internal/raster"
	"LocalWhiteboard/internal/state"
)

// Options configures the whiteboard window.
type Options struct {
	Title  string
	Width  float32
	Height float32
	OutDir string // when set, Save writes here instead of asking
	Config board.Config
	Tool   state.Tool // selected when the window opens
	Logger *slog.Logger
}

// Build assembles the board, toolbar and status bar into win and returns the
// controller driving them.
func Build(win fyne.Window, opts Options) (*board.Controller, *BoardWidget, *Toolbar, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	surface := raster.New(0, 0, 1)
	c, err := board.New(opts.Config, surface)
	if err != nil {
		return nil, nil, nil, err
	}
	c.SetLogger(logger)
	if err := c.SelectTool(opts.Tool); err != nil {
		return nil, nil, nil, err
	}
	c.Confirm = dialogConfirmer{win: win}
	if opts.OutDir != "" {
		c.Saver = export.DirSaver{Dir: opts.OutDir}
	} else {
		c.Saver = dialogSaver{win: win, log: logger}
	}

	boardWidget := NewBoardWidget(c, surface)
	toolbar := NewToolbar(c, func(err error) {
		dialog.ShowError(err, win)
	})
	status := newStatusBar()

	c.AddReflector(toolbar)
	c.AddReflector(status)
	c.AddReflector(boardWidget)

	win.SetContent(container.NewBorder(toolbar.Object(), status.Object(), nil, nil, boardWidget))
	return c, boardWidget, toolbar, nil
}

func RunApp(opts Options) error {
	myApp := app.New()
	myWindow := myApp.NewWindow(opts.Title)
	myWindow.Resize(fyne.NewSize(opts.Width, opts.Height))

	if _, _, _, err := Build(myWindow, opts); err != nil {
		return fmt.Errorf("build whiteboard: %w", err)
	}
	myWindow.ShowAndRun()
	return nil
}
