package main

import (
	"log/slog"
	"os"

	"github.com/tdewolff/argp"

	"LocalWhiteboard/internal/board"
	"LocalWhiteboard/internal/state"
	"LocalWhiteboard/internal/ui"
)

type Whiteboard struct {
	Title   string  `default:"Local Whiteboard" desc:"Window title"`
	Width   float64 `short:"W" default:"1024" desc:"Initial window width"`
	Height  float64 `short:"H" default:"768" desc:"Initial window height"`
	Tool    string  `short:"t" default:"pen" desc:"Tool selected at start (pen or eraser)"`
	OutDir  string  `short:"o" desc:"Write saved images to this directory instead of asking"`
	Verbose bool    `short:"v" desc:"Log stroke and resize events"`
}

func main() {
	root := argp.NewCmd(&Whiteboard{}, "Single window whiteboard with pen, eraser and PNG export")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Whiteboard) Run() error {
	level := slog.LevelInfo
	if cmd.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	logger.Info("starting whiteboard", "session", state.SessionID())

	tool, err := state.ParseTool(cmd.Tool)
	if err != nil {
		return err
	}
	cfg := board.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}
	return ui.RunApp(ui.Options{
		Title:  cmd.Title,
		Width:  float32(cmd.Width),
		Height: float32(cmd.Height),
		OutDir: cmd.OutDir,
		Config: cfg,
		Tool:   tool,
		Logger: logger,
	})
}
