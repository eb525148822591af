package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// dialogConfirmer asks through a modal confirm dialog on win.
type dialogConfirmer struct {
	win fyne.Window
}

func (d dialogConfirmer) Confirm(message string, answer func(bool)) {
	dialog.ShowConfirm("Clear whiteboard", message, answer, d.win)
}

// dialogSaver offers the export through a file save dialog pre-filled with
// its name. Write errors are shown on win.
type dialogSaver struct {
	win fyne.Window
	log *slog.Logger
}

func (d dialogSaver) Save(name string, data []byte) error {
	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			d.log.Error("save dialog failed", "error", err)
			dialog.ShowError(err, d.win)
			return
		}
		if writer == nil {
			d.log.Debug("save cancelled", "file", name)
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				d.log.Error("closing export", "file", writer.URI().String(), "error", err)
			}
		}()
		if _, err := writer.Write(data); err != nil {
			d.log.Error("writing export", "file", writer.URI().String(), "error", err)
			dialog.ShowError(err, d.win)
			return
		}
		d.log.Info("export written", "file", writer.URI().String(), "bytes", len(data))
	}, d.win)
	save.SetFileName(name)
	save.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	save.Show()
	return nil
}
