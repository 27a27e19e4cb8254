package ui

import (
	"fmt"
	"log"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"PaintPlay/internal/export"
	"PaintPlay/internal/render"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".tif", ".tiff"}

// Save snapshots the board and writes it on a worker goroutine, then offers
// to share the file.
func (s *Shell) Save() {
	img, err := s.Board().ComposedImage()
	if err != nil {
		log.Printf("Save: Error composing image: %v", err)
		dialog.ShowError(err, s.win)
		return
	}

	progress := dialog.NewCustomWithoutButtons("Saving", widget.NewProgressBarInfinite(), s.win)
	progress.Show()
	s.SetStatus("Saving...")

	s.exporter.ExportAsync(img, func(res export.Result, err error) {
		fyne.Do(func() {
			progress.Hide()
			s.saved(res, err)
		})
	})
}

func (s *Shell) saved(res export.Result, err error) {
	if err != nil {
		s.SetStatus("Error saving image")
		dialog.ShowError(fmt.Errorf("something went wrong on saving image: %w", err), s.win)
		return
	}

	s.SetStatus("Saved " + res.Path)
	dialog.ShowConfirm("Saved", res.Path+"\n\nShare it?", func(ok bool) {
		if ok {
			s.Share(res.Path)
		}
	}, s.win)
}

// Share hands the file to whatever the platform opens file URLs with.
func (s *Shell) Share(path string) {
	u, err := url.Parse(storage.NewFileURI(path).String())
	if err != nil {
		log.Printf("Share: Bad path %q: %v", path, err)
		return
	}
	if err := s.app.OpenURL(u); err != nil {
		log.Printf("Share: Could not open %s: %v", u, err)
		dialog.ShowError(err, s.win)
	}
}

// ImportBackground lets the user pick a picture to draw over.
func (s *Shell) ImportBackground() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, s.win)
			return
		}
		if reader == nil {
			return
		}
		s.LoadBackground(reader)
	}, s.win)
	d.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
	d.Show()
}

// LoadBackground decodes the picture behind reader and shows it.
func (s *Shell) LoadBackground(reader fyne.URIReadCloser) {
	defer func() {
		if err := reader.Close(); err != nil {
			log.Printf("Error closing reader: %v", err)
		}
	}()

	img, format, err := render.LoadImage(reader)
	if err != nil {
		log.Printf("LoadBackground: %v", err)
		s.SetStatus("Error loading image")
		dialog.ShowError(fmt.Errorf("something went wrong with loading image: %w", err), s.win)
		return
	}

	log.Printf("LoadBackground: Loaded %s %s image %v", reader.URI().Name(), format, img.Bounds().Size())
	s.canvas.SetBackgroundImage(img)
	s.SetStatus("Background: " + reader.URI().Name())
}
