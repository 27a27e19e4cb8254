package export

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"
)

// ErrEncoding is returned when an export could not be encoded or written.
// The drawing itself is never affected.
var ErrEncoding = errors.New("export encoding failed")

type Format string

const (
	PNG Format = "png"
	PDF Format = "pdf"
)

func (f Format) encode(w io.Writer, img image.Image) error {
	switch f {
	case PNG:
		return EncodePNG(w, img)
	case PDF:
		return EncodePDF(w, img)
	}
	return fmt.Errorf("unknown format %q", string(f))
}

// Result lists the files one export produced. Path is the PNG.
type Result struct {
	Path  string
	Files []string
}

// Exporter writes composed images into a private directory under
// timestamped names.
type Exporter struct {
	Dir     string
	Prefix  string
	Formats []Format

	// Now is used for file names.
	Now func() time.Time
}

func NewExporter(dir, prefix string, withPDF bool) *Exporter {
	formats := []Format{PNG}
	if withPDF {
		formats = append(formats, PDF)
	}
	return &Exporter{
		Dir:     dir,
		Prefix:  prefix,
		Formats: formats,
		Now:     time.Now,
	}
}

// FileName returns the name used for format f at time t.
func (e *Exporter) FileName(t time.Time, f Format) string {
	return fmt.Sprintf("%s_%d.%s", e.Prefix, t.Unix(), f)
}

// Export writes img in every configured format. img must not be modified
// while Export runs; pass a snapshot.
func (e *Exporter) Export(img image.Image) (Result, error) {
	if err := os.MkdirAll(e.Dir, 0o700); err != nil {
		return Result{}, fmt.Errorf("create %s: %w: %v", e.Dir, ErrEncoding, err)
	}

	now := e.Now()
	files := make([]string, len(e.Formats))
	var g errgroup.Group
	for i, f := range e.Formats {
		path := filepath.Join(e.Dir, e.FileName(now, f))
		files[i] = path
		f := f
		g.Go(func() error {
			return writeFile(path, f, img)
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{Path: files[0], Files: files}
	log.Printf("[EXPORT] Wrote %v", files)
	return res, nil
}

// ExportAsync runs Export on its own goroutine and reports to done from
// there. It never blocks the caller.
func (e *Exporter) ExportAsync(img image.Image, done func(Result, error)) {
	go func() {
		res, err := e.Export(img)
		if err != nil {
			log.Printf("[EXPORT] Failed: %v", err)
		}
		if done != nil {
			done(res, err)
		}
	}()
}

func writeFile(path string, f Format, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w: %v", path, ErrEncoding, err)
	}

	if err := f.encode(file, img); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("encode %s: %w: %v", path, ErrEncoding, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s: %w: %v", path, ErrEncoding, err)
	}
	return nil
}
