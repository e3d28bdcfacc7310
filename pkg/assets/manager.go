// Package assets manages the image files behind catalogued records: full-size
// copies in one directory and derived thumbnails in another, both under a
// project root.
//
// Paths handed out and accepted by a Manager are project-relative with
// forward slashes, as stored in the collection document. A Manager is not safe
// for concurrent use.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/image/draw"

	"github.com/agentstation/figurines/internal/utils/atomicfile"
	"github.com/agentstation/figurines/pkg/constants"
	"github.com/agentstation/figurines/pkg/errors"
	"github.com/agentstation/figurines/pkg/logging"
)

// Manager copies, derives, and removes managed image files.
type Manager struct {
	root        string
	fullDir     string
	thumbDir    string
	thumbWidth  int
	thumbHeight int
	jpegQuality int
	interp      draw.Interpolator
	logger      *zerolog.Logger
}

// NewManager creates a manager for the image directories fullDir and
// thumbDir, given relative to root.
func NewManager(root, fullDir, thumbDir string, opts ...Option) *Manager {
	m := &Manager{
		root:        filepath.Clean(root),
		fullDir:     path.Clean(filepath.ToSlash(fullDir)),
		thumbDir:    path.Clean(filepath.ToSlash(thumbDir)),
		thumbWidth:  constants.ThumbnailMaxWidth,
		thumbHeight: constants.ThumbnailMaxHeight,
		jpegQuality: constants.JPEGQuality,
		interp:      draw.CatmullRom,
		logger:      logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ThumbnailSize returns the thumbnail bounding box.
func (m *Manager) ThumbnailSize() (int, int) {
	return m.thumbWidth, m.thumbHeight
}

// Abs resolves a stored path against the project root. Absolute paths are
// returned unchanged.
func (m *Manager) Abs(rel string) string {
	if rel == "" {
		return ""
	}
	p := filepath.FromSlash(rel)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(m.root, p)
}

// ImportImage copies the file at sourcePath into the full-size directory
// under its own base name and writes a thumbnail of it into the thumbnail
// directory. It returns both stored paths.
//
// The source is decoded before anything is written, so an unreadable or
// undecodable file leaves managed storage untouched. A later failure removes
// the thumbnail, and the full-size copy unless it replaced an existing file.
func (m *Manager) ImportImage(sourcePath string) (full, thumb string, err error) {
	data, err := os.ReadFile(sourcePath)
	if err != nil {
		return "", "", errors.WrapImage("read", sourcePath, err)
	}
	info, err := os.Stat(sourcePath)
	if err != nil {
		return "", "", errors.WrapImage("read", sourcePath, err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", "", errors.WrapImage("decode", sourcePath, err)
	}

	base := filepath.Base(sourcePath)
	full = path.Join(m.fullDir, base)
	thumb = path.Join(m.thumbDir, thumbnailName(base, format))
	fullAbs := m.Abs(full)
	thumbAbs := m.Abs(thumb)

	_, statErr := os.Stat(fullAbs)
	existed := statErr == nil

	if !sameFile(sourcePath, fullAbs) {
		if err := atomicfile.WriteBytes(fullAbs, data); err != nil {
			return "", "", errors.WrapImage("copy", sourcePath, err)
		}
		// Keep the source's modification time on the copy.
		if err := os.Chtimes(fullAbs, info.ModTime(), info.ModTime()); err != nil {
			m.logger.Debug().Err(err).Str("path", fullAbs).Msg("could not preserve modification time")
		}
	}

	small := Thumbnail(img, m.thumbWidth, m.thumbHeight, m.interp)
	if err := atomicfile.Write(thumbAbs, func(w io.Writer) error {
		return encode(w, small, format, m.jpegQuality)
	}); err != nil {
		if !existed {
			_ = os.Remove(fullAbs)
		}
		return "", "", errors.WrapImage("thumbnail", sourcePath, err)
	}

	b := small.Bounds()
	m.logger.Debug().
		Str("source", sourcePath).
		Str("format", format).
		Str("full", full).
		Str("thumbnail", thumb).
		Int("width", b.Dx()).
		Int("height", b.Dy()).
		Bool("overwrote", existed).
		Msg("image imported")
	return full, thumb, nil
}

// DeleteImages removes the given stored files. Empty paths and files that are
// already gone are skipped. Any other failure is logged and reported as a
// *errors.FileCleanupWarning; the remaining files are still attempted.
func (m *Manager) DeleteImages(paths ...string) error {
	var failed []string
	var errs []error
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := m.remove(p); err != nil {
			m.logger.Warn().Err(err).Str("path", p).Msg("could not remove image file")
			failed = append(failed, p)
			errs = append(errs, err)
		}
	}
	if len(failed) > 0 {
		return errors.NewFileCleanupWarning(failed, errors.Join(errs...))
	}
	return nil
}

// ReplaceImages removes the old pair after a record's image was replaced.
// A file whose base name matches its replacement was already overwritten by
// the import and is kept.
func (m *Manager) ReplaceImages(oldFull, oldThumb, newFull, newThumb string) error {
	var stale []string
	if oldFull != "" && path.Base(oldFull) != path.Base(newFull) {
		stale = append(stale, oldFull)
	}
	if oldThumb != "" && path.Base(oldThumb) != path.Base(newThumb) {
		stale = append(stale, oldThumb)
	}
	return m.DeleteImages(stale...)
}

func (m *Manager) remove(p string) error {
	abs := m.Abs(p)
	if !m.managed(abs) {
		return fmt.Errorf("%s is outside managed image storage", p)
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// managed reports whether abs lies inside one of the image directories.
func (m *Manager) managed(abs string) bool {
	for _, dir := range []string{m.fullDir, m.thumbDir} {
		rel, err := filepath.Rel(m.Abs(dir), abs)
		if err != nil {
			continue
		}
		if rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func sameFile(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}

// Snapshot holds the contents of stored image files so they can be written
// back after an import overwrote them.
type Snapshot struct {
	m     *Manager
	files map[string][]byte
}

// Snapshot reads the given stored files into memory. Empty paths and missing
// files are skipped; unreadable files are logged and skipped.
func (m *Manager) Snapshot(paths ...string) *Snapshot {
	s := &Snapshot{m: m, files: make(map[string][]byte, len(paths))}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, ok := s.files[p]; ok {
			continue
		}
		data, err := os.ReadFile(m.Abs(p))
		if err != nil {
			if !os.IsNotExist(err) {
				m.logger.Warn().Err(err).Str("path", p).Msg("could not snapshot image file")
			}
			continue
		}
		s.files[p] = data
	}
	return s
}

// Restore writes every snapshotted file back to its stored path.
func (s *Snapshot) Restore() error {
	var errs []error
	for p, data := range s.files {
		if err := atomicfile.WriteBytes(s.m.Abs(p), data); err != nil {
			errs = append(errs, fmt.Errorf("restoring %s: %w", p, err))
		}
	}
	return errors.Join(errs...)
}
