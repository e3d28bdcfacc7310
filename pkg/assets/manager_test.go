package assets

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/agentstation/figurines/pkg/errors"
	"github.com/agentstation/figurines/pkg/logging"
)

// newTestManager returns a manager over a fresh project root with both image
// directories created.
func newTestManager(t *testing.T, opts ...Option) (*Manager, string) {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"images/full", "images/thumbnails"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0755))
	}
	return NewManager(root, "images/full", "images/thumbnails", opts...), root
}

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y += 7 {
		for x := 0; x < w; x += 7 {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return img
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, testImage(w, h)))
}

func writeJPEG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, testImage(w, h), nil))
}

func decodeConfig(t *testing.T, path string) (image.Config, string) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	return cfg, format
}

func TestFitSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		wantW, wantH int
	}{
		{"landscape", 4000, 3000, 300, 225},
		{"portrait", 1000, 2000, 150, 300},
		{"square", 600, 600, 300, 300},
		{"small is not upscaled", 120, 80, 120, 80},
		{"exact fit", 300, 300, 300, 300},
		{"thin strip", 3000, 2, 300, 1},
		{"degenerate", 0, 10, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := FitSize(tt.w, tt.h, 300, 300)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}
}

func TestImportLargeImage(t *testing.T) {
	m, root := newTestManager(t)
	src := filepath.Join(t.TempDir(), "dragon.png")
	writePNG(t, src, 4000, 3000)

	full, thumb, err := m.ImportImage(src)
	require.NoError(t, err)
	assert.Equal(t, "images/full/dragon.png", full)
	assert.Equal(t, "images/thumbnails/dragon.png", thumb)

	srcData, err := os.ReadFile(src)
	require.NoError(t, err)
	copied, err := os.ReadFile(filepath.Join(root, "images", "full", "dragon.png"))
	require.NoError(t, err)
	assert.Equal(t, srcData, copied)

	cfg, format := decodeConfig(t, m.Abs(thumb))
	assert.Equal(t, "png", format)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 225, cfg.Height)
}

func TestImportPreservesModTime(t *testing.T) {
	m, _ := newTestManager(t)
	src := filepath.Join(t.TempDir(), "old.png")
	writePNG(t, src, 10, 10)
	past := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, past, past))

	full, _, err := m.ImportImage(src)
	require.NoError(t, err)
	info, err := os.Stat(m.Abs(full))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past))
}

func TestImportKeepsFormat(t *testing.T) {
	m, _ := newTestManager(t)
	dir := t.TempDir()

	jpg := filepath.Join(dir, "knight.jpg")
	writeJPEG(t, jpg, 800, 400)
	_, thumb, err := m.ImportImage(jpg)
	require.NoError(t, err)
	cfg, format := decodeConfig(t, m.Abs(thumb))
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, 300, cfg.Width)
	assert.Equal(t, 150, cfg.Height)

	bmpPath := filepath.Join(dir, "orc.bmp")
	f, err := os.Create(bmpPath)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, testImage(50, 40)))
	require.NoError(t, f.Close())
	_, thumb, err = m.ImportImage(bmpPath)
	require.NoError(t, err)
	cfg, format = decodeConfig(t, m.Abs(thumb))
	assert.Equal(t, "bmp", format)
	assert.Equal(t, 50, cfg.Width)
}

func TestImportCustomSize(t *testing.T) {
	m, _ := newTestManager(t, WithThumbnailSize(100, 100), WithInterpolator(draw.ApproxBiLinear))
	src := filepath.Join(t.TempDir(), "elf.png")
	writePNG(t, src, 400, 200)

	_, thumb, err := m.ImportImage(src)
	require.NoError(t, err)
	cfg, _ := decodeConfig(t, m.Abs(thumb))
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)
}

func TestImportUndecodable(t *testing.T) {
	m, root := newTestManager(t)
	src := filepath.Join(t.TempDir(), "notes.png")
	require.NoError(t, os.WriteFile(src, []byte("definitely not an image"), 0644))

	_, _, err := m.ImportImage(src)
	require.Error(t, err)
	assert.True(t, errors.IsImageProcessing(err))

	var ipe *errors.ImageProcessingError
	require.True(t, errors.As(err, &ipe))
	assert.Equal(t, "decode", ipe.Stage)

	for _, dir := range []string{"full", "thumbnails"} {
		entries, err := os.ReadDir(filepath.Join(root, "images", dir))
		require.NoError(t, err)
		assert.Empty(t, entries, "no partial files in images/%s", dir)
	}
}

func TestImportMissingSource(t *testing.T) {
	m, _ := newTestManager(t)
	_, _, err := m.ImportImage(filepath.Join(t.TempDir(), "nope.jpg"))
	require.Error(t, err)

	var ipe *errors.ImageProcessingError
	require.True(t, errors.As(err, &ipe))
	assert.Equal(t, "read", ipe.Stage)
}

func TestImportCopyFailure(t *testing.T) {
	root := t.TempDir()
	m := NewManager(root, "images/full", "images/thumbnails")
	src := filepath.Join(t.TempDir(), "a.png")
	writePNG(t, src, 10, 10)

	_, _, err := m.ImportImage(src)
	require.Error(t, err)
	var ipe *errors.ImageProcessingError
	require.True(t, errors.As(err, &ipe))
	assert.Equal(t, "copy", ipe.Stage)
}

func TestImportThumbnailFailureRemovesCopy(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "images", "full"), 0755))
	m := NewManager(root, "images/full", "images/thumbnails")
	src := filepath.Join(t.TempDir(), "a.png")
	writePNG(t, src, 10, 10)

	_, _, err := m.ImportImage(src)
	require.Error(t, err)
	var ipe *errors.ImageProcessingError
	require.True(t, errors.As(err, &ipe))
	assert.Equal(t, "thumbnail", ipe.Stage)
	assert.NoFileExists(t, filepath.Join(root, "images", "full", "a.png"))
}

func TestDeleteImages(t *testing.T) {
	m, _ := newTestManager(t)
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.png")
	writePNG(t, a, 10, 10)
	writePNG(t, b, 10, 10)

	aFull, aThumb, err := m.ImportImage(a)
	require.NoError(t, err)
	bFull, bThumb, err := m.ImportImage(b)
	require.NoError(t, err)

	require.NoError(t, m.DeleteImages(aFull, aThumb))
	assert.NoFileExists(t, m.Abs(aFull))
	assert.NoFileExists(t, m.Abs(aThumb))
	assert.FileExists(t, m.Abs(bFull))
	assert.FileExists(t, m.Abs(bThumb))

	// Already gone is fine.
	assert.NoError(t, m.DeleteImages(aFull, aThumb, ""))
}

func TestDeleteImagesOutsideStorage(t *testing.T) {
	logger := logging.NewTestLogger(t)
	m, root := newTestManager(t, WithLogger(logger.Logger))
	victim := filepath.Join(root, "keep.txt")
	require.NoError(t, os.WriteFile(victim, []byte("x"), 0644))

	err := m.DeleteImages("keep.txt", "images/full/../../keep.txt")
	require.Error(t, err)
	assert.True(t, errors.IsCleanupWarning(err))
	assert.False(t, errors.IsBlocking(err))
	assert.FileExists(t, victim)
	logger.AssertContains(t, "could not remove image file")

	var w *errors.FileCleanupWarning
	require.True(t, errors.As(err, &w))
	assert.Len(t, w.Paths, 2)
}

func TestDeleteImagesFailureIsWarning(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}
	m, root := newTestManager(t)
	src := filepath.Join(t.TempDir(), "locked.png")
	writePNG(t, src, 10, 10)
	full, thumb, err := m.ImportImage(src)
	require.NoError(t, err)

	fullDir := filepath.Join(root, "images", "full")
	require.NoError(t, os.Chmod(fullDir, 0555))
	t.Cleanup(func() { _ = os.Chmod(fullDir, 0755) })

	err = m.DeleteImages(full, thumb)
	require.Error(t, err)
	assert.True(t, errors.IsCleanupWarning(err))
	assert.FileExists(t, m.Abs(full))
	assert.NoFileExists(t, m.Abs(thumb), "remaining files are still attempted")
}

func TestReplaceImages(t *testing.T) {
	t.Run("different basename removes old pair", func(t *testing.T) {
		m, _ := newTestManager(t)
		dir := t.TempDir()
		oldSrc := filepath.Join(dir, "old.png")
		newSrc := filepath.Join(dir, "new.png")
		writePNG(t, oldSrc, 10, 10)
		writePNG(t, newSrc, 10, 10)

		oldFull, oldThumb, err := m.ImportImage(oldSrc)
		require.NoError(t, err)
		newFull, newThumb, err := m.ImportImage(newSrc)
		require.NoError(t, err)

		require.NoError(t, m.ReplaceImages(oldFull, oldThumb, newFull, newThumb))
		assert.NoFileExists(t, m.Abs(oldFull))
		assert.NoFileExists(t, m.Abs(oldThumb))
		assert.FileExists(t, m.Abs(newFull))
		assert.FileExists(t, m.Abs(newThumb))
	})

	t.Run("same basename keeps overwritten files", func(t *testing.T) {
		m, _ := newTestManager(t)
		first := filepath.Join(t.TempDir(), "same.png")
		second := filepath.Join(t.TempDir(), "same.png")
		writePNG(t, first, 10, 10)
		writePNG(t, second, 20, 20)

		oldFull, oldThumb, err := m.ImportImage(first)
		require.NoError(t, err)
		newFull, newThumb, err := m.ImportImage(second)
		require.NoError(t, err)
		require.Equal(t, oldFull, newFull)

		require.NoError(t, m.ReplaceImages(oldFull, oldThumb, newFull, newThumb))
		assert.FileExists(t, m.Abs(newFull))
		assert.FileExists(t, m.Abs(newThumb))

		cfg, _ := decodeConfig(t, m.Abs(newFull))
		assert.Equal(t, 20, cfg.Width)
	})
}

func TestSnapshotRestore(t *testing.T) {
	m, root := newTestManager(t)
	src := filepath.Join(t.TempDir(), "arwen.png")
	writePNG(t, src, 64, 64)
	full, thumb, err := m.ImportImage(src)
	require.NoError(t, err)

	before, err := os.ReadFile(m.Abs(thumb))
	require.NoError(t, err)
	snap := m.Snapshot(full, thumb, "", "images/full/missing.png")

	writePNG(t, src, 20, 10)
	_, _, err = m.ImportImage(src)
	require.NoError(t, err)
	cfg, _ := decodeConfig(t, m.Abs(full))
	require.Equal(t, 20, cfg.Width)

	require.NoError(t, snap.Restore())
	cfg, _ = decodeConfig(t, m.Abs(full))
	assert.Equal(t, 64, cfg.Width)
	after, err := os.ReadFile(m.Abs(thumb))
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.NoFileExists(t, filepath.Join(root, "images", "full", "missing.png"))
}

func TestReimportManagedFile(t *testing.T) {
	m, _ := newTestManager(t)
	src := filepath.Join(t.TempDir(), "self.png")
	writePNG(t, src, 10, 10)
	full, _, err := m.ImportImage(src)
	require.NoError(t, err)

	again, _, err := m.ImportImage(m.Abs(full))
	require.NoError(t, err)
	assert.Equal(t, full, again)
	assert.FileExists(t, m.Abs(full))
}

func TestParseInterpolator(t *testing.T) {
	for _, name := range []string{"", "catmull-rom", "bilinear", "approx-bilinear", "nearest"} {
		interp, err := ParseInterpolator(name)
		require.NoError(t, err, name)
		assert.NotNil(t, interp)
	}
	_, err := ParseInterpolator("lanczos")
	assert.Error(t, err)
}
