package assets

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/image/draw"
)

// Option configures a Manager.
type Option func(*Manager)

// WithThumbnailSize sets the thumbnail bounding box. Non-positive values keep
// the default.
func WithThumbnailSize(width, height int) Option {
	return func(m *Manager) {
		if width > 0 {
			m.thumbWidth = width
		}
		if height > 0 {
			m.thumbHeight = height
		}
	}
}

// WithInterpolator sets the resampling kernel used for thumbnails.
func WithInterpolator(interp draw.Interpolator) Option {
	return func(m *Manager) {
		if interp != nil {
			m.interp = interp
		}
	}
}

// WithJPEGQuality sets the quality of JPEG thumbnails (1-100).
func WithJPEGQuality(quality int) Option {
	return func(m *Manager) {
		if quality >= 1 && quality <= 100 {
			m.jpegQuality = quality
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// ParseInterpolator maps a filter name to a resampling kernel.
func ParseInterpolator(name string) (draw.Interpolator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "catmull-rom", "catmullrom":
		return draw.CatmullRom, nil
	case "bilinear":
		return draw.BiLinear, nil
	case "approx-bilinear":
		return draw.ApproxBiLinear, nil
	case "nearest":
		return draw.NearestNeighbor, nil
	}
	return nil, fmt.Errorf("unknown thumbnail filter %q (valid: catmull-rom, bilinear, approx-bilinear, nearest)", name)
}
