package figurines

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/image/draw"

	"github.com/agentstation/figurines/pkg/constants"
	"github.com/agentstation/figurines/pkg/errors"
	"github.com/agentstation/figurines/pkg/logging"
)

// options holds the configuration applied by New.
type options struct {
	root         string
	logger       *zerolog.Logger
	clock        func() time.Time
	thumbWidth   int
	thumbHeight  int
	thumbFilter  draw.Interpolator
	jpegQuality  int
	autoLoad     bool
	ensureLayout bool
}

func defaults() *options {
	return &options{
		root:         ".",
		logger:       logging.Default(),
		clock:        time.Now,
		thumbWidth:   constants.ThumbnailMaxWidth,
		thumbHeight:  constants.ThumbnailMaxHeight,
		thumbFilter:  draw.CatmullRom,
		jpegQuality:  constants.JPEGQuality,
		autoLoad:     true,
		ensureLayout: true,
	}
}

// Option is a function that configures a Client.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithRoot sets the project root holding data/ and images/.
func WithRoot(dir string) Option {
	return func(o *options) error {
		if dir == "" {
			return errors.NewValidationError("root", dir, "cannot be empty")
		}
		o.root = dir
		return nil
	}
}

// WithLogger sets the logger used by the client and its store and asset manager.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logging.OrNop(logger)
		return nil
	}
}

// WithClock sets the time source for modification timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) error {
		if now == nil {
			return errors.NewValidationError("clock", nil, "cannot be nil")
		}
		o.clock = now
		return nil
	}
}

// WithThumbnailSize sets the thumbnail bounding box.
func WithThumbnailSize(width, height int) Option {
	return func(o *options) error {
		if width <= 0 || height <= 0 {
			return errors.NewValidationError("thumbnail size", [2]int{width, height}, "width and height must be positive")
		}
		o.thumbWidth, o.thumbHeight = width, height
		return nil
	}
}

// WithThumbnailFilter sets the resampling kernel used for thumbnails.
func WithThumbnailFilter(interp draw.Interpolator) Option {
	return func(o *options) error {
		if interp == nil {
			return errors.NewValidationError("thumbnail filter", nil, "cannot be nil")
		}
		o.thumbFilter = interp
		return nil
	}
}

// WithJPEGQuality sets the quality of JPEG thumbnails.
func WithJPEGQuality(quality int) Option {
	return func(o *options) error {
		if quality < 1 || quality > 100 {
			return errors.NewValidationError("jpeg quality", quality, "must be between 1 and 100")
		}
		o.jpegQuality = quality
		return nil
	}
}

// WithAutoLoad configures whether New loads the collection document.
func WithAutoLoad(enabled bool) Option {
	return func(o *options) error {
		o.autoLoad = enabled
		return nil
	}
}

// WithEnsureLayout configures whether New creates missing project directories.
func WithEnsureLayout(enabled bool) Option {
	return func(o *options) error {
		o.ensureLayout = enabled
		return nil
	}
}
