// Package figurines provides the main entry point for the figurines collection
// cataloguer. It ties the JSON-backed record store and the managed image
// directories together into the record lifecycle used by every presentation:
// create, edit, delete, sort and tag listing.
//
// Example usage:
//
//	// Open the project in the current directory
//	c, err := figurines.New(figurines.WithRoot("."))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Register event hooks
//	c.OnRecordAdded(func(r *collection.Record) {
//	    log.Printf("added %d: %s", r.ID, r.Name)
//	})
//
//	// Add a record from an image on disk
//	rec, err := c.Create("Gandalf", "/tmp/gandalf.jpg", []string{"wizard"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// List records, newest first
//	c.Sort(collection.SortMostRecent)
//	for _, r := range c.Records() {
//	    fmt.Printf("%d %s %v\n", r.ID, r.Name, r.Tags)
//	}
package figurines

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/figurines/internal/project"
	"github.com/agentstation/figurines/pkg/assets"
	"github.com/agentstation/figurines/pkg/collection"
	"github.com/agentstation/figurines/pkg/errors"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client manages a collection and its images with event hooks.
type Client interface {

	// Reader provides read access to the collection
	Reader

	// Lifecycle creates, edits and deletes records
	Lifecycle

	// Persistence reloads, saves and exports the collection
	Persistence

	// Hooks provides access to event callback registration
	Hooks

	// Store returns the underlying record store
	Store() *collection.Store

	// Assets returns the underlying image manager
	Assets() *assets.Manager

	// Layout returns the project layout
	Layout() project.Layout
}

// client is the internal implementation of the Client interface.
type client struct {
	options *options
	layout  project.Layout
	store   *collection.Store
	assets  *assets.Manager
	hooks   *hooks
	logger  *zerolog.Logger
}

// New creates a new Client for the configured project root. By default the
// project directories are created and the collection is loaded.
func New(opts ...Option) (Client, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}

	layout := project.New(o.root)
	c := &client{
		options: o,
		layout:  layout,
		hooks:   newHooks(),
		logger:  o.logger,
	}

	c.store = collection.NewStore(layout.CollectionFile(),
		collection.WithClock(o.clock),
		collection.WithLogger(o.logger),
	)
	c.assets = assets.NewManager(layout.Root(), layout.FullDir(), layout.ThumbDir(),
		assets.WithThumbnailSize(o.thumbWidth, o.thumbHeight),
		assets.WithInterpolator(o.thumbFilter),
		assets.WithJPEGQuality(o.jpegQuality),
		assets.WithLogger(o.logger),
	)

	if o.ensureLayout {
		if err := layout.Ensure(); err != nil {
			return nil, errors.WrapPersistence("create layout", layout.Root(), err)
		}
	}

	if o.autoLoad {
		if err := c.store.Load(); err != nil {
			return nil, err
		}
	}

	c.logger.Debug().
		Str("root", layout.Root()).
		Int("records", c.store.Len()).
		Msg("Collection opened")

	return c, nil
}

func (c *client) Store() *collection.Store { return c.store }

func (c *client) Assets() *assets.Manager { return c.assets }

func (c *client) Layout() project.Layout { return c.layout }

// OnRecordAdded registers a callback for when records are added.
func (c *client) OnRecordAdded(fn RecordAddedHook) { c.hooks.OnRecordAdded(fn) }

// OnRecordUpdated registers a callback for when records are updated.
func (c *client) OnRecordUpdated(fn RecordUpdatedHook) { c.hooks.OnRecordUpdated(fn) }

// OnRecordRemoved registers a callback for when records are removed.
func (c *client) OnRecordRemoved(fn RecordRemovedHook) { c.hooks.OnRecordRemoved(fn) }

// OnCleanupWarning registers a callback for image files an edit or delete left behind.
func (c *client) OnCleanupWarning(fn CleanupWarningHook) { c.hooks.OnCleanupWarning(fn) }
