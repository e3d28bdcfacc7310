package figurines

import (
	"github.com/agentstation/figurines/pkg/save"
)

// Persistence handles collection persistence operations.
type Persistence interface {
	// Reload replaces the in-memory collection with the document on disk
	Reload() error

	// Save rewrites the collection document
	Save() error

	// Export writes the collection with options
	Export(opts ...save.Option) error
}

func (c *client) Reload() error {
	return c.store.Load()
}

func (c *client) Save() error {
	return c.store.Save()
}

func (c *client) Export(opts ...save.Option) error {
	return c.store.Export(opts...)
}
