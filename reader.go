package figurines

import (
	"strconv"

	"github.com/agentstation/figurines/pkg/collection"
	"github.com/agentstation/figurines/pkg/errors"
)

// Reader provides read access to the collection.
type Reader interface {
	// Records returns the records in their current order
	Records() []*collection.Record

	// Get returns the record with the given id
	Get(id int) (*collection.Record, error)

	// Lookup resolves an id or a name, ignoring case
	Lookup(ref string) (*collection.Record, error)

	// Filter returns the records matching f in their current order
	Filter(f collection.Filter) []*collection.Record

	// Tags returns the sorted tag vocabulary
	Tags() []string

	// Sort reorders the collection in memory
	Sort(c collection.SortCriterion)
}

func (c *client) Records() []*collection.Record {
	return c.store.Records()
}

func (c *client) Get(id int) (*collection.Record, error) {
	r, ok := c.store.Get(id)
	if !ok {
		return nil, errors.NewNotFoundError("record", strconv.Itoa(id))
	}
	return r, nil
}

func (c *client) Lookup(ref string) (*collection.Record, error) {
	return c.store.Lookup(ref)
}

func (c *client) Filter(f collection.Filter) []*collection.Record {
	return c.store.Filter(f)
}

func (c *client) Tags() []string {
	return c.store.TagVocabulary()
}

func (c *client) Sort(criterion collection.SortCriterion) {
	c.store.Sort(criterion)
}
