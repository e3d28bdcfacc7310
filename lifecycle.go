package figurines

import (
	"strconv"
	"strings"

	"github.com/agentstation/figurines/pkg/assets"
	"github.com/agentstation/figurines/pkg/collection"
	"github.com/agentstation/figurines/pkg/errors"
	"github.com/agentstation/figurines/pkg/logging"
)

// Lifecycle creates, edits and deletes records together with their images.
//
// Validation and name collisions are reported before anything is touched.
// Image and persistence failures abort the operation and leave the previous
// state in place. Failures to remove stale image files are logged and never
// fail the operation.
type Lifecycle interface {
	// Create imports sourceImage and adds a new record
	Create(name, sourceImage string, tags []string) (*collection.Record, error)

	// Edit renames and retags a record, replacing its image if sourceImage is set
	Edit(id int, name, sourceImage string, tags []string) (*collection.Record, error)

	// Delete removes a record and its images
	Delete(id int) (*collection.Record, error)
}

func (c *client) checkName(name string, except *collection.Record) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.NewValidationError("name", name, "name must not be empty")
	}
	for _, r := range c.store.Records() {
		if r != except && collection.SameName(r.Name, name) {
			return "", errors.NewDuplicateNameError(name, r.Name)
		}
	}
	return name, nil
}

// Create adds a new record. The image is required.
func (c *client) Create(name, sourceImage string, tags []string) (*collection.Record, error) {
	logger := logging.WithOperation(c.logger, "create")
	name, err := c.checkName(name, nil)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(sourceImage) == "" {
		return nil, errors.NewValidationError("image", sourceImage, "an image is required for a new record")
	}

	full, thumb, err := c.assets.ImportImage(sourceImage)
	if err != nil {
		return nil, err
	}

	rec, err := c.store.Add(name, full, thumb, tags)
	if err != nil {
		c.discardImages(full, thumb)
		return nil, err
	}

	if err := c.store.Save(); err != nil {
		c.store.Remove(rec)
		c.discardImages(full, thumb)
		return nil, err
	}

	logging.WithRecord(logger, rec.ID, rec.Name).Info().Msg("Record created")
	c.hooks.triggerAdded(rec)
	return rec, nil
}

// Edit replaces a record's name and tags, and its image when sourceImage is
// non-empty. The name must not collide with any other record.
//
// When the save fails the record and its image files are put back as they
// were, including files the import overwrote in place.
func (c *client) Edit(id int, name, sourceImage string, tags []string) (*collection.Record, error) {
	rec, ok := c.store.Get(id)
	if !ok {
		return nil, errors.NewNotFoundError("record", strconv.Itoa(id))
	}
	opLogger := logging.WithOperation(c.logger, "edit")
	logger := logging.WithRecord(opLogger, rec.ID, rec.Name)
	name, err := c.checkName(name, rec)
	if err != nil {
		return nil, err
	}

	old := rec.Clone()
	fields := []collection.Field{collection.SetName(name), collection.SetTags(tags)}

	var full, thumb string
	var previous *assets.Snapshot
	replacing := strings.TrimSpace(sourceImage) != ""
	if replacing {
		previous = c.assets.Snapshot(old.FullImage, old.Thumbnail)
		if full, thumb, err = c.assets.ImportImage(sourceImage); err != nil {
			return nil, err
		}
		fields = append(fields, collection.SetImages(full, thumb))
	}

	if err := c.store.Update(rec, fields...); err != nil {
		return nil, err
	}

	if err := c.store.Save(); err != nil {
		*rec = *old
		if replacing {
			c.discardImages(pathIfChanged(full, old.FullImage), pathIfChanged(thumb, old.Thumbnail))
			if restoreErr := previous.Restore(); restoreErr != nil {
				logger.Warn().Err(restoreErr).Msg("Previous images were not fully restored")
			}
		}
		return nil, err
	}

	if replacing {
		oldFull, oldThumb := c.unreferenced(old.FullImage), c.unreferenced(old.Thumbnail)
		if err := c.assets.ReplaceImages(oldFull, oldThumb, full, thumb); err != nil {
			logger.Warn().Err(err).Msg("Old images were not fully removed")
			c.hooks.triggerCleanupWarning(rec, err)
		}
	}

	logging.WithRecord(opLogger, rec.ID, rec.Name).Info().
		Bool("image_replaced", replacing).
		Msg("Record updated")
	c.hooks.triggerUpdated(old, rec)
	return rec, nil
}

// Delete removes a record, saves, and then removes its images. Image removal
// is best effort.
func (c *client) Delete(id int) (*collection.Record, error) {
	rec, ok := c.store.Get(id)
	if !ok {
		return nil, errors.NewNotFoundError("record", strconv.Itoa(id))
	}

	logger := logging.WithRecord(logging.WithOperation(c.logger, "delete"), rec.ID, rec.Name)
	idx := c.store.IndexOf(rec)
	c.store.Remove(rec)
	if err := c.store.Save(); err != nil {
		c.store.Restore(rec, idx)
		return nil, err
	}

	if err := c.assets.DeleteImages(c.unreferenced(rec.FullImage), c.unreferenced(rec.Thumbnail)); err != nil {
		logger.Warn().Err(err).Msg("Images were not fully removed")
		c.hooks.triggerCleanupWarning(rec, err)
	}

	logger.Info().Msg("Record deleted")
	c.hooks.triggerRemoved(rec)
	return rec, nil
}

// discardImages removes freshly imported files after a failed operation,
// sparing any that another record still points at.
func (c *client) discardImages(full, thumb string) {
	if err := c.assets.DeleteImages(c.unreferenced(full), c.unreferenced(thumb)); err != nil {
		c.logger.Warn().Err(err).Msg("Imported images were not fully removed")
	}
}

// unreferenced returns p, or "" if a record in the collection references it.
func (c *client) unreferenced(p string) string {
	if p == "" {
		return ""
	}
	for _, r := range c.store.Records() {
		if r.FullImage == p || r.Thumbnail == p {
			c.logger.Debug().Str("path", p).Int("record_id", r.ID).Msg("Image still referenced, keeping")
			return ""
		}
	}
	return p
}

func pathIfChanged(p, old string) string {
	if p == old {
		return ""
	}
	return p
}
