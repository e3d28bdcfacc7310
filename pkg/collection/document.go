package collection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/figurines/pkg/constants"
)

// recordDoc is the on-disk form of a Record. Tags and modified_date are
// optional on read.
type recordDoc struct {
	ID           int      `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	FullImage    string   `json:"fullImage" yaml:"fullImage"`
	Thumbnail    string   `json:"thumbnail" yaml:"thumbnail"`
	Tags         []string `json:"tags" yaml:"tags"`
	ModifiedDate *string  `json:"modified_date,omitempty" yaml:"modified_date,omitempty"`
}

// document is the top-level collection document.
type document struct {
	Figurines []recordDoc `json:"figurines" yaml:"figurines"`
}

// decodeDocument parses data into records. Empty or whitespace-only input is an
// empty collection. now supplies the timestamp for records lacking one.
func decodeDocument(data []byte, now func() time.Time) ([]*Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing collection document: %w", err)
	}

	records := make([]*Record, 0, len(doc.Figurines))
	seen := make(map[int]struct{}, len(doc.Figurines))
	for i, d := range doc.Figurines {
		if d.ID <= 0 {
			return nil, fmt.Errorf("entry %d: invalid id %d", i, d.ID)
		}
		if _, dup := seen[d.ID]; dup {
			return nil, fmt.Errorf("entry %d: duplicate id %d", i, d.ID)
		}
		seen[d.ID] = struct{}{}

		modified := now()
		if d.ModifiedDate != nil {
			t, err := parseTimestamp(*d.ModifiedDate)
			if err != nil {
				return nil, fmt.Errorf("entry %d (id %d): %w", i, d.ID, err)
			}
			modified = t
		}

		tags := d.Tags
		if tags == nil {
			tags = []string{}
		}

		records = append(records, &Record{
			ID:         d.ID,
			Name:       d.Name,
			FullImage:  d.FullImage,
			Thumbnail:  d.Thumbnail,
			Tags:       tags,
			ModifiedAt: modified,
		})
	}
	return records, nil
}

// parseTimestamp accepts RFC 3339 timestamps and the zone-less ISO-8601 form,
// which is read as local time.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(constants.TimeFormatISO8601, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(constants.TimeFormatLocalMicro, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid modified_date %q", s)
	}
	return t, nil
}

func toDocument(records []*Record) document {
	doc := document{Figurines: make([]recordDoc, 0, len(records))}
	for _, r := range records {
		ts := r.ModifiedAt.Format(constants.TimeFormatISO8601)
		tags := r.Tags
		if tags == nil {
			tags = []string{}
		}
		doc.Figurines = append(doc.Figurines, recordDoc{
			ID:           r.ID,
			Name:         r.Name,
			FullImage:    r.FullImage,
			Thumbnail:    r.Thumbnail,
			Tags:         tags,
			ModifiedDate: &ts,
		})
	}
	return doc
}

// encodeJSON writes the document pretty-printed with non-ASCII and HTML
// characters left literal.
func encodeJSON(w io.Writer, records []*Record) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", constants.JSONIndent)
	return enc.Encode(toDocument(records))
}

func encodeYAML(w io.Writer, records []*Record) error {
	data, err := yaml.Marshal(toDocument(records))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
