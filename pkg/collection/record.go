// Package collection holds the in-memory catalogue of records and keeps it in
// step with the JSON collection document on disk.
//
// A Store is loaded wholesale, mutated in memory, and rewritten wholesale on
// every Save. It is not safe for concurrent use: the application drives it
// from a single caller.
package collection

import (
	"slices"
	"strings"
	"time"
)

// Record is one catalogued item: a unique name, a full-size image and its
// thumbnail (both relative to the project root), free-form tags, and the time
// it was last modified.
type Record struct {
	ID         int       `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	FullImage  string    `json:"fullImage" yaml:"fullImage"`
	Thumbnail  string    `json:"thumbnail" yaml:"thumbnail"`
	Tags       []string  `json:"tags" yaml:"tags"`
	ModifiedAt time.Time `json:"modified_date" yaml:"modified_date"`
}

// HasTag reports whether tag is present, comparing exactly.
func (r *Record) HasTag(tag string) bool {
	return slices.Contains(r.Tags, tag)
}

// AddTag appends tag after trimming it. Blank tags and exact duplicates are
// rejected and reported by returning false.
func (r *Record) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || r.HasTag(tag) {
		return false
	}
	r.Tags = append(r.Tags, tag)
	return true
}

// RemoveTag deletes tag, returning false if it was not present.
func (r *Record) RemoveTag(tag string) bool {
	i := slices.Index(r.Tags, tag)
	if i < 0 {
		return false
	}
	r.Tags = slices.Delete(r.Tags, i, i+1)
	return true
}

// Clone returns a deep copy of the record.
func (r *Record) Clone() *Record {
	c := *r
	c.Tags = slices.Clone(r.Tags)
	return &c
}

// NormalizeTags trims every tag, drops blanks, and drops exact duplicates
// while keeping the first occurrence's position. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(out, tag) {
			continue
		}
		out = append(out, tag)
	}
	return out
}
