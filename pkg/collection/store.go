package collection

import (
	"io"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/figurines/internal/utils/atomicfile"
	"github.com/agentstation/figurines/pkg/errors"
	"github.com/agentstation/figurines/pkg/logging"
)

// Store is the in-memory collection backed by one JSON document.
type Store struct {
	path    string
	records []*Record
	now     func() time.Time
	logger  *zerolog.Logger
}

// NewStore creates an empty store for the document at path. Nothing is read
// until Load is called.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:   path,
		now:    time.Now,
		logger: logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory collection with the document's contents.
// A missing or blank document yields an empty collection. On any failure the
// collection is left empty and a *errors.PersistenceError is returned.
func (s *Store) Load() error {
	s.records = nil

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug().Str("path", s.path).Msg("collection document not found, starting empty")
			return nil
		}
		return errors.WrapPersistence("load", s.path, err)
	}

	records, err := decodeDocument(data, s.now)
	if err != nil {
		return errors.WrapPersistence("load", s.path, err)
	}

	for i, r := range records {
		for _, other := range records[:i] {
			if SameName(r.Name, other.Name) {
				s.logger.Warn().
					Int("record_id", r.ID).
					Str("record_name", r.Name).
					Int("conflicts_with", other.ID).
					Msg("collection document contains a duplicate name")
			}
		}
	}

	s.records = records
	s.logger.Debug().Str("path", s.path).Int("records", len(records)).Msg("collection loaded")
	return nil
}

// Save rewrites the whole document. The write goes to a temporary file in the
// same directory which then replaces the target, so a failed save never
// leaves a truncated document.
func (s *Store) Save() error {
	if err := atomicfile.Write(s.path, func(w io.Writer) error {
		return encodeJSON(w, s.records)
	}); err != nil {
		return errors.WrapPersistence("save", s.path, err)
	}
	s.logger.Debug().Str("path", s.path).Int("records", len(s.records)).Msg("collection saved")
	return nil
}

// Records returns the records in their current order. The slice is a copy;
// the records are shared.
func (s *Store) Records() []*Record {
	return slices.Clone(s.records)
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Get returns the record with the given id.
func (s *Store) Get(id int) (*Record, bool) {
	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// FindByName returns the record whose name matches, ignoring case.
func (s *Store) FindByName(name string) (*Record, bool) {
	key := foldName(name)
	for _, r := range s.records {
		if foldName(r.Name) == key {
			return r, true
		}
	}
	return nil, false
}

// Lookup resolves ref as an id first and then as a name.
func (s *Store) Lookup(ref string) (*Record, error) {
	if id, err := strconv.Atoi(strings.TrimSpace(ref)); err == nil {
		if r, ok := s.Get(id); ok {
			return r, nil
		}
	}
	if r, ok := s.FindByName(ref); ok {
		return r, nil
	}
	return nil, errors.NewNotFoundError("record", ref)
}

// NameExists reports whether any record carries name, ignoring case.
func (s *Store) NameExists(name string) bool {
	return s.NameTaken(name, nil)
}

// NameTaken reports whether a record other than except carries name,
// ignoring case.
func (s *Store) NameTaken(name string, except *Record) bool {
	key := foldName(name)
	for _, r := range s.records {
		if r != except && foldName(r.Name) == key {
			return true
		}
	}
	return false
}

func (s *Store) nextID() int {
	maxID := 0
	for _, r := range s.records {
		maxID = max(maxID, r.ID)
	}
	return maxID + 1
}

// Add appends a new record. The name is trimmed and must be non-empty and
// not already in use, ignoring case. Image paths are stored as given.
func (s *Store) Add(name, fullImage, thumbnail string, tags []string) (*Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("name", name, "name must not be empty")
	}
	if existing, ok := s.FindByName(name); ok {
		return nil, errors.NewDuplicateNameError(name, existing.Name)
	}

	r := &Record{
		ID:         s.nextID(),
		Name:       name,
		FullImage:  fullImage,
		Thumbnail:  thumbnail,
		Tags:       NormalizeTags(tags),
		ModifiedAt: s.now(),
	}
	s.records = append(s.records, r)
	return r, nil
}

// Field is a single field replacement applied by Update.
type Field func(*Record)

// SetName replaces the record's name, trimmed.
func SetName(name string) Field {
	return func(r *Record) {
		r.Name = strings.TrimSpace(name)
	}
}

// SetImages replaces both image paths.
func SetImages(fullImage, thumbnail string) Field {
	return func(r *Record) {
		r.FullImage = fullImage
		r.Thumbnail = thumbnail
	}
}

// SetTags replaces the tag list, normalized.
func SetTags(tags []string) Field {
	return func(r *Record) {
		r.Tags = NormalizeTags(tags)
	}
}

// Update applies fields to rec and refreshes its modification time. Name
// uniqueness is the caller's concern; see NameTaken.
func (s *Store) Update(rec *Record, fields ...Field) error {
	if !s.contains(rec) {
		return errors.NewNotFoundError("record", recordRef(rec))
	}
	for _, f := range fields {
		f(rec)
	}
	rec.ModifiedAt = s.now()
	return nil
}

// Remove deletes rec by identity. It returns false if rec is not a member.
func (s *Store) Remove(rec *Record) bool {
	i := slices.Index(s.records, rec)
	if i < 0 {
		return false
	}
	s.records = slices.Delete(s.records, i, i+1)
	return true
}

// Restore reinserts rec at index i, clamped to the collection bounds. It is
// used to roll back a Remove whose save failed.
func (s *Store) Restore(rec *Record, i int) {
	if s.contains(rec) {
		return
	}
	i = min(max(i, 0), len(s.records))
	s.records = slices.Insert(s.records, i, rec)
}

// IndexOf returns rec's position, or -1.
func (s *Store) IndexOf(rec *Record) int {
	return slices.Index(s.records, rec)
}

func (s *Store) contains(rec *Record) bool {
	return rec != nil && slices.Contains(s.records, rec)
}

func recordRef(rec *Record) string {
	if rec == nil {
		return "<nil>"
	}
	return strconv.Itoa(rec.ID)
}

// TagVocabulary returns every distinct tag across the collection sorted by
// byte order, so upper case sorts before lower case.
func (s *Store) TagVocabulary() []string {
	set := make(map[string]struct{})
	for _, r := range s.records {
		for _, t := range r.Tags {
			set[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// TagCounts returns how many records carry each tag.
func (s *Store) TagCounts() map[string]int {
	counts := make(map[string]int)
	for _, r := range s.records {
		for _, t := range r.Tags {
			counts[t]++
		}
	}
	return counts
}
