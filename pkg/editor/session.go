// Package editor holds the state behind a record form for graphical or
// terminal front-ends built on figurines: the record being edited, whether the
// form accepts input, the pending image and the status line. A front-end
// renders from a Session and routes user actions to it.
//
//	c, _ := figurines.New(figurines.WithRoot(dir))
//	s := editor.New(c)
//	s.NewRecord()
//	s.ChooseImage("/photos/gandalf.png")
//	err := s.Save(editor.Form{Name: "Gandalf", Tags: []string{"wizard"}})
package editor

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/agentstation/figurines"
	"github.com/agentstation/figurines/pkg/collection"
	"github.com/agentstation/figurines/pkg/errors"
)

// Service is the subset of the figurines client used by a Session.
type Service interface {
	Records() []*collection.Record
	Tags() []string
	Sort(c collection.SortCriterion)
	Create(name, sourceImage string, tags []string) (*collection.Record, error)
	Edit(id int, name, sourceImage string, tags []string) (*collection.Record, error)
	Delete(id int) (*collection.Record, error)
}

var _ Service = figurines.Client(nil)

// Status lines.
const (
	StatusReady     = "Ready"
	StatusNew       = "Creating a new record"
	StatusCancelled = "Edit cancelled"
)

// Form is the editable content of the record form.
type Form struct {
	Name string
	Tags []string
}

// AddTag appends a trimmed tag unless it is blank or already present.
func (f *Form) AddTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	if tag == "" || slices.Contains(f.Tags, tag) {
		return false
	}
	f.Tags = append(f.Tags, tag)
	return true
}

// RemoveTag deletes the tag at index i.
func (f *Form) RemoveTag(i int) bool {
	if i < 0 || i >= len(f.Tags) {
		return false
	}
	f.Tags = slices.Delete(f.Tags, i, i+1)
	return true
}

// Session is the form state machine. It is driven from a single UI thread.
type Session struct {
	svc     Service
	current *collection.Record
	form    Form
	image   string
	enabled bool
	status  string
}

// New returns a session with the form disabled and nothing selected.
func New(svc Service) *Session {
	return &Session{svc: svc, status: StatusReady}
}

// Current returns the record being edited, or nil for a new record or an
// idle form.
func (s *Session) Current() *collection.Record { return s.current }

// Enabled reports whether the form accepts input.
func (s *Session) Enabled() bool { return s.enabled }

// Status returns the status line.
func (s *Session) Status() string { return s.status }

// SelectedImage returns the newly chosen source image, if any.
func (s *Session) SelectedImage() string { return s.image }

// Preview returns the image to show in the form: the chosen source image, or
// else the current record's stored image.
func (s *Session) Preview() string {
	if s.image != "" {
		return s.image
	}
	if s.current != nil {
		return s.current.FullImage
	}
	return ""
}

// Form returns a copy of the form contents.
func (s *Session) Form() Form {
	return Form{Name: s.form.Name, Tags: slices.Clone(s.form.Tags)}
}

// Names returns the record names in list order.
func (s *Session) Names() []string {
	records := s.svc.Records()
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}

// TagSuggestions returns the tag vocabulary for the tag entry.
func (s *Session) TagSuggestions() []string {
	return s.svc.Tags()
}

// NewRecord clears the form and enables it for a new record.
func (s *Session) NewRecord() {
	s.reset()
	s.enabled = true
	s.status = StatusNew
}

// Select loads the record at index of the list into the form.
func (s *Session) Select(index int) error {
	records := s.svc.Records()
	if index < 0 || index >= len(records) {
		return errors.NewNotFoundError("record at index", fmt.Sprint(index))
	}
	r := records[index]
	s.current = r
	s.form = Form{Name: r.Name, Tags: slices.Clone(r.Tags)}
	s.image = ""
	s.enabled = true
	s.status = fmt.Sprintf("Editing %q", r.Name)
	return nil
}

// ChooseImage records a newly selected source image for the next Save.
func (s *Session) ChooseImage(path string) {
	if path == "" {
		return
	}
	s.image = path
	s.status = fmt.Sprintf("Image selected: %s", filepath.Base(path))
}

// Save creates or updates a record from form. On success the form is cleared
// and disabled. On failure the state is kept and the status shows the error.
func (s *Session) Save(form Form) error {
	if !s.enabled {
		return errors.NewValidationError("form", nil, "no record is being edited")
	}

	var (
		rec *collection.Record
		err error
	)
	if s.current == nil {
		rec, err = s.svc.Create(form.Name, s.image, form.Tags)
	} else {
		rec, err = s.svc.Edit(s.current.ID, form.Name, s.image, form.Tags)
	}
	if err != nil {
		s.form = Form{Name: form.Name, Tags: slices.Clone(form.Tags)}
		s.status = "Error: " + err.Error()
		return err
	}

	if s.current == nil {
		s.status = fmt.Sprintf("Created %q", rec.Name)
	} else {
		s.status = fmt.Sprintf("Updated %q", rec.Name)
	}
	s.reset()
	return nil
}

// Delete removes the record being edited. With no record selected it does
// nothing.
func (s *Session) Delete() error {
	if s.current == nil {
		return nil
	}
	rec, err := s.svc.Delete(s.current.ID)
	if err != nil {
		s.status = "Error: " + err.Error()
		return err
	}
	s.reset()
	s.status = fmt.Sprintf("Deleted %q", rec.Name)
	return nil
}

// Cancel abandons the edit.
func (s *Session) Cancel() {
	s.reset()
	s.status = StatusCancelled
}

// Sort reorders the list by a criterion name or display label.
func (s *Session) Sort(label string) error {
	c, err := collection.ParseSortCriterion(label)
	if err != nil {
		return errors.WrapValidation("sort", err)
	}
	s.svc.Sort(c)
	return nil
}

// SortLabels returns the display labels for the sort selector.
func SortLabels() []string {
	criteria := collection.SortCriteria()
	labels := make([]string, len(criteria))
	for i, c := range criteria {
		labels[i] = c.Label()
	}
	return labels
}

func (s *Session) reset() {
	s.current = nil
	s.form = Form{}
	s.image = ""
	s.enabled = false
}
