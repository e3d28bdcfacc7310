package collection

import (
	"io"
	"os"

	"github.com/agentstation/figurines/internal/utils/atomicfile"
	"github.com/agentstation/figurines/pkg/errors"
	"github.com/agentstation/figurines/pkg/save"
)

// Export writes the collection as JSON or YAML to the configured writer or
// path. With neither configured it writes to standard output.
func (s *Store) Export(opts ...save.Option) error {
	options := save.Defaults().Apply(opts...)
	if !options.Format().IsValid() {
		return errors.NewValidationError("format", options.Format(), "unsupported export format")
	}

	encode := func(w io.Writer) error {
		if options.Format() == save.FormatYAML {
			return encodeYAML(w, s.records)
		}
		return encodeJSON(w, s.records)
	}

	switch {
	case options.Writer() != nil:
		if err := encode(options.Writer()); err != nil {
			return errors.WrapPersistence("export", "", err)
		}
	case options.Path() != "":
		if err := atomicfile.Write(options.Path(), encode); err != nil {
			return errors.WrapPersistence("export", options.Path(), err)
		}
	default:
		if err := encode(os.Stdout); err != nil {
			return errors.WrapPersistence("export", "", err)
		}
	}
	return nil
}
