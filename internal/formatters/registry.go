package formatters

import (
	"fmt"
	"sort"

	"github.com/docprep-labs/ragprep-cli/internal/core/domain"
	"github.com/docprep-labs/ragprep-cli/internal/core/ports/driven"
)

// DefaultFormat is the format used when none is configured.
const DefaultFormat = "txt"

// builders maps format names to constructors.
var builders = map[string]func() driven.Formatter{
	"txt":  func() driven.Formatter { return NewText() },
	"json": func() driven.Formatter { return NewJSON() },
	"csv":  func() driven.Formatter { return NewCSV() },
}

// New creates a formatter by name.
// Returns domain.ErrUnknownFormat for unregistered names.
func New(name string) (driven.Formatter, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownFormat, name)
	}
	return builder(), nil
}

// Names returns all registered format names, sorted.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
