package inject

import (
	"fmt"
	"strings"
)

// CyclicDependencyError is returned when resolution re-enters a constructor
// that is already under construction on the same chain. Chain holds the
// in-progress path, ending with the re-entrant constructor.
type CyclicDependencyError struct {
	Constructor AnyConstructor
	Chain       []AnyConstructor
	Status      string
}

func (e *CyclicDependencyError) Error() string {
	names := make([]string, len(e.Chain))
	for i, c := range e.Chain {
		names[i] = c.Name()
	}
	return fmt.Sprintf("cyclic dependency error constructing %s: %s",
		e.Constructor.Name(), strings.Join(names, " -> "))
}

// ConstructionError wraps a failure raised by a constructor's build
// function. The source error is preserved and reachable through Unwrap.
type ConstructionError struct {
	Constructor AnyConstructor
	Status      string
	SourceError error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("error running constructor: %s (%v)", e.Constructor.Name(), e.SourceError)
}

func (e *ConstructionError) Unwrap() error {
	return e.SourceError
}
