package inject

import (
	"fmt"
	"sort"
	"strings"
)

// Status is a diagnostic tool that returns a string describing the state of
// the injector. The result is each constructor that is known about, and
// whether it has a cached singleton, a bound override, or both (in which
// case the binding shadows the cached value).
//
// Constructors that have never been resolved or bound are not known to the
// injector and do not appear.
func (in *Injector) Status() string {
	s := in.state
	s.lock.RLock()
	defer s.lock.RUnlock()

	lines := map[string]string{}
	for c := range s.instances {
		if _, bound := s.bindings[c]; bound {
			lines[c.Name()] = fmt.Sprintf("%s - cached value, shadowed by binding", c.Name())
		} else {
			lines[c.Name()] = fmt.Sprintf("%s - cached value", c.Name())
		}
	}
	for c := range s.bindings {
		if _, also := s.instances[c]; also {
			continue
		}
		lines[c.Name()] = fmt.Sprintf("%s - bound override", c.Name())
	}

	keys := make([]string, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := strings.Builder{}
	for _, k := range keys {
		if result.Len() > 0 {
			result.WriteString("\n")
		}
		result.WriteString(lines[k])
	}
	return result.String()
}
