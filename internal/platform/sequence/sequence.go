// Package sequence issues prefixed, monotonically increasing record
// identifiers such as APT1000 or BIL9007.
package sequence

import (
	"fmt"
	"sync"
)

// Generator hands out identifiers of the form <prefix><n>, where n
// starts at the configured value and increases by one per call. Each
// registry owns its own Generator; there is no shared global counter.
type Generator struct {
	mu     sync.Mutex
	prefix string
	next   int64
}

// NewGenerator returns a Generator whose first identifier is
// <prefix><start>.
func NewGenerator(prefix string, start int64) *Generator {
	return &Generator{prefix: prefix, next: start}
}

// Next returns the next identifier in the sequence.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := fmt.Sprintf("%s%d", g.prefix, g.next)
	g.next++
	return id
}
