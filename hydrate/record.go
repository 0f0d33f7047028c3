// Package hydrate recovers event bindings for server-rendered markup and
// synthesizes the browser script that re-attaches them after load.
package hydrate

import (
	"strconv"
	"sync/atomic"
)

// DefaultIDPrefix is the prefix of generated element identifiers.
const DefaultIDPrefix = "nano-el-"

// HandlerRecord is one recovered event binding. Records are built once per
// render pass and never mutated afterwards.
type HandlerRecord struct {
	ElementID     string // Generated element identifier, e.g. "nano-el-3"
	EventType     string // Lower-case event name without the "on" prefix
	HandlerSource string // Handler expression text, not yet a function
}

// IDCounter hands out element identifiers that are unique for the lifetime
// of the counter. It is safe for concurrent use and never resets.
type IDCounter struct {
	prefix string
	n      atomic.Uint64
}

// NewIDCounter creates a counter whose identifiers start at prefix+"1".
// An empty prefix selects DefaultIDPrefix.
func NewIDCounter(prefix string) *IDCounter {
	if prefix == "" {
		prefix = DefaultIDPrefix
	}
	return &IDCounter{prefix: prefix}
}

// Next returns the next identifier.
func (c *IDCounter) Next() string {
	return c.prefix + strconv.FormatUint(c.n.Add(1), 10)
}

// Issued reports how many identifiers have been handed out so far.
func (c *IDCounter) Issued() uint64 {
	return c.n.Load()
}
