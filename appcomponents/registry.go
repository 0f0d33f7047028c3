// Package appcomponents holds the components served by nojs-ssr.
package appcomponents

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vcrobe/nojs-ssr/runtime"
)

// ErrUnknownComponent is returned by Lookup for names with no registered factory.
var ErrUnknownComponent = errors.New("appcomponents: unknown component")

// factories maps component names to constructors. Every lookup builds a
// fresh instance, so no state is shared between requests.
var factories = map[string]func() runtime.Component{
	"counter": func() runtime.Component {
		return &Counter{}
	},
	"greetings": func() runtime.Component {
		return &Greetings{}
	},
	"clicker": func() runtime.Component {
		return &Clicker{}
	},
}

// Lookup returns a new instance of the named component.
func Lookup(name string) (runtime.Component, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownComponent, name, Names())
	}
	return factory(), nil
}

// Names returns the registered component names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
