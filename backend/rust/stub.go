//go:build !rust

package rust

import "github.com/gogpu/yengine/backend"

// Without the rust tag the name is still registered, but its factory
// yields nil: backend.Get(backend.NameRust) returns nil and
// backend.Default moves on to the next backend in priority order.
func init() {
	backend.Register(backend.NameRust, func() backend.Backend { return nil })
}
