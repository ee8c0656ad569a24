// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package platform

import (
	"errors"
	"sync"
)

// ErrNotAvailable is returned when a requested platform is not registered.
var ErrNotAvailable = errors.New("platform: not available")

// Factory creates a new platform instance.
type Factory func() Platform

// Platform identifiers known to the registry priority list.
const (
	NameDesktop  = "desktop"
	NameHeadless = "headless"
)

var (
	registryMu sync.RWMutex
	platforms  = make(map[string]Factory)
	// Priority order for platform selection (first available wins).
	platformPriority = []string{NameDesktop, NameHeadless}
)

// Register registers a platform factory under name.
// This is typically called from init() functions in platform packages.
// A platform registered twice under the same name is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	platforms[name] = factory
}

// Unregister removes a platform from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(platforms, name)
}

// Available returns the names of all registered platforms.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(platforms))
	for name := range platforms {
		names = append(names, name)
	}
	return names
}

// Get returns a platform by name, or nil if none is registered.
func Get(name string) Platform {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := platforms[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available platform.
// Returns nil if no platform is registered.
func Default() Platform {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range platformPriority {
		if factory, ok := platforms[name]; ok {
			if p := factory(); p != nil {
				return p
			}
		}
	}

	for _, factory := range platforms {
		if p := factory(); p != nil {
			return p
		}
	}

	return nil
}
