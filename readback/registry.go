// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package readback

import (
	"sort"
	"sync"
)

var (
	registryMu sync.RWMutex
	strategies = make(map[string]Strategy)

	// defectPlatforms lists GOOS values whose OpenGL drivers are known to
	// return distorted planes for multi-row depth reads. macOS shows the
	// defect on HiDPI framebuffers when multisampling is requested; the
	// root cause has not been isolated, so the whole platform is listed.
	defectPlatforms = map[string]bool{
		"darwin": true,
	}
)

// StrategyNotFoundError indicates a named strategy is not registered.
type StrategyNotFoundError struct {
	Name string
}

func (e *StrategyNotFoundError) Error() string {
	return "readback: strategy not found: " + e.Name
}

// Register adds a strategy to the registry under its own name.
// Registering a name that already exists replaces the previous entry.
func Register(s Strategy) {
	registryMu.Lock()
	defer registryMu.Unlock()
	strategies[s.Name()] = s
}

// Get returns the strategy registered under name.
func Get(name string) (Strategy, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	s, ok := strategies[name]
	if !ok {
		return nil, &StrategyNotFoundError{Name: name}
	}
	return s, nil
}

// Available returns all registered strategy names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForPlatform returns the strategy to use on the given GOOS: ColumnWise
// for platforms on the known-defect list, Bulk otherwise.
func ForPlatform(goos string) Strategy {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if defectPlatforms[goos] {
		return ColumnWise{}
	}
	return Bulk{}
}

// PlatformDefective reports whether goos is on the known-defect list.
func PlatformDefective(goos string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return defectPlatforms[goos]
}

// SetPlatformDefect adds or removes a GOOS entry on the known-defect list.
// Use it to force the workaround on (or off) when a driver update changes
// the platform's behavior.
func SetPlatformDefect(goos string, defective bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if defective {
		defectPlatforms[goos] = true
	} else {
		delete(defectPlatforms, goos)
	}
}

// init registers the built-in strategies.
func init() {
	Register(Bulk{})
	Register(ColumnWise{})
}
