package texture

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Registry errors.
var (
	// ErrNoBackendAvailable is returned when no texture backend is registered.
	ErrNoBackendAvailable = errors.New("texture: no backend available")

	// ErrBackendNotRegistered is returned when opening an unknown backend.
	ErrBackendNotRegistered = errors.New("texture: backend not registered")
)

// Conventional backend names. Backends are free to register under any
// name, but using the conventional one lets Default pick them up in
// priority order.
const (
	// BackendWGPU is a backend built on gogpu/wgpu.
	BackendWGPU = "wgpu"

	// BackendGL is an OpenGL-based backend.
	BackendGL = "opengl"

	// BackendSoftware is a CPU-side backend, typically used in tests.
	BackendSoftware = "software"
)

// DeviceFactory opens a backend's texture device. Factories are
// invoked lazily, on Open or Default, so registration itself never
// touches the GPU.
type DeviceFactory func() (Device, error)

// registry holds registered texture backends.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]DeviceFactory)

	// Priority order for backend selection (first available wins).
	backendPriority = []string{BackendWGPU, BackendGL, BackendSoftware}
)

// Register registers a device factory under the given backend name.
// This is typically called from init() functions in backend packages.
// Registering a name twice replaces the earlier factory.
func Register(name string, factory DeviceFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := factories[name]; ok {
		Logger().Warn("texture backend replaced", "backend", name)
	}
	factories[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Open opens the device of the named backend.
func Open(name string) (Device, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBackendNotRegistered, name)
	}
	dev, err := factory()
	if err != nil {
		return nil, WrapBackendError(name, err)
	}
	return dev, nil
}

// Default opens the best available backend: conventional names in
// priority order (wgpu, opengl, software), then any other registered
// backend. A backend whose factory fails is skipped.
func Default() (Device, error) {
	for _, name := range candidateNames() {
		dev, err := Open(name)
		if err != nil {
			Logger().Warn("texture backend unavailable", "backend", name, "err", err)
			continue
		}
		Logger().Info("texture backend selected", "backend", name)
		return dev, nil
	}
	return nil, ErrNoBackendAvailable
}

// candidateNames returns registered backend names with the
// conventional priority names first.
func candidateNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	seen := make(map[string]bool, len(factories))
	for _, name := range backendPriority {
		if _, ok := factories[name]; ok {
			names = append(names, name)
			seen[name] = true
		}
	}
	rest := make([]string, 0, len(factories))
	for name := range factories {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}
