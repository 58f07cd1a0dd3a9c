package service

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDependencyFailed marks a service skipped because something it depends on did not start
var ErrDependencyFailed = errors.New("dependency not started")

// Hub owns service instances and their lifecycle
// Every registered service is optional: a failed start is reported and the rest keep going
type Hub struct {
	mu       sync.RWMutex
	services map[string]Service
	order    []string // registration order, keeps the sort stable
	started  []string // Services that completed Start(), in start order
}

// NewHub creates an empty service hub
func NewHub() *Hub {
	return &Hub{
		services: make(map[string]Service),
	}
}

// Register adds a service instance to the hub
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("service already registered: %s", name)
	}

	h.services[name] = svc
	h.order = append(h.order, name)
	return nil
}

// Get retrieves a started service and casts to type T
func Get[T any](h *Hub, name string) (T, bool) {
	var zero T
	if !h.Started(name) {
		return zero, false
	}

	h.mu.RLock()
	svc := h.services[name]
	h.mu.RUnlock()

	typed, ok := svc.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// StartAll starts services in dependency order
// A service whose start fails, or whose dependency failed, is skipped
// The returned error joins every failure, nil if all started
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	sorted, err := h.topologicalSort()
	if err != nil {
		return err
	}

	h.started = nil
	up := make(map[string]bool, len(sorted))
	var errs []error

	for _, name := range sorted {
		svc := h.services[name]

		skipped := false
		for _, dep := range svc.Dependencies() {
			if !up[dep] {
				errs = append(errs, fmt.Errorf("service %s: %w: %s", name, ErrDependencyFailed, dep))
				skipped = true
				break
			}
		}
		if skipped {
			continue
		}

		if err := svc.Start(); err != nil {
			errs = append(errs, fmt.Errorf("service %s start failed: %w", name, err))
			continue
		}
		up[name] = true
		h.started = append(h.started, name)
	}

	return errors.Join(errs...)
}

// StopAll calls Stop on all started services in reverse start order
// Every service gets Stop called, errors are joined
func (h *Hub) StopAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var errs []error
	for i := len(h.started) - 1; i >= 0; i-- {
		name := h.started[i]
		if err := h.services[name].Stop(); err != nil {
			errs = append(errs, fmt.Errorf("service %s stop failed: %w", name, err))
		}
	}
	h.started = nil
	return errors.Join(errs...)
}

// Started reports whether name completed Start and has not been stopped
func (h *Hub) Started(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, n := range h.started {
		if n == name {
			return true
		}
	}
	return false
}

// topologicalSort computes start order using Kahn's algorithm
// Returns error if a dependency is unregistered or circular
func (h *Hub) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(h.services))
	dependents := make(map[string][]string) // dep -> services that depend on it

	for _, name := range h.order {
		inDegree[name] = 0
	}

	for _, name := range h.order {
		for _, dep := range h.services[name].Dependencies() {
			if _, exists := h.services[dep]; !exists {
				return nil, fmt.Errorf("service %s depends on unregistered service: %s", name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var queue []string
	for _, name := range h.order {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	var result []string
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		result = append(result, name)

		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(result) != len(h.services) {
		return nil, fmt.Errorf("circular dependency detected in services")
	}

	return result, nil
}
