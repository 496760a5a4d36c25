package health

import (
	"context"
	"sort"
	"sync"
)

// Check probes one dependency.
type Check func(ctx context.Context) error

// Service encapsulates health-related checks.
type Service struct {
	checks map[string]Check
}

// NewService constructs a health service over named dependency checks.
func NewService(checks map[string]Check) *Service {
	return &Service{checks: checks}
}

// Status runs every check concurrently and reports each dependency as "ok" or
// its error text. ok is false if any check failed.
func (s *Service) Status(ctx context.Context) (map[string]string, bool) {
	if s == nil || len(s.checks) == 0 {
		return map[string]string{}, true
	}
	out := make(map[string]string, len(s.checks))

	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	results := make([]error, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, check Check) {
			defer wg.Done()
			results[i] = check(ctx)
		}(i, s.checks[name])
	}
	wg.Wait()

	healthy := true
	for i, name := range names {
		if results[i] != nil {
			healthy = false
			out[name] = results[i].Error()
			continue
		}
		out[name] = "ok"
	}
	return out, healthy
}
