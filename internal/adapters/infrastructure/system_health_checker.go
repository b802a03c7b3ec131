package infrastructure

import (
	"context"

	"golang.org/x/sync/errgroup"

	"floodaware.app/internal/ports"
)

// SystemHealthChecker runs component checks concurrently and keys results by component
type SystemHealthChecker struct {
	checkers []ports.HealthChecker
}

func NewSystemHealthChecker(checkers ...ports.HealthChecker) *SystemHealthChecker {
	kept := make([]ports.HealthChecker, 0, len(checkers))
	for _, c := range checkers {
		if c != nil {
			kept = append(kept, c)
		}
	}
	return &SystemHealthChecker{checkers: kept}
}

func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	statuses := make([]ports.HealthStatus, len(s.checkers))

	// A failing component is reported in its status, never as a group error
	var g errgroup.Group
	for i, checker := range s.checkers {
		i, checker := i, checker
		g.Go(func() error {
			statuses[i] = checker.Check(ctx)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]ports.HealthStatus, len(statuses))
	for _, status := range statuses {
		results[status.Component] = status
	}
	return results
}
