package plan

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// PlanAll plans independent requests concurrently, at most
// Config.Parallelism at a time. Results are returned in request order. The
// first error cancels the requests that have not started yet.
func (p *Planner) PlanAll(ctx context.Context, names ...string) ([]InjectionPlan, error) {
	plans := make([]InjectionPlan, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Parallelism)

	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ip, err := p.Plan(name)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}

			plans[i] = ip

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return plans, nil
}
