package query

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Job is one template and its arguments.
type Job struct {
	Template string
	Args     []any
}

// BuildAll renders jobs concurrently, at most limit at a time (unbounded when
// limit <= 0). Results keep the order of jobs. The first failure cancels the
// jobs not started yet and is returned.
func (b *Builder) BuildAll(ctx context.Context, jobs []Job, limit int) ([]string, error) {
	out := make([]string, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s, err := b.Build(job.Template, job.Args...)
			if err != nil {
				return fmt.Errorf("job %d: %w", i, err)
			}
			out[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
