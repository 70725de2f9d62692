// SPDX-License-Identifier: MIT

package systax

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/systax/atoms"
)

// ClassifyBatch classifies structures concurrently with at most workers
// goroutines (workers < 1 means unbounded). Results keep the input order.
// The first error cancels the remaining work and is returned.
func (c *Classifier) ClassifyBatch(ctx context.Context, structures []*atoms.Structure, workers int) ([]*Classification, error) {
	out := make([]*Classification, len(structures))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, s := range structures {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if s != nil {
				s = s.Clone()
			}
			res, err := c.Classify(s)
			if err != nil {
				return fmt.Errorf("%s: structure %d: %w", opBatch, i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
