package config

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// maxParallelParses bounds concurrent file reads in Candidates.
const maxParallelParses = 4

// Candidate is one config file found in the store directory.
type Candidate struct {
	Path   string
	Config *Configuration // nil when Err is set
	Err    error
}

// Valid reports whether the candidate parsed cleanly.
func (c Candidate) Valid() bool {
	return c.Err == nil
}

// Candidates parses every file in the store directory that matches
// FilePattern. Parse failures are recorded per candidate rather than
// returned; the error result is reserved for listing failures and
// cancellation. Results are sorted by path.
func (s *Store) Candidates(ctx context.Context) ([]Candidate, error) {
	paths, err := s.matches()
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	results := make([]Candidate, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelParses)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg, err := s.read(path)
			results[i] = Candidate{Path: path, Config: cfg, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
