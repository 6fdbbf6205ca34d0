package ranking

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-analyzer/internal/types"
)

// RankRepositories scores every repository against the requirements and
// returns the results sorted by descending score. Scoring is pure and
// shares no state, so repositories are scored concurrently; this is the
// intended parallelization point when ranking many repositories against one
// job.
func RankRepositories(ctx context.Context, repos []types.RepositorySummary, requirements types.JobRequirements) []types.RelevanceScore {
	scores := make([]types.RelevanceScore, len(repos))

	g, _ := errgroup.WithContext(ctx)
	for i, repo := range repos {
		g.Go(func() error {
			scores[i] = ScoreRepository(repo, requirements)
			return nil
		})
	}
	// Scoring never returns an error; Wait only synchronizes.
	_ = g.Wait()

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	return scores
}
