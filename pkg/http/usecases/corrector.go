package usecases

import (
	"github.com/fahmi-a-r/typo-corrector/pkg/bktree"
	"github.com/fahmi-a-r/typo-corrector/pkg/concurrent"

	"go.uber.org/zap"
)

type CorrectionQuery struct {
	Candidate    string
	MaxTolerance uint32
}

type CorrectionResult struct {
	Word         string                `json:"word"`
	Tolerance    uint32                `json:"tolerance"`
	Results      []bktree.SearchResult `json:"results"`
	Milliseconds int64                 `json:"milliseconds"`
}

type CorrectorService struct {
	log       *zap.Logger
	corrector Corrector
	workers   int
}

func New(log *zap.Logger, corrector Corrector, workers int) *CorrectorService {
	return &CorrectorService{
		log:       log,
		corrector: corrector,
		workers:   workers,
	}
}

// Correct answers a batch of sub-queries. The batch is fanned across the
// worker pool; the returned slice is index-aligned with the input.
func (s *CorrectorService) Correct(queries []CorrectionQuery) []CorrectionResult {
	pool := concurrent.NewWorkerPool(s.workers, len(queries),
		func(query CorrectionQuery) CorrectionResult {
			results, elapsed := s.corrector.Search(query.Candidate, query.MaxTolerance)
			return CorrectionResult{
				Word:         query.Candidate,
				Tolerance:    query.MaxTolerance,
				Results:      results,
				Milliseconds: elapsed,
			}
		})

	return pool.Process(queries)
}
