package usecases

import (
	"github.com/fahmi-a-r/typo-corrector/pkg/bktree"
)

type Corrector interface {
	Search(candidate string, tolerance uint32) ([]bktree.SearchResult, int64)
}
