package history

import (
	"math/rand"
	"strings"
	"time"

	"github.com/commait/commait/internal/git"
)

// recordSeparator splits git log output formatted as subject+body records.
const recordSeparator = "\n\n"

// minMessageLength filters out trivial messages; anything this short
// carries no style worth imitating.
const minMessageLength = 30

// Sampler draws example commit messages from the repository history.
// The random source is injectable so tests can fix the selection.
type Sampler struct {
	Rand *rand.Rand
}

// NewSampler returns a sampler seeded from the current time.
func NewSampler() *Sampler {
	return &Sampler{Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// Recent returns up to n cleaned messages from the most recent lookback
// commits. Recency bias keeps the examples close to the current idiom.
// Any git failure yields an empty result rather than an error.
func (s *Sampler) Recent(n, lookback int) []string {
	output, err := git.RecentLog(lookback)
	if err != nil {
		return nil
	}
	good := goodCommits(output)
	if len(good) > n {
		good = good[:n]
	}
	return good
}

// Random returns a uniformly random, repeat-free selection of up to
// sampleSize cleaned messages drawn from a pool of poolSize older commits.
// The pool skips the newest skip commits so it cannot overlap with Recent.
// Any git failure yields an empty result rather than an error.
func (s *Sampler) Random(sampleSize, poolSize, skip int) []string {
	output, err := git.SkipLog(skip, poolSize)
	if err != nil {
		return nil
	}
	good := goodCommits(output)
	if sampleSize > len(good) {
		sampleSize = len(good)
	}
	picked := make([]string, 0, sampleSize)
	for _, i := range s.rand().Perm(len(good))[:sampleSize] {
		picked = append(picked, good[i])
	}
	return picked
}

// rand lazily seeds a source so a zero-value Sampler is usable.
func (s *Sampler) rand() *rand.Rand {
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s.Rand
}

// goodCommits splits log output into records, drops short and merge
// messages, and cleans the survivors.
func goodCommits(logOutput string) []string {
	var good []string
	for _, record := range strings.Split(logOutput, recordSeparator) {
		trimmed := strings.TrimSpace(record)
		if len(trimmed) <= minMessageLength {
			continue
		}
		if strings.HasPrefix(strings.ToLower(trimmed), "merge") {
			continue
		}
		good = append(good, Clean(record))
	}
	return good
}
