// Package duel orchestrates comparison rounds: it selects the items that
// compete, and applies the round's outcome to their ratings using the rating
// engine and the staleness decay policy.
package duel

import (
	"math/rand"
	"sort"
	"time"

	"github.com/awender/ranklit/internal/constants"
	"github.com/awender/ranklit/internal/models"
	"github.com/awender/ranklit/internal/rating"
)

// Round is a single comparison event between two or more items.
type Round struct {
	Items []models.Item
	Mode  constants.DuelMode
}

// Engine runs duel rounds under a configuration and a decay policy.
type Engine struct {
	cfg     models.DuelConfiguration
	policy  rating.DecayPolicy
	kFactor float64
	rng     *rand.Rand
}

// NewEngine creates a duel engine. The rng seed is taken from the clock; tests
// can use NewEngineWithSeed for deterministic selection.
func NewEngine(cfg models.DuelConfiguration, policy rating.DecayPolicy, kFactor float64) *Engine {
	return NewEngineWithSeed(cfg, policy, kFactor, time.Now().UnixNano())
}

// NewEngineWithSeed creates a duel engine with a fixed selection seed.
func NewEngineWithSeed(cfg models.DuelConfiguration, policy rating.DecayPolicy, kFactor float64, seed int64) *Engine {
	return &Engine{
		cfg:     cfg,
		policy:  policy,
		kFactor: kFactor,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Config returns the engine's duel configuration.
func (e *Engine) Config() models.DuelConfiguration {
	return e.cfg
}

// SelectRound picks the items for the next round. Stale items (higher decay
// multiplier) are weighted to appear more often, so rarely-shown items cycle
// back into rotation. Fewer than two candidates means no round can be formed.
func (e *Engine) SelectRound(candidates []models.Item, now time.Time) (Round, bool) {
	if len(candidates) < constants.MinItemsPerRound {
		return Round{}, false
	}

	n := e.cfg.ItemsPerRound
	if n > len(candidates) {
		n = len(candidates)
	}

	pool := make([]models.Item, len(candidates))
	copy(pool, candidates)

	selected := make([]models.Item, 0, n)
	for len(selected) < n {
		idx := e.weightedPick(pool, now)
		selected = append(selected, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}

	return Round{Items: selected, Mode: e.cfg.Mode}, true
}

// weightedPick draws one index from the pool with probability proportional to
// each item's staleness multiplier.
func (e *Engine) weightedPick(pool []models.Item, now time.Time) int {
	total := 0.0
	weights := make([]float64, len(pool))
	for i, item := range pool {
		w := e.policy.MultiplierFor(item.LastSelectedAt, now)
		weights[i] = w
		total += w
	}

	target := e.rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if target < acc {
			return i
		}
	}
	return len(pool) - 1
}

// ApplySingleWinner updates ratings after a single-winner round: the winner
// duels each loser once. The decay multiplier of each participant scales its
// own rating delta, so stale items move faster. Returns the updated items in
// the input order; inputs are not mutated.
func (e *Engine) ApplySingleWinner(items []models.Item, winnerID string, now time.Time) []models.Item {
	updated := cloneItems(items)

	winner := findItem(updated, winnerID)
	if winner < 0 {
		return updated
	}

	for i := range updated {
		if i == winner {
			continue
		}
		winnerRating := rating.Value(updated[winner].Rating)
		loserRating := rating.Value(updated[i].Rating)

		winnerK := e.kFactor * e.policy.MultiplierFor(items[winner].LastSelectedAt, now)
		loserK := e.kFactor * e.policy.MultiplierFor(items[i].LastSelectedAt, now)

		updated[winner].Rating = rating.ApplyOutcome(winnerRating, loserRating, true, winnerK).Float64()
		updated[i].Rating = rating.ApplyOutcome(loserRating, winnerRating, false, loserK).Float64()
	}

	touchParticipants(updated, now)
	return updated
}

// ApplyFullRanking updates ratings after a full-ranking round. rankedIDs lists
// every participant from best to worst; each ordered pair counts as one duel
// won by the higher-ranked item. Returns the updated items in the input order.
func (e *Engine) ApplyFullRanking(items []models.Item, rankedIDs []string, now time.Time) []models.Item {
	updated := cloneItems(items)

	for hi := 0; hi < len(rankedIDs); hi++ {
		for lo := hi + 1; lo < len(rankedIDs); lo++ {
			w := findItem(updated, rankedIDs[hi])
			l := findItem(updated, rankedIDs[lo])
			if w < 0 || l < 0 {
				continue
			}

			winnerRating := rating.Value(updated[w].Rating)
			loserRating := rating.Value(updated[l].Rating)

			winnerK := e.kFactor * e.policy.MultiplierFor(items[w].LastSelectedAt, now)
			loserK := e.kFactor * e.policy.MultiplierFor(items[l].LastSelectedAt, now)

			updated[w].Rating = rating.ApplyOutcome(winnerRating, loserRating, true, winnerK).Float64()
			updated[l].Rating = rating.ApplyOutcome(loserRating, winnerRating, false, loserK).Float64()
		}
	}

	touchParticipants(updated, now)
	return updated
}

// RankByRating returns the items ordered by descending rating. Ties keep the
// input order.
func RankByRating(items []models.Item) []models.Item {
	ranked := cloneItems(items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Rating > ranked[j].Rating
	})
	return ranked
}

func cloneItems(items []models.Item) []models.Item {
	out := make([]models.Item, len(items))
	copy(out, items)
	return out
}

func findItem(items []models.Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func touchParticipants(items []models.Item, now time.Time) {
	for i := range items {
		t := now
		items[i].LastSelectedAt = &t
		items[i].DuelCount++
	}
}
