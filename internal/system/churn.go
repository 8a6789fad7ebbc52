package system

import (
	"math/rand"
	"time"

	"github.com/sdg/ecscore/internal/core/ecs"
	coresys "github.com/sdg/ecscore/internal/core/system"
	"github.com/sdg/ecscore/internal/data"
	"go.uber.org/zap"
)

// ChurnSystem destroys a batch of random alive entities every frame and spawns
// the same number from the workload, so the alive count stays level while
// slots, generations and groups keep turning over.
// Phase 2 (PostUpdate).
type ChurnSystem struct {
	ctx      *ecs.EntityContext
	workload *data.Workload
	perFrame int
	rng      *rand.Rand
	log      *zap.Logger

	ids   []ecs.Id // scratch buffer, reused each frame
	next  int      // next workload pattern to respawn
	stats Stats
}

func NewChurnSystem(ctx *ecs.EntityContext, w *data.Workload, perFrame int, seed int64, log *zap.Logger) *ChurnSystem {
	return &ChurnSystem{
		ctx:      ctx,
		workload: w,
		perFrame: perFrame,
		rng:      rand.New(rand.NewSource(seed)),
		log:      log,
		stats:    Stats{Name: "churn"},
	}
}

func (s *ChurnSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *ChurnSystem) Update(_ time.Duration) {
	if s.perFrame == 0 {
		return
	}
	start := time.Now()

	s.ids = s.ids[:0]
	for id := range s.ctx.AliveIDs() {
		s.ids = append(s.ids, id)
	}
	n := min(s.perFrame, len(s.ids))
	// Partial Fisher-Yates: the first n entries become a random sample.
	for i := 0; i < n; i++ {
		j := i + s.rng.Intn(len(s.ids)-i)
		s.ids[i], s.ids[j] = s.ids[j], s.ids[i]
		s.ctx.DestroyEntity(s.ids[i])
	}

	for i := 0; i < n; i++ {
		p := &s.workload.Patterns[s.next]
		s.next = (s.next + 1) % len(s.workload.Patterns)
		if _, err := p.Spawn(s.ctx); err != nil {
			s.log.Error("respawn failed", zap.String("pattern", p.Name), zap.Error(err))
		}
	}
	s.stats.record(n, time.Since(start))
}

func (s *ChurnSystem) Stats() *Stats { return &s.stats }
