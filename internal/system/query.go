package system

import (
	"time"

	"github.com/sdg/ecscore/internal/component"
	"github.com/sdg/ecscore/internal/core/ecs"
	coresys "github.com/sdg/ecscore/internal/core/system"
)

// QuerySystem walks Tag+Position+Sprite with a full query every frame and
// nudges each position, the way a naive renderer would.
// Phase 1 (Update).
type QuerySystem struct {
	ctx   *ecs.EntityContext
	stats Stats
}

func NewQuerySystem(ctx *ecs.EntityContext) *QuerySystem {
	return &QuerySystem{ctx: ctx, stats: Stats{Name: "query"}}
}

func (s *QuerySystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *QuerySystem) Update(_ time.Duration) {
	start := time.Now()
	count := 0
	for row := range ecs.Find3[component.Tag, component.Position, component.Sprite](s.ctx) {
		count++
		row.C2.X += count
	}
	s.stats.record(count, time.Since(start))
}

func (s *QuerySystem) Stats() *Stats { return &s.stats }
