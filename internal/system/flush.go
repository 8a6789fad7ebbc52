package system

import (
	"time"

	"github.com/sdg/ecscore/internal/core/ecs"
	coresys "github.com/sdg/ecscore/internal/core/system"
)

// FlushSystem applies the frame's queued entity commands at frame end.
// Phase 3 (Cleanup).
type FlushSystem struct {
	ctx   *ecs.EntityContext
	stats Stats
}

func NewFlushSystem(ctx *ecs.EntityContext) *FlushSystem {
	return &FlushSystem{ctx: ctx, stats: Stats{Name: "flush"}}
}

func (s *FlushSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *FlushSystem) Update(_ time.Duration) {
	start := time.Now()
	pending := s.ctx.PendingCommands()
	s.ctx.ApplyChanges()
	s.stats.record(pending, time.Since(start))
}

func (s *FlushSystem) Stats() *Stats { return &s.stats }
