package system

import (
	"time"

	"github.com/sdg/ecscore/internal/component"
	"github.com/sdg/ecscore/internal/core/ecs"
	coresys "github.com/sdg/ecscore/internal/core/system"
)

// RenderGroup caches every entity drawn by the renderer.
type RenderGroup = ecs.Group[ecs.Tuple3[*ecs.Entity, component.Tag, component.Position, component.Sprite]]

// GroupSystem does the same work as QuerySystem through a RenderGroup.
// Phase 1 (Update).
type GroupSystem struct {
	group *RenderGroup
	stats Stats
}

// NewGroupSystem builds the group; Close must be called before the context is
// cleared.
func NewGroupSystem(ctx *ecs.EntityContext) *GroupSystem {
	return &GroupSystem{
		group: ecs.NewGroup3[component.Tag, component.Position, component.Sprite](ctx),
		stats: Stats{Name: "group"},
	}
}

func (s *GroupSystem) Phase() coresys.Phase { return coresys.PhaseUpdate }

func (s *GroupSystem) Update(_ time.Duration) {
	start := time.Now()
	count := 0
	for row := range s.group.All() {
		count++
		row.C2.Y += count
	}
	s.stats.record(count, time.Since(start))
}

func (s *GroupSystem) Group() *RenderGroup { return s.group }

func (s *GroupSystem) Stats() *Stats { return &s.stats }

func (s *GroupSystem) Close() { s.group.Dispose() }
