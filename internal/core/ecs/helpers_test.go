package ecs_test

import "github.com/sdg/ecscore/internal/core/ecs"

type position struct{ X, Y float64 }

type transform struct{ Rotation, Scale float64 }

type sprite struct{ Name string }

type tag struct{ Name string }

type unused struct{}

// spawn creates an entity holding the given components, without flushing.
func spawn(c *ecs.EntityContext, comps ...any) *ecs.Entity {
	e := c.CreateEntity()
	for _, v := range comps {
		switch v := v.(type) {
		case *position:
			ecs.Attach(e, v)
		case *transform:
			ecs.Attach(e, v)
		case *sprite:
			ecs.Attach(e, v)
		case *tag:
			ecs.Attach(e, v)
		}
	}
	return e
}
