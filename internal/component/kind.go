package component

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sdg/ecscore/internal/core/ecs"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind = errors.New("component: unknown kind")
	ErrRejected    = errors.New("component: add rejected")
)

// Kind binds a data-file name ("position", "sprite", ...) to a component type
// so workloads and scripts can attach components without knowing Go types.
type Kind struct {
	name   string
	attach func(c *ecs.EntityContext, id ecs.Id, node *yaml.Node) error
	detach func(c *ecs.EntityContext, id ecs.Id) bool
	has    func(c *ecs.EntityContext, id ecs.Id) bool
}

func (k Kind) Name() string { return k.name }

func kindOf[T any](name string) Kind {
	return Kind{
		name: name,
		attach: func(c *ecs.EntityContext, id ecs.Id, node *yaml.Node) error {
			v := new(T)
			if node != nil {
				if err := node.Decode(v); err != nil {
					return fmt.Errorf("decode %s: %w", name, err)
				}
			}
			if !ecs.AddComponent(c, id, v) {
				return fmt.Errorf("%w: %s on %v", ErrRejected, name, id)
			}
			return nil
		},
		detach: func(c *ecs.EntityContext, id ecs.Id) bool {
			return ecs.RemoveComponent[T](c, id)
		},
		has: func(c *ecs.EntityContext, id ecs.Id) bool {
			return ecs.HasComponent[T](c, id)
		},
	}
}

var kinds = map[string]Kind{
	"position":  kindOf[Position]("position"),
	"transform": kindOf[Transform]("transform"),
	"sprite":    kindOf[Sprite]("sprite"),
	"tag":       kindOf[Tag]("tag"),
}

// Lookup returns the kind registered under name.
func Lookup(name string) (Kind, error) {
	k, ok := kinds[name]
	if !ok {
		return Kind{}, fmt.Errorf("%w %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Kinds returns the registered kind names, sorted.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Attach decodes node into a new component of the named kind and adds it to
// id. A nil node attaches the zero value.
func Attach(c *ecs.EntityContext, id ecs.Id, name string, node *yaml.Node) error {
	k, err := Lookup(name)
	if err != nil {
		return err
	}
	return k.attach(c, id, node)
}

// AttachValue is Attach for already-decoded data such as a map built from a
// Lua table. The value goes through a YAML node so field names and tags match
// the data files.
func AttachValue(c *ecs.EntityContext, id ecs.Id, name string, v any) error {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	return Attach(c, id, name, &node)
}

// Detach removes the named kind from id.
func Detach(c *ecs.EntityContext, id ecs.Id, name string) (bool, error) {
	k, err := Lookup(name)
	if err != nil {
		return false, err
	}
	return k.detach(c, id), nil
}

// Has reports whether id holds the named kind.
func Has(c *ecs.EntityContext, id ecs.Id, name string) (bool, error) {
	k, err := Lookup(name)
	if err != nil {
		return false, err
	}
	return k.has(c, id), nil
}
