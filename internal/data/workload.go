package data

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/sdg/ecscore/internal/component"
	"github.com/sdg/ecscore/internal/core/ecs"
	"gopkg.in/yaml.v3"
)

//go:embed workload.yaml
var defaultWorkload []byte

var (
	ErrEmptyWorkload = errors.New("workload: no patterns")
	ErrPatternCount  = errors.New("workload: pattern count must be positive")
	ErrPatternName   = errors.New("workload: duplicate pattern name")
)

// Pattern is one entity archetype and how many copies to spawn.
type Pattern struct {
	Name       string               `yaml:"name"`
	Count      int                  `yaml:"count"`
	Components map[string]yaml.Node `yaml:"components"`

	kinds []string // component names, sorted
}

// Workload is the list of patterns spawned into a context.
type Workload struct {
	Patterns []Pattern `yaml:"patterns"`
}

// LoadWorkload loads a workload YAML file.
func LoadWorkload(path string) (*Workload, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload: %w", err)
	}
	return ParseWorkload(raw)
}

// DefaultWorkload returns the built-in reference workload.
func DefaultWorkload() *Workload {
	w, err := ParseWorkload(defaultWorkload)
	if err != nil {
		panic(fmt.Sprintf("data: built-in workload: %v", err))
	}
	return w
}

// ParseWorkload decodes and validates workload YAML. Every component name
// must be a registered component kind.
func ParseWorkload(raw []byte) (*Workload, error) {
	var w Workload
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return nil, fmt.Errorf("parse workload: %w", err)
	}
	if len(w.Patterns) == 0 {
		return nil, ErrEmptyWorkload
	}
	seen := make(map[string]bool, len(w.Patterns))
	for i := range w.Patterns {
		p := &w.Patterns[i]
		if p.Count <= 0 {
			return nil, fmt.Errorf("%w: %s", ErrPatternCount, p.Name)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: %s", ErrPatternName, p.Name)
		}
		seen[p.Name] = true

		p.kinds = make([]string, 0, len(p.Components))
		for name := range p.Components {
			if _, err := component.Lookup(name); err != nil {
				return nil, fmt.Errorf("pattern %s: %w", p.Name, err)
			}
			p.kinds = append(p.kinds, name)
		}
		sort.Strings(p.kinds)
	}
	return &w, nil
}

// Total returns the number of entities the workload spawns.
func (w *Workload) Total() int {
	n := 0
	for _, p := range w.Patterns {
		n += p.Count
	}
	return n
}

// Pattern returns the pattern with the given name, or nil.
func (w *Workload) Pattern(name string) *Pattern {
	for i := range w.Patterns {
		if w.Patterns[i].Name == name {
			return &w.Patterns[i]
		}
	}
	return nil
}

// Spawn creates every entity of the workload, cycling through the patterns
// one entity at a time until each has spawned Count entities. Nothing is
// flushed; the caller applies the changes.
func (w *Workload) Spawn(c *ecs.EntityContext) (int, error) {
	remaining := make([]int, len(w.Patterns))
	for i, p := range w.Patterns {
		remaining[i] = p.Count
	}

	spawned := 0
	for left := w.Total(); left > 0; {
		for i := range w.Patterns {
			if remaining[i] == 0 {
				continue
			}
			if _, err := w.Patterns[i].Spawn(c); err != nil {
				return spawned, err
			}
			remaining[i]--
			spawned++
			left--
		}
	}
	return spawned, nil
}

// Spawn creates one entity of the pattern.
func (p *Pattern) Spawn(c *ecs.EntityContext) (*ecs.Entity, error) {
	e := c.CreateEntity()
	for _, name := range p.kinds {
		node := p.Components[name]
		if err := component.Attach(c, e.ID(), name, &node); err != nil {
			e.Destroy()
			return nil, fmt.Errorf("pattern %s: %w", p.Name, err)
		}
	}
	return e, nil
}
