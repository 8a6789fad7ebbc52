// ecsgen writes the fixed-arity query and group families of package ecs.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strconv"
	"strings"
	"text/template"
)

// Arity describes one member of the family.
type Arity struct {
	N int
}

// Seq returns 1..N.
func (a Arity) Seq() []int {
	out := make([]int, a.N)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// TypeParams renders "T1, T2, T3".
func (a Arity) TypeParams() string {
	return a.join("T%d", ", ")
}

// Tuple renders the instantiated tuple type, e.g. "Tuple2[E, T1, T2]".
func (a Arity) Tuple() string {
	return fmt.Sprintf("Tuple%d[E, %s]", a.N, a.TypeParams())
}

// Fields renders the tuple literal fields, e.g. "C1: v1, C2: v2".
func (a Arity) Fields() string {
	return a.join("C%[1]d: v%[1]d", ", ")
}

// Types renders the reflect.Type list used by groups.
func (a Arity) Types() string {
	return a.join("typeOf[T%d]()", ", ")
}

// Names renders "T1 and T2" or "T1, T2 and T3" for doc comments.
func (a Arity) Names() string {
	if a.N == 1 {
		return "T1"
	}
	head := make([]string, a.N-1)
	for i := range head {
		head[i] = "T" + strconv.Itoa(i+1)
	}
	return strings.Join(head, ", ") + " and T" + strconv.Itoa(a.N)
}

func (a Arity) join(pattern, sep string) string {
	parts := make([]string, a.N)
	for i := range parts {
		parts[i] = fmt.Sprintf(pattern, i+1)
	}
	return strings.Join(parts, sep)
}

const header = `// Code generated by ecsgen; DO NOT EDIT.

package ecs

import (
	"iter"
	"reflect"
)
`

var family = template.Must(template.New("family").Parse(`
// Tuple{{.N}} is one row of a {{.N}}-type query: the entity record and its
// components.
type Tuple{{.N}}[E Poolable, {{.TypeParams}} any] struct {
	Entity E
{{- range .Seq}}
	C{{.}} *T{{.}}
{{- end}}
}

// Find{{.N}} yields a Tuple{{.N}} for every alive entity holding {{.Names}}.
// The sequence is empty if any of the types was never registered.
func Find{{.N}}[{{.TypeParams}} any, E Poolable](c *Context[E]) iter.Seq[{{.Tuple}}] {
	return func(yield func({{.Tuple}}) bool) {
{{- range .Seq}}
		col{{.}}, ok := lookup[T{{.}}](c.registry)
		if !ok {
			return
		}
{{- end}}
		for _, id := range c.alive.ids {
			i := id.Index
{{- range .Seq}}
			v{{.}} := col{{.}}.cells[i]
			if v{{.}} == nil {
				continue
			}
{{- end}}
			if !yield({{.Tuple}}{Entity: c.pool.at(i), {{.Fields}}}) {
				return
			}
		}
	}
}

// FindByID{{.N}} returns the Tuple{{.N}} of id if id is valid and holds {{.Names}}.
func FindByID{{.N}}[{{.TypeParams}} any, E Poolable](c *Context[E], id Id) ({{.Tuple}}, bool) {
	if !c.pool.CheckValid(id) {
		return {{.Tuple}}{}, false
	}
{{- range .Seq}}
	v{{.}}, ok := componentAt[T{{.}}](c.registry, id.Index)
	if !ok {
		return {{$.Tuple}}{}, false
	}
{{- end}}
	return {{.Tuple}}{Entity: c.pool.at(id.Index), {{.Fields}}}, true
}

// NewGroup{{.N}} creates a Group of every alive entity holding {{.Names}}.
func NewGroup{{.N}}[{{.TypeParams}} any, E Poolable](c *Context[E]) *Group[{{.Tuple}}] {
	types := []reflect.Type{ {{- .Types -}} }
	return newGroup(c, types, func(id Id) ({{.Tuple}}, bool) {
		return FindByID{{.N}}[{{.TypeParams}}](c, id)
	})
}
`))

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: ecsgen <max-arity> <output.go>")
		os.Exit(1)
	}
	maxArity, err := strconv.Atoi(os.Args[1])
	if err != nil || maxArity < 1 {
		fmt.Fprintf(os.Stderr, "invalid arity %q\n", os.Args[1])
		os.Exit(1)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	for n := 1; n <= maxArity; n++ {
		if err := family.Execute(&buf, Arity{N: n}); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintln(os.Stderr, "gofmt:", err)
		os.Exit(1)
	}
	if err := os.WriteFile(os.Args[2], src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote arities 1..%d to %s\n", maxArity, os.Args[2])
}
