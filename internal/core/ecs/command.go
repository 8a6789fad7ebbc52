package ecs

type commandKind uint8

const (
	cmdCreateEntity commandKind = iota
	cmdDestroyEntity
	cmdComponentAdded
	cmdComponentRemoved
)

// command is a deferred visibility change, applied by Context.ApplyChanges.
type command struct {
	kind      commandKind
	id        Id
	typeIndex int
}

// commandQueue accumulates commands between flushes.
type commandQueue struct {
	commands []command
}

func (q *commandQueue) len() int { return len(q.commands) }

func (q *commandQueue) push(cmd command) {
	q.commands = append(q.commands, cmd)
}

// reset empties the queue but keeps its backing array for the next frame.
func (q *commandQueue) reset() {
	q.commands = q.commands[:0]
}
