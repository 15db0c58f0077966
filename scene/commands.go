package scene

// Commands buffers structural scene changes requested during a tick. They
// are applied after every system has run so iteration never sees a
// collection that changes underneath it.
type Commands struct {
	spawns      []Object
	removes     []Handle
	removeNames []string
	defers      []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues obj to be added to the scene
func (c *Commands) Spawn(obj Object) {
	c.spawns = append(c.spawns, obj)
}

// Remove queues removal of the entity behind h
func (c *Commands) Remove(h Handle) {
	c.removes = append(c.removes, h)
}

// RemoveNamed queues removal of the first entity with the given name
func (c *Commands) RemoveNamed(name string) {
	c.removeNames = append(c.removeNames, name)
}

// Defer queues fn to run after structural changes are applied
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending returns the number of queued operations
func (c *Commands) Pending() int {
	return len(c.spawns) + len(c.removes) + len(c.removeNames) + len(c.defers)
}

// Flush applies all queued operations to s and resets the buffer. Removals
// run before spawns, deferred functions run last. Operations queued while
// flushing are kept for the next flush.
func (c *Commands) Flush(s *Scene) {
	removes, removeNames, spawns, defers := c.removes, c.removeNames, c.spawns, c.defers
	c.removes, c.removeNames, c.spawns, c.defers = nil, nil, nil, nil

	for _, h := range removes {
		s.RemoveHandle(h)
	}

	for _, name := range removeNames {
		s.RemoveEntity(name)
	}

	for _, obj := range spawns {
		s.AddEntity(obj)
	}

	for _, fn := range defers {
		fn()
	}
}
