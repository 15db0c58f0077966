package scene_test

import (
	"testing"

	"github.com/plus3/pasture/scene"
	"github.com/stretchr/testify/assert"
)

// spawner queues structural changes from inside the tick
type spawner struct {
	scene.Entity
	fired bool
}

func (s *spawner) Update(frame *scene.Frame) {
	if s.fired {
		return
	}
	s.fired = true
	frame.Commands.Spawn(newMarker("child"))
	frame.Commands.RemoveNamed("victim")
}

func TestCommandsFlushOrder(t *testing.T) {
	sc := scene.New(scene.DefaultConfig(), scene.WithLogger(quietLogger()))
	h := sc.AddEntity(newMarker("old"))

	var log []string
	cmds := sc.Commands()
	cmds.Defer(func() {
		_, found := sc.FindEntity("new")
		log = append(log, "defer")
		assert.True(t, found, "deferred functions run after spawns")
		assert.Nil(t, sc.Get(h), "and after removals")
	})
	cmds.Spawn(newMarker("new"))
	cmds.Remove(h)
	assert.Equal(t, 3, cmds.Pending())

	cmds.Flush(sc)
	assert.Equal(t, []string{"defer"}, log)
	assert.Zero(t, cmds.Pending())
	assert.Equal(t, 1, sc.Len())
}

func TestCommandsFromUpdate(t *testing.T) {
	sc := scene.New(scene.DefaultConfig(), scene.WithLogger(quietLogger()))
	sc.AddEntity(&spawner{Entity: scene.NewEntity("spawner", scene.KindTree)})
	victim := newMarker("victim")
	sc.AddEntity(victim)

	sc.Update(0.016)

	assert.Equal(t, 1, victim.updates, "victim still updated during the tick that removed it")
	_, ok := sc.FindEntity("victim")
	assert.False(t, ok)
	child, ok := sc.FindEntity("child")
	assert.True(t, ok)
	assert.Zero(t, child.(*marker).updates, "spawned objects start updating next tick")

	sc.Update(0.016)
	assert.Equal(t, 1, child.(*marker).updates)
	assert.Zero(t, sc.Commands().Pending())
}

func TestCommandsQueuedDuringFlush(t *testing.T) {
	sc := scene.New(scene.DefaultConfig(), scene.WithLogger(quietLogger()))
	h := sc.AddEntity(newMarker("victim"))

	cmds := sc.Commands()
	cmds.Defer(func() {
		cmds.Remove(h)
		cmds.Defer(func() { cmds.Spawn(newMarker("late")) })
	})

	sc.Update(0.016)
	assert.NotNil(t, sc.Get(h), "removal queued by a deferred function waits for the next flush")
	assert.Equal(t, 2, cmds.Pending())

	sc.Update(0.016)
	assert.Nil(t, sc.Get(h))
	assert.Equal(t, 1, cmds.Pending())

	sc.Update(0.016)
	_, ok := sc.FindEntity("late")
	assert.True(t, ok)
	assert.Zero(t, cmds.Pending())
}
