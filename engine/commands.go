package engine

import "github.com/plus3/minefx/fx"

// Commands buffers effect changes requested while systems run. They are
// applied after the last system so every system in a frame sees the same
// set of active effects.
type Commands struct {
	spawns  []spawnCommand
	cancels []fx.Handle
	defers  []func()
}

type spawnCommand struct {
	effect  fx.Effect
	spawned func(fx.Handle)
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues an effect. If spawned is non-nil it receives the handle once
// the effect is registered.
func (c *Commands) Spawn(effect fx.Effect, spawned ...func(fx.Handle)) {
	cmd := spawnCommand{effect: effect}
	if len(spawned) > 0 {
		cmd.spawned = spawned[0]
	}
	c.spawns = append(c.spawns, cmd)
}

// Cancel queues the release of a live effect.
func (c *Commands) Cancel(h fx.Handle) {
	c.cancels = append(c.cancels, h)
}

// Defer queues a function to run after spawns and cancels are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.spawns) + len(c.cancels) + len(c.defers)
}

// Flush applies cancels, then spawns, then deferred functions, and resets
// the buffer.
func (c *Commands) Flush(effects *fx.Manager) {
	for _, h := range c.cancels {
		effects.Cancel(h)
	}

	for _, cmd := range c.spawns {
		h := effects.Spawn(cmd.effect)
		if cmd.spawned != nil {
			cmd.spawned(h)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	clear(c.spawns)
	clear(c.defers)
	c.spawns = c.spawns[:0]
	c.cancels = c.cancels[:0]
	c.defers = c.defers[:0]
}
