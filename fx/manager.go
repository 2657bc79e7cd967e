package fx

import (
	"io"
	"iter"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
)

// Handle identifies a spawned effect. The zero Handle is never issued.
type Handle uint64

// ManagerStats counts effects over the manager's lifetime.
type ManagerStats struct {
	Active    int
	Spawned   int64
	Finished  int64
	Cancelled int64
}

// Manager owns the flat list of active effects. Each Update steps every
// effect once in spawn order and releases the ones that report completion.
//
// Effects spawned while Update is running are queued and join the active
// list after the pass, so they are first stepped on the following frame.
type Manager struct {
	effects  *intmap.Map[Handle, Effect]
	order    []Handle
	pending  []Handle
	next     Handle
	updating bool
	stats    ManagerStats
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{
		effects: intmap.New[Handle, Effect](64),
	}
}

// Spawn registers an effect and returns its handle.
func (m *Manager) Spawn(e Effect) Handle {
	m.next++
	h := m.next
	m.effects.Put(h, e)
	m.stats.Spawned++

	if m.updating {
		m.pending = append(m.pending, h)
	} else {
		m.order = append(m.order, h)
	}
	return h
}

// Active reports whether h refers to a live effect.
func (m *Manager) Active(h Handle) bool {
	_, ok := m.effects.Get(h)
	return ok
}

// Cancel releases a live effect before it finishes. Returns false if h is
// not live.
func (m *Manager) Cancel(h Handle) bool {
	e, ok := m.effects.Get(h)
	if !ok {
		return false
	}
	m.release(h, e)
	m.stats.Cancelled++
	return true
}

// Update steps every active effect once and removes finished ones.
func (m *Manager) Update(dt float64) {
	m.updating = true

	all := m.order
	kept := all[:0]
	for _, h := range all {
		e, ok := m.effects.Get(h)
		if !ok {
			continue
		}
		if e.Update(dt) {
			m.release(h, e)
			m.stats.Finished++
			continue
		}
		kept = append(kept, h)
	}
	clear(all[len(kept):])

	m.order = append(kept, m.pending...)
	m.pending = m.pending[:0]
	m.updating = false
}

// Draw renders active effects in spawn order.
func (m *Manager) Draw(screen *ebiten.Image) {
	for _, h := range m.order {
		if e, ok := m.effects.Get(h); ok {
			e.Draw(screen)
		}
	}
}

// Clear releases every effect, including queued ones.
func (m *Manager) Clear() {
	for _, list := range [][]Handle{m.order, m.pending} {
		for _, h := range list {
			if e, ok := m.effects.Get(h); ok {
				m.release(h, e)
			}
		}
	}
	m.order = m.order[:0]
	m.pending = m.pending[:0]
}

// All yields live effects in spawn order, queued ones last.
func (m *Manager) All() iter.Seq2[Handle, Effect] {
	return func(yield func(Handle, Effect) bool) {
		for _, list := range [][]Handle{m.order, m.pending} {
			for _, h := range list {
				e, ok := m.effects.Get(h)
				if !ok {
					continue
				}
				if !yield(h, e) {
					return
				}
			}
		}
	}
}

// Len returns the number of live effects, queued ones included.
func (m *Manager) Len() int {
	return m.effects.Len()
}

// Stats returns lifetime counters.
func (m *Manager) Stats() ManagerStats {
	s := m.stats
	s.Active = m.effects.Len()
	return s
}

func (m *Manager) release(h Handle, e Effect) {
	m.effects.Del(h)
	if c, ok := e.(io.Closer); ok {
		// release failures have nowhere to go
		_ = c.Close()
	}
}
