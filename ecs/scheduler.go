package ecs

type System interface {
	Update(w *World)
}

// Scheduler runs its systems in registration order once per tick.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := make([]System, 0, len(systems))
	for _, system := range systems {
		if system != nil {
			copied = append(copied, system)
		}
	}
	return &Scheduler{systems: copied}
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update publishes dt through w.Delta and runs every system. A tick with
// dt <= 0 mutates nothing and reports false.
func (s *Scheduler) Update(w *World, dt float64) bool {
	if w == nil {
		return false
	}
	if dt <= 0 {
		w.SetDelta(0)
		return false
	}
	w.SetDelta(dt)
	w.frame++
	for _, system := range s.systems {
		system.Update(w)
	}
	return true
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
