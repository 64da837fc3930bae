package ecs

import "fmt"

// System updates a world once per tick. A returned error aborts the tick.
type System interface {
	Update(w *World) error
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system in registration order, stopping at the first error.
func (s *Scheduler) Update(w *World) error {
	for _, system := range s.systems {
		if err := system.Update(w); err != nil {
			return fmt.Errorf("%T: %w", system, err)
		}
	}
	return nil
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
