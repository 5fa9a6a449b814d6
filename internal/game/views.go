package game

import "github.com/dev-du-bled/the-free-transitionner/internal/institution"

// Derived views are pure functions of a snapshot, recomputed on read so
// they can never go stale.

// Coverage returns the share of the initial total dependency that has been
// eliminated, in percent. 0 when the initial total is 0.
func (s State) Coverage() float64 {
	if s.InitialTotalDependency <= 0 {
		return 0
	}
	remaining := 0.0
	for _, inst := range s.Institutions {
		if !inst.Liberated {
			remaining += inst.Dependency
		}
	}
	return (1 - remaining/s.InitialTotalDependency) * 100
}

// NextTarget returns the non-liberated institution with the lowest current
// dependency, ties broken by catalog order. ok is false once everything is
// liberated. This is a difficulty-curve hint, not a constraint: missions may
// target any institution.
func (s State) NextTarget() (institution.Institution, bool) {
	best := -1
	for i, inst := range s.Institutions {
		if inst.Liberated {
			continue
		}
		if best == -1 || inst.Dependency < s.Institutions[best].Dependency {
			best = i
		}
	}
	if best == -1 {
		return institution.Institution{}, false
	}
	return s.Institutions[best], true
}

// Visible returns the institutions a guided UI would surface: everything
// liberated plus the next suggested target.
func (s State) Visible() []institution.Institution {
	out := make([]institution.Institution, 0, s.LiberatedCount+1)
	for _, inst := range s.Institutions {
		if inst.Liberated {
			out = append(out, inst)
		}
	}
	if next, ok := s.NextTarget(); ok {
		out = append(out, next)
	}
	return out
}
