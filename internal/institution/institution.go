package institution

// Institution is one public institution on the map. Dependency is a 0-100
// score of reliance on proprietary software; it only ever decreases.
// Liberation is one-way: once Liberated flips true it never reverts, the
// dependency score freezes, and InfluenceRadius starts growing.
type Institution struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
	Dependency      float64 `json:"dependency"`
	Liberated       bool    `json:"liberated"`
	InfluenceRadius float64 `json:"influence_radius,omitempty"`
}

// ReduceDependency lowers the dependency score, floor-clamped at 0.
// Liberated institutions are frozen and ignore further reductions.
func (i *Institution) ReduceDependency(amount float64) {
	if i.Liberated || amount <= 0 {
		return
	}
	i.Dependency -= amount
	if i.Dependency < 0 {
		i.Dependency = 0
	}
}

// Liberate flips the one-way liberated flag and seeds the influence radius.
// A second call is a no-op so the radius is never reset.
func (i *Institution) Liberate(baseRadius float64) {
	if i.Liberated {
		return
	}
	i.Liberated = true
	i.InfluenceRadius = baseRadius
}

// ClampDependency forces the score back into [0, 100]. Applied after any
// write that did not go through ReduceDependency.
func (i *Institution) ClampDependency() {
	if i.Dependency < 0 {
		i.Dependency = 0
	}
	if i.Dependency > 100 {
		i.Dependency = 100
	}
}
