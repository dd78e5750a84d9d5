package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a frame-stepped simulation implements.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	// Step advances the simulation by dt seconds.
	Step(dt float64)
}
