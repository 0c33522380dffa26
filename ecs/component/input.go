package component

// Input is the per-tick command set handed to the simulation.
type Input struct {
	FireStraight   bool
	FireDiagonally bool
	StartGame      bool
	ToggleAutoFire bool

	// OverrideTimeFactor replaces the simulation time factor with TimeFactor.
	OverrideTimeFactor bool
	TimeFactor         float64
}
