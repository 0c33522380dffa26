package component

// FrameTime is the unscaled clock of one tick.
type FrameTime struct {
	DeltaSeconds float64
	TotalSeconds float64
}
