package component

// Camera centres the view on the FocusTaker. The camera entity's Position
// is the view centre.
type Camera struct {
	ViewWidth  float64
	ViewHeight float64
	Zoom       float64
	// Smoothness is the lerp factor applied per tick, in (0, 1].
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
