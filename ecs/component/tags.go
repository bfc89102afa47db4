package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// FocusTaker marks the entity the camera follows.
type FocusTaker struct{}

var FocusTakerComponent = NewComponent[FocusTaker]()
