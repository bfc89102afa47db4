package component

// LevelChangeRequest is a one-shot request emitted by gameplay systems to ask
// the outer game loop to load the next level. Systems only emit data; the
// game loop owns IO and world reinitialisation.
type LevelChangeRequest struct {
	// FromLevel is the index of the level the door was opened in.
	FromLevel int
	// Frame is the world frame the request was raised on.
	Frame uint64
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
