package component

// MaxLights is the number of lights the reveal shader accepts. Lights past
// this count are dropped for the frame.
const MaxLights = 8

type Light struct {
	X      float64
	Y      float64
	Radius float64
}

// LightList is rebuilt every simulated tick from the active flashlights.
type LightList struct {
	Lights  [MaxLights]Light
	Count   int
	Dropped int
}

var LightListComponent = NewComponent[LightList]()

func (l *LightList) Clear() {
	l.Count = 0
	l.Dropped = 0
}

// Append adds a light unless the list is full.
func (l *LightList) Append(light Light) bool {
	if l.Count >= MaxLights {
		l.Dropped++
		return false
	}
	l.Lights[l.Count] = light
	l.Count++
	return true
}

func (l *LightList) Active() []Light {
	return l.Lights[:l.Count]
}

// Uniform packs the lights as (x, y, radius) triples. Unused slots are zero.
func (l *LightList) Uniform() [MaxLights * 3]float32 {
	var out [MaxLights * 3]float32
	for i, light := range l.Active() {
		out[i*3] = float32(light.X)
		out[i*3+1] = float32(light.Y)
		out[i*3+2] = float32(light.Radius)
	}
	return out
}
