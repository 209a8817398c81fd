package render

// Layers are drawn back to front in a fixed stack. The runtime consumes
// built orders; nothing here touches pixels.

type LayerID uint8

const (
	LayerStars LayerID = iota
	LayerAsteroids
	LayerShip
	LayerHUD

	layerCount
)

var layerNames = [layerCount]string{"stars", "asteroids", "ship", "hud"}

func (id LayerID) String() string {
	if int(id) < len(layerNames) {
		return layerNames[id]
	}
	return "unknown"
}

type Layer struct {
	ID      LayerID
	Name    string
	Palette string
}

// Display is the fixed four-layer stack a session draws into. It is
// constructed once per session and shared by every frame.
type Display struct {
	Layers [layerCount]Layer
}

func NewDisplay(palette string) *Display {
	var d Display
	for i := range d.Layers {
		d.Layers[i] = Layer{ID: LayerID(i), Name: layerNames[i], Palette: palette}
	}
	return &d
}

// Order is one draw command submitted to the runtime.
type Order struct {
	Layer  LayerID `json:"layer"`
	Sprite string  `json:"sprite"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Color  int     `json:"color"`
	Text   string  `json:"text,omitempty"` // HUD layer only
}

// Frame buffers one tick's orders before submission.
type Frame struct {
	orders []Order
}

func (f *Frame) Draw(o Order) {
	f.orders = append(f.orders, o)
}

// Build returns the frame's orders grouped back-to-front by layer,
// preserving insertion order within a layer.
func (f *Frame) Build() []Order {
	out := make([]Order, 0, len(f.orders))
	for id := LayerID(0); id < layerCount; id++ {
		for _, o := range f.orders {
			if o.Layer == id {
				out = append(out, o)
			}
		}
	}
	return out
}
