package scene

// Kind tags the closed set of entity variants a scene holds
type Kind uint8

const (
	KindGround Kind = iota
	KindHouse
	KindShed
	KindTree
	KindWaterTank
	KindSubject
	kindCount
)

var kindNames = [kindCount]string{
	KindGround:    "Ground",
	KindHouse:     "House",
	KindShed:      "Shed",
	KindTree:      "Tree",
	KindWaterTank: "WaterTank",
	KindSubject:   "Subject",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Unknown"
}

// Kinds returns every known kind in declaration order
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Entity is the state shared by every object in a scene: a name used for
// lookups, an activity gate and one owned Transform. Concrete variants embed
// it and gain behavior through the Updater and Drawer capabilities.
type Entity struct {
	Name      string
	Active    bool
	Kind      Kind
	Transform Transform
}

// NewEntity creates an active entity with an identity transform
func NewEntity(name string, kind Kind) Entity {
	return Entity{
		Name:      name,
		Active:    true,
		Kind:      kind,
		Transform: NewTransform(),
	}
}

// Base returns the entity itself, satisfying Object for embedders
func (e *Entity) Base() *Entity {
	return e
}

// Object is anything stored in a scene
type Object interface {
	Base() *Entity
}

// Updater is implemented by objects with per-frame behavior
type Updater interface {
	Update(frame *Frame)
}

// Drawer is implemented by objects that issue draw calls. Draw runs inside
// the object's coordinate frame.
type Drawer interface {
	Draw(dc *DrawContext)
}

// DrawContext carries the render pass state handed to Drawer hooks
type DrawContext struct {
	Backend Backend
	Camera  *Camera
	Handle  Handle
}

// Render draws obj inside a scoped coordinate frame: translate, rotate about
// Z, then Y, then X, then scale. Inactive objects produce no backend calls.
// The frame is popped on every path once pushed.
func Render(obj Object, dc *DrawContext) {
	e := obj.Base()
	if !e.Active {
		return
	}

	b := dc.Backend
	b.PushFrame()
	defer b.PopFrame()

	t := &e.Transform
	rot := t.Rotation()
	b.Translate(t.Position())
	b.Rotate(rot.Z(), AxisZ)
	b.Rotate(rot.Y(), AxisY)
	b.Rotate(rot.X(), AxisX)
	b.Scale(t.Scale())

	if d, ok := obj.(Drawer); ok {
		d.Draw(dc)
	}
}
