package scene

import "log/slog"

// System is one phase of a scene tick. The scene runs its built-in phases
// first and then any registered systems, in registration order.
type System interface {
	Execute(frame *Frame)
}

// SceneQuery is the read access to the scene handed to per-frame behavior
type SceneQuery interface {
	Resolver
	FindEntity(name string) (Object, bool)
	Camera() *Camera
}

// Frame is the per-tick context passed to systems and Updater objects
type Frame struct {
	DeltaTime float64
	Input     Input
	Scene     SceneQuery
	Commands  *Commands
	Logger    *slog.Logger
}
