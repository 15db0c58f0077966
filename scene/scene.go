// Package scene implements a small 3D scene runtime: named entities with
// transforms held in a generational arena, an articulated creature driven by
// polled input, and a camera that follows it from its eyes or from an orbit.
//
// A Scene advances in fixed phases each tick: active entities update in
// insertion order, camera keys are applied, the camera follows its target,
// registered systems run, and finally queued Commands are applied. Rendering
// is a separate traversal against a Backend.
package scene

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// SubjectName is the name of the creature in the default scene
const SubjectName = "MainCow"

// Scene owns every entity, the camera and the tick pipeline
type Scene struct {
	storage   *Storage
	camera    *Camera
	scheduler *Scheduler
	commands  *Commands
	input     Input
	cfg       Config
	logger    *slog.Logger

	tracked *EntityRef
	ticks   uint64
}

// Option configures a Scene at construction
type Option func(*Scene)

// WithInput sets the input source read every tick
func WithInput(in Input) Option {
	return func(s *Scene) {
		s.input = in
	}
}

// WithLogger sets the logger handed to the camera and to systems
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scene) {
		s.logger = logger
	}
}

// New creates an empty scene. The built-in phases are registered ahead of
// any system added later with RegisterSystem.
func New(cfg Config, opts ...Option) *Scene {
	s := &Scene{
		storage:   NewStorage(),
		scheduler: NewScheduler(),
		commands:  newCommands(),
		input:     NoInput{},
		cfg:       cfg,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.camera = NewCamera(cfg.Camera, s.logger)

	s.scheduler.Register(entityPhase{scene: s})
	s.scheduler.Register(cameraControlPhase{scene: s})
	s.scheduler.Register(cameraFollowPhase{})
	return s
}

// NewDefaultScene builds the stock pasture: ground, the creature, a house,
// a shed, a water tank and six trees, with the camera following the creature.
func NewDefaultScene(cfg Config, opts ...Option) *Scene {
	s := New(cfg, opts...)

	s.AddEntity(NewGround(cfg.World))
	cow := s.AddEntity(NewSubject(SubjectName, cfg.Subject, cfg.World))
	s.AddEntity(NewHouse("House", mgl64.Vec3{-10, 0, 0}))
	s.AddEntity(NewShed("Shed", mgl64.Vec3{0, 8, 0}, 180))
	s.AddEntity(NewWaterTank("WaterTank", mgl64.Vec3{2.5, 8, 0}))

	trees := []mgl64.Vec3{
		{15, 15, 0},
		{-84, 47, 0},
		{25, 4, 0},
		{19, -9, 0},
		{-38, -7, 0},
		{7, 2, 0},
	}
	for i, pos := range trees {
		s.AddEntity(NewTree(fmt.Sprintf("Tree_%d", i), pos))
	}

	s.Track(cow)
	if err := s.camera.Update(s); err != nil {
		s.logger.Warn("initial camera placement failed", "error", err)
	}
	return s
}

// AddEntity stores obj at the end of the iteration order
func (s *Scene) AddEntity(obj Object) Handle {
	h := s.storage.Spawn(obj)
	s.logger.Debug("entity added", "name", obj.Base().Name, "kind", obj.Base().Kind, "handle", h)
	return h
}

// RemoveEntity removes the first entity named name. It reports whether one
// was found.
func (s *Scene) RemoveEntity(name string) bool {
	h, obj := s.storage.FindFirst(name)
	if obj == nil {
		return false
	}
	return s.RemoveHandle(h)
}

// RemoveHandle removes the entity behind h. Refs to it become invalid.
func (s *Scene) RemoveHandle(h Handle) bool {
	obj := s.storage.Get(h)
	if obj == nil {
		return false
	}
	s.storage.Delete(h)
	s.logger.Debug("entity removed", "name", obj.Base().Name, "handle", h)
	return true
}

// FindEntity returns the first entity named name in insertion order
func (s *Scene) FindEntity(name string) (Object, bool) {
	_, obj := s.storage.FindFirst(name)
	return obj, obj != nil
}

// Lookup is FindEntity that also returns the handle
func (s *Scene) Lookup(name string) (Handle, Object, bool) {
	h, obj := s.storage.FindFirst(name)
	return h, obj, obj != nil
}

// Get returns the entity behind h, or nil
func (s *Scene) Get(h Handle) Object {
	return s.storage.Get(h)
}

// Ref returns the shared weak reference to the entity behind h, or nil if h
// is stale
func (s *Scene) Ref(h Handle) *EntityRef {
	return s.storage.CreateEntityRef(h)
}

// Resolve returns the entity a ref points at while it is alive
func (s *Scene) Resolve(ref *EntityRef) (Object, bool) {
	h, ok := s.storage.ResolveEntityRef(ref)
	if !ok {
		return nil, false
	}
	return s.storage.Get(h), true
}

// Entities yields live entities in insertion order
func (s *Scene) Entities() iter.Seq2[Handle, Object] {
	return s.storage.Iter()
}

func (s *Scene) Len() int { return s.storage.Len() }

// Track makes the entity behind h the controlled one: the camera follows it
// and camera toggles rebind to it
func (s *Scene) Track(h Handle) {
	s.tracked = s.Ref(h)
	s.camera.Follow(s.tracked)
}

// Tracked returns the ref to the controlled entity
func (s *Scene) Tracked() *EntityRef { return s.tracked }

// Subject returns the tracked entity if it is a live Subject
func (s *Scene) Subject() (*Subject, bool) {
	obj, ok := s.Resolve(s.tracked)
	if !ok {
		return nil, false
	}
	subject, ok := obj.(*Subject)
	return subject, ok
}

func (s *Scene) Camera() *Camera           { return s.camera }
func (s *Scene) Storage() *Storage         { return s.storage }
func (s *Scene) Scheduler() *Scheduler     { return s.scheduler }
func (s *Scene) Commands() *Commands       { return s.commands }
func (s *Scene) Config() Config            { return s.cfg }
func (s *Scene) Logger() *slog.Logger      { return s.logger }
func (s *Scene) Input() Input              { return s.input }
func (s *Scene) Ticks() uint64             { return s.ticks }
func (s *Scene) Stats() StorageStats       { return s.storage.CollectStats() }
func (s *Scene) SetInput(in Input)         { s.input = in }
func (s *Scene) RegisterSystem(sys System) { s.scheduler.Register(sys) }

// Update advances the scene by dt seconds
func (s *Scene) Update(dt float64) {
	frame := &Frame{
		DeltaTime: dt,
		Input:     s.input,
		Scene:     s,
		Commands:  s.commands,
		Logger:    s.logger,
	}
	s.scheduler.Once(frame)
	s.commands.Flush(s)
	s.ticks++
}

// Render sets the view from the camera and draws every active entity in
// insertion order, each inside its own frame
func (s *Scene) Render(b Backend) {
	b.SetView(s.camera.View())
	dc := &DrawContext{Backend: b, Camera: s.camera}
	for h, obj := range s.storage.Iter() {
		dc.Handle = h
		Render(obj, dc)
	}
}

// Run ticks the scene every interval until ctx is cancelled, passing the
// measured wall time as dt
func (s *Scene) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Update(dt)
		}
	}
}

type entityPhase struct {
	scene *Scene
}

func (entityPhase) Name() string { return "EntityUpdate" }

// Execute walks a snapshot of the handles so objects removed or added by an
// Update call do not disturb this pass
func (p entityPhase) Execute(frame *Frame) {
	for _, h := range p.scene.storage.Handles() {
		obj := p.scene.storage.Get(h)
		if obj == nil || !obj.Base().Active {
			continue
		}
		if u, ok := obj.(Updater); ok {
			u.Update(frame)
		}
	}
}

type cameraControlPhase struct {
	scene *Scene
}

func (cameraControlPhase) Name() string { return "CameraControl" }

func (p cameraControlPhase) Execute(frame *Frame) {
	in := frame.Input
	cam := p.scene.camera
	cfg := p.scene.cfg.Camera
	dt := frame.DeltaTime

	if in.IsKeyJustPressed(KeyCameraToggle) {
		cam.ToggleMode(p.scene.tracked)
		frame.Logger.Debug("camera mode toggled", "mode", cam.Mode())
	}

	orbit := cfg.OrbitSpeed * dt
	if in.IsKeyPressed(KeyOrbitLeft) {
		cam.Rotate(-orbit, 0)
	}
	if in.IsKeyPressed(KeyOrbitRight) {
		cam.Rotate(orbit, 0)
	}
	if in.IsKeyPressed(KeyOrbitUp) {
		cam.Rotate(0, -orbit)
	}
	if in.IsKeyPressed(KeyOrbitDown) {
		cam.Rotate(0, orbit)
	}

	zoom := cfg.ZoomSpeed * dt
	if in.IsKeyPressed(KeyZoomIn) {
		cam.Zoom(-zoom)
	}
	if in.IsKeyPressed(KeyZoomOut) {
		cam.Zoom(zoom)
	}

	if in.IsKeyPressed(KeyCameraReset) {
		cam.Reset(p.scene)
	}
}

type cameraFollowPhase struct{}

func (cameraFollowPhase) Name() string { return "CameraFollow" }

func (cameraFollowPhase) Execute(frame *Frame) {
	// a frozen camera keeps its last view; the camera logs the transition
	_ = frame.Scene.Camera().Update(frame.Scene)
}
