package geom

import "sync"

type Drawable interface {
	Draw() error
}

type Sizer interface {
	Size() (int, int)
}

type Shape struct {
	Drawable
	sync.Mutex
	name string
}

func (s Shape) Name() string { return s.name }

func (s *Shape) Rename(n string) { s.name = n }

func (s Shape) validate() bool { return s.name != "" }

type Widget struct {
	Shape
	Drawable
}

func (w Widget) Draw() error { return nil }

func (w Widget) SaveState() {}

type RenderSizer interface {
	Drawable
	Sizer
	Render()
}

type hidden struct{}
