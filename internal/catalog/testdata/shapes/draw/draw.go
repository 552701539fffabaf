package draw

import "example.com/shapes/geom"

type Button struct {
	*geom.Widget
}

func (b Button) Click() {}
