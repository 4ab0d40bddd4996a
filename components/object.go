package components

import (
	"github.com/automoto/ascent/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Box returns the object's bounds.
func (o *ObjectData) Box() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// SetBottom moves the object so its bottom edge sits at y.
func (o *ObjectData) SetBottom(y float64) { o.Y = y - o.H }

// SetTop moves the object so its top edge sits at y.
func (o *ObjectData) SetTop(y float64) { o.Y = y }

// SetRight moves the object so its right edge sits at x.
func (o *ObjectData) SetRight(x float64) { o.X = x - o.W }

// SetLeft moves the object so its left edge sits at x.
func (o *ObjectData) SetLeft(x float64) { o.X = x }
