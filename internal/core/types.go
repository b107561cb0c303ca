package core

import "image/color"

// Size describes the dimensions of a grid or surface.
type Size struct {
	W int
	H int
}

// Point is an integer coordinate, used for both cells and pixels.
type Point struct {
	X int
	Y int
}

// Rect is a pixel rectangle anchored at its top-left corner.
type Rect struct {
	X, Y int
	W, H int
}

// Surface is the pixel target a backdrop draws onto. Size is queried every
// tick so hosts may resize it at any time.
type Surface interface {
	Size() Size
	FillRect(r Rect, c color.Color)
}

// Navigator performs the page navigation triggered by the special cell.
type Navigator interface {
	Navigate(target string) error
}

// NavigatorFunc adapts a plain function to the Navigator interface.
type NavigatorFunc func(target string) error

// Navigate calls f(target).
func (f NavigatorFunc) Navigate(target string) error { return f(target) }
