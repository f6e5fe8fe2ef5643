package emotion

import "image"

// Locator finds faces in a grayscale frame, returning zero or more
// axis-aligned bounding boxes. Implementations are expected to be pure: same
// frame, same boxes.
type Locator interface {
	Locate(gray *image.Gray) []image.Rectangle
}

// LocatorFunc adapts a function to the Locator interface.
type LocatorFunc func(gray *image.Gray) []image.Rectangle

func (f LocatorFunc) Locate(gray *image.Gray) []image.Rectangle { return f(gray) }

// FullFrameLocator treats the whole frame as a single face. It keeps the
// service runnable without a detection artifact; deployments with a real
// detector swap in their own Locator.
type FullFrameLocator struct{}

func (FullFrameLocator) Locate(gray *image.Gray) []image.Rectangle {
	return []image.Rectangle{gray.Bounds()}
}
