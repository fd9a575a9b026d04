package ssd

// OrientationStore supplies the persisted display orientation, typically read
// from data flash or a settings file owned by the caller.
type OrientationStore interface {
	// Flipped reports whether the display is rotated by 180°.
	Flipped() bool
}

// FixedOrientation is an OrientationStore that always returns its value.
type FixedOrientation bool

// Flipped implements OrientationStore.
func (f FixedOrientation) Flipped() bool {
	return bool(f)
}

// OrientationFunc adapts a function to OrientationStore.
type OrientationFunc func() bool

// Flipped implements OrientationStore.
func (f OrientationFunc) Flipped() bool {
	return f()
}
