package renderer

// Options configures how a frame is rendered. Shading results do not depend on them.
type Options struct {
	// Number of goroutines shading rows. Values below 2 render on the calling goroutine.
	Workers int
}

// DefaultOptions returns single-threaded rendering
func DefaultOptions() Options {
	return Options{
		Workers: 1,
	}
}
