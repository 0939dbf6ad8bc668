package backdrop

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Light gray opaque surface
//	dc := backdrop.NewContext(800, 400, backdrop.WithBackground(backdrop.RGB(240, 240, 240)))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	renderer   Renderer
	pixmap     *Pixmap
	background *RGBA
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		renderer: nil, // Will be set to SoftwareRenderer if nil
		pixmap:   nil, // Will be created if nil
	}
}

// WithRenderer sets a custom renderer for the Context.
func WithRenderer(r Renderer) ContextOption {
	return func(o *contextOptions) {
		o.renderer = r
	}
}

// WithPixmap sets a custom pixmap for the Context.
// The pixmap dimensions should match the Context dimensions.
//
// Example:
//
//	pm := backdrop.NewPixmap(800, 400)
//	dc := backdrop.NewContext(800, 400, backdrop.WithPixmap(pm))
func WithPixmap(pm *Pixmap) ContextOption {
	return func(o *contextOptions) {
		o.pixmap = pm
	}
}

// WithBackground clears the surface to the given color on creation.
// Without it a new surface is fully transparent.
func WithBackground(c RGBA) ContextOption {
	return func(o *contextOptions) {
		o.background = &c
	}
}
