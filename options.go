package svgbridge

// RenderOption configures a render call.
// Use functional options to customize behavior.
//
// Example:
//
//	// Default: software engine, stretch-to-fill scaling
//	pm, err := svgbridge.Render(svg, 512, 512)
//
//	// Aspect-preserving scaling for Go callers
//	pm, err := svgbridge.Render(svg, 512, 512, svgbridge.WithScaleMode(svgbridge.ScaleBestFit))
//
//	// Custom engine (dependency injection)
//	pm, err := svgbridge.Render(svg, 512, 512, svgbridge.WithEngine(myEngine))
type RenderOption func(*renderOptions)

// renderOptions holds resolved configuration for a render call.
type renderOptions struct {
	engine    Engine
	scaleMode ScaleMode
}

// defaultEngine is shared by all calls that don't inject their own.
// SoftwareEngine is stateless, so sharing is safe.
var defaultEngine = NewSoftwareEngine()

// WithEngine sets a custom rendering engine for the call.
// Use this for dependency injection of alternative or fake engines.
// A nil engine is ignored.
func WithEngine(e Engine) RenderOption {
	return func(o *renderOptions) {
		if e != nil {
			o.engine = e
		}
	}
}

// WithScaleMode sets how the document is scaled to the output dimensions.
// The default is ScaleStretch.
func WithScaleMode(m ScaleMode) RenderOption {
	return func(o *renderOptions) {
		o.scaleMode = m
	}
}

// resolveOptions applies opts on top of the defaults.
func resolveOptions(opts []RenderOption) renderOptions {
	o := renderOptions{
		engine:    defaultEngine,
		scaleMode: ScaleStretch,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
