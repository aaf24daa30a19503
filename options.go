package elbow

import (
	"github.com/arrowkit/elbow/geom"
	"github.com/arrowkit/elbow/scene"
)

// Options configures a single Route call (spec.md §6's options and
// otherUpdates bundles, folded into one struct since both only ever affect
// one call). There is no package-level configuration; Route builds its own
// Options from DefaultOptions plus whatever the caller supplies.
type Options struct {
	// ChangedElements overlays shapes atop the Store snapshot for this call
	// only.
	ChangedElements map[string]scene.Shape
	// IsDragging re-evaluates bindings from whatever shape is hovered at
	// each endpoint instead of the arrow's persisted bindings.
	IsDragging bool
	// DisableBinding ignores both endpoints' persisted bindings, routing as
	// if the arrow were unbound.
	DisableBinding bool
	// InformMutation is passed through to MutationSink.Apply.
	InformMutation bool
	// Offset translates nextPoints before routing.
	Offset geom.Vector
	// OtherStartBinding and OtherEndBinding, if non-nil, override the
	// bindings written into the emitted Update, independent of whichever
	// bindings were used to resolve headings during routing.
	OtherStartBinding *scene.Binding
	OtherEndBinding   *scene.Binding
	// Logger receives the "no route" diagnostic. Nil disables it.
	Logger Logger
}

// Option is a functional option for Route, mirroring dijkstra.Option.
type Option func(*Options)

// DefaultOptions returns the Options a Route call gets when no Option is
// supplied: mutation events enabled, no dragging overlay, bindings honored,
// the default golog-backed Logger.
func DefaultOptions() Options {
	return Options{InformMutation: true, Logger: NewLogger()}
}

// WithChangedElements overlays shapes atop the scene snapshot for this call.
func WithChangedElements(changed map[string]scene.Shape) Option {
	return func(o *Options) { o.ChangedElements = changed }
}

// WithDragging sets IsDragging.
func WithDragging(dragging bool) Option {
	return func(o *Options) { o.IsDragging = dragging }
}

// WithDisableBinding sets DisableBinding.
func WithDisableBinding(disabled bool) Option {
	return func(o *Options) { o.DisableBinding = disabled }
}

// WithInformMutation sets InformMutation.
func WithInformMutation(inform bool) Option {
	return func(o *Options) { o.InformMutation = inform }
}

// WithOffset sets Offset.
func WithOffset(v geom.Vector) Option {
	return func(o *Options) { o.Offset = v }
}

// WithOtherBindings sets OtherStartBinding and OtherEndBinding.
func WithOtherBindings(start, end *scene.Binding) Option {
	return func(o *Options) {
		o.OtherStartBinding = start
		o.OtherEndBinding = end
	}
}

// WithLogger overrides the default Logger.
func WithLogger(l Logger) Option {
	return func(o *Options) { o.Logger = l }
}
