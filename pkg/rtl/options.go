package rtl

// Options configures construction policy.  Options are fixed for the
// lifetime of a Builder.
type Options struct {
	// DeclaredTypeMustBeUnbound rejects register declarations whose type
	// template is already bound to a node, rather than silently cloning the
	// type and moving on.  Passing a bound value where a type is expected is
	// almost always a confusion between a value and its type, so this is on
	// by default; legacy descriptions which rely on the older, laxer
	// behaviour can switch it off.
	DeclaredTypeMustBeUnbound bool `yaml:"declared_type_must_be_unbound"`
}

// DefaultOptions returns the options applied when none are given explicitly.
func DefaultOptions() Options {
	return Options{
		DeclaredTypeMustBeUnbound: true,
	}
}
