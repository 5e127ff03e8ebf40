package bimap

//go:generate go tool stringer -type=OnCollision

// OnCollision selects how a put resolves an attempted insertion whose key or
// value already participates in a different pair. Key collisions and value
// collisions are judged independently, each under its own OnCollision value.
type OnCollision uint8

const (
	Raise     OnCollision = iota // abort the whole operation, reporting the existing pair
	Overwrite                    // discard the conflicting existing pair, accept the new one
	Ignore                       // keep the existing pair, silently drop the new one

	// OnCollisionTotal is a constant that represents the total number of collision modes defined
	OnCollisionTotal = int(iota)
)

// A Flavor fixes the construction-time behavior of a Map: the default
// collision policies used by Set and Update, whether insertion order is
// maintained, and whether mutation is permitted at all.
type Flavor struct {
	OnKey   OnCollision
	OnValue OnCollision
	Ordered bool
	Frozen  bool
}

// The named flavors mirror the usual map idioms: writing to an existing key
// replaces its value, while value uniqueness is protected unless explicitly
// loosened.
var (
	Strict        = Flavor{OnKey: Overwrite, OnValue: Raise}
	Loose         = Flavor{OnKey: Overwrite, OnValue: Overwrite}
	StrictOrdered = Flavor{OnKey: Overwrite, OnValue: Raise, Ordered: true}
	LooseOrdered  = Flavor{OnKey: Overwrite, OnValue: Overwrite, Ordered: true}
)

// FrozenFlavor returns base with mutation disabled.
func FrozenFlavor(base Flavor) Flavor {
	base.Frozen = true
	return base
}
