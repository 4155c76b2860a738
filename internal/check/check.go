package check

import "github.com/mill-lang/millc/internal/pass"

// All returns the three semantic passes in the order the specification
// fixes: function-definition uniqueness first (so a later pass never
// has to reason about which of two same-named functions it is looking
// at), then call-target resolution, then return-type consistency.
func All() []pass.Pass {
	return []pass.Pass{
		NewDuplicateFunctions(),
		NewCallTargets(),
		NewReturnTypes(),
	}
}
