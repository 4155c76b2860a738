package codegen

import (
	"strconv"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
)

// tempName fabricates a unique short name for an intermediate value, a
// monotonically increasing decimal string. The exact naming is
// observable in emitted IR but not semantically meaningful.
func (c *Codegen) tempName() string {
	c.tempCounter++
	return strconv.Itoa(c.tempCounter)
}

// constZero is the first index every struct-field getelementptr needs:
// "dereference the pointer itself" rather than index into an array of
// structs.
func constZero() *constant.Int {
	return constant.NewInt(types.I32, 0)
}

// constI32 builds an i32 constant, the index width getelementptr
// expects for struct field indices.
func constI32(v int64) *constant.Int {
	return constant.NewInt(types.I32, v)
}
