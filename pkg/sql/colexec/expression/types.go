// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package expression drives vectorized expression kernels over batches.
// A VectorExpression binds a per-element transform to input and output
// column positions and evaluates a whole batch in one pass, propagating
// null, repeating and selection state.
package expression

import (
	"fmt"
	"strings"

	"github.com/matrixorigin/vecexec/pkg/container/batch"
	"github.com/matrixorigin/vecexec/pkg/container/types"
	"github.com/matrixorigin/vecexec/pkg/container/vector"
)

// Mode tells a planner whether an expression projects a new column or
// filters rows in place.
type Mode uint8

const (
	Projection Mode = iota
	Filter
)

func (m Mode) String() string {
	if m == Filter {
		return "FILTER"
	}
	return "PROJECTION"
}

// Descriptor is the static capability declaration of an expression kind:
// its mode, arity, the type family each argument accepts, and the input
// shape each argument accepts. Planners query it at plan time; it carries
// no dispatch logic.
type Descriptor struct {
	Mode       Mode
	NumArgs    int
	ArgTypes   []types.ArgumentType
	InputKinds []types.InputKind
}

// Matches reports whether the descriptor accepts an expression node with
// the given mode, argument types and argument shapes.
func (d Descriptor) Matches(mode Mode, args []types.T, kinds []types.InputKind) bool {
	if d.Mode != mode || len(args) != d.NumArgs || len(kinds) != d.NumArgs {
		return false
	}
	for i, t := range args {
		if !d.ArgTypes[i].Contains(t) {
			return false
		}
	}
	for i, k := range kinds {
		if d.InputKinds[i] == types.ColumnOrScalar {
			continue
		}
		if d.InputKinds[i] != k {
			return false
		}
	}
	return true
}

func (d Descriptor) String() string {
	args := make([]string, d.NumArgs)
	for i := range args {
		args[i] = fmt.Sprintf("%s(%s)", d.ArgTypes[i], d.InputKinds[i])
	}
	return fmt.Sprintf("%s(%s)", d.Mode, strings.Join(args, ", "))
}

// VectorExpression is one compiled expression node. Evaluate processes the
// whole batch; the remaining methods are the planner-facing surface.
type VectorExpression interface {
	Evaluate(bat *batch.Batch) error
	Descriptor() Descriptor
	InputColumn() int
	OutputColumn() int
}

// Transform is the pluggable per-element operation of a unary long→bytes
// expression. It maps the input value at row i into the output vector,
// writing through out.SetVal (or out.SetNull for a late null decision).
//
// The driver guarantees i is never a null input row, so the value slot is
// always defined. The driver also clears out.IsNull[i] before the call, so
// a transform that wants a null result simply calls out.SetNull(i).
// Returned errors abort the batch and propagate unmodified.
type Transform func(out *vector.BytesColumnVector, vals []int64, i int) error
