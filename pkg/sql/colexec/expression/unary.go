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

package expression

import (
	"fmt"

	"github.com/matrixorigin/vecexec/pkg/common/moerr"
	"github.com/matrixorigin/vecexec/pkg/container/batch"
	"github.com/matrixorigin/vecexec/pkg/container/types"
	"github.com/matrixorigin/vecexec/pkg/container/vector"
)

// UnaryLongToBytesDescriptor is the capability declaration shared by
// every unary long→bytes expression: one int-family column argument,
// projection mode.
func UnaryLongToBytesDescriptor() Descriptor {
	return Descriptor{
		Mode:       Projection,
		NumArgs:    1,
		ArgTypes:   []types.ArgumentType{types.IntFamily},
		InputKinds: []types.InputKind{types.Column},
	}
}

// UnaryLongToBytes evaluates a unary function from a long column to a
// bytes column. One driver serves every concrete operation; the
// per-element transform is injected.
type UnaryLongToBytes struct {
	inputColumn  int
	outputColumn int
	fn           Transform
}

func NewUnaryLongToBytes(inputColumn, outputColumn int, fn Transform) *UnaryLongToBytes {
	return &UnaryLongToBytes{
		inputColumn:  inputColumn,
		outputColumn: outputColumn,
		fn:           fn,
	}
}

func (e *UnaryLongToBytes) Descriptor() Descriptor {
	return UnaryLongToBytesDescriptor()
}

func (e *UnaryLongToBytes) InputColumn() int {
	return e.inputColumn
}

func (e *UnaryLongToBytes) OutputColumn() int {
	return e.outputColumn
}

func (e *UnaryLongToBytes) String() string {
	return fmt.Sprintf("col %d", e.inputColumn)
}

// bind type-checks the column bindings. A failure here is a mis-wired
// expression tree, not a data condition.
func (e *UnaryLongToBytes) bind(bat *batch.Batch) (*vector.LongColumnVector, *vector.BytesColumnVector, error) {
	if e.inputColumn < 0 || e.inputColumn >= bat.VectorCount() {
		return nil, nil, moerr.NewInvalidInput("input column %d out of range, batch has %d columns", e.inputColumn, bat.VectorCount())
	}
	if e.outputColumn < 0 || e.outputColumn >= bat.VectorCount() {
		return nil, nil, moerr.NewInvalidInput("output column %d out of range, batch has %d columns", e.outputColumn, bat.VectorCount())
	}
	in, ok := bat.GetVector(e.inputColumn).(*vector.LongColumnVector)
	if !ok {
		return nil, nil, moerr.NewInvalidInput("column %d is not a long vector", e.inputColumn)
	}
	out, ok := bat.GetVector(e.outputColumn).(*vector.BytesColumnVector)
	if !ok {
		return nil, nil, moerr.NewInvalidInput("column %d is not a bytes vector", e.outputColumn)
	}
	return in, out, nil
}

// Evaluate runs the transform over the batch in one pass.
//
// The dispatch is a decision tree over {repeating, noNulls, selection} so
// that once a case is chosen the inner loop carries no per-row null
// branch. Null flags are written before the transform is invoked; a
// transform may overwrite its own row's flag, and that ordering is a
// contract, not an accident.
func (e *UnaryLongToBytes) Evaluate(bat *batch.Batch) error {
	in, out, err := e.bind(bat)
	if err != nil {
		return err
	}

	n := bat.RowCount()
	sel := bat.Sel
	vals := in.Vals

	out.InitBuffer()

	if n == 0 {
		// Nothing to do.
		return nil
	}

	if !in.IsRepeating && n > out.Capacity() {
		return moerr.NewInvalidInput("batch of %d rows exceeds output capacity %d", n, out.Capacity())
	}

	inputIsNull := in.IsNull
	outputIsNull := out.IsNull

	// We do not reset the whole output column; every case below writes
	// exactly the rows and flags it owns. Clearing IsRepeating up front
	// keeps a stale flag from a prior evaluation from surviving.
	out.IsRepeating = false

	if in.IsRepeating {
		if in.NoNulls || !inputIsNull[0] {
			// Set IsNull before the call in case it changes its mind.
			outputIsNull[0] = false
			if err := e.fn(out, vals, 0); err != nil {
				return err
			}
		} else {
			outputIsNull[0] = true
			out.NoNulls = false
		}
		out.IsRepeating = true
		return nil
	}

	if in.NoNulls {
		if bat.SelInUse {
			if !out.NoNulls {
				for j := 0; j != n; j++ {
					i := sel[j]
					// Set IsNull before the call in case it changes its mind.
					outputIsNull[i] = false
					if err := e.fn(out, vals, i); err != nil {
						return err
					}
				}
			} else {
				for j := 0; j != n; j++ {
					if err := e.fn(out, vals, sel[j]); err != nil {
						return err
					}
				}
			}
			return nil
		}

		if !out.NoNulls {
			// Filling all of IsNull is cheaper than clearing rows one at
			// a time, and it lets us restore NoNulls for later batches.
			for i := range outputIsNull {
				outputIsNull[i] = false
			}
			out.NoNulls = true
		}
		for i := 0; i != n; i++ {
			if err := e.fn(out, vals, i); err != nil {
				return err
			}
		}
		return nil
	}

	// The input has nulls. Don't run the transform on a null row: the
	// value slot may be undefined there.
	out.NoNulls = false

	if bat.SelInUse {
		for j := 0; j != n; j++ {
			i := sel[j]
			outputIsNull[i] = inputIsNull[i]
			if !inputIsNull[i] {
				if err := e.fn(out, vals, i); err != nil {
					return err
				}
			}
		}
		out.IsRepeating = false
		return nil
	}

	copy(outputIsNull[:n], inputIsNull[:n])
	for i := 0; i != n; i++ {
		if !inputIsNull[i] {
			if err := e.fn(out, vals, i); err != nil {
				return err
			}
		}
	}
	return nil
}
