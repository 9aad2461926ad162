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

// Package testutil builds vectors and batches for tests.
package testutil

import (
	"github.com/matrixorigin/vecexec/pkg/container/batch"
	"github.com/matrixorigin/vecexec/pkg/container/vector"
)

// MakeInt64Vector returns a long vector holding vs, with the given rows
// marked null. Capacity equals len(vs).
func MakeInt64Vector(vs []int64, nullRows []int) *vector.LongColumnVector {
	vec := vector.NewLongColumnVector(len(vs))
	copy(vec.Vals, vs)
	for _, i := range nullRows {
		vec.SetNull(i)
	}
	return vec
}

// MakeRepeatingInt64Vector returns a vector of capacity n whose every row
// logically equals v.
func MakeRepeatingInt64Vector(v int64, n int) *vector.LongColumnVector {
	vec := vector.NewLongColumnVector(n)
	vec.SetRepeating(v)
	return vec
}

// MakeNullRepeatingInt64Vector returns a repeating vector whose row 0 is
// null.
func MakeNullRepeatingInt64Vector(n int) *vector.LongColumnVector {
	vec := vector.NewLongColumnVector(n)
	vec.IsRepeating = true
	vec.SetNull(0)
	return vec
}

// MakeBytesVector returns an empty bytes vector of capacity n.
func MakeBytesVector(n int) *vector.BytesColumnVector {
	return vector.NewBytesColumnVector(n)
}

// NewEvalBatch builds the two-column batch the unary drivers expect:
// column 0 is the long input holding vs, column 1 the bytes output.
func NewEvalBatch(vs []int64, nullRows []int) *batch.Batch {
	bat := batch.New(2)
	bat.SetVector(0, MakeInt64Vector(vs, nullRows))
	bat.SetVector(1, MakeBytesVector(len(vs)))
	bat.SetRowCount(len(vs))
	return bat
}

// NewRepeatingEvalBatch builds a two-column batch whose input repeats v
// over n rows. When null is true row 0 is null instead.
func NewRepeatingEvalBatch(v int64, n int, null bool) *batch.Batch {
	bat := batch.New(2)
	if null {
		bat.SetVector(0, MakeNullRepeatingInt64Vector(n))
	} else {
		bat.SetVector(0, MakeRepeatingInt64Vector(v, n))
	}
	bat.SetVector(1, MakeBytesVector(n))
	bat.SetRowCount(n)
	return bat
}
