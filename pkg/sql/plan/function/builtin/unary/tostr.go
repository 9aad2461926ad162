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

// Package unary holds the concrete unary long→string expressions: the
// decimal cast and the HEX/OCT/BIN builtins. Each is the generic driver
// bound to one formatting kernel.
package unary

import (
	"github.com/matrixorigin/vecexec/pkg/container/types"
	"github.com/matrixorigin/vecexec/pkg/container/vector"
	"github.com/matrixorigin/vecexec/pkg/sql/colexec/expression"
	"github.com/matrixorigin/vecexec/pkg/sql/plan/function"
	"github.com/matrixorigin/vecexec/pkg/vectorize/format"
)

func init() {
	register := func(name string, build func(inputColumn, outputColumn int) expression.VectorExpression) {
		function.Register(name, &function.Functions{
			Overloads: []function.Function{{
				Args:      []types.T{types.T_int64},
				ReturnTyp: types.T_varchar,
				Desc:      expression.UnaryLongToBytesDescriptor(),
				Build:     build,
			}},
		})
	}
	register("cast_bigint_as_varchar", NewCastInt64ToString)
	register("hex", NewHexInt64)
	register("oct", NewOctInt64)
	register("bin", NewBinInt64)
}

// castInt64ToString writes the decimal text of row i.
func castInt64ToString(out *vector.BytesColumnVector, vals []int64, i int) error {
	var tmp [20]byte
	out.SetVal(i, format.AppendInt(tmp[:0], vals[i]))
	return nil
}

// hexInt64 writes the uppercase hex text of row i.
func hexInt64(out *vector.BytesColumnVector, vals []int64, i int) error {
	var tmp [16]byte
	out.SetVal(i, format.AppendHex(tmp[:0], vals[i]))
	return nil
}

// octInt64 writes the octal text of row i.
func octInt64(out *vector.BytesColumnVector, vals []int64, i int) error {
	var tmp [22]byte
	out.SetVal(i, format.AppendOct(tmp[:0], vals[i]))
	return nil
}

// binInt64 writes the binary text of row i.
func binInt64(out *vector.BytesColumnVector, vals []int64, i int) error {
	var tmp [64]byte
	out.SetVal(i, format.AppendBin(tmp[:0], vals[i]))
	return nil
}

func NewCastInt64ToString(inputColumn, outputColumn int) expression.VectorExpression {
	return expression.NewUnaryLongToBytes(inputColumn, outputColumn, castInt64ToString)
}

func NewHexInt64(inputColumn, outputColumn int) expression.VectorExpression {
	return expression.NewUnaryLongToBytes(inputColumn, outputColumn, hexInt64)
}

func NewOctInt64(inputColumn, outputColumn int) expression.VectorExpression {
	return expression.NewUnaryLongToBytes(inputColumn, outputColumn, octInt64)
}

func NewBinInt64(inputColumn, outputColumn int) expression.VectorExpression {
	return expression.NewUnaryLongToBytes(inputColumn, outputColumn, binInt64)
}
