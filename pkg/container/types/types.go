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

package types

import "fmt"

// T is the type tag of a column vector's element type.
type T uint8

const (
	T_any T = iota

	T_int8
	T_int16
	T_int32
	T_int64
	T_uint8
	T_uint16
	T_uint32
	T_uint64

	T_char
	T_varchar
)

func (t T) String() string {
	switch t {
	case T_any:
		return "ANY"
	case T_int8:
		return "TINYINT"
	case T_int16:
		return "SMALLINT"
	case T_int32:
		return "INT"
	case T_int64:
		return "BIGINT"
	case T_uint8:
		return "TINYINT UNSIGNED"
	case T_uint16:
		return "SMALLINT UNSIGNED"
	case T_uint32:
		return "INT UNSIGNED"
	case T_uint64:
		return "BIGINT UNSIGNED"
	case T_char:
		return "CHAR"
	case T_varchar:
		return "VARCHAR"
	}
	return fmt.Sprintf("unexpected type tag %d", t)
}

// ArgumentType is a family of element types accepted by one argument slot
// of a vectorized expression. Planners match argument families rather than
// single type tags so one kernel can cover a whole integer family.
type ArgumentType uint16

const (
	NoneFamily ArgumentType = iota
	IntFamily
	StringFamily
	AnyFamily
)

// Contains reports whether t belongs to the family.
func (a ArgumentType) Contains(t T) bool {
	switch a {
	case IntFamily:
		return t >= T_int8 && t <= T_uint64
	case StringFamily:
		return t == T_char || t == T_varchar
	case AnyFamily:
		return true
	}
	return false
}

func (a ArgumentType) String() string {
	switch a {
	case NoneFamily:
		return "NONE"
	case IntFamily:
		return "INT_FAMILY"
	case StringFamily:
		return "STRING_FAMILY"
	case AnyFamily:
		return "ANY"
	}
	return fmt.Sprintf("unexpected argument family %d", uint16(a))
}

// InputKind describes what shape of input expression an argument slot
// accepts: a column reference, a scalar constant, or either.
type InputKind uint8

const (
	Column InputKind = iota
	Scalar
	ColumnOrScalar
)

func (k InputKind) String() string {
	switch k {
	case Column:
		return "COLUMN"
	case Scalar:
		return "SCALAR"
	case ColumnOrScalar:
		return "COLUMN_OR_SCALAR"
	}
	return fmt.Sprintf("unexpected input kind %d", uint8(k))
}
