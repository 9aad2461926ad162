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

package vector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/vecexec/pkg/container/types"
)

func TestLongColumnVector(t *testing.T) {
	vec := NewLongColumnVector(4)
	require.Equal(t, types.T_int64, vec.Kind())
	require.Equal(t, 4, vec.Capacity())
	require.True(t, vec.NoNulls)

	vec.Vals[0] = 7
	vec.Vals[3] = -2
	require.Equal(t, int64(7), vec.GetInt64(0))
	require.Equal(t, int64(-2), vec.GetInt64(3))

	vec.SetNull(2)
	require.False(t, vec.NoNulls)
	require.True(t, vec.NullAt(2))
	require.False(t, vec.NullAt(0))

	vec.Reset()
	require.True(t, vec.NoNulls)
	require.False(t, vec.IsRepeating)
	require.Equal(t, int64(0), vec.GetInt64(3))
}

func TestLongColumnVectorRepeating(t *testing.T) {
	vec := NewLongColumnVector(8)
	vec.SetRepeating(41)
	require.True(t, vec.IsRepeating)
	// Every row reads row 0.
	require.Equal(t, int64(41), vec.GetInt64(5))
	require.False(t, vec.NullAt(5))
}

func TestNoNullsOverridesStaleFlags(t *testing.T) {
	// NoNulls is authoritative even when IsNull carries stale entries
	// from a previous use of the vector.
	vec := NewLongColumnVector(2)
	vec.IsNull[1] = true
	require.False(t, vec.NullAt(1))
	vec.NoNulls = false
	require.True(t, vec.NullAt(1))
}

func TestBytesColumnVector(t *testing.T) {
	vec := NewBytesColumnVector(3)
	require.Equal(t, types.T_varchar, vec.Kind())

	vec.SetVal(0, []byte("hello"))
	vec.SetVal(1, []byte(""))
	vec.SetVal(2, []byte("world"))
	require.Equal(t, "hello", vec.GetString(0))
	require.Equal(t, "", vec.GetString(1))
	require.Equal(t, "world", vec.GetString(2))
	require.Equal(t, 10, vec.BufferLen())

	// InitBuffer rewinds the write position, keeping capacity; rows
	// written afterwards supersede the old content.
	vec.InitBuffer()
	require.Zero(t, vec.BufferLen())
	vec.SetVal(0, []byte("x"))
	require.Equal(t, "x", vec.GetString(0))
}

func TestBytesColumnVectorRepeating(t *testing.T) {
	vec := NewBytesColumnVector(4)
	vec.SetVal(0, []byte("only"))
	vec.IsRepeating = true
	require.Equal(t, "only", vec.GetString(3))
	require.Equal(t, []byte("only"), vec.GetBytes(2))
}

func TestBytesColumnVectorReset(t *testing.T) {
	vec := NewBytesColumnVector(2)
	vec.SetVal(0, []byte("a"))
	vec.SetNull(1)
	vec.IsRepeating = true

	vec.Reset()
	require.True(t, vec.NoNulls)
	require.False(t, vec.IsRepeating)
	require.Zero(t, vec.BufferLen())
	require.Equal(t, int32(0), vec.Lens[0])
}
