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
	"bytes"
	"fmt"

	"github.com/matrixorigin/vecexec/pkg/container/types"
)

const (
	// DefaultSize is the default row capacity of a column vector.
	DefaultSize = 1024

	// defaultBufferSize is the initial byte capacity of a bytes vector's
	// shared value buffer.
	defaultBufferSize = 16 * 1024
)

// ColumnVector carries the per-row null state and the batch-level flags
// shared by every concrete vector. It is embedded, never used on its own.
//
// NoNulls is an optimistic flag: when true, every row is non-null no matter
// what IsNull contains. IsNull may hold stale entries from a previous use of
// the vector; readers must consult NoNulls first, and writers that clear
// NoNulls are responsible for making IsNull authoritative for the rows they
// touch.
//
// IsRepeating means row 0 logically stands for every row in the batch; the
// remaining slots of Vals/IsNull are don't-care.
type ColumnVector struct {
	IsNull      []bool
	NoNulls     bool
	IsRepeating bool
}

func newColumnVector(n int) ColumnVector {
	return ColumnVector{
		IsNull:  make([]bool, n),
		NoNulls: true,
	}
}

// Capacity is the number of rows the vector can hold.
func (cv *ColumnVector) Capacity() int {
	return len(cv.IsNull)
}

// SetNull marks row i null. It is also the hook a transform uses to
// override the pre-cleared null flag of its own output row.
func (cv *ColumnVector) SetNull(i int) {
	cv.IsNull[i] = true
	cv.NoNulls = false
}

// NullAt reports the effective null state of row i, honoring NoNulls and
// IsRepeating.
func (cv *ColumnVector) NullAt(i int) bool {
	if cv.NoNulls {
		return false
	}
	if cv.IsRepeating {
		i = 0
	}
	return cv.IsNull[i]
}

func (cv *ColumnVector) resetFlags() {
	for i := range cv.IsNull {
		cv.IsNull[i] = false
	}
	cv.NoNulls = true
	cv.IsRepeating = false
}

// AnyVector is the interface a batch holds its columns through.
type AnyVector interface {
	Kind() types.T
	Capacity() int
	Reset()
	Size() int
	String() string
}

// LongColumnVector is the fixed-width vector for the whole signed and
// unsigned integer family, stored as int64.
type LongColumnVector struct {
	ColumnVector
	Vals []int64
}

func NewLongColumnVector(n int) *LongColumnVector {
	return &LongColumnVector{
		ColumnVector: newColumnVector(n),
		Vals:         make([]int64, n),
	}
}

func (v *LongColumnVector) Kind() types.T {
	return types.T_int64
}

// GetInt64 returns the value of row i, reading row 0 when repeating.
func (v *LongColumnVector) GetInt64(i int) int64 {
	if v.IsRepeating {
		i = 0
	}
	return v.Vals[i]
}

// SetRepeating makes every row of the vector logically equal to val.
func (v *LongColumnVector) SetRepeating(val int64) {
	v.Vals[0] = val
	v.IsNull[0] = false
	v.IsRepeating = true
}

// Reset restores the vector to its freshly-constructed state so the
// containing batch can be reused.
func (v *LongColumnVector) Reset() {
	v.resetFlags()
	for i := range v.Vals {
		v.Vals[i] = 0
	}
}

func (v *LongColumnVector) Size() int {
	return 8*len(v.Vals) + len(v.IsNull)
}

func (v *LongColumnVector) String() string {
	var buf bytes.Buffer
	n := len(v.Vals)
	if v.IsRepeating {
		n = 1
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteString(" ")
		}
		if !v.NoNulls && v.IsNull[i] {
			buf.WriteString("null")
			continue
		}
		fmt.Fprintf(&buf, "%d", v.Vals[i])
	}
	return buf.String()
}

// BytesColumnVector is the variable-length vector: per-row offset and
// length into a shared append-only byte buffer.
type BytesColumnVector struct {
	ColumnVector
	Offs []int32
	Lens []int32
	data []byte
}

func NewBytesColumnVector(n int) *BytesColumnVector {
	return NewBytesColumnVectorSized(n, defaultBufferSize)
}

// NewBytesColumnVectorSized creates a bytes vector whose value buffer
// starts with the given byte capacity.
func NewBytesColumnVectorSized(n, bufferSize int) *BytesColumnVector {
	return &BytesColumnVector{
		ColumnVector: newColumnVector(n),
		Offs:         make([]int32, n),
		Lens:         make([]int32, n),
		data:         make([]byte, 0, bufferSize),
	}
}

func (v *BytesColumnVector) Kind() types.T {
	return types.T_varchar
}

// InitBuffer rewinds the shared value buffer to empty, keeping its
// capacity. Row offsets and lengths written afterwards supersede whatever
// a previous evaluation left behind.
func (v *BytesColumnVector) InitBuffer() {
	if v.data == nil {
		v.data = make([]byte, 0, defaultBufferSize)
		return
	}
	v.data = v.data[:0]
}

// SetVal copies b into the shared buffer and points row i at it.
func (v *BytesColumnVector) SetVal(i int, b []byte) {
	v.Offs[i] = int32(len(v.data))
	v.Lens[i] = int32(len(b))
	v.data = append(v.data, b...)
}

// GetBytes returns the value of row i, reading row 0 when repeating. The
// returned slice aliases the shared buffer and is valid until the next
// InitBuffer.
func (v *BytesColumnVector) GetBytes(i int) []byte {
	if v.IsRepeating {
		i = 0
	}
	return v.data[v.Offs[i] : v.Offs[i]+v.Lens[i]]
}

func (v *BytesColumnVector) GetString(i int) string {
	return string(v.GetBytes(i))
}

// BufferLen is the number of value bytes written since the last InitBuffer.
func (v *BytesColumnVector) BufferLen() int {
	return len(v.data)
}

func (v *BytesColumnVector) Reset() {
	v.resetFlags()
	v.data = v.data[:0]
	for i := range v.Offs {
		v.Offs[i] = 0
		v.Lens[i] = 0
	}
}

func (v *BytesColumnVector) Size() int {
	return len(v.data) + 8*len(v.Offs) + len(v.IsNull)
}

func (v *BytesColumnVector) String() string {
	var buf bytes.Buffer
	n := len(v.Offs)
	if v.IsRepeating {
		n = 1
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteString(" ")
		}
		if !v.NoNulls && v.IsNull[i] {
			buf.WriteString("null")
			continue
		}
		fmt.Fprintf(&buf, "%q", v.data[v.Offs[i]:v.Offs[i]+v.Lens[i]])
	}
	return buf.String()
}
