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

package batch

import (
	"bytes"
	"fmt"

	"github.com/matrixorigin/vecexec/pkg/container/vector"
	"github.com/matrixorigin/vecexec/pkg/logutil"
)

// New returns a batch with room for n columns. Columns are attached by the
// caller with SetVector.
func New(n int) *Batch {
	return &Batch{
		Vecs: make([]vector.AnyVector, n),
	}
}

func (bat *Batch) RowCount() int {
	return bat.rowCount
}

func (bat *Batch) SetRowCount(rowCount int) {
	bat.rowCount = rowCount
}

func (bat *Batch) VectorCount() int {
	return len(bat.Vecs)
}

func (bat *Batch) GetVector(pos int) vector.AnyVector {
	return bat.Vecs[pos]
}

func (bat *Batch) SetVector(pos int, vec vector.AnyVector) {
	bat.Vecs[pos] = vec
}

// SetSel installs a selection vector. Indices must be ascending; the batch
// trusts the upstream producer and does not re-sort.
func (bat *Batch) SetSel(sel []int) {
	bat.Sel = sel
	bat.SelInUse = true
	bat.rowCount = len(sel)
}

// ClearSel returns the batch to dense iteration over rowCount rows.
func (bat *Batch) ClearSel(rowCount int) {
	bat.Sel = nil
	bat.SelInUse = false
	bat.rowCount = rowCount
}

func (bat *Batch) Size() int {
	var size int

	for _, vec := range bat.Vecs {
		if vec != nil {
			size += vec.Size()
		}
	}
	return size
}

// Reset restores the batch and all of its columns to an empty state for
// reuse.
func (bat *Batch) Reset() {
	for _, vec := range bat.Vecs {
		if vec != nil {
			vec.Reset()
		}
	}
	bat.Sel = nil
	bat.SelInUse = false
	bat.rowCount = 0
}

func (bat *Batch) String() string {
	var buf bytes.Buffer

	for i, vec := range bat.Vecs {
		buf.WriteString(fmt.Sprintf("%d : %s\n", i, vec.String()))
	}
	return buf.String()
}

func (bat *Batch) Log(tag string) {
	if bat == nil || bat.rowCount < 1 {
		return
	}
	logutil.Infof("\n" + tag + "\n" + bat.String())
}
