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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/vecexec/pkg/container/vector"
)

func newTestBatch(rows int) *Batch {
	bat := New(2)
	bat.SetVector(0, vector.NewLongColumnVector(rows))
	bat.SetVector(1, vector.NewBytesColumnVector(rows))
	bat.SetRowCount(rows)
	return bat
}

func TestBatchBasics(t *testing.T) {
	bat := newTestBatch(8)
	require.Equal(t, 2, bat.VectorCount())
	require.Equal(t, 8, bat.RowCount())
	require.False(t, bat.SelInUse)
	require.NotZero(t, bat.Size())

	long, ok := bat.GetVector(0).(*vector.LongColumnVector)
	require.True(t, ok)
	require.Equal(t, 8, long.Capacity())
}

func TestBatchSelection(t *testing.T) {
	bat := newTestBatch(8)
	bat.SetSel([]int{1, 4, 6})
	require.True(t, bat.SelInUse)
	require.Equal(t, 3, bat.RowCount())

	bat.ClearSel(8)
	require.False(t, bat.SelInUse)
	require.Nil(t, bat.Sel)
	require.Equal(t, 8, bat.RowCount())
}

func TestBatchReset(t *testing.T) {
	bat := newTestBatch(4)
	long := bat.GetVector(0).(*vector.LongColumnVector)
	long.Vals[0] = 11
	long.SetNull(2)
	bat.SetSel([]int{0, 2})

	bat.Reset()
	require.Zero(t, bat.RowCount())
	require.False(t, bat.SelInUse)
	require.True(t, long.NoNulls)
	require.Equal(t, int64(0), long.Vals[0])
}

func TestBatchString(t *testing.T) {
	bat := newTestBatch(2)
	long := bat.GetVector(0).(*vector.LongColumnVector)
	long.Vals[0], long.Vals[1] = 1, 2
	bytesVec := bat.GetVector(1).(*vector.BytesColumnVector)
	bytesVec.SetVal(0, []byte("a"))
	bytesVec.SetNull(1)

	s := bat.String()
	require.Contains(t, s, "0 : 1 2")
	require.Contains(t, s, "null")

	// Log must tolerate nil and empty batches.
	var nilBat *Batch
	nilBat.Log("nil")
	New(0).Log("empty")
}
