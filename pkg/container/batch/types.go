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
	"github.com/matrixorigin/vecexec/pkg/container/vector"
)

// Batch is one unit of vectorized work: a set of parallel column vectors
// plus the row count and an optional selection vector.
//
// When SelInUse is true only the rows listed in Sel (ascending, produced
// upstream) are logically present; otherwise rows 0..rowCount are dense.
// A batch is owned by a single goroutine for the duration of an
// evaluation; independent batches may be processed concurrently.
type Batch struct {
	// Vecs is the batch's columns. Column positions are stable for the
	// batch's lifetime.
	Vecs []vector.AnyVector

	// Sel is the selection vector, meaningful only when SelInUse.
	Sel      []int
	SelInUse bool

	rowCount int
}
