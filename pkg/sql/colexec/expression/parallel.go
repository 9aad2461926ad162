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
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/matrixorigin/vecexec/pkg/container/batch"
)

// ParallelEvaluator fans independent batches out over a worker pool. A
// single batch is still evaluated by exactly one goroutine; only
// cross-batch parallelism is exploited, since expressions hold no mutable
// state and batches share nothing.
type ParallelEvaluator struct {
	pool *ants.Pool
}

func NewParallelEvaluator(parallelism int) (*ParallelEvaluator, error) {
	pool, err := ants.NewPool(parallelism)
	if err != nil {
		return nil, err
	}
	return &ParallelEvaluator{pool: pool}, nil
}

func (pe *ParallelEvaluator) Release() {
	pe.pool.Release()
}

// EvaluateBatches runs expr over every batch, at most `parallelism` at a
// time. All submitted work drains before it returns; the first error wins
// and the output columns of failed batches must be discarded by the
// caller.
func (pe *ParallelEvaluator) EvaluateBatches(expr VectorExpression, bats []*batch.Batch) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	record := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	for _, bat := range bats {
		bat := bat
		wg.Add(1)
		err := pe.pool.Submit(func() {
			defer wg.Done()
			if err := expr.Evaluate(bat); err != nil {
				record(err)
			}
		})
		if err != nil {
			wg.Done()
			record(err)
		}
	}
	wg.Wait()
	return firstErr
}
