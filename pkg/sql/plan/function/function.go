// Copyright 2021 - 2022 Matrix Origin
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

// Package function is the planner-facing registry of vectorized
// expressions. Each named function owns a list of overloads; the planner
// resolves an overload by argument types and builds a bound expression
// from it.
package function

import (
	"fmt"
	"sync"

	"github.com/matrixorigin/vecexec/pkg/common/moerr"
	"github.com/matrixorigin/vecexec/pkg/container/types"
	"github.com/matrixorigin/vecexec/pkg/sql/colexec/expression"
)

// Function is one overload of a registered function.
type Function struct {
	// Index is the overload's position among all overloads of the same
	// name.
	Index int32

	Args      []types.T
	ReturnTyp types.T

	// Desc is the static capability declaration the planner matches
	// against an expression node before binding.
	Desc expression.Descriptor

	// Build binds the overload to concrete column positions.
	Build func(inputColumn, outputColumn int) expression.VectorExpression
}

// Functions records all overloads registered under one name.
type Functions struct {
	Id        int
	Overloads []Function
}

var (
	mu       sync.RWMutex
	registry = map[string]*Functions{}
)

// Register installs a function under name. Registration happens from init
// functions; a duplicate name is a programming error and panics.
func Register(name string, fs *Functions) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("function %s registered twice", name))
	}
	for i := range fs.Overloads {
		fs.Overloads[i].Index = int32(i)
	}
	registry[name] = fs
}

// Get resolves the overload of name whose descriptor accepts args as
// column inputs.
func Get(name string, args []types.T) (Function, error) {
	mu.RLock()
	fs, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return Function{}, moerr.NewNotSupported("function %s", name)
	}
	kinds := make([]types.InputKind, len(args))
	for i := range kinds {
		kinds[i] = types.Column
	}
	for _, f := range fs.Overloads {
		if f.Desc.Matches(expression.Projection, args, kinds) {
			return f, nil
		}
	}
	return Function{}, moerr.NewNotSupported("function %s with arguments %v", name, args)
}
