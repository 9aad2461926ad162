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

package function_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matrixorigin/vecexec/pkg/common/moerr"
	"github.com/matrixorigin/vecexec/pkg/container/types"
	"github.com/matrixorigin/vecexec/pkg/container/vector"
	"github.com/matrixorigin/vecexec/pkg/sql/plan/function"
	_ "github.com/matrixorigin/vecexec/pkg/sql/plan/function/builtin/unary"
	"github.com/matrixorigin/vecexec/pkg/testutil"
)

func TestGetResolvesBuiltins(t *testing.T) {
	for _, name := range []string{"cast_bigint_as_varchar", "hex", "oct", "bin"} {
		f, err := function.Get(name, []types.T{types.T_int64})
		require.NoError(t, err, name)
		require.Equal(t, types.T_varchar, f.ReturnTyp)
		require.NotNil(t, f.Build)

		// Int-family matching covers the narrower integer types too.
		_, err = function.Get(name, []types.T{types.T_int16})
		require.NoError(t, err, name)
	}
}

func TestGetRejectsBadArguments(t *testing.T) {
	_, err := function.Get("hex", []types.T{types.T_varchar})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))

	_, err = function.Get("hex", []types.T{types.T_int64, types.T_int64})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))

	_, err = function.Get("no_such_function", []types.T{types.T_int64})
	require.True(t, moerr.IsMoErrCode(err, moerr.ErrNotSupported))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	require.Panics(t, func() {
		function.Register("hex", &function.Functions{})
	})
}

func TestResolvedBuiltinEvaluates(t *testing.T) {
	f, err := function.Get("cast_bigint_as_varchar", []types.T{types.T_int64})
	require.NoError(t, err)

	bat := testutil.NewEvalBatch([]int64{7, -5, 42}, nil)
	require.NoError(t, f.Build(0, 1).Evaluate(bat))

	out := bat.GetVector(1).(*vector.BytesColumnVector)
	require.Equal(t, "7", out.GetString(0))
	require.Equal(t, "-5", out.GetString(1))
	require.Equal(t, "42", out.GetString(2))
}
