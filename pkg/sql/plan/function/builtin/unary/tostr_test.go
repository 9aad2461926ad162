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

package unary

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/matrixorigin/vecexec/pkg/container/vector"
	"github.com/matrixorigin/vecexec/pkg/sql/colexec/expression"
	"github.com/matrixorigin/vecexec/pkg/testutil"
)

func evalStrings(t *testing.T, build func(in, out int) expression.VectorExpression, vs []int64) []string {
	bat := testutil.NewEvalBatch(vs, nil)
	if err := build(0, 1).Evaluate(bat); err != nil {
		t.Fatal(err)
	}
	out := bat.GetVector(1).(*vector.BytesColumnVector)
	rs := make([]string, len(vs))
	for i := range vs {
		rs[i] = out.GetString(i)
	}
	return rs
}

func TestCastInt64ToString(t *testing.T) {
	convey.Convey("right case", t, func() {
		kases := []struct {
			v    int64
			want string
		}{
			{0, "0"},
			{7, "7"},
			{-5, "-5"},
			{42, "42"},
			{9223372036854775807, "9223372036854775807"},
			{-9223372036854775808, "-9223372036854775808"},
		}
		vs := make([]int64, len(kases))
		for i, k := range kases {
			vs[i] = k.v
		}
		got := evalStrings(t, NewCastInt64ToString, vs)
		for i, k := range kases {
			convey.So(got[i], convey.ShouldEqual, k.want)
		}
	})
}

func TestHexInt64(t *testing.T) {
	convey.Convey("right case", t, func() {
		kases := []struct {
			v    int64
			want string
		}{
			{0, "0"},
			{10, "A"},
			{255, "FF"},
			{4096, "1000"},
			{-1, "FFFFFFFFFFFFFFFF"},
		}
		vs := make([]int64, len(kases))
		for i, k := range kases {
			vs[i] = k.v
		}
		got := evalStrings(t, NewHexInt64, vs)
		for i, k := range kases {
			convey.So(got[i], convey.ShouldEqual, k.want)
		}
	})
}

func TestOctInt64(t *testing.T) {
	convey.Convey("right case", t, func() {
		kases := []struct {
			v    int64
			want string
		}{
			{0, "0"},
			{8, "10"},
			{64, "100"},
			{-1, "1777777777777777777777"},
		}
		vs := make([]int64, len(kases))
		for i, k := range kases {
			vs[i] = k.v
		}
		got := evalStrings(t, NewOctInt64, vs)
		for i, k := range kases {
			convey.So(got[i], convey.ShouldEqual, k.want)
		}
	})
}

func TestBinInt64(t *testing.T) {
	convey.Convey("right case", t, func() {
		kases := []struct {
			v    int64
			want string
		}{
			{0, "0"},
			{5, "101"},
			{64, "1000000"},
		}
		vs := make([]int64, len(kases))
		for i, k := range kases {
			vs[i] = k.v
		}
		got := evalStrings(t, NewBinInt64, vs)
		for i, k := range kases {
			convey.So(got[i], convey.ShouldEqual, k.want)
		}
	})
}

func TestCastNullPropagation(t *testing.T) {
	bat := testutil.NewEvalBatch([]int64{1, 0, 3}, []int{1})
	if err := NewCastInt64ToString(0, 1).Evaluate(bat); err != nil {
		t.Fatal(err)
	}
	out := bat.GetVector(1).(*vector.BytesColumnVector)
	if out.NoNulls || !out.IsNull[1] {
		t.Fatalf("null row not propagated: noNulls=%v isNull=%v", out.NoNulls, out.IsNull[:3])
	}
	if got := out.GetString(2); got != "3" {
		t.Fatalf("row 2 = %q, want %q", got, "3")
	}
}
