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

// Package format holds the scalar integer→text kernels driven by the
// vectorized cast expressions. All kernels are append-style and
// allocation-free when the destination has capacity.
package format

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

const upperHexDigits = "0123456789ABCDEF"

// AppendInt appends the decimal text of v to dst.
func AppendInt[T constraints.Signed](dst []byte, v T) []byte {
	return strconv.AppendInt(dst, int64(v), 10)
}

// AppendUint appends the decimal text of v to dst.
func AppendUint[T constraints.Unsigned](dst []byte, v T) []byte {
	return strconv.AppendUint(dst, uint64(v), 10)
}

// AppendHex appends the uppercase hexadecimal text of v to dst. Negative
// values format as the two's-complement 64-bit pattern, matching the HEX
// builtin of MySQL.
func AppendHex(dst []byte, v int64) []byte {
	u := uint64(v)
	var tmp [16]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = upperHexDigits[u&0xf]
		u >>= 4
		if u == 0 {
			break
		}
	}
	return append(dst, tmp[i:]...)
}

// AppendOct appends the octal text of v to dst, treating v as an unsigned
// 64-bit pattern like the OCT builtin.
func AppendOct(dst []byte, v int64) []byte {
	return strconv.AppendUint(dst, uint64(v), 8)
}

// AppendBin appends the binary text of v to dst, treating v as an
// unsigned 64-bit pattern like the BIN builtin.
func AppendBin(dst []byte, v int64) []byte {
	return strconv.AppendUint(dst, uint64(v), 2)
}
