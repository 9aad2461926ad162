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

package moerr

import (
	"errors"
	"fmt"
)

const defaultSqlState = "HY000"

const (
	// 0 - 99 is OK. They do not carry info and are special handled
	// using static instances, no alloc.
	Ok uint16 = 0

	// Group 1: internal errors
	ErrStart    uint16 = 20100
	ErrInternal uint16 = 20101
	ErrNYI      uint16 = 20102

	ErrNotSupported uint16 = 20105

	// Group 2: numeric and functions
	ErrDivByZero  uint16 = 20200
	ErrOutOfRange uint16 = 20201
	ErrInvalidArg uint16 = 20203

	// Group 3: invalid input
	ErrInvalidInput uint16 = 20301

	// Group 4: unexpected state
	ErrInvalidState uint16 = 20400
)

type errorItem struct {
	sqlState string
	format   string
}

var errorDefs = map[uint16]errorItem{
	ErrInternal:     {defaultSqlState, "internal error: %s"},
	ErrNYI:          {defaultSqlState, "%s is not yet implemented"},
	ErrNotSupported: {defaultSqlState, "%s is not supported"},
	ErrDivByZero:    {"22012", "division by zero"},
	ErrOutOfRange:   {"22003", "data out of range: data type %s, %s"},
	ErrInvalidArg:   {"22000", "invalid argument %s, bad value %s"},
	ErrInvalidInput: {"22000", "invalid input: %s"},
	ErrInvalidState: {defaultSqlState, "invalid state %s"},
}

// Error is the errno-carrying error of the engine. All failures raised by
// this module are *Error so that callers never have to parse message text.
type Error struct {
	code     uint16
	sqlState string
	message  string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

func (e *Error) SqlState() string {
	return e.sqlState
}

func (e *Error) Succeeded() bool {
	return e.code < ErrStart
}

func newError(code uint16, args ...any) *Error {
	item, has := errorDefs[code]
	if !has {
		panic(fmt.Errorf("missing error definition for code %d", code))
	}
	return &Error{
		code:     code,
		sqlState: item.sqlState,
		message:  fmt.Sprintf(item.format, args...),
	}
}

// IsMoErrCode reports whether err is an *Error carrying the given code.
func IsMoErrCode(err error, code uint16) bool {
	if err == nil {
		return code == Ok
	}
	var me *Error
	if !errors.As(err, &me) {
		return false
	}
	return me.code == code
}

func NewInternalError(format string, args ...any) *Error {
	return newError(ErrInternal, fmt.Sprintf(format, args...))
}

func NewNYI(format string, args ...any) *Error {
	return newError(ErrNYI, fmt.Sprintf(format, args...))
}

func NewNotSupported(format string, args ...any) *Error {
	return newError(ErrNotSupported, fmt.Sprintf(format, args...))
}

func NewDivByZero() *Error {
	return newError(ErrDivByZero)
}

func NewOutOfRange(typ string, format string, args ...any) *Error {
	return newError(ErrOutOfRange, typ, fmt.Sprintf(format, args...))
}

func NewInvalidArg(arg string, val any) *Error {
	return newError(ErrInvalidArg, arg, fmt.Sprintf("%v", val))
}

func NewInvalidInput(format string, args ...any) *Error {
	return newError(ErrInvalidInput, fmt.Sprintf(format, args...))
}

func NewInvalidState(format string, args ...any) *Error {
	return newError(ErrInvalidState, fmt.Sprintf(format, args...))
}
