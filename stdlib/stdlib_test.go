/*
 * HanLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package stdlib

import (
	"math"
	"testing"
)

func TestGetStdlibSymbols(t *testing.T) {

	funcs, consts := GetStdlibSymbols()

	if len(funcs) == 0 || len(consts) != 3 {
		t.Error("Unexpected symbols: ", funcs, consts)
		return
	}

	if _, ok := GetStdlibFunc("제곱근"); !ok {
		t.Error("Function 제곱근 should exist")
		return
	}

	if _, ok := GetStdlibFunc("없는함수"); ok {
		t.Error("Function 없는함수 should not exist")
		return
	}

	if val, ok := GetStdlibConst("파이"); !ok || val != math.Pi {
		t.Error("Unexpected result: ", val, ok)
		return
	}

	if _, ok := GetStdlibConst("없는상수"); ok {
		t.Error("Constant 없는상수 should not exist")
		return
	}
}

func TestStdlibFunctions(t *testing.T) {

	sqrt, _ := GetStdlibFunc("제곱근")

	res, err := sqrt.Run(nil, []interface{}{int64(9)})

	if err != nil || res != 3. {
		t.Error("Unexpected result: ", res, err)
		return
	}

	if doc, err := sqrt.DocString(); err != nil || doc == "" {
		t.Error("Unexpected result: ", doc, err)
		return
	}

	// Error returns of the wrapped function are passed through

	_, err = sqrt.Run(nil, []interface{}{float64(-1)})

	if err == nil || err.Error() != "Cannot calculate the square root of -1" {
		t.Error("Unexpected error: ", err)
		return
	}

	upper, _ := GetStdlibFunc("대문자")

	res, err = upper.Run(nil, []interface{}{"hanlang"})

	if err != nil || res != "HANLANG" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	repeat, _ := GetStdlibFunc("반복문자")

	res, err = repeat.Run(nil, []interface{}{"ab", int64(2)})

	if err != nil || res != "abab" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	ceil, _ := GetStdlibFunc("올림")

	res, err = ceil.Run(nil, []interface{}{3.2})

	if err != nil || res != int64(4) {
		t.Error("Unexpected result: ", res, err)
		return
	}
}
