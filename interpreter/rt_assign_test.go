/*
 * HanLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"strings"
	"testing"

	"devt.de/krotik/hanlang/util"
)

func TestVarDeclarations(t *testing.T) {

	res, err := UnitTestEvalAndAST(
		`변수 x = 1`, nil,
		`
let
  identifier: x
  integer: 1
`[1:])

	if err != nil || res != nil {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// A declaration without an initial value binds the null value

	res, err = UnitTestEval(`
변수 x
x == 없음`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEvalAndAST(
		`상수 k = 42`, nil,
		`
const
  identifier: k
  integer: 42
`[1:])

	if err != nil {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestConstantLaw(t *testing.T) {

	// The declaration itself must succeed - the assignment must fail

	_, err := UnitTestEval(`
상수 k = 1
k = 2`, nil)

	if err == nil || !strings.Contains(err.Error(), "Cannot reassign constant: k") {
		t.Error("Unexpected error: ", err)
		return
	}

	// The constant keeps its value in its scope

	res, err := UnitTestEval(`
상수 k = 1
시도 {
    k = 2
} 잡기 {
}
k`, nil)

	if err != nil || res != int64(1) {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestUnknownVariableAssignment(t *testing.T) {

	_, err := UnitTestEval(`unknown = 1`, nil)

	if err == nil || !strings.Contains(err.Error(), "Variable is not defined: unknown") {
		t.Error("Unexpected error: ", err)
		return
	}

	_, err = UnitTestEval(`unknown`, nil)

	if err == nil || !strings.Contains(err.Error(), "Variable is not defined: unknown") {
		t.Error("Unexpected error: ", err)
		return
	}
}

func TestIndexAssignments(t *testing.T) {

	res, err := UnitTestEvalAndAST(
		`
변수 a = [1, 2, 3]
a[1] = 42
a[1]`, nil, "")

	if err != nil || res != int64(42) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// List indices must be in range

	_, err = UnitTestEval(`
변수 a = [1, 2, 3]
a[3] = 4`, nil)

	if rerr, ok := err.(*util.RuntimeError); !ok || rerr.Type != util.ErrOutOfBounds {
		t.Error("Unexpected error: ", err)
		return
	}

	_, err = UnitTestEval(`
변수 a = [1, 2, 3]
a[-1] = 4`, nil)

	if rerr, ok := err.(*util.RuntimeError); !ok || rerr.Type != util.ErrOutOfBounds {
		t.Error("Unexpected error: ", err)
		return
	}

	// Map entries are created on assignment

	res, err = UnitTestEval(`
변수 d = {"a": 1}
d["b"] = 2
d["b"]`, nil)

	if err != nil || res != int64(2) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Only immutable values can be map keys

	_, err = UnitTestEval(`
변수 d = {}
d[[1]] = 2`, nil)

	if err == nil || !strings.Contains(err.Error(), "is not hashable") {
		t.Error("Unexpected error: ", err)
		return
	}

	// Compound assignment through an index access

	res, err = UnitTestEval(`
변수 a = [10]
a[0] += 5
a[0]`, nil)

	if err != nil || res != int64(15) {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestInvalidAssignmentTarget(t *testing.T) {

	_, err := UnitTestEval(`1 + 2 = 3`, nil)

	if err == nil || !strings.Contains(err.Error(), "invalid assignment target") {
		t.Error("Unexpected error: ", err)
		return
	}
}
