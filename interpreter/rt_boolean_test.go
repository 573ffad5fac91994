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
	"testing"
)

func TestBooleanOperators(t *testing.T) {

	res, err := UnitTestEvalAndAST(
		`참 그리고 거짓`, nil,
		`
and
  true
  false
`[1:])

	if err != nil || res != false {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`참 또는 거짓`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEvalAndAST(
		`아님 참`, nil,
		`
not
  true
`[1:])

	if err != nil || res != false {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Not binds tighter than and

	res, err = UnitTestEvalAndAST(
		`아님 거짓 그리고 참`, nil,
		`
and
  not
    false
  true
`[1:])

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestShortCircuit(t *testing.T) {

	// The right operand of a determined and must never be evaluated

	res, err := UnitTestEval(`
변수 calls = 0
함수 bump() {
    calls += 1
    반환 참
}
거짓 그리고 bump()
calls`, nil)

	if err != nil || res != int64(0) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`
변수 calls = 0
함수 bump() {
    calls += 1
    반환 참
}
참 또는 bump()
calls`, nil)

	if err != nil || res != int64(0) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// The determining operand is returned without boolean coercion

	res, err = UnitTestEval(`0 또는 "fallback"`, nil)

	if err != nil || res != int64(0) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`없음 또는 "fallback"`, nil)

	if err != nil || res != "fallback" {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestComparisons(t *testing.T) {

	res, err := UnitTestEvalAndAST(
		`1 < 2`, nil,
		`
<
  integer: 1
  integer: 2
`[1:])

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`2 <= 2`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`3 > 4`, nil)

	if err != nil || res != false {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`"apple" < "banana"`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`4 >= 4`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Ordering mixed types is a runtime error

	_, err = UnitTestEval(`1 < "a"`, nil)

	if err == nil {
		t.Error("Mixed type ordering should fail")
		return
	}
}

func TestEquality(t *testing.T) {

	res, err := UnitTestEval(`1 == 1.0`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`1 != 2`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`"a" == "a"`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`[1, [2, 3]] == [1, [2, 3]]`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`{1: "a"} == {1.0: "a"}`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`1 == "1"`, nil)

	if err != nil || res != false {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`없음 == 없음`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestTernary(t *testing.T) {

	res, err := UnitTestEvalAndAST(
		`1 < 2 ? "yes" : "no"`, nil,
		`
ternary
  <
    integer: 1
    integer: 2
  string: 'yes'
  string: 'no'
`[1:])

	if err != nil || res != "yes" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`거짓 ? "yes" : "no"`, nil)

	if err != nil || res != "no" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Only the selected branch is evaluated

	res, err = UnitTestEval(`참 ? 1 : 1 / 0`, nil)

	if err != nil || res != int64(1) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Ternary is right associative

	res, err = UnitTestEval(`거짓 ? 1 : 거짓 ? 2 : 3`, nil)

	if err != nil || res != int64(3) {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestTruthiness(t *testing.T) {

	// Zero and empty collections are truthy - only the null value and
	// false are falsy

	res, err := UnitTestEval(`0 ? "t" : "f"`, nil)

	if err != nil || res != "t" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`[] ? "t" : "f"`, nil)

	if err != nil || res != "t" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`없음 ? "t" : "f"`, nil)

	if err != nil || res != "f" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`아님 0`, nil)

	if err != nil || res != false {
		t.Error("Unexpected result: ", res, err)
		return
	}
}
