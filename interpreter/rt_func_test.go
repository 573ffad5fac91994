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

	"devt.de/krotik/hanlang/config"
	"devt.de/krotik/hanlang/util"
)

func TestFunctionDeclarationsAndCalls(t *testing.T) {

	res, err := UnitTestEvalAndAST(
		`
함수 더하기(a, b) {
    반환 a + b
}
더하기(3, 5)`, nil, "")

	if err != nil || res != int64(8) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Falling off the end of a function returns the null value

	res, err = UnitTestEval(`
함수 아무것도없음() {
}
아무것도없음() == 없음`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// A bare return statement returns the null value

	res, err = UnitTestEval(`
함수 일찍반환(x) {
    만약 x {
        반환
    }
    반환 1
}
일찍반환(참) == 없음`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestRecursion(t *testing.T) {

	res, err := UnitTestEval(`
함수 팩토리얼(n) {
    만약 n <= 1 {
        반환 1
    }
    반환 n * 팩토리얼(n - 1)
}
팩토리얼(5)`, nil)

	if err != nil || res != int64(120) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Mutual recursion

	res, err = UnitTestEval(`
함수 짝수(n) {
    만약 n == 0 {
        반환 참
    }
    반환 홀수(n - 1)
}
함수 홀수(n) {
    만약 n == 0 {
        반환 거짓
    }
    반환 짝수(n - 1)
}
짝수(10)`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestMaxCallDepth(t *testing.T) {

	maxCallDepth := config.Config[config.MaxCallDepth]
	config.Config[config.MaxCallDepth] = 20
	defer func() {
		config.Config[config.MaxCallDepth] = maxCallDepth
	}()

	_, err := UnitTestEval(`
함수 영원히(n) {
    반환 영원히(n + 1)
}
영원히(0)`, nil)

	if rerr, ok := err.(*util.RuntimeError); !ok || rerr.Type != util.ErrMaxCallDepth {
		t.Error("Unexpected error: ", err)
		return
	}
}

func TestArityChecks(t *testing.T) {

	_, err := UnitTestEval(`
함수 더하기(a, b) {
    반환 a + b
}
더하기(1)`, nil)

	if err == nil || !strings.Contains(err.Error(), "requires 2 arguments but 1 were given") {
		t.Error("Unexpected error: ", err)
		return
	}

	_, err = UnitTestEval(`
변수 더하기 = (x, y) => x + y
더하기(1, 2, 3)`, nil)

	if err == nil || !strings.Contains(err.Error(), "requires 2 arguments but 3 were given") {
		t.Error("Unexpected error: ", err)
		return
	}
}

func TestClosures(t *testing.T) {

	// A returned function keeps seeing its defining scope

	res, err := UnitTestEval(`
함수 카운터만들기() {
    변수 개수 = 0
    함수 증가() {
        개수 += 1
        반환 개수
    }
    반환 증가
}
변수 붕 = 카운터만들기()
붕()
붕()
붕()`, nil)

	if err != nil || res != int64(3) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Two closures from different calls do not share their scope

	res, err = UnitTestEval(`
함수 카운터만들기() {
    변수 개수 = 0
    함수 증가() {
        개수 += 1
        반환 개수
    }
    반환 증가
}
변수 첫번째 = 카운터만들기()
변수 두번째 = 카운터만들기()
첫번째()
첫번째()
두번째()`, nil)

	if err != nil || res != int64(1) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Closures see updates made to the enclosing scope before the call

	res, err = UnitTestEval(`
변수 x = 1
함수 읽기() {
    반환 x
}
x = 42
읽기()`, nil)

	if err != nil || res != int64(42) {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestLambdas(t *testing.T) {

	res, err := UnitTestEvalAndAST(
		`
변수 더하기 = (x, y) => x + y
더하기(2, 3)`, nil, "")

	if err != nil || res != int64(5) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Lambdas without parameters

	res, err = UnitTestEval(`
변수 상수42 = () => 42
상수42()`, nil)

	if err != nil || res != int64(42) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Lambdas capture their defining scope

	res, err = UnitTestEval(`
변수 배수 = 10
변수 곱 = (x) => x * 배수
곱(5)`, nil)

	if err != nil || res != int64(50) {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestInvalidCallTargets(t *testing.T) {

	_, err := UnitTestEval(`
변수 x = 1
x(2)`, nil)

	if rerr, ok := err.(*util.RuntimeError); !ok || rerr.Type != util.ErrNotCallable {
		t.Error("Unexpected error: ", err)
		return
	}

	_, err = UnitTestEval(`"abc"(2)`, nil)

	if rerr, ok := err.(*util.RuntimeError); !ok || rerr.Type != util.ErrNotCallable {
		t.Error("Unexpected error: ", err)
		return
	}
}
