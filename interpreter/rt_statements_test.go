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
	"fmt"
	"strings"
	"testing"

	"devt.de/krotik/hanlang/util"
)

func TestIfStatements(t *testing.T) {

	res, err := UnitTestEvalAndAST(
		`
만약 1 < 2 {
    "then"
} 아니면 {
    "else"
}`, nil,
		`
if
  guard
    <
      integer: 1
      integer: 2
  statements
    string: 'then'
  guard
    true
  statements
    string: 'else'
`[1:])

	if err != nil || res != "then" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// An elif chain evaluates the first matching branch and skips the rest

	res, err = UnitTestEval(`
변수 x = 3
변수 결과 = ""
만약 x == 1 {
    결과 = "one"
} 아니면만약 x == 2 {
    결과 = "two"
} 아니면만약 x == 3 {
    결과 = "three"
} 아니면만약 x == 3 {
    결과 = "three again"
} 아니면 {
    결과 = "other"
}
결과`, nil)

	if err != nil || res != "three" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`
변수 x = 99
만약 x == 1 {
    "one"
} 아니면만약 x == 2 {
    "two"
} 아니면 {
    "other"
}`, nil)

	if err != nil || res != "other" {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestForLoop(t *testing.T) {

	res, err := UnitTestEvalAndAST(
		`
변수 합 = 0
반복 i = 1 : 3 {
    합 += i
}
합`, nil, "")

	if err != nil || res != int64(6) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// The number of body executions equals max(0, b - a + 1)

	res, err = UnitTestEval(`
변수 회수 = 0
반복 i = 5 : 3 {
    회수 += 1
}
회수`, nil)

	if err != nil || res != int64(0) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Bounds are truncated towards zero

	res, err = UnitTestEval(`
변수 회수 = 0
반복 i = 1.9 : 3.9 {
    회수 += 1
}
회수`, nil)

	if err != nil || res != int64(3) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Break and continue are honored

	res, err = UnitTestEval(`
변수 합 = 0
반복 i = 1 : 10 {
    만약 i == 3 {
        계속
    }
    만약 i == 5 {
        중단
    }
    합 += i
}
합`, nil)

	if err != nil || res != int64(7) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// The loop variable is not visible after the loop

	_, err = UnitTestEval(`
반복 i = 1 : 3 {
}
i`, nil)

	if err == nil || !strings.Contains(err.Error(), "Variable is not defined: i") {
		t.Error("Unexpected error: ", err)
		return
	}
}

func TestWhileLoop(t *testing.T) {

	res, err := UnitTestEvalAndAST(
		`
변수 i = 0
동안 i < 5 {
    i += 1
}
i`, nil, "")

	if err != nil || res != int64(5) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`
변수 i = 0
변수 합 = 0
동안 참 {
    i += 1
    만약 i % 2 == 0 {
        계속
    }
    만약 i > 8 {
        중단
    }
    합 += i
}
합`, nil)

	if err != nil || res != int64(16) {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestTryCatchFinally(t *testing.T) {

	// A thrown value is caught and bound to the catch variable

	res, err := UnitTestEvalAndAST(
		`
변수 잡힌값 = 없음
시도 {
    던지기 "boom"
} 잡기 (e) {
    잡힌값 = e
}
잡힌값`, nil, "")

	if err != nil || res != "boom" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Arbitrary values can be thrown

	res, err = UnitTestEval(`
변수 잡힌값 = 없음
시도 {
    던지기 [1, 2]
} 잡기 (e) {
    잡힌값 = e[1]
}
잡힌값`, nil)

	if err != nil || res != int64(2) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Runtime errors bind the error message as a string

	res, err = UnitTestEval(`
변수 잡힌값 = 없음
시도 {
    1 / 0
} 잡기 (e) {
    잡힌값 = e
}
잡힌값`, nil)

	if err != nil {
		t.Error("Unexpected error: ", err)
		return
	}

	if s, ok := res.(string); !ok || !strings.Contains(s, "Division by zero") {
		t.Error("Unexpected result: ", res)
		return
	}

	// Finally runs on the normal path and on the error path

	res, err = UnitTestEval(`
변수 로그 = []
시도 {
    추가(로그, "try")
    던지기 "x"
} 잡기 {
    추가(로그, "catch")
} 마침내 {
    추가(로그, "finally")
}
결합("-", 로그)`, nil)

	if err != nil || res != "try-catch-finally" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// An uncaught exception still runs finally and surfaces afterwards

	res, err = UnitTestEval(`
변수 로그 = []
시도 {
    던지기 "bad"
} 마침내 {
    추가(로그, "finally")
}`, nil)

	if ue, ok := err.(*util.UserException); !ok || ue.Value != "bad" {
		t.Error("Unexpected error: ", err)
		return
	}
}

func TestTryAndNonLocalExits(t *testing.T) {

	// Return is not catchable and is preserved across finally

	res, err := UnitTestEval(`
변수 로그 = []
함수 f() {
    시도 {
        반환 "result"
    } 잡기 (e) {
        반환 "caught"
    } 마침내 {
        추가(로그, "finally")
    }
    반환 "after"
}
f() + " " + 문자열변환(길이(로그))`, nil)

	if err != nil || res != "result 1" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Break is not catchable

	res, err = UnitTestEval(`
변수 회수 = 0
반복 i = 1 : 10 {
    시도 {
        중단
    } 잡기 (e) {
        회수 = 99
    }
}
회수`, nil)

	if err != nil || res != int64(0) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// A return from finally wins over the try outcome

	res, err = UnitTestEval(`
함수 f() {
    시도 {
        반환 "try"
    } 마침내 {
        반환 "finally"
    }
}
f()`, nil)

	if err != nil || res != "finally" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// An exception raised in finally wins over the try outcome

	_, err = UnitTestEval(`
시도 {
    던지기 "first"
} 마침내 {
    던지기 "second"
}`, nil)

	if ue, ok := err.(*util.UserException); !ok || ue.Value != "second" {
		t.Error("Unexpected error: ", err)
		return
	}
}

func TestPrintStatement(t *testing.T) {

	_, err := UnitTestEvalAndAST(
		`출력("이름:", "한준후", 1 + 1)`, nil,
		`
print
  string: '이름:'
  string: '한준후'
  plus
    integer: 1
    integer: 1
`[1:])

	if err != nil {
		t.Error("Unexpected error: ", err)
		return
	}

	if fmt.Sprint(testOutput) != "[이름: 한준후 2]" {
		t.Error("Unexpected output: ", testOutput)
		return
	}

	// Rendering of the different value types

	_, err = UnitTestEval(`출력(3.0, 참, 거짓, 없음, [1, "a"], {1: "a"})`, nil)

	if err != nil {
		t.Error("Unexpected error: ", err)
		return
	}

	if len(testOutput) != 1 || testOutput[0] != "3.0 참 거짓 없음 [1, 'a'] {1: 'a'}" {
		t.Error("Unexpected output: ", testOutput)
		return
	}

	// Output lines are emitted in program order

	_, err = UnitTestEval(`
반복 i = 1 : 3 {
    출력(i)
}`, nil)

	if err != nil || fmt.Sprint(testOutput) != "[1 2 3]" {
		t.Error("Unexpected output: ", testOutput, err)
		return
	}
}

func TestInputExpression(t *testing.T) {

	testInput = []string{"한준후"}

	res, err := UnitTestEval(`
변수 이름 = 입력("이름? ")
"안녕하세요, " + 이름`, nil)

	if err != nil || res != "안녕하세요, 한준후" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	if fmt.Sprint(testPrompts) != "[이름? ]" {
		t.Error("Unexpected prompts: ", testPrompts)
		return
	}

	// Without a prompt the callback receives an empty string

	testInput = []string{"42"}

	res, err = UnitTestEval(`정수변환(입력())`, nil)

	if err != nil || res != int64(42) {
		t.Error("Unexpected result: ", res, err)
		return
	}
}
