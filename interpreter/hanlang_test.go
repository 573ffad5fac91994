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

	"devt.de/krotik/hanlang/parser"
)

/*
runProgram runs a given program in a fresh interpreter and returns the
produced print output.
*/
func runProgram(t *testing.T, src string, input ...string) ([]string, error) {
	var out []string

	hi := NewHanLangInterpreter(
		func(line string) {
			out = append(out, line)
		},
		func(prompt string) string {
			if len(input) == 0 {
				return ""
			}

			line := input[0]
			input = input[1:]

			return line
		})

	err := hi.Run(src)

	return out, err
}

func TestPrograms(t *testing.T) {

	for _, tc := range []struct {
		src string
		out string
	}{
		{`
변수 x = 3 + 4 * 2
출력(x)`, "11"},

		{`
함수 팩토리얼(n) {
    만약 n <= 1 {
        반환 1
    }
    반환 n * 팩토리얼(n - 1)
}
출력(팩토리얼(5))`, "120"},

		{`
반복 i = 1 : 3 {
    출력(i)
}`, "1|2|3"},

		{`
변수 a = [1, 2, 3]
추가(a, 4)
출력(a)`, "[1, 2, 3, 4]"},

		{`
시도 {
    던지기 "boom"
} 잡기 (e) {
    출력(e)
} 마침내 {
    출력("done")
}`, "boom|done"},

		{`
변수 더하기 = (x, y) => x + y
출력(더하기(2, 3))`, "5"},

		{`
클래스 P {
    함수 생성(n) {
        나.n = n
    }
    함수 g() {
        반환 나.n
    }
}
변수 p = P(7)
출력(p.g())`, "7"},
	} {

		out, err := runProgram(t, tc.src)

		if err != nil {
			t.Error("Unexpected error: ", err, " for: ", tc.src)
			return
		}

		if res := strings.Join(out, "|"); res != tc.out {
			t.Error("Unexpected output: ", res, " expected: ", tc.out)
			return
		}
	}
}

func TestDecorativeMarkers(t *testing.T) {

	out, err := runProgram(t, `개발자한준후가 만든언어입니다.
변수 인사 = "안녕하세요"
출력(인사)
감사합니다.`)

	if err != nil || strings.Join(out, "|") != "안녕하세요" {
		t.Error("Unexpected result: ", out, err)
		return
	}
}

func TestInteractionWithInput(t *testing.T) {

	out, err := runProgram(t, `
변수 이름 = 입력("이름? ")
출력("안녕하세요,", 이름)`, "한준후")

	if err != nil || strings.Join(out, "|") != "안녕하세요, 한준후" {
		t.Error("Unexpected result: ", out, err)
		return
	}
}

func TestGlobalStateAcrossRuns(t *testing.T) {
	var out []string

	hi := NewHanLangInterpreter(func(line string) {
		out = append(out, line)
	}, nil)

	if err := hi.Run(`변수 x = 42`); err != nil {
		t.Error("Unexpected error: ", err)
		return
	}

	if err := hi.Run(`출력(x)`); err != nil {
		t.Error("Unexpected error: ", err)
		return
	}

	if strings.Join(out, "|") != "42" {
		t.Error("Unexpected output: ", out)
		return
	}
}

func TestRunErrors(t *testing.T) {

	// Syntax errors surface with line and position information

	_, err := runProgram(t, `변수 x = `)

	if _, ok := err.(*parser.Error); !ok {
		t.Error("Unexpected error: ", err)
		return
	}

	_, err = runProgram(t, `출력("unterminated`)

	if perr, ok := err.(*parser.Error); !ok || perr.Type != parser.ErrLexicalError {
		t.Error("Unexpected error: ", err)
		return
	}

	// Runtime errors surface out of Run

	_, err = runProgram(t, `1 / 0`)

	if err == nil || !strings.Contains(err.Error(), "Division by zero") {
		t.Error("Unexpected error: ", err)
		return
	}
}

func TestHostInterrupt(t *testing.T) {
	var out []string

	hi := NewHanLangInterpreter(func(line string) {
		out = append(out, line)
	}, nil)

	count := 0

	hi.RuntimeProvider.Interrupt = func() bool {
		count++
		return count > 100
	}

	err := hi.Run(`
동안 참 {
    출력("tick")
}`)

	if err == nil || !strings.Contains(err.Error(), "interrupted") {
		t.Error("Unexpected error: ", err)
		return
	}
}
