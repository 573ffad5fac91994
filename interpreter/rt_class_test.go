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

func TestClassDeclaration(t *testing.T) {

	res, err := UnitTestEvalAndAST(
		`
클래스 사람 {
    함수 생성(이름) {
        나.이름 = 이름
    }

    함수 소개() {
        반환 "저는 " + 나.이름 + "입니다"
    }
}
변수 철수 = 사람("김철수")
철수.소개()`, nil, "")

	if err != nil || res != "저는 김철수입니다" {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestConstructor(t *testing.T) {

	// The return value of the constructor is discarded

	res, err := UnitTestEval(`
클래스 점 {
    함수 생성(x, y) {
        나.x = x
        나.y = y
        반환 42
    }
}
변수 p = 점(1, 2)
p.x + p.y`, nil)

	if err != nil || res != int64(3) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Without a constructor the arguments are ignored

	res, err = UnitTestEval(`
클래스 빈클래스 {
}
변수 e = 빈클래스(1, 2)
타입(e)`, nil)

	if err != nil || res != "인스턴스" {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestAttributeAccess(t *testing.T) {

	// Fields take precedence over methods

	res, err := UnitTestEval(`
클래스 충돌 {
    함수 생성() {
        나.값 = "field"
    }

    함수 값() {
        반환 "method"
    }
}
변수 c = 충돌()
c.값`, nil)

	if err != nil || res != "field" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Attribute assignment creates new fields

	res, err = UnitTestEval(`
클래스 가방 {
}
변수 b = 가방()
b.내용 = [1, 2]
추가(b.내용, 3)
길이(b.내용)`, nil)

	if err != nil || res != int64(3) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Unknown attributes are runtime errors

	_, err = UnitTestEval(`
클래스 가방 {
}
변수 b = 가방()
b.없는속성`, nil)

	if rerr, ok := err.(*util.RuntimeError); !ok || rerr.Type != util.ErrUnknownAttribute {
		t.Error("Unexpected error: ", err)
		return
	}

	// Attribute access on non-instances is a runtime error

	_, err = UnitTestEval(`
변수 x = 1
x.속성`, nil)

	if rerr, ok := err.(*util.RuntimeError); !ok || rerr.Type != util.ErrUnknownAttribute {
		t.Error("Unexpected error: ", err)
		return
	}
}

func TestMethodBinding(t *testing.T) {

	// A method looked up on an instance stays bound to it

	res, err := UnitTestEval(`
클래스 계좌 {
    함수 생성(잔액) {
        나.잔액 = 잔액
    }

    함수 입금(금액) {
        나.잔액 += 금액
        반환 나.잔액
    }
}
변수 a = 계좌(100)
변수 입금하기 = a.입금
입금하기(50)
입금하기(25)`, nil)

	if err != nil || res != int64(175) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Methods of different instances work on their own fields

	res, err = UnitTestEval(`
클래스 계좌 {
    함수 생성(잔액) {
        나.잔액 = 잔액
    }

    함수 잔액조회() {
        반환 나.잔액
    }
}
변수 a = 계좌(100)
변수 b = 계좌(999)
a.잔액조회() + b.잔액조회()`, nil)

	if err != nil || res != int64(1099) {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestClassBodyIgnoresOtherStatements(t *testing.T) {

	// Only function declarations of the class body become methods

	res, err := UnitTestEval(`
변수 부작용 = 0
클래스 조용함 {
    부작용 = 42

    함수 인사() {
        반환 "hello"
    }
}
변수 q = 조용함()
q.인사() + " " + 문자열변환(부작용)`, nil)

	if err != nil || res != "hello 0" {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestClassRendering(t *testing.T) {

	res, err := UnitTestEval(`
클래스 사람 {
}
문자열변환(사람)`, nil)

	if err != nil || res != "<클래스 사람>" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`
클래스 사람 {
}
문자열변환(사람())`, nil)

	if err != nil || res != "<사람 인스턴스>" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	_, err = UnitTestEval(`
클래스 사람 {
}
사람.속성`, nil)

	if err == nil || !strings.Contains(err.Error(), "has no attributes") {
		t.Error("Unexpected error: ", err)
		return
	}
}
