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
)

func TestCoreFunctions(t *testing.T) {

	res, err := UnitTestEval(`길이("한랭언어")`, nil)

	if err != nil || res != int64(4) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`길이([1, 2, 3])`, nil)

	if err != nil || res != int64(3) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`길이({"a": 1})`, nil)

	if err != nil || res != int64(1) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`정수변환("42") + 정수변환(3.9) + 정수변환(참)`, nil)

	if err != nil || res != int64(46) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`실수변환("2.5")`, nil)

	if err != nil || res != 2.5 {
		t.Error("Unexpected result: ", res, err)
		return
	}

	_, err = UnitTestEval(`정수변환("abc")`, nil)

	if err == nil || !strings.Contains(err.Error(), "Cannot convert 'abc' to an integer") {
		t.Error("Unexpected error: ", err)
		return
	}

	res, err = UnitTestEval(`타입(1) + " " + 타입(1.5) + " " + 타입("x") + " " + 타입(없음)`, nil)

	if err != nil || res != "정수 실수 문자열 없음" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`타입(길이)`, nil)

	if err != nil || res != "내장함수" {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestRangeFunction(t *testing.T) {

	// The stop value of the range function is exclusive

	res, err := UnitTestEval(`결합(",", 범위(5))`, nil)

	if err != nil || res != "0,1,2,3,4" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`결합(",", 범위(2, 5))`, nil)

	if err != nil || res != "2,3,4" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`결합(",", 범위(5, 0, -2))`, nil)

	if err != nil || res != "5,3,1" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	_, err = UnitTestEval(`범위(1, 5, 0)`, nil)

	if err == nil || !strings.Contains(err.Error(), "Step value must not be zero") {
		t.Error("Unexpected error: ", err)
		return
	}
}

func TestNumericFunctions(t *testing.T) {

	res, err := UnitTestEval(`절대값(-5) + 절대값(2)`, nil)

	if err != nil || res != int64(7) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`최대값(3, 1, 2)`, nil)

	if err != nil || res != int64(3) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`최소값([4, 2, 9])`, nil)

	if err != nil || res != int64(2) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`합계([1, 2, 3])`, nil)

	if err != nil || res != int64(6) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`합계([1, 2.5])`, nil)

	if err != nil || res != 3.5 {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`반올림(2.67, 1)`, nil)

	if err != nil || res != 2.7 {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`반올림(3.7)`, nil)

	if err != nil || res != int64(4) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`로그(자연상수)`, nil)

	if err != nil || res != 1. {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`반올림(로그(8, 2))`, nil)

	if err != nil || res != int64(3) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`랜덤() >= 0 그리고 랜덤() < 1`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`변수 r = 랜덤정수(3, 5)
r >= 3 그리고 r <= 5`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestListFunctions(t *testing.T) {

	// Mutating functions change the list in place and return it

	res, err := UnitTestEval(`
변수 a = [1, 2, 3]
추가(a, 4)
결합(",", a)`, nil)

	if err != nil || res != "1,2,3,4" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`
변수 a = [1, 2, 3, 2]
제거(a, 2)
결합(",", a)`, nil)

	if err != nil || res != "1,3,2" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`
변수 a = [1, 3]
삽입(a, 1, 2)
결합(",", a)`, nil)

	if err != nil || res != "1,2,3" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`
변수 a = [1, 2, 3]
변수 마지막 = 빼기(a)
마지막 == 3 그리고 길이(a) == 2`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`인덱스([5, 6, 7], 6)`, nil)

	if err != nil || res != int64(1) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`개수([1, 2, 1, 1], 1)`, nil)

	if err != nil || res != int64(3) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// A copy is independent of the original

	res, err = UnitTestEval(`
변수 a = [1, 2]
변수 b = 복사(a)
추가(b, 3)
길이(a) * 10 + 길이(b)`, nil)

	if err != nil || res != int64(23) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`
변수 a = [1, 2]
비우기(a)
길이(a)`, nil)

	if err != nil || res != int64(0) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`포함([1, 2, 3], 2) 그리고 아님 포함([1, 2, 3], 9)`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`결합(",", 정렬([3, 1, 2]))`, nil)

	if err != nil || res != "1,2,3" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`결합(",", 정렬(["b", "a", "c"]))`, nil)

	if err != nil || res != "a,b,c" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`결합(",", 뒤집기([1, 2, 3]))`, nil)

	if err != nil || res != "3,2,1" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`뒤집기("abc")`, nil)

	if err != nil || res != "cba" {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestDictFunctions(t *testing.T) {

	res, err := UnitTestEval(`결합(",", 키값들({"a": 1, "b": 2}))`, nil)

	if err != nil || res != "a,b" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`결합(",", 값들({"a": 1, "b": 2}))`, nil)

	if err != nil || res != "1,2" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`항목들({"a": 1})[0][1]`, nil)

	if err != nil || res != int64(1) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`
변수 d = 딕셔너리()
d["x"] = 1
길이(d)`, nil)

	if err != nil || res != int64(1) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`포함({"a": 1}, "a")`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestStringFunctions(t *testing.T) {

	res, err := UnitTestEval(`대문자("abc") + 소문자("DEF")`, nil)

	if err != nil || res != "ABCdef" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`결합("-", 분리("a b c"))`, nil)

	if err != nil || res != "a-b-c" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`결합("-", 분리("a,b", ","))`, nil)

	if err != nil || res != "a-b" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`교체("banana", "na", "NA")`, nil)

	if err != nil || res != "baNANA" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`공백제거("  x  ") + 왼쪽공백제거("  y") + 오른쪽공백제거("z  ")`, nil)

	if err != nil || res != "xyz" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`찾기("한랭언어", "언어")`, nil)

	if err != nil || res != int64(2) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`찾기("abc", "z")`, nil)

	if err != nil || res != int64(-1) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`시작확인("hanlang", "han") 그리고 끝확인("hanlang", "lang")`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`자르기("한랭언어", 1, 3)`, nil)

	if err != nil || res != "랭언" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`자르기("abcdef", -2)`, nil)

	if err != nil || res != "ef" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`반복문자("ab", 3)`, nil)

	if err != nil || res != "ababab" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`채우기("a", 4, "-")`, nil)

	if err != nil || res != "-a--" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`왼쪽채우기("ab", 4) + "|"`, nil)

	if err != nil || res != "ab  |" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`오른쪽채우기("ab", 4, "0")`, nil)

	if err != nil || res != "00ab" {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`포함("han lang", " ")`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}
}

func TestStdlibFunctions(t *testing.T) {

	res, err := UnitTestEval(`제곱근(16)`, nil)

	if err != nil || res != 4. {
		t.Error("Unexpected result: ", res, err)
		return
	}

	_, err = UnitTestEval(`제곱근(-1)`, nil)

	if err == nil || !strings.Contains(err.Error(), "Cannot calculate the square root of -1") {
		t.Error("Unexpected error: ", err)
		return
	}

	res, err = UnitTestEval(`거듭제곱(2, 10)`, nil)

	if err != nil || res != 1024. {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`올림(3.2) + 내림(3.8)`, nil)

	if err != nil || res != int64(7) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`코사인(0)`, nil)

	if err != nil || res != 1. {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`사인(0) + 탄젠트(0) + 아크탄젠트(0)`, nil)

	if err != nil || res != 0. {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`반올림(로그10(100))`, nil)

	if err != nil || res != int64(2) {
		t.Error("Unexpected result: ", res, err)
		return
	}

	// Stdlib constants are registered in the global frame

	res, err = UnitTestEval(`파이 > 3.14 그리고 파이 < 3.15`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}

	res, err = UnitTestEval(`무한대 > 99999999`, nil)

	if err != nil || res != true {
		t.Error("Unexpected result: ", res, err)
		return
	}
}
