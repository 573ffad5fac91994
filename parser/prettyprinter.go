/*
 * HanLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"devt.de/krotik/common/errorutil"
	"devt.de/krotik/common/stringutil"
)

/*
IndentationLevel is the level of indentation which the pretty printer should use
*/
const IndentationLevel = 4

/*
Map of AST nodes corresponding to lexer tokens
*/
var prettyPrinterMap map[string]*template.Template

/*
Map of nodes where the precedence might have changed because of parentheses
*/
var bracketPrecedenceMap map[string]bool

func init() {
	prettyPrinterMap = map[string]*template.Template{

		NodeSTRING:     template.Must(template.New(NodeSTRING).Parse("{{.qval}}")),
		NodeINTEGER:    template.Must(template.New(NodeINTEGER).Parse("{{.val}}")),
		NodeFLOAT:      template.Must(template.New(NodeFLOAT).Parse("{{.val}}")),
		NodeIDENTIFIER: template.Must(template.New(NodeIDENTIFIER).Parse("{{.val}}")),

		// Constructed tokens

		// NodeSTATEMENTS - Special case (handled in code)
		// NodeFUNCCALL - Special case (handled in code)
		// NodeLIST - Special case (handled in code)
		// NodeMAP - Special case (handled in code)
		// NodePARAMS - Special case (handled in code)
		NodeKVP + "_2":   template.Must(template.New(NodeKVP).Parse("{{.c1}} : {{.c2}}")),
		NodeGUARD + "_1": template.Must(template.New(NodeGUARD).Parse("{{.c1}}")),

		// Access operations

		NodeINDEX + "_2":     template.Must(template.New(NodeINDEX).Parse("{{.c1}}[{{.c2}}]")),
		NodeATTRIBUTE + "_2": template.Must(template.New(NodeATTRIBUTE).Parse("{{.c1}}.{{.c2}}")),

		// Condition operators

		NodeGEQ + "_2": template.Must(template.New(NodeGEQ).Parse("{{.c1}} >= {{.c2}}")),
		NodeLEQ + "_2": template.Must(template.New(NodeLEQ).Parse("{{.c1}} <= {{.c2}}")),
		NodeNEQ + "_2": template.Must(template.New(NodeNEQ).Parse("{{.c1}} != {{.c2}}")),
		NodeEQ + "_2":  template.Must(template.New(NodeEQ).Parse("{{.c1}} == {{.c2}}")),
		NodeGT + "_2":  template.Must(template.New(NodeGT).Parse("{{.c1}} > {{.c2}}")),
		NodeLT + "_2":  template.Must(template.New(NodeLT).Parse("{{.c1}} < {{.c2}}")),

		// Arithmetic operators

		NodePLUS + "_2":   template.Must(template.New(NodePLUS).Parse("{{.c1}} + {{.c2}}")),
		NodeMINUS + "_1":  template.Must(template.New(NodeMINUS).Parse("-{{.c1}}")),
		NodeMINUS + "_2":  template.Must(template.New(NodeMINUS).Parse("{{.c1}} - {{.c2}}")),
		NodeTIMES + "_2":  template.Must(template.New(NodeTIMES).Parse("{{.c1}} * {{.c2}}")),
		NodeDIV + "_2":    template.Must(template.New(NodeDIV).Parse("{{.c1}} / {{.c2}}")),
		NodeMODINT + "_2": template.Must(template.New(NodeMODINT).Parse("{{.c1}} % {{.c2}}")),
		NodePOW + "_2":    template.Must(template.New(NodePOW).Parse("{{.c1}} ** {{.c2}}")),

		// Assignment statements

		NodeASSIGN + "_2":      template.Must(template.New(NodeASSIGN).Parse("{{.c1}} = {{.c2}}")),
		NodePLUSASSIGN + "_2":  template.Must(template.New(NodePLUSASSIGN).Parse("{{.c1}} += {{.c2}}")),
		NodeMINUSASSIGN + "_2": template.Must(template.New(NodeMINUSASSIGN).Parse("{{.c1}} -= {{.c2}}")),
		NodeTIMESASSIGN + "_2": template.Must(template.New(NodeTIMESASSIGN).Parse("{{.c1}} *= {{.c2}}")),
		NodeDIVASSIGN + "_2":   template.Must(template.New(NodeDIVASSIGN).Parse("{{.c1}} /= {{.c2}}")),

		// Declarations

		NodeLET + "_1":   template.Must(template.New(NodeLET).Parse("변수 {{.c1}}")),
		NodeLET + "_2":   template.Must(template.New(NodeLET).Parse("변수 {{.c1}} = {{.c2}}")),
		NodeCONST + "_1": template.Must(template.New(NodeCONST).Parse("상수 {{.c1}}")),
		NodeCONST + "_2": template.Must(template.New(NodeCONST).Parse("상수 {{.c1}} = {{.c2}}")),

		// Function definition

		NodeFUNC + "_3":   template.Must(template.New(NodeFUNC).Parse("함수 {{.c1}}{{.c2}} {\n{{.c3}}}")),
		NodeLAMBDA + "_2": template.Must(template.New(NodeLAMBDA).Parse("{{.c1}} => {{.c2}}")),
		NodeRETURN:        template.Must(template.New(NodeRETURN).Parse("반환")),
		NodeRETURN + "_1": template.Must(template.New(NodeRETURN).Parse("반환 {{.c1}}")),

		// Class definition

		NodeCLASS + "_2": template.Must(template.New(NodeCLASS).Parse("클래스 {{.c1}} {\n{{.c2}}}")),

		// Boolean operators

		NodeOR + "_2":  template.Must(template.New(NodeOR).Parse("{{.c1}} 또는 {{.c2}}")),
		NodeAND + "_2": template.Must(template.New(NodeAND).Parse("{{.c1}} 그리고 {{.c2}}")),
		NodeNOT + "_1": template.Must(template.New(NodeNOT).Parse("아님 {{.c1}}")),

		// Ternary operator

		NodeTERNARY + "_3": template.Must(template.New(NodeTERNARY).Parse("{{.c1}} ? {{.c2}} : {{.c3}}")),

		// Constant terminals

		NodeTRUE:  template.Must(template.New(NodeTRUE).Parse("참")),
		NodeFALSE: template.Must(template.New(NodeFALSE).Parse("거짓")),
		NodeNULL:  template.Must(template.New(NodeNULL).Parse("없음")),

		// Conditional statements

		// NodeIF - Special case (handled in code)

		// Loop statements

		NodeLOOP + "_4": template.Must(template.New(NodeLOOP).Parse("반복 {{.c1}} = {{.c2}} : {{.c3}} {\n{{.c4}}}")),
		NodeWHILE + "_2": template.Must(template.New(NodeWHILE).Parse("동안 {{.c1}} {\n{{.c2}}}")),
		NodeBREAK:    template.Must(template.New(NodeBREAK).Parse("중단")),
		NodeCONTINUE: template.Must(template.New(NodeCONTINUE).Parse("계속")),

		// Try statement

		// NodeTRY - Special case (handled in code)
		// NodeCATCH - Special case (handled in code)
		NodeFINALLY + "_1": template.Must(template.New(NodeFINALLY).Parse(" 마침내 {\n{{.c1}}}")),

		// Throw statement

		NodeTHROW + "_1": template.Must(template.New(NodeTHROW).Parse("던지기 {{.c1}}")),

		// IO statements

		// NodePRINT - Special case (handled in code)
		NodeINPUT:        template.Must(template.New(NodeINPUT).Parse("입력()")),
		NodeINPUT + "_1": template.Must(template.New(NodeINPUT).Parse("입력({{.c1}})")),
	}

	bracketPrecedenceMap = map[string]bool{
		NodePLUS:    true,
		NodeMINUS:   true,
		NodeAND:     true,
		NodeOR:      true,
		NodeNOT:     true,
		NodeTERNARY: true,
	}
}

/*
PrettyPrint produces pretty printed code from a given AST.
*/
func PrettyPrint(ast *ASTNode) (string, error) {
	var visit func(ast *ASTNode, path []*ASTNode) (string, error)

	visit = func(ast *ASTNode, path []*ASTNode) (string, error) {
		var buf bytes.Buffer

		if ast == nil {
			return "", fmt.Errorf("Nil pointer in AST")
		}

		numChildren := len(ast.Children)

		tempKey := ast.Name
		tempParam := make(map[string]string)

		// First pretty print children

		if numChildren > 0 {
			for i, child := range ast.Children {
				res, err := visit(child, append(path, child))
				if err != nil {
					return "", err
				}

				if _, ok := bracketPrecedenceMap[child.Name]; ok && ast.binding > child.binding {

					// Put the expression in brackets iff (if and only if) the binding would
					// normally order things differently

					res = fmt.Sprintf("(%v)", res)

				} else if ast.binding == child.binding && ast.binding > 0 && numChildren == 2 &&
					((i == 1 && stringutil.IndexOf(ast.Name, []string{
						NodeMINUS, NodeDIV, NodeMODINT}) != -1) ||
						(i == 0 && ast.Name == NodePOW && child.Name == NodePOW)) {

					// Preserve the association of non-associative operators

					res = fmt.Sprintf("(%v)", res)

				} else if numChildren == 1 && (ast.Name == NodeMINUS || ast.Name == NodeNOT) &&
					child.binding > 0 && child.binding <= ast.binding+20 {

					// Preserve the operand of a prefix operator

					res = fmt.Sprintf("(%v)", res)

				} else if ast.Name == NodeFUNCCALL && i == 0 && child.Name == NodeLAMBDA {

					// A called lambda needs brackets

					res = fmt.Sprintf("(%v)", res)
				}

				tempParam[fmt.Sprint("c", i+1)] = res
			}

			tempKey += fmt.Sprint("_", len(tempParam))
		}

		if res, ok := ppSpecialBlocks(ast, path, tempParam, &buf); ok {
			return res, nil
		} else if res, ok := ppContainerBlocks(ast, path, tempParam, &buf); ok {
			return res, nil
		} else if res, ok := ppSpecialStatements(ast, path, tempParam, &buf); ok {
			return res, nil
		}

		if ast.Token != nil {

			// Adding node value to template parameters

			tempParam["val"] = ast.Token.Val
			tempParam["qval"] = strconv.Quote(ast.Token.Val)
		}

		// Retrieve the template

		temp, ok := prettyPrinterMap[tempKey]
		errorutil.AssertTrue(ok,
			fmt.Sprintf("Could not find template for %v (tempkey: %v)",
				ast.Name, tempKey))

		// Use the children as parameters for template

		errorutil.AssertOk(temp.Execute(&buf, tempParam))

		return ppPostProcessing(ast, path, buf.String()), nil
	}

	res, err := visit(ast, []*ASTNode{ast})

	return strings.TrimSpace(res), err
}

/*
ppPostProcessing applies post processing rules.
*/
func ppPostProcessing(ast *ASTNode, path []*ASTNode, ppString string) string {
	ret := ppString

	// Apply indentation

	if len(path) > 1 && strings.Contains(ret, "\n") {
		if stringutil.IndexOf(ast.Name, []string{
			NodeSTATEMENTS,
			NodeMAP,
			NodeLIST,
		}) != -1 {
			parent := path[len(path)-2]

			indentSpaces := stringutil.GenerateRollingString(" ", IndentationLevel)
			ret = strings.ReplaceAll(ret, "\n", "\n"+indentSpaces)

			// Add initial indent only if we are inside a block statement

			if stringutil.IndexOf(parent.Name, []string{
				NodeASSIGN,
				NodePLUSASSIGN,
				NodeMINUSASSIGN,
				NodeTIMESASSIGN,
				NodeDIVASSIGN,
				NodeKVP,
				NodeLIST,
				NodeFUNCCALL,
				NodeLET,
				NodeCONST,
				NodeRETURN,
				NodeTHROW,
				NodePRINT,
			}) == -1 {
				ret = fmt.Sprintf("%v%v", indentSpaces, ret)
			}

			// Remove indentation from last line

			if idx := strings.LastIndex(ret, "\n"); idx != -1 {
				ret = ret[:idx+1] + ret[idx+IndentationLevel+1:]
			}
		}
	}

	return ret
}

/*
ppSpecialBlocks pretty prints special block cases.
*/
func ppSpecialBlocks(ast *ASTNode, path []*ASTNode, tempParam map[string]string, buf *bytes.Buffer) (string, bool) {
	numChildren := len(ast.Children)

	// Handle special cases - children in tempParam have been resolved

	if ast.Name == NodeSTATEMENTS {

		// For statements just concat all children

		for i := 0; i < numChildren; i++ {
			buf.WriteString(tempParam[fmt.Sprint("c", i+1)])
			buf.WriteString("\n")
		}

		return ppPostProcessing(ast, path, buf.String()), true

	} else if ast.Name == NodeIF {

		// Guard / block pairs - the final guard may be a plain true
		// which represents an else clause

		for i := 0; i < numChildren; i += 2 {
			guard := ast.Children[i]

			if i == 0 {
				buf.WriteString("만약 ")
				buf.WriteString(tempParam[fmt.Sprint("c", i+1)])
			} else if guard.Children[0].Name == NodeTRUE && i == numChildren-2 {
				buf.WriteString(" 아니면")
			} else {
				buf.WriteString(" 아니면만약 ")
				buf.WriteString(tempParam[fmt.Sprint("c", i+1)])
			}

			buf.WriteString(" {\n")
			buf.WriteString(tempParam[fmt.Sprint("c", i+2)])
			buf.WriteString("}")
		}

		return ppPostProcessing(ast, path, buf.String()), true

	} else if ast.Name == NodeTRY {

		buf.WriteString("시도 {\n")
		buf.WriteString(tempParam[fmt.Sprint("c1")])
		buf.WriteString("}")

		for i := 1; i < numChildren; i++ {
			buf.WriteString(tempParam[fmt.Sprint("c", i+1)])
		}

		return ppPostProcessing(ast, path, buf.String()), true

	} else if ast.Name == NodeCATCH {

		buf.WriteString(" 잡기 ")

		if numChildren == 2 {
			buf.WriteString("(")
			buf.WriteString(tempParam["c1"])
			buf.WriteString(") ")
		}

		buf.WriteString("{\n")
		buf.WriteString(tempParam[fmt.Sprint("c", numChildren)])
		buf.WriteString("}")

		return ppPostProcessing(ast, path, buf.String()), true
	}

	return "", false
}

/*
ppContainerBlocks pretty prints container structures.
*/
func ppContainerBlocks(ast *ASTNode, path []*ASTNode, tempParam map[string]string, buf *bytes.Buffer) (string, bool) {
	numChildren := len(ast.Children)

	if ast.Name == NodeLIST {
		multilineThreshold := 4
		buf.WriteString("[")

		if numChildren > multilineThreshold {
			buf.WriteString("\n")
		}

		for i := 0; i < numChildren; i++ {

			buf.WriteString(tempParam[fmt.Sprint("c", i+1)])

			if i < numChildren-1 {
				if numChildren > multilineThreshold {
					buf.WriteString(",")
				} else {
					buf.WriteString(", ")
				}
			}
			if numChildren > multilineThreshold {
				buf.WriteString("\n")
			}
		}

		buf.WriteString("]")

		return ppPostProcessing(ast, path, buf.String()), true

	} else if ast.Name == NodeMAP {
		multilineThreshold := 2
		buf.WriteString("{")

		if numChildren > multilineThreshold {
			buf.WriteString("\n")
		}

		for i := 0; i < numChildren; i++ {

			buf.WriteString(tempParam[fmt.Sprint("c", i+1)])

			if i < numChildren-1 {
				if numChildren > multilineThreshold {
					buf.WriteString(",")
				} else {
					buf.WriteString(", ")
				}
			}
			if numChildren > multilineThreshold {
				buf.WriteString("\n")
			}
		}

		buf.WriteString("}")

		return ppPostProcessing(ast, path, buf.String()), true
	}

	return "", false
}

/*
ppSpecialStatements pretty prints special statement cases.
*/
func ppSpecialStatements(ast *ASTNode, path []*ASTNode, tempParam map[string]string, buf *bytes.Buffer) (string, bool) {
	numChildren := len(ast.Children)

	if ast.Name == NodeFUNCCALL {

		// The first child is the called object

		buf.WriteString(tempParam["c1"])
		buf.WriteString("(")

		for i := 1; i < numChildren; i++ {
			buf.WriteString(tempParam[fmt.Sprint("c", i+1)])
			if i < numChildren-1 {
				buf.WriteString(", ")
			}
		}

		buf.WriteString(")")

		return ppPostProcessing(ast, path, buf.String()), true

	} else if ast.Name == NodePRINT {

		buf.WriteString("출력(")

		for i := 0; i < numChildren; i++ {
			buf.WriteString(tempParam[fmt.Sprint("c", i+1)])
			if i < numChildren-1 {
				buf.WriteString(", ")
			}
		}

		buf.WriteString(")")

		return ppPostProcessing(ast, path, buf.String()), true

	} else if ast.Name == NodePARAMS {

		buf.WriteString("(")

		for i := 0; i < numChildren; i++ {
			buf.WriteString(tempParam[fmt.Sprint("c", i+1)])
			if i < numChildren-1 {
				buf.WriteString(", ")
			}
		}

		buf.WriteString(")")

		return ppPostProcessing(ast, path, buf.String()), true
	}

	return "", false
}
