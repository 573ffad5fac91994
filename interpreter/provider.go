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
	"devt.de/krotik/hanlang/parser"
	"devt.de/krotik/hanlang/util"
)

/*
hanlangRuntimeNew is used to instantiate HanLang runtime components.
*/
type hanlangRuntimeNew func(*HanLangRuntimeProvider, *parser.ASTNode) parser.Runtime

/*
providerMap contains the mapping of AST nodes to runtime components for HanLang ASTs.
*/
var providerMap = map[string]hanlangRuntimeNew{

	parser.NodeEOF: invalidRuntimeInst,

	parser.NodeSTRING:     stringValueRuntimeInst, // String constant
	parser.NodeINTEGER:    numberValueRuntimeInst, // Integer number constant
	parser.NodeFLOAT:      numberValueRuntimeInst, // Floating point number constant
	parser.NodeIDENTIFIER: identifierRuntimeInst,  // Identifier

	// Constructed tokens

	parser.NodeSTATEMENTS: statementsRuntimeInst, // List of statements
	parser.NodeFUNCCALL:   funcCallRuntimeInst,   // Function call
	parser.NodeLIST:       listValueRuntimeInst,  // List value
	parser.NodeMAP:        mapValueRuntimeInst,   // Map value
	parser.NodeKVP:        voidRuntimeInst,       // Key-value pair
	parser.NodePARAMS:     voidRuntimeInst,       // Function parameters
	parser.NodeGUARD:      guardRuntimeInst,      // Guard expressions for conditional statements

	// Access operations

	parser.NodeINDEX:     indexRuntimeInst,     // Index access
	parser.NodeATTRIBUTE: attributeRuntimeInst, // Attribute access

	// Condition operators

	parser.NodeGEQ: greaterequalOpRuntimeInst,
	parser.NodeLEQ: lessequalOpRuntimeInst,
	parser.NodeNEQ: notequalOpRuntimeInst,
	parser.NodeEQ:  equalOpRuntimeInst,
	parser.NodeGT:  greaterOpRuntimeInst,
	parser.NodeLT:  lessOpRuntimeInst,

	// Arithmetic operators

	parser.NodePLUS:   plusOpRuntimeInst,
	parser.NodeMINUS:  minusOpRuntimeInst,
	parser.NodeTIMES:  timesOpRuntimeInst,
	parser.NodeDIV:    divOpRuntimeInst,
	parser.NodeMODINT: modintOpRuntimeInst,
	parser.NodePOW:    powOpRuntimeInst,

	// Assignment statements

	parser.NodeASSIGN:      assignmentRuntimeInst,
	parser.NodePLUSASSIGN:  assignmentRuntimeInst,
	parser.NodeMINUSASSIGN: assignmentRuntimeInst,
	parser.NodeTIMESASSIGN: assignmentRuntimeInst,
	parser.NodeDIVASSIGN:   assignmentRuntimeInst,

	// Declarations

	parser.NodeLET:    varDeclRuntimeInst,
	parser.NodeCONST:  varDeclRuntimeInst,
	parser.NodeFUNC:   funcRuntimeInst,
	parser.NodeLAMBDA: lambdaRuntimeInst,
	parser.NodeRETURN: returnRuntimeInst,
	parser.NodeCLASS:  classRuntimeInst,

	// Boolean operators

	parser.NodeOR:  orOpRuntimeInst,
	parser.NodeAND: andOpRuntimeInst,
	parser.NodeNOT: notOpRuntimeInst,

	// Ternary operator

	parser.NodeTERNARY: ternaryOpRuntimeInst,

	// Constant terminals

	parser.NodeFALSE: falseRuntimeInst,
	parser.NodeTRUE:  trueRuntimeInst,
	parser.NodeNULL:  nullRuntimeInst,

	// Conditional statements

	parser.NodeIF: ifRuntimeInst,

	// Loop statements

	parser.NodeLOOP:     loopRuntimeInst,
	parser.NodeWHILE:    whileRuntimeInst,
	parser.NodeBREAK:    breakRuntimeInst,
	parser.NodeCONTINUE: continueRuntimeInst,

	// Try statement

	parser.NodeTRY:     tryRuntimeInst,
	parser.NodeCATCH:   voidRuntimeInst,
	parser.NodeFINALLY: voidRuntimeInst,
	parser.NodeTHROW:   throwRuntimeInst,

	// IO statements

	parser.NodePRINT: printRuntimeInst,
	parser.NodeINPUT: inputRuntimeInst,
}

/*
HanLangRuntimeProvider is the factory object producing runtime objects for HanLang ASTs.
*/
type HanLangRuntimeProvider struct {
	Name           string              // Name to identify the input
	Logger         util.Logger         // Logger object for log messages
	OutputCallback func(line string)   // Callback which is called once per print statement
	InputCallback  func(prompt string) string // Callback which is called once per input expression
	Interrupt      func() bool         // Optional host interrupt check - called on every node evaluation

	callDepth int // Current depth of guest function calls
}

/*
NewHanLangRuntimeProvider returns a new instance of a HanLang runtime provider.
*/
func NewHanLangRuntimeProvider(name string, logger util.Logger,
	outputCallback func(string), inputCallback func(string) string) *HanLangRuntimeProvider {

	if logger == nil {

		// By default we just have a memory logger

		logger = util.NewMemoryLogger(100)
	}

	erp := &HanLangRuntimeProvider{name, logger, outputCallback, inputCallback, nil, 0}

	if erp.OutputCallback == nil {

		// By default print output is given to the logger

		erp.OutputCallback = func(line string) {
			erp.Logger.LogInfo(line)
		}
	}

	if erp.InputCallback == nil {

		// By default input requests return an empty line

		erp.InputCallback = func(prompt string) string {
			return ""
		}
	}

	return erp
}

/*
Runtime returns a runtime component for a given ASTNode.
*/
func (erp *HanLangRuntimeProvider) Runtime(node *parser.ASTNode) parser.Runtime {

	if instFunc, ok := providerMap[node.Name]; ok {
		return instFunc(erp, node)
	}

	return invalidRuntimeInst(erp, node)
}

/*
NewRuntimeError creates a new RuntimeError object.
*/
func (erp *HanLangRuntimeProvider) NewRuntimeError(t error, d string, node *parser.ASTNode) error {
	return util.NewRuntimeError(erp.Name, t, d, node)
}

/*
Output emits a line of print output.
*/
func (erp *HanLangRuntimeProvider) Output(line string) {
	erp.OutputCallback(line)
}

/*
Input requests a line of input. The request is made synchronously with
respect to the interpreter's call stack.
*/
func (erp *HanLangRuntimeProvider) Input(prompt string) string {
	return erp.InputCallback(prompt)
}
