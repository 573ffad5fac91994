/*
 * HanLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package tool

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"devt.de/krotik/common/fileutil"
	"devt.de/krotik/common/termutil"
	"devt.de/krotik/hanlang/config"
	"devt.de/krotik/hanlang/interpreter"
	"devt.de/krotik/hanlang/parser"
	"devt.de/krotik/hanlang/scope"
	"devt.de/krotik/hanlang/stdlib"
	"devt.de/krotik/hanlang/util"
)

/*
CLIInterpreter is a commandline interpreter for HanLang.
*/
type CLIInterpreter struct {
	GlobalVS        parser.Scope                         // Global variable scope
	RuntimeProvider *interpreter.HanLangRuntimeProvider // Runtime provider of the interpreter

	EntryFile string // Entry file for the program

	// Parameter these can either be set programmatically or via CLI args

	LogFile  *string // Logfile (blank for stdout)
	LogLevel *string // Log level string (debug, info, error)

	// User terminal

	Term termutil.ConsoleLineTerminal

	// Output writer for print statements and log messages

	OutWriter io.Writer
	LogOut    io.Writer
}

/*
NewCLIInterpreter creates a new commandline interpreter for HanLang.
*/
func NewCLIInterpreter() *CLIInterpreter {
	return &CLIInterpreter{scope.NewScope(scope.GlobalScope), nil, "", nil, nil,
		nil, os.Stdout, os.Stdout}
}

/*
ParseArgs parses the command line arguments. Call this after adding custom flags.
Returns true if the program should exit.
*/
func (i *CLIInterpreter) ParseArgs() bool {

	if i.LogFile != nil && i.LogLevel != nil {
		return false
	}

	i.LogFile = flag.String("logfile", "", "Log to a file")
	i.LogLevel = flag.String("loglevel", config.Str(config.DefaultLogLevel), "Logging level (debug, info, error)")
	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), fmt.Sprintf("Usage of %s run [options] [file]", osArgs[0]))
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
	}

	if len(osArgs) >= 2 {
		flag.CommandLine.Parse(osArgs[2:])

		if cargs := flag.Args(); len(cargs) > 0 {
			i.EntryFile = flag.Arg(0)
		}

		if *showHelp {
			flag.Usage()
		}
	}

	return *showHelp
}

/*
CreateRuntimeProvider creates the runtime provider of this interpreter. This
function expects LogFile and LogLevel to be set.
*/
func (i *CLIInterpreter) CreateRuntimeProvider(name string) error {
	var logger util.Logger
	var err error

	if i.RuntimeProvider != nil {
		return nil
	}

	// Check if we should log to a file

	if i.LogFile != nil && *i.LogFile != "" {
		var logWriter io.Writer

		logFileRollover := fileutil.SizeBasedRolloverCondition(1000000) // Each file can be up to a megabyte
		logWriter, err = fileutil.NewMultiFileBuffer(*i.LogFile, fileutil.ConsecutiveNumberIterator(10), logFileRollover)
		logger = util.NewBufferLogger(logWriter)

	} else {

		// Log to the console by default

		logger = util.NewStdOutLogger()
	}

	// Set the log level

	if err == nil {
		if i.LogLevel != nil && *i.LogLevel != "" {
			logger, err = util.NewLogLevelLogger(logger, *i.LogLevel)
		}

		if err == nil {

			stdinReader := bufio.NewReader(os.Stdin)

			// Create the runtime provider - print output is written to the
			// output writer and input is read from stdin

			i.RuntimeProvider = interpreter.NewHanLangRuntimeProvider(name, logger,
				func(line string) {
					fmt.Fprintln(i.OutWriter, line)
				},
				func(prompt string) string {
					fmt.Fprint(i.OutWriter, prompt)

					line, _ := stdinReader.ReadString('\n')

					return strings.TrimRight(line, "\r\n")
				})

			interpreter.RegisterDefaults(i.GlobalVS)
		}
	}

	return err
}

/*
LoadInitialFile runs the initial file if one was given.
*/
func (i *CLIInterpreter) LoadInitialFile() error {
	var err error

	if i.EntryFile != "" {
		var ast *parser.ASTNode
		var initFile []byte

		initFile, err = ioutil.ReadFile(i.EntryFile)

		if err == nil {
			if ast, err = parser.ParseWithRuntime(i.EntryFile, string(initFile), i.RuntimeProvider); err == nil {
				if err = ast.Runtime.Validate(); err == nil {
					_, err = ast.Runtime.Eval(i.GlobalVS)
				}
			}
		}
	}

	return err
}

/*
CreateTerm creates a new console terminal for stdout.
*/
func (i *CLIInterpreter) CreateTerm() error {
	var err error

	if i.Term == nil {
		i.Term, err = termutil.NewConsoleLineTerminal(os.Stdout)
	}

	return err
}

/*
Interpret starts the HanLang code interpreter. Starts an interactive console in
the current tty if the interactive flag is set.
*/
func (i *CLIInterpreter) Interpret(interactive bool) error {

	if i.ParseArgs() {
		return nil
	}

	err := i.CreateTerm()

	if interactive {
		fmt.Fprintln(i.LogOut, fmt.Sprintf("한랭 HanLang %v", config.ProductVersion))
	}

	// Create Runtime Provider

	if err == nil {

		if err = i.CreateRuntimeProvider("console"); err == nil {

			// Execute file if given

			if err = i.LoadInitialFile(); err == nil {

				// Drop into interactive shell

				if interactive {

					// Add history functionality without file persistence

					i.Term, err = termutil.AddHistoryMixin(i.Term, "",
						func(s string) bool {
							return i.isExitLine(s)
						})

					if err == nil {

						if err = i.Term.StartTerm(); err == nil {
							var line string

							defer i.Term.StopTerm()

							fmt.Fprintln(i.LogOut, "Type 'q' or 'quit' to exit the shell and '?' to get help")

							line, err = i.Term.NextLine()
							for err == nil && !i.isExitLine(line) {
								trimmedLine := strings.TrimSpace(line)

								i.HandleInput(i.Term, trimmedLine)

								line, err = i.Term.NextLine()
							}
						}
					}
				}
			}
		}
	}

	return err
}

/*
isExitLine returns if a given input line should exit the interpreter.
*/
func (i *CLIInterpreter) isExitLine(s string) bool {
	return s == "exit" || s == "q" || s == "quit" || s == "bye" || s == "\x04"
}

/*
HandleInput handles input to this interpreter. It parses a given input line
and outputs on the given output terminal.
*/
func (i *CLIInterpreter) HandleInput(ot OutputTerminal, line string) {

	// Process the entered line

	if line == "?" {

		// Show help

		ot.WriteString(fmt.Sprintf("한랭 HanLang %v\n", config.ProductVersion))
		ot.WriteString(fmt.Sprint("\n"))
		ot.WriteString(fmt.Sprint("Console supports all normal HanLang statements and the following special commands:\n"))
		ot.WriteString(fmt.Sprint("\n"))
		ot.WriteString(fmt.Sprint("    @sym [glob] - List all available built-in functions and constants.\n"))
		ot.WriteString(fmt.Sprint("\n"))
		ot.WriteString(fmt.Sprint("Add an argument after the list command to do a full text search. The search string should be in glob format.\n"))

	} else if strings.HasPrefix(line, "@sym") {
		i.displaySymbols(ot, strings.Split(line, " ")[1:])

	} else {
		var ierr error
		var ast *parser.ASTNode
		var res interface{}

		if line != "" {
			if ast, ierr = parser.ParseWithRuntime("console input", line, i.RuntimeProvider); ierr == nil {

				if ierr = ast.Runtime.Validate(); ierr == nil {

					if res, ierr = ast.Runtime.Eval(i.GlobalVS); ierr == nil && res != nil {
						ot.WriteString(fmt.Sprintln(scope.EvalToString(res)))
					}
				}
			}

			if ierr != nil {
				ot.WriteString(fmt.Sprintln(ierr.Error()))
			}
		}
	}
}

/*
displaySymbols lists all registered built-in functions and constants.
*/
func (i *CLIInterpreter) displaySymbols(ot OutputTerminal, args []string) {
	var names []string

	docstrings := make(map[string]string)

	for name, funcObj := range interpreter.InbuildFuncMap {
		doc, _ := funcObj.DocString()
		names = append(names, name)
		docstrings[name] = doc
	}

	funcs, consts := stdlib.GetStdlibSymbols()

	for _, name := range funcs {
		funcObj, _ := stdlib.GetStdlibFunc(name)
		doc, _ := funcObj.DocString()
		names = append(names, name)
		docstrings[name] = doc
	}

	for _, name := range consts {
		constVal, _ := stdlib.GetStdlibConst(name)
		names = append(names, name)
		docstrings[name] = fmt.Sprintf("Constant: %v", scope.EvalToString(constVal))
	}

	sort.Strings(names)

	for _, name := range names {

		if len(args) > 0 && !matchesFulltextSearch(ot,
			fmt.Sprintf("%v %v", name, docstrings[name]), args[0]) {
			continue
		}

		ot.WriteString(fmt.Sprintf("%v - %v\n", name, docstrings[name]))
	}
}
