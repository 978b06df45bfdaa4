//-----------------------------------------------------------------------------
// Copyright (c) 2026-present The Lisb Authors
//
// This file is part of lisb.
//
// lisb is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
//-----------------------------------------------------------------------------

// Command lisb is the interactive REPL: read a line, parse it, evaluate it
// against the root environment, print the result, repeat. Parsing,
// reading and evaluation are delegated to lisbparse, lisbread, lisbeval and
// lisbbuiltins; this file is only the loop, flags and logging around them.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/pborman/getopt"

	"lisb.dev/lisb"
	"lisb.dev/lisb/lisbbuiltins"
	"lisb.dev/lisb/lisbeval"
	"lisb.dev/lisb/lisbparse"
	"lisb.dev/lisb/lisbread"
)

const (
	banner1 = "Lisb Version 0.0.1"
	banner2 = "Press Ctrl+C to Exit"
	prompt  = "lisb> "
)

func main() {
	var (
		loadPath string
		debugLog bool
		noBanner bool
		help     bool
	)
	getopt.StringVarLong(&loadPath, "load", 0, "evaluate FILE on startup before entering the REPL", "FILE")
	getopt.BoolVarLong(&debugLog, "debug", 0, "log every evaluated top-level expression to stderr")
	getopt.BoolVarLong(&noBanner, "no-banner", 0, "suppress the startup banner")
	getopt.BoolVarLong(&help, "help", '?', "display this help")
	getopt.SetParameters("")

	if err := getopt.Getopt(nil); err != nil {
		fmt.Fprintln(os.Stderr, err)
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelFor(debugLog),
	}))

	root := lisb.NewEnvironment(nil)
	lisbbuiltins.Register(root)

	if loadPath != "" {
		if err := loadFile(root, loadPath, logger); err != nil {
			fmt.Fprintf(os.Stderr, "lisb: %v\n", err)
			os.Exit(1)
		}
	}

	if !noBanner {
		fmt.Println(banner1)
		fmt.Println(banner2)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		os.Exit(0)
	}()

	repl(os.Stdout, root, logger)
}

func levelFor(debugLog bool) slog.Level {
	if debugLog {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

func repl(w io.Writer, root *lisb.Environment, logger *slog.Logger) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			return
		}
		evalLine(w, root, scanner.Text(), logger)
	}
}

// evalLine parses and evaluates every top-level expression in line,
// printing each result to w in turn, and recovers from any implementation
// panic so a single bad expression never brings down the session.
func evalLine(w io.Writer, root *lisb.Environment, line string, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("recovered from panic", "value", r, "stack", string(debug.Stack()))
			fmt.Fprintln(w, "Error: internal error")
		}
	}()

	tree, err := lisbparse.ParseString("<stdin>", line)
	if err != nil {
		fmt.Fprintln(w, err)
		return
	}

	program := lisbread.Read(tree)
	for _, expr := range program.Items() {
		logger.Debug("evaluating", "expr", lisb.Sprint(expr))
		result := lisbeval.Eval(root, expr)
		logger.Debug("evaluated", "result", lisb.Sprint(result))
		fmt.Fprintln(w, lisb.Sprint(result))
	}
}

// loadFile evaluates every top-level expression in path against root,
// without printing results; a returned Error value aborts the load.
func loadFile(root *lisb.Environment, path string, logger *slog.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	tree, err := lisbparse.ParseString(path, string(data))
	if err != nil {
		return err
	}
	program := lisbread.Read(tree)
	for _, expr := range program.Items() {
		logger.Debug("loading", "expr", lisb.Sprint(expr))
		if result := lisbeval.Eval(root, expr); lisb.IsError(result) {
			return fmt.Errorf("%s: %s", path, lisb.Sprint(result))
		}
	}
	return nil
}
