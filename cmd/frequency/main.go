/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */

// Frequency reads text from standard input and prints every distinct word
// with its number of occurrences, ascending by default or descending when
// the first argument starts with r or R.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jumboframes/frequency/config"
	"github.com/jumboframes/frequency/emitter"
	"github.com/jumboframes/frequency/log"
	"github.com/jumboframes/frequency/tokenizer"
	"github.com/jumboframes/frequency/trie"
)

var (
	errArgCount = errors.New("wrong number of arguments")
	errArgBad   = errors.New("bad command line arguments")
)

func main() {
	code := run(os.Args, os.Stdin, os.Stdout)
	log.Flush()
	os.Exit(code)
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	program := "frequency"
	if len(args) > 0 {
		program = filepath.Base(args[0])
	}
	order, err := parseOrder(args)
	if err != nil {
		usage(stdout, program, err)
		return 1
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.Errorf("load config: %s", err)
		return 1
	}
	if err = log.Setup(cfg.Log.Verbosity); err != nil {
		log.Errorf("setup log: %s", err)
		return 1
	}

	input, err := tokenizer.NewDecodingReader(stdin, cfg.Encoding)
	if err != nil {
		log.Errorf("input: %s", err)
		return 1
	}

	root := trie.NewTrie(trie.OptionMaxNodes(cfg.MaxNodes))
	if _, err = tokenizer.NewTokenizer(root).ReadFrom(input); err != nil {
		if errors.Is(err, trie.ErrExhausted) {
			log.Errorf("not enough memory: %s", err)
		} else {
			log.Errorf("tokenize: %s", err)
		}
		return 1
	}

	printer := emitter.NewEmitter(stdout,
		emitter.OptionOrder(order),
		emitter.OptionSeparator(cfg.Separator))
	if _, err = printer.Emit(root); err != nil {
		log.Errorf("%s", err)
		return 1
	}
	return 0
}

// parseOrder accepts no argument or a single one starting with r or R.
func parseOrder(args []string) (emitter.Order, error) {
	switch {
	case len(args) <= 1:
		return emitter.Forward, nil
	case len(args) > 2:
		return emitter.Forward, errArgCount
	case len(args[1]) > 0 && (args[1][0] == 'r' || args[1][0] == 'R'):
		return emitter.Reverse, nil
	}
	return emitter.Forward, errArgBad
}

func usage(w io.Writer, program string, err error) {
	fmt.Fprintf(w, "\n%s\n\nUSAGE:\n\t%s [r|R]\n\n", err, program)
}
