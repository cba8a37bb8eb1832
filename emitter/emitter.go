/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package emitter

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	xio "github.com/jumboframes/frequency/io"
	"github.com/jumboframes/frequency/log"
	"github.com/jumboframes/frequency/trie"
)

type Order int

const (
	Forward Order = iota
	Reverse
)

func (order Order) String() string {
	switch order {
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	}
	return "Order(" + strconv.Itoa(int(order)) + ")"
}

const DefaultSeparator = " "

type Entry struct {
	Word  string
	Count uint64
}

type EmitterOption func(*Emitter)

func OptionOrder(order Order) EmitterOption {
	return func(emitter *Emitter) {
		emitter.order = order
	}
}

func OptionSeparator(separator string) EmitterOption {
	return func(emitter *Emitter) {
		emitter.separator = []byte(separator)
	}
}

// Emitter walks a trie depth first in letter order and reports every word
// with its count. The word buffer is shared by all walks of one Emitter, so
// an Emitter must not be used concurrently.
type Emitter struct {
	writer    *bufio.Writer
	order     Order
	separator []byte

	word []byte
	line []byte
}

// NewEmitter returns an Emitter printing to writer, which may be nil when
// only Collect is used.
func NewEmitter(writer io.Writer, options ...EmitterOption) *Emitter {
	emitter := &Emitter{
		order:     Forward,
		separator: []byte(DefaultSeparator),
	}
	if writer != nil {
		emitter.writer = bufio.NewWriter(writer)
	}
	for _, option := range options {
		option(emitter)
	}
	return emitter
}

// Emit prints one "<word><separator><count>" line per word and returns the
// number of lines written.
func (emitter *Emitter) Emit(t trie.Trie) (int, error) {
	if emitter.writer == nil {
		return 0, fmt.Errorf("emit %s: no writer", emitter.order)
	}
	lines := 0
	err := emitter.walk(t, func(word []byte, count uint64) error {
		line := append(emitter.line[:0], word...)
		line = append(line, emitter.separator...)
		line = strconv.AppendUint(line, count, 10)
		line = append(line, '\n')
		emitter.line = line
		if _, err := xio.WriteAll(emitter.writer, line); err != nil {
			return err
		}
		lines++
		return nil
	})
	if err == nil {
		err = emitter.writer.Flush()
	}
	if err != nil {
		return lines, fmt.Errorf("emit %s: %w", emitter.order, err)
	}
	log.Debugf("emitted %d words in %s order", lines, emitter.order)
	return lines, nil
}

// Collect returns the words of t in the emitter's order.
func (emitter *Emitter) Collect(t trie.Trie) []Entry {
	entries := make([]Entry, 0, t.Len())
	emitter.walk(t, func(word []byte, count uint64) error {
		entries = append(entries, Entry{Word: string(word), Count: count})
		return nil
	})
	return entries
}

func (emitter *Emitter) walk(t trie.Trie, visit func(word []byte, count uint64) error) error {
	if t.Empty() {
		return nil
	}
	if cap(emitter.word) < t.MaxWordLength()+1 {
		emitter.word = make([]byte, 0, t.MaxWordLength()+1)
	}
	for i := 0; i < trie.NumLetters; i++ {
		child, ok := t.Child(emitter.index(i))
		if !ok {
			continue
		}
		if err := emitter.visit(child, 0, visit); err != nil {
			return err
		}
	}
	return nil
}

// visit writes node's letter at depth, reports the word if one ends here and
// descends into the children. A word end may also have children: a prefix
// sorts before its extensions, so it is reported before them in forward
// order and after them in reverse order.
func (emitter *Emitter) visit(node trie.Node, depth int,
	visit func(word []byte, count uint64) error) error {

	emitter.word = append(emitter.word[:depth], node.Letter())
	depth++

	if node.IsWordEnd() && emitter.order != Reverse {
		if err := visit(emitter.word[:depth], node.Count()); err != nil {
			return err
		}
	}
	if node.HasChildren() {
		for i := 0; i < trie.NumLetters; i++ {
			child, ok := node.Child(emitter.index(i))
			if !ok {
				continue
			}
			if err := emitter.visit(child, depth, visit); err != nil {
				return err
			}
		}
	}
	if node.IsWordEnd() && emitter.order == Reverse {
		// children overwrote the buffer past depth only
		if err := visit(emitter.word[:depth], node.Count()); err != nil {
			return err
		}
	}
	return nil
}

func (emitter *Emitter) index(i int) int {
	if emitter.order == Reverse {
		return trie.NumLetters - 1 - i
	}
	return i
}
