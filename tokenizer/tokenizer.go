/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package tokenizer

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/samber/lo"

	"github.com/jumboframes/frequency/log"
	"github.com/jumboframes/frequency/trie"
)

// Delimiters close the word in progress, as does the end of input. Any other
// non-letter is skipped without closing or extending a word.
var Delimiters = []byte{' ', '\t', '\n'}

type Tokenizer struct {
	trie   trie.Trie
	length int

	chars int64
	words int64
}

func NewTokenizer(t trie.Trie) *Tokenizer {
	return &Tokenizer{trie: t}
}

func IsDelimiter(c byte) bool {
	return lo.Contains(Delimiters, c)
}

// ProcessCharacter feeds one input byte into the trie.
func (tk *Tokenizer) ProcessCharacter(c byte) error {
	tk.chars++
	index, ok := trie.Index(c)
	if ok {
		if err := tk.trie.Advance(index); err != nil {
			return err
		}
		tk.length++
		tk.trie.ObserveLength(tk.length)
		return nil
	}
	if IsDelimiter(c) {
		tk.closeWord()
	}
	return nil
}

// End signals the end of input.
func (tk *Tokenizer) End() {
	tk.closeWord()
}

func (tk *Tokenizer) closeWord() {
	if tk.trie.InWord() {
		tk.words++
	}
	tk.trie.CloseWord()
	tk.length = 0
}

// Words returns how many words have been closed so far.
func (tk *Tokenizer) Words() int64 {
	return tk.words
}

// ReadFrom consumes r to the end, then closes the last word.
func (tk *Tokenizer) ReadFrom(r io.Reader) (int64, error) {
	reader := bufio.NewReader(r)
	start := tk.chars
	for {
		c, err := reader.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return tk.chars - start, fmt.Errorf("read input: %w", err)
		}
		if err = tk.ProcessCharacter(c); err != nil {
			return tk.chars - start, fmt.Errorf("character %d: %w", tk.chars, err)
		}
	}
	tk.End()
	log.Debugf("tokenized %d bytes, %d words, %d distinct, longest %d",
		tk.chars-start, tk.words, tk.trie.Len(), tk.trie.MaxWordLength())
	return tk.chars - start, nil
}
