/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package trie

import (
	"errors"

	"github.com/jumboframes/frequency/log"
)

// NumLetters is the fan-out of every node, one slot per letter a-z.
const NumLetters = 26

var (
	ErrExhausted = errors.New("trie node limit exhausted")
	ErrIndex     = errors.New("letter index out of range")
	ErrInWord    = errors.New("word in progress")
)

// Trie counts words letter by letter. A word is scanned with successive
// Advance calls and finished with CloseWord.
type Trie interface {
	Advance(index int) error
	CloseWord()
	InWord() bool
	ObserveLength(length int)

	Add(word string) error
	Count(word string) uint64
	Contains(word string) bool
	ContainsPrefix(prefix string) bool
	List() []string
	Clear()

	Child(index int) (Node, bool)
	Empty() bool
	MaxWordLength() int
	Len() int
	Nodes() int
}

// Node is the read-only view of a trie node.
type Node interface {
	Letter() byte
	Count() uint64
	IsWordEnd() bool
	HasChildren() bool
	Child(index int) (Node, bool)
}

type TrieOption func(*trie)

// OptionMaxNodes bounds the number of nodes, 0 means unbounded.
func OptionMaxNodes(max int) TrieOption {
	return func(t *trie) {
		if max > 0 {
			t.maxNodes = max
		}
	}
}

func NewTrie(options ...TrieOption) Trie {
	return newTrie(options...)
}

func newTrie(options ...TrieOption) *trie {
	t := &trie{
		empty: true,
	}
	for _, option := range options {
		option(t)
	}
	return t
}

// Index maps an ASCII letter of either case to its slot.
func Index(c byte) (int, bool) {
	switch {
	case 'a' <= c && c <= 'z':
		return int(c - 'a'), true
	case 'A' <= c && c <= 'Z':
		return int(c - 'A'), true
	}
	return 0, false
}

// Letter is the inverse of Index.
func Letter(index int) byte {
	return byte('a' + index)
}

type trieNode struct {
	letter      byte
	count       uint64
	isWordEnd   bool
	hasChildren bool
	children    [NumLetters]*trieNode
}

func (node *trieNode) Letter() byte {
	return node.letter
}

func (node *trieNode) Count() uint64 {
	return node.count
}

func (node *trieNode) IsWordEnd() bool {
	return node.isWordEnd
}

func (node *trieNode) HasChildren() bool {
	return node.hasChildren
}

func (node *trieNode) Child(index int) (Node, bool) {
	if index < 0 || index >= NumLetters || node.children[index] == nil {
		return nil, false
	}
	return node.children[index], true
}

func (node *trieNode) find(letters []byte) *trieNode {
	if len(letters) == 0 {
		return node
	}
	if !node.hasChildren {
		return nil
	}
	index, ok := Index(letters[0])
	if !ok {
		return nil
	}
	child := node.children[index]
	if child == nil {
		return nil
	}
	return child.find(letters[1:])
}

func (node *trieNode) iterate(prefix []byte, iterate func(word []byte, node *trieNode)) {
	prefix = append(prefix, node.letter)
	iterate(prefix, node)
	if !node.hasChildren {
		return
	}
	for _, child := range node.children {
		if child != nil {
			child.iterate(prefix, iterate)
		}
	}
}

type trie struct {
	children      [NumLetters]*trieNode
	cursor        *trieNode
	empty         bool
	maxWordLength int

	words    int
	nodes    int
	maxNodes int
}

func (t *trie) newNode(letter byte) (*trieNode, error) {
	if t.maxNodes > 0 && t.nodes >= t.maxNodes {
		log.Warnf("trie reached %d nodes, refusing letter %c", t.nodes, letter)
		return nil, ErrExhausted
	}
	t.nodes++
	return &trieNode{letter: letter}, nil
}

// Advance extends the word in progress by the letter at index, starting a
// new word from the root when none is in progress.
func (t *trie) Advance(index int) error {
	if index < 0 || index >= NumLetters {
		return ErrIndex
	}

	if t.cursor == nil {
		child := t.children[index]
		if child == nil {
			var err error
			child, err = t.newNode(Letter(index))
			if err != nil {
				return err
			}
			t.children[index] = child
		}
		t.cursor = child
		t.empty = false
		return nil
	}

	child := t.cursor.children[index]
	if child == nil {
		var err error
		child, err = t.newNode(Letter(index))
		if err != nil {
			return err
		}
		t.cursor.children[index] = child
	}
	t.cursor.hasChildren = true
	t.cursor = child
	return nil
}

// CloseWord counts the word in progress, it is a no-op between words.
func (t *trie) CloseWord() {
	if t.cursor == nil {
		return
	}
	if !t.cursor.isWordEnd {
		t.words++
	}
	t.cursor.count++
	t.cursor.isWordEnd = true
	t.cursor = nil
}

func (t *trie) InWord() bool {
	return t.cursor != nil
}

func (t *trie) ObserveLength(length int) {
	if length > t.maxWordLength {
		t.maxWordLength = length
	}
}

// Add counts one occurrence of word. Non-letters in word are skipped, a word
// without letters is not counted.
func (t *trie) Add(word string) error {
	if t.cursor != nil {
		return ErrInWord
	}
	length := 0
	for i := 0; i < len(word); i++ {
		index, ok := Index(word[i])
		if !ok {
			continue
		}
		if err := t.Advance(index); err != nil {
			t.cursor = nil
			return err
		}
		length++
	}
	t.ObserveLength(length)
	t.CloseWord()
	return nil
}

func (t *trie) find(word string) *trieNode {
	letters := []byte(word)
	if len(letters) == 0 {
		return nil
	}
	index, ok := Index(letters[0])
	if !ok {
		return nil
	}
	node := t.children[index]
	if node == nil {
		return nil
	}
	return node.find(letters[1:])
}

func (t *trie) Count(word string) uint64 {
	node := t.find(word)
	if node == nil {
		return 0
	}
	return node.count
}

func (t *trie) Contains(word string) bool {
	node := t.find(word)
	return node != nil && node.isWordEnd
}

func (t *trie) ContainsPrefix(prefix string) bool {
	return t.find(prefix) != nil
}

// List returns all words in ascending order.
func (t *trie) List() []string {
	words := make([]string, 0, t.words)
	prefix := make([]byte, 0, t.maxWordLength)
	iterate := func(word []byte, node *trieNode) {
		if node.isWordEnd {
			words = append(words, string(word))
		}
	}
	for _, node := range t.children {
		if node != nil {
			node.iterate(prefix, iterate)
		}
	}
	return words
}

func (t *trie) Clear() {
	t.children = [NumLetters]*trieNode{}
	t.cursor = nil
	t.empty = true
	t.maxWordLength = 0
	t.words = 0
	t.nodes = 0
}

func (t *trie) Child(index int) (Node, bool) {
	if index < 0 || index >= NumLetters || t.children[index] == nil {
		return nil, false
	}
	return t.children[index], true
}

func (t *trie) Empty() bool {
	return t.empty
}

func (t *trie) MaxWordLength() int {
	return t.maxWordLength
}

// Len returns the number of distinct words.
func (t *trie) Len() int {
	return t.words
}

func (t *trie) Nodes() int {
	return t.nodes
}
