/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package tokenizer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jumboframes/frequency/trie"
)

const corpus = "it was the best of times, it was the worst of times.\n" +
	"it was the age of wisdom, it was the age of foolishness.\n"

func tokenize(t *testing.T, input string) trie.Trie {
	t.Helper()
	root := trie.NewTrie()
	tk := NewTokenizer(root)
	n, err := tk.ReadFrom(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, int64(len(input)), n)
	assert.False(t, root.InWord())
	return root
}

func TestReadFrom(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		counts map[string]uint64
		list   []string
	}{
		{
			name:   "repeated",
			input:  "the the the",
			counts: map[string]uint64{"the": 3},
			list:   []string{"the"},
		},
		{
			name:   "case insensitive",
			input:  "The THE the",
			counts: map[string]uint64{"the": 3},
			list:   []string{"the"},
		},
		{
			name:   "prefix and word",
			input:  "in inside",
			counts: map[string]uint64{"in": 1, "inside": 1, "ins": 0},
			list:   []string{"in", "inside"},
		},
		{
			name:   "trailing punctuation",
			input:  "times, times.\ntimes",
			counts: map[string]uint64{"times": 3},
			list:   []string{"times"},
		},
		{
			name:   "punctuation inside a word is skipped",
			input:  "don't wi5dom a.b",
			counts: map[string]uint64{"dont": 1, "widom": 1, "ab": 1, "a": 0},
			list:   []string{"ab", "dont", "widom"},
		},
		{
			name:   "carriage return is not a delimiter",
			input:  "age\r\nage\rof\n",
			counts: map[string]uint64{"age": 1, "ageof": 1},
			list:   []string{"age", "ageof"},
		},
		{
			name:   "leading and repeated delimiters",
			input:  " \t\n  it \t\t was\n\n\n",
			counts: map[string]uint64{"it": 1, "was": 1},
			list:   []string{"it", "was"},
		},
		{
			name:   "non ascii bytes are skipped",
			input:  "caf\xc3\xa9 cafe",
			counts: map[string]uint64{"caf": 1, "cafe": 1},
			list:   []string{"caf", "cafe"},
		},
		{
			name:  "empty",
			input: "",
			list:  []string{},
		},
		{
			name:  "only noise",
			input: "... 123 ,,,\n",
			list:  []string{},
		},
		{
			name:  "corpus",
			input: corpus,
			counts: map[string]uint64{
				"it": 4, "was": 4, "the": 4, "of": 4,
				"times": 2, "age": 2,
				"best": 1, "worst": 1, "wisdom": 1, "foolishness": 1,
			},
			list: []string{
				"age", "best", "foolishness", "it", "of",
				"the", "times", "was", "wisdom", "worst",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := tokenize(t, tt.input)
			for word, count := range tt.counts {
				assert.Equal(t, count, root.Count(word), word)
			}
			assert.Equal(t, tt.list, root.List())
			assert.Equal(t, len(tt.list) == 0, root.Empty() || root.Len() == 0)
		})
	}
}

func TestMaxWordLength(t *testing.T) {
	root := tokenize(t, corpus)
	assert.Equal(t, len("foolishness"), root.MaxWordLength())

	// skipped characters do not reset the length of the word in progress
	root = tokenize(t, "ab.cd ef")
	assert.Equal(t, 4, root.MaxWordLength())
	assert.Equal(t, uint64(1), root.Count("abcd"))
}

func TestEndOfInputClosesWord(t *testing.T) {
	root := trie.NewTrie()
	tk := NewTokenizer(root)
	for _, c := range []byte("last") {
		require.NoError(t, tk.ProcessCharacter(c))
	}
	assert.True(t, root.InWord())
	assert.Equal(t, uint64(0), root.Count("last"))

	tk.End()
	assert.False(t, root.InWord())
	assert.Equal(t, uint64(1), root.Count("last"))
	assert.Equal(t, int64(1), tk.Words())

	// a second end of input is a no-op
	tk.End()
	assert.Equal(t, uint64(1), root.Count("last"))
	assert.Equal(t, int64(1), tk.Words())
}

func TestIsDelimiter(t *testing.T) {
	for _, c := range []byte{' ', '\t', '\n'} {
		assert.True(t, IsDelimiter(c))
	}
	for _, c := range []byte{'\r', '\v', '\f', '.', ',', '0', 'a'} {
		assert.False(t, IsDelimiter(c))
	}
}

type failingReader struct {
	data string
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.data == "" {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestReadFromError(t *testing.T) {
	errBroken := errors.New("broken pipe")
	root := trie.NewTrie()
	tk := NewTokenizer(root)
	n, err := tk.ReadFrom(&failingReader{data: "it was", err: errBroken})
	assert.ErrorIs(t, err, errBroken)
	assert.Equal(t, int64(6), n)
	assert.Equal(t, uint64(1), root.Count("it"))
}

func TestReadFromExhausted(t *testing.T) {
	root := trie.NewTrie(trie.OptionMaxNodes(4))
	tk := NewTokenizer(root)
	_, err := tk.ReadFrom(strings.NewReader("it was"))
	assert.ErrorIs(t, err, trie.ErrExhausted)
}
