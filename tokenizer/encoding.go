/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package tokenizer

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/htmlindex"
)

var ErrEncoding = errors.New("unknown encoding")

// NewDecodingReader converts r from the named encoding to UTF-8. An empty
// name returns r unchanged. Decoded non-ASCII characters stay non-letters.
func NewDecodingReader(r io.Reader, name string) (io.Reader, error) {
	if name == "" {
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %s", ErrEncoding, name, err)
	}
	return enc.NewDecoder().Reader(r), nil
}

// ValidEncoding reports whether name is accepted by NewDecodingReader.
func ValidEncoding(name string) bool {
	if name == "" {
		return true
	}
	_, err := htmlindex.Get(name)
	return err == nil
}
