/*
 * Apache License 2.0
 *
 * Copyright (c) 2022, Austin Zhai
 * All rights reserved.
 */
package io

import "io"

// WriteAll writes every chunk to writer in order, retrying short writes.
// A writer that makes no progress without an error yields io.ErrShortWrite.
func WriteAll(writer io.Writer, chunks ...[]byte) (int, error) {
	total := 0
	for _, data := range chunks {
		pos := 0
		for pos < len(data) {
			m, err := writer.Write(data[pos:])
			pos += m
			total += m
			if err != nil {
				return total, err
			}
			if m == 0 {
				return total, io.ErrShortWrite
			}
		}
	}
	return total, nil
}
