/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: reader.go
Description: Reader for whitespace-delimited decision system files. One row per
non-blank line, the last token of a line is the decision. Every parse owns a fresh
Encoder so codes never leak between inputs.
*/

package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a decision system and returns the encoded table with its dictionary
func Parse(r io.Reader) (*Table, *Symbols, error) {
	encoder := NewEncoder()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var rows [][]Code
	width := -1
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		tokens := strings.Fields(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		if width == -1 {
			width = len(tokens)
			if width < 2 {
				return nil, nil, &ParseError{Line: lineNo, Err: ErrNoAttributes}
			}
		} else if len(tokens) != width {
			return nil, nil, &ParseError{
				Line: lineNo,
				Err:  fmt.Errorf("%w: got %d tokens, expected %d", ErrRaggedRow, len(tokens), width),
			}
		}

		row := make([]Code, len(tokens))
		for i, token := range tokens {
			row[i] = encoder.Encode(token)
		}
		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read decision system: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil, ErrEmptyTable
	}

	t, err := New(rows)
	if err != nil {
		return nil, nil, err
	}

	return t, encoder.Symbols(), nil
}

// Load opens and parses the decision system stored at path
func Load(path string) (*Table, *Symbols, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open decision system: %w", err)
	}
	defer file.Close()

	t, symbols, err := Parse(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return t, symbols, nil
}
