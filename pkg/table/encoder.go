/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: encoder.go
Description: Symbol encoder and dictionary. An Encoder assigns codes to tokens in order
of first occurrence for one input; condition and decision columns share one numbering.
The resulting Symbols dictionary translates codes back to the original tokens.
*/

package table

import (
	"fmt"
)

// Encoder assigns codes to tokens for a single parse
type Encoder struct {
	codes   map[string]Code
	symbols []string
}

// NewEncoder creates an empty encoder
func NewEncoder() *Encoder {
	return &Encoder{codes: make(map[string]Code)}
}

// Encode returns the code of token, assigning the next free code on first sight
func (e *Encoder) Encode(token string) Code {
	if code, ok := e.codes[token]; ok {
		return code
	}
	code := Code(len(e.symbols))
	e.codes[token] = code
	e.symbols = append(e.symbols, token)
	return code
}

// Symbols returns a snapshot of the dictionary built so far
func (e *Encoder) Symbols() *Symbols {
	s := &Symbols{
		byCode:   append([]string(nil), e.symbols...),
		bySymbol: make(map[string]Code, len(e.codes)),
	}
	for token, code := range e.codes {
		s.bySymbol[token] = code
	}
	return s
}

// Symbols is the read-only bijection between codes and tokens
type Symbols struct {
	byCode   []string
	bySymbol map[string]Code
}

// Len returns the number of distinct symbols
func (s *Symbols) Len() int {
	return len(s.byCode)
}

// Symbol returns the token for code
func (s *Symbols) Symbol(code Code) (string, error) {
	if code < 0 || int(code) >= len(s.byCode) {
		return "", fmt.Errorf("%w: %d", ErrUnknownCode, code)
	}
	return s.byCode[code], nil
}

// Code returns the code for token
func (s *Symbols) Code(token string) (Code, error) {
	code, ok := s.bySymbol[token]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, token)
	}
	return code, nil
}

// List returns the tokens indexed by code
func (s *Symbols) List() []string {
	return append([]string(nil), s.byCode...)
}
