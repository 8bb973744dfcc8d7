// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package lex provides a small rune-level, state-function based lexer in
// the style popularised by text/template's lexer, minus the
// goroutine/channel plumbing: board descriptions are small and parsed
// once, synchronously, so a pull-based state machine is simpler and
// just as clear.
package lex

import (
	"bufio"
	"io"
)

// EOF is the rune returned by Next once the input is exhausted.
const EOF = rune(-1)

// Type identifies the kind of a lexed Item. Consumers define their own
// Type constants starting at 0.
type Type int

// Pos is a rune offset into the input.
type Pos int

// Item is one lexed token.
type Item struct {
	Type  Type
	Pos   Pos
	Value interface{}
}

// StateFn is one state of the lexer. It consumes zero or more runes and
// returns the state to resume in. Returning nil resumes from the state
// the Lexer was constructed with, i.e. "go back and scan the next
// token".
type StateFn func(*Lexer) StateFn

// Interface is what parsers consume: a stream of Items terminated by an
// Item of Type EOF (consumers assign EOF = 0 or whatever fits their own
// Type enumeration; this package never looks at Type values itself).
type Interface interface {
	Lex() Item
}

// Lexer holds the state of a scan in progress.
type Lexer struct {
	r     *bufio.Reader
	init  StateFn
	state StateFn

	cur    rune
	offset Pos // runes consumed so far
	start  Pos // offset at which the current token started

	item    Item
	hasItem bool
}

// New returns a lexer over r, starting in state init.
func New(r io.Reader, init StateFn) Interface {
	return &Lexer{r: bufio.NewReader(r), init: init, state: init}
}

// Next consumes and returns the next rune, or EOF.
func (l *Lexer) Next() rune {
	r, _, err := l.r.ReadRune()
	if err != nil {
		l.cur = EOF
		return EOF
	}
	l.offset++
	l.cur = r
	return r
}

// Backup pushes the last rune read by Next back onto the input. It may
// only be called once per call to Next.
func (l *Lexer) Backup() {
	if l.cur == EOF {
		return
	}
	if err := l.r.UnreadRune(); err != nil {
		panic(err)
	}
	l.offset--
}

// Current returns the last rune read by Next.
func (l *Lexer) Current() rune {
	return l.cur
}

// AcceptWhile consumes runes while f returns true, then backs up over the
// first rune for which it returns false (or EOF).
func (l *Lexer) AcceptWhile(f func(rune) bool) {
	for {
		r := l.Next()
		if r == EOF {
			return
		}
		if !f(r) {
			l.Backup()
			return
		}
	}
}

// Ignore discards the runes accumulated since the last Emit/Ignore
// without producing an Item (used for skipping whitespace).
func (l *Lexer) Ignore() {
	l.start = l.offset
}

// Emit produces an Item of the given type and value, positioned at the
// start of the current token, and discards the accumulated run.
func (l *Lexer) Emit(t Type, v interface{}) {
	l.item = Item{Type: t, Pos: l.start, Value: v}
	l.hasItem = true
	l.start = l.offset
}

// Lex runs the state machine until an Item is produced and returns it.
func (l *Lexer) Lex() Item {
	for !l.hasItem {
		fn := l.state
		if fn == nil {
			fn = l.init
		}
		l.state = fn(l)
	}
	l.hasItem = false
	return l.item
}
