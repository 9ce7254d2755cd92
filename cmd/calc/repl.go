package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zephyrtronium/calc"
)

const (
	banner = "WELCOME TO CALCULATOR LANGUAGE!"
	prompt = "> "
	quit   = "q"
)

// session evaluates expressions and writes their results.
type session struct {
	opts    []calc.Option
	postfix bool
	echo    bool
	out     io.Writer
	log     zerolog.Logger
}

// repl reads expressions from in line by line until EOF or a line reading q.
// Errors in expressions are printed and do not end the session; only errors
// reading in are returned.
func (s *session) repl(in io.Reader) error {
	fmt.Fprintln(s.out, banner)
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, prompt)
		if !sc.Scan() {
			break
		}
		line := sc.Text()
		switch strings.TrimSpace(line) {
		case "":
			continue
		case quit:
			fmt.Fprintln(s.out, "goodbye")
			return nil
		}
		s.eval(line)
		fmt.Fprintln(s.out)
	}
	fmt.Fprintln(s.out)
	return sc.Err()
}

// eval evaluates one expression and prints its result or error. It reports
// whether evaluation succeeded.
func (s *session) eval(text string) bool {
	if s.echo {
		s.print(text)
	}
	r, err := calc.EvaluateString(text, s.opts...)
	if err != nil {
		s.log.Debug().Str("expr", text).Err(err).Msg("evaluation failed")
		s.report(text, err)
		return false
	}
	s.log.Debug().Str("expr", text).Str("result", r).Msg("evaluated")
	fmt.Fprintln(s.out, r)
	return true
}

// print writes the parse tree and postfix form of text, if it parses.
// Evaluation reports any errors.
func (s *session) print(text string) {
	lex, parse := calc.Lex, calc.Parse
	if s.postfix {
		lex, parse = calc.LexPostfix, calc.ParsePostfix
	}
	toks, err := lex(text)
	if err != nil {
		return
	}
	n, err := parse(toks)
	if err != nil {
		return
	}
	post := n.Postfix()
	v := make([]string, len(post))
	for i, tok := range post {
		v[i] = tok.Text
	}
	fmt.Fprintf(s.out, "%v : %s\n", n, strings.Join(v, " "))
}

// report writes an evaluation error, marking the offending column of text
// when the error has one.
func (s *session) report(text string, err error) {
	var ie calc.InputError
	var empty *calc.EmptyInputError
	if errors.As(err, &ie) && !errors.As(err, &empty) {
		fmt.Fprintln(s.out, text)
		fmt.Fprintln(s.out, caret(text, ie.Pos()))
	}
	fmt.Fprintln(s.out, err)
}

// caret returns a line with ^ under the rune at pos in text. Tabs before pos
// are copied and every other rune becomes a space.
func caret(text string, pos int) string {
	var b strings.Builder
	for i, r := range []rune(text) {
		if i >= pos {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('^')
	return b.String()
}
