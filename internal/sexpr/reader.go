package sexpr

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ReadError is a reader-level diagnostic. Callers that want the shared
// diag.Bag type wrap these; the reader itself has no dependency on diag
// to keep it usable standalone.
type ReadError struct {
	Span    Span
	Message string
}

func (e ReadError) Error() string { return e.Message }

// normalize strips a UTF-8 BOM and applies Unicode NFC normalization,
// the same input boundary the teacher's lexer applies before tokenizing.
func normalize(src []byte) []byte {
	bom := []byte{0xEF, 0xBB, 0xBF}
	src = bytes.TrimPrefix(src, bom)
	if !norm.NFC.IsNormal(src) {
		src = norm.NFC.Bytes(src)
	}
	return src
}

type reader struct {
	file   string
	src    []rune
	pos    int
	line   int
	col    int
	offset int
	errs   []ReadError
}

// Read parses the given source text into a sequence of top-level
// SExpr forms, collecting recoverable errors rather than panicking.
func Read(file string, src []byte) ([]SExpr, []ReadError) {
	r := &reader{
		file: file,
		src:  []rune(string(normalize(src))),
		line: 1,
		col:  1,
	}
	var forms []SExpr
	for {
		r.skipAtmosphere()
		if r.atEOF() {
			break
		}
		form := r.readForm()
		if form != nil {
			forms = append(forms, form)
		}
	}
	return forms, r.errs
}

func (r *reader) atEOF() bool { return r.pos >= len(r.src) }

func (r *reader) peek() rune {
	if r.atEOF() {
		return 0
	}
	return r.src[r.pos]
}

func (r *reader) here() Pos {
	return Pos{Line: r.line, Column: r.col, Offset: r.offset, File: r.file}
}

func (r *reader) advance() rune {
	c := r.src[r.pos]
	r.pos++
	r.offset++
	if c == '\n' {
		r.line++
		r.col = 1
	} else {
		r.col++
	}
	return c
}

func (r *reader) skipAtmosphere() {
	for !r.atEOF() {
		c := r.peek()
		if unicode.IsSpace(c) {
			r.advance()
			continue
		}
		if c == ';' {
			for !r.atEOF() && r.peek() != '\n' {
				r.advance()
			}
			continue
		}
		break
	}
}

func (r *reader) errf(sp Span, msg string) {
	r.errs = append(r.errs, ReadError{Span: sp, Message: msg})
}

func isDelim(c rune) bool {
	return unicode.IsSpace(c) || c == '(' || c == ')' || c == ';' || c == 0
}

func (r *reader) readForm() SExpr {
	start := r.here()
	c := r.peek()

	switch {
	case c == '(':
		return r.readList()
	case c == ')':
		r.advance()
		r.errf(Span{start, r.here()}, "unexpected ')'")
		return nil
	case c == '"':
		return r.readString()
	case c == '#':
		return r.readHash()
	default:
		return r.readAtom()
	}
}

func (r *reader) readList() SExpr {
	start := r.here()
	r.advance() // consume '('
	var elems []SExpr
	for {
		r.skipAtmosphere()
		if r.atEOF() {
			r.errf(Span{start, r.here()}, "unterminated list")
			break
		}
		if r.peek() == ')' {
			r.advance()
			break
		}
		form := r.readForm()
		if form != nil {
			elems = append(elems, form)
		}
	}
	return NewList(elems, Span{start, r.here()})
}

func (r *reader) readString() SExpr {
	start := r.here()
	r.advance() // opening quote
	var b strings.Builder
	for {
		if r.atEOF() {
			r.errf(Span{start, r.here()}, "unterminated string literal")
			break
		}
		c := r.advance()
		if c == '"' {
			break
		}
		if c == '\\' {
			if r.atEOF() {
				r.errf(Span{start, r.here()}, "unterminated escape in string literal")
				break
			}
			esc := r.advance()
			switch esc {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case '"':
				b.WriteRune('"')
			case '\\':
				b.WriteRune('\\')
			default:
				b.WriteRune(esc)
			}
			continue
		}
		b.WriteRune(c)
	}
	return NewString(b.String(), Span{start, r.here()})
}

func (r *reader) readHash() SExpr {
	start := r.here()
	r.advance() // '#'
	if r.atEOF() {
		r.errf(Span{start, r.here()}, "unexpected end of input after '#'")
		return nil
	}
	c := r.peek()
	switch c {
	case 't':
		r.advance()
		return NewBool(true, Span{start, r.here()})
	case 'f':
		r.advance()
		return NewBool(false, Span{start, r.here()})
	case '\\':
		r.advance()
		if r.atEOF() {
			r.errf(Span{start, r.here()}, "unterminated char literal")
			return nil
		}
		ch := r.advance()
		return NewChar(ch, Span{start, r.here()})
	default:
		r.errf(Span{start, r.here()}, "unrecognized '#' syntax")
		for !r.atEOF() && !isDelim(r.peek()) {
			r.advance()
		}
		return nil
	}
}

func (r *reader) readAtom() SExpr {
	start := r.here()
	var b strings.Builder
	for !r.atEOF() && !isDelim(r.peek()) {
		b.WriteRune(r.advance())
	}
	text := b.String()
	sp := Span{start, r.here()}

	if text == "" {
		r.errf(sp, "empty atom")
		return nil
	}

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return NewInt(n, sp)
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil && looksNumeric(text) {
		return NewFloat(f, sp)
	}
	return NewSymbol(text, sp)
}

// looksNumeric guards against symbols like "+" or "-" parsing as floats.
func looksNumeric(s string) bool {
	for i, c := range s {
		if unicode.IsDigit(c) {
			return true
		}
		if i == 0 && (c == '+' || c == '-') {
			continue
		}
		if c == '.' {
			continue
		}
		return false
	}
	return false
}
