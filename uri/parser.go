package uri

//go:generate go tool errtrace -w .

import (
	"context"
	"errors"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/bhatti/Aeron/internal/constraints"
	"github.com/bhatti/Aeron/internal/log"
)

const (
	// Scheme is the scheme of every channel URI.
	Scheme = "aeron"
	// Prefix is the literal every channel URI starts with.
	Prefix = Scheme + ":"
)

// ParserOptions configure a [Parser].
type ParserOptions struct {
	// Logger receives debug records about parsed and rejected input.
	// If nil, a noop logger is used.
	Logger *slog.Logger
}

func (o *ParserOptions) log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return log.Noop
	}
	return o.Logger
}

// Parser parses channel URIs and reports the outcome to its logger.
// It holds no scan state and is safe for concurrent use.
type Parser struct {
	log *slog.Logger
}

// NewParser creates a new [Parser].
// Options are optional, default options are used if nil (see [ParserOptions]).
func NewParser(opts *ParserOptions) *Parser {
	return &Parser{log: opts.log()}
}

var defParser = NewParser(nil)

// Parse parses a channel URI from the given input s (string or []byte).
//
//	uri   = "aeron:" media ["?" param *("|" param)]
//	media = *(any-char except '?' or ':')
//	param = key "=" value
//	key   = *(any-char except '=')
//	value = *(any-char except '|')
//
// When a key repeats, the last value wins.
// Malformed input is reported with a [*FormatError] matching [ErrInvalidFormat].
func Parse[T constraints.Byteseq](s T) (*URI, error) {
	return errtrace.Wrap2(defParser.Parse(string(s)))
}

// MustParse is like [Parse] but panics if the input is malformed.
func MustParse(s string) *URI {
	u, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Parse parses a channel URI from s, see [Parse] for the grammar.
func (p *Parser) Parse(s string) (*URI, error) {
	u, err := scan(s)
	if err != nil {
		p.logReject(s, err)
		return nil, errtrace.Wrap(err)
	}
	p.log.LogAttrs(context.Background(), slog.LevelDebug, "parsed channel URI", slog.Any("uri", u))
	return u, nil
}

func (p *Parser) logReject(s string, err error) {
	ctx := context.Background()
	if !p.log.Enabled(ctx, slog.LevelDebug) {
		return
	}

	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs, slog.String("input", s))
	var fe *FormatError
	if errors.As(err, &fe) {
		attrs = append(attrs, slog.Int("pos", fe.Pos), slog.String("state", fe.State.String()))
	}
	attrs = append(attrs, slog.Any("error", err))
	p.log.LogAttrs(ctx, slog.LevelDebug, "rejected channel URI", attrs...)
}

// scan runs the lexical state machine over s in a single pass.
// Delimiters are ASCII and never occur inside multi-byte UTF-8 sequences,
// so walking bytes is equivalent to walking characters.
// Tokens are contiguous, so the current token is s[mark:i].
func scan(s string) (*URI, error) {
	if i := prefixMismatch(s); i >= 0 {
		return nil, errtrace.Wrap(newFormatError(s, i, StatePrefix, ErrMissingPrefix))
	}

	var (
		state  = StateMedia
		mark   = len(Prefix)
		media  string
		key    string
		params Params
	)
	for i := mark; i < len(s); i++ {
		c := s[i]
		switch state {
		case StateMedia:
			switch c {
			case '?':
				media = s[mark:i]
				mark = i + 1
				state = StateParamsKey
			case ':':
				return nil, errtrace.Wrap(newFormatError(s, i, state, ErrColonInMedia))
			}
		case StateParamsKey:
			if c == '=' {
				key = s[mark:i]
				mark = i + 1
				state = StateParamsValue
			}
		case StateParamsValue:
			if c == '|' {
				params = params.put(key, s[mark:i])
				mark = i + 1
				state = StateParamsKey
			}
		}
	}

	switch state {
	case StateMedia:
		media = s[mark:]
	case StateParamsValue:
		params = params.put(key, s[mark:])
	default:
		return nil, errtrace.Wrap(newFormatError(s, len(s), state, ErrIncompleteParam))
	}
	return &URI{media: media, params: params}, nil
}

// prefixMismatch returns the offset of the first byte of s that differs from [Prefix],
// or -1 if s starts with it.
func prefixMismatch(s string) int {
	for i := 0; i < len(Prefix); i++ {
		if i >= len(s) || s[i] != Prefix[i] {
			return i
		}
	}
	return -1
}

func (p Params) put(key, val string) Params {
	if p == nil {
		p = make(Params, 4)
	}
	p[key] = val
	return p
}
