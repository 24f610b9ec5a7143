// Package replsupport provides a readline-backed interactive session
// helper: prompt/history handling and multi-line continuation for forms
// left unterminated across a line boundary. It is grounded on
// akashmaji946-go-mix/repl/repl.go's Repl type, generalized from a
// single-language REPL loop to a reusable Session any caller (a future
// cmd/, a test harness, an embedder) can drive without this package
// owning process lifecycle (os.Stdin/os.Exit) itself — spec.md §1 keeps a
// shipped CLI out of scope, so nothing under cmd/ constructs a Session.
package replsupport

import (
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/tan-lang/tan/pkg/lexer"
	"github.com/tan-lang/tan/pkg/parser"
)

// Session wraps a readline instance, accumulating input lines until the
// buffered text parses as a complete, balanced set of forms (or a
// non-recoverable syntax error — e.g. an illegal token — surfaces
// immediately instead of waiting for more input).
type Session struct {
	rl      *readline.Instance
	buf     strings.Builder
	History []string
}

// New constructs a Session reading from the process terminal via readline,
// using prompt as the primary prompt and historyFile (if non-empty) to
// persist command history across invocations.
func New(prompt, historyFile string) (*Session, error) {
	return newSession(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// NewFromReader constructs a Session reading from an arbitrary
// io.ReadCloser instead of the process terminal — a seam for driving a
// Session without a real tty attached.
func NewFromReader(prompt string, in io.ReadCloser, out io.Writer) (*Session, error) {
	return newSession(&readline.Config{
		Prompt: prompt,
		Stdin:  in,
		Stdout: out,
	})
}

func newSession(cfg *readline.Config) (*Session, error) {
	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	return &Session{rl: rl}, nil
}

// Close releases the underlying readline instance.
func (s *Session) Close() error {
	return s.rl.Close()
}

// SetContinuationPrompt sets the prompt readline shows for the lines it
// reads from now on. ReadForm does not switch or restore prompts itself.
func (s *Session) SetContinuationPrompt(prompt string) {
	s.rl.SetPrompt(prompt)
}

// ReadForm reads and accumulates lines until they parse as one or more
// complete top-level forms, returning the accumulated source text. It
// returns io.EOF when the underlying terminal is closed (Ctrl+D) with no
// pending input, and readline.ErrInterrupt when the user presses Ctrl+C
// with an empty buffer.
func (s *Session) ReadForm() (string, error) {
	s.buf.Reset()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) && s.buf.Len() > 0 {
				s.buf.Reset()
				continue
			}

			return "", err
		}

		if s.buf.Len() > 0 {
			s.buf.WriteByte('\n')
		}
		s.buf.WriteString(line)

		text := s.buf.String()
		if strings.TrimSpace(text) == "" {
			s.buf.Reset()
			continue
		}

		if complete, fatal := formComplete(text); complete || fatal {
			s.History = append(s.History, text)
			return text, nil
		}
	}
}

// formComplete reports whether text already parses as a complete form set
// (complete == true), or whether parsing failed in a way more input could
// never fix (fatal == true, e.g. an illegal token rather than an
// unterminated list) — in either case ReadForm should stop accumulating
// and hand the text to the caller for evaluation/error reporting.
func formComplete(text string) (complete bool, fatal bool) {
	_, err := parser.Parse(text)
	if err == nil {
		return true, false
	}

	var perrs *parser.ParseErrors
	if errors.As(err, &perrs) {
		for _, e := range perrs.Errors() {
			if e.Kind == parser.UnterminatedList {
				return false, false
			}
		}

		return false, true
	}

	var lerr *lexer.Error
	if errors.As(err, &lerr) {
		switch lerr.Kind {
		case lexer.UnterminatedString, lexer.UnterminatedAnnotation:
			return false, false
		default:
			return false, true
		}
	}

	return false, true
}

var _ io.Closer = (*Session)(nil)
