// Package console reads integers for input() from a terminal or a plain
// line stream.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/wildfunctions/khwarizmi/pkg/diag"
)

// IntReader yields one integer per call. End of input is an EndOfInputError.
type IntReader interface {
	ReadInt() (int64, error)
}

// NewReader picks a line-editing reader when in is a terminal and a plain
// line reader otherwise. Close the returned closer when done.
func NewReader(in *os.File, out io.Writer, prompt string, log *logrus.Entry) (IntReader, io.Closer) {
	if term.IsTerminal(int(in.Fd())) {
		r := NewLinerReader(prompt, log)
		return r, r
	}
	r := NewLineReader(in, out, prompt, log)
	return r, r
}

// parseInt accepts an optionally signed decimal integer surrounded by
// whitespace.
func parseInt(line string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(line), 10, 64)
}

func endOfInput() error {
	return diag.Errorf(diag.EndOfInputError, "input() reached end of input")
}

// LineReader reads integers from a line stream, writing the prompt to out
// before every attempt.
type LineReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
	log     *logrus.Entry
}

func NewLineReader(in io.Reader, out io.Writer, prompt string, log *logrus.Entry) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(in), out: out, prompt: prompt, log: log}
}

func (r *LineReader) ReadInt() (int64, error) {
	for {
		if r.out != nil && r.prompt != "" {
			fmt.Fprint(r.out, r.prompt)
		}
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return 0, errors.Wrap(err, "reading input")
			}
			return 0, endOfInput()
		}
		line := r.scanner.Text()
		n, err := parseInt(line)
		if err == nil {
			return n, nil
		}
		r.log.WithField("line", line).Warn("input is not an integer, asking again")
	}
}

// Close is a no-op; the underlying stream belongs to the caller.
func (r *LineReader) Close() error { return nil }

// LinerReader reads integers interactively with line editing and history.
type LinerReader struct {
	state  *liner.State
	prompt string
	log    *logrus.Entry
}

func NewLinerReader(prompt string, log *logrus.Entry) *LinerReader {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	return &LinerReader{state: ln, prompt: prompt, log: log}
}

func (r *LinerReader) ReadInt() (int64, error) {
	for {
		line, err := r.state.Prompt(r.prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return 0, endOfInput()
		}
		if err != nil {
			return 0, errors.Wrap(err, "reading input")
		}
		n, err := parseInt(line)
		if err == nil {
			r.state.AppendHistory(line)
			return n, nil
		}
		r.log.WithField("line", line).Warn("input is not an integer, asking again")
	}
}

func (r *LinerReader) Close() error {
	return r.state.Close()
}
