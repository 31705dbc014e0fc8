package prompt

import (
	"bufio"
	"context"
	"fmt"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"io"
	"os"
	"strings"
)

var ErrInterrupted = errors.New("interrupted")

type lineResult struct {
	line string
	err  error
}

// Prompter reads answers line by line from a console. Reads happen on a
// background goroutine so a blocked read can be abandoned when the caller's
// context is canceled; the abandoned line is delivered to the next read.
//
// A Prompter is not safe for concurrent use.
type Prompter struct {
	in      io.Reader
	out     io.Writer
	reader  *bufio.Reader
	reqs    chan struct{}
	lines   chan lineResult
	pending bool
	started bool
	closed  bool
	done    chan struct{}

	bold *color.Color
	fail *color.Color
}

func New(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
		reqs:   make(chan struct{}, 1),
		lines:  make(chan lineResult, 1),
		done:   make(chan struct{}),
		bold:   color.New(color.Bold),
		fail:   color.New(color.FgRed),
	}
	if !isTerminal(out) {
		p.bold.DisableColor()
		p.fail.DisableColor()
	}
	return p
}

// ReadLine returns the next line without its line terminator. It returns
// ErrInterrupted when ctx is done first and io.EOF once input is exhausted
// or the Prompter is closed.
func (p *Prompter) ReadLine(ctx context.Context) (string, error) {
	if p.closed {
		return "", io.EOF
	}
	if ctx.Err() != nil {
		return "", ErrInterrupted
	}

	if !p.started {
		p.started = true
		go p.readLoop()
	}
	if !p.pending {
		p.pending = true
		p.reqs <- struct{}{}
	}

	select {
	case res := <-p.lines:
		p.pending = false
		if res.err != nil {
			if errors.Is(res.err, io.EOF) {
				return "", io.EOF
			}
			return "", errors.WithStack(res.err)
		}
		return res.line, nil
	case <-ctx.Done():
		return "", ErrInterrupted
	}
}

// Close stops the background reader. A read already in progress is left to
// finish on its own; its line is discarded.
func (p *Prompter) Close() {
	if p.closed {
		return
	}
	p.closed = true
	close(p.reqs)
	if !p.started {
		close(p.done)
	}
}

func (p *Prompter) readLoop() {
	defer close(p.done)
	for range p.reqs {
		line, err := p.reader.ReadString('\n')
		if errors.Is(err, io.EOF) && line != "" {
			err = nil
		}
		p.lines <- lineResult{
			line: strings.TrimRight(line, "\r\n"),
			err:  err,
		}
	}
}

// Ask prints question and returns the trimmed answer.
func (p *Prompter) Ask(ctx context.Context, question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a y/n question. Only "y" and "yes" count as yes.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	ans, err := p.Ask(ctx, question)
	if err != nil {
		return false, err
	}
	return IsYes(ans), nil
}

// Secret reads an answer without echo when the input is a terminal.
func (p *Prompter) Secret(ctx context.Context, question string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || p.pending || !term.IsTerminal(int(f.Fd())) {
		return p.Ask(ctx, question)
	}

	fmt.Fprint(p.out, question)
	b, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", errors.Wrap(err, "error reading secret")
	}
	return string(b), nil
}

func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Prompter) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// Boldf prints a highlighted line.
func (p *Prompter) Boldf(format string, args ...interface{}) {
	p.bold.Fprintf(p.out, format, args...)
	fmt.Fprintln(p.out)
}

// Errorf prints a user-facing error line.
func (p *Prompter) Errorf(format string, args ...interface{}) {
	p.fail.Fprintf(p.out, "**Error: "+format, args...)
	fmt.Fprintln(p.out)
}

func IsYes(ans string) bool {
	switch strings.ToLower(strings.TrimSpace(ans)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// IsExit reports whether err ends an interactive loop rather than being
// something to report and retry.
func IsExit(err error) bool {
	return errors.Is(err, ErrInterrupted) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled)
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
