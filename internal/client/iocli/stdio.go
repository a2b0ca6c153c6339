package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализация IO поверх стандартных потоков
type Stdio struct {
	in     *bufio.Reader
	out    io.Writer
	fd     int
	isTerm func(fd int) bool
}

// NewStdio создает IO на os.Stdin и os.Stdout
func NewStdio() IO {
	return NewStdioWith(os.Stdin, os.Stdout)
}

// NewStdioWith создает IO на заданных потоках.
// Пароль читается без эха, только если in это терминал.
func NewStdioWith(in io.Reader, out io.Writer) *Stdio {
	s := &Stdio{
		in:     bufio.NewReader(in),
		out:    out,
		fd:     -1,
		isTerm: term.IsTerminal,
	}
	if f, ok := in.(*os.File); ok {
		s.fd = int(f.Fd())
	}
	return s
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if s.fd < 0 || !s.isTerm(s.fd) {
		return s.ReadInput(prompt)
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(s.fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
