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

// Stdio is the process terminal. Prompts go to stderr so that file
// contents written to stdout can be piped.
type Stdio struct {
	in     *os.File
	out    io.Writer
	prompt io.Writer
	reader *bufio.Reader
}

// NewStdio returns the process terminal
func NewStdio() IO {
	return newStdio(os.Stdin, os.Stdout, os.Stderr)
}

func newStdio(in *os.File, out, prompt io.Writer) *Stdio {
	return &Stdio{in: in, out: out, prompt: prompt, reader: bufio.NewReader(in)}
}

func (s *Stdio) Println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	fmt.Fprint(s.prompt, prompt)
	return s.readLine()
}

// ReadPassword читает пароль без эха; если stdin не терминал
// (пароль передан через pipe), читается обычная строка
func (s *Stdio) ReadPassword(prompt string) (string, error) {
	fmt.Fprint(s.prompt, prompt)

	fd := int(s.in.Fd())
	if !term.IsTerminal(fd) {
		return s.readLine()
	}

	pwBytes, err := term.ReadPassword(fd)
	fmt.Fprintln(s.prompt)
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) readLine() (string, error) {
	line, err := s.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
