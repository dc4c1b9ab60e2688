package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// prompter lee respuestas línea por línea. Todas las preguntas comparten el
// mismo bufio.Reader para no perder entrada ya leída.
type prompter struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: in, reader: bufio.NewReader(in), out: out}
}

// line muestra label y devuelve la línea sin espacios en los extremos.
// Devuelve io.EOF si la entrada terminó sin texto.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	text, err := p.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && text != "") {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// secret lee una contraseña sin eco cuando la entrada es una terminal
func (p *prompter) secret(label string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.line(label)
	}
	fmt.Fprint(p.out, label)
	b, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// number insiste hasta recibir un número válido
func (p *prompter) number(label string) (float64, error) {
	for {
		text, err := p.line(label)
		if err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(text, 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(p.out, "Invalid number, please try again.")
	}
}
