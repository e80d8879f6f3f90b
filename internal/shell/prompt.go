package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// Option is one menu entry.
type Option struct {
	Key   string
	Label string
}

// Prompter collects console input. Both implementations report the end of
// the session (EOF, ctrl+c) as io.EOF.
type Prompter interface {
	Menu(title string, options []Option) (string, error)
	// Input asks for one line. validate may be nil; prompters that cannot
	// re-ask return the raw answer and leave validation to the caller.
	Input(title string, validate func(string) error) (string, error)
}

// LinePrompter reads answers line by line. It is used when stdin is not a
// terminal and by tests.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

func (p *LinePrompter) Menu(title string, options []Option) (string, error) {
	fmt.Fprintln(p.out, title)
	for _, o := range options {
		fmt.Fprintf(p.out, "[%s] %s\n", o.Key, o.Label)
	}
	fmt.Fprint(p.out, "=> ")
	return p.readLine()
}

func (p *LinePrompter) Input(title string, _ func(string) error) (string, error) {
	fmt.Fprintf(p.out, "%s: ", title)
	return p.readLine()
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// FormPrompter draws each question as a huh form.
type FormPrompter struct {
	theme *huh.Theme
}

func NewFormPrompter() *FormPrompter {
	return &FormPrompter{theme: huh.ThemeCharm()}
}

func (p *FormPrompter) Menu(title string, options []Option) (string, error) {
	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(fmt.Sprintf("[%s] %s", o.Key, o.Label), o.Key))
	}

	var choice string
	err := p.run(huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&choice))
	return choice, err
}

func (p *FormPrompter) Input(title string, validate func(string) error) (string, error) {
	var answer string
	field := huh.NewInput().Title(title).Value(&answer)
	if validate != nil {
		field = field.Validate(validate)
	}

	err := p.run(field)
	return strings.TrimSpace(answer), err
}

func (p *FormPrompter) run(field huh.Field) error {
	err := huh.NewForm(huh.NewGroup(field)).WithTheme(p.theme).WithShowHelp(false).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return io.EOF
	}
	return err
}
