package contract

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/owenc21/ootp-roster-editor/pkg/types"
)

// Prompter reads operator answers one line at a time. Answers that fail
// validation are reported and asked again; only end of input or a non-input
// error ends a step.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter reads from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line prints prompt and returns the next line without its terminator.
// Returns io.EOF when input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

// Ask prompts until parse accepts an answer. parse reports a bad answer by
// returning an error wrapping types.ErrInvalidInput; any other error is
// returned as is.
func (p *Prompter) Ask(prompt string, parse func(answer string) error) error {
	for {
		answer, err := p.Line(prompt)
		if err != nil {
			return err
		}
		err = parse(answer)
		if err == nil {
			return nil
		}
		if !errors.Is(err, types.ErrInvalidInput) {
			return err
		}
		fmt.Fprintf(p.out, "%v, try again\n", err)
	}
}

// Int prompts until the answer is an integer accepted by check.
func (p *Prompter) Int(prompt string, check func(int64) error) (int64, error) {
	var n int64
	err := p.Ask(prompt, func(answer string) error {
		v, err := strconv.ParseInt(strings.TrimSpace(answer), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a whole number", types.ErrInvalidInput, answer)
		}
		if check != nil {
			if err := check(v); err != nil {
				return err
			}
		}
		n = v
		return nil
	})
	return n, err
}
