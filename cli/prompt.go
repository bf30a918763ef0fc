package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/manifoldco/promptui"
)

// ErrEmptyInput is returned by prompt validation when nothing was entered.
var ErrEmptyInput = errors.New("you must enter something")

// Prompter runs interactive prompts against the given streams.
type Prompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// NewPrompter returns a Prompter bound to the process's terminal.
func NewPrompter() *Prompter {
	return &Prompter{Stdin: os.Stdin, Stdout: os.Stdout}
}

// Select shows choices and returns the index and text of the chosen one.
// Typing filters choices by prefix.
func (p *Prompter) Select(label string, choices ...string) (int, string, error) {
	sel := &promptui.Select{
		Label: label,
		Items: choices,
		Searcher: func(input string, index int) bool {
			return strings.HasPrefix(strings.ToLower(choices[index]), strings.ToLower(input))
		},
		Stdin:  p.Stdin,
		Stdout: p.Stdout,
	}

	return sel.Run()
}

// PromptInt asks for an integer.
func (p *Prompter) PromptInt(label string) (int, error) {
	txt, err := p.prompt(label, validateInt)
	if err != nil {
		return 0, err
	}

	return parseInt(txt)
}

// PromptInts asks for one or more integers separated by commas or spaces.
func (p *Prompter) PromptInts(label string) ([]int, error) {
	txt, err := p.prompt(label, validateInts)
	if err != nil {
		return nil, err
	}

	return parseInts(txt)
}

func (p *Prompter) prompt(label string, validate promptui.ValidateFunc) (string, error) {
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validate,
		Stdin:    p.Stdin,
		Stdout:   p.Stdout,
	}

	return prompt.Run()
}

// PromptConfirm asks a yes/no question. Answering no is not an error.
func (p *Prompter) PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

func validateInt(s string) error {
	_, err := parseInt(s)

	return err
}

func validateInts(s string) error {
	_, err := parseInts(s)

	return err
}

func parseInts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, ErrEmptyInput
	}

	values := make([]int, 0, len(fields))

	for _, field := range fields {
		n, err := parseInt(field)
		if err != nil {
			return nil, err
		}

		values = append(values, n)
	}

	return values, nil
}

func parseInt(s string) (int, error) {
	val, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid integer: %w", err)
	}

	return int(val), nil
}
