// Package prompt implements the blocking question-and-answer prompts used by
// interactive commands.
//
// Every prompt loops until it gets an acceptable answer. An interrupt
// (Ctrl-C) or the end of input stops the loop with ErrInterrupted; typing the
// cancellation token at an indexed choice stops it with ErrCancelled.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	perrors "github.com/PolarWolf314/pm/internal/errors"
	"github.com/PolarWolf314/pm/internal/ui"
	"github.com/PolarWolf314/pm/internal/utils"
)

// CancelToken aborts an indexed choice when it appears anywhere in the answer.
// The match is case-sensitive.
const CancelToken = "q"

// Option is one entry of an indexed choice.
type Option struct {
	Index int
	Label string
}

// Prompter is the set of prompts the rest of pm depends on.
type Prompter interface {
	// Bool accepts yes, y, no or n, in any case.
	Bool(prompt string) (bool, error)
	// Text accepts any non-blank answer.
	Text(prompt string) (string, error)
	// Path accepts an existing filesystem entry and returns it absolute.
	Path(prompt string) (string, error)
	// Choose lists options and returns the index the user picked.
	Choose(prompt string, options []Option) (int, error)
}

type lineReader interface {
	Prompt(prompt string) (string, error)
}

// Console asks questions on a line reader and reports problems on out.
type Console struct {
	in    lineReader
	out   io.Writer
	close func() error
}

// NewConsole returns a Console with line editing on the controlling terminal.
// Call Close to restore the terminal.
func NewConsole() *Console {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &Console{in: line, out: os.Stdout, close: line.Close}
}

// NewReader returns a Console reading answers line by line from r.
func NewReader(r io.Reader, w io.Writer) *Console {
	return &Console{in: &bufferedReader{r: bufio.NewReader(r), w: w}, out: w}
}

// Close releases the terminal.
func (c *Console) Close() error {
	if c.close == nil {
		return nil
	}
	return c.close()
}

func (c *Console) Bool(prompt string) (bool, error) {
	for {
		answer, err := c.readLine(prompt)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.warn("You can answer questions with yes(y) or no(n).")
	}
}

func (c *Console) Text(prompt string) (string, error) {
	for {
		answer, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}

		if answer = strings.TrimSpace(answer); answer != "" {
			return answer, nil
		}
		c.warn("This question cannot be left blank.")
	}
}

func (c *Console) Path(prompt string) (string, error) {
	for {
		answer, err := c.readLine(prompt)
		if err != nil {
			return "", err
		}

		path, err := utils.ExpandHome(strings.TrimSpace(answer))
		if err == nil && path != "" && utils.PathExists(path) {
			if abs, err := filepath.Abs(path); err == nil {
				return abs, nil
			}
			return path, nil
		}
		c.warn("The path you specified does not exist. Please check it and try again.")
	}
}

func (c *Console) Choose(prompt string, options []Option) (int, error) {
	valid := make(map[int]bool, len(options))
	indexes := make([]string, 0, len(options))
	for _, opt := range options {
		fmt.Fprintf(c.out, "[%d] %s\n", opt.Index, opt.Label)
		valid[opt.Index] = true
		indexes = append(indexes, strconv.Itoa(opt.Index))
	}

	for {
		answer, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}

		// The token is honored before any attempt to read a number.
		if strings.Contains(answer, CancelToken) {
			return 0, perrors.ErrCancelled
		}

		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			c.warn("Your answer must be an integer.")
			continue
		}
		if !valid[n] {
			c.warn("Your selection is not in options. Options are: " + strings.Join(indexes, ", ") + ".")
			continue
		}
		return n, nil
	}
}

func (c *Console) readLine(prompt string) (string, error) {
	answer, err := c.in.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return "", perrors.ErrInterrupted
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return answer, nil
}

func (c *Console) warn(msg string) {
	fmt.Fprintln(c.out, ui.Warning.Sprint(msg))
}

// bufferedReader prompts on w and reads one line at a time from r.
type bufferedReader struct {
	r *bufio.Reader
	w io.Writer
}

func (b *bufferedReader) Prompt(prompt string) (string, error) {
	fmt.Fprint(b.w, prompt)

	line, err := b.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
