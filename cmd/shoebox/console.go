package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// stdConsole backs the operations.Console boundary with a line reader and a
// writer, normally the command's stdin and stdout.
type stdConsole struct {
	in  *bufio.Reader
	out io.Writer
}

func newStdConsole(in io.Reader, out io.Writer) *stdConsole {
	return &stdConsole{in: bufio.NewReader(in), out: out}
}

func (c *stdConsole) Prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *stdConsole) Println(text string) {
	fmt.Fprintln(c.out, text)
}

// answerConsole satisfies prompts from a fixed list of answers. The
// non-interactive subcommands use it to drive prompting operations with flag
// values; an exhausted list answers with blank input, which operations treat
// as "keep the current value".
type answerConsole struct {
	out     io.Writer
	answers []string
}

func (c *answerConsole) Prompt(string) (string, error) {
	if len(c.answers) == 0 {
		return "", nil
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

func (c *answerConsole) Println(text string) {
	fmt.Fprintln(c.out, text)
}
