// Package console drives a game over plain line-based input and output.
package console

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/tatianab/artifact-quest/internal/engine"
	"github.com/tatianab/artifact-quest/internal/models"
	"github.com/tatianab/artifact-quest/internal/narration"
)

// Console reads one answer per line.
type Console struct {
	in  *bufio.Reader
	out narration.Narrator

	// WaitForEnter pauses before the game starts and after it ends.
	WaitForEnter bool
}

func New(in io.Reader, out narration.Narrator) *Console {
	return &Console{
		in:           bufio.NewReader(in),
		out:          out,
		WaitForEnter: true,
	}
}

// readLine returns the next line without its terminator. ok is false once
// the input is exhausted.
func (c *Console) readLine() (line string, ok bool) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), true
		}
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (c *Console) wait(prompt string) {
	if !c.WaitForEnter {
		return
	}
	c.out.Narrate(narration.KindPrompt, prompt)
	c.readLine()
}

// Run plays e to the end and returns the final status. Running out of
// input counts as quitting.
func (c *Console) Run(ctx context.Context, e *engine.Engine) models.Status {
	c.wait("Press enter to start the game...")

	status := e.Start()
	for !status.Terminal() {
		if err := ctx.Err(); err != nil {
			status = e.Quit()
			break
		}
		line, ok := c.readLine()
		if !ok {
			status = e.Quit()
			break
		}
		status = e.Input(ctx, line)
	}

	if status == models.StatusWon {
		c.wait("Press enter to celebrate your victory...")
	} else {
		c.wait("Press enter to exit the game...")
	}
	return status
}
