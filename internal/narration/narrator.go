// Package narration is the output side of the game: where text goes, how
// fast it appears, and what it says.
package narration

import (
	"io"
	"strings"
	"time"

	"github.com/muesli/reflow/wordwrap"
)

// Kind tags a line so richer front ends can style it.
type Kind int

const (
	KindStory Kind = iota
	KindStatus
	KindMenu
	KindPrompt
	KindEvent
	KindWarning
	KindVictory
	KindDefeat
)

// Line is one narrated message.
type Line struct {
	Kind Kind
	Text string
}

// Narrator displays game text.
type Narrator interface {
	Narrate(kind Kind, text string)
}

const (
	DefaultCharDelay = 20 * time.Millisecond
	DefaultLineDelay = 888 * time.Millisecond
)

// Typewriter prints text one rune at a time with a pause after each line.
// With Skip set it prints each line immediately.
type Typewriter struct {
	W         io.Writer
	CharDelay time.Duration
	LineDelay time.Duration
	Skip      bool
	Width     int

	sleep func(time.Duration)
	err   error
}

// NewTypewriter returns a Typewriter with the default pacing.
func NewTypewriter(w io.Writer, skip bool, width int) *Typewriter {
	return &Typewriter{
		W:         w,
		CharDelay: DefaultCharDelay,
		LineDelay: DefaultLineDelay,
		Skip:      skip,
		Width:     width,
		sleep:     time.Sleep,
	}
}

func (t *Typewriter) Narrate(kind Kind, text string) {
	if t.err != nil {
		return
	}
	if t.Width > 0 {
		text = wordwrap.String(text, t.Width)
	}
	if t.Skip {
		t.write(text + "\n")
		return
	}

	sleep := t.sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	charDelay := t.CharDelay
	if kind == KindPrompt || kind == KindMenu {
		// Menus and prompts are read, not watched.
		charDelay /= 4
	}

	for _, r := range text {
		if !t.write(string(r)) {
			return
		}
		if charDelay > 0 {
			sleep(charDelay)
		}
	}
	if t.LineDelay > 0 && kind != KindPrompt && kind != KindMenu {
		sleep(t.LineDelay)
	}
	t.write("\n")
}

// write keeps the first error; once set, nothing more is written.
func (t *Typewriter) write(s string) bool {
	if _, err := io.WriteString(t.W, s); err != nil {
		t.err = err
		return false
	}
	return true
}

// Err returns the first write error, if any.
func (t *Typewriter) Err() error {
	return t.err
}

// Recorder keeps narrated lines in memory. The TUI drains it after every
// step and tests inspect it.
type Recorder struct {
	Lines []Line
}

func (r *Recorder) Narrate(kind Kind, text string) {
	r.Lines = append(r.Lines, Line{Kind: kind, Text: text})
}

// Drain returns the recorded lines and forgets them.
func (r *Recorder) Drain() []Line {
	lines := r.Lines
	r.Lines = nil
	return lines
}

// Text joins every recorded line with newlines.
func (r *Recorder) Text() string {
	var b strings.Builder
	for _, l := range r.Lines {
		b.WriteString(l.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Contains reports whether any recorded line contains s.
func (r *Recorder) Contains(s string) bool {
	for _, l := range r.Lines {
		if strings.Contains(l.Text, s) {
			return true
		}
	}
	return false
}
