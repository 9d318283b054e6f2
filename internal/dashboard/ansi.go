package dashboard

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

const clearSequence = "\033[2J\033[H"

// ansiScreen is a plain ANSI implementation of the Screen interface, writing
// the three panels top to bottom on every flush.
type ansiScreen struct {
	out    io.Writer
	events chan Event

	mtx     sync.Mutex
	panels  map[Panel]panelContent
	stopped chan struct{}
}

type panelContent struct {
	title string
	lines []string
}

// NewAnsiScreen returns a Screen rendering to out and reading user input
// line by line from in: a row number selects a loan, "q" quits.
func NewAnsiScreen(out io.Writer, in io.Reader) Screen {
	s := &ansiScreen{
		out:     out,
		events:  make(chan Event),
		panels:  map[Panel]panelContent{},
		stopped: make(chan struct{}),
	}
	go s.readInput(in)
	return s
}

func (s *ansiScreen) DrawPanel(panel Panel, title string, lines []string) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.panels[panel] = panelContent{title: title, lines: lines}
}

func (s *ansiScreen) Flush() {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	var b strings.Builder
	b.WriteString(clearSequence)
	for _, panel := range []Panel{PanelLoans, PanelTerms, PanelLogs} {
		content := s.panels[panel]
		b.WriteString(fmt.Sprintf("── %s %s\n", content.title,
			strings.Repeat("─", max(0, 60-len(content.title)))))
		for _, line := range content.lines {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	fmt.Fprint(s.out, b.String())
}

func (s *ansiScreen) Events() <-chan Event {
	return s.events
}

func (s *ansiScreen) Release() {
	close(s.stopped)
	fmt.Fprint(s.out, clearSequence)
}

func (s *ansiScreen) readInput(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		var event Event
		input := strings.TrimSpace(scanner.Text())
		switch {
		case input == "q" || input == "quit":
			event = QuitEvent{}
		default:
			row, err := strconv.Atoi(input)
			if err != nil {
				continue
			}
			event = SelectRowEvent{Index: row - 1}
		}

		select {
		case s.events <- event:
		case <-s.stopped:
			return
		}
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
