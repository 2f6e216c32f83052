package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ra3zac/Siebenschraem/pkg/game"
)

// Controller receives the moves typed at the terminal. *table.Table implements it.
type Controller interface {
	PlayCard(seat, cardIndex int)
	Klopfen()
	Mitgehen(seat int, join bool)
	ConfirmRestart(accept bool)
	Restart()
}

type promptKind int8

const (
	noPrompt promptKind = iota
	mitgehenPrompt
	restartPrompt
)

// Terminal is a hot-seat display: all four hands are shown and whoever is on
// turn types the next move.
type Terminal struct {
	out io.Writer

	mu         sync.Mutex // Guards everything below
	snapshot   game.Snapshot
	prompt     promptKind
	promptSeat int
}

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

const help = "Eingabe: 1-4 Karte spielen, k klopfen, j/n antworten, neu, q beenden"

func (t *Terminal) Render(s game.Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.snapshot = s
	fmt.Fprint(t.out, showGame(s))
}

func (t *Terminal) Notify(msg string, clearAfter time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, ">> %s\n", msg)
}

// Notices scroll away on a terminal.
func (t *Terminal) ClearNotice() {}

func (t *Terminal) AskMitgehen(klopfer, seat int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prompt = mitgehenPrompt
	t.promptSeat = seat
	fmt.Fprintf(t.out, "%s [j/n]\n", game.MsgMitgehenPrompt(klopfer, seat))
}

func (t *Terminal) ConfirmRestart(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prompt = restartPrompt
	fmt.Fprintf(t.out, "%s [j/n]\n", msg)
}

func showGame(s game.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\nKlopfstufe %d, Karten im Stapel: %d", s.KlopfLevel, s.DeckSize))
	if s.HammerActive {
		sb.WriteString(", Hammer")
	}
	sb.WriteString("\n")
	for _, p := range s.Players {
		sb.WriteString(p.Header())
		sb.WriteString("\n  ")
		for i, c := range p.Cards {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(fmt.Sprintf("[%d] %s", i+1, c))
		}
		if played := s.Trick[p.Seat]; played != nil {
			sb.WriteString(fmt.Sprintf("   gespielt: %s", played))
		}
		sb.WriteString("\n")
	}
	if n := len(s.History); n > 0 {
		sb.WriteString(fmt.Sprintf("Zuletzt: %s\n", s.History[n-1]))
	}
	return sb.String()
}

func currentSeat(s game.Snapshot) int {
	for i, p := range s.Players {
		if p.IsNextPlayer {
			return i
		}
	}
	return 0
}

// Run reads moves line by line until q or end of input.
func (t *Terminal) Run(in io.Reader, c Controller) error {
	t.println(help)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if quit := t.handleLine(strings.TrimSpace(scanner.Text()), c); quit {
			return nil
		}
	}
	return scanner.Err()
}

func (t *Terminal) handleLine(line string, c Controller) (quit bool) {
	line = strings.ToLower(line)
	switch line {
	case "":
	case "q":
		return true
	case "k":
		c.Klopfen()
	case "neu":
		t.takePrompt()
		c.Restart()
	case "j", "n":
		join := line == "j"
		kind, seat := t.takePrompt()
		switch kind {
		case mitgehenPrompt:
			c.Mitgehen(seat, join)
		case restartPrompt:
			c.ConfirmRestart(join)
		default:
			t.println("Keine offene Frage.")
		}
	default:
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > game.CardsPerHand {
			t.println(help)
			return false
		}
		t.mu.Lock()
		seat := currentSeat(t.snapshot)
		t.mu.Unlock()
		c.PlayCard(seat, n-1)
	}
	return false
}

// takePrompt returns and clears the open question.
// The controller is never called while holding mu.
func (t *Terminal) takePrompt() (promptKind, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	kind, seat := t.prompt, t.promptSeat
	t.prompt = noPrompt
	return kind, seat
}

func (t *Terminal) println(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, msg)
}
