package game

import (
	"fmt"

	"github.com/ra3zac/Siebenschraem/pkg/cards"
)

const (
	NumPlayers       = 4
	CardsPerHand     = 4
	StartSchraeme    = 7
	MaxKlopfLevel    = 3
	HammerKlopfLevel = 2
)

type Phase int8

const (
	Playing Phase = iota
	AwaitingMitgehen
	TrickComplete
	Stalled
	Finished
)

func (ph Phase) String() string {
	switch ph {
	case Playing:
		return "playing"
	case AwaitingMitgehen:
		return "awaiting_mitgehen"
	case TrickComplete:
		return "trick_complete"
	case Stalled:
		return "stalled"
	case Finished:
		return "finished"
	}
	return "unknown"
}

func (ph Phase) MarshalText() ([]byte, error) {
	return []byte(ph.String()), nil
}

func (ph *Phase) UnmarshalText(text []byte) error {
	for p := Playing; p <= Finished; p++ {
		if p.String() == string(text) {
			*ph = p
			return nil
		}
	}
	return fmt.Errorf("unknown phase %q", text)
}

// Report activity back to the display.
type Reporter interface {
	ReportGameStarted(g *Game)
	ReportCardPlayed(g *Game, seat int, card cards.Card)
	ReportTrickWon(g *Game, trick cards.Cards, winner int)
	ReportSchraemLoss(g *Game, seat, amount int)
	ReportHammer(g *Game, seat int)
	ReportKlopfen(g *Game, seat, level int)
	ReportDeckExhausted(g *Game)
	ReportGameOver(g *Game, loser int)
	BroadcastMessage(g *Game, msg string)
}

type UnimplementedReporter struct{}

func (UnimplementedReporter) ReportGameStarted(*Game)                 {}
func (UnimplementedReporter) ReportCardPlayed(*Game, int, cards.Card) {}
func (UnimplementedReporter) ReportTrickWon(*Game, cards.Cards, int)  {}
func (UnimplementedReporter) ReportSchraemLoss(*Game, int, int)       {}
func (UnimplementedReporter) ReportHammer(*Game, int)                 {}
func (UnimplementedReporter) ReportKlopfen(*Game, int, int)           {}
func (UnimplementedReporter) ReportDeckExhausted(*Game)               {}
func (UnimplementedReporter) ReportGameOver(*Game, int)               {}
func (UnimplementedReporter) BroadcastMessage(*Game, string)          {}

// Player-facing texts.

func SeatName(seat int) string {
	return fmt.Sprintf("Spieler %d", seat+1)
}

const (
	MsgFollowSuit    = "Du musst die zuerst gespielte Farbe bedienen!"
	MsgDeckExhausted = "Keine Karten mehr zum Austeilen."
	MsgGameStarted   = "Neues Spiel gestartet!"
)

func MsgTrickWon(seat int) string {
	return fmt.Sprintf("Runde gewonnen: %s", SeatName(seat))
}

func MsgSchraemLoss(seat, amount int) string {
	return fmt.Sprintf("%s verliert %d Schräme!", SeatName(seat), amount)
}

func MsgHammer(seat int) string {
	return fmt.Sprintf("%s ist Hammer! Diese Runde zählt doppelt.", SeatName(seat))
}

func MsgKlopfen(seat, level int) string {
	return fmt.Sprintf("%s klopft! Es geht jetzt um %d Schräme.", SeatName(seat), level)
}

func MsgMitgehenPrompt(klopfer, seat int) string {
	return fmt.Sprintf("%s hat geklopft. %s, willst du mitgehen?", SeatName(klopfer), SeatName(seat))
}

func MsgGameOver(loser int) string {
	return fmt.Sprintf("%s hat verloren!", SeatName(loser))
}

func MsgRestartPrompt(loser int) string {
	return MsgGameOver(loser) + "\nNeues Spiel starten?"
}

func MsgStalledRestartPrompt() string {
	return MsgDeckExhausted + "\nNeues Spiel starten?"
}
