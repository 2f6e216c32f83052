package game

import (
	"fmt"
	"strings"

	"github.com/ra3zac/Siebenschraem/pkg/cards"
)

// Snapshot is everything a display needs to draw one frame.
type Snapshot struct {
	Id           string                  `json:"id"`
	Phase        Phase                   `json:"phase"`
	Players      [NumPlayers]PlayerState `json:"players"`
	Trick        [NumPlayers]*cards.Card `json:"trick"`
	RoundSuit    string                  `json:"roundSuit,omitempty"`
	History      []string                `json:"history"`
	KlopfLevel   int                     `json:"klopfLevel"`
	HammerActive bool                    `json:"hammerActive"`
	Klopfer      int                     `json:"klopfer"`
	Pending      []int                   `json:"pending,omitempty"`
	CanKlopfen   bool                    `json:"canKlopfen"`
	DeckSize     int                     `json:"deckSize"`
	Loser        int                     `json:"loser"`
}

type PlayerState struct {
	Seat         int         `json:"seat"`
	Name         string      `json:"name"`
	Cards        cards.Cards `json:"cards"`
	Schraeme     int         `json:"schraeme"`
	Mitgehen     bool        `json:"mitgehen"`
	IsNextPlayer bool        `json:"isNextPlayer"`
}

// Header is the per-seat title line, e.g. "Spieler 2 - 5 Schräme (am Zug)".
func (p PlayerState) Header() string {
	h := fmt.Sprintf("%s - %d Schräme", p.Name, p.Schraeme)
	if p.IsNextPlayer {
		h += " (am Zug)"
	}
	return h
}

func (g *Game) GetSnapshot() Snapshot {
	s := Snapshot{
		Id:           g.id,
		Phase:        g.phase,
		History:      g.History(),
		KlopfLevel:   g.klopfLevel,
		HammerActive: g.hammerActive,
		Klopfer:      g.Klopfer(),
		Pending:      g.PendingMitgehen(),
		CanKlopfen:   g.phase == Playing && g.klopfLevel < MaxKlopfLevel,
		DeckSize:     len(g.deck),
		Loser:        g.loser,
	}
	for i := range g.hands {
		s.Players[i] = g.playerState(i)
		if c, ok := g.trick.CardOf(i); ok {
			card := c
			s.Trick[i] = &card
		}
	}
	if suit, ok := g.trick.LeadSuit(); ok {
		s.RoundSuit = suit.String()
	}
	return s
}

func (g *Game) playerState(seat int) PlayerState {
	return PlayerState{
		Seat:         seat,
		Name:         SeatName(seat),
		Cards:        g.hands[seat].Copy(),
		Schraeme:     g.schraeme[seat],
		Mitgehen:     g.mitgehen[seat],
		IsNextPlayer: seat == g.currentPlayer,
	}
}

func (s Snapshot) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Phase: %s, Klopfstufe: %d\n", s.Phase, s.KlopfLevel))
	for _, p := range s.Players {
		sb.WriteString(p.Header())
		sb.WriteString("\n")
		if len(p.Cards) > 0 {
			sb.WriteString(fmt.Sprintf("  %s\n", p.Cards))
		}
	}
	var played []string
	for i, c := range s.Trick {
		if c != nil {
			played = append(played, fmt.Sprintf("%s: %s", SeatName(i), c))
		}
	}
	if len(played) > 0 {
		sb.WriteString(fmt.Sprintf("Stich: %s\n", strings.Join(played, ", ")))
	}
	return sb.String()
}
