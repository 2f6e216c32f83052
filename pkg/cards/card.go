package cards

import (
	"encoding/json"
	"fmt"
	"strings"
)

// A card's suit.
type Suit int8

const (
	Kreuz Suit = iota
	Pik
	Herz
	Karo
)

var Suits = []Suit{
	Kreuz,
	Pik,
	Herz,
	Karo,
}

func (s Suit) String() string {
	switch s {
	case Kreuz:
		return "kreuz"
	case Pik:
		return "pik"
	case Herz:
		return "herz"
	case Karo:
		return "karo"
	}
	panic("Unknown Suit")
}

func parseSuit(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "kreuz":
		return Kreuz, nil
	case "pik":
		return Pik, nil
	case "herz":
		return Herz, nil
	case "karo":
		return Karo, nil
	}
	return Kreuz, fmt.Errorf("no such suit '%s'", s)
}

// A card's rank: 7-10, bube, dame, koenig, ass.
type Rank int8

const (
	Sieben Rank = iota
	Acht
	Neun
	Zehn
	Bube
	Dame
	Koenig
	Ass
)

var Ranks = []Rank{
	Sieben,
	Acht,
	Neun,
	Zehn,
	Bube,
	Dame,
	Koenig,
	Ass,
}

// Trick-taking strength of each rank. The picture cards and the ace rank
// below the number cards.
var strength = map[Rank]int{
	Bube:   2,
	Dame:   3,
	Koenig: 4,
	Ass:    5,
	Sieben: 6,
	Acht:   7,
	Neun:   8,
	Zehn:   9,
}

func (r Rank) Strength() int {
	return strength[r]
}

func (r Rank) String() string {
	switch r {
	case Sieben:
		return "7"
	case Acht:
		return "8"
	case Neun:
		return "9"
	case Zehn:
		return "10"
	case Bube:
		return "bube"
	case Dame:
		return "dame"
	case Koenig:
		return "koenig"
	case Ass:
		return "ass"
	}
	panic("Unknown Rank")
}

func parseRank(r string) (Rank, error) {
	switch strings.ToLower(r) {
	case "7":
		return Sieben, nil
	case "8":
		return Acht, nil
	case "9":
		return Neun, nil
	case "10":
		return Zehn, nil
	case "bube":
		return Bube, nil
	case "dame":
		return Dame, nil
	case "koenig":
		return Koenig, nil
	case "ass":
		return Ass, nil
	}
	return Sieben, fmt.Errorf("no such rank '%s'", r)
}

type Card struct {
	Suit Suit
	Rank Rank
}

// ID is the stable identifier renderers use to look up the card's image.
func (c Card) ID() string {
	return c.Suit.String() + "_" + c.Rank.String()
}

func (c Card) String() string {
	return c.ID()
}

// Beats reports whether c takes the trick over other when lead is the round suit.
// Cards off the lead suit never win.
func (c Card) Beats(other Card, lead Suit) bool {
	if c.Suit != lead {
		return false
	}
	if other.Suit != lead {
		return true
	}
	return c.Rank.Strength() > other.Rank.Strength()
}

// ParseCard reads the "{suit}_{rank}" form produced by ID.
func ParseCard(c string) (Card, error) {
	suit, rank, found := strings.Cut(c, "_")
	if !found {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	s, serr := parseSuit(suit)
	r, rerr := parseRank(rank)
	if serr != nil || rerr != nil {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	return Card{s, r}, nil
}

func (c Card) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.ID())
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	parsed, err := ParseCard(id)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Deck order: suit first, then rank.
func (c1 Card) LessThan(c2 Card) bool {
	if c1.Suit == c2.Suit {
		return c1.Rank < c2.Rank
	}
	return c1.Suit < c2.Suit
}
