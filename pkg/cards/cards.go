package cards

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"golang.org/x/exp/slices"
)

type Cards []Card

// Number of cards in a full deck.
const DeckSize = 32

// MakeDeck returns the 32 cards in suit-major, rank-minor order.
func MakeDeck() Cards {
	d := make([]Card, 0, len(Suits)*len(Ranks))
	for _, s := range Suits {
		for _, r := range Ranks {
			d = append(d, Card{s, r})
		}
	}
	return d
}

// NewRand returns a time-seeded source for shuffling.
func NewRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// Shuffle permutes the cards in place (Fisher-Yates).
func (cs Cards) Shuffle(r *rand.Rand) {
	for i := len(cs) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		cs[i], cs[j] = cs[j], cs[i]
	}
}

func (cs Cards) Copy() Cards {
	cardsCopy := make([]Card, len(cs))
	copy(cardsCopy, cs)
	return cardsCopy
}

// Equals compares as multisets, ignoring order.
func (cs Cards) Equals(other Cards) bool {
	sorted := cs.Copy()
	sorted.Sort()
	otherSorted := other.Copy()
	otherSorted.Sort()
	return slices.Equal(sorted, otherSorted)
}

func (cs Cards) Contains(match func(Card) bool) bool {
	return slices.IndexFunc(cs, match) >= 0
}

func (cs Cards) ContainsCard(c Card) bool {
	return slices.Contains(cs, c)
}

func (cs Cards) ContainsSuit(s Suit) bool {
	return cs.Contains(func(c Card) bool { return c.Suit == s })
}

func (cs Cards) Count(match func(Card) bool) int {
	count := 0
	for _, c := range cs {
		if match(c) {
			count++
		}
	}
	return count
}
func (cs Cards) CountSuit(s Suit) int {
	return cs.Count(func(c Card) bool { return c.Suit == s })
}

func (cs Cards) Remove(c Card) Cards {
	for i, f := range cs {
		if f == c {
			return cs.RemoveAt(i)
		}
	}
	return cs
}

// RemoveAt drops the card at index i, keeping the order of the rest.
func (cs Cards) RemoveAt(i int) Cards {
	copy(cs[i:], cs[i+1:])
	return cs[:len(cs)-1]
}

// Pop removes and returns the last card.
func (cs Cards) Pop() (Card, Cards) {
	last := len(cs) - 1
	return cs[last], cs[:last]
}

func (cs Cards) Sort() {
	sort.Slice(cs, func(i, j int) bool {
		return cs[i].LessThan(cs[j])
	})
}

func (cs Cards) Filter(match func(c Card) bool) Cards {
	var filtered Cards
	for _, c := range cs {
		if match(c) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (cs Cards) FilterBySuit(suits ...Suit) Cards {
	return cs.Filter(func(c Card) bool {
		return slices.Contains(suits, c.Suit)
	})
}

// Strongest returns the card with the highest rank strength.
// Returns false if there are no cards.
func (cs Cards) Strongest() (Card, bool) {
	if len(cs) == 0 {
		return Card{}, false
	}
	best := cs[0]
	for _, c := range cs[1:] {
		if c.Rank.Strength() > best.Rank.Strength() {
			best = c
		}
	}
	return best, true
}

func Combine(cardss ...Cards) Cards {
	var cs Cards
	for _, cards := range cardss {
		cs = append(cs, cards...)
	}
	return cs
}

func (cs Cards) SplitBySuit() map[Suit]Cards {
	cbs := make(map[Suit]Cards)
	for _, c := range cs {
		cbs[c.Suit] = append(cbs[c.Suit], c)
	}
	return cbs
}

func (cs Cards) Strings() []string {
	cardStrings := []string{}
	for _, c := range cs {
		cardStrings = append(cardStrings, c.String())
	}
	return cardStrings
}

func (cs Cards) String() string {
	cardStrings := cs.Strings()
	return strings.Join(cardStrings, " ")
}

// HandString groups the cards by suit, each suit in deck order.
func (cs Cards) HandString() string {
	cbs := cs.SplitBySuit()
	suitStrings := []string{}
	for _, s := range Suits {
		scs := cbs[s]
		if len(scs) > 0 {
			scs.Sort()
			suitStrings = append(suitStrings, scs.String())
		}
	}
	return strings.Join(suitStrings, "   ")
}

func ParseCards(cs []string) (Cards, error) {
	var cards Cards
	for _, c := range cs {
		card, err := ParseCard(c)
		if err != nil {
			return Cards{}, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
