package cards

// Play is one card laid on the table by a seat.
type Play struct {
	Player int
	Card   Card
}

type Trick struct {
	Plays []Play
}

func NewTrick() *Trick {
	return &Trick{Plays: make([]Play, 0, 4)}
}

func (t *Trick) String() string {
	return t.Cards().String()
}

func (t *Trick) Size() int {
	return len(t.Plays)
}

func (t *Trick) Add(player int, c Card) {
	t.Plays = append(t.Plays, Play{Player: player, Card: c})
}

func (t *Trick) Cards() Cards {
	cs := make(Cards, 0, len(t.Plays))
	for _, p := range t.Plays {
		cs = append(cs, p.Card)
	}
	return cs
}

// CardOf returns the card played by the given seat, if any.
func (t *Trick) CardOf(player int) (Card, bool) {
	for _, p := range t.Plays {
		if p.Player == player {
			return p.Card, true
		}
	}
	return Card{}, false
}

// Returns false if no card has been played yet.
func (t *Trick) LeadSuit() (Suit, bool) {
	if len(t.Plays) > 0 {
		return t.Plays[0].Card.Suit, true
	}
	return Kreuz, false
}

// Winner is the strongest play of the lead suit. There is no trump.
// Returns false for an empty trick.
func (t *Trick) Winner() (Play, bool) {
	lead, ok := t.LeadSuit()
	if !ok {
		return Play{}, false
	}
	best := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if p.Card.Beats(best.Card, lead) {
			best = p
		}
	}
	return best, true
}
