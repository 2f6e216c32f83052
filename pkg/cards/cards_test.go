package cards

import (
	"math/rand"
	"testing"

	"golang.org/x/exp/slices"
)

func TestMakeDeck(t *testing.T) {
	d := MakeDeck()
	if len(d) != DeckSize {
		t.Fatalf("MakeDeck()=%d cards, want %d", len(d), DeckSize)
	}
	seen := make(map[Card]bool)
	for _, c := range d {
		if seen[c] {
			t.Errorf("MakeDeck(): duplicate card %s", c)
		}
		seen[c] = true
	}
	if d[0] != Kreuz7 || d[7] != KreuzAss || d[8] != Pik7 || d[31] != KaroAss {
		t.Errorf("MakeDeck()=%s, want suit-major rank-minor order", d)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		d := MakeDeck()
		d.Shuffle(r)
		if !d.Equals(MakeDeck()) {
			t.Fatalf("Shuffle()=%s, not a permutation of the deck", d)
		}
	}
}

func TestShuffleMovesCards(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	d := MakeDeck()
	d.Shuffle(r)
	if d.String() == MakeDeck().String() {
		t.Errorf("Shuffle() left the deck in order")
	}
}

func TestFilterBySuit(t *testing.T) {
	tests := []struct {
		name  string
		hand  Cards
		suits []Suit
		want  Cards
	}{
		{
			name:  "Just kreuz",
			hand:  Cards{Kreuz7, Pik8, Herz9, Karo10},
			suits: []Suit{Kreuz},
			want:  Cards{Kreuz7},
		},
		{
			name:  "Just karo",
			hand:  Cards{Kreuz7, Pik8, Herz9, Karo10},
			suits: []Suit{Karo},
			want:  Cards{Karo10},
		},
		{
			name:  "Filter all out",
			hand:  Cards{Kreuz7, Kreuz8, Pik9, Karo10},
			suits: []Suit{Herz},
			want:  Cards{},
		},
		{
			name:  "Start with empty hand",
			hand:  Cards{},
			suits: []Suit{Herz},
			want:  Cards{},
		},
		{
			name:  "Filter multiple suits",
			hand:  Cards{Kreuz7, Pik8, Herz9, Karo10},
			suits: []Suit{Herz, Pik},
			want:  Cards{Pik8, Herz9},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.hand.FilterBySuit(tc.suits...)
			if !got.Equals(tc.want) {
				t.Errorf("FilterBySuit(%s,%v)=%s, want %s", tc.hand, tc.suits, got, tc.want)
			}
		})
	}
}

func TestContainsSuit(t *testing.T) {
	tests := []struct {
		hand Cards
		suit Suit
		want bool
	}{
		{
			hand: Cards{Herz7, HerzDame, Herz9},
			suit: Herz,
			want: true,
		},
		{
			hand: Cards{Herz7, HerzDame, Herz9},
			suit: Pik,
			want: false,
		},
		{
			hand: Cards{},
			suit: Pik,
			want: false,
		},
	}
	for _, tc := range tests {
		got := tc.hand.ContainsSuit(tc.suit)
		if got != tc.want {
			t.Errorf("ContainsSuit(%s, %s)=%t, want %t", tc.hand, tc.suit, got, tc.want)
		}
	}
}

func TestStrongest(t *testing.T) {
	tests := []struct {
		hand Cards
		want Card
	}{
		{
			hand: Cards{KaroAss, Karo7, KaroBube},
			want: Karo7,
		},
		{
			hand: Cards{HerzKoenig, HerzDame, Herz10, HerzAss},
			want: Herz10,
		},
		{
			hand: Cards{PikBube},
			want: PikBube,
		},
	}
	for _, tc := range tests {
		got, ok := tc.hand.Strongest()
		if !ok || got != tc.want {
			t.Errorf("Strongest(%s)=%s,%t, want %s", tc.hand, got, ok, tc.want)
		}
	}
	if _, ok := (Cards{}).Strongest(); ok {
		t.Errorf("Strongest() of empty cards returned ok")
	}
}

func TestRemoveAt(t *testing.T) {
	hand := Cards{Kreuz7, Pik8, Herz9, Karo10}
	got := hand.RemoveAt(1)
	want := Cards{Kreuz7, Herz9, Karo10}
	if got.String() != want.String() {
		t.Errorf("RemoveAt(1)=%s, want %s", got, want)
	}
}

func TestPop(t *testing.T) {
	d := Cards{Kreuz7, Pik8, Herz9}
	c, rest := d.Pop()
	if c != Herz9 || rest.String() != (Cards{Kreuz7, Pik8}).String() {
		t.Errorf("Pop()=%s,%s, want herz_9,kreuz_7 pik_8", c, rest)
	}
}

func TestParseCards(t *testing.T) {
	got, err := ParseCards([]string{"karo_7", "herz_ass", "kreuz_bube"})
	if err != nil {
		t.Fatalf("ParseCards()=error(%s), want nil", err)
	}
	want := Cards{Karo7, HerzAss, KreuzBube}
	if !slices.Equal(got, want) {
		t.Errorf("ParseCards()=%s, want %s", got, want)
	}
	if got, err := ParseCards([]string{"karo_7", "karo7"}); err == nil {
		t.Errorf("ParseCards(karo_7 karo7)=%s, want err", got)
	}
}

func TestCountSuit(t *testing.T) {
	hand := Cards{Karo10, Kreuz8, Karo7, Herz9}
	tests := []struct {
		s    Suit
		want int
	}{
		{Karo, 2},
		{Kreuz, 1},
		{Herz, 1},
		{Pik, 0},
	}
	for _, tc := range tests {
		if got := hand.CountSuit(tc.s); got != tc.want {
			t.Errorf("CountSuit(%s)=%d, want %d", tc.s, got, tc.want)
		}
	}
}

func TestHandString(t *testing.T) {
	hand := Cards{Karo10, Kreuz8, Karo7, Herz9}
	want := "kreuz_8   herz_9   karo_7 karo_10"
	if got := hand.HandString(); got != want {
		t.Errorf("HandString(%s)=%q, want %q", hand, got, want)
	}
}

func TestTrickWinner(t *testing.T) {
	tests := []struct {
		name  string
		plays []Play
		want  int
	}{
		{
			name: "Off-suit king cannot win",
			plays: []Play{
				{0, Karo7},
				{1, KaroAss},
				{2, PikKoenig},
				{3, KaroBube},
			},
			want: 0,
		},
		{
			name: "Ass beats the picture cards",
			plays: []Play{
				{0, KaroBube},
				{1, KaroAss},
				{2, PikKoenig},
				{3, KaroDame},
			},
			want: 1,
		},
		{
			name: "Ten beats everything in suit",
			plays: []Play{
				{2, HerzAss},
				{3, Herz10},
				{0, Herz7},
				{1, Kreuz10},
			},
			want: 3,
		},
		{
			name: "Lead wins when nobody follows",
			plays: []Play{
				{1, PikBube},
				{2, Kreuz10},
				{3, Herz10},
				{0, Karo10},
			},
			want: 1,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			trick := NewTrick()
			for _, p := range tc.plays {
				trick.Add(p.Player, p.Card)
			}
			got, ok := trick.Winner()
			if !ok || got.Player != tc.want {
				t.Errorf("Winner(%s)=%d, want %d", trick, got.Player, tc.want)
			}
		})
	}
}

func TestEmptyTrick(t *testing.T) {
	trick := NewTrick()
	if _, ok := trick.LeadSuit(); ok {
		t.Errorf("LeadSuit() of empty trick returned ok")
	}
	if _, ok := trick.Winner(); ok {
		t.Errorf("Winner() of empty trick returned ok")
	}
}
