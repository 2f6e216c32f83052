package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ra3zac/Siebenschraem/pkg/cards"
	"github.com/ra3zac/Siebenschraem/pkg/log"
)

// Game is the complete state of one Schräm session.
// It is not safe for concurrent use; the owner serializes all calls.
type Game struct {
	id               string
	lastActivityTime time.Time
	rng              *rand.Rand
	reporter         Reporter

	phase         Phase
	deck          cards.Cards
	hands         [NumPlayers]cards.Cards
	trick         *cards.Trick
	discard       cards.Cards // played tricks and hands thrown in on a new deal
	schraeme      [NumPlayers]int
	klopfLevel    int
	mitgehen      [NumPlayers]bool
	klopf         *klopfRound // non-nil while answers are outstanding
	hammerActive  bool
	history       []string
	currentPlayer int
	roundStarter  int
	loser         int
}

type PlayResult int8

const (
	CardPlayed PlayResult = iota
	TrickCompleted
)

// Resolution summarizes one resolved trick.
type Resolution struct {
	Winner int
	Trick  cards.Cards
	Losses [NumPlayers]int
	Phase  Phase
}

// NewGame creates a game with a shuffled deck already dealt.
// A nil reporter discards all reports; a nil rng is seeded from the clock.
func NewGame(id string, rng *rand.Rand, r Reporter) *Game {
	if rng == nil {
		rng = cards.NewRand()
	}
	if r == nil {
		r = UnimplementedReporter{}
	}
	g := &Game{id: id, rng: rng, reporter: r}
	g.Restart()
	return g
}

func (g *Game) Id() string {
	return g.id
}
func (g *Game) Phase() Phase {
	return g.phase
}
func (g *Game) GetLastActivityTime() time.Time {
	return g.lastActivityTime
}
func (g *Game) touch() {
	g.lastActivityTime = time.Now()
}

func (g *Game) CurrentPlayer() int {
	return g.currentPlayer
}
func (g *Game) RoundStarter() int {
	return g.roundStarter
}
func (g *Game) KlopfLevel() int {
	return g.klopfLevel
}
func (g *Game) HammerActive() bool {
	return g.hammerActive
}
func (g *Game) DeckSize() int {
	return len(g.deck)
}

// Loser is the eliminated seat, or -1 while nobody is out.
func (g *Game) Loser() int {
	return g.loser
}

func (g *Game) Hand(seat int) cards.Cards {
	if !validSeat(seat) {
		return nil
	}
	return g.hands[seat].Copy()
}

func (g *Game) Schraeme() [NumPlayers]int {
	return g.schraeme
}

// MitgehenFlags reports which seats take part in the current stake.
func (g *Game) MitgehenFlags() [NumPlayers]bool {
	return g.mitgehen
}

func (g *Game) History() []string {
	h := make([]string, len(g.history))
	copy(h, g.history)
	return h
}

func (g *Game) Trick() cards.Trick {
	return cards.Trick{Plays: append([]cards.Play(nil), g.trick.Plays...)}
}

// RoundSuit is the suit led in the current trick. Returns false before the first card.
func (g *Game) RoundSuit() (cards.Suit, bool) {
	return g.trick.LeadSuit()
}

// PendingMitgehen lists the seats that still have to answer a knock.
func (g *Game) PendingMitgehen() []int {
	if g.klopf == nil {
		return nil
	}
	return g.klopf.pending()
}

// Klopfer is the seat that knocked last, or -1 while no answers are outstanding.
func (g *Game) Klopfer() int {
	if g.klopf == nil {
		return -1
	}
	return g.klopf.klopfer
}

func (g *Game) logger() *log.Entry {
	return log.WithField("game", g.id)
}

func validSeat(seat int) bool {
	return seat >= 0 && seat < NumPlayers
}

// Restart reinitializes every counter and deals from a fresh shuffled deck.
func (g *Game) Restart() {
	g.touch()
	g.deck = cards.MakeDeck()
	g.deck.Shuffle(g.rng)
	g.hands = [NumPlayers]cards.Cards{}
	g.discard = nil
	g.trick = cards.NewTrick()
	g.currentPlayer = 0
	g.roundStarter = 0
	for i := range g.schraeme {
		g.schraeme[i] = StartSchraeme
	}
	g.history = nil
	g.klopfLevel = 1
	g.klopf = nil
	g.hammerActive = false
	g.loser = -1
	g.phase = Playing
	if err := g.DealCards(); err != nil {
		// A fresh deck always holds enough cards.
		panic(err)
	}
	g.logger().Info("new game started")
	g.reporter.ReportGameStarted(g)
}

// DealCards gives each seat 4 cards from the end of the deck, seat by seat.
// Cards still in hand are thrown in.
func (g *Game) DealCards() error {
	if len(g.deck) < NumPlayers*CardsPerHand {
		return ErrDeckExhausted
	}
	for i := range g.hands {
		g.discard = append(g.discard, g.hands[i]...)
		g.hands[i] = make(cards.Cards, 0, CardsPerHand)
	}
	for i := range g.hands {
		for j := 0; j < CardsPerHand; j++ {
			var c cards.Card
			c, g.deck = g.deck.Pop()
			g.hands[i] = append(g.hands[i], c)
		}
	}
	g.resetMitgehen()
	g.logger().WithField("deck", len(g.deck)).Debug("dealt cards")
	return nil
}

func (g *Game) resetMitgehen() {
	for i := range g.mitgehen {
		g.mitgehen[i] = true
	}
}

// LegalPlays returns the cards in the seat's hand that may follow the round suit.
func (g *Game) LegalPlays(seat int) cards.Cards {
	if !validSeat(seat) {
		return nil
	}
	hand := g.hands[seat]
	lead, ok := g.trick.LeadSuit()
	if !ok || !hand.ContainsSuit(lead) {
		return hand.Copy()
	}
	return hand.FilterBySuit(lead)
}

func isValidCardForTrick(card cards.Card, trick *cards.Trick, hand cards.Cards) bool {
	leadSuit, ok := trick.LeadSuit()
	// Any card may lead.
	if !ok {
		return true
	}
	if card.Suit == leadSuit {
		return true
	}
	// Else player must not have any of the lead suit in hand.
	return !hand.ContainsSuit(leadSuit)
}

// PlayCard lays the card at cardIndex of the seat's hand on the trick.
// A rejected play never changes the game.
func (g *Game) PlayCard(seat, cardIndex int) (PlayResult, error) {
	if g.phase != Playing {
		return CardPlayed, ErrNotPlaying
	}
	if !validSeat(seat) {
		return CardPlayed, fmt.Errorf("seat %d: %w", seat, ErrNoSuchPlayer)
	}
	if seat != g.currentPlayer {
		return CardPlayed, ErrNotYourTurn
	}
	hand := g.hands[seat]
	if cardIndex < 0 || cardIndex >= len(hand) {
		return CardPlayed, fmt.Errorf("card %d of %d: %w", cardIndex, len(hand), ErrNoSuchCard)
	}
	card := hand[cardIndex]
	if !isValidCardForTrick(card, g.trick, hand) {
		g.reporter.BroadcastMessage(g, MsgFollowSuit)
		return CardPlayed, ErrMustFollowSuit
	}
	g.touch()
	g.trick.Add(seat, card)
	g.hands[seat] = hand.RemoveAt(cardIndex)
	g.logger().WithField("seat", seat).Debugf("played %s", card)
	g.reporter.ReportCardPlayed(g, seat, card)

	if g.trick.Size() < NumPlayers {
		g.currentPlayer = (g.currentPlayer + 1) % NumPlayers
		return CardPlayed, nil
	}
	g.phase = TrickComplete
	return TrickCompleted, nil
}

// ResolveTrick decides the complete trick, settles the stakes and deals again
// when the deck allows.
func (g *Game) ResolveTrick() (Resolution, error) {
	if g.phase != TrickComplete {
		return Resolution{}, ErrNoTrick
	}
	g.touch()
	winningPlay, _ := g.trick.Winner()
	winner := winningPlay.Player
	played := g.trick.Cards()
	g.history = append(g.history, MsgTrickWon(winner))
	g.logger().WithField("seat", winner).Infof("trick %s won with %s", played, winningPlay.Card)

	g.currentPlayer = winner
	g.roundStarter = winner
	g.discard = append(g.discard, played...)
	g.trick = cards.NewTrick()
	g.reporter.ReportTrickWon(g, played, winner)

	res := Resolution{Winner: winner, Trick: played}
	res.Losses = g.settleStakes(winner)
	if g.phase != Finished {
		g.continueOrStall()
	}
	res.Phase = g.phase
	return res, nil
}

func (g *Game) settleStakes(winner int) [NumPlayers]int {
	var losses [NumPlayers]int
	for i := 0; i < NumPlayers; i++ {
		if i != winner && g.mitgehen[i] {
			g.schraeme[i] -= g.klopfLevel
			losses[i] = g.klopfLevel
			g.logger().WithField("seat", i).Infof("loses %d, %d left", g.klopfLevel, g.schraeme[i])
			g.reporter.ReportSchraemLoss(g, i, g.klopfLevel)
		}
	}

	for i, s := range g.schraeme {
		if s <= 0 {
			g.loser = i
			g.phase = Finished
			g.logger().WithField("seat", i).Info("eliminated")
			g.reporter.ReportGameOver(g, i)
			return losses
		}
	}

	g.klopfLevel = 1
	g.resetMitgehen()
	g.hammerActive = false
	for i, s := range g.schraeme {
		if s == 1 {
			g.hammerActive = true
			g.klopfLevel = HammerKlopfLevel
			g.reporter.ReportHammer(g, i)
		}
	}
	return losses
}

func (g *Game) continueOrStall() {
	if err := g.DealCards(); err != nil {
		g.phase = Stalled
		g.logger().Info("deck exhausted")
		g.reporter.ReportDeckExhausted(g)
		return
	}
	g.phase = Playing
}

// Klopfen raises the stake for the current trick. Every other seat then has
// to decide whether to go along before play continues.
func (g *Game) Klopfen(seat int) error {
	if g.phase != Playing {
		return ErrNotPlaying
	}
	if !validSeat(seat) {
		return fmt.Errorf("seat %d: %w", seat, ErrNoSuchPlayer)
	}
	if seat != g.currentPlayer {
		return ErrNotYourTurn
	}
	if g.klopfLevel >= MaxKlopfLevel {
		return ErrKlopfLimit
	}
	g.touch()
	g.klopfLevel++
	g.history = append(g.history, MsgKlopfen(seat, g.klopfLevel))
	g.resetMitgehen()
	g.klopf = newKlopfRound(seat)
	g.phase = AwaitingMitgehen
	g.logger().WithField("seat", seat).Infof("klopft, level %d", g.klopfLevel)
	g.reporter.ReportKlopfen(g, seat, g.klopfLevel)
	return nil
}

// Mitgehen records one seat's answer to the last knock.
func (g *Game) Mitgehen(seat int, join bool) error {
	if g.phase != AwaitingMitgehen || g.klopf == nil {
		return ErrNotPending
	}
	if !validSeat(seat) {
		return fmt.Errorf("seat %d: %w", seat, ErrNoSuchPlayer)
	}
	if err := g.klopf.respond(seat, join); err != nil {
		return err
	}
	g.touch()
	g.mitgehen[seat] = join
	g.logger().WithField("seat", seat).Debugf("mitgehen=%t", join)
	if g.klopf.complete() {
		g.klopf = nil
		g.phase = Playing
	}
	return nil
}

// Scoreboard lists every seat with its remaining Schräme.
func (g *Game) Scoreboard() []string {
	lines := make([]string, 0, NumPlayers)
	for i, s := range g.schraeme {
		lines = append(lines, fmt.Sprintf("%s: %d Schräme", SeatName(i), s))
	}
	return lines
}
