package table

import (
	"errors"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/ra3zac/Siebenschraem/pkg/cards"
	"github.com/ra3zac/Siebenschraem/pkg/game"
	"github.com/ra3zac/Siebenschraem/pkg/log"
)

// Display draws the table. All calls come from the table loop.
type Display interface {
	Render(s game.Snapshot)
	Notify(msg string, clearAfter time.Duration)
	ClearNotice()
}

// Prompter asks players for decisions. Calls come from the table loop and
// must not block; answers are fed back through Mitgehen and ConfirmRestart.
type Prompter interface {
	AskMitgehen(klopfer, seat int)
	ConfirmRestart(msg string)
}

type Options struct {
	ID              string
	TrickDelay      time.Duration
	NoticeDelay     time.Duration
	LossNoticeDelay time.Duration
	EndScreenDelay  time.Duration
	// Rand shuffles every deck of this table. Seeded from the clock when nil.
	Rand *rand.Rand
}

func DefaultOptions() Options {
	return Options{
		TrickDelay:      time.Second,
		NoticeDelay:     3 * time.Second,
		LossNoticeDelay: 2 * time.Second,
		EndScreenDelay:  500 * time.Millisecond,
	}
}

// Table owns one game and serializes every input and timer on a single loop.
type Table struct {
	opts     Options
	display  Display
	prompter Prompter

	game            *game.Game
	noticeSeq       int
	asking          int // seat currently asked to go along, -1 if none
	awaitingRestart bool

	lastActivity atomic.Int64
	actQue       chan func()
	quit         chan struct{}
	closed       atomic.Bool
}

func New(opts Options, d Display, p Prompter) *Table {
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	if opts.Rand == nil {
		opts.Rand = cards.NewRand()
	}
	t := &Table{
		opts:     opts,
		display:  d,
		prompter: p,
		asking:   -1,
		actQue:   make(chan func(), 16),
		quit:     make(chan struct{}),
	}
	t.touch()
	return t
}

func (t *Table) ID() string {
	return t.opts.ID
}

func (t *Table) logger() *log.Entry {
	return log.WithField("table", t.opts.ID)
}

// Start deals the first game and runs the loop until Close.
func (t *Table) Start() {
	go t.run()
	t.Do(t.newGame)
}

func (t *Table) run() {
	safecall := func(f func()) {
		defer func() {
			if err := recover(); err != nil {
				t.logger().Errorf("panic: %v", err)
			}
		}()
		f()
	}
	for {
		select {
		case f := <-t.actQue:
			safecall(f)
		case <-t.quit:
			return
		}
	}
}

// Do queues f on the table loop. Dropped once the table is closed.
func (t *Table) Do(f func()) {
	if t.closed.Load() {
		return
	}
	select {
	case t.actQue <- f:
	case <-t.quit:
	}
}

// AfterFunc queues f on the table loop once d has passed.
func (t *Table) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, func() {
		t.Do(f)
	})
}

func (t *Table) Close() {
	if t.closed.Swap(true) {
		return
	}
	close(t.quit)
	t.logger().Info("table closed")
}

func (t *Table) touch() {
	t.lastActivity.Store(time.Now().UnixNano())
}

func (t *Table) LastActivity() time.Time {
	return time.Unix(0, t.lastActivity.Load())
}

// Snapshot returns the current state as seen from the loop.
// The zero Snapshot is returned once the table is closed.
func (t *Table) Snapshot() game.Snapshot {
	if t.closed.Load() {
		return game.Snapshot{}
	}
	ch := make(chan game.Snapshot, 1)
	t.Do(func() {
		if t.game != nil {
			ch <- t.game.GetSnapshot()
		}
	})
	select {
	case s := <-ch:
		return s
	case <-t.quit:
		return game.Snapshot{}
	}
}

// Inputs. Each one is applied on the loop and re-renders the table.

func (t *Table) PlayCard(seat, cardIndex int) {
	t.Do(func() { t.playCard(seat, cardIndex) })
}

// Klopfen knocks for whoever is on turn.
func (t *Table) Klopfen() {
	t.Do(t.klopfen)
}

func (t *Table) Mitgehen(seat int, join bool) {
	t.Do(func() { t.mitgehen(seat, join) })
}

// ConfirmRestart answers the end of game prompt.
func (t *Table) ConfirmRestart(accept bool) {
	t.Do(func() { t.confirmRestart(accept) })
}

// Restart throws the running game away and deals a new one.
func (t *Table) Restart() {
	t.Do(t.newGame)
}

// Refresh re-renders the current state, e.g. for a newly attached display.
func (t *Table) Refresh() {
	t.Do(t.render)
}

func (t *Table) newGame() {
	t.touch()
	t.asking = -1
	t.awaitingRestart = false
	t.game = game.NewGame(t.opts.ID, t.opts.Rand, t)
	t.render()
}

func (t *Table) render() {
	if t.game != nil {
		t.display.Render(t.game.GetSnapshot())
	}
}

func (t *Table) notify(msg string, clearAfter time.Duration) {
	t.noticeSeq++
	seq := t.noticeSeq
	t.display.Notify(msg, clearAfter)
	t.AfterFunc(clearAfter, func() {
		// A newer notice owns the display now.
		if seq == t.noticeSeq {
			t.display.ClearNotice()
		}
	})
}

func (t *Table) playCard(seat, cardIndex int) {
	t.touch()
	g := t.game
	res, err := g.PlayCard(seat, cardIndex)
	if err != nil {
		if !errors.Is(err, game.ErrMustFollowSuit) {
			t.logger().WithField("seat", seat).Debugf("play ignored: %v", err)
		}
		return
	}
	t.render()
	if res == game.TrickCompleted {
		t.AfterFunc(t.opts.TrickDelay, func() { t.resolveTrick(g) })
	}
}

func (t *Table) resolveTrick(g *game.Game) {
	if g != t.game {
		return
	}
	res, err := g.ResolveTrick()
	if err != nil {
		t.logger().Debugf("resolve: %v", err)
		return
	}
	t.render()
	switch res.Phase {
	case game.Finished:
		t.AfterFunc(t.opts.EndScreenDelay, func() {
			t.offerRestart(g, game.MsgRestartPrompt(g.Loser()))
		})
	case game.Stalled:
		t.AfterFunc(t.opts.EndScreenDelay, func() {
			t.offerRestart(g, game.MsgStalledRestartPrompt())
		})
	}
}

func (t *Table) offerRestart(g *game.Game, msg string) {
	if g != t.game {
		return
	}
	t.awaitingRestart = true
	t.prompter.ConfirmRestart(msg)
}

func (t *Table) confirmRestart(accept bool) {
	if !t.awaitingRestart {
		return
	}
	t.awaitingRestart = false
	if accept {
		t.newGame()
		return
	}
	t.logger().Info("restart declined")
}

func (t *Table) klopfen() {
	t.touch()
	seat := t.game.CurrentPlayer()
	if err := t.game.Klopfen(seat); err != nil {
		t.logger().WithField("seat", seat).Debugf("klopfen ignored: %v", err)
		return
	}
	t.render()
	t.askNext()
}

func (t *Table) mitgehen(seat int, join bool) {
	t.touch()
	if err := t.game.Mitgehen(seat, join); err != nil {
		t.logger().WithField("seat", seat).Debugf("mitgehen ignored: %v", err)
		return
	}
	if seat == t.asking {
		t.asking = -1
	}
	t.render()
	t.askNext()
}

// askNext prompts the first seat still owing an answer to the last knock.
func (t *Table) askNext() {
	pending := t.game.PendingMitgehen()
	if len(pending) == 0 || t.asking == pending[0] {
		return
	}
	t.asking = pending[0]
	t.prompter.AskMitgehen(t.game.Klopfer(), t.asking)
}

// game.Reporter

func (t *Table) ReportGameStarted(g *game.Game) {
	t.notify(game.MsgGameStarted, t.opts.NoticeDelay)
}
func (t *Table) ReportCardPlayed(g *game.Game, seat int, card cards.Card) {
}
func (t *Table) ReportTrickWon(g *game.Game, trick cards.Cards, winner int) {
	t.notify(game.MsgTrickWon(winner), t.opts.NoticeDelay)
}
func (t *Table) ReportSchraemLoss(g *game.Game, seat, amount int) {
	t.notify(game.MsgSchraemLoss(seat, amount), t.opts.LossNoticeDelay)
}
func (t *Table) ReportHammer(g *game.Game, seat int) {
	t.notify(game.MsgHammer(seat), t.opts.NoticeDelay)
}
func (t *Table) ReportKlopfen(g *game.Game, seat, level int) {
	t.notify(game.MsgKlopfen(seat, level), t.opts.NoticeDelay)
}
func (t *Table) ReportDeckExhausted(g *game.Game) {
	t.notify(game.MsgDeckExhausted, t.opts.NoticeDelay)
}
func (t *Table) ReportGameOver(g *game.Game, loser int) {
	t.notify(game.MsgGameOver(loser), t.opts.NoticeDelay)
}
func (t *Table) BroadcastMessage(g *game.Game, msg string) {
	t.notify(msg, t.opts.NoticeDelay)
}
