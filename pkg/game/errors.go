package game

import "errors"

var (
	ErrNotPlaying     = errors.New("game is not accepting plays")
	ErrNotYourTurn    = errors.New("not this player's turn")
	ErrNoSuchPlayer   = errors.New("no such player")
	ErrNoSuchCard     = errors.New("no such card in hand")
	ErrMustFollowSuit = errors.New("must follow the round suit")
	ErrKlopfLimit     = errors.New("klopf level already at maximum")
	ErrNotPending     = errors.New("player is not asked to mitgehen")
	ErrNoTrick        = errors.New("no complete trick to resolve")
	ErrDeckExhausted  = errors.New("not enough cards left to deal")
)
