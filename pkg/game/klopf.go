package game

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// klopfRound collects the mitgehen answers for one knock, keyed by seat.
// A seat maps to nil until it has answered.
type klopfRound struct {
	klopfer   int
	responses *treemap.Map
}

func newKlopfRound(klopfer int) *klopfRound {
	k := &klopfRound{
		klopfer:   klopfer,
		responses: treemap.NewWithIntComparator(),
	}
	for seat := 0; seat < NumPlayers; seat++ {
		if seat != klopfer {
			k.responses.Put(seat, nil)
		}
	}
	return k
}

func (k *klopfRound) isPending(seat int) bool {
	v, found := k.responses.Get(seat)
	return found && v == nil
}

func (k *klopfRound) respond(seat int, join bool) error {
	if !k.isPending(seat) {
		return ErrNotPending
	}
	k.responses.Put(seat, join)
	return nil
}

// pending returns the seats still to answer, in seat order.
func (k *klopfRound) pending() []int {
	var seats []int
	k.responses.Each(func(key, value interface{}) {
		if value == nil {
			seats = append(seats, key.(int))
		}
	})
	return seats
}

func (k *klopfRound) complete() bool {
	return len(k.pending()) == 0
}
