package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ra3zac/Siebenschraem/internal/buildinfo"
	"github.com/ra3zac/Siebenschraem/pkg/cards"
	"github.com/ra3zac/Siebenschraem/pkg/game"
	"github.com/ra3zac/Siebenschraem/pkg/log"
)

func main() {
	app := buildinfo.NewApp("schraem-deal", "shuffle a deck and print the first deal")
	app.Flags = []cli.Flag{
		&cli.Int64Flag{Name: "seed", Usage: "shuffle seed, random when unset"},
		&cli.StringSliceFlag{Name: "hand", Usage: "show the given cards (e.g. karo_7,herz_ass) instead of dealing"},
	}
	app.Action = func(c *cli.Context) error {
		if c.IsSet("hand") {
			hand, err := cards.ParseCards(c.StringSlice("hand"))
			if err != nil {
				return err
			}
			hand.Sort()
			fmt.Println(hand.HandString())
			fmt.Println(suitCounts(hand))
			return nil
		}
		rng := cards.NewRand()
		if c.IsSet("seed") {
			rng = rand.New(rand.NewSource(c.Int64("seed")))
		}
		log.SetLevel("warn")
		g := game.NewGame("deal", rng, nil)
		for seat := 0; seat < game.NumPlayers; seat++ {
			hand := g.Hand(seat)
			hand.Sort()
			fmt.Printf("%9s: %s\n", game.SeatName(seat), hand.HandString())
		}
		fmt.Printf("Stapel: %d Karten\n", g.DeckSize())
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}

func suitCounts(hand cards.Cards) string {
	counts := make([]string, 0, len(cards.Suits))
	for _, s := range cards.Suits {
		counts = append(counts, fmt.Sprintf("%s: %d", s, hand.CountSuit(s)))
	}
	return strings.Join(counts, "  ")
}
