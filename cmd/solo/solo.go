package main

import (
	"math/rand"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ra3zac/Siebenschraem/internal/buildinfo"
	"github.com/ra3zac/Siebenschraem/pkg/config"
	"github.com/ra3zac/Siebenschraem/pkg/log"
	"github.com/ra3zac/Siebenschraem/pkg/player"
	"github.com/ra3zac/Siebenschraem/pkg/table"
)

func main() {
	app := buildinfo.NewApp("schraem-solo", "play Schräm hot-seat in the terminal")
	app.Flags = []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "config file (yaml, json or toml)"},
		&cli.Int64Flag{Name: "seed", Usage: "shuffle seed, random when unset"},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(c *cli.Context) error {
	conf, err := config.ConfInit(c.String("config"), false)
	if err != nil {
		return err
	}
	// The terminal belongs to the game, logs only go to the file.
	log.SetQuiet(conf.LogFile)
	log.SetLevel(conf.LogLevel)

	opts := conf.TableOptions()
	if c.IsSet("seed") {
		opts.Rand = rand.New(rand.NewSource(c.Int64("seed")))
	}
	term := player.NewTerminal(os.Stdout)
	t := table.New(opts, term, term)
	t.Start()
	defer t.Close()
	return term.Run(os.Stdin, t)
}
