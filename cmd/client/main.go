package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ra3zac/Siebenschraem/internal/buildinfo"
	"github.com/ra3zac/Siebenschraem/pkg/client"
	"github.com/ra3zac/Siebenschraem/pkg/log"
	"github.com/ra3zac/Siebenschraem/pkg/player"
)

func main() {
	app := buildinfo.NewApp("schraem-client", "play at a table of a running Schräm server")
	app.Flags = []cli.Flag{
		&cli.StringFlag{Name: "server", Value: "local", Usage: "server to use, one of [local lan]"},
		&cli.StringFlag{Name: "addr", Usage: "server host:port, overrides --server"},
		&cli.StringFlag{Name: "table", Usage: "join this table instead of opening a new one"},
		&cli.StringFlag{Name: "log-file", Usage: "write logs to this file"},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(c *cli.Context) error {
	log.SetQuiet(c.String("log-file"))
	addr := c.String("addr")
	if addr == "" {
		stype, err := client.ServerTypeFromFlag(c.String("server"))
		if err != nil {
			return err
		}
		if addr, err = client.ServerAddr(stype); err != nil {
			return err
		}
	}
	conn, err := client.Connect(c.Context, addr, c.String("table"))
	if err != nil {
		return err
	}
	defer conn.Close()
	log.Infof("joined table %s", conn.TableId())
	fmt.Printf("Tisch %s\n", conn.TableId())

	term := player.NewTerminal(os.Stdout)
	go func() {
		if err := conn.Listen(term, term); err != nil {
			log.Errorf("connection closed: %v", err)
		}
	}()
	return term.Run(os.Stdin, conn)
}
