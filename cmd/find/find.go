package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ra3zac/Siebenschraem/internal/buildinfo"
	"github.com/ra3zac/Siebenschraem/pkg/discovery"
	"github.com/ra3zac/Siebenschraem/pkg/log"
)

func main() {
	app := buildinfo.NewApp("schraem-find", "look for Schräm servers on the LAN")
	app.Flags = []cli.Flag{
		&cli.DurationFlag{Name: "wait", Value: time.Second, Usage: "how long to wait for answers"},
		&cli.StringFlag{Name: "interface", Usage: "only search on this network interface"},
	}
	app.Action = func(c *cli.Context) error {
		if iface := c.String("interface"); iface != "" {
			discovery.ListenOnlyTo(iface)
		}
		locs, err := discovery.FindService(c.Duration("wait"))
		if err != nil {
			return err
		}
		if len(locs) == 0 {
			fmt.Println("No SchraemServer found")
		}
		for _, loc := range locs {
			fmt.Printf("Found SchraemServer at %s\n", loc)
		}
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}
