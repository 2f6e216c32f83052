package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ra3zac/Siebenschraem/internal/buildinfo"
	"github.com/ra3zac/Siebenschraem/pkg/config"
	"github.com/ra3zac/Siebenschraem/pkg/discovery"
	"github.com/ra3zac/Siebenschraem/pkg/log"
	"github.com/ra3zac/Siebenschraem/pkg/server"
)

func main() {
	app := buildinfo.NewApp("schraem-server", "host Schräm tables for browsers over websockets")
	app.Flags = []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "config file (yaml, json or toml)"},
		&cli.StringFlag{Name: "listen", Usage: "listen address, overrides ListenAddr"},
		&cli.BoolFlag{Name: "advertise", Usage: "announce the server on the LAN via SSDP"},
		&cli.BoolFlag{Name: "print-conf", Usage: "print the effective config"},
	}
	app.Action = run
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(c *cli.Context) error {
	conf, err := config.ConfInit(c.String("config"), c.Bool("print-conf"))
	if err != nil {
		return err
	}
	if c.IsSet("listen") {
		conf.ListenAddr = c.String("listen")
	}
	if c.IsSet("advertise") {
		conf.Advertise = c.Bool("advertise")
	}
	log.SetFile(conf.LogFile)
	log.SetLevel(conf.LogLevel)

	listener, err := net.Listen("tcp", conf.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", conf.ListenAddr, err)
	}
	log.Infof("Listening on %s", listener.Addr())

	if conf.Advertise {
		port := listener.Addr().(*net.TCPAddr).Port
		hostport := net.JoinHostPort(server.GetOutboundIP().String(), fmt.Sprint(port))
		ad, err := discovery.AdvertiseService(hostport)
		if err != nil {
			return fmt.Errorf("advertise: %w", err)
		}
		defer ad.Close()
	}

	svc := server.NewTableService(server.Options{
		Table:       conf.TableOptions(),
		IdleTimeout: conf.IdleTimeout,
	})
	defer svc.Close()
	httpServer := &http.Server{Handler: svc.Handler()}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	if err := httpServer.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	log.Info("server stopped")
	return nil
}
