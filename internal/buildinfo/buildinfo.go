package buildinfo

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/urfave/cli/v2"
)

// Set with -ldflags "-X github.com/ra3zac/Siebenschraem/internal/buildinfo.Version=..."
var (
	Version   string = "unknown"
	GitCommit string = "unknown"
	BuildAt   string = "unknown"
	BuildBy   string = runtime.Version()
	RunningOS string = runtime.GOOS + "/" + runtime.GOARCH
)

func LongVersion(name string) string {
	buf := bytes.NewBuffer(nil)
	fmt.Fprintln(buf, "project:", name)
	fmt.Fprintln(buf, "version:", Version)
	fmt.Fprintln(buf, "git commit:", GitCommit)
	fmt.Fprintln(buf, "build at:", BuildAt)
	fmt.Fprintln(buf, "build by:", BuildBy)
	fmt.Fprintln(buf, "running OS/Arch:", RunningOS)
	return buf.String()
}

// NewApp returns a cli app that prints the long version for --version.
func NewApp(name, usage string) *cli.App {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Println(LongVersion(c.App.Name))
	}
	app := cli.NewApp()
	app.Name = name
	app.Usage = usage
	app.Version = Version
	return app
}
