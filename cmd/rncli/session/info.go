package session

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/evilsocket/islazy/tui"

	"github.com/rnlab/rnspace/backend"

	"github.com/chzyer/readline"
)

// Version of the rncli shell.
const Version = "1.0.0"

var infoHandler = handler{
	Name:        "INFO",
	Mnemonic:    "INFO",
	Completer:   readline.PcItem("info"),
	Description: "Display session and backend information.",
	Callback: func(cmd string, args []string, reader *readline.Instance, sess *Session) error {
		sess.RLock()
		defer sess.RUnlock()

		rows := [][]string{
			{"version", Version},
			{"uptime", fmt.Sprintf("%ds", uint64(time.Since(sess.started).Seconds()))},
			{"pid", fmt.Sprintf("%d", os.Getpid())},
			{"backend", backend.Name()},
			{"memory", humanize.Bytes(backend.Space())},
			{"spaces", fmt.Sprintf("%d", len(sess.spaces))},
			{"vectors", fmt.Sprintf("%d", len(sess.vectors))},
			{"oracles", fmt.Sprintf("%d", len(sess.functionals))},
		}

		tui.Table(os.Stdout, []string{"name", "value"}, rows)

		return nil
	},
}
