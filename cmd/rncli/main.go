package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rnlab/rnspace/backend"
	"github.com/rnlab/rnspace/cmd/rncli/session"

	"github.com/evilsocket/islazy/log"
	"github.com/evilsocket/islazy/str"
	"github.com/sirupsen/logrus"

	"github.com/chzyer/readline"
)

const (
	prompt  = "\033[31m»\033[0m "
	history = "/tmp/rncli.tmp"
)

var (
	evalString = flag.String("eval", "", "List of commands to run, divided by a semicolon.")
	logFile    = flag.String("log-file", "", "If filled, log messages will be written to this file.")
	logDebug   = flag.Bool("debug", false, "Enable debug logs.")
)

func die(format string, args ...interface{}) {
	fmt.Printf(format, args...)
	os.Exit(1)
}

func setupLogging() {
	log.OnFatal = log.ExitOnFatal
	if *logFile != "" {
		log.Output = *logFile
		logrus.SetOutput(os.Stderr)
	}
	if *logDebug {
		log.Level = log.DEBUG
		logrus.SetLevel(logrus.DebugLevel)
	}
	if err := log.Open(); err != nil {
		panic(err)
	}
}

func main() {
	flag.Parse()

	setupLogging()
	defer log.Close()

	log.Debug("using %s backend", backend.Name())

	sess := session.New()
	reader, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("rn %s", prompt),
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    session.Completers,
	})
	if err != nil {
		die("%v\n", err)
	}
	defer reader.Close()

	for _, cmd := range str.SplitBy(*evalString, ";") {
		if err := session.Dispatch(cmd, reader, sess); err != nil {
			fmt.Printf("%s\n", err)
		}
	}

	for {
		if line, err := reader.Readline(); err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		} else {
			for _, cmd := range str.SplitBy(line, ";") {
				if err := session.Dispatch(cmd, reader, sess); err != nil {
					fmt.Printf("%s\n", err)
				}
			}
		}
	}
}
