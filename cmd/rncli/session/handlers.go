package session

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/chzyer/readline"
)

type handlerCb func(cmd string, args []string, reader *readline.Instance, sess *Session) error

type handler struct {
	Parser      *regexp.Regexp
	Completer   *readline.PrefixCompleter
	Name        string
	Mnemonic    string
	Description string
	Callback    handlerCb
}

var Handlers = []handler{}
var Completers = (*readline.PrefixCompleter)(nil)

func init() {
	Handlers = []handler{
		helpHandler,
		quitHandler,
		infoHandler,
		// spaces
		createSpaceHandler,
		listSpacesHandler,
		// vectors CRUD
		createVectorHandler,
		zeroVectorHandler,
		readVectorHandler,
		setVectorHandler,
		deleteVectorHandler,
		listVectorsHandler,
		// algebra
		linCombHandler,
		normHandler,
		dotHandler,
		mulHandler,
		// oracles
		createOracleHandler,
		callOracleHandler,
	}

	tmp := []readline.PrefixCompleterInterface{}
	for _, h := range Handlers {
		if h.Completer != nil {
			tmp = append(tmp, h.Completer)
		}
	}
	Completers = readline.NewPrefixCompleter(tmp...)
}

// Dispatch routes a command line to the first handler whose parser or name
// matches it.
func Dispatch(cmd string, reader *readline.Instance, sess *Session) error {
	for _, handler := range Handlers {
		match := false
		args := []string{}

		if handler.Parser != nil {
			if result := handler.Parser.FindStringSubmatch(cmd); result != nil && len(result) == handler.Parser.NumSubexp()+1 {
				cmd = result[1:][0]
				args = result[1:][1:]
				match = true
			}
		} else if strings.EqualFold(handler.Name, cmd) {
			match = true
		}

		if match {
			return handler.Callback(cmd, args, reader, sess)
		}
	}

	return fmt.Errorf("command not found: %s", cmd)
}
