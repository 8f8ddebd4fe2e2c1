package session

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/evilsocket/islazy/tui"

	"github.com/rnlab/rnspace/space"

	"github.com/chzyer/readline"
)

var createSpaceHandler = handler{
	Name:        "SPACE",
	Mnemonic:    "SPACE or S <NAME> <N> [rn|normed|euclidean] [ORD]",
	Completer:   readline.PcItem("space"),
	Parser:      regexp.MustCompile(`^(?i)(SPACE|S)\s+([^\s]+)\s+(\d+)\s*([^\s]*)\s*([^\s]*)$`),
	Description: "Create a space called NAME of dimension N, euclidean by default.",
	Callback: func(cmd string, args []string, reader *readline.Instance, sess *Session) error {
		name := args[0]
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}

		kind := strings.ToLower(args[2])
		if kind == "" {
			kind = "euclidean"
		}

		var sp space.LinearSpace
		switch kind {
		case "rn":
			sp, err = space.NewRN(n)
		case "normed":
			ord := 2.0
			if args[3] != "" {
				if ord, err = strconv.ParseFloat(args[3], 64); err != nil {
					return err
				}
			}
			sp, err = space.NewNormedWithOrder(n, ord)
		case "euclidean":
			sp, err = space.NewEuclidean(n)
		default:
			return fmt.Errorf("unknown space kind: %s", kind)
		}
		if err != nil {
			return err
		}

		if err = sess.addSpace(name, sp); err != nil {
			return err
		}

		fmt.Printf("%s = %v\n", name, sp)

		return nil
	},
}

var listSpacesHandler = handler{
	Name:        "SPACES",
	Mnemonic:    "SPACES",
	Completer:   readline.PcItem("spaces"),
	Description: "Show the spaces of the current session.",
	Callback: func(cmd string, args []string, reader *readline.Instance, sess *Session) error {
		sess.RLock()
		defer sess.RUnlock()

		names := []string{}
		for name := range sess.spaces {
			names = append(names, name)
		}
		sort.Strings(names)

		rows := [][]string{}
		for _, name := range names {
			sp := sess.spaces[name]
			rows = append(rows, []string{
				name,
				fmt.Sprintf("%v", sp),
				fmt.Sprintf("%d", sp.N()),
				sp.Field().String(),
			})
		}

		tui.Table(os.Stdout, []string{"name", "space", "n", "field"}, rows)

		return nil
	},
}
