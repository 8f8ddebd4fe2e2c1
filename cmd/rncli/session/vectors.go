package session

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/evilsocket/islazy/str"
	"github.com/evilsocket/islazy/tui"

	"github.com/rnlab/rnspace/space"

	"github.com/chzyer/readline"
)

func parseValues(csv string) ([]float64, error) {
	parts := str.Comma(csv)
	values := make([]float64, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}

func dataAsString(data []float64, limit int) string {
	tot := len(data)
	num := tot
	if limit > 0 && limit < tot {
		num = limit
	}
	strs := make([]string, num)
	for i := 0; i < num; i++ {
		if f := data[i]; f == float64(int64(f)) {
			strs[i] = fmt.Sprintf("%d", int64(f))
		} else {
			strs[i] = fmt.Sprintf("%f", f)
		}
	}
	s := strings.Join(strs, ",")
	if num < tot {
		s += " ..."
	}
	return s
}

func showVector(name string, sp space.LinearSpace, v *space.Vector) {
	fmt.Printf("name  : %s\n", name)
	fmt.Printf("space : %v\n", sp)
	fmt.Printf("data  : %s\n", dataAsString(v.Values(), 0))
}

var createVectorHandler = handler{
	Name:        "VEC",
	Mnemonic:    "VEC or V <SPACE> <NAME> <V1,V2,...>",
	Completer:   readline.PcItem("vec"),
	Parser:      regexp.MustCompile(`^(?i)(VEC|V)\s+([^\s]+)\s+([^\s]+)\s+(.+)$`),
	Description: "Create the vector NAME in SPACE from comma separated values.",
	Callback: func(cmd string, args []string, reader *readline.Instance, sess *Session) error {
		spaceName := args[0]
		name := args[1]

		sp, err := sess.space(spaceName)
		if err != nil {
			return err
		}

		values, err := parseValues(args[2])
		if err != nil {
			return err
		}

		v, err := sp.FromValues(values...)
		if err != nil {
			return err
		}

		if err = sess.addVector(spaceName, name, v); err != nil {
			return err
		}

		fmt.Printf("%s = %v\n", name, v)

		return nil
	},
}

var zeroVectorHandler = handler{
	Name:        "ZERO",
	Mnemonic:    "ZERO or Z <SPACE> <NAME>",
	Completer:   readline.PcItem("zero"),
	Parser:      regexp.MustCompile(`^(?i)(ZERO|Z)\s+([^\s]+)\s+([^\s]+)$`),
	Description: "Create the zero vector NAME in SPACE.",
	Callback: func(cmd string, args []string, reader *readline.Instance, sess *Session) error {
		spaceName := args[0]
		name := args[1]

		sp, err := sess.space(spaceName)
		if err != nil {
			return err
		}

		v := sp.Zero()
		if err = sess.addVector(spaceName, name, v); err != nil {
			return err
		}

		fmt.Printf("%s = %v\n", name, v)

		return nil
	},
}

var readVectorHandler = handler{
	Name:        "READ",
	Mnemonic:    "READ or R <NAME>",
	Completer:   readline.PcItem("read"),
	Parser:      regexp.MustCompile(`^(?i)(READ|R)\s+([^\s]+)$`),
	Description: "Read the contents of the vector NAME.",
	Callback: func(cmd string, args []string, reader *readline.Instance, sess *Session) error {
		name := args[0]
		sp, v, err := sess.vector(name)
		if err != nil {
			return err
		}

		showVector(name, sp, v)

		return nil
	},
}

var setVectorHandler = handler{
	Name:        "SET",
	Mnemonic:    "SET <NAME> <INDEX> <VALUE>",
	Completer:   readline.PcItem("set"),
	Parser:      regexp.MustCompile(`^(?i)(SET)\s+([^\s]+)\s+(\d+)\s+([^\s]+)$`),
	Description: "Assign VALUE to the INDEX-th element of the vector NAME.",
	Callback: func(cmd string, args []string, reader *readline.Instance, sess *Session) error {
		name := args[0]

		index, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		value, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return err
		}

		_, v, err := sess.vector(name)
		if err != nil {
			return err
		}

		if index < 0 || index >= v.Len() {
			return fmt.Errorf("index %d out of range for %s", index, name)
		}

		v.Set(index, value)

		return nil
	},
}

var deleteVectorHandler = handler{
	Name:        "DEL",
	Mnemonic:    "DEL or D <NAME>",
	Completer:   readline.PcItem("del"),
	Parser:      regexp.MustCompile(`^(?i)(DEL|D)\s+([^\s]+)$`),
	Description: "Remove the vector NAME from the session.",
	Callback: func(cmd string, args []string, reader *readline.Instance, sess *Session) error {
		return sess.deleteVector(args[0])
	},
}

var listVectorsHandler = handler{
	Name:        "VECTORS",
	Mnemonic:    "VECTORS or VL",
	Completer:   readline.PcItem("vectors"),
	Parser:      regexp.MustCompile(`^(?i)(VECTORS|VL)$`),
	Description: "Show the vectors of the current session.",
	Callback: func(cmd string, args []string, reader *readline.Instance, sess *Session) error {
		sess.RLock()
		defer sess.RUnlock()

		names := []string{}
		for name := range sess.vectors {
			names = append(names, name)
		}
		sort.Strings(names)

		rows := [][]string{}
		for _, name := range names {
			v := sess.vectors[name]
			rows = append(rows, []string{
				name,
				v.spaceName,
				fmt.Sprintf("%d", v.vector.Len()),
				dataAsString(v.vector.Values(), 10),
			})
		}

		tui.Table(os.Stdout, []string{"name", "space", "size", "data"}, rows)

		return nil
	},
}
