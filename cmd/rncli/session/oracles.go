package session

import (
	"fmt"
	"regexp"

	"github.com/rnlab/rnspace/oracle"

	"github.com/chzyer/readline"
)

var createOracleHandler = handler{
	Name:        "ORACLE",
	Mnemonic:    "ORACLE or O <NAME> <CODE>",
	Completer:   readline.PcItem("oracle"),
	Parser:      regexp.MustCompile(`^(?i)(ORACLE|O)\s+([^\s]+)\s+(.+)$`),
	Description: "Compile the JS function NAME from CODE as a functional over vectors.",
	Callback: func(cmd string, args []string, reader *readline.Instance, sess *Session) error {
		name := args[0]

		f, err := oracle.Compile(name, args[1])
		if err != nil {
			return err
		}

		if err = sess.addFunctional(name, f); err != nil {
			return err
		}

		fmt.Printf("oracle %s compiled\n", name)

		return nil
	},
}

var callOracleHandler = handler{
	Name:        "CALL",
	Mnemonic:    "CALL or C <ORACLE> <VECTOR>",
	Completer:   readline.PcItem("call"),
	Parser:      regexp.MustCompile(`^(?i)(CALL|C)\s+([^\s]+)\s+([^\s]+)$`),
	Description: "Evaluate ORACLE against the vector VECTOR.",
	Callback: func(cmd string, args []string, reader *readline.Instance, sess *Session) error {
		f, err := sess.functional(args[0])
		if err != nil {
			return err
		}

		_, v, err := sess.vector(args[1])
		if err != nil {
			return err
		}

		_, raw, err := f.Eval(v)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", raw)

		return nil
	},
}
