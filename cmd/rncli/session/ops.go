package session

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/rnlab/rnspace/space"

	"github.com/chzyer/readline"
)

var linCombHandler = handler{
	Name:        "LINCOMB",
	Mnemonic:    "LINCOMB or LC <Z> <A> <X> <B> <Y>",
	Completer:   readline.PcItem("lincomb"),
	Parser:      regexp.MustCompile(`^(?i)(LINCOMB|LC)\s+([^\s]+)\s+([^\s]+)\s+([^\s]+)\s+([^\s]+)\s+([^\s]+)$`),
	Description: "Compute Z = A*X + B*Y, the operands may repeat.",
	Callback: func(cmd string, args []string, reader *readline.Instance, sess *Session) error {
		sp, z, err := sess.vector(args[0])
		if err != nil {
			return err
		}
		a, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}
		_, x, err := sess.vector(args[2])
		if err != nil {
			return err
		}
		b, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return err
		}
		_, y, err := sess.vector(args[4])
		if err != nil {
			return err
		}

		if err = sp.LinComb(z, a, x, b, y); err != nil {
			return err
		}

		fmt.Printf("%s = %v\n", args[0], z)

		return nil
	},
}

var normHandler = handler{
	Name:        "NORM",
	Mnemonic:    "NORM or N <NAME>",
	Completer:   readline.PcItem("norm"),
	Parser:      regexp.MustCompile(`^(?i)(NORM|N)\s+([^\s]+)$`),
	Description: "Compute the norm of the vector NAME.",
	Callback: func(cmd string, args []string, reader *readline.Instance, sess *Session) error {
		sp, v, err := sess.vector(args[0])
		if err != nil {
			return err
		}

		normed, ok := sp.(space.Normed)
		if !ok {
			return fmt.Errorf("%v is not a normed space", sp)
		}

		norm, err := normed.Norm(v)
		if err != nil {
			return err
		}

		fmt.Printf("%f\n", norm)

		return nil
	},
}

var dotHandler = handler{
	Name:        "DOT",
	Mnemonic:    "DOT <X> <Y>",
	Completer:   readline.PcItem("dot"),
	Parser:      regexp.MustCompile(`^(?i)(DOT)\s+([^\s]+)\s+([^\s]+)$`),
	Description: "Compute the inner product of the vectors X and Y.",
	Callback: func(cmd string, args []string, reader *readline.Instance, sess *Session) error {
		sp, x, err := sess.vector(args[0])
		if err != nil {
			return err
		}
		_, y, err := sess.vector(args[1])
		if err != nil {
			return err
		}

		inner, ok := sp.(space.InnerProduct)
		if !ok {
			return fmt.Errorf("%v has no inner product", sp)
		}

		dot, err := inner.Inner(x, y)
		if err != nil {
			return err
		}

		fmt.Printf("%f\n", dot)

		return nil
	},
}

var mulHandler = handler{
	Name:        "MUL",
	Mnemonic:    "MUL <X> <Y>",
	Completer:   readline.PcItem("mul"),
	Parser:      regexp.MustCompile(`^(?i)(MUL)\s+([^\s]+)\s+([^\s]+)$`),
	Description: "Overwrite Y with the pointwise product of X and Y.",
	Callback: func(cmd string, args []string, reader *readline.Instance, sess *Session) error {
		sp, x, err := sess.vector(args[0])
		if err != nil {
			return err
		}
		_, y, err := sess.vector(args[1])
		if err != nil {
			return err
		}

		inner, ok := sp.(space.InnerProduct)
		if !ok {
			return fmt.Errorf("%v has no pointwise multiplication", sp)
		}

		if err = inner.Multiply(x, y); err != nil {
			return err
		}

		fmt.Printf("%s = %v\n", args[1], y)

		return nil
	},
}
