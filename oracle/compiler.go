package oracle

import (
	"fmt"

	"github.com/robertkrimen/otto"
)

// Compile builds a Functional from its source code. The code must define a
// function with the given name taking a single vector view argument.
func Compile(name, code string) (*Functional, error) {
	// create the vm and define the functional
	vm := otto.New()
	if _, err := vm.Run(code); err != nil {
		return nil, err
	}

	if value, err := vm.Get(name); err != nil {
		return nil, err
	} else if !value.IsFunction() {
		return nil, fmt.Errorf("code does not define a function named %s", name)
	}

	// precompile the call once instead of parsing it on every evaluation
	call, err := vm.Compile("", fmt.Sprintf("%s(x)", name))
	if err != nil {
		return nil, err
	}

	return &Functional{
		name: name,
		code: code,
		vm:   vm,
		call: call,
	}, nil
}
