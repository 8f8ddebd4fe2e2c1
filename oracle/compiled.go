package oracle

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/robertkrimen/otto"

	"github.com/rnlab/rnspace/space"
)

// Functional is a compiled user defined scalar function over vectors.
type Functional struct {
	sync.Mutex
	name string
	code string
	vm   *otto.Otto
	call *otto.Script
}

// Name returns the name of the functional.
func (f *Functional) Name() string {
	return f.name
}

// Code returns the source the functional was compiled from.
func (f *Functional) Code() string {
	return f.code
}

// Eval runs the functional against a read-only view of x and returns the
// evaluation context along with the JSON encoded return value.
func (f *Functional) Eval(x *space.Vector) (*Context, []byte, error) {
	var ret otto.Value
	var err error

	ctx := NewContext()
	func() {
		f.Lock()
		defer f.Unlock()

		// define the globals the functional can access
		f.vm.Set("x", WrapVector(x))
		f.vm.Set("ctx", ctx)

		// evaluate the precompiled function call
		ret, err = f.vm.Run(f.call)
	}()

	if err != nil {
		return ctx, nil, err
	} else if ctx.IsError() {
		return ctx, nil, errors.New(ctx.Message())
	}

	obj, _ := ret.Export()
	raw, err := json.Marshal(obj)
	if err != nil {
		return ctx, nil, err
	}

	return ctx, raw, nil
}
