// Package jsbridge exposes the service facade to JavaScript as the
// "contactsmanager" module.
//
// Scripts run on a goja event loop. Every exported method takes positional
// arguments and returns a Promise that settles once with the facade's
// result; a lookup that finds nothing resolves to null. Rejections are
// Error objects carrying code, kind and op properties.
package jsbridge

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/apex/log"
	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/eventloop"
	"github.com/dop251/goja_nodejs/require"
	"github.com/spachava753/cmbridge/cmerr"
	"github.com/spachava753/cmbridge/native"
	"github.com/spachava753/cmbridge/service"
)

// Bridge runs scripts against a facade.
type Bridge struct {
	facade *service.Facade
	logger log.Interface
}

// New returns a Bridge. A nil logger uses log.Log.
func New(facade *service.Facade, logger log.Interface) *Bridge {
	if logger == nil {
		logger = log.Log
	}
	return &Bridge{facade: facade, logger: logger}
}

// RunScript runs src to completion, including every pending promise. A
// synchronous exception is returned as an error. Cancelling ctx interrupts
// running JavaScript and cancels pending facade calls.
func (b *Bridge) RunScript(ctx context.Context, name, src string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	registry := require.NewRegistry()
	registry.RegisterNativeModule(console.ModuleName, console.RequireWithPrinter(&printer{logger: b.logger}))
	loop := eventloop.NewEventLoop(eventloop.WithRegistry(registry))
	registry.RegisterNativeModule(native.ModuleName, b.moduleLoader(ctx, loop))

	var runErr error
	loop.Run(func(vm *goja.Runtime) {
		go func() {
			<-ctx.Done()
			vm.Interrupt(ctx.Err())
		}()
		_, runErr = vm.RunScript(name, src)
	})
	if runErr != nil {
		var interrupted *goja.InterruptedError
		if errors.As(runErr, &interrupted) {
			return ctx.Err()
		}
		return runErr
	}
	return ctx.Err()
}

// moduleLoader returns the require() loader of the contactsmanager module.
// Its exports are resolved lazily so that an unlinked boundary is reported
// on first property access.
func (b *Bridge) moduleLoader(ctx context.Context, loop *eventloop.EventLoop) require.ModuleLoader {
	return func(vm *goja.Runtime, module *goja.Object) {
		exports := &moduleExports{
			bridge:  b,
			ctx:     ctx,
			vm:      vm,
			loop:    loop,
			methods: map[string]goja.Value{},
		}
		module.Set("exports", vm.NewDynamicObject(exports))
	}
}

type moduleExports struct {
	bridge  *Bridge
	ctx     context.Context
	vm      *goja.Runtime
	loop    *eventloop.EventLoop
	methods map[string]goja.Value
}

func (m *moduleExports) Get(key string) goja.Value {
	if err := m.bridge.facade.Linked(); err != nil {
		panic(m.bridge.jsError(m.vm, err))
	}
	if fn, ok := m.methods[key]; ok {
		return fn
	}
	if _, ok := service.ErrorCode(key); !ok {
		return goja.Undefined()
	}
	fn := m.vm.ToValue(m.method(key))
	m.methods[key] = fn
	return fn
}

func (m *moduleExports) Set(key string, val goja.Value) bool {
	return false
}

func (m *moduleExports) Has(key string) bool {
	_, ok := service.ErrorCode(key)
	return ok
}

func (m *moduleExports) Delete(key string) bool {
	return false
}

func (m *moduleExports) Keys() []string {
	return service.Ops()
}

// method returns the JavaScript function for op. The facade call runs off
// the loop; an interval keeps the loop alive until the promise settles.
func (m *moduleExports) method(op string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		vm := m.vm
		args, err := vm.NewArray(toInterfaces(call.Arguments)...).MarshalJSON()
		promise, resolve, reject := vm.NewPromise()
		if err != nil {
			reject(m.bridge.jsError(vm, cmerr.Invalid("args", err.Error()).WithOp(op)))
			return vm.ToValue(promise)
		}
		keepAlive := m.loop.SetInterval(func(*goja.Runtime) {}, time.Hour)
		go func() {
			out, err := m.bridge.facade.Dispatch(m.ctx, op, args)
			var body []byte
			if err == nil {
				body, err = json.Marshal(out)
			}
			m.loop.RunOnLoop(func(vm *goja.Runtime) {
				m.loop.ClearInterval(keepAlive)
				if err != nil {
					reject(m.bridge.jsError(vm, err))
					return
				}
				v, err := fromJSON(vm, body)
				if err != nil {
					reject(m.bridge.jsError(vm, err))
					return
				}
				resolve(v)
			})
		}()
		return vm.ToValue(promise)
	}
}

func toInterfaces(vals []goja.Value) []any {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = v
	}
	return out
}

func fromJSON(vm *goja.Runtime, body []byte) (goja.Value, error) {
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	return vm.ToValue(v), nil
}

// jsError converts err into a JavaScript Error with code, kind, op and,
// for validation failures, fields.
func (b *Bridge) jsError(vm *goja.Runtime, err error) goja.Value {
	var e *cmerr.Error
	if !errors.As(err, &e) {
		e = &cmerr.Error{Kind: cmerr.KindBoundary, Code: "unknown_error", Message: err.Error(), Err: err}
	}
	obj, newErr := vm.New(vm.Get("Error"), vm.ToValue(e.Error()))
	if newErr != nil {
		return vm.ToValue(e.Error())
	}
	if e.Kind == cmerr.KindLinking {
		obj.Set("name", "LinkingError")
	}
	obj.Set("code", e.Code)
	obj.Set("kind", string(e.Kind))
	if e.Op != "" {
		obj.Set("op", e.Op)
	}
	if len(e.Fields) > 0 {
		fields := make([]any, 0, len(e.Fields))
		for _, f := range e.Fields {
			fields = append(fields, map[string]any{"field": f.Field, "message": f.Msg})
		}
		obj.Set("fields", fields)
	}
	b.logger.WithFields(log.Fields{"code": e.Code, "op": e.Op}).Debugf("jsbridge: rejecting: %s", e.Error())
	return obj
}

// printer routes console output to the logger.
type printer struct {
	logger log.Interface
}

func (p *printer) Log(s string) {
	p.logger.WithField("source", "script").Info(s)
}

func (p *printer) Warn(s string) {
	p.logger.WithField("source", "script").Warn(s)
}

func (p *printer) Error(s string) {
	p.logger.WithField("source", "script").Error(s)
}
