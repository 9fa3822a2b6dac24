package sandbox

import (
	"strings"

	"github.com/dop251/goja"

	"github.com/adkit-io/adsurface/dom"
)

// bindGlobals configures the frame's global scope: removes host-environment
// globals, installs console and no-op timers, and exposes the frame document.
func (f *Frame) bindGlobals() {
	vm := f.vm

	// Remove dangerous globals
	vm.Set("require", goja.Undefined())
	vm.Set("process", goja.Undefined())
	vm.Set("module", goja.Undefined())
	vm.Set("exports", goja.Undefined())

	console := vm.NewObject()
	console.Set("log", f.makeConsoleFunc("log"))
	console.Set("info", f.makeConsoleFunc("info"))
	console.Set("warn", f.makeConsoleFunc("warn"))
	console.Set("error", f.makeConsoleFunc("error"))
	vm.Set("console", console)

	// Timers are no-ops inside the frame
	noop := func(call goja.FunctionCall) goja.Value { return goja.Undefined() }
	vm.Set("setTimeout", noop)
	vm.Set("setInterval", noop)

	document := vm.NewObject()
	document.Set("getElementById", f.makeQueryFunc(func(arg string) []*dom.Element {
		if elem := f.doc.GetElementByID(arg); elem != nil {
			return []*dom.Element{elem}
		}
		return nil
	}))
	document.Set("querySelector", f.makeQueryFunc(func(arg string) []*dom.Element {
		return f.doc.Query(arg)
	}))
	document.Set("querySelectorAll", f.makeQueryAllFunc())
	document.Set("write", f.makeWriteFunc())

	window := vm.NewObject()
	width, height := f.doc.Viewport()
	window.Set("innerWidth", width)
	window.Set("innerHeight", height)
	window.Set("document", document)
	window.Set("window", window)

	vm.Set("document", document)
	vm.Set("window", window)
	f.window = window
}

func (f *Frame) makeConsoleFunc(level string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		msg := strings.Join(parts, " ")

		switch level {
		case "warn":
			f.logger.Warn(msg)
		case "error":
			f.logger.Error(msg)
		default:
			f.logger.Info(msg)
		}
		return goja.Undefined()
	}
}

func (f *Frame) makeQueryFunc(query func(string) []*dom.Element) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Null()
		}
		elems := query(call.Arguments[0].String())
		if len(elems) == 0 {
			return goja.Null()
		}
		return f.vm.ToValue(f.elementProxy(elems[0]))
	}
}

func (f *Frame) makeQueryAllFunc() func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return f.vm.ToValue([]interface{}{})
		}
		elems := f.doc.Query(call.Arguments[0].String())
		proxies := make([]interface{}, len(elems))
		for i, elem := range elems {
			proxies[i] = f.elementProxy(elem)
		}
		return f.vm.ToValue(proxies)
	}
}

// makeWriteFunc lets frame scripts append markup to the frame body. Content
// stays inside the sub-document.
func (f *Frame) makeWriteFunc() func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) == 0 {
			return goja.Undefined()
		}
		elems, err := f.doc.ParseFragment(call.Arguments[0].String())
		if err != nil {
			f.logger.Warn("document.write: " + err.Error())
			return goja.Undefined()
		}
		for _, elem := range elems {
			f.doc.Body().AppendChild(elem)
		}
		return goja.Undefined()
	}
}

// elementProxy exposes a frame element to scripts.
func (f *Frame) elementProxy(elem *dom.Element) map[string]interface{} {
	return map[string]interface{}{
		"tagName":     elem.TagName(),
		"id":          elem.ID(),
		"className":   elem.ClassName(),
		"textContent": elem.Text(),
		"getAttribute": func(name string) string {
			return elem.GetAttribute(name)
		},
		"setAttribute": func(name, value string) {
			elem.SetAttribute(name, value)
		},
		"setText": func(text string) {
			elem.SetText(text)
		},
	}
}
