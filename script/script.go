// Package script runs Lua programs that drive stack.Stack through a preloaded "stack" module.
package script

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dsakit/dsakit/filesystem"
	"github.com/dsakit/dsakit/log"
	"github.com/dsakit/dsakit/util"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var bytecodeCache sync.Map

func newState() *lua.LState {
	L := lua.NewState()
	libs.Preload(L)
	L.PreloadModule(ModuleName, loader)
	return L
}

func compile(r io.Reader, name string) (*lua.FunctionProto, error) {
	chunk, err := parse.Parse(r, name)
	if err != nil {
		return nil, err
	}
	return lua.Compile(chunk, name)
}

// load returns the compiled prototype for path, compiling it on first use.
func load(path string) (*lua.FunctionProto, error) {
	if cached, ok := bytecodeCache.Load(path); ok {
		return cached.(*lua.FunctionProto), nil
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(file.Close)

	proto, err := compile(file, path)
	if err != nil {
		return nil, err
	}

	bytecodeCache.Store(path, proto)
	return proto, nil
}

func exec(proto *lua.FunctionProto) error {
	L := newState()
	defer L.Close()

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}

// Run executes the Lua script at path. Compiled bytecode is cached per path for the lifetime of the process.
func Run(path string) error {
	proto, err := load(path)
	if err != nil {
		return fmt.Errorf("load script %s: %w", util.FileStem(path), err)
	}

	log.Infof("running script %s", path)
	if err := exec(proto); err != nil {
		log.Error(err)
		return fmt.Errorf("script %s: %w", util.FileStem(path), err)
	}

	return nil
}

// RunString compiles and executes inline Lua source; name is used in error messages.
func RunString(name, source string) error {
	proto, err := compile(strings.NewReader(source), name)
	if err != nil {
		return fmt.Errorf("load script %s: %w", name, err)
	}

	if err := exec(proto); err != nil {
		return fmt.Errorf("script %s: %w", name, err)
	}

	return nil
}
