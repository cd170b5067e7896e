package script

import (
	"slices"

	"github.com/dsakit/dsakit/structures/stack"
	lua "github.com/yuin/gopher-lua"
)

// ModuleName is the name scripts pass to require.
const ModuleName = "stack"

const typeName = "dsakit.stack"

type luaStack = stack.Stack[lua.LValue]

var exports = map[string]lua.LGFunction{
	"new":  stackNew,
	"of":   stackOf,
	"from": stackFrom,
}

var methods = map[string]lua.LGFunction{
	"push":          stackPush,
	"pop":           stackPop,
	"pop_unchecked": stackPopUnchecked,
	"top":           stackTop,
	"top_unchecked": stackTopUnchecked,
	"set_top":       stackSetTop,
	"len":           stackLen,
	"cap":           stackCap,
	"is_empty":      stackIsEmpty,
	"clear":         stackClear,
	"swap":          stackSwap,
	"iter":          stackIter,
	"drain":         stackDrain,
	"totable":       stackToTable,
}

func loader(L *lua.LState) int {
	mt := L.NewTypeMetatable(typeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), methods))
	L.SetField(mt, "__tostring", L.NewFunction(stackToString))
	L.SetField(mt, "__len", L.NewFunction(stackLen))

	L.Push(L.SetFuncs(L.NewTable(), exports))
	return 1
}

func pushStack(L *lua.LState, s *luaStack) int {
	ud := L.NewUserData()
	ud.Value = s
	L.SetMetatable(ud, L.GetTypeMetatable(typeName))
	L.Push(ud)
	return 1
}

func checkStack(L *lua.LState, n int) *luaStack {
	ud := L.CheckUserData(n)
	if s, ok := ud.Value.(*luaStack); ok {
		return s
	}
	L.ArgError(n, "stack expected")
	return nil
}

// iterator returns a generic-for function yielding items in order, then nil.
func iterator(L *lua.LState, items []lua.LValue) *lua.LFunction {
	var i int
	return L.NewFunction(func(L *lua.LState) int {
		if i >= len(items) {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(items[i])
		i++
		return 1
	})
}

func stackNew(L *lua.LState) int {
	return pushStack(L, stack.WithCapacity[lua.LValue](L.OptInt(1, 0)))
}

func stackOf(L *lua.LState) int {
	values := make([]lua.LValue, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		values = append(values, L.Get(i))
	}
	return pushStack(L, stack.Of(values...))
}

func stackFrom(L *lua.LState) int {
	tbl := L.CheckTable(1)
	items := make([]lua.LValue, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		items = append(items, tbl.RawGetInt(i))
	}
	return pushStack(L, stack.From(items))
}

func stackPush(L *lua.LState) int {
	checkStack(L, 1).Push(L.CheckAny(2))
	return 0
}

func stackPop(L *lua.LState) int {
	L.Push(checkStack(L, 1).Pop().OrElse(lua.LNil))
	return 1
}

func stackPopUnchecked(L *lua.LState) int {
	L.Push(checkStack(L, 1).MustPop())
	return 1
}

func stackTop(L *lua.LState) int {
	L.Push(checkStack(L, 1).Top().OrElse(lua.LNil))
	return 1
}

func stackTopUnchecked(L *lua.LState) int {
	L.Push(checkStack(L, 1).MustTop())
	return 1
}

func stackSetTop(L *lua.LState) int {
	s := checkStack(L, 1)
	value := L.CheckAny(2)

	top, ok := s.TopMut().Get()
	if !ok {
		L.Push(lua.LNil)
		return 1
	}

	L.Push(*top)
	*top = value
	return 1
}

func stackLen(L *lua.LState) int {
	L.Push(lua.LNumber(checkStack(L, 1).Len()))
	return 1
}

func stackCap(L *lua.LState) int {
	L.Push(lua.LNumber(checkStack(L, 1).Cap()))
	return 1
}

func stackIsEmpty(L *lua.LState) int {
	L.Push(lua.LBool(checkStack(L, 1).IsEmpty()))
	return 1
}

func stackClear(L *lua.LState) int {
	checkStack(L, 1).Clear()
	return 0
}

func stackSwap(L *lua.LState) int {
	checkStack(L, 1).Swap(checkStack(L, 2))
	return 0
}

// stackIter iterates over a snapshot taken at call time, so every call starts a fresh traversal.
func stackIter(L *lua.LState) int {
	L.Push(iterator(L, checkStack(L, 1).Slice()))
	return 1
}

func stackDrain(L *lua.LState) int {
	L.Push(iterator(L, slices.Collect(checkStack(L, 1).Drain())))
	return 1
}

func stackToTable(L *lua.LState) int {
	tbl := L.NewTable()
	for v := range checkStack(L, 1).All() {
		tbl.Append(v)
	}
	L.Push(tbl)
	return 1
}

func stackToString(L *lua.LState) int {
	L.Push(lua.LString(checkStack(L, 1).String()))
	return 1
}
