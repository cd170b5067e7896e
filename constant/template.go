// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

// ScriptExt is the extension that routes a file to the Lua runner instead of the op interpreter.
const ScriptExt = ".lua"

// ScriptTemplate is a Go text/template for scaffolding new Lua stack scripts.
const ScriptTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
-- @license MIT
{{ $divider }}

local stack = require("stack")


----- MAIN -----

local s = stack.of(1, 2, 3)
s:push(4)

for v in s:iter() do
	print(v)
end

print("top:", s:top(), "len:", s:len())

--- END MAIN ---

-- ex: ts=4 sw=4 et filetype=lua
`
