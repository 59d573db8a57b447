package question

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed builtin.json
var builtinJSON []byte

var builtinPool = sync.OnceValue(func() Pool {
	pool, issues, err := Parse(builtinJSON, FormatJSON)
	if err != nil || len(issues) > 0 {
		panic(fmt.Sprintf("question: invalid built-in pool: %v %v", err, issues))
	}
	return pool
})

// Builtin returns a fresh copy of the built-in fallback pool.
func Builtin() Pool {
	return builtinPool().Clone()
}

// BuiltinJSON returns the raw built-in pool payload.
func BuiltinJSON() []byte {
	return append([]byte(nil), builtinJSON...)
}
