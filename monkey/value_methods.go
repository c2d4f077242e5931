package monkey

import (
	"fmt"
	"strconv"
	"strings"
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "NULL"
	case KindBool:
		return "BOOLEAN"
	case KindInt:
		return "INTEGER"
	case KindString:
		return "STRING"
	case KindArray:
		return "ARRAY"
	case KindFunction:
		return "FUNCTION"
	case KindBuiltin:
		return "BUILTIN"
	case KindReturn:
		return "RETURN_VALUE"
	case KindError:
		return "ERROR"
	default:
		return fmt.Sprintf("KIND(%d)", int(k))
	}
}

// String renders v the way the REPL prints it. Strings are not quoted and
// errors render as their bare message.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.data.(bool))
	case KindInt:
		return strconv.FormatInt(v.data.(int64), 10)
	case KindString:
		return v.data.(string)
	case KindArray:
		elems := v.data.([]Value)
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindFunction:
		return "fn(" + joinIdentifiers(v.data.(*Function).Params, ", ") + ") { ... }"
	case KindBuiltin:
		return "[builtin function]"
	case KindReturn:
		return v.data.(Value).String()
	case KindError:
		return v.data.(errorData).message
	default:
		return fmt.Sprintf("<%v>", v.kind)
	}
}

func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.data.(bool) == other.data.(bool)
	case KindInt:
		return v.data.(int64) == other.data.(int64)
	case KindString:
		return v.data.(string) == other.data.(string)
	case KindArray:
		a, b := v.data.([]Value), other.data.([]Value)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].Equal(b[i]) {
				return false
			}
		}
		return true
	case KindFunction:
		return v.data.(*Function) == other.data.(*Function)
	case KindBuiltin:
		return v.data.(*Builtin) == other.data.(*Builtin)
	case KindReturn:
		return v.data.(Value).Equal(other.data.(Value))
	case KindError:
		return v.data.(errorData).message == other.data.(errorData).message
	default:
		return false
	}
}
