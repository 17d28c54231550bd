/*
File    : golox/object/stringify.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"math"
	"strconv"
)

// Stringify renders v the way "print" does, per spec.md §6: numbers
// without a trailing ".0" when integral, true/false, nil, raw string
// content, "<fn NAME>" for functions, the class name for classes, and
// "NAME instance" for instances. Grounded on the canonical
// integral-double rule the reference Lox ports apply (archevan-glox's
// stringify trims a trailing ".0"), resolving spec.md §9 Open
// Question #1.
func Stringify(v Value) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		switch {
		case math.IsNaN(val):
			return "NaN"
		case math.IsInf(val, 1):
			return "Infinity"
		case math.IsInf(val, -1):
			return "-Infinity"
		default:
			return strconv.FormatFloat(val, 'f', -1, 64)
		}
	case string:
		return val
	case *NativeFunction:
		return val.String()
	case *Function:
		return val.String()
	case *Class:
		return val.String()
	case *Instance:
		return val.String()
	default:
		return "nil"
	}
}
