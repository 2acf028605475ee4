// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"fmt"
	"io"
	"strconv"
)

func ftoa(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// String renders q as "s + xi + yj + zk".
// Components use the same formatting as %v.
func (q Q) String() string {
	return ftoa(q.R) + " + " + ftoa(q.V[0]) + "i + " + ftoa(q.V[1]) + "j + " + ftoa(q.V[2]) + "k"
}

// Format implements fmt.Formatter.
// %v and %s produce the output of String.
// The floating-point verbs are applied to each
// component, keeping flags, width and precision.
// %#v produces a Go-syntax representation.
func (q Q) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			fmt.Fprintf(f, "linear.Q{V:linear.V3{%#v, %#v, %#v}, R:%#v}", q.V[0], q.V[1], q.V[2], q.R)
			return
		}
		if _, ok := f.Precision(); ok {
			break
		}
		if _, ok := f.Width(); ok {
			break
		}
		io.WriteString(f, q.String())
		return
	case 's':
		io.WriteString(f, q.String())
		return
	case 'e', 'E', 'f', 'F', 'g', 'G':
	default:
		fmt.Fprintf(f, "%%!%c(linear.Q=%s)", verb, q.String())
		return
	}
	s := fmt.FormatString(f, verb)
	fmt.Fprintf(f, s+" + "+s+"i + "+s+"j + "+s+"k", q.R, q.V[0], q.V[1], q.V[2])
}
