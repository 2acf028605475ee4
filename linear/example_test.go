// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear_test

import (
	"fmt"
	"math"

	"github.com/gviegas/quater/linear"
)

func ExampleMul() {
	i := linear.New(0, 1, 0, 0)
	j := linear.New(0, 0, 1, 0)
	fmt.Println(linear.Mul(i, j))
	fmt.Println(linear.Mul(i, i))
	// Output:
	// 0 + 0i + 0j + 1k
	// -1 + 0i + 0j + 0k
}

func ExampleQ_Ln() {
	fmt.Println(linear.New(0, 1, 0, 0).Ln())
	fmt.Println(linear.Q{}.Ln())
	// Output:
	// 0 + 1.5707963267948966i + 0j + 0k
	// -Inf + 0i + 0j + 0k
}

func ExampleQ_Pow() {
	q := linear.New(2, 0, 0, 0)
	fmt.Println(q.Pow(2))
	fmt.Println(linear.New(1, 2, 3, 4).Pow(0))
	// Output:
	// 4 + 0i + 0j + 0k
	// 1 + 0i + 0j + 0k
}

func ExampleQ_Rotate() {
	q := linear.AxisAngle(linear.V3{0, 0, 1}, math.Pi/2)
	v := q.Rotate(linear.V3{2, 0, 0})
	fmt.Printf("%.3f %.3f\n", v[1], linear.LenV3(v))
	// Output:
	// 2.000 2.000
}

func ExampleQ_Format() {
	q := linear.New(1, 2, 3, 4)
	fmt.Println(q)
	fmt.Printf("%e\n", q)
	// Output:
	// 1 + 2i + 3j + 4k
	// 1.000000e+00 + 2.000000e+00i + 3.000000e+00j + 4.000000e+00k
}
