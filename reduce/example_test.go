package reduce_test

import (
	"fmt"

	"github.com/ratexlib/ratex/parse"
	"github.com/ratexlib/ratex/reduce"
	"github.com/ratexlib/ratex/render"
)

// ExampleReduce collects like terms across an entire sum.
func ExampleReduce() {
	n, _ := parse.Parse("2*pi + 3*pi")
	r, _ := reduce.Reduce(n)
	fmt.Println(render.Render(r))
	// Output:
	// 5 * pi
}

// ExampleReduce_trig resolves trigonometric functions at exact multiples
// of π.
func ExampleReduce_trig() {
	n, _ := parse.Parse("cos tau")
	r, _ := reduce.Reduce(n)
	fmt.Println(render.Render(r))
	// Output:
	// 1
}

// ExampleReduce_divisionByZero shows the one way reduction can fail.
func ExampleReduce_divisionByZero() {
	n, _ := parse.Parse("1 / 0")
	_, err := reduce.Reduce(n)
	fmt.Println(err)
	// Output:
	// reduce: division by zero
}
