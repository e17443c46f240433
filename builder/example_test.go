// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalg/builder"
)

func ExampleSeq() {
	v, _ := builder.Seq(1, 10, 2)
	fmt.Println(v)
	// Output: [1 3 5 7 9]
}

func ExampleLogspace() {
	v, _ := builder.Logspace(0, 4, 5, 2)
	fmt.Println(v)
	// Output: [1 2 4 8 16]
}

func ExampleSeqWithPrecision() {
	plain, _ := builder.Seq(0, 0.01, 0.001)
	exact, _ := builder.SeqWithPrecision(0, 0.01, 0.001, 3)
	fmt.Println(plain[9], exact[9])
	// Output: 0.009000000000000001 0.009
}
