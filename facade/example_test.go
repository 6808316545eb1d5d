package facade_test

import (
	"fmt"

	"github.com/momentics/hioload-ring/facade"
)

func ExampleRing() {
	r, err := facade.New(&facade.Config{Capacity: 8})
	if err != nil {
		panic(err)
	}

	fmt.Println(r.Write([]byte("ABCDEFG")), r.IsFull())
	fmt.Println(r.Write([]byte("X")))

	head := make([]byte, 3)
	r.Read(head)
	fmt.Println(string(head))

	fmt.Println(r.Write([]byte("XY")))
	rest := make([]byte, 10)
	n := r.Read(rest)
	fmt.Println(n, string(rest[:n]))

	// Output:
	// 7 true
	// 0
	// ABC
	// 2
	// 6 DEFGXY
}
