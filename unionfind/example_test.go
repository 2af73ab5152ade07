package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/hierarch/unionfind"
)

// ExampleUnionFind demonstrates the Find/Link protocol used by the hierarchy
// builders: always Find both endpoints first, skip if equal, Link otherwise.
func ExampleUnionFind() {
	// 1. Five elements: {0} {1} {2} {3} {4}.
	uf := unionfind.New(5)

	// 2. Fuse 0-1 and 3-4.
	uf.Link(uf.Find(0), uf.Find(1))
	uf.Link(uf.Find(3), uf.Find(4))

	// 3. Are 0 and 1 in the same set? And 1 and 3?
	fmt.Println(uf.Find(0) == uf.Find(1))
	fmt.Println(uf.Find(1) == uf.Find(3))

	// 4. Fuse the remaining sets into one.
	uf.Link(uf.Find(1), uf.Find(2))
	uf.Link(uf.Find(2), uf.Find(3))
	fmt.Println(uf.Find(0) == uf.Find(4))

	// Output:
	// true
	// false
	// true
}
