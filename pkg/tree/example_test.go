package tree_test

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/tree"
)

func ExampleBase_Expand() {
	t := tree.New()
	root := t.NewRoot()

	x := t.NewActionSpace("X")
	x.AddOption("A")
	x.AddOption("B")
	if err := root.AttachChildSpace(x); err != nil {
		fmt.Println(err)
		return
	}

	for _, child := range tree.Children(x.Expand()) {
		id, _ := child.OptionID()
		fmt.Println(child, id)
	}
	fmt.Println(root)
	// Output:
	// (A) 0
	// (B) 1
	// (Root)
}
