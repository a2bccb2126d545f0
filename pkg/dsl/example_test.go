package dsl_test

import (
	"fmt"
	"log"

	"github.com/aretw0/arbor/pkg/dsl"
	"github.com/aretw0/arbor/pkg/tree"
)

// ExampleBuilder_Build declares a small tree and prints every leaf path.
func ExampleBuilder_Build() {
	b := dsl.New()
	b.Action("country choice").Option("Italy").Option("Colombia")
	b.Chance("weather").Outcome("sun", 0.8).Outcome("rain", 0.2)
	b.Root("country choice")
	b.Under("country choice", "Italy").Then("weather")

	t, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	for _, leaf := range t.Leaves() {
		path, err := tree.Path(leaf)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(path)
	}
	// Output:
	// [Root Colombia]
	// [Root Italy sun]
	// [Root Italy rain]
}
