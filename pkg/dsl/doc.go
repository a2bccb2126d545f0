/*
Package dsl provides a fluent builder for declaring decision trees in Go.

Spaces are declared once by label, then wired together: the root space hangs off the
root node, and Under(...).Then(...) attaches a space to every node produced by a given
option. Build creates the tree and expands each reachable space once, after every
space that branches into it. Cyclic branches are rejected.

Example usage:

	b := dsl.New()

	b.Action("country choice").Option("Italy").Option("Edinburgh")
	b.Action("job type").Option("Freelance").Option("Employed")
	b.Chance("reaction").Outcome("continues", 0.7).Outcome("stops", 0.3)

	b.Root("country choice")
	b.Under("country choice", "Italy").Then("job type")
	b.Under("country choice", "Edinburgh").Then("job type")

	t, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

Every declared space is registered with the tree, including spaces that are never attached.
*/
package dsl
