/*
Package tree builds decision trees by hand.

A tree alternates between nodes (decision points) and spaces (discrete branching
points). A node owns at most one outgoing space. A space holds an ordered list of
option labels and, when expanded, creates one child node per option for every node
that owns it. Action spaces model choices made by the decision maker; chance spaces
model outcomes chosen by nature and carry one probability per option.

Every node and space is registered with its Tree as a side effect of construction.
The Tree is an arena: members are addressed by integer handles and never removed.

	t := tree.New()
	root := t.NewRoot()

	country := t.NewActionSpace("country choice")
	country.AddOption("Italy")
	country.AddOption("Edinburgh")

	if err := root.AttachChildSpace(country); err != nil {
		log.Fatal(err)
	}
	children := tree.Children(country.Expand())

Trees are not safe for concurrent use; callers must serialize mutations.
*/
package tree
