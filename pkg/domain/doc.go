/*
Package domain contains the core identities and contracts shared by the Arbor packages.

It defines the handles that address nodes and spaces inside a tree, the kind tags
that select a space variant, the sentinel errors returned by tree construction and
the lifecycle events emitted while a tree grows. This package is kept pure and free
of external dependencies.

# Key Entities

  - NodeID / SpaceID: Opaque handles into a tree's arena. The zero value means "unset".
  - Kind: The tag selecting a space variant ("action" or "chance").
  - LifecycleHooks: Callbacks fired when nodes and spaces are created, attached or expanded.
*/
package domain
