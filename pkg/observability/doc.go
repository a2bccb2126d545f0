/*
Package observability provides tools for monitoring tree construction.

It adapts domain.LifecycleHooks to Prometheus collectors so hosts can count the
nodes, spaces and expansions produced while a tree is being assembled.
*/
package observability
