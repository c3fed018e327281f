/*
Package servicecheck implements the service-check hook contract used by a
cluster management agent to assert that a managed component is healthy.

A Check reports the health of one component.  A Runner executes a set of
named checks synchronously and reports each outcome, through its results,
through go-kit logging, and through a prometheus counter.  Handler exposes
a Runner over HTTP for agents that probe rather than exec.
*/
package servicecheck
