// Package fixtures builds small, deterministic network.Network instances
// for use in other packages' tests, grounded on lvlath's builder package
// convention of exposing one constructor per named topology instead of
// letting each test hand-assemble its own graph.
package fixtures
