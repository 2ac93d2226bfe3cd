// Package bush builds and evaluates an Algorithm-B style bush per origin:
// an acyclic sub-network of "reasonable" links used to load that origin's
// demand with Dial's logit route-choice rule.
//
// A bush is built once per origin from free-flow costs (a link i->j is
// reasonable if the free-flow shortest-path cost to i is strictly less
// than to j), topologically ordered by Kahn's algorithm with the origin
// forced first, and then reused every MSA iteration: ShortestPath
// recomputes bush-restricted cost labels in one topological pass, and
// DialFlows layers likelihood, weight, and flow computation on top of
// those labels to split demand across every bush path without enumerating
// them explicitly.
//
// Bushes hold the scratch arrays shared across all origins plus, per
// origin, the persistent topological order and bush-restricted star
// lists built by Build.
package bush
