// Package msa drives stochastic user equilibrium to convergence using
// the method of successive averages with a fixed step size.
//
// Run builds bushes once, computes an initial feasible solution by
// loading every origin's demand with Dial's logit rule at free-flow
// cost, and then repeats: refresh link costs from current flow, compute
// the target flow Dial's rule would produce at those costs, measure the
// average absolute difference between current and target flow, and
// shift flow a fixed fraction of the way toward the target. It stops
// on whichever of three conditions comes first: the flow difference
// falls below tolerance, the iteration cap is hit, or the wall-clock
// budget is exhausted.
package msa
