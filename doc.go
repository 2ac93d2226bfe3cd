// Package sueflow implements a stochastic user equilibrium (SUE) traffic
// assignment engine: Dial's STOCH logit route choice loaded onto
// per-origin bushes, driven to equilibrium by the Method of Successive
// Averages (MSA) with a fixed step size.
//
// Subpackages:
//
//	network/  — the Network graph, BPR link cost functions, and the OD
//	            demand matrix
//	dijkstra/ — free-flow shortest-path labeling used to classify each
//	            origin's reasonable links
//	bush/     — per-origin bush construction and Dial's logit network
//	            loading
//	msa/      — the MSA driver loop that builds bushes once, then repeats
//	            loading and averaging until link flows stabilize
//	tntp/     — reads the standard TNTP link/trip file pair into a
//	            network.Network
//	logging/  — verbosity-gated structured logging shared by msa and tntp
//	fixtures/ — deterministic test networks used across package tests
//	cmd/sueflow/ — the command-line entry point
package sueflow
