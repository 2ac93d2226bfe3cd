package msa

import (
	"time"

	"github.com/sueflow/sueflow/bush"
	"github.com/sueflow/sueflow/network"
)

// Result summarizes one Run invocation.
type Result struct {
	Iterations int
	FinalDiff  float64
	Converged  bool
	Elapsed    time.Duration
	BushLinks  int
	BushPaths  uint64
}

// Run solves for stochastic user equilibrium on net using Dial's logit
// route choice with dispersion theta and the method of successive
// averages with fixed step size lambda. On return, net.Arcs[*].Flow and
// .Cost hold the final solution.
func Run(net *network.Network, theta, lambda float64, opts ...Option) (*Result, error) {
	if theta <= 0 {
		return nil, ErrBadTheta
	}
	if lambda <= 0 || lambda > 1 {
		return nil, ErrBadLambda
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()

	bushes, err := bush.Build(net)
	if err != nil {
		return nil, err
	}

	var totalLinks int
	var totalPaths uint64
	for r := 0; r < net.NumZones; r++ {
		links, err := bushes.NumBushLinks(r)
		if err != nil {
			return nil, err
		}
		paths, err := bushes.NumBushPaths(r)
		if err != nil {
			return nil, err
		}
		totalLinks += links
		totalPaths += paths
	}
	cfg.Logger.Infof("%d bush links, %d paths", totalLinks, totalPaths)

	target := make([]float64, net.NumArcs())
	if err := calculateTarget(net, bushes, target, theta); err != nil {
		return nil, err
	}
	for ij := range net.Arcs {
		net.Arcs[ij].Flow = target[ij]
	}

	cfg.Logger.Infof("initialization done in %s", time.Since(start))

	result := &Result{BushLinks: totalLinks, BushPaths: totalPaths}
	for {
		net.UpdateLinkCosts()

		if err := calculateTarget(net, bushes, target, theta); err != nil {
			return nil, err
		}
		diff := avgFlowDiff(net, target)
		elapsed := time.Since(start)

		cfg.Logger.Infof("iteration %d: flow diff %.3f, time %s", result.Iterations, diff, elapsed)

		result.FinalDiff = diff
		result.Elapsed = elapsed

		if diff < cfg.LinkFlowTolerance {
			result.Converged = true
			break
		}
		if result.Iterations >= cfg.MaxIterations {
			break
		}
		if elapsed > cfg.MaxTime {
			break
		}

		shiftFlows(net, target, lambda)
		result.Iterations++
	}

	return result, nil
}

// calculateTarget loads every origin's demand with Dial's rule at net's
// current arc costs and sums the resulting flows into target.
func calculateTarget(net *network.Network, bushes *bush.Bushes, target []float64, theta float64) error {
	for ij := range target {
		target[ij] = 0
	}
	for r := 0; r < net.NumZones; r++ {
		if err := bushes.DialFlows(r, theta); err != nil {
			return err
		}
		for ij := range target {
			target[ij] += bushes.Flow(ij)
		}
	}

	return nil
}

// avgFlowDiff returns the mean absolute difference between net's current
// arc flows and target, used as the convergence signal.
func avgFlowDiff(net *network.Network, target []float64) float64 {
	var total float64
	for ij := range net.Arcs {
		d := net.Arcs[ij].Flow - target[ij]
		if d < 0 {
			d = -d
		}
		total += d
	}

	return total / float64(net.NumArcs())
}

// shiftFlows moves net's current arc flows a fraction stepSize of the way
// toward target.
func shiftFlows(net *network.Network, target []float64, stepSize float64) {
	for ij := range net.Arcs {
		net.Arcs[ij].Flow += stepSize * (target[ij] - net.Arcs[ij].Flow)
	}
}
