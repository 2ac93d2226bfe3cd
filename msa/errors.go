package msa

import "errors"

// Sentinel errors. Run returns ErrBadTheta and ErrBadLambda; the option
// constructors panic with the message of ErrBadMaxIterations, ErrBadMaxTime
// or ErrBadTolerance.
var (
	// ErrBadTheta indicates a non-positive logit dispersion parameter.
	ErrBadTheta = errors.New("msa: theta must be positive")

	// ErrBadLambda indicates a step size outside (0, 1].
	ErrBadLambda = errors.New("msa: lambda must be in (0, 1]")

	// ErrBadMaxIterations indicates a non-positive iteration cap.
	ErrBadMaxIterations = errors.New("msa: MaxIterations must be positive")

	// ErrBadMaxTime indicates a non-positive wall-clock budget.
	ErrBadMaxTime = errors.New("msa: MaxTime must be positive")

	// ErrBadTolerance indicates a non-positive convergence tolerance.
	ErrBadTolerance = errors.New("msa: LinkFlowTolerance must be positive")
)
