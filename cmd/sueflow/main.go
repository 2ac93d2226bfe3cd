// Command sueflow solves a stochastic user equilibrium traffic assignment
// problem from a TNTP link/trip file pair.
//
//	$ sueflow -theta 1.0 -lambda 0.5 network.tntp trips.tntp
//	$ sueflow -o flows.csv -theta 1.0 -lambda 0.5 network.tntp trips.tntp
//
// Exactly two positional arguments are required: the link file and the
// trip file, in that order. Theta and lambda are read only from the
// -theta and -lambda flags, not as third and fourth positional arguments.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sueflow/sueflow/logging"
	"github.com/sueflow/sueflow/msa"
	"github.com/sueflow/sueflow/tntp"
)

func main() {
	var theta, lambda, tolerance float64
	var maxIterations int
	var output, verbosityFlag string

	flag.Float64Var(&theta, "theta", 1.0, "Dial logit dispersion parameter")
	flag.Float64Var(&lambda, "lambda", 0.5, "MSA fixed step size, in (0,1]")
	flag.Float64Var(&tolerance, "tolerance", 1e-3, "link flow convergence tolerance")
	flag.IntVar(&maxIterations, "max-iterations", 100, "maximum MSA iterations")
	flag.StringVar(&output, "o", "", "write link flows to named file instead of stdout")
	flag.StringVar(&verbosityFlag, "verbosity", "medium", "log verbosity: none, low, medium, full, debug")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: sueflow [flags] link-file trip-file")
		os.Exit(1)
	}
	linkPath, tripPath := args[0], args[1]

	verbosity, err := parseVerbosity(verbosityFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sueflow: %s\n", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stderr, verbosity)

	net, err := tntp.ReadNetwork(linkPath, tripPath, tntp.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "sueflow: %s\n", err)
		os.Exit(1)
	}

	result, err := msa.Run(net, theta, lambda,
		msa.WithLogger(logger),
		msa.WithMaxIterations(maxIterations),
		msa.WithLinkFlowTolerance(tolerance),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sueflow: %s\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if output != "" {
		out, err = os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "sueflow: unable to open output file: %s: %s\n", output, err)
			os.Exit(1)
		}
		defer out.Close()
	}

	fmt.Fprintf(os.Stderr, "sueflow: %d iterations, converged=%v, final diff=%g\n",
		result.Iterations, result.Converged, result.FinalDiff)

	fmt.Fprintln(out, "tail,head,flow,cost")
	for _, arc := range net.Arcs {
		fmt.Fprintf(out, "%d,%d,%f,%f\n", arc.Tail+1, arc.Head+1, arc.Flow, arc.Cost)
	}

	if !result.Converged {
		os.Exit(2)
	}
}

func parseVerbosity(s string) (logging.Verbosity, error) {
	switch s {
	case "none":
		return logging.NoNotifications, nil
	case "low":
		return logging.LowNotifications, nil
	case "medium":
		return logging.MediumNotifications, nil
	case "full":
		return logging.FullNotifications, nil
	case "debug":
		return logging.FullDebug, nil
	default:
		return 0, fmt.Errorf("unknown verbosity %q", s)
	}
}
