// Package analysis runs the package-metrics pipeline over a component graph.
//
// A [Runner] computes, in order:
//
//  1. Instability for every component
//  2. Abstractness for every component, from a [metrics.Classifier]
//  3. Main-sequence points, distance statistics and zones of exclusion
//  4. The Stable Dependencies and Stable Abstractions checks
//
// An empty graph skips the whole pipeline and yields a [Result] with
// Skipped set; it is not an error. Input errors (an invalid graph, a failing
// classifier) abort the run. Principle violations do not: both checks always
// run and their first violations are recorded on the result, so callers
// decide whether a violation fails the build via [Result.Err].
//
// # Usage
//
//	runner := analysis.NewRunner(logger)
//	res, err := runner.Run(ctx, g, scanner)
//	if err != nil {
//	    return err
//	}
//	if res.Skipped {
//	    return nil
//	}
//	if failOnViolation {
//	    return res.Err()
//	}
package analysis
