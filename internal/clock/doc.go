// Package clock implements the logical clock: a monotonically
// non-decreasing integer counter used to order documents and to evaluate
// staleness warnings without ever trusting wall-clock time for a security
// decision.
package clock
