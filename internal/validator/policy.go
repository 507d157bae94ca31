package validator

import (
	"nzcore/internal/document"
)

// PolicyEvaluator is the pluggable policy layer of §4.8. Implementations
// receive a document and return an error describing why it violates policy,
// or nil if it passes. A panicking evaluator is treated as a policy failure
// by Validate's recover, never as a process crash.
type PolicyEvaluator interface {
	Evaluate(doc document.Document) error
}

// PolicyFunc adapts a plain function to PolicyEvaluator.
type PolicyFunc func(doc document.Document) error

func (f PolicyFunc) Evaluate(doc document.Document) error { return f(doc) }
