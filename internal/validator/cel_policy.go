package validator

import (
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"

	"nzcore/internal/document"
	"nzcore/internal/errs"
)

// documentFields lists the document attributes exposed to a CEL policy
// expression, declared as dynamically typed CEL variables.
var documentFields = []string{
	"type", "version", "id", "chain_id", "parent_hash",
	"logical_time", "crypto_suite", "created_at",
}

// CELPolicy is a PolicyEvaluator backed by a compiled CEL expression. The
// expression must evaluate to a bool; true means the document passes.
type CELPolicy struct {
	program cel.Program
	source  string
}

// CompileCELPolicy parses and compiles expr once. Evaluate reuses the
// compiled program for every document.
func CompileCELPolicy(expr string) (*CELPolicy, error) {
	opts := make([]cel.EnvOption, 0, len(documentFields))
	for _, f := range documentFields {
		opts = append(opts, cel.Variable(f, cel.DynType))
	}

	env, err := cel.NewEnv(opts...)
	if err != nil {
		return nil, errs.Newf(errs.ValidationFailed, "cel env: %v", err)
	}
	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, errs.Newf(errs.ValidationFailed, "cel compile: %v", issues.Err())
	}
	prog, err := env.Program(ast)
	if err != nil {
		return nil, errs.Newf(errs.ValidationFailed, "cel program: %v", err)
	}
	return &CELPolicy{program: prog, source: expr}, nil
}

// Evaluate runs the compiled expression against doc's named fields. Any
// compile-time-unreachable runtime error, type mismatch, or a false result
// is reported as a policy failure.
func (p *CELPolicy) Evaluate(doc document.Document) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.Newf(errs.ValidationFailed, "policy %q panicked: %v", p.source, r)
		}
	}()

	attrs := map[string]any{
		"type":         doc.Type,
		"version":      doc.Version,
		"id":           doc.ID,
		"chain_id":     doc.ChainID,
		"parent_hash":  doc.ParentHash,
		"logical_time": doc.LogicalTime,
		"crypto_suite": doc.CryptoSuite,
		"created_at":   doc.CreatedAt,
	}

	out, _, evalErr := p.program.Eval(attrs)
	if evalErr != nil {
		return errs.Newf(errs.ValidationFailed, "policy %q evaluation error: %v", p.source, evalErr)
	}
	if out.Type() != types.BoolType {
		return errs.Newf(errs.ValidationFailed, "policy %q did not evaluate to a bool", p.source)
	}
	if pass, ok := out.Value().(bool); !ok || !pass {
		return errs.Newf(errs.ValidationFailed, "document failed policy %q", p.source)
	}
	return nil
}
