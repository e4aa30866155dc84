package diag

import (
	"fmt"
	"strings"
)

// Kind categorizes which structural requirement a candidate missed.
type Kind string

const (
	KindMissingMethod  Kind = "missing_method"  // no method with the required name
	KindArity          Kind = "arity"           // wrong parameter or result count
	KindParamShape     Kind = "param_shape"     // a parameter cannot accept the required argument
	KindResultShape    Kind = "result_shape"    // a result fails a dependent shape check
	KindResultIdentity Kind = "result_identity" // a result is not exactly the required type
	KindNotCopyable    Kind = "not_copyable"    // candidate carries locks and must not be copied
	KindNotTraversable Kind = "not_traversable" // iterator is not forward-traversable
	KindNotInvocable   Kind = "not_invocable"   // candidate cannot be called with the signature
)

// Failure describes why a candidate type does not satisfy a capability
// contract. The capability checks themselves only yield booleans; Failure
// is the optional diagnostic companion for callers that want to tell a
// user which sub-requirement was missed.
type Failure struct {
	Cause     *Failure
	Contract  string
	Candidate string
	Method    string
	Kind      Kind
	Want      string
	Got       string
	Detail    string
}

// Error implements the error interface.
func (f *Failure) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(f.Contract)
	b.WriteString("] ")
	b.WriteString(string(f.Kind))

	if f.Candidate != "" {
		b.WriteString(" for ")
		b.WriteString(f.Candidate)
	}
	if f.Method != "" {
		b.WriteString(": method ")
		b.WriteString(f.Method)
	}
	if f.Want != "" || f.Got != "" {
		b.WriteString(": want ")
		b.WriteString(f.Want)
		b.WriteString(", got ")
		b.WriteString(f.Got)
	}
	if f.Detail != "" {
		b.WriteString(" - ")
		b.WriteString(f.Detail)
	}
	if f.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(f.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the nested failure, if any.
func (f *Failure) Unwrap() error {
	if f.Cause == nil {
		return nil
	}
	return f.Cause
}

// Is reports whether target matches this failure by contract and kind.
func (f *Failure) Is(target error) bool {
	if t, ok := target.(*Failure); ok {
		return f.Contract == t.Contract && f.Kind == t.Kind
	}
	return false
}

// Builder provides structured failure construction.
type Builder struct {
	f Failure
}

// New creates a failure builder for the given contract and kind.
func New(contract string, kind Kind) *Builder {
	return &Builder{
		f: Failure{
			Contract: contract,
			Kind:     kind,
		},
	}
}

// Candidate records the candidate type's name.
func (b *Builder) Candidate(name string) *Builder {
	b.f.Candidate = name
	return b
}

// Method records the probed method name.
func (b *Builder) Method(name string) *Builder {
	b.f.Method = name
	return b
}

// Want records the required shape or type.
func (b *Builder) Want(s string) *Builder {
	b.f.Want = s
	return b
}

// Got records what the candidate actually exposes.
func (b *Builder) Got(s string) *Builder {
	b.f.Got = s
	return b
}

// Cause nests the failure of a dependent check.
func (b *Builder) Cause(f *Failure) *Builder {
	b.f.Cause = f
	return b
}

// Detail sets the human-readable detail message.
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.f.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.f.Detail = msg
	}
	return b
}

// Build returns the constructed failure.
func (b *Builder) Build() *Failure {
	return &b.f
}

// Convenience constructors for common failure patterns

// MissingMethod reports that candidate has no method named method.
func MissingMethod(contract, candidate, method string) *Failure {
	return &Failure{
		Contract:  contract,
		Kind:      KindMissingMethod,
		Candidate: candidate,
		Method:    method,
	}
}

// NotCopyable reports that candidate must not be copied by value.
func NotCopyable(contract, candidate string) *Failure {
	return &Failure{
		Contract:  contract,
		Kind:      KindNotCopyable,
		Candidate: candidate,
		Detail:    "type or one of its fields carries a lock",
	}
}

// WrongArity reports a parameter or result count mismatch.
func WrongArity(contract, candidate, method string, want, got int) *Failure {
	return &Failure{
		Contract:  contract,
		Kind:      KindArity,
		Candidate: candidate,
		Method:    method,
		Want:      fmt.Sprintf("%d", want),
		Got:       fmt.Sprintf("%d", got),
	}
}
