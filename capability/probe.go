package capability

import (
	"reflect"
	"strconv"

	"github.com/iocap/iocap/diag"
)

// methodSig is the receiver-stripped signature of a probed method.
type methodSig struct {
	params   []reflect.Type
	results  []reflect.Type
	variadic bool
}

// paramRule decides whether a declared parameter type can accept the
// hypothetical argument a probe would pass in that position.
type paramRule struct {
	want    string
	accepts func(reflect.Type) bool
}

// acceptsArg is the plain assignability rule: a parameter accepts the
// argument type a when a Go call site could pass a value of a directly.
func acceptsArg(a reflect.Type) paramRule {
	return paramRule{
		want: a.String(),
		accepts: func(p reflect.Type) bool {
			return a.AssignableTo(p)
		},
	}
}

// methodSet returns the type whose method set is probed for t. For
// non-pointer, non-interface candidates that is the pointer type, the
// superset generic code can reach through an addressable value.
func methodSet(t reflect.Type) reflect.Type {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer:
		return t
	default:
		return reflect.PointerTo(t)
	}
}

// lookupMethod resolves an exported method by name on the candidate's
// reachable method set.
func lookupMethod(t reflect.Type, name string) (methodSig, bool) {
	host := methodSet(t)
	m, ok := host.MethodByName(name)
	if !ok {
		return methodSig{}, false
	}

	ft := m.Type
	sig := methodSig{variadic: ft.IsVariadic()}
	start := 0
	if host.Kind() != reflect.Interface {
		start = 1 // skip the receiver
	}
	for i := start; i < ft.NumIn(); i++ {
		sig.params = append(sig.params, ft.In(i))
	}
	for i := 0; i < ft.NumOut(); i++ {
		sig.results = append(sig.results, ft.Out(i))
	}
	return sig, true
}

// probeMethod attempts to form the call t.name(args...) against a
// hypothetical value of t, with one paramRule per argument. It reports
// the method's signature when the call is well-formed, and a failure
// otherwise. probeMethod never hard-fails: the caller is expected to run
// under absorb.
func probeMethod(contract string, t reflect.Type, name string, rules ...paramRule) (methodSig, *diag.Failure) {
	sig, ok := lookupMethod(t, name)
	if !ok {
		return methodSig{}, diag.MissingMethod(contract, typeName(t), name)
	}
	if f := matchParams(contract, t, name, sig, rules); f != nil {
		return methodSig{}, f
	}
	return sig, nil
}

// matchParams checks that a call with len(rules) arguments is well-formed
// against sig, honoring variadic tails.
func matchParams(contract string, t reflect.Type, name string, sig methodSig, rules []paramRule) *diag.Failure {
	nfixed := len(sig.params)
	if sig.variadic {
		nfixed--
		if len(rules) < nfixed {
			return diag.WrongArity(contract, typeName(t), name, len(rules), nfixed)
		}
	} else if len(rules) != nfixed {
		return diag.WrongArity(contract, typeName(t), name, len(rules), nfixed)
	}

	for i, rule := range rules {
		var p reflect.Type
		if i < nfixed {
			p = sig.params[i]
		} else {
			p = sig.params[nfixed].Elem() // variadic tail
		}
		if !rule.accepts(p) {
			return diag.New(contract, diag.KindParamShape).
				Candidate(typeName(t)).
				Method(name).
				Want(rule.want).
				Got(p.String()).
				Build()
		}
	}
	return nil
}

// singleResult requires the probed method to return exactly one value and
// reports its type, the well-formed result the dependent checks build on.
func singleResult(contract string, t reflect.Type, name string, sig methodSig) (reflect.Type, *diag.Failure) {
	if len(sig.results) != 1 {
		return nil, diag.New(contract, diag.KindArity).
			Candidate(typeName(t)).
			Method(name).
			Want("1 result").
			Got(countOf(len(sig.results), "result")).
			Build()
	}
	return sig.results[0], nil
}

// exactResults requires the probed method's result types to be identical,
// position by position, to want. Identity, not convertibility: these are
// the results other code depends on for correctness.
func exactResults(contract string, t reflect.Type, name string, sig methodSig, want ...reflect.Type) *diag.Failure {
	if len(sig.results) != len(want) {
		return diag.New(contract, diag.KindArity).
			Candidate(typeName(t)).
			Method(name).
			Want(countOf(len(want), "result")).
			Got(countOf(len(sig.results), "result")).
			Build()
	}
	for i, w := range want {
		if sig.results[i] != w {
			return diag.New(contract, diag.KindResultIdentity).
				Candidate(typeName(t)).
				Method(name).
				Want(w.String()).
				Got(sig.results[i].String()).
				Build()
		}
	}
	return nil
}

// absorb converts a reflect panic raised while probing a hostile shape
// into a plain failure outcome. Deferred by every check entry point so
// that no candidate type, however ill-formed, can make verification
// hard-fail.
func absorb(contract string, t reflect.Type, f **diag.Failure) {
	if r := recover(); r != nil {
		*f = diag.New(contract, diag.KindNotInvocable).
			Candidate(typeName(t)).
			Detail("probe aborted: %v", r).
			Build()
	}
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func countOf(n int, what string) string {
	if n == 1 {
		return "1 " + what
	}
	return strconv.Itoa(n) + " " + what + "s"
}
