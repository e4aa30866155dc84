// Package iocap provides structural capability verification for networking
// I/O types.
//
// Generic transport-handling code needs to know, before it commits to a
// candidate type, whether that type exposes the operations the code is
// about to use: buffer sequences to scatter/gather from, synchronous and
// asynchronous read/write operations, growable staging buffers, completion
// callables. iocap answers those questions structurally: a type qualifies
// by having the right shape, never by declaring conformance.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	iocap/           Root package with the shared value types: ConstBuffer,
//	                 MutableBuffer, ByteCount and ExecutionContext
//	├── capability/  Shape probing and the named capability contracts
//	└── diag/        Structured descriptions of why a candidate failed
//
// # Quick Start
//
// Query a contract with the generic helpers:
//
//	if !capability.IsStream[MyConn]() {
//	    // MyConn cannot be wrapped by the generic stream adaptors
//	}
//
// or guard an adaptor at construction time:
//
//	capability.Assert[MyConn](capability.Stream)
//
// # Structural matching caveat
//
// Because matching is purely structural, any type with the right method
// shapes qualifies, including accidental matches with different intended
// semantics. Code that needs nominal opt-in should define its own marker
// interface alongside these checks.
package iocap
