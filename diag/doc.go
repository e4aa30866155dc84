// Package diag provides structured failure descriptions for the capability
// checks.
//
// Failures are categorized by contract (which capability was being
// verified) and Kind (which structural requirement was missed). The
// Failure type includes rich context: candidate type name, probed method,
// the required and actual shapes, and a cause chain for dependent checks.
//
// Use the Builder for structured failure construction:
//
//	f := diag.New("SyncReadStream", diag.KindResultIdentity).
//		Candidate("mypkg.Conn").
//		Method("ReadSome").
//		Want("iocap.ByteCount").
//		Got("int").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	f := diag.MissingMethod("ConstBufferSequence", "mypkg.Chain", "Begin")
//	f := diag.NotCopyable("CompletionHandler", "mypkg.lockedCB")
//
// All failures implement the standard error interface and support
// errors.Is/As.
package diag
