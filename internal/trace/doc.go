// Package trace is the logging layer of quoter: leveled, span-based tracing
// of pipeline phases.
//
// # Usage
//
//	quoter quote --trace=- --trace-level=phase src/
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: in-memory circular buffer, dumped when a command fails
//   - MultiTracer: combines the two
//
// # Levels and scopes
//
// LevelPhase shows driver and pass spans (parse, quote, evaluate);
// LevelDetail adds one span per file; LevelDebug shows everything.
//
// # Context propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	ctx, span := trace.Start(ctx, trace.ScopePass, "quote")
//	defer span.End("")
package trace
