// Package builder generates deterministic synthetic signals and traces for
// tests, examples and benchmarks of the robustness engine.
//
// Generators:
//   - Pulse(n, seed, …)  — rectangular or triangular pulse train
//   - Chirp(n, seed, …)  — linear frequency sweep
//   - Sine(n, …)         — plain sinusoid
//   - Ramp(n, …)         — straight line from 0 to A
//   - FromFunc(n, fn, …) — any function sampled on the time axis
//   - OHLC(days, seed, …) — four-channel price trace (open/high/low/close)
//
// Every generator takes functional options (BuilderOption): WithAmplitude,
// WithFrequency, WithSweep, WithTrend, WithNoise, WithDuty, WithTriangular,
// WithStep, WithStart, WithInterpolation, WithSeed, WithRand.
//
// Guarantees:
//   - Determinism: identical (n, seed, options) give identical signals.
//     WithSeed/WithRand override the seed argument and let several calls
//     share one stream.
//   - Option constructors panic on meaningless values (WithAmplitude(0),
//     WithNoise(-1)); generators return errors (ErrBadSize) and never panic.
//   - O(n) time and memory per generator.
package builder
