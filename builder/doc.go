// Package builder produces solver instances: a {1,2} weight matrix plus a
// cycle cover of its vertices.
//
// The package offers:
//
//   - Instance: the input bundle, with a YAML form used by instance files.
//   - Generators:
//     – Demo21:   fixed 21-vertex instance of seven triangles, two of them bad.
//     – Planted:  random partition into cycles with random light edges around it.
//     – Perturb:  random weight flips on pairs outside the cover.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand, WithCycleLength, WithLightProbability, WithBadCycles.
//   - File helpers: Load, LoadFile, Save, SaveFile.
//   - DeriveSeed: one independent seed per generated instance.
//
// Guarantees:
//
//   - Determinism: the same options and seed give the same instance.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     generators return sentinel errors wrapped with method context.
//   - Every generated weight matrix is symmetric with entries in {1,2} off
//     the diagonal, and every cover partitions the vertices.
package builder
