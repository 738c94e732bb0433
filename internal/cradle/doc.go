// Package cradle implements the physics of a Newton's cradle: a row of
// identical pendulums hanging from a common suspension line, exchanging
// momentum through contact at the bottom of their swing.
//
// The package has three moving parts:
//
//   - [Pendulum]: single angular pendulum, advanced with symplectic Euler
//   - [Chain]: the ordered left-to-right row, built from a [Config]
//   - [Resolver]: the bounded iterative pass that detects adjacent contact
//     and swaps angular velocities to propagate momentum along the row
//
// A [Stepper] ties them together: integrate every pendulum for one frame,
// then resolve collisions once. Callers own the chain exclusively and
// replace it wholesale on reconfiguration.
//
// # Energy
//
// With Damping = 1.0 the integrator conserves mechanical energy up to the
// bounded discretization error of symplectic Euler. Use [Pendulum.Energy]
// to monitor drift.
package cradle
