// Package calc implements the calculator engine: a single state record plus the
// transitions a four-function calculator applies to it.
//
// The engine has no notion of keys, pixels or tasks. Presentation layers feed it
// button presses and render Display, Expression and History after each one.
//
// Division by zero yields 0 rather than an IEEE-754 infinity. This is a product
// decision and callers must not rely on Inf/NaN from Apply for a zero divisor.
package calc
