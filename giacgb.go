/*
Package giacgb provides a pure Go orchestration layer for computing reduced
Groebner bases of polynomial ideals over prime fields through an external
computer-algebra engine. It converts between a host polynomial-ring
representation and the engine's term-order vocabulary, isolates the engine's
process-wide settings around each computation, and guards against symbol-table
collisions and degenerate inputs that the engine cannot handle cleanly.
*/
package giacgb
