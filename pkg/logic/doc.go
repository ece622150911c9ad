/*
Package logic evaluates boolean gates directly and through universal-gate constructions.

Evaluate applies one of the eight gate kinds to its inputs. EvaluateViaBasis computes the
same value by running a fixed circuit made only of NAND or only of NOR gates. For every
construction that exists, both paths agree on all four input combinations; pairs without
a construction report domain.ErrConstructionUnavailable instead of guessing a circuit.

Circuits are plain data (a list of two-input gates over numbered wires) so callers can
tabulate, verify and draw them as well as compute them.
*/
package logic
