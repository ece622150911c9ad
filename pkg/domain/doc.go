/*
Package domain contains the core vocabulary shared by every bitlab widget.

It defines the gate kinds and construction bases of the logic simulator, the numeral
bases of the converter, the number categories of the classifier, the error taxonomy and
the lifecycle events emitted by the library. This package is kept pure and free of
external dependencies like I/O or network access.

# Key Entities

  - GateKind: One of the eight boolean operators (AND, OR, XOR, NOT, BUFFER, NAND, NOR, XNOR).
  - Basis: The universal gate (NAND or NOR) other gates are built from.
  - TruthRow: A single (A, B, Output) line of a truth table.
  - Base: A positional numeral system radix (2, 8, 10, 16).
  - Category: A number category such as Prime, Rational or Complex.
*/
package domain
