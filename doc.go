/*
Package bitlab is a small educational toolkit of digital-logic and number-system widgets.

It bundles four independent tools behind one facade:

  - A logic-gate simulator covering AND, OR, XOR, NOT, BUFFER, NAND, NOR and XNOR, with
    truth tables and circuits that rebuild each gate from NAND-only or NOR-only parts.
  - A base converter between binary, octal, decimal and hexadecimal.
  - A number classifier placing input into Natural, Prime, Composite, Whole, Integer,
    Rational, Irrational, Real and Complex.
  - A concept explainer that asks a generative-text provider to explain a topic and renders
    the markdown answer.

Every widget except the explainer is a pure function; the Lab only adds logging and
lifecycle hooks around them. Callers own their selections (gate, basis, inputs) and pass
them in on each call.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"

		"github.com/aretw0/bitlab"
		"github.com/aretw0/bitlab/pkg/domain"
	)

	func main() {
		lab := bitlab.New()
		ctx := context.Background()

		// Direct evaluation
		fmt.Println(lab.Evaluate(ctx, domain.GateXOR, true, false)) // true

		// The same gate built from NAND gates only
		view, err := lab.Construct(ctx, domain.GateXOR, domain.BasisNAND, true, false)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(view.Output, view.Circuit.GateCount()) // true 4
		fmt.Println(view.Diagram)                           // Mermaid flowchart

		// Base conversion
		hex, _ := lab.Convert(ctx, "255", domain.Decimal, domain.Hexadecimal)
		fmt.Println(hex) // FF
	}
*/
package bitlab
