package bitlab

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/bitlab/internal/presentation/tui"
	"github.com/aretw0/bitlab/pkg/domain"
	"github.com/aretw0/bitlab/pkg/radix"
)

// Runner handles an interactive command loop over a Lab using provided IO.
// This allows for easy testing and integration with different frontends (CLI, TUI, etc).
type Runner struct {
	Input    io.Reader
	Output   io.Writer
	Headless bool
	Renderer ContentRenderer
	Styler   tui.Styler
}

// ContentRenderer is a function that transforms explanation markdown before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a Runner with plain output.
// Input and Output must be set before Run.
func NewRunner() *Runner {
	return &Runner{
		Styler: tui.PlainStyler(),
	}
}

const runnerHelp = `Commands:
  <gate> <a> [b]              evaluate a gate, e.g. "xor 1 0"
  <gate> <a> [b] via <basis>  evaluate through a NAND or NOR construction
  table <gate>                print a truth table
  convert <digits> <from> <to>
  classify <number>
  explain <topic>
  help, exit`

// Run reads one command per line until EOF, "exit" or ctx cancellation.
// Command failures are printed and the loop continues.
func (r *Runner) Run(ctx context.Context, lab *Lab) error {
	if r.Input == nil {
		return fmt.Errorf("input reader must be set (use os.Stdin)")
	}
	if r.Output == nil {
		return fmt.Errorf("output writer must be set (use os.Stdout)")
	}
	lineReader := bufio.NewReader(r.Input)

	if !r.Headless {
		fmt.Fprintln(r.Output, "--- bitlab (type 'help' for commands) ---")
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !r.Headless {
			fmt.Fprint(r.Output, "> ")
		}

		text, err := lineReader.ReadString('\n')
		line := strings.TrimSpace(text)
		if line != "" {
			if line == "exit" || line == "quit" {
				if !r.Headless {
					fmt.Fprintln(r.Output, "Bye!")
				}
				return nil
			}
			if cmdErr := r.dispatch(ctx, lab, strings.Fields(line), line); cmdErr != nil {
				fmt.Fprintf(r.Output, "error: %s\n", domain.DisplayMessage(cmdErr))
			}
		}

		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}
	}
}

func (r *Runner) dispatch(ctx context.Context, lab *Lab, args []string, line string) error {
	switch strings.ToLower(args[0]) {
	case "help":
		fmt.Fprintln(r.Output, runnerHelp)
		return nil
	case "table":
		if len(args) != 2 {
			return fmt.Errorf("usage: table <gate>")
		}
		kind, err := domain.ParseGateKind(args[1])
		if err != nil {
			return err
		}
		tui.WriteTruthTable(r.Output, r.Styler, kind, lab.TruthTable(kind))
		return nil
	case "convert":
		if len(args) != 4 {
			return fmt.Errorf("usage: convert <digits> <from> <to>")
		}
		from, err := radix.ParseBase(args[2])
		if err != nil {
			return err
		}
		to, err := radix.ParseBase(args[3])
		if err != nil {
			return err
		}
		out, err := lab.Convert(ctx, args[1], from, to)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.Output, out)
		return nil
	case "classify":
		c, err := lab.Classify(ctx, strings.TrimSpace(line[len(args[0]):]))
		if err != nil {
			return err
		}
		tui.WriteClassification(r.Output, r.Styler, c)
		return nil
	case "explain":
		exp, err := lab.Explain(ctx, strings.TrimSpace(line[len(args[0]):]))
		if err != nil {
			return err
		}
		out := exp.Markdown
		if r.Renderer != nil {
			if rendered, err := r.Renderer(out); err == nil {
				out = rendered
			}
		}
		fmt.Fprintln(r.Output, strings.TrimSpace(out))
		return nil
	}

	return r.evaluate(ctx, lab, args)
}

func (r *Runner) evaluate(ctx context.Context, lab *Lab, args []string) error {
	kind, err := domain.ParseGateKind(args[0])
	if err != nil {
		return fmt.Errorf("%w (type 'help' for commands)", err)
	}

	var basis domain.Basis
	if n := len(args); n >= 2 && strings.EqualFold(args[n-2], "via") {
		if basis, err = domain.ParseBasis(args[n-1]); err != nil {
			return err
		}
		args = args[:n-2]
	}

	inputs := args[1:]
	if len(inputs) != kind.Arity() {
		return fmt.Errorf("%s takes %d input(s), got %d", kind, kind.Arity(), len(inputs))
	}
	a, b, err := domain.ParseBits(inputs)
	if err != nil {
		return err
	}

	if basis == "" {
		fmt.Fprintln(r.Output, r.Styler.Bit(lab.Evaluate(ctx, kind, a, b)))
		return nil
	}
	view, err := lab.Construct(ctx, kind, basis, a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.Output, "%s (%d %s gates)\n", r.Styler.Bit(view.Output), view.Circuit.GateCount(), basis)
	return nil
}
