// Command ratex is an exact symbolic calculator. With arguments it evaluates
// one expression and exits; without them it runs an interactive prompt.
//
//	$ ratex '2*pi + 3*pi'
//	5 * pi = 15.707963267948966
//
//	$ ratex
//	> 0xff + 1
//	256 = 256 (0x100)
//	> cos tau
//	1 = 1
package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/ratexlib/ratex/ast"
	"github.com/ratexlib/ratex/eval"
	"github.com/ratexlib/ratex/parse"
	"github.com/ratexlib/ratex/reduce"
	"github.com/ratexlib/ratex/render"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ratex [expression]",
		Short: "Exact symbolic calculator",
		Long: "ratex evaluates arithmetic and trigonometric expressions over exact\n" +
			"rationals, simplifying symbolically before approximating. Literals keep\n" +
			"the base they were written in (0b, 0o, 0x), and integral results are\n" +
			"echoed in that base.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return evalLine(cmd.OutOrStdout(), strings.Join(args, " "))
			}
			return runREPL(cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

// evalLine parses, reduces and approximates one expression, printing the
// reduced symbolic form next to its numeric value.
func evalLine(w io.Writer, line string) error {
	node, err := parse.Parse(line)
	if err != nil {
		return err
	}
	reduced, err := reduce.Reduce(node)
	if err != nil {
		return err
	}
	res := eval.Eval(reduced)
	fmt.Fprintf(w, "%s = %s\n", render.Render(reduced), formatResult(res))
	return nil
}

// formatResult prints the approximate value, appending the value in the
// propagated display base when it is non-decimal and the result is an exact
// integer.
func formatResult(res eval.Result) string {
	text := strconv.FormatFloat(res.Val, 'g', -1, 64)
	if rebased, ok := formatInBase(res.Val, res.Base); ok {
		return text + " (" + rebased + ")"
	}
	return text
}

func formatInBase(v float64, base ast.Base) (string, bool) {
	var prefix string
	switch base {
	case 2:
		prefix = "0b"
	case 8:
		prefix = "0o"
	case 16:
		prefix = "0x"
	default:
		return "", false
	}
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.Abs(v) > math.MaxInt64 {
		return "", false
	}
	n := int64(v)
	if n < 0 {
		return "-" + prefix + strconv.FormatInt(-n, int(base)), true
	}
	return prefix + strconv.FormatInt(n, int(base)), true
}

func runREPL(out, errOut io.Writer) error {
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			// io.EOF on ^D
			return nil
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		if err := evalLine(out, line); err != nil {
			fmt.Fprintln(errOut, "error:", err)
		}
	}
}
