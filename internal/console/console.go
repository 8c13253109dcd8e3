// Package console is the interactive front end of the exercises: it takes
// operands from command-line arguments or, when there are none, prompts for
// them on the input stream, then prints one result line per answer.
package console

import (
	"bufio"
	"context"
	"drills/internal/drill"
	"drills/pkg/serrors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// Console reads operands from in and writes prompts and results to out.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	prompts bool
}

// New creates a Console. When prompts is false nothing but results is
// written to out, which suits piped input.
func New(in io.Reader, out io.Writer, prompts bool) *Console {
	return &Console{
		in:      bufio.NewReader(in),
		out:     out,
		prompts: prompts,
	}
}

// Duplicates reports whether the integers in args, or in one line of input,
// contain a repeated value.
func (c *Console) Duplicates(ctx context.Context, svc drill.Service, args []string) error {
	fields := args
	if len(fields) == 0 {
		line, err := c.line("Enter integers separated by spaces: ")
		if err != nil {
			return err
		}
		fields = strings.Fields(line)
	}

	values, err := parseAll(fields, parseInt)
	if err != nil {
		return err
	}

	if svc.ContainsDuplicate(ctx, values) {
		return c.printf("%s contains a duplicate.\n", formatSeq(values))
	}

	return c.printf("%s contains no duplicates.\n", formatSeq(values))
}

// Binary prints the binary representation of a non-negative integer.
func (c *Console) Binary(ctx context.Context, svc drill.Service, args []string) error {
	values, err := operands(c, args, 1, "Enter a non-negative integer: ", parseUint)
	if err != nil {
		return err
	}

	return c.printf("Binary representation of %d: %s\n", values[0], svc.Binary(ctx, values[0]))
}

// Parity prints whether an integer is even or odd.
func (c *Console) Parity(ctx context.Context, svc drill.Service, args []string) error {
	values, err := operands(c, args, 1, "Enter a number: ", parseInt)
	if err != nil {
		return err
	}

	if svc.IsEven(ctx, values[0]) {
		return c.printf("%d is even.\n", values[0])
	}

	return c.printf("%d is odd.\n", values[0])
}

// Divide prints floor and ceiling of a/b. A zero divisor is returned as an
// error of kind divide.ErrDivisionByZero and nothing is printed.
func (c *Console) Divide(ctx context.Context, svc drill.Service, args []string) error {
	values, err := operands(c, args, 2, "Enter two integers a and b: ", parseInt)
	if err != nil {
		return err
	}
	a, b := values[0], values[1]

	q, err := svc.Divide(ctx, a, b)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return c.printf("floor(%d / %d) = %d\nceil(%d / %d) = %d\n", a, b, q.Floor, a, b, q.Ceil)
}

// operands returns exactly want values, from args when given, otherwise
// from as many input lines as it takes. Each field is parsed as soon as it
// is read, so a bad token is reported before more input is awaited.
func operands[T any](c *Console, args []string, want int, prompt string, parse func(string) (T, error)) ([]T, error) {
	if len(args) > 0 {
		if len(args) != want {
			return nil, serrors.With(serrors.ErrBadRequest, "expected %d argument(s), got %d", want, len(args))
		}

		return parseAll(args, parse)
	}

	values := make([]T, 0, want)
	for len(values) < want {
		line, err := c.line(prompt)
		if err != nil {
			if len(values) > 0 && errors.Is(err, serrors.ErrBadRequest) {
				return nil, serrors.With(serrors.ErrBadRequest, "expected %d value(s), got %d", want, len(values))
			}

			return nil, err
		}
		prompt = ""

		fields := strings.Fields(line)
		if len(values)+len(fields) > want {
			return nil, serrors.With(serrors.ErrBadRequest,
				"expected %d value(s), got %d", want, len(values)+len(fields))
		}
		parsed, err := parseAll(fields, parse)
		if err != nil {
			return nil, err
		}
		values = append(values, parsed...)
	}

	return values, nil
}

// line prompts and reads one line. A final line without a newline counts;
// EOF before any input is a bad request.
func (c *Console) line(prompt string) (string, error) {
	if c.prompts && prompt != "" {
		if err := c.printf("%s", prompt); err != nil {
			return "", err
		}
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "read input")
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", serrors.With(serrors.ErrBadRequest, "unexpected end of input")
	}

	return line, nil
}

func (c *Console) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		return errors.Wrap(err, "write output")
	}

	return nil
}

func parseAll[T any](fields []string, parse func(string) (T, error)) ([]T, error) {
	values := make([]T, 0, len(fields))
	for _, f := range fields {
		v, err := parse(f)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	return values, nil
}

func parseInt(f string) (int64, error) {
	v, err := strconv.ParseInt(f, 10, 64)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "%q is not an integer", f)
	}

	return v, nil
}

func parseUint(f string) (uint64, error) {
	v, err := strconv.ParseUint(f, 10, 64)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "%q is not a non-negative integer", f)
	}

	return v, nil
}

func formatSeq(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
