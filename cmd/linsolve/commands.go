// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linsolve/elimination"
)

const defaultPrecision = 4

// cliOptions holds the flag values shared by all subcommands.
type cliOptions struct {
	file      string
	trace     bool
	precision int
	logger    *slog.Logger
}

// newRootCmd builds the command tree. Output goes to cmd.OutOrStdout(),
// logs and traces to cmd.ErrOrStderr().
func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "linsolve",
		Short: "Solve dense linear systems with pivoted Gaussian elimination",
		Long: `linsolve reads a YAML document holding a square matrix a and an optional
right-hand side b, then either solves a·x = b by Gauss-Jordan elimination
or factors P·a = L·U with partial pivoting.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.precision < 0 {
				return fmt.Errorf("--precision must be >= 0, got %d", opts.precision)
			}
			level := slog.LevelInfo
			if opts.trace {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			return nil
		},
	}
	root.PersistentFlags().BoolVar(&opts.trace, "trace", false, "log every elimination step at debug level")
	root.PersistentFlags().IntVar(&opts.precision, "precision", defaultPrecision, "decimals printed per value")

	root.AddCommand(newSolveCmd(opts), newLUCmd(opts))

	return root
}

func newSolveCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a·x = b by Gauss-Jordan elimination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := loadSystem(opts.file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if !sys.HasRHS() {
				return errNoRHS
			}
			a, err := sys.Matrix()
			if err != nil {
				return err
			}
			opts.logger.Debug("system loaded", "rows", a.Rows(), "cols", a.Cols())

			x, err := elimination.Solve(a, sys.B, opts.elimOptions()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "x = %s\n", formatVector(x, opts.precision))

			return nil
		},
	}
	addFileFlag(cmd, opts)

	return cmd
}

func newLUCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lu",
		Short: "Factor P·a = L·U with partial pivoting",
		Long: `lu prints P, L and U together with the reconstruction residual
max|P·a - L·U| and det(a). When the document carries b, the system is also
solved through the factorization.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := loadSystem(opts.file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			a, err := sys.Matrix()
			if err != nil {
				return err
			}
			opts.logger.Debug("matrix loaded", "rows", a.Rows(), "cols", a.Cols())

			d, err := elimination.Decompose(a, opts.elimOptions()...)
			if err != nil {
				return err
			}
			residual, err := d.Residual(a)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			writeMatrix(out, "P", d.P().FormatFixed(opts.precision))
			writeMatrix(out, "L", d.L().FormatFixed(opts.precision))
			writeMatrix(out, "U", d.U().FormatFixed(opts.precision))
			fmt.Fprintf(out, "perm = %v\n", d.Permutation())
			fmt.Fprintf(out, "det = %s\n", strconv.FormatFloat(d.Det(), 'g', -1, 64))
			fmt.Fprintf(out, "residual = %s\n", strconv.FormatFloat(residual, 'e', 3, 64))

			if !sys.HasRHS() {
				return nil
			}
			x, err := d.Solve(sys.B)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "x = %s\n", formatVector(x, opts.precision))

			return nil
		},
	}
	addFileFlag(cmd, opts)

	return cmd
}

func addFileFlag(cmd *cobra.Command, opts *cliOptions) {
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", `YAML input document ("-" reads stdin)`)
	_ = cmd.MarkFlagRequired("file")
}

// elimOptions wires the step trace into the structured logger.
func (o *cliOptions) elimOptions() []elimination.Option {
	if !o.trace {
		return nil
	}
	tracer := elimination.NewSlogTracer(o.logger).WithPrecision(o.precision)

	return []elimination.Option{elimination.WithTracer(tracer)}
}

func writeMatrix(w io.Writer, name, body string) {
	fmt.Fprintf(w, "%s =\n%s", name, body)
}

// formatVector renders x as "[v0, v1, ...]" with prec decimals.
func formatVector(x []float64, prec int) string {
	parts := make([]string, len(x))
	for i, v := range x {
		if v == 0 {
			v = 0 // drop the sign of -0
		}
		parts[i] = strconv.FormatFloat(v, 'f', prec, 64)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
