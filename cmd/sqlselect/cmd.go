package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sqlc-dev/sqlselect/ast"
	"github.com/sqlc-dev/sqlselect/internal/config"
	"github.com/sqlc-dev/sqlselect/parser"
)

const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagMaxDepth = "max-depth"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sqlselect",
		Short:         "sqlselect parses and normalizes SQL SELECT statements.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String(flagConfig, "", "path to a TOML config file")
	rootCmd.PersistentFlags().String(flagLogLevel, "", "log level, overrides the config file")
	rootCmd.PersistentFlags().Int(flagMaxDepth, -1, "nesting limit, overrides the config file (0 means unlimited)")

	rootCmd.AddCommand(
		newFormatCommand(),
		newExplainCommand(),
		newCheckCommand(),
	)
	return rootCmd
}

func newFormatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format [file...]",
		Short: "Print statements in canonical form, reading stdin when no file is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatements(cmd, args, func(ctx context.Context, w io.Writer, stmts []*ast.SelectStatement) error {
				if len(stmts) == 0 {
					return nil
				}
				_, err := fmt.Fprintln(w, parser.Format(stmts))
				return errors.Trace(err)
			})
		},
	}
}

func newExplainCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explain [file...]",
		Short: "Print the syntax tree of each statement",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatements(cmd, args, func(ctx context.Context, w io.Writer, stmts []*ast.SelectStatement) error {
				for _, stmt := range stmts {
					if _, err := io.WriteString(w, parser.Explain(stmt)); err != nil {
						return errors.Trace(err)
					}
				}
				return nil
			})
		},
	}
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Check that every statement parses and that its canonical form is stable",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatements(cmd, args, func(ctx context.Context, w io.Writer, stmts []*ast.SelectStatement) error {
				for i, stmt := range stmts {
					if err := checkFixedPoint(ctx, stmt); err != nil {
						return errors.Annotatef(err, "statement %d", i+1)
					}
				}
				_, err := fmt.Fprintf(w, "ok: %d statement(s)\n", len(stmts))
				return errors.Trace(err)
			})
		},
	}
}

// checkFixedPoint verifies that the generated text of stmt parses back to a
// statement with the same generated text.
func checkFixedPoint(ctx context.Context, stmt *ast.SelectStatement) error {
	first := parser.Generate(stmt)
	again, err := parser.ParseString(ctx, first)
	if err != nil {
		return errors.Annotatef(err, "canonical form %q does not parse", first)
	}
	if second := parser.Generate(again); second != first {
		return errors.Errorf("canonical form is not stable: %q became %q", first, second)
	}
	return nil
}

// runStatements parses every input named in args, or stdin, and passes the
// statements of each input to emit.
func runStatements(cmd *cobra.Command, args []string, emit func(context.Context, io.Writer, []*ast.SelectStatement) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := cfg.Log.InitLogger()
	if err != nil {
		return err
	}
	p := parser.New(parser.WithLogger(logger), parser.WithMaxDepth(cfg.MaxDepth))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if len(args) == 0 {
		return runInput(ctx, p, "stdin", cmd.InOrStdin(), cmd.OutOrStdout(), emit)
	}
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return errors.Trace(err)
		}
		err = runInput(ctx, p, path, f, cmd.OutOrStdout(), emit)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func runInput(ctx context.Context, p *parser.Parser, name string, r io.Reader, w io.Writer,
	emit func(context.Context, io.Writer, []*ast.SelectStatement) error) error {
	stmts, err := p.ParseStatements(ctx, r)
	if err != nil {
		return errors.Annotate(err, name)
	}
	log.Debug("parsed input", zap.String("input", name), zap.Int("statements", len(stmts)))
	return emit(ctx, w, stmts)
}

// loadConfig reads the config file, if any, and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	cfg := config.Default()
	if path, _ := flags.GetString(flagConfig); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if level, _ := flags.GetString(flagLogLevel); level != "" {
		cfg.Log.Level = level
	}
	if depth, _ := flags.GetInt(flagMaxDepth); depth >= 0 {
		cfg.MaxDepth = depth
	}
	return cfg, errors.Trace(cfg.Valid())
}
