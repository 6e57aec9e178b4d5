package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"hash-mapper/internal/docio"
	"hash-mapper/mapper"
)

const stdinArg = "-"

// mapOptions holds the flags of normalize and denormalize.
type mapOptions struct {
	name     string
	selector string
	format   string
	options  map[string]string
	context  string
	parallel int
}

func newNormalizeCmd(root *rootOptions) *cobra.Command {
	return newMapCmd(root, mapper.Normalize, "normalize", "Map documents from the \"from\" shape to the \"to\" shape")
}

func newDenormalizeCmd(root *rootOptions) *cobra.Command {
	return newMapCmd(root, mapper.Denormalize, "denormalize", "Map documents from the \"to\" shape back to the \"from\" shape")
}

func newMapCmd(root *rootOptions, dir mapper.Direction, use, short string) *cobra.Command {
	opts := &mapOptions{}

	cmd := &cobra.Command{
		Use:   use + " [files...]",
		Short: short,
		Long: short + `.

Each file holds one YAML or JSON document. With no files, or with "-", the
document is read from standard input. Results are written to standard
output in argument order; YAML results are separated by "---".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, root, opts, dir, args)
		},
	}
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "mapper to run (optional when the mapping declares one mapper)")
	cmd.Flags().StringVar(&opts.selector, "select", "", "YAML path of the sub-document to map, e.g. $.payload")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "output format: json or yaml")
	cmd.Flags().StringToStringVarP(&opts.options, "option", "o", nil, "option handed to hooks as key=value (repeatable)")
	cmd.Flags().StringVar(&opts.context, "context", "", "context value handed to filters and nested mappers")
	cmd.Flags().IntVarP(&opts.parallel, "parallel", "p", runtime.GOMAXPROCS(0), "number of documents mapped at once")

	return cmd
}

func runMap(cmd *cobra.Command, root *rootOptions, opts *mapOptions, dir mapper.Direction, args []string) error {
	format, err := docio.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	set, err := root.loadSet()
	if err != nil {
		return err
	}

	name, err := pickMapper(set, opts.name)
	if err != nil {
		return err
	}

	m, _ := set.Get(name)

	callOpts := []mapper.CallOption{mapper.WithOptions(hookOptions(opts.options))}
	if cmd.Flags().Changed("context") {
		callOpts = append(callOpts, mapper.WithContext(opts.context))
	}

	if len(args) == 0 {
		args = []string{stdinArg}
	}

	results := make([][]byte, len(args))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(max(opts.parallel, 1))

	for i, arg := range args {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out, err := mapDocument(cmd.InOrStdin(), arg, m, dir, opts.selector, format, callOpts)
			if err != nil {
				return fmt.Errorf("%s: %w", displayName(arg), err)
			}

			results[i] = out

			root.logger.Debug("document mapped",
				slog.String("file", displayName(arg)),
				slog.String("mapper", name),
				slog.String("direction", dir.String()))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return writeResults(cmd.OutOrStdout(), results, format)
}

func mapDocument(
	stdin io.Reader,
	arg string,
	m *mapper.Mapper,
	dir mapper.Direction,
	selector string,
	format docio.Format,
	callOpts []mapper.CallOption,
) ([]byte, error) {
	data, err := readInput(stdin, arg)
	if err != nil {
		return nil, err
	}

	doc, err := docio.Decode(data, selector)
	if err != nil {
		return nil, err
	}

	out, err := m.Map(dir, doc, callOpts...)
	if err != nil {
		return nil, err
	}

	return docio.Encode(out, format)
}

func readInput(stdin io.Reader, arg string) ([]byte, error) {
	if arg == stdinArg {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(arg)
}

func writeResults(w io.Writer, results [][]byte, format docio.Format) error {
	var buf bytes.Buffer

	for i, out := range results {
		if format == docio.FormatYAML && i > 0 {
			buf.WriteString("---\n")
		}

		buf.Write(out)

		if !bytes.HasSuffix(out, []byte("\n")) {
			buf.WriteByte('\n')
		}
	}

	_, err := w.Write(buf.Bytes())

	return err
}

func hookOptions(raw map[string]string) mapper.Options {
	opts := make(mapper.Options, len(raw))
	for k, v := range raw {
		opts[k] = v
	}

	return opts
}

func displayName(arg string) string {
	if arg == stdinArg {
		return "<stdin>"
	}

	return arg
}
