package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"hash-mapper/internal/logging"
	"hash-mapper/internal/mapping"
	"hash-mapper/internal/match"
)

// rootOptions holds the flags shared by every command.
type rootOptions struct {
	logLevel    string
	logFormat   string
	mappingPath string
	logger      *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: slog.New(slog.DiscardHandler)}

	cmd := &cobra.Command{
		Use:   "hash-mapper",
		Short: "Map documents between shapes with declarative path rules",
		Long: `hash-mapper reads mapper definitions from a YAML mapping file and uses them
to reshape YAML or JSON documents.

A rule copies the value found at one path ("/names[0]/first") to another
path. Normalizing reads "from" paths and writes "to" paths; denormalizing
does the opposite with the same rules.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			opts.logger = logging.NewLogger(logging.LoggerConfig{
				Level:  opts.logLevel,
				Format: opts.logFormat,
			}, cmd.ErrOrStderr())
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	cmd.PersistentFlags().StringVarP(&opts.mappingPath, "mapping", "m", "", "path to the YAML mapping file")

	cmd.AddCommand(
		newNormalizeCmd(opts),
		newDenormalizeCmd(opts),
		newCheckCmd(opts),
		newInspectCmd(opts),
	)

	return cmd
}

// loadMapping parses the mapping file named by --mapping.
func (o *rootOptions) loadMapping() (*mapping.MappingFile, error) {
	if o.mappingPath == "" {
		return nil, fmt.Errorf("--mapping is required")
	}

	return mapping.LoadFile(o.mappingPath)
}

// loadSet parses and compiles the mapping file named by --mapping.
func (o *rootOptions) loadSet() (*mapping.Set, error) {
	mf, err := o.loadMapping()
	if err != nil {
		return nil, err
	}

	set, err := mapping.Compile(mf, mapping.NewRegistry(), mapping.WithLogger(o.logger))
	if err != nil {
		return nil, err
	}

	o.logger.Debug("mapping loaded",
		slog.String("file", o.mappingPath),
		slog.Int("mappers", len(set.Names())))

	return set, nil
}

// pickMapper returns the named mapper, or the only one when name is empty.
func pickMapper(set *mapping.Set, name string) (string, error) {
	names := set.Names()

	if name == "" {
		if len(names) == 1 {
			return names[0], nil
		}

		return "", fmt.Errorf("--name is required when the mapping declares %d mappers", len(names))
	}

	if _, ok := set.Get(name); ok {
		return name, nil
	}

	err := fmt.Errorf("%w %q", mapping.ErrUnknownMapper, name)
	if hints := match.Suggest(name, names, 1); len(hints) > 0 {
		err = fmt.Errorf("%w (did you mean %q?)", err, hints[0])
	}

	return "", err
}
