// Package cli implements the streebogsum command: print or check Streebog
// (GOST R 34.11-2012) checksums of files.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// command holds the state of one invocation.
type command struct {
	cfg    *Config
	stdin  io.Reader
	stdout io.Writer
	log    *logrus.Logger
	hasher *hasher
}

// NewCommand returns the streebogsum root command. Logs go to stderr.
func NewCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "streebogsum [flags] [FILE...]",
		Short: "Print or check GOST R 34.11-2012 (Streebog) checksums",
		Long: `Print or check GOST R 34.11-2012 (Streebog) checksums.

With no FILE, or when FILE is -, read standard input. Only the first - reads
it; later ones hash what is left, which is nothing. File names containing a
backslash, newline or carriage return are escaped and the line is prefixed
with a backslash, as GNU sha256sum does. Flags can also be set through
STREEBOGSUM_* environment variables, e.g. STREEBOGSUM_LENGTH=256.`,
		SilenceUsage: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	addFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		v, err := newViper(cmd.Flags())
		if err != nil {
			return err
		}
		cfg, err := loadConfig(v)
		if err != nil {
			return err
		}

		log := logrus.New()
		log.SetOutput(stderr)
		log.SetLevel(cfg.LogLevel)
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

		c := &command{
			cfg:    cfg,
			stdin:  stdin,
			stdout: stdout,
			log:    log,
			hasher: &hasher{stdin: stdin, log: log, jobs: cfg.Jobs},
		}
		if len(args) == 0 {
			args = []string{stdinName}
		}
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if cfg.Check {
			return c.check(ctx, args)
		}
		return c.sum(ctx, args)
	}
	return cmd
}

// sum prints one checksum line per input.
func (c *command) sum(ctx context.Context, names []string) error {
	results, err := c.hasher.hashAll(ctx, repeat(c.cfg.Length, len(names)), names)
	if err != nil {
		return err
	}

	var failed int
	for _, r := range results {
		if r.err != nil {
			c.log.WithError(r.err).Errorf("%s: cannot hash", r.name)
			failed++
			continue
		}
		fmt.Fprintln(c.stdout, formatLine(c.cfg.Tag, c.cfg.Length, r.digest, r.name))
	}
	if failed > 0 {
		return errors.Errorf("%d of %d file(s) could not be hashed", failed, len(names))
	}
	return nil
}
