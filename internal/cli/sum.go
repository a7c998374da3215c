package cli

import (
	"context"
	"io"
	"os"

	"github.com/Giulio2002/streebog"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const stdinName = "-"

// result is the outcome of hashing one input.
type result struct {
	name   string
	digest []byte
	err    error
}

// hasher hashes named inputs, each with its own streebog.Hasher.
type hasher struct {
	stdin io.Reader
	log   *logrus.Logger
	jobs  int
}

// hashAll hashes every input concurrently, at most h.jobs at a time. The
// results are in the order of inputs. Per-input failures are reported in
// the results; the returned error is only set if ctx is cancelled.
//
// Standard input is read on the calling goroutine, in argument order. The
// first "-" consumes it and any later "-" hashes the empty remainder.
func (h *hasher) hashAll(ctx context.Context, bits []int, names []string) ([]result, error) {
	results := make([]result, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(h.jobs)

	for i, name := range names {
		results[i].name = name
		if name == stdinName {
			if err := ctx.Err(); err != nil {
				g.Wait()
				return nil, err
			}
			results[i].digest, results[i].err = h.hashOne(bits[i], name)
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i].digest, results[i].err = h.hashOne(bits[i], name)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (h *hasher) hashOne(bits int, name string) ([]byte, error) {
	d, err := streebog.New(bits)
	if err != nil {
		return nil, err
	}

	var r io.Reader
	if name == stdinName {
		r = h.stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	n, err := io.Copy(d, r)
	if err != nil {
		return nil, errors.WithMessagef(err, "read %s", name)
	}
	h.log.WithFields(logrus.Fields{
		"file":  name,
		"bytes": n,
		"bits":  bits,
	}).Debug("hashed")

	return d.Finalize()
}

// repeat returns n copies of bits, one per input.
func repeat(bits, n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = bits
	}
	return s
}
