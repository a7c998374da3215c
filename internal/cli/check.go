package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// checkStats counts the problems found while verifying checksum lists.
type checkStats struct {
	lists     int // checksum lists that could not be read
	malformed int
	unread    int // listed files that could not be read
	mismatch  int
}

func (s checkStats) failed() bool {
	return s.lists+s.unread+s.mismatch > 0
}

// check verifies every entry of the checksum lists and prints one status
// line per entry.
func (c *command) check(ctx context.Context, lists []string) error {
	var (
		stats   checkStats
		entries []entry
	)
	for _, list := range lists {
		es, malformed, err := c.readList(list)
		if err != nil {
			c.log.WithError(err).Errorf("%s: cannot read checksum list", list)
			stats.lists++
			continue
		}
		stats.malformed += malformed
		entries = append(entries, es...)
	}
	if len(entries) == 0 && stats.lists == 0 {
		return errors.Errorf("%s: no properly formatted checksum lines found", strings.Join(lists, ", "))
	}

	bits := make([]int, len(entries))
	names := make([]string, len(entries))
	for i, e := range entries {
		bits[i] = e.bits
		names[i] = e.name
	}
	results, err := c.hasher.hashAll(ctx, bits, names)
	if err != nil {
		return err
	}

	for i, r := range results {
		switch {
		case r.err != nil:
			c.log.WithError(r.err).Errorf("%s: cannot verify", r.name)
			fmt.Fprintf(c.stdout, "%s: FAILED open or read\n", displayName(r.name))
			stats.unread++
		case !bytes.Equal(r.digest, entries[i].digest):
			fmt.Fprintf(c.stdout, "%s: FAILED\n", displayName(r.name))
			stats.mismatch++
		case !c.cfg.Quiet:
			fmt.Fprintf(c.stdout, "%s: OK\n", displayName(r.name))
		}
	}

	if stats.malformed > 0 {
		c.log.Warnf("%d line(s) improperly formatted", stats.malformed)
	}
	if stats.unread > 0 {
		c.log.Warnf("%d listed file(s) could not be read", stats.unread)
	}
	if stats.mismatch > 0 {
		c.log.Warnf("%d computed checksum(s) did NOT match", stats.mismatch)
	}
	if stats.failed() {
		return errors.Errorf("verification failed: %d mismatched, %d unreadable, %d lists unreadable",
			stats.mismatch, stats.unread, stats.lists)
	}
	return nil
}

// readList parses a checksum list. Blank lines are skipped; malformed lines
// are logged and counted.
func (c *command) readList(name string) ([]entry, int, error) {
	var r io.Reader
	if name == stdinName {
		r = c.stdin
	} else {
		f, err := os.Open(name)
		if err != nil {
			return nil, 0, err
		}
		defer f.Close()
		r = f
	}

	var (
		entries   []entry
		malformed int
		lineNo    int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := parseLine(line, c.cfg.Length)
		if err != nil {
			c.log.WithError(err).Warnf("%s:%d: improperly formatted checksum line", name, lineNo)
			malformed++
			continue
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, 0, errors.Wrapf(err, "reading %s", name)
	}
	return entries, malformed, nil
}
