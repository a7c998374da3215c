package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const tagPrefix = "STREEBOG"

// nameEscaper escapes file names the way GNU coreutils does.
var nameEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)

// escapeName returns name with backslash, newline and carriage return
// escaped, and the "\" line prefix that marks an escaped line.
func escapeName(name string) (prefix, escaped string) {
	if !strings.ContainsAny(name, "\\\n\r") {
		return "", name
	}
	return `\`, nameEscaper.Replace(name)
}

func unescapeName(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			b.WriteByte(s[i])
			continue
		}
		i++
		if i == len(s) {
			return "", errors.New("file name ends in a lone backslash")
		}
		switch s[i] {
		case '\\':
			b.WriteByte('\\')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		default:
			return "", errors.Errorf("invalid escape \\%c in file name", s[i])
		}
	}
	return b.String(), nil
}

// displayName is name as it appears at the start of a status line.
func displayName(name string) string {
	prefix, escaped := escapeName(name)
	return prefix + escaped
}

// formatLine renders one checksum line in GNU or BSD tag style.
func formatLine(tag bool, bits int, digest []byte, name string) string {
	prefix, name := escapeName(name)
	if tag {
		return fmt.Sprintf("%s%s%d (%s) = %x", prefix, tagPrefix, bits, name, digest)
	}
	return fmt.Sprintf("%s%x  %s", prefix, digest, name)
}

// entry is one parsed line of a checksum list.
type entry struct {
	bits   int
	digest []byte
	name   string
}

// parseLine accepts "DIGEST  NAME", "DIGEST *NAME" and
// "STREEBOG<bits> (NAME) = DIGEST", each optionally prefixed with "\\" when
// NAME is escaped. Untagged lines are taken to be of defaultBits.
func parseLine(line string, defaultBits int) (entry, error) {
	escaped, line := strings.HasPrefix(line, `\`), strings.TrimPrefix(line, `\`)
	e, err := parseFields(line, defaultBits)
	if err != nil || !escaped {
		return e, err
	}
	if e.name, err = unescapeName(e.name); err != nil {
		return entry{}, err
	}
	return e, nil
}

func parseFields(line string, defaultBits int) (entry, error) {
	if strings.HasPrefix(line, tagPrefix) {
		return parseTagLine(line)
	}

	sep := strings.IndexByte(line, ' ')
	if sep < 0 || sep+2 > len(line) || (line[sep+1] != ' ' && line[sep+1] != '*') {
		return entry{}, errors.New("expected DIGEST  NAME")
	}
	e := entry{bits: defaultBits, name: line[sep+2:]}
	if e.name == "" {
		return entry{}, errors.New("empty file name")
	}
	digest, err := decodeDigest(line[:sep], defaultBits)
	if err != nil {
		return entry{}, err
	}
	e.digest = digest
	return e, nil
}

func parseTagLine(line string) (entry, error) {
	rest := line[len(tagPrefix):]
	open := strings.Index(rest, " (")
	closing := strings.LastIndex(rest, ") = ")
	if open < 0 || closing < open+2 {
		return entry{}, errors.New("expected STREEBOG<bits> (NAME) = DIGEST")
	}
	bits, err := strconv.Atoi(rest[:open])
	if err != nil || (bits != 256 && bits != 512) {
		return entry{}, errors.Errorf("unknown algorithm %s%s", tagPrefix, rest[:open])
	}
	e := entry{bits: bits, name: rest[open+2 : closing]}
	if e.name == "" {
		return entry{}, errors.New("empty file name")
	}
	digest, err := decodeDigest(rest[closing+4:], bits)
	if err != nil {
		return entry{}, err
	}
	e.digest = digest
	return e, nil
}

func decodeDigest(s string, bits int) ([]byte, error) {
	if len(s) != bits/4 {
		return nil, errors.Errorf("digest has %d hex digits, want %d", len(s), bits/4)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "digest")
	}
	return b, nil
}
