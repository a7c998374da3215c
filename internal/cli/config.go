package cli

import (
	"runtime"
	"strings"

	"github.com/Giulio2002/streebog"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables that configure streebogsum.
const EnvPrefix = "STREEBOGSUM"

// Config is the resolved configuration of one run.
type Config struct {
	Length   int // digest size in bits
	Check    bool
	Tag      bool
	Quiet    bool
	Jobs     int
	LogLevel logrus.Level
}

func addFlags(fs *pflag.FlagSet) {
	fs.IntP("length", "l", 512, "digest length in bits (256 or 512)")
	fs.BoolP("check", "c", false, "read checksums from the FILEs and check them")
	fs.Bool("tag", false, "create a BSD-style checksum")
	fs.IntP("jobs", "j", runtime.NumCPU(), "number of files hashed concurrently")
	fs.Bool("quiet", false, "don't print OK for each successfully verified file")
	fs.String("log-level", "warn", "log level (panic, fatal, error, warn, info, debug, trace)")
}

// newViper binds fs and the STREEBOGSUM_* environment to a fresh viper
// instance. Flags set on the command line win over the environment.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}
	return v, nil
}

func loadConfig(v *viper.Viper) (*Config, error) {
	c := &Config{
		Length: v.GetInt("length"),
		Check:  v.GetBool("check"),
		Tag:    v.GetBool("tag"),
		Quiet:  v.GetBool("quiet"),
		Jobs:   v.GetInt("jobs"),
	}

	if c.Length != 256 && c.Length != 512 {
		return nil, errors.WithMessagef(streebog.ErrInvalidSize, "--length %d", c.Length)
	}
	if c.Jobs < 1 {
		return nil, errors.Errorf("--jobs must be at least 1, got %d", c.Jobs)
	}
	if c.Check && c.Tag {
		return nil, errors.New("--tag is meaningless when verifying checksums")
	}

	lvl, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return nil, errors.WithMessage(err, "--log-level")
	}
	c.LogLevel = lvl

	return c, nil
}
