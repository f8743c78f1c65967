package info

import (
	"fmt"
	"github.com/bokysan/vspace/internal/args"
	"github.com/bokysan/vspace/internal/logging"
	"github.com/bokysan/vspace/internal/util/enc"
	"github.com/bokysan/vspace/internal/vspace"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

// Command prints the details of the configured codec
type Command struct {
	Codec args.CodecOptions `json:"codec" group:"Codec Options"`

	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		out: os.Stdout,
	}
}

func (c *Command) Execute(args []string) error {
	defer logging.SetupLogging()()
	return c.Run()
}

// Run writes the codec details to the output
func (c *Command) Run() error {
	codec, err := c.Codec.NewCodec()
	if err != nil {
		return err
	}
	log.Tracef("Codec options: %s", spew.Sdump(c.Codec))

	lines := []string{
		fmt.Sprintf("Alphabet:        %v", codec.Alphabet()),
		fmt.Sprintf("Radix:           %d", codec.Alphabet().Len()),
		fmt.Sprintf("Pre-encoder:     %v (%d symbols)", codec.PreEncoder().Name(), codec.PreEncoder().SymbolCount()),
		fmt.Sprintf("Symbols needed:  %d", codec.SymbolsNeeded()),
		fmt.Sprintf("Alphabets:       %v", strings.Join(vspace.AlphabetNames(), ", ")),
		fmt.Sprintf("Pre-encoders:    %v", strings.Join(enc.PreEncoderNames(), ", ")),
	}
	if _, err := fmt.Fprintln(c.out, strings.Join(lines, "\n")); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
