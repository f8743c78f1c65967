package decode

import (
	"fmt"
	"github.com/bokysan/vspace/internal/args"
	"github.com/bokysan/vspace/internal/commands"
	"github.com/bokysan/vspace/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"unicode/utf8"
)

// Command decodes text given as arguments or on the standard input
type Command struct {
	Codec     args.CodecOptions `json:"codec"      group:"Codec Options"`
	Extract   bool              `json:"extract"    short:"x" long:"extract"    description:"Input is a cover text with the encoded text at its end"`
	NoNewline bool              `json:"no-newline" short:"n" long:"no-newline" description:"Do not output the trailing newline"`

	in  io.Reader
	out io.Writer
}

func NewCommand() *Command {
	return &Command{
		in:  os.Stdin,
		out: os.Stdout,
	}
}

func (c *Command) Execute(args []string) error {
	defer logging.SetupLogging()()
	return c.Run(args)
}

// Run decodes the input and writes the result to the output
func (c *Command) Run(args []string) error {
	codec, err := c.Codec.NewCodec()
	if err != nil {
		return err
	}

	encoded, err := commands.ReadInput(args, c.in)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		encoded = commands.TrimNewline(encoded, codec.Alphabet())
	}

	var res string
	if c.Extract {
		res, err = codec.Extract(encoded)
	} else {
		res, err = codec.Decode(encoded)
	}
	if err != nil {
		return errors.Wrap(err, "could not decode")
	}
	log.Debugf("Decoded %d characters into %d characters", utf8.RuneCountInString(encoded), utf8.RuneCountInString(res))

	if !c.NoNewline {
		res += "\n"
	}
	if _, err := fmt.Fprint(c.out, res); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
