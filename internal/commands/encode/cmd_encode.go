package encode

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

// Command encodes text given as arguments or on the standard input
type Command struct {
	Codec     args.CodecOptions `json:"codec"      group:"Codec Options"`
	Cover     string            `json:"cover"      long:"cover"       env:"VSPACE_COVER" description:"Cover text. The encoded text is appended to it."`
	Show      bool              `json:"show"       long:"show"        description:"Print alphabet characters as digits instead of the invisible characters"`
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

// Run encodes the input and writes the result to the output
func (c *Command) Run(args []string) error {
	codec, err := c.Codec.NewCodec()
	if err != nil {
		return err
	}

	text, err := commands.ReadInput(args, c.in)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		text = commands.TrimNewline(text, nil)
	}

	var res string
	if c.Cover != "" {
		res, err = codec.Embed(c.Cover, text)
	} else {
		res, err = codec.Encode(text)
	}
	if err != nil {
		return errors.Wrap(err, "could not encode")
	}
	log.Debugf("Encoded %d characters into %d characters using %v and %v",
		utf8.RuneCountInString(text), utf8.RuneCountInString(res), codec.PreEncoder().Name(), codec.Alphabet())

	if c.Show {
		res = commands.ShowDigits(res, codec.Alphabet())
	}
	if !c.NoNewline {
		res += "\n"
	}
	if _, err := fmt.Fprint(c.out, res); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
