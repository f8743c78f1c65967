package main

import (
	"fmt"
	"github.com/bokysan/vspace/internal/args"
	"github.com/bokysan/vspace/internal/commands/decode"
	"github.com/bokysan/vspace/internal/commands/encode"
	"github.com/bokysan/vspace/internal/commands/info"
	"github.com/bokysan/vspace/internal/commands/serve"
	"github.com/bokysan/vspace/internal/commands/version"
	vsFlags "github.com/bokysan/vspace/internal/flags"
	"github.com/bokysan/vspace/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// VSpace is the main executable
type VSpace struct {
	parser *flags.Parser
}

// NewVSpace will create a new instance of VSpace and initialize the parser
func NewVSpace() *VSpace {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	vs := &VSpace{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	vs.setupGeneral()
	vs.addCommand("version", "Print the version", "Print the application version and exit", &version.Command{})
	vs.addCommand("encode", "Encode text",
		"Encode the arguments (or the standard input) into invisible characters", encode.NewCommand())
	vs.addCommand("decode", "Decode text",
		"Decode the arguments (or the standard input) back into readable text", decode.NewCommand())
	vs.addCommand("info", "Show codec details",
		"Show the alphabet, the pre-encoder and the number of characters needed per symbol", info.NewCommand())
	vs.addCommand("serve", "Run the HTTP API",
		"Serve the encode, decode and info operations over HTTP", serve.NewCommand())

	return vs
}

// setupGeneral will configure general options
func (vs *VSpace) setupGeneral() {
	if _, err := vs.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

func (vs *VSpace) addCommand(name, short, long string, cmd interface{}) {
	_, err := vs.parser.AddCommand(name, short, long, cmd)
	util.MustErrorNilOrExit(err)
}

// main starts vspace and reads the configuration file
func main() {

	vSpace := NewVSpace()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := vsFlags.NewYamlParser(vSpace.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := vSpace.parser.Parse()
	util.MustErrorNilOrExit(err)

}
