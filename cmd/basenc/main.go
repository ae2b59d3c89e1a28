package main

import (
	"fmt"
	"github.com/bokysan/basenc/internal/args"
	"github.com/bokysan/basenc/internal/commands/decode"
	"github.com/bokysan/basenc/internal/commands/encode"
	"github.com/bokysan/basenc/internal/commands/list"
	"github.com/bokysan/basenc/internal/commands/version"
	bnFlags "github.com/bokysan/basenc/internal/flags"
	"github.com/bokysan/basenc/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// BaseNC is the main executable
type BaseNC struct {
	parser *flags.Parser
	encode *encode.Command
	decode *decode.Command
}

// NewBaseNC will create a new instance of BaseNC and initialize the parser
func NewBaseNC() *BaseNC {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	bn := &BaseNC{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	bn.setupGeneral()
	bn.setupConfiguration()
	bn.setupVersion()
	bn.setupEncode()
	bn.setupDecode()
	bn.setupList()

	return bn
}

// setupGeneral will configure general options
func (bn *BaseNC) setupGeneral() {
	if _, err := bn.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupConfiguration makes `-c` read the YAML configuration file
func (bn *BaseNC) setupConfiguration() {
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			return &flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: fmt.Sprintf("Configuration file %s does not exist.", file),
			}
		}

		yamlParser := bnFlags.NewYamlParser(bn.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}
}

// setupVersion adds the `version` command
func (bn *BaseNC) setupVersion() {
	cmd := &version.Command{}
	_, err := bn.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (bn *BaseNC) setupEncode() {
	cmd := encode.NewCommand()
	bn.encode = cmd
	_, err := bn.parser.AddCommand(
		"encode",
		"Encode data",
		"Encode the input files (or stdin) into text",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (bn *BaseNC) setupDecode() {
	cmd := decode.NewCommand()
	bn.decode = cmd
	_, err := bn.parser.AddCommand(
		"decode",
		"Decode data",
		"Decode the encoded input files (or stdin) back into binary data",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupList adds the `list` command
func (bn *BaseNC) setupList() {
	cmd := &list.Command{}
	_, err := bn.parser.AddCommand(
		"list",
		"List encodings",
		"List the available encodings and their properties",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main starts basenc and reads the configuration file
func main() {
	baseNC := NewBaseNC()
	_, err := baseNC.parser.Parse()
	util.MustErrorNilOrExit(err)
}
