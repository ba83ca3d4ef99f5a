// Command ipparse translates IPPcode24 source into its XML representation.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/ipparse/config"
	"github.com/sarchlab/ipparse/core"
)

// paramsError marks a bad command line.
type paramsError struct {
	err error
}

func (e paramsError) Error() string {
	return e.err.Error()
}

func (e paramsError) Unwrap() error {
	return e.err
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var opts config.Options

	cmd := &cobra.Command{
		Use:   "ipparse [sourceFile]",
		Short: "Translate IPPcode24 source into XML",
		Long: `Ipparse reads one IPPcode24 program from sourceFile, or from standard
input when no file is given, checks it line by line and writes its XML
representation to standard output.

Nothing is written to standard output unless the whole program is valid.
Logs, the lint report, the listing and tree dumps go to standard error.

Exit codes:
  0   success
  10  bad command line
  11  cannot read the input
  12  cannot write the output
  21  missing or misplaced .IPPcode24 header, or no instructions
  22  unknown opcode
  23  any other lexical or syntactic error
  99  internal error`,

		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return paramsError{err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.Input = args[0]
			}

			if err := opts.Validate(); err != nil {
				return paramsError{err}
			}

			return translate(opts, stdin, stdout, stderr)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return paramsError{err}
	})

	flags := cmd.Flags()
	flags.BoolVar(&opts.Lint, "lint", false, "write a lint report to standard error")
	flags.BoolVar(&opts.Listing, "listing", false, "write an instruction listing to standard error")
	flags.StringVar(&opts.Dump, "dump", "", "dump the document tree to standard error (yaml or pp)")
	flags.CountVarP(&opts.Verbose, "verbose", "v", "log more; repeat for trace output")

	return cmd
}

func translate(opts config.Options, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := opts.NewLogger(stderr)

	src := stdin
	if opts.Input != "" {
		f, err := os.Open(opts.Input)
		if err != nil {
			return &core.Error{Kind: core.KindInput, Msg: "cannot open source", Err: err}
		}
		defer f.Close()
		src = f
	}

	logger.Debug("translating", "input", inputName(opts.Input))

	return opts.DriverBuilder(stdout, stderr, logger).Build().Run(src)
}

func inputName(path string) string {
	if path == "" {
		return "<stdin>"
	}
	return path
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "ipparse: internal error: %v\n", r)
			code = core.ExitInternal
		}
	}()

	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return core.ExitOK
	}

	fmt.Fprintf(stderr, "ipparse: %v\n", err)

	var pe paramsError
	if errors.As(err, &pe) {
		return core.ExitParams
	}

	return core.ExitCode(err)
}

func main() {
	// Logs and reports are buffered; the document on stdout is not, so a
	// failing write still shows up in the exit code.
	diag := bufio.NewWriter(os.Stderr)
	atexit.Register(func() {
		diag.Flush()
	})

	atexit.Exit(run(os.Args[1:], os.Stdin, os.Stdout, diag))
}
