package cmd

import (
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/snowball-go/snowballc"
	"github.com/snowball-go/snowballc/parser"
)

var showAST bool

func init() {
	rootCmd.Flags().BoolVarP(&showAST, "ast", "a", false, "print the parsed AST instead of generating code")
	rootCmd.Args = cobra.MaximumNArgs(2)
	rootCmd.RunE = runTranslate
}

// runTranslate implements `snowballc [INFILE] [OUTFILE] [-d|--debug]`:
// read INFILE (default stdin), compile it, and write the generated Go
// source to OUTFILE (default stdout).
func runTranslate(cmd *cobra.Command, args []string) error {
	in := os.Stdin
	inPath := "<stdin>"
	if len(args) >= 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return &snowballc.IOError{Path: args[0], Err: err}
		}
		defer f.Close()
		in = f
		inPath = args[0]
	}

	src, err := io.ReadAll(in)
	if err != nil {
		return &snowballc.IOError{Path: inPath, Err: err}
	}

	if showAST {
		program, err := parser.Parse(string(src), inPath, packageName)
		if err != nil {
			logger().WithField("file", inPath).Error(err)
			return err
		}
		repr.Println(program)
		return nil
	}

	out, err := snowballc.Compile(string(src), inPath, snowballc.Options{
		Package: packageName,
		Debug:   debug,
		Logger:  logger(),
	})
	if err != nil {
		logger().WithField("file", inPath).Error(err)
		return err
	}

	w := os.Stdout
	outPath := "<stdout>"
	if len(args) == 2 {
		f, err := os.Create(args[1])
		if err != nil {
			return &snowballc.IOError{Path: args[1], Err: err}
		}
		defer f.Close()
		w = f
		outPath = args[1]
	}
	if _, err := io.WriteString(w, out); err != nil {
		return &snowballc.IOError{Path: outPath, Err: err}
	}
	return nil
}
