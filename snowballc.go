// Package snowballc compiles Snowball stemming-algorithm source into a
// standalone Go package. Parsing builds an AST against a fresh Session
// (parser.Parse); code generation lowers that AST through a fresh Env
// (ast.ProgramNode.Generate) onto the runtime package's StringMachine.
package snowballc

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/snowball-go/snowballc/ast"
	"github.com/snowball-go/snowballc/parser"
)

// IOError wraps a read or write failure encountered while compiling a
// file, distinguishing it from a parse error on well-read source.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("%s: %s", e.Path, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// FileErrors collects the per-file failures from a multi-file batch
// compile, reported together rather than aborting at the first one (the
// CLI's multi-file mode is the one place this compiler accumulates
// errors instead of stopping at the first, unlike parser.Parse itself).
type FileErrors struct {
	Errors []error
}

func (e *FileErrors) Error() string {
	var msg strings.Builder
	fmt.Fprintf(&msg, "%d file(s) failed to compile:\n", len(e.Errors))
	for _, err := range e.Errors {
		fmt.Fprintf(&msg, "  %s\n", err)
	}
	return msg.String()
}

// Options controls one Compile call.
type Options struct {
	// Package is the package name given to the generated Go source.
	Package string
	// Debug makes each generated external entry point return the
	// *runtime.StringMachine and the *Program it ran instead of the result
	// string, so callers can inspect cursor, limit and declared variables
	// afterward.
	Debug bool
	// Logger receives diagnostics as the compiler runs. Defaults to
	// logrus.StandardLogger() when nil.
	Logger logrus.FieldLogger
}

// Compile translates the Snowball source in src (whose original path is
// file, used only for error positions) into a complete Go source file.
func Compile(src, file string, opts Options) (string, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	pkg := opts.Package
	if pkg == "" {
		pkg = "stemmer"
	}

	logger.WithField("file", file).Debug("parsing snowball source")
	program, err := parser.Parse(src, file, pkg)
	if err != nil {
		logger.WithError(err).Warn("parse failed")
		return "", fmt.Errorf("parsing %s: %w", file, err)
	}

	env := ast.NewEnv()
	env.Debug = opts.Debug
	logger.WithField("file", file).Debug("generating go source")
	out := program.Generate(env)
	if env.Err != nil {
		logger.WithError(env.Err).Warn("generation failed")
		return "", fmt.Errorf("generating %s: %w", file, env.Err)
	}
	return out, nil
}
