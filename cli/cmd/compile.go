package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/snowball-go/snowballc"
)

var outDir string

var compileCmd = &cobra.Command{
	Use:   "compile FILE...",
	Short: "Translate multiple .sbl files in one invocation, reporting all failures together",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().StringVar(&outDir, "out-dir", ".", "directory the generated .go files are written to")
	rootCmd.AddCommand(compileCmd)
}

// runCompile translates each file independently, collecting every
// failure instead of stopping at the first (spec §7's CLI batch mode).
func runCompile(cmd *cobra.Command, args []string) error {
	var failures []error
	for _, path := range args {
		if err := compileOne(path); err != nil {
			failures = append(failures, err)
		}
	}
	if len(failures) > 0 {
		return &snowballc.FileErrors{Errors: failures}
	}
	return nil
}

func compileOne(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return &snowballc.IOError{Path: path, Err: err}
	}

	base := filepath.Base(path)
	pkg := packageName
	if pkg == "" {
		pkg = strings.TrimSuffix(base, filepath.Ext(base))
	}

	out, err := snowballc.Compile(string(src), path, snowballc.Options{
		Package: pkg,
		Debug:   debug,
		Logger:  logger().WithField("file", path),
	})
	if err != nil {
		return err
	}

	outPath := filepath.Join(outDir, strings.TrimSuffix(base, filepath.Ext(base))+".go")
	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return &snowballc.IOError{Path: outPath, Err: err}
	}
	fmt.Fprintf(os.Stderr, "%s -> %s\n", path, outPath)
	return nil
}
