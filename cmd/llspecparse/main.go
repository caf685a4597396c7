/*
Llspecparse compiles a lexical specification and a grammar specification,
then parses a single input string against them.

Usage:

	llspecparse [--debug] [--config path.toml] <lexspec-file> <grammarspec-file> <input-string>

Exit code 0 on a successful parse; 1 if the lexspec or grammarspec fails
to load; 2 if tokenizing or parsing the input fails. The parse tree, or
the failing diagnostic, is written to standard output.
*/
package main

import (
	"os"

	_ "github.com/tliron/commonlog/simple"

	"github.com/shadowCow/llspecparse-go/cliapp"
)

func main() {
	os.Exit(cliapp.Main(os.Args[1:]))
}
