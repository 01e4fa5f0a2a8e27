// Package gologo is the root of a Logo dialect interpreter with turtle
// graphics output. The interpreter core lives under pkg/: lexer, parser,
// static validator, and evaluator, plus the shared runtime facade that
// wires them together. The gologo CLI under cmd/ adds rendering to SVG
// and PNG and an interactive session.
package gologo

// Version is the release version reported by the CLI.
const Version = "0.3.1"
