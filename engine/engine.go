// Package engine orchestrates the compilation pipeline: load patterns,
// load a grammar against them, compute FIRST/FOLLOW, build the parse
// table, and hand back a Grammar ready to drive the predictive parser
// against input text.
package engine

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"

	"github.com/shadowCow/llspecparse-go/grammar"
	"github.com/shadowCow/llspecparse-go/lexer"
	"github.com/shadowCow/llspecparse-go/ll1"
	"github.com/shadowCow/llspecparse-go/parsetree"
	"github.com/shadowCow/llspecparse-go/patterns"
)

var log = commonlog.GetLogger("llspecparse.engine")

// Grammar is a fully compiled lexspec + grammarspec pair: patterns
// loaded, productions loaded and classified, FIRST/FOLLOW computed, and
// the LL(1) table built. It is immutable after Compile returns and safe
// for concurrent use by multiple Parse calls.
type Grammar struct {
	patterns *patterns.Store
	grammar  *grammar.Grammar
	first    *ll1.FirstSets
	follow   *ll1.FollowSets
	table    *ll1.Table
	tok      *lexer.Tokenizer
	parser   *ll1.Parser
}

// Option configures a Compile call.
type Option func(*options)

type options struct {
	logScope string
}

// WithLogScope tags every log line this compilation emits with scope, in
// addition to its correlation id. Useful when a caller compiles several
// grammars and wants to tell their logs apart.
func WithLogScope(scope string) Option {
	return func(o *options) { o.logScope = scope }
}

// Compile loads a lexical specification and a grammar specification from
// in-memory text and builds a ready-to-parse Grammar.
func Compile(lexSpec, grammarSpec string, opts ...Option) (*Grammar, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	correlationID := uuid.New().String()
	scope := correlationID
	if cfg.logScope != "" {
		scope = cfg.logScope + " " + correlationID
	}

	log.Infof("[%s] loading pattern store", scope)
	store, err := patterns.Load(lexSpec)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	log.Infof("[%s] loading grammar", scope)
	g, err := grammar.LoadGrammar(grammarSpec, store)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	log.Debugf("[%s] computing FIRST sets", scope)
	first := ll1.ComputeFirst(g)

	log.Debugf("[%s] computing FOLLOW sets", scope)
	follow := ll1.ComputeFollow(g, first)

	log.Debugf("[%s] building parse table", scope)
	table := ll1.BuildTable(g, first, follow)

	if conflicts := ll1.DetectConflicts(g, first, follow); len(conflicts) > 0 {
		log.Warningf("[%s] %d parse table cell(s) had competing alternatives; last write won", scope, len(conflicts))
	}

	return &Grammar{
		patterns: store,
		grammar:  g,
		first:    first,
		follow:   follow,
		table:    table,
		tok:      lexer.New(store),
		parser:   ll1.NewParser(g, table),
	}, nil
}

// CompileFiles reads the two spec files from disk and compiles them.
func CompileFiles(lexPath, grammarPath string, opts ...Option) (*Grammar, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	correlationID := uuid.New().String()
	scope := correlationID
	if cfg.logScope != "" {
		scope = cfg.logScope + " " + correlationID
	}

	log.Infof("[%s] loading pattern store from %s", scope, lexPath)
	store, err := patterns.LoadFile(lexPath)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	log.Infof("[%s] loading grammar from %s", scope, grammarPath)
	g, err := grammar.LoadGrammarFile(grammarPath, store)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	first := ll1.ComputeFirst(g)
	follow := ll1.ComputeFollow(g, first)
	table := ll1.BuildTable(g, first, follow)

	if conflicts := ll1.DetectConflicts(g, first, follow); len(conflicts) > 0 {
		log.Warningf("[%s] %d parse table cell(s) had competing alternatives; last write won", scope, len(conflicts))
	}

	return &Grammar{
		patterns: store,
		grammar:  g,
		first:    first,
		follow:   follow,
		table:    table,
		tok:      lexer.New(store),
		parser:   ll1.NewParser(g, table),
	}, nil
}
