// Package driver loads recorded resolution outcomes from *.call.toml
// fixtures and runs call finalization over them: the batch counterpart of
// the in-process API that type checking uses.
package driver

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"lumen/internal/ast"
	"lumen/internal/binding"
	"lumen/internal/diag"
	"lumen/internal/flow"
	"lumen/internal/resolve"
	"lumen/internal/source"
	"lumen/internal/symbols"
	"lumen/internal/types"
)

// FixtureSuffix marks files the driver picks up.
const FixtureSuffix = ".call.toml"

// Fixture is a recorded resolution outcome: the callables in scope, the
// source text the spans point into, and the calls constraint solving
// completed, with their attached diagnostics.
type Fixture struct {
	Source    string            `toml:"source"`
	Callables []FixtureCallable `toml:"callables"`
	Calls     []FixtureCall     `toml:"calls"`
}

type FixtureCallable struct {
	Name       string         `toml:"name"`
	Params     []FixtureParam `toml:"params"`
	Return     string         `toml:"return"`
	Deprecated bool           `toml:"deprecated"`
}

type FixtureParam struct {
	Name    string `toml:"name"`
	Type    string `toml:"type"`
	Default bool   `toml:"default"`
	Vararg  bool   `toml:"vararg"`
}

type FixtureCall struct {
	Callee string `toml:"callee"`
	// Applicability is the recorded verdict; empty means "resolved".
	Applicability string `toml:"applicability"`
	// Stub marks a call inference never completed: only the callee
	// reference gets bound.
	Stub        bool                `toml:"stub"`
	Args        []FixtureArg        `toml:"args"`
	Diagnostics []FixtureDiagnostic `toml:"diagnostics"`
}

// FixtureArg is one supplied argument. Expr holding only digits becomes an
// integer literal; anything else becomes an identifier. Type records the
// provisional type checking had computed for the expression, suffix "?"
// meaning nullable.
type FixtureArg struct {
	Expr    string `toml:"expr"`
	Type    string `toml:"type"`
	Omitted bool   `toml:"omitted"`
}

type FixtureDiagnostic struct {
	Code        uint16 `toml:"code"`
	Severity    string `toml:"severity"`
	Message     string `toml:"message"`
	Suppressed  bool   `toml:"suppressed"`
	FromSuccess bool   `toml:"from_success"`
}

// LoadFixture reads, parses and validates one fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is provided by the caller
	if err != nil {
		return nil, err
	}
	return ParseFixture(path, data)
}

// ParseFixture parses fixture content already read from path.
func ParseFixture(path string, data []byte) (*Fixture, error) {
	var fx Fixture
	meta, err := toml.Decode(string(data), &fx)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("calls") || len(fx.Calls) == 0 {
		return nil, fmt.Errorf("%s: fixture declares no [[calls]]", path)
	}
	byName := make(map[string]bool, len(fx.Callables))
	for i := range fx.Callables {
		name := strings.TrimSpace(fx.Callables[i].Name)
		if name == "" {
			return nil, fmt.Errorf("%s: [[callables]] entry %d has no name", path, i)
		}
		if byName[name] {
			return nil, fmt.Errorf("%s: duplicate callable %q", path, name)
		}
		byName[name] = true
	}
	for i := range fx.Calls {
		callee := strings.TrimSpace(fx.Calls[i].Callee)
		if callee == "" {
			return nil, fmt.Errorf("%s: [[calls]] entry %d has no callee", path, i)
		}
		if !byName[callee] {
			return nil, fmt.Errorf("%s: call %d names unknown callee %q", path, i, callee)
		}
		for _, d := range fx.Calls[i].Diagnostics {
			if _, err := parseSeverity(d.Severity); err != nil {
				return nil, fmt.Errorf("%s: call %d: %w", path, i, err)
			}
		}
		if _, err := parseApplicability(fx.Calls[i].Applicability); err != nil {
			return nil, fmt.Errorf("%s: call %d: %w", path, i, err)
		}
	}
	return &fx, nil
}

// CallOutcome summarizes one finalized call.
type CallOutcome struct {
	Callee string
	Status resolve.Status
}

// FixtureOutcome is the result of finalizing every call in one fixture.
type FixtureOutcome struct {
	Calls []CallOutcome
	// Bound reports how many bindings the run produced, for summaries.
	BoundTypes, BoundCalls, BoundRefs int
}

// scenario owns the arenas one fixture run builds into.
type scenario struct {
	builder   *ast.Builder
	types     *types.Interner
	symbols   *symbols.Table
	store     *binding.Store
	fileID    source.FileID
	src       string
	cursor    int
	callables map[string]symbols.CallableID
	named     map[string]types.TypeID
}

// RunFixture builds the fixture's scenario and finalizes its calls in
// order. sourceID identifies the virtual file carrying fx.Source in fs;
// diagnostics land in reporter.
func RunFixture(fx *Fixture, sourceID source.FileID, reporter diag.Reporter, checkers []resolve.CallChecker, reportMissing bool) (*FixtureOutcome, error) {
	s := &scenario{
		builder:   ast.NewBuilder(ast.Hints{}),
		types:     types.NewInterner(),
		store:     binding.NewStore(),
		fileID:    sourceID,
		src:       fx.Source,
		callables: make(map[string]symbols.CallableID, len(fx.Callables)),
		named:     make(map[string]types.TypeID),
	}
	s.symbols = symbols.NewTable(symbols.Hints{Callables: uint(len(fx.Callables))}, s.builder.Strings)

	for i := range fx.Callables {
		if err := s.declareCallable(&fx.Callables[i]); err != nil {
			return nil, err
		}
	}

	ctx := &resolve.Context{
		Exprs:                   s.builder.Exprs,
		Types:                   s.types,
		Symbols:                 s.symbols,
		Store:                   s.store,
		Reporter:                reporter,
		Checkers:                checkers,
		ReportMissingDiagnostic: reportMissing,
	}
	finalizer := resolve.NewFinalizer(ctx)

	outcome := &FixtureOutcome{Calls: make([]CallOutcome, 0, len(fx.Calls))}
	for i := range fx.Calls {
		fc := &fx.Calls[i]
		view, err := s.finalizeCall(finalizer, fc)
		if err != nil {
			return nil, err
		}
		outcome.Calls = append(outcome.Calls, CallOutcome{Callee: fc.Callee, Status: view.Status()})
	}
	outcome.BoundTypes, outcome.BoundCalls, outcome.BoundRefs = s.store.Len()
	return outcome, nil
}

func (s *scenario) declareCallable(fc *FixtureCallable) error {
	params := make([]symbols.ValueParam, 0, len(fc.Params))
	for i, p := range fc.Params {
		typ, err := s.typeFromName(p.Type)
		if err != nil {
			return fmt.Errorf("callable %q param %d: %w", fc.Name, i, err)
		}
		vp := symbols.ValueParam{
			Name:       s.builder.Intern(p.Name),
			Index:      uint32(i),
			Type:       typ,
			HasDefault: p.Default,
		}
		if p.Vararg {
			vp.VarargElem = typ
		}
		params = append(params, vp)
	}
	ret, err := s.typeFromName(fc.Return)
	if err != nil {
		return fmt.Errorf("callable %q return: %w", fc.Name, err)
	}
	id := s.symbols.NewFunction(s.builder.Intern(fc.Name), s.locate(fc.Name), params, nil, ret)
	if fc.Deprecated {
		s.symbols.Get(id).Flags |= symbols.CallableFlagDeprecated
	}
	s.callables[fc.Name] = id
	return nil
}

// typeFromName resolves a fixture type name: builtins by their usual names,
// everything else as a named type, with a trailing "?" for nullable. An
// empty name means Unit.
func (s *scenario) typeFromName(name string) (types.TypeID, error) {
	name = strings.TrimSpace(name)
	nullable := strings.HasSuffix(name, "?")
	name = strings.TrimSuffix(name, "?")

	var id types.TypeID
	b := s.types.Builtins()
	switch name {
	case "", "Unit":
		id = b.Unit
	case "Int":
		id = b.Int
	case "Float":
		id = b.Float
	case "Bool":
		id = b.Bool
	case "String":
		id = b.String
	case "Error":
		id = b.Error
	default:
		if !isIdentifier(name) {
			return types.NoTypeID, fmt.Errorf("bad type name %q", name)
		}
		named, ok := s.named[name]
		if !ok {
			named = s.types.RegisterNamed(s.builder.Intern(name))
			s.named[name] = named
		}
		id = named
	}
	if nullable {
		id = s.types.Nullable(id)
	}
	return id, nil
}

// finalizeCall lowers one fixture call into candidate/completed form and
// runs it through the finalizer.
func (s *scenario) finalizeCall(f *resolve.Finalizer, fc *FixtureCall) (resolve.ResolvedCall, error) {
	callable := s.callables[fc.Callee]
	desc := s.symbols.Get(callable)

	calleeSpan := s.locate(fc.Callee)
	callee := s.builder.Exprs.NewIdent(calleeSpan, s.builder.Intern(fc.Callee))

	argExprs := make([]ast.ExprID, 0, len(fc.Args))
	supplied := make([]resolve.ValueArgument, 0, len(fc.Args))
	omitted := make([]bool, 0, len(fc.Args))
	callSpan := calleeSpan
	for i := range fc.Args {
		fa := &fc.Args[i]
		if fa.Omitted {
			supplied = append(supplied, resolve.ValueArgument{})
			omitted = append(omitted, true)
			continue
		}
		expr, err := s.buildArgExpr(fa)
		if err != nil {
			return nil, fmt.Errorf("call to %q arg %d: %w", fc.Callee, i, err)
		}
		argExprs = append(argExprs, expr)
		callSpan = callSpan.Cover(s.builder.Exprs.Get(expr).Span)
		supplied = append(supplied, resolve.ValueArgument{Expr: expr, FlowAfter: flow.Empty})
		omitted = append(omitted, false)
	}

	groups, err := s.groupArguments(fc, desc, supplied, omitted)
	if err != nil {
		return nil, err
	}

	call := s.builder.Exprs.NewCall(callSpan, callee, argExprs, ast.NoExprID, false)
	app, _ := parseApplicability(fc.Applicability)
	cand := &resolve.SimpleCandidate{
		Callable:      callable,
		Applicability: app,
		CallExpr:      call,
		CalleeExpr:    callee,
		Arguments:     groups,
	}
	if fc.Stub {
		return f.TransformAndReport(resolve.OnlyResolved{Candidate: cand}), nil
	}
	completed := &resolve.CompletedSimple{
		Candidate:  cand,
		Resulting:  callable,
		Status:     resolve.ResolutionStatus{Diagnostics: s.buildDiagnostics(fc)},
		FlowResult: flow.Empty,
	}
	return f.TransformAndReport(resolve.Completed{Call: completed}), nil
}

// groupArguments maps supplied arguments positionally onto the signature:
// one group per ordinary parameter, the rest absorbed by a vararg parameter,
// a NoArgument group for each defaulted parameter left unsupplied.
func (s *scenario) groupArguments(fc *FixtureCall, desc *symbols.Callable, supplied []resolve.ValueArgument, omitted []bool) (map[uint32]resolve.ResolvedCallArgument, error) {
	groups := make(map[uint32]resolve.ResolvedCallArgument, len(desc.Params))
	ai := 0
	for pi := range desc.Params {
		p := &desc.Params[pi]
		switch {
		case p.IsVararg():
			var rest []resolve.ValueArgument
			for ; ai < len(supplied); ai++ {
				if !omitted[ai] {
					rest = append(rest, supplied[ai])
				}
			}
			if len(rest) > 0 {
				groups[p.Index] = resolve.VarargArgument(rest...)
			}
		case ai < len(supplied):
			if omitted[ai] {
				groups[p.Index] = resolve.NoArgument()
			} else {
				groups[p.Index] = resolve.SimpleArgument(supplied[ai])
			}
			ai++
		case p.HasDefault:
			groups[p.Index] = resolve.NoArgument()
		}
	}
	if ai < len(supplied) {
		return nil, fmt.Errorf("call to %q supplies %d extra argument(s)", fc.Callee, len(supplied)-ai)
	}
	return groups, nil
}

// buildArgExpr lowers one argument into the arena and records its
// provisional type the way type checking would have.
func (s *scenario) buildArgExpr(fa *FixtureArg) (ast.ExprID, error) {
	text := strings.TrimSpace(fa.Expr)
	if text == "" {
		return ast.NoExprID, fmt.Errorf("empty expression")
	}
	span := s.locate(text)

	var expr ast.ExprID
	switch {
	case isInteger(text):
		expr = s.builder.Exprs.NewLit(span, ast.ExprLitInt, s.builder.Intern(text))
		if fa.Type == "" {
			s.store.RecordType(expr, s.types.IntegerLiteral())
		}
	case isIdentifier(text):
		expr = s.builder.Exprs.NewIdent(span, s.builder.Intern(text))
	default:
		return ast.NoExprID, fmt.Errorf("unsupported expression %q", text)
	}
	if fa.Type != "" {
		typ, err := s.typeFromName(fa.Type)
		if err != nil {
			return ast.NoExprID, err
		}
		s.store.RecordType(expr, typ)
	}
	return expr, nil
}

func (s *scenario) buildDiagnostics(fc *FixtureCall) []resolve.CallDiagnostic {
	if len(fc.Diagnostics) == 0 {
		return nil
	}
	out := make([]resolve.CallDiagnostic, 0, len(fc.Diagnostics))
	for _, d := range fc.Diagnostics {
		if d.Suppressed {
			out = append(out, resolve.SuppressedDiagnostic{Desc: d.Message, FromSuccess: d.FromSuccess})
			continue
		}
		sev, _ := parseSeverity(d.Severity)
		out = append(out, resolve.ReportedDiagnostic{
			Code:        diag.Code(d.Code),
			Severity:    sev,
			Message:     d.Message,
			FromSuccess: d.FromSuccess,
		})
	}
	return out
}

// locate finds the next occurrence of token in the fixture source, scanning
// forward so repeated tokens get successive spans. Tokens absent from the
// source get an empty span at the file start.
func (s *scenario) locate(token string) source.Span {
	if token == "" {
		return source.Span{File: s.fileID}
	}
	idx := strings.Index(s.src[s.cursor:], token)
	if idx >= 0 {
		idx += s.cursor
	} else {
		idx = strings.Index(s.src, token)
	}
	if idx < 0 {
		return source.Span{File: s.fileID}
	}
	s.cursor = idx + len(token)
	// #nosec G115 -- fixture sources are small
	return source.Span{File: s.fileID, Start: uint32(idx), End: uint32(idx + len(token))}
}

func parseApplicability(s string) (resolve.Applicability, error) {
	switch strings.TrimSpace(s) {
	case "", "resolved":
		return resolve.ApplicabilityResolved, nil
	case "resolved-low-priority":
		return resolve.ApplicabilityResolvedLowPriority, nil
	case "resolved-with-error":
		return resolve.ApplicabilityResolvedWithError, nil
	case "inapplicable":
		return resolve.ApplicabilityInapplicable, nil
	case "unknown":
		return resolve.ApplicabilityUnknown, nil
	default:
		return resolve.ApplicabilityUnknown, fmt.Errorf("bad applicability %q", s)
	}
}

func parseSeverity(s string) (diag.Severity, error) {
	switch strings.TrimSpace(s) {
	case "", "error":
		return diag.SevError, nil
	case "warning":
		return diag.SevWarning, nil
	case "info":
		return diag.SevInfo, nil
	default:
		return diag.SevInfo, fmt.Errorf("bad severity %q", s)
	}
}

func isInteger(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isIdentifier(s string) bool {
	for i, r := range s {
		alpha := r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !alpha && (i == 0 || r < '0' || r > '9') {
			return false
		}
	}
	return len(s) > 0
}
