package resolve

import (
	"testing"

	"lumen/internal/diag"
)

func TestDiagnosticReplayAccountsForEveryFinding(t *testing.T) {
	env := newTestEnv()
	fn := env.fn("f", nil, env.interner.Builtins().Unit)
	cand := env.call(fn)
	completed := env.completed(cand,
		ReportedDiagnostic{Code: diag.InfTypeMismatch, Severity: diag.SevError, Message: "first"},
		SuppressedDiagnostic{Desc: "swallowed constraint", FromSuccess: false},
		ReportedDiagnostic{Code: diag.InfNullabilityMismatch, Severity: diag.SevError, Message: "second"},
		SuppressedDiagnostic{Desc: "ranking-only note", FromSuccess: true},
	)

	env.finalizer().reportCallDiagnostics(completed)

	items := env.bag.Items()
	if len(items) != 4 {
		t.Fatalf("bag holds %d diagnostics, want 4 (2 concrete + 2 fallbacks)", len(items))
	}

	fallbacks := 0
	for _, d := range items {
		if d.Code != diag.ResMissingDiagnostic {
			continue
		}
		fallbacks++
		switch d.Message {
		case "swallowed constraint":
			if d.Severity != diag.SevError {
				t.Errorf("failure-origin fallback severity = %v, want error", d.Severity)
			}
		case "ranking-only note":
			if d.Severity != diag.SevWarning {
				t.Errorf("success-origin fallback severity = %v, want warning", d.Severity)
			}
		default:
			t.Errorf("fallback with unexpected message %q", d.Message)
		}
		callSpan := env.builder.Exprs.Get(cand.CallExpr).Span
		if d.Primary != callSpan {
			t.Errorf("fallback anchored at %v, want the call span %v", d.Primary, callSpan)
		}
	}
	if fallbacks != 2 {
		t.Fatalf("got %d fallback diagnostics, want 2", fallbacks)
	}
}

func TestDiagnosticReplayNeverDoublesReportingFinding(t *testing.T) {
	env := newTestEnv()
	fn := env.fn("f", nil, env.interner.Builtins().Unit)
	completed := env.completed(env.call(fn),
		ReportedDiagnostic{Code: diag.InfTypeMismatch, Severity: diag.SevError, Message: "concrete"},
	)

	env.finalizer().reportCallDiagnostics(completed)

	items := env.bag.Items()
	if len(items) != 1 {
		t.Fatalf("bag holds %d diagnostics, want exactly 1", len(items))
	}
	if items[0].Code == diag.ResMissingDiagnostic {
		t.Fatal("concrete report also triggered the missing-diagnostic fallback")
	}
}

func TestDiagnosticFallbackSwitchOff(t *testing.T) {
	env := newTestEnv()
	env.ctx.ReportMissingDiagnostic = false
	fn := env.fn("f", nil, env.interner.Builtins().Unit)
	completed := env.completed(env.call(fn),
		SuppressedDiagnostic{Desc: "silent", FromSuccess: false},
		ReportedDiagnostic{Code: diag.InfTypeMismatch, Severity: diag.SevError, Message: "loud"},
	)

	env.finalizer().reportCallDiagnostics(completed)

	items := env.bag.Items()
	if len(items) != 1 || items[0].Message != "loud" {
		t.Fatalf("with the safety net off the bag should hold only the concrete report, got %d items", len(items))
	}
}

func TestReportedDiagnosticDefaultAnchor(t *testing.T) {
	env := newTestEnv()
	fn := env.fn("f", nil, env.interner.Builtins().Unit)
	cand := env.call(fn)
	// Zero span on the finding: the replay anchors at the call.
	completed := env.completed(cand,
		ReportedDiagnostic{Code: diag.InfTooManyArguments, Severity: diag.SevError, Message: "surplus"},
	)

	env.finalizer().reportCallDiagnostics(completed)

	items := env.bag.Items()
	callSpan := env.builder.Exprs.Get(cand.CallExpr).Span
	if len(items) != 1 || items[0].Primary != callSpan {
		t.Fatal("zero-span finding not anchored at the call expression")
	}
}
