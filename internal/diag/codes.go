package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Inference diagnostics: produced by constraint solving and attached to
	// completed calls; the finalizer only replays them.
	InfInfo                  Code = 1000
	InfTypeMismatch          Code = 1001
	InfNullabilityMismatch   Code = 1002
	InfTooManyArguments      Code = 1003
	InfNoValueForParameter   Code = 1004
	InfAmbiguousCandidate    Code = 1005
	InfUnresolvedTypeParam   Code = 1006
	InfVarargOutsideCall     Code = 1007
	InfSmartCastImpossible   Code = 1008
	InfConstantOutOfRange    Code = 1009
	InfCallableExpected      Code = 1010
	InfRecursiveTypeVariable Code = 1011

	// Resolution finalization diagnostics.
	ResInfo              Code = 2000
	ResMissingDiagnostic Code = 2001

	// Call checker diagnostics.
	ChkInfo               Code = 3000
	ChkDeprecatedCallable Code = 3001
	ChkUnusedReturnValue  Code = 3002
	ChkDefaultedParameter Code = 3003

	// Driver / IO.
	IOLoadFileError   Code = 4000
	IOFixtureError    Code = 4001
	IOCacheReadError  Code = 4002
	IOCacheWriteError Code = 4003
	IOManifestError   Code = 4004

	// Observability.
	ObsInfo    Code = 5000
	ObsTimings Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	InfInfo:                  "inference information",
	InfTypeMismatch:          "argument type mismatch",
	InfNullabilityMismatch:   "nullable value where non-null expected",
	InfTooManyArguments:      "too many arguments",
	InfNoValueForParameter:   "no value passed for parameter",
	InfAmbiguousCandidate:    "ambiguous overload candidates",
	InfUnresolvedTypeParam:   "cannot infer type parameter",
	InfVarargOutsideCall:     "spread outside of vararg position",
	InfSmartCastImpossible:   "smart cast is impossible",
	InfConstantOutOfRange:    "constant out of range for inferred type",
	InfCallableExpected:      "expression is not callable",
	InfRecursiveTypeVariable: "recursive type variable constraint",

	ResInfo:              "resolution information",
	ResMissingDiagnostic: "missing diagnostic",

	ChkInfo:               "checker information",
	ChkDeprecatedCallable: "call to deprecated declaration",
	ChkUnusedReturnValue:  "result of call is unused",
	ChkDefaultedParameter: "argument omitted, default value used",

	IOLoadFileError:   "I/O load file error",
	IOFixtureError:    "malformed call fixture",
	IOCacheReadError:  "finalization cache read failed",
	IOCacheWriteError: "finalization cache write failed",
	IOManifestError:   "malformed project manifest",

	ObsInfo:    "observability information",
	ObsTimings: "pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("INF%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("RES%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("CHK%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
