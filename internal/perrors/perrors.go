// Package perrors defines the small enumerated error taxonomy shared by the
// imposition engine, the cover/template engine, and the cost estimator.
// Configuration and external errors are ordinary wrapped errors carrying a
// Kind; callers that need to branch on the kind use Kind(err) rather than
// type-asserting a concrete error type, following the %w-wrapping style
// SlabCut's export package uses for its own failures.
package perrors

import (
	"errors"
	"fmt"
)

// ErrorKind enumerates the configuration, external, and control error
// categories from the print-core error handling design.
type ErrorKind int

const (
	// Configuration errors, surfaced at plan time before any output exists.
	InvalidGeometry ErrorKind = iota
	LayoutExceedsSheet
	BleedExceedsPage
	InvalidPageCountForBinding
	UnknownPaperSku
	FinishedSizeDoesNotFitPaper
	CoverSpreadDoesNotFitCover

	// External errors, propagated from an injected collaborator.
	PdfParseError
	PdfRenderError
	QrGenerationError

	// Control errors.
	Cancelled
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidGeometry:
		return "InvalidGeometry"
	case LayoutExceedsSheet:
		return "LayoutExceedsSheet"
	case BleedExceedsPage:
		return "BleedExceedsPage"
	case InvalidPageCountForBinding:
		return "InvalidPageCountForBinding"
	case UnknownPaperSku:
		return "UnknownPaperSku"
	case FinishedSizeDoesNotFitPaper:
		return "FinishedSizeDoesNotFitPaper"
	case CoverSpreadDoesNotFitCover:
		return "CoverSpreadDoesNotFitCover"
	case PdfParseError:
		return "PdfParseError"
	case PdfRenderError:
		return "PdfRenderError"
	case QrGenerationError:
		return "QrGenerationError"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Error is a kinded, human-readable error. Detail is the message a caller
// can surface directly to a user; it is independent of Kind (spec §7).
type Error struct {
	Kind   ErrorKind
	Detail string
	Cause  error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds a kinded error with no underlying cause.
func New(kind ErrorKind, detail string) error {
	return &Error{Kind: kind, Detail: detail}
}

// Wrap builds a kinded error around an underlying cause, used for the
// External category (PdfParseError, PdfRenderError, QrGenerationError)
// where a collaborator library's own error needs to be preserved.
func Wrap(kind ErrorKind, detail string, cause error) error {
	return &Error{Kind: kind, Detail: detail, Cause: cause}
}

// Kind recovers the ErrorKind from err, walking the Unwrap chain. The
// second return is false if err does not carry a perrors.Error anywhere in
// its chain.
func Kind(err error) (ErrorKind, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

// Is reports whether err's kind (anywhere in its chain) equals kind.
func Is(err error, kind ErrorKind) bool {
	k, ok := Kind(err)
	return ok && k == kind
}

// ErrCancelled is the sentinel returned when a cooperative cancellation
// token fires mid-job. errors.Is(err, ErrCancelled) matches it by identity,
// and Is(err, Cancelled) matches it by its Kind.
var ErrCancelled = New(Cancelled, "operation cancelled")
