package horizon

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	ErrFHNeitherFitNorPredict = errors.New("fh must be passed either to fit or predict, but was found in neither")
	ErrFHRequiredInFit        = errors.New("fh must be passed to fit for this forecaster")
	ErrFHChangedAfterFit      = errors.New("fh differs from the one passed to fit; re-fit the forecaster to change it")
)

// Policy selects how a forecaster treats the forecasting horizon across fit
// and predict. Different forecasting algorithms have structurally different
// dependence on the horizon: direct multi-step models must know fh before
// fitting while recursive ones can accept it as late as predict. The policy
// is a value selected at construction so the shared update and predict
// machinery stays identical across both kinds.
type Policy int

const (
	// OptionalInFit allows fh to be supplied at fit time or deferred to
	// predict time.
	OptionalInFit Policy = iota
	// RequiredInFit requires fh to be fixed at or before the first fit,
	// immutable thereafter except via re-fit.
	RequiredInFit
)

func (p Policy) String() string {
	switch p {
	case RequiredInFit:
		return "required-in-fit"
	default:
		return "optional-in-fit"
	}
}

// ValidateAndSet applies the policy to a candidate fh given the forecaster's
// fitted state and any previously stored horizon, returning the horizon to
// use from here on. Under OptionalInFit a mismatching fh after fit is
// non-fatal: a warning is logged and the new value takes precedence. Under
// RequiredInFit the same situation is an error.
func (p Policy) ValidateAndSet(logger zerolog.Logger, fh FH, fitted bool, existing FH) (FH, error) {
	switch p {
	case RequiredInFit:
		return requiredInFit(fh, fitted, existing)
	default:
		return optionalInFit(logger, fh, fitted, existing)
	}
}

func optionalInFit(logger zerolog.Logger, fh FH, fitted bool, existing FH) (FH, error) {
	if fh == nil {
		if fitted && existing == nil {
			return nil, ErrFHNeitherFitNorPredict
		}
		// either not fitted yet and fh may still arrive at predict, or an
		// existing horizon is already in place
		return existing, nil
	}

	checked, err := CheckFH(fh)
	if err != nil {
		return nil, err
	}
	if fitted && existing != nil && !checked.Equal(existing) {
		logger.Warn().
			Ints("previous", []int(existing)).
			Ints("new", []int(checked)).
			Msg("fh differs from the previous one; the new value takes precedence")
	}
	return checked, nil
}

func requiredInFit(fh FH, fitted bool, existing FH) (FH, error) {
	if fh == nil {
		if !fitted {
			return nil, ErrFHRequiredInFit
		}
		// steady state, fh already fixed at fit
		return existing, nil
	}

	checked, err := CheckFH(fh)
	if err != nil {
		return nil, err
	}
	if fitted {
		if !checked.Equal(existing) {
			return nil, fmt.Errorf("fit saw %v but got %v, %w", existing, checked, ErrFHChangedAfterFit)
		}
		return existing, nil
	}
	return checked, nil
}
