package forecastcv

import "errors"

var (
	ErrNotFitted                = errors.New("forecaster has not been fitted yet; call Fit first")
	ErrExogenousNotSupported    = errors.New("exogenous variables are not supported")
	ErrPredIntervalNotSupported = errors.New("prediction intervals are not supported for this operation")
	ErrWindowTooLarge           = errors.New("window length is larger than the current observation horizon")
	ErrInvalidAlpha             = errors.New("alpha must be in the open interval (0, 1)")
	ErrInsufficientHistory      = errors.New("insufficient observation history")
)
