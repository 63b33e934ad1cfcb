package errwatchservice

import "errors"

var (
	// ErrNilReport indicates a nil command error report.
	ErrNilReport = errors.New("command error report cannot be nil")

	// ErrThresholdTooLow rejects thresholds below 2: a single error would
	// blacklist on first use.
	ErrThresholdTooLow = errors.New("threshold must be at least 2")

	ErrUnknownIgnoreKind    = errors.New("ignore kind must be guild or channel")
	ErrUnknownWhitelistKind = errors.New("whitelist kind must be user, command or cog")
	ErrEmptyTarget          = errors.New("target cannot be empty")

	ErrAlreadyIgnored = errors.New("already in the ignore list")
	ErrNotIgnored     = errors.New("not in the ignore list")

	ErrAlreadyWhitelisted = errors.New("already in the whitelist")
	ErrNotWhitelisted     = errors.New("not in the whitelist")

	// ErrClearUsageUnchanged is returned when the requested clear-usage state
	// matches the current one.
	ErrClearUsageUnchanged = errors.New("usage clearing is already set to that value")
)
