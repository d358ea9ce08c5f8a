package errorvalues

import (
	"errors"
	"fmt"
)

// Kinds. Every sentinel below wraps exactly one of them, the api layer maps
// kinds to status codes.
var (
	ErrValidation = errors.New("validation error")
	ErrAuth       = errors.New("authentication error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

var (
	ErrInvalidWallet    = fmt.Errorf("%w: invalid wallet address", ErrValidation)
	ErrInvalidDate      = fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	ErrNegativeAmount   = fmt.Errorf("%w: amount can't be negative", ErrValidation)
	ErrSelfReferral     = fmt.Errorf("%w: cannot use your own referral code", ErrValidation)
	ErrUserNotFound     = fmt.Errorf("%w: user not found", ErrAuth)
	ErrInvalidSignature = fmt.Errorf("%w: invalid signature", ErrAuth)
	ErrUnauthenticated  = fmt.Errorf("%w: unauthenticated", ErrAuth)
	ErrInvalidToken     = fmt.Errorf("%w: invalid token", ErrAuth)
	ErrSessionNotFound  = fmt.Errorf("%w: session not found", ErrAuth)
	ErrNonceConsumed    = fmt.Errorf("%w: nonce already used", ErrAuth)
	ErrIdentityNotFound = fmt.Errorf("%w: user doesn't exist", ErrNotFound)
	ErrTaskNotFound     = fmt.Errorf("%w: task doesn't exist", ErrNotFound)
	ErrReminderNotFound = fmt.Errorf("%w: reminder doesn't exist", ErrNotFound)
	ErrReferrerNotFound = fmt.Errorf("%w: invalid referral code", ErrNotFound)
	ErrReferralUsed     = fmt.Errorf("%w: you have already used a referral code", ErrConflict)
	ErrReferralCodeSet  = fmt.Errorf("%w: referral code already generated", ErrConflict)
	ErrReferralTaken    = fmt.Errorf("%w: referral code taken", ErrConflict)
)

// ValidationFailed wraps a validator message into the validation kind.
func ValidationFailed(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
