// Package errors defines the expected per-run failure taxonomy. Each value
// carries a stable code and the one operator-facing message line for that
// terminal outcome; unexpected failures use plain wrapped errors instead.
package errors

// RunError is an expected, terminal failure of a single identity's run. It
// never aborts the batch.
type RunError struct {
	code    string
	message string
}

// NewRunError creates a run error with a stable code and operator message.
func NewRunError(code, message string) *RunError {
	return &RunError{code: code, message: message}
}

// Error implements the error interface.
func (e *RunError) Error() string {
	return e.message
}

// Code returns the stable machine code for the outcome.
func (e *RunError) Code() string {
	return e.code
}

// Message returns the operator-facing message line.
func (e *RunError) Message() string {
	return e.message
}

// Predefined run failures.
var (
	// ErrSkipUnsaved short-circuits identities without a persisted session
	// when the batch is marked skip-unsaved.
	ErrSkipUnsaved = NewRunError(
		"SKIP_UNSAVED",
		"Skip profile without saved cookies",
	)

	// ErrAuthentication covers both a failed login and a cached session
	// that no longer passes the session check.
	ErrAuthentication = NewRunError(
		"AUTHENTICATION_FAILED",
		"Authentication error: login or session check failed",
	)

	// ErrWalletRead reports an unreadable native-currency balance; the
	// purchase gate cannot be evaluated without it.
	ErrWalletRead = NewRunError(
		"WALLET_READ_FAILED",
		"Could not read the wallet balance",
	)

	// ErrBalanceUnknown reports an unreadable token balance; without a
	// trustworthy count the purchase quota cannot be enforced.
	ErrBalanceUnknown = NewRunError(
		"BALANCE_UNKNOWN",
		"Could not read the soul name token balance, not purchasing",
	)

	// ErrInsufficientFunds gates purchases on the native-currency floor.
	ErrInsufficientFunds = NewRunError(
		"INSUFFICIENT_FUNDS",
		"Wallet balance < 0.1, can't mint. Use faucets like https://goerlifaucet.com/ or https://faucets.chain.link/",
	)

	// ErrPoolExhausted terminates the availability walk once every pool
	// candidate has been checked and rejected.
	ErrPoolExhausted = NewRunError(
		"POOL_EXHAUSTED",
		"No available soul name left in the candidate pool",
	)

	// ErrNoIdentity reports an address without an identity token after the
	// purchase phase.
	ErrNoIdentity = NewRunError(
		"NO_IDENTITY",
		"The address does not have an identity ID",
	)

	// ErrCodeGeneration reports a rejected 2FA dispatch request.
	ErrCodeGeneration = NewRunError(
		"CODE_GENERATION_FAILED",
		"Code generation error",
	)

	// ErrCodePrompt reports a failed or aborted operator code prompt.
	ErrCodePrompt = NewRunError(
		"CODE_PROMPT_FAILED",
		"No verification code entered",
	)

	// ErrVerificationRejected reports a 2FA mint rejected by the service
	// (wrong code, expired challenge). The operator may re-run the flow.
	ErrVerificationRejected = NewRunError(
		"VERIFICATION_REJECTED",
		"Verification failed! See logs...",
	)
)
