package service

import "context"

// Challenge is the login challenge issued by the middleware. Cookie carries
// the Set-Cookie values of the challenge response joined with "; "; it
// becomes the session token once the signature check passes.
type Challenge struct {
	Challenge string
	Expires   string
	Cookie    string
}

// TwoFactorTicket is the middleware's answer to a code dispatch request.
type TwoFactorTicket struct {
	Success bool
	Message string
}

// MintRequest is the signed 2FA verification submitted to finalize a claim.
type MintRequest struct {
	Address     string
	PhoneNumber string
	Code        string
	Signature   string
}

// SessionGateway is the HTTP middleware the workflow authenticates against.
// Every call is blocking and carries the session cookie explicitly; the
// gateway holds no per-identity state.
type SessionGateway interface {
	// GetChallenge requests a login challenge and captures the session
	// cookie from the response headers.
	GetChallenge(ctx context.Context) (*Challenge, error)

	// CheckSignature submits address + signature for the challenge,
	// attaching the challenge cookie. A non-2xx response is an error.
	CheckSignature(ctx context.Context, address, signature, cookie string) error

	// CheckSession verifies that a cached cookie still authenticates.
	CheckSession(ctx context.Context, cookie string) error

	// StoreMetadata uploads the token metadata for a soul name and
	// returns the resulting storage transaction id.
	StoreMetadata(ctx context.Context, cookie, soulName string) (string, error)

	// GenerateCode triggers the SMS dispatch for the phone number.
	GenerateCode(ctx context.Context, cookie, phoneNumber string) (*TwoFactorTicket, error)

	// MintWithCode submits the signed verification request.
	MintWithCode(ctx context.Context, cookie string, req MintRequest) error
}
