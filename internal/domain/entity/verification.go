package entity

import "fmt"

// AttestationMessage renders the signable attestation binding identity,
// phone number and code for the 2FA mint call. The layout is fixed by the
// middleware's verifier.
func AttestationMessage(identity, phoneNumber, code string) string {
	return fmt.Sprintf("Identity: %s Phone Number: %s Code: %s", identity, phoneNumber, code)
}
