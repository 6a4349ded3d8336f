package entity

import "fmt"

// loginMessageTemplate is the fixed text the middleware expects to be signed
// during challenge/response login. The embedded expiry and challenge come
// from the get-challenge response verbatim.
const loginMessageTemplate = `Welcome to 🌽Masa Finance!

Login with your soulbound web3 identity to unleash the power of DeFi.

Your signature is valid till: %s.
Challenge: %s`

// LoginMessage renders the signable login message for a challenge.
func LoginMessage(expires, challenge string) string {
	return fmt.Sprintf(loginMessageTemplate, expires, challenge)
}
