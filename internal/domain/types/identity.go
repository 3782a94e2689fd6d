package types

import (
	"encoding/hex"
	"fmt"
)

// Credentials is a freshly generated signing identity with a free-form
// comment, as handed to the user.
type Credentials struct {
	Keys    SigningKeyPair
	Comment string
}

// Text renders the credentials in the block format the service accepts
// for pasting: user is the public key, pass the secret key, both in hex.
func (c Credentials) Text() string {
	return fmt.Sprintf("%%%%user:%s%%\n%%pass:%s%%\n%%%s%%%%",
		hex.EncodeToString(c.Keys.Public[:]),
		hex.EncodeToString(c.Keys.Secret[:]),
		c.Comment,
	)
}
