package cardcrypto

import (
	"errors"
	"fmt"
)

// ErrDecryptionFailed is returned when an encrypted key cannot be opened with the
// supplied secret. GCM authentication failure and malformed bundles both map here.
var ErrDecryptionFailed = errors.New("card secret does not decrypt the encrypted private key")

// EncryptionUnavailableError means a required primitive (secure randomness,
// AES-GCM) could not be used. The mint workflow must stop when it sees one.
type EncryptionUnavailableError struct {
	Primitive string
	Err       error
}

func (e *EncryptionUnavailableError) Error() string {
	return fmt.Sprintf("encryption unavailable: %s: %v", e.Primitive, e.Err)
}

func (e *EncryptionUnavailableError) Unwrap() error {
	return e.Err
}

func unavailable(primitive string, err error) error {
	return &EncryptionUnavailableError{Primitive: primitive, Err: err}
}
