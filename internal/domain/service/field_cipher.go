package service

// FieldCipher encrypts and decrypts a single sensitive string field.
type FieldCipher interface {
	// Encrypt returns the "<ivHex>:<ciphertextHex>" envelope of plaintext.
	// Every call uses a fresh IV.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt. Malformed or tampered envelopes fail with
	// ErrDecryptionFailed.
	Decrypt(envelope string) (string, error)
}
