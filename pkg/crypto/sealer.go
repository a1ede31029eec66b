package crypto

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/gtank/cryptopasta"
)

const keyLength = 32

var (
	// ErrKeyTooShort is returned for keys under 32 characters.
	ErrKeyTooShort = errors.New("key too short, want at least 32 chars")

	// ErrMalformed is returned when a blob is not "<cyphertext>.<signature>".
	ErrMalformed = errors.New("sealed blob malformed")

	// ErrSignature is returned when the HMAC does not match.
	ErrSignature = errors.New("signature validation failed")
)

// Sealer encrypts data and signs the cyphertext with a separate HMAC key.
// A sealed blob is base64(cyphertext) "." base64(signature).
type Sealer struct {
	key *[keyLength]byte
	sig *[keyLength]byte
}

// NewSealer builds a Sealer from an encryption key and a signing key. Only the first 32
// characters of each are used.
func NewSealer(key, sig string) (*Sealer, error) {
	rawkey, err := toKey(key)
	if err != nil {
		return nil, fmt.Errorf("encryption key: %w", err)
	}

	rawsig, err := toKey(sig)
	if err != nil {
		return nil, fmt.Errorf("signing key: %w", err)
	}

	return &Sealer{key: rawkey, sig: rawsig}, nil
}

// Seal encrypts plaintext and appends the signature.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	cyphertext, err := cryptopasta.Encrypt(plaintext, s.key)
	if err != nil {
		return nil, err
	}

	signature := cryptopasta.GenerateHMAC(cyphertext, s.sig)

	return []byte(fmt.Sprintf(
		"%s.%s",
		base64.RawURLEncoding.EncodeToString(cyphertext),
		base64.RawURLEncoding.EncodeToString(signature),
	)), nil
}

// Open checks the signature of a sealed blob and decrypts it. Surrounding whitespace,
// such as a trailing newline, is ignored.
func (s *Sealer) Open(blob []byte) ([]byte, error) {
	bits := bytes.SplitN(bytes.TrimSpace(blob), []byte("."), 2)
	if len(bits) != 2 {
		return nil, ErrMalformed
	}

	cyphertext, err := decode(bits[0])
	if err != nil {
		return nil, err
	}

	signature, err := decode(bits[1])
	if err != nil {
		return nil, err
	}

	if !cryptopasta.CheckHMAC(cyphertext, signature, s.sig) {
		return nil, ErrSignature
	}

	return cryptopasta.Decrypt(cyphertext, s.key)
}

func decode(b []byte) ([]byte, error) {
	out, err := base64.RawURLEncoding.DecodeString(string(b))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return out, nil
}

// toKey transforms a string of at least len 32 into *[32]byte, as needed by
// cryptopasta library.
func toKey(s string) (*[keyLength]byte, error) {
	if len(s) < keyLength {
		return nil, ErrKeyTooShort
	}
	data := &[keyLength]byte{}
	copy(data[:], s)
	return data, nil
}
