// Package argon2id hashes passwords with argon2id and encodes them in
// the standard PHC string format.
package argon2id

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

var (
	ErrInvalidHash         = errors.New("the encoded hash is not in the correct format")
	ErrIncompatibleVersion = errors.New("incompatible version of argon2")
)

type ArgonParams struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

var DefaultParams = ArgonParams{
	Memory:      64 * 1024, // KiB
	Iterations:  1,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

// numHashSections is the field count of a split PHC string:
// "", "argon2id", "v=..", "m=..,t=..,p=..", salt, hash.
const numHashSections = 6

func deriveKey(password string, p ArgonParams, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, p.Iterations, p.Memory, p.Parallelism, p.KeyLength)
}

// EncodeHash hashes password with a fresh random salt and returns the
// PHC-encoded result.
func EncodeHash(password string, p ArgonParams) (string, error) {
	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := deriveKey(password, p, salt)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Iterations, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// DecodeHash splits a PHC-encoded hash back into its parameters, salt
// and derived key.
func DecodeHash(encodedHash string) (p *ArgonParams, salt []byte, hash []byte, err error) {
	sections := strings.Split(encodedHash, "$")
	if len(sections) != numHashSections || sections[1] != "argon2id" {
		return nil, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err = fmt.Sscanf(sections[2], "v=%d", &version); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	if version != argon2.Version {
		return nil, nil, nil, ErrIncompatibleVersion
	}

	p = &ArgonParams{}
	if _, err = fmt.Sscanf(sections[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Parallelism); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}

	if salt, err = base64.RawStdEncoding.Strict().DecodeString(sections[4]); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	p.SaltLength = uint32(len(salt))

	if hash, err = base64.RawStdEncoding.Strict().DecodeString(sections[5]); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}
	p.KeyLength = uint32(len(hash))

	return p, salt, hash, nil
}

// Verify re-derives the key from password using the parameters and
// salt embedded in encodedHash and compares in constant time.
func Verify(password, encodedHash string) (bool, error) {
	p, salt, hash, err := DecodeHash(encodedHash)
	if err != nil {
		return false, err
	}
	computed := deriveKey(password, *p, salt)
	return subtle.ConstantTimeCompare(computed, hash) == 1, nil
}
