package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Prefix        = "$pbkdf2-sha256$"
	pbkdf2DefaultRounds = 29000
	pbkdf2MaxRounds     = 1 << 24
	pbkdf2SaltLength    = 16
	pbkdf2KeyLength     = sha256.Size
)

// pbkdf2Scheme reads and writes the passlib pbkdf2_sha256 format:
// $pbkdf2-sha256$<rounds>$<salt>$<checksum>, both encoded in "adapted base64"
// (standard alphabet, no padding, '.' in place of '+').
type pbkdf2Scheme struct {
	rounds int
}

func newPBKDF2Scheme(rounds int) *pbkdf2Scheme {
	if rounds <= 0 {
		rounds = pbkdf2DefaultRounds
	}

	return &pbkdf2Scheme{rounds: rounds}
}

func (s *pbkdf2Scheme) name() string {
	return SchemePBKDF2SHA256
}

func (s *pbkdf2Scheme) identifies(hash string) bool {
	return strings.HasPrefix(hash, pbkdf2Prefix)
}

func (s *pbkdf2Scheme) hash(password string) (string, error) {
	salt := make([]byte, pbkdf2SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(password), salt, s.rounds, pbkdf2KeyLength, sha256.New)

	return pbkdf2Prefix + strconv.Itoa(s.rounds) + "$" + ab64Encode(salt) + "$" + ab64Encode(key), nil
}

func (s *pbkdf2Scheme) check(password, hash string) bool {
	rounds, salt, key, ok := decodePBKDF2(hash)
	if !ok {
		return false
	}

	computed := pbkdf2.Key([]byte(password), salt, rounds, len(key), sha256.New)

	return subtle.ConstantTimeCompare(computed, key) == 1
}

func (s *pbkdf2Scheme) needsRehash(hash string) bool {
	rounds, _, _, ok := decodePBKDF2(hash)

	return !ok || rounds < s.rounds
}

func decodePBKDF2(hash string) (rounds int, salt, key []byte, ok bool) {
	parts := strings.Split(hash, "$")
	if len(parts) != 5 || parts[0] != "" || parts[1] != SchemePBKDF2SHA256 {
		return 0, nil, nil, false
	}

	rounds, err := strconv.Atoi(parts[2])
	if err != nil || rounds < 1 || rounds > pbkdf2MaxRounds {
		return 0, nil, nil, false
	}

	salt, err = ab64Decode(parts[3])
	if err != nil {
		return 0, nil, nil, false
	}

	key, err = ab64Decode(parts[4])
	if err != nil || len(key) == 0 {
		return 0, nil, nil, false
	}

	return rounds, salt, key, true
}

func ab64Encode(b []byte) string {
	return strings.ReplaceAll(base64.RawStdEncoding.EncodeToString(b), "+", ".")
}

func ab64Decode(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.ReplaceAll(s, ".", "+"))
}
