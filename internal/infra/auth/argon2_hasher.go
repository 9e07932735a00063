package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	argon2Prefix = "$argon2id$"

	// Stored costs above argon2CostHeadroom times the configured (or default, if larger)
	// cost are refused, since a single check would otherwise pin memory or CPU.
	argon2CostHeadroom = 4
	argon2MaxSaltLen   = 64
	argon2MaxKeyLen    = 64
)

// Argon2Params are the argon2id cost parameters. Zero fields take the defaults.
type Argon2Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultArgon2Params follow the second recommended option of RFC 9106.
var DefaultArgon2Params = Argon2Params{
	Memory:      64 * 1024,
	Iterations:  3,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

func (p Argon2Params) withDefaults() Argon2Params {
	if p.Memory == 0 {
		p.Memory = DefaultArgon2Params.Memory
	}
	if p.Iterations == 0 {
		p.Iterations = DefaultArgon2Params.Iterations
	}
	if p.Parallelism == 0 {
		p.Parallelism = DefaultArgon2Params.Parallelism
	}
	if p.SaltLength == 0 {
		p.SaltLength = DefaultArgon2Params.SaltLength
	}
	if p.KeyLength == 0 {
		p.KeyLength = DefaultArgon2Params.KeyLength
	}

	return p
}

// argon2Scheme encodes credentials in the PHC string format:
// $argon2id$v=19$m=<memory>,t=<iterations>,p=<parallelism>$<salt>$<key>
type argon2Scheme struct {
	params Argon2Params
}

func newArgon2Scheme(params Argon2Params) *argon2Scheme {
	return &argon2Scheme{params: params.withDefaults()}
}

func (s *argon2Scheme) name() string {
	return SchemeArgon2id
}

func (s *argon2Scheme) identifies(hash string) bool {
	return strings.HasPrefix(hash, argon2Prefix)
}

func (s *argon2Scheme) hash(password string) (string, error) {
	salt := make([]byte, s.params.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, s.params.Iterations, s.params.Memory, s.params.Parallelism, s.params.KeyLength)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		s.params.Memory,
		s.params.Iterations,
		s.params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (s *argon2Scheme) check(password, hash string) bool {
	decoded, ok := decodeArgon2(hash)
	if !ok || !s.affordable(decoded.params) {
		return false
	}

	key := argon2.IDKey([]byte(password), decoded.salt, decoded.params.Iterations, decoded.params.Memory, decoded.params.Parallelism, decoded.params.KeyLength)

	return subtle.ConstantTimeCompare(key, decoded.key) == 1
}

func (s *argon2Scheme) needsRehash(hash string) bool {
	decoded, ok := decodeArgon2(hash)
	if !ok {
		return true
	}

	p := decoded.params

	return p.Memory < s.params.Memory ||
		p.Iterations < s.params.Iterations ||
		p.Parallelism < s.params.Parallelism ||
		p.KeyLength < s.params.KeyLength ||
		uint32(len(decoded.salt)) < s.params.SaltLength
}

// affordable reports whether p stays within the cost the server is willing to spend on one check.
func (s *argon2Scheme) affordable(p Argon2Params) bool {
	maxMemory := uint64(max(s.params.Memory, DefaultArgon2Params.Memory)) * argon2CostHeadroom
	maxIterations := uint64(max(s.params.Iterations, DefaultArgon2Params.Iterations)) * argon2CostHeadroom

	return uint64(p.Memory) <= maxMemory && uint64(p.Iterations) <= maxIterations
}

type argon2Credential struct {
	params Argon2Params
	salt   []byte
	key    []byte
}

// decodeArgon2 parses a PHC argon2id string. Any deviation from the format fails.
func decodeArgon2(hash string) (*argon2Credential, bool) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != SchemeArgon2id {
		return nil, false
	}

	if parts[2] != "v="+strconv.Itoa(argon2.Version) {
		return nil, false
	}

	var params Argon2Params
	for _, field := range strings.Split(parts[3], ",") {
		name, value, found := strings.Cut(field, "=")
		if !found {
			return nil, false
		}
		n, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return nil, false
		}
		switch name {
		case "m":
			params.Memory = uint32(n)
		case "t":
			params.Iterations = uint32(n)
		case "p":
			if n > 255 {
				return nil, false
			}
			params.Parallelism = uint8(n)
		default:
			return nil, false
		}
	}
	if params.Iterations == 0 || params.Parallelism == 0 || params.Memory < 8*uint32(params.Parallelism) {
		return nil, false
	}

	salt, err := base64.RawStdEncoding.Strict().DecodeString(parts[4])
	if err != nil || len(salt) == 0 || len(salt) > argon2MaxSaltLen {
		return nil, false
	}
	key, err := base64.RawStdEncoding.Strict().DecodeString(parts[5])
	if err != nil || len(key) == 0 || len(key) > argon2MaxKeyLen {
		return nil, false
	}

	params.SaltLength = uint32(len(salt))
	params.KeyLength = uint32(len(key))

	return &argon2Credential{params: params, salt: salt, key: key}, true
}
