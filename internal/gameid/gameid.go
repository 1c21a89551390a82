// Package gameid creates sortable identifiers for games: a UUIDv7 encoded
// as 26 characters of Crockford base32.
package gameid

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length is the number of characters in an encoded ID
const Length = 26

// Generator creates game IDs. A nil reader uses crypto/rand.
type Generator struct {
	rand io.Reader
}

// NewGenerator creates a generator reading random bits from r
func NewGenerator(r io.Reader) *Generator {
	return &Generator{rand: r}
}

// Generate creates a new game ID
func Generate() string {
	id, err := NewGenerator(nil).Generate()
	if err != nil {
		panic("failed to generate game id: " + err.Error())
	}
	return id
}

// Generate creates a new game ID using the generator's random source
func (g *Generator) Generate() (string, error) {
	var (
		u   uuid.UUID
		err error
	)
	if g.rand != nil {
		u, err = uuid.NewV7FromReader(g.rand)
	} else {
		u, err = uuid.NewV7()
	}
	if err != nil {
		return "", err
	}
	return Encode(u), nil
}

// Encode writes the 128 bits of u as 26 base32 characters. The leading
// character carries only 3 bits, so it is always in 0-7.
func Encode(u uuid.UUID) string {
	var out [Length]byte
	var acc uint32
	bits := 0
	pos := Length - 1

	for i := len(u) - 1; i >= 0; i-- {
		acc |= uint32(u[i]) << bits
		bits += 8
		for bits >= 5 {
			out[pos] = alphabet[acc&0x1f]
			acc >>= 5
			bits -= 5
			pos--
		}
	}
	out[0] = alphabet[acc&0x1f]

	return string(out[:])
}

// Parse decodes an ID produced by Encode
func Parse(id string) (uuid.UUID, error) {
	var u uuid.UUID
	if err := Validate(id); err != nil {
		return u, err
	}

	var acc uint32
	bits := 0
	pos := len(u) - 1
	for i := Length - 1; i >= 0 && pos >= 0; i-- {
		acc |= uint32(strings.IndexByte(alphabet, id[i])) << bits
		bits += 5
		for bits >= 8 && pos >= 0 {
			u[pos] = byte(acc)
			acc >>= 8
			bits -= 8
			pos--
		}
	}

	return u, nil
}

// Validate checks if a game ID is valid (26 characters, valid base32)
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("game ID must be exactly %d characters, got %d", Length, len(id))
	}

	if id[0] > '7' {
		return fmt.Errorf("game ID first character must be 0-7, got %c", id[0])
	}

	for i := 0; i < len(id); i++ {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %c at position %d", id[i], i)
		}
	}

	return nil
}
