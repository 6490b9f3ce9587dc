// Package identity derives content digests from embroidery patterns.
package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"
	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/core/ports"
	"go.trai.ch/zerr"
)

// Canonicalizer turns patterns, or raw bytes as a fallback, into truncated hex digests.
type Canonicalizer struct {
	sum    func([]byte) [32]byte
	length int
}

// New creates a Canonicalizer for the given algorithm and digest length.
func New(algorithm string, length int) (*Canonicalizer, error) {
	if length < 1 || length > 2*32 {
		return nil, zerr.With(domain.ErrInvalidHashLength, "hash_length", length)
	}
	c := &Canonicalizer{length: length}
	switch algorithm {
	case domain.HashSHA256, "":
		c.sum = sha256.Sum256
	case domain.HashBLAKE3:
		c.sum = blake3.Sum256
	default:
		return nil, zerr.With(domain.ErrInvalidHashAlgorithm, "hash_algorithm", algorithm)
	}
	return c, nil
}

// CanonicalBytes serializes p into its canonical form.
//
// Stitches become S:x,y,cmd with coordinates rounded half to even, threads keep file
// order as T:color|catalog|description, and extras are sorted by key as E:key=value.
// Parts are joined with ';'.
func CanonicalBytes(p *domain.Pattern) []byte {
	parts := make([]string, 0, len(p.Stitches)+len(p.Threads)+len(p.Extras))

	for _, s := range p.Stitches {
		parts = append(parts, "S:"+
			strconv.FormatInt(int64(math.RoundToEven(s.X)), 10)+","+
			strconv.FormatInt(int64(math.RoundToEven(s.Y)), 10)+","+
			strconv.Itoa(s.Command))
	}

	for _, t := range p.Threads {
		parts = append(parts, "T:"+strconv.Itoa(t.Color)+"|"+t.Catalog+"|"+t.Description)
	}

	keys := make([]string, 0, len(p.Extras))
	for k := range p.Extras {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		parts = append(parts, "E:"+k+"="+p.Extras[k])
	}

	return []byte(strings.Join(parts, ";"))
}

// Digest returns the canonical digest of p.
func (c *Canonicalizer) Digest(p *domain.Pattern) string {
	return c.hash(CanonicalBytes(p))
}

// DigestRaw hashes raw file bytes. Byte-level differences produce different digests.
func (c *Canonicalizer) DigestRaw(data []byte) string {
	return c.hash(data)
}

// Identify digests data through parser when possible and falls back to the raw bytes.
// It never fails. The returned pattern is nil when the raw path was taken.
func (c *Canonicalizer) Identify(parser ports.PatternParser, data []byte) (string, domain.Fidelity, *domain.Pattern) {
	if parser != nil {
		if p, err := parser.TryParse(data); err == nil && p != nil {
			return c.Digest(p), domain.FidelityCanonical, p
		}
	}
	return c.DigestRaw(data), domain.FidelityRaw, nil
}

func (c *Canonicalizer) hash(data []byte) string {
	sum := c.sum(data)
	return hex.EncodeToString(sum[:])[:c.length]
}
