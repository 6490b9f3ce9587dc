package identity_test

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoop/internal/core/domain"
	"go.trai.ch/hoop/internal/core/ports/mocks"
	"go.trai.ch/hoop/internal/engine/identity"
	"go.uber.org/mock/gomock"
)

func samplePattern() *domain.Pattern {
	return &domain.Pattern{
		Stitches: []domain.Stitch{
			{X: 0, Y: 0, Command: domain.CommandStitch},
			{X: 10.2, Y: -4.7, Command: domain.CommandJump},
			{X: 2.5, Y: 3.5, Command: domain.CommandTrim},
		},
		Threads: []domain.Thread{
			{Color: 0xff0000, Catalog: "1902", Description: "Red"},
			{Color: 0x0000ff, Catalog: "1876", Description: "Blue"},
		},
		Extras: map[string]string{"name": "rose", "author": "kim"},
	}
}

func TestCanonicalBytes(t *testing.T) {
	got := identity.CanonicalBytes(samplePattern())

	// 2.5 and 3.5 round half to even.
	want := "S:0,0,0;S:10,-5,1;S:2,4,2;" +
		"T:16711680|1902|Red;T:255|1876|Blue;" +
		"E:author=kim;E:name=rose"
	assert.Equal(t, want, string(got))
}

func TestCanonicalBytes_Empty(t *testing.T) {
	assert.Empty(t, identity.CanonicalBytes(&domain.Pattern{}))
}

func TestDigest_SHA256(t *testing.T) {
	c, err := identity.New(domain.HashSHA256, 8)
	require.NoError(t, err)

	p := samplePattern()
	sum := sha256.Sum256(identity.CanonicalBytes(p))
	assert.Equal(t, hex.EncodeToString(sum[:])[:8], c.Digest(p))
}

func TestDigest_Deterministic(t *testing.T) {
	c, err := identity.New(domain.HashSHA256, 8)
	require.NoError(t, err)

	assert.Equal(t, c.Digest(samplePattern()), c.Digest(samplePattern()))
}

func TestDigest_ExtrasOrderIndependent(t *testing.T) {
	c, err := identity.New(domain.HashBLAKE3, 16)
	require.NoError(t, err)

	a := samplePattern()
	b := samplePattern()
	b.Extras = map[string]string{"author": "kim", "name": "rose"}
	assert.Equal(t, c.Digest(a), c.Digest(b))
}

func TestDigest_RoundingNoise(t *testing.T) {
	c, err := identity.New(domain.HashSHA256, 8)
	require.NoError(t, err)

	a := samplePattern()
	b := samplePattern()
	for i := range b.Stitches {
		b.Stitches[i].X += 0.1
		b.Stitches[i].Y -= 0.1
	}
	// 10.2 -> 10.3 and -4.7 -> -4.8 stay on the same integer, 2.5 -> 2.6 does not.
	b.Stitches[2].X = 2.4
	b.Stitches[2].Y = 3.6
	assert.Equal(t, c.Digest(a), c.Digest(b))
}

func TestDigest_ThreadOrderMatters(t *testing.T) {
	c, err := identity.New(domain.HashSHA256, 8)
	require.NoError(t, err)

	a := samplePattern()
	b := samplePattern()
	b.Threads[0], b.Threads[1] = b.Threads[1], b.Threads[0]
	assert.NotEqual(t, c.Digest(a), c.Digest(b))
}

func TestDigest_Length(t *testing.T) {
	for _, length := range []int{1, 8, 64} {
		c, err := identity.New(domain.HashBLAKE3, length)
		require.NoError(t, err)
		assert.Len(t, c.DigestRaw([]byte("data")), length)
	}
}

func TestNew_Invalid(t *testing.T) {
	_, err := identity.New(domain.HashSHA256, 0)
	require.ErrorContains(t, err, domain.ErrInvalidHashLength.Error())

	_, err = identity.New(domain.HashSHA256, 65)
	require.ErrorContains(t, err, domain.ErrInvalidHashLength.Error())

	_, err = identity.New("md5", 8)
	require.ErrorContains(t, err, domain.ErrInvalidHashAlgorithm.Error())
}

func TestIdentify(t *testing.T) {
	ctrl := gomock.NewController(t)
	c, err := identity.New(domain.HashSHA256, 8)
	require.NoError(t, err)

	data := []byte("pattern bytes")

	t.Run("parsed", func(t *testing.T) {
		parser := mocks.NewMockPatternParser(ctrl)
		parser.EXPECT().TryParse(data).Return(samplePattern(), nil)

		digest, fidelity, p := c.Identify(parser, data)
		assert.Equal(t, c.Digest(samplePattern()), digest)
		assert.Equal(t, domain.FidelityCanonical, fidelity)
		assert.NotNil(t, p)
	})

	t.Run("parse failure falls back to raw", func(t *testing.T) {
		parser := mocks.NewMockPatternParser(ctrl)
		parser.EXPECT().TryParse(data).Return(nil, errors.New("bad header"))

		digest, fidelity, p := c.Identify(parser, data)
		assert.Equal(t, c.DigestRaw(data), digest)
		assert.Equal(t, domain.FidelityRaw, fidelity)
		assert.Nil(t, p)
	})

	t.Run("no parser", func(t *testing.T) {
		digest, fidelity, _ := c.Identify(nil, data)
		assert.Equal(t, c.DigestRaw(data), digest)
		assert.Equal(t, domain.FidelityRaw, fidelity)
	})
}
