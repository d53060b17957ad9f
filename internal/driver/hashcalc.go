package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"quoter/internal/quote"
	"quoter/internal/version"
)

// Digest — ключ кэша: SHA-256 от исходника и всего, что влияет на вывод.
type Digest [32]byte

func (d Digest) String() string { return hex.EncodeToString(d[:]) }

// IsZero reports whether the digest was never computed.
func (d Digest) IsZero() bool { return d == Digest{} }

// combineDigest: H(content || part1 || 0 || part2 || 0 ...). Части уже в
// детерминированном порядке.
func combineDigest(content [32]byte, parts ...string) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// CacheKey identifies the output of one file under the given settings and
// preprocessor symbols. The order of defines does not matter; a new tool
// version never reuses old entries.
func CacheKey(contentHash [32]byte, settings quote.Settings, defines []string) Digest {
	syms := append([]string(nil), defines...)
	sort.Strings(syms)
	return combineDigest(contentHash, "quoter="+version.Version, settings.Fingerprint(), "defines="+strings.Join(syms, ","))
}
