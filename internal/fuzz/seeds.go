package fuzztests

import (
	"testing"

	"quoter/internal/testkit"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

func addCorpusSeeds(f *testing.F) {
	for _, path := range testkit.Samples() {
		src, err := testkit.ReadSample(path)
		if err != nil {
			continue
		}
		f.Add(clampSeed(src))
	}
	// добавляем хотя бы минимальные примеры на случай пустого testdata
	f.Add([]byte{})
	f.Add([]byte("namespace N { class C { } }\n"))
	f.Add([]byte("class C { string s = $\"{a}{b:X2}\"; }"))
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
