package benchmark

import (
	"testing"

	"github.com/yndnr/userhub-go/pkg/token"
)

// BenchmarkTokenGenerateID benchmarks token ID generation.
func BenchmarkTokenGenerateID(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := token.GenerateID(); err != nil {
			b.Fatalf("GenerateID failed: %v", err)
		}
	}
}

// BenchmarkKeyedHash benchmarks password hashing.
func BenchmarkKeyedHash(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		token.KeyedHash(benchSecret, "thisIsAPassword")
	}
}

// BenchmarkVerifyKeyedHash benchmarks password verification.
func BenchmarkVerifyKeyedHash(b *testing.B) {
	hash := token.KeyedHash(benchSecret, "thisIsAPassword")

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if !token.VerifyKeyedHash(benchSecret, "thisIsAPassword", hash) {
			b.Fatal("hash should verify")
		}
	}
}
