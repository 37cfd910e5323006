package benchmark

import (
	"fmt"
	"testing"

	"github.com/yndnr/userhub-go/internal/core/domain"
	"github.com/yndnr/userhub-go/internal/storage/filestore"
	"github.com/yndnr/userhub-go/pkg/crypto/adaptive"
	"github.com/yndnr/userhub-go/pkg/token"
)

// RecordCounts defines store sizes for lookup benchmarks.
var RecordCounts = []int{100, 1000, 5000}

const benchSecret = "benchSecret"

// newStore creates a file store rooted in a per-benchmark temp dir.
func newStore(b *testing.B, cipher adaptive.Cipher) *filestore.Store {
	b.Helper()

	store, err := filestore.New(filestore.Config{
		BaseDir:     b.TempDir(),
		Collections: []string{"users", "tokens"},
		Cipher:      cipher,
	})
	if err != nil {
		b.Fatalf("filestore.New failed: %v", err)
	}
	return store
}

// benchUser creates a test user for key i.
func benchUser(i int) *domain.User {
	return &domain.User{
		FirstName:      "Bench",
		LastName:       "User",
		Phone:          fmt.Sprintf("%010d", i),
		HashedPassword: token.KeyedHash(benchSecret, "password"),
		TOSAgreement:   true,
	}
}

// benchToken creates a test token for key i.
func benchToken(b *testing.B, i int) *domain.Token {
	b.Helper()

	tok, err := domain.NewToken(fmt.Sprintf("%010d", i))
	if err != nil {
		b.Fatalf("NewToken failed: %v", err)
	}
	return tok
}

// prefillUsers writes count user records into the store.
func prefillUsers(b *testing.B, store *filestore.Store, count int) []*domain.User {
	b.Helper()

	users := make([]*domain.User, count)
	for i := 0; i < count; i++ {
		users[i] = benchUser(i)
		if err := store.Create("users", users[i].Phone, users[i]); err != nil {
			b.Fatalf("Create failed: %v", err)
		}
	}
	return users
}

// runWithRecordCounts runs a benchmark function at each store size.
func runWithRecordCounts(b *testing.B, benchFn func(b *testing.B, count int)) {
	for _, count := range RecordCounts {
		b.Run(fmt.Sprintf("records_%d", count), func(b *testing.B) {
			benchFn(b, count)
		})
	}
}
