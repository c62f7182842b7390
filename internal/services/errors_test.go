package services

import (
	"errors"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/transport-edu-backend/internal/repo"
)

// newSvcDB opens a private in-memory database; migrate=false leaves it empty
// so every statement fails with "no such table".
func newSvcDB(t *testing.T, migrate bool) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if migrate {
		if err := repo.AutoMigrate(db); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestKind_String(t *testing.T) {
	cases := map[Kind]string{
		KindUnknown:             "unknown",
		KindNotFound:            "not_found",
		KindStorageUnavailable:  "storage_unavailable",
		KindConstraintViolation: "constraint_violation",
		KindInvalidInput:        "invalid_input",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Fatalf("%d.String() = %q; want %q", k, got, want)
		}
	}
}

func TestStoreError_IsAndUnwrap(t *testing.T) {
	err := invalid("bookmark.add", ErrEmptyItemID)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput match")
	}
	if !errors.Is(err, ErrEmptyItemID) {
		t.Fatalf("want cause match via Unwrap")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("kind mismatch should not match")
	}
	if KindOf(err) != KindInvalidInput {
		t.Fatalf("KindOf = %v", KindOf(err))
	}
	if KindOf(errors.New("plain")) != KindUnknown {
		t.Fatalf("plain error should be unknown")
	}

	wrapped := fmt.Errorf("handler: %w", err)
	if KindOf(wrapped) != KindInvalidInput {
		t.Fatalf("KindOf should see through wrapping")
	}

	bare := &StoreError{Op: "x", Kind: KindNotFound}
	if bare.Error() != "x: not_found" {
		t.Fatalf("Error() = %q", bare.Error())
	}
	if errors.Is(&StoreError{Op: "x"}, ErrNotFound) {
		t.Fatalf("unknown kind has no sentinel")
	}
}

func TestStoreErr_Classify(t *testing.T) {
	if storeErr("op", nil) != nil {
		t.Fatalf("nil stays nil")
	}
	cases := []struct {
		in   error
		want Kind
	}{
		{gorm.ErrRecordNotFound, KindNotFound},
		{fmt.Errorf("wrap: %w", gorm.ErrRecordNotFound), KindNotFound},
		{gorm.ErrDuplicatedKey, KindConstraintViolation},
		{errors.Join(repo.ErrDuplicate, repo.ErrNotFound), KindConstraintViolation},
		{errors.New("UNIQUE constraint failed: bookmarks.user_id"), KindConstraintViolation},
		{errors.New("CHECK constraint failed: score >= 0"), KindConstraintViolation},
		{errors.New("ERROR: violates not-null constraint (SQLSTATE 23502)"), KindConstraintViolation},
		{errors.New("no such table: bookmarks"), KindStorageUnavailable},
		{errors.New("database is locked"), KindStorageUnavailable},
	}
	for _, tc := range cases {
		if got := KindOf(storeErr("op", tc.in)); got != tc.want {
			t.Fatalf("classify(%v) = %v; want %v", tc.in, got, tc.want)
		}
	}

	// Already-classified errors pass through untouched.
	orig := invalid("op", ErrEmptyUserID)
	if storeErr("outer", orig) != orig {
		t.Fatalf("StoreError should not be re-wrapped")
	}
}
