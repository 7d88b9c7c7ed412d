package migrations

import (
	"context"
	"testing"

	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/kevinbg012/mb-crypto-challenge/pkg/config"
	"github.com/kevinbg012/mb-crypto-challenge/pkg/pgutil"
)

type widgetDao struct {
	bun.BaseModel `bun:"table:widgets"`
	ID            int64  `bun:",pk,autoincrement"`
	Pool          string `bun:",notnull,type:varchar(16)"`
	Slot          int64  `bun:",notnull"`
	Name          string `bun:",notnull,type:varchar(100)"`
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	db, err := pgutil.ConnectDB(context.Background(), cfg, zap.NewNop())
	if err == nil {
		_ = db.Close()
		t.Error("ConnectDB() should fail with invalid host")
	}
}

func TestCreateAndDropSchema(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &widgetDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "widgets")

	if err := CreateSchema(ctx, db, &widgetDao{}); err != nil {
		t.Errorf("CreateSchema() second call failed: %v", err)
	}

	if err := DropTables(ctx, db, &widgetDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "widgets")
}

func TestTruncateTables(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &widgetDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	rows := []widgetDao{{Pool: "a", Slot: 1, Name: "one"}, {Pool: "a", Slot: 2, Name: "two"}}
	if _, err := db.NewInsert().Model(&rows).Exec(ctx); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "widgets", 2)

	if err := TruncateTables(ctx, db, &widgetDao{}); err != nil {
		t.Fatalf("TruncateTables() failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "widgets", 0)
}

func TestModelIndexes(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &widgetDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}

	if err := CreateModelIndexes(ctx, db, &widgetDao{}, "name"); err != nil {
		t.Fatalf("CreateModelIndexes() failed: %v", err)
	}
	if err := CreateModelUniqueIndexes(ctx, db, &widgetDao{}, "pool, slot"); err != nil {
		t.Fatalf("CreateModelUniqueIndexes() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, "idx_widgets_name")
	pgutil.AssertIndexExists(t, db, "idx_widgets_pool_slot")

	dup := []widgetDao{{Pool: "a", Slot: 1, Name: "x"}, {Pool: "a", Slot: 1, Name: "y"}}
	if _, err := db.NewInsert().Model(&dup).Exec(ctx); err == nil {
		t.Error("expected unique violation on (pool, slot)")
	}

	if err := DropModelIndexes(ctx, db, &widgetDao{}, "name", "pool, slot"); err != nil {
		t.Fatalf("DropModelIndexes() failed: %v", err)
	}
}
