package custodydb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/kevinbg012/mb-crypto-challenge/pkg/custodystore"
	mghelper "github.com/kevinbg012/mb-crypto-challenge/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating transactions table...")
		if err := mghelper.CreateSchema(ctx, db, &custodystore.TransactionDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &custodystore.TransactionDao{},
			"status,created_at", "from_address", "to_address")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping transactions table...")
		return mghelper.DropTables(ctx, db, &custodystore.TransactionDao{})
	})
}
