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
		log.Println("creating transaction_history table...")
		if err := mghelper.CreateSchema(ctx, db, &custodystore.HistoryDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &custodystore.HistoryDao{}, "from_address", "to_address")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping transaction_history table...")
		return mghelper.DropTables(ctx, db, &custodystore.HistoryDao{})
	})
}
