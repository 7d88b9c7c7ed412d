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
		log.Println("creating address_jobs table...")
		if err := mghelper.CreateSchema(ctx, db, &custodystore.AddressJobDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &custodystore.AddressJobDao{}, "status,created_at")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping address_jobs table...")
		return mghelper.DropTables(ctx, db, &custodystore.AddressJobDao{})
	})
}
