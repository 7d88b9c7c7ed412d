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
		log.Println("creating addresses table...")
		if err := mghelper.CreateSchema(ctx, db, &custodystore.AddressDao{}); err != nil {
			return err
		}
		// one derivation index per seed pool
		return mghelper.CreateModelUniqueIndexes(ctx, db, &custodystore.AddressDao{}, "pool,derivation_index")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping addresses table...")
		return mghelper.DropTables(ctx, db, &custodystore.AddressDao{})
	})
}
