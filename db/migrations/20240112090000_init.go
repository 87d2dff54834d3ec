package migrations

import (
	"context"

	"github.com/labelops/royhub/db/models"
	"github.com/uptrace/bun"
)

/* Since this init will reflect the latest model fields when run on a fresh db
make sure that when you add/remove columns in subsequent migrations
IfNotExists/IfExists is used, otherwise it's going to result in errors.
*/
func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		for _, model := range []interface{}{
			(*models.Brand)(nil),
			(*models.Artist)(nil),
			(*models.PaymentMethod)(nil),
			(*models.Release)(nil),
			(*models.RoyaltySplit)(nil),
			(*models.Earning)(nil),
			(*models.RecoupableExpense)(nil),
			(*models.Royalty)(nil),
			(*models.Payment)(nil),
		} {
			if _, err := db.NewCreateTable().Model(model).Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	}, nil)
}
