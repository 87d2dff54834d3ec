package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if db.Dialect().Name().String() != "pg" {
			fmt.Printf("\033[1;31m%s\033[0m", "You are not using PostgreSQL. DB level checks can not be enabled!\n")
			return nil
		}
		sql := `
			-- earnings and royalties are recorded in non-negative minor units
				ALTER TABLE earnings
				ADD CONSTRAINT check_earning_amount_non_negative
				CHECK (amount >= 0);

				ALTER TABLE royalties
				ADD CONSTRAINT check_royalty_amount_non_negative
				CHECK (amount >= 0);

				ALTER TABLE payments
				ADD CONSTRAINT check_payment_amount_positive
				CHECK (amount > 0);

			-- a release's outstanding recoupment balance must never go below zero:
			-- recouped total can never exceed incurred total
				CREATE OR REPLACE FUNCTION check_recoupment_balance()
					RETURNS TRIGGER AS $$
				DECLARE
					sum BIGINT;
				BEGIN
					SELECT INTO sum SUM(amount)
					FROM recoupable_expenses
					WHERE recoupable_expenses.release_id = NEW.release_id;

					IF sum < 0
					THEN
						RAISE EXCEPTION 'invalid recoupment balance [release_id:%] balance [%]',
						NEW.release_id,
						sum;
					END IF;
					RETURN NEW;
				END;
				$$ LANGUAGE plpgsql;
				CREATE TRIGGER check_recoupment_balance
				AFTER INSERT OR UPDATE ON recoupable_expenses
				FOR EACH ROW EXECUTE PROCEDURE check_recoupment_balance();
		`
		if _, err := db.Exec(sql); err != nil {
			return err
		}
		return nil
	}, nil)
}
