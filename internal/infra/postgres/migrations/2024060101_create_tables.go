package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"wellness-quiz-service/internal/infra/postgres"
)

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			for _, m := range postgres.Models() {
				q := db.NewCreateTable().Model(m.Model).IfNotExists()
				if m.UserOwned {
					// rows owned by a user go away with it
					q = q.ForeignKey(`("user_id") REFERENCES "users" ("id") ON DELETE CASCADE`)
				}
				if _, err := q.Exec(ctx); err != nil {
					return fmt.Errorf("create %s: %w", m.Table, err)
				}
			}
			_, err := db.NewCreateIndex().
				TableExpr("game_progress").
				Index("game_progress_user_id_idx").
				Column("user_id").
				IfNotExists().
				Exec(ctx)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			models := postgres.Models()
			for i := len(models) - 1; i >= 0; i-- {
				if _, err := db.NewDropTable().Model(models[i].Model).IfExists().Cascade().Exec(ctx); err != nil {
					return err
				}
			}
			return nil
		},
	)
}
