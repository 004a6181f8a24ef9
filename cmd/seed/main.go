package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/oksasatya/growthpoints/config"
	pginfra "github.com/oksasatya/growthpoints/internal/infrastructure/postgres"
)

type seedOptions struct {
	userID string
	email  string
	tasks  []string
	points int64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &seedOptions{}
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed a demo profile and open tasks assigned to it",
		Long: `Seed inserts a profile (id must match the identity service user id)
and one open task per --task flag, all worth --points points.`,
		Example: `  seed --user 4f1c... --email demo@example.com --task "Write docs" --task "Fix bug" --points 50`,
		Args:    cobra.NoArgs,
		PreRunE: func(*cobra.Command, []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return run(cmd, cfg, opts)
		},
	}
	cmd.Flags().StringVar(&opts.userID, "user", "", "profile id (uuid of the identity service user)")
	cmd.Flags().StringVar(&opts.email, "email", "demo@example.com", "profile email")
	cmd.Flags().StringArrayVar(&opts.tasks, "task", []string{"Complete onboarding"}, "task title; repeatable")
	cmd.Flags().Int64Var(&opts.points, "points", 50, "points per task")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func (o *seedOptions) validate() error {
	if _, err := uuid.Parse(o.userID); err != nil {
		return fmt.Errorf("--user must be a uuid: %w", err)
	}
	if o.points < 0 {
		return fmt.Errorf("--points must not be negative")
	}
	if len(o.tasks) == 0 {
		return fmt.Errorf("at least one --task is required")
	}
	return nil
}

func run(cmd *cobra.Command, cfg *config.Config, opts *seedOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 1, cfg.DBMaxConnLife)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		p, err := pginfra.NewProfileRepository(tx).Ensure(ctx, opts.userID, opts.email)
		if err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
		cmd.Printf("profile: id=%s email=%s points=%d\n", p.ID, p.Email, p.Points)

		for _, title := range opts.tasks {
			id := uuid.New()
			if _, err := tx.Exec(ctx, `
				INSERT INTO tasks (id, assigned_to, status, points, title)
				VALUES ($1, $2, 'open', $3, $4)
			`, id, opts.userID, opts.points, title); err != nil {
				return fmt.Errorf("seed task %q: %w", title, err)
			}
			cmd.Printf("task: id=%s title=%q points=%d\n", id, title, opts.points)
		}
		return nil
	})
}
