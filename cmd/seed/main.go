// Command seed bootstraps the user directory with the default accounts.
// It is idempotent: a populated directory is left untouched.
package main

import (
	"context"
	"log/slog"
	"os"

	"campus/config"
	"campus/internal/domain/entity"
	"campus/internal/domain/repository"
	"campus/internal/domain/service"
	"campus/internal/infra/auth"
	"campus/internal/infra/persistence/model"
	"campus/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// seedAccount pairs a directory profile with its initial plaintext password.
type seedAccount struct {
	email       string
	password    string
	role        entity.Role
	displayName string
}

var defaultAccounts = []seedAccount{
	{"admin@university.edu", "admin123", entity.RoleAdmin, "System Administrator"},
	{"teacher@university.edu", "teacher123", entity.RoleTeacher, "Default Teacher"},
	{"student@university.edu", "student123", entity.RoleStudent, "Default Student"},
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(context.Background(), logger); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	if err := db.WithContext(ctx).AutoMigrate(&model.UserModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate users table")
	}

	users := postgres.NewUserRepository(db)

	skipIfPopulated := cfg.Seed == nil || cfg.Seed.SkipIfPopulated
	if skipIfPopulated {
		populated, err := users.HasAny(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to check directory state")
		}
		if populated {
			logger.Info("Directory already populated, nothing to do")

			return nil
		}
	}

	hasher := auth.NewPBKDF2Hasher()
	txManager := postgres.NewTransactionManager(db)

	// All three accounts land in one transaction so a partial seed cannot
	// leave the directory half-initialized.
	err = txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.UserRepo()
		for _, account := range defaultAccounts {
			user, err := buildUser(hasher, account)
			if err != nil {
				return err
			}
			if err := repo.Create(ctx, user); err != nil {
				return errors.Wrapf(err, "failed to seed %s", account.email)
			}
			logger.Info("Seeded account",
				slog.String("email", account.email),
				slog.String("role", account.role.String()))
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to seed directory")
	}

	logger.Info("Directory seeded", slog.Int("accounts", len(defaultAccounts)))

	return nil
}

func buildUser(hasher service.PasswordHasher, account seedAccount) (*entity.User, error) {
	hash, salt, err := hasher.Hash(account.password)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to hash password for %s", account.email)
	}

	return &entity.User{
		Email:        account.email,
		PasswordHash: hash,
		PasswordSalt: salt,
		Role:         account.role,
		DisplayName:  account.displayName,
		IsActive:     true,
	}, nil
}
