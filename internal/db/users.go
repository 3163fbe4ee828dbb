package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/axportal/backend/internal/model"
	"github.com/axportal/backend/internal/sktai"
)

func (db *Postgres) EnsureSchema(ctx context.Context) error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			platform_username TEXT NOT NULL DEFAULT '',
			platform_password TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS user_projects (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			project_id TEXT NOT NULL,
			role_id TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE UNIQUE INDEX IF NOT EXISTS user_projects_active_idx
			ON user_projects(user_id) WHERE is_active`,
		`
		CREATE TABLE IF NOT EXISTS refresh_tokens (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			token_hash TEXT NOT NULL UNIQUE,
			expires_at TIMESTAMPTZ NOT NULL,
			revoked_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
		`,
		`CREATE INDEX IF NOT EXISTS refresh_tokens_user_id_idx ON refresh_tokens(user_id)`,
	}

	for _, query := range queries {
		if _, err := db.Pool.Exec(ctx, query); err != nil {
			return err
		}
	}
	return nil
}

func (db *Postgres) CreateUser(ctx context.Context, username, passwordHash, platformUsername, platformPassword string) (*model.User, error) {
	query := `
		INSERT INTO users (username, password_hash, platform_username, platform_password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, username, password_hash, platform_username, platform_password, created_at, updated_at
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, username, passwordHash, platformUsername, platformPassword).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.PlatformUsername,
		&user.PlatformPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT id, username, password_hash, platform_username, platform_password, created_at, updated_at
		FROM users
		WHERE username = $1
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.PlatformUsername,
		&user.PlatformPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) GetUserByID(ctx context.Context, userID int64) (*model.User, error) {
	query := `
		SELECT id, username, password_hash, platform_username, platform_password, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user model.User
	err := db.Pool.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.PlatformUsername,
		&user.PlatformPassword,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (db *Postgres) AssignProject(ctx context.Context, userID int64, projectID, roleID string, active bool) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if active {
		if _, err = tx.Exec(ctx, `
			UPDATE user_projects SET is_active = FALSE WHERE user_id = $1 AND is_active
		`, userID); err != nil {
			return err
		}
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO user_projects (user_id, project_id, role_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`, userID, projectID, roleID, active); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// PlatformCredentials implements sktai.CredentialSource.
func (db *Postgres) PlatformCredentials(ctx context.Context, username string) (*sktai.Credentials, error) {
	user, err := db.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user.PlatformUsername == "" {
		return nil, fmt.Errorf("no platform credentials stored for %q", username)
	}
	return &sktai.Credentials{
		Username: user.PlatformUsername,
		Password: user.PlatformPassword,
	}, nil
}

// ActiveProjectRole implements sktai.CredentialSource.
func (db *Postgres) ActiveProjectRole(ctx context.Context, username string) (*sktai.ProjectRole, error) {
	query := `
		SELECT up.project_id, up.role_id
		FROM user_projects up
		JOIN users u ON u.id = up.user_id
		WHERE u.username = $1 AND up.is_active
	`
	var projectRole sktai.ProjectRole
	err := db.Pool.QueryRow(ctx, query, username).Scan(&projectRole.ProjectID, &projectRole.RoleID)
	if err != nil {
		if IsNoRows(err) {
			return nil, fmt.Errorf("no active project for %q", username)
		}
		return nil, err
	}
	return &projectRole, nil
}

func (db *Postgres) InsertRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	query := `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	_, err := db.Pool.Exec(ctx, query, userID, tokenHash, expiresAt)
	return err
}

func (db *Postgres) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	query := `
		SELECT id, user_id, token_hash, expires_at, revoked_at, created_at
		FROM refresh_tokens
		WHERE token_hash = $1
	`
	var token model.RefreshToken
	err := db.Pool.QueryRow(ctx, query, tokenHash).Scan(
		&token.ID,
		&token.UserID,
		&token.TokenHash,
		&token.ExpiresAt,
		&token.RevokedAt,
		&token.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (db *Postgres) RevokeRefreshTokenByHash(ctx context.Context, tokenHash string) error {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE token_hash = $1 AND revoked_at IS NULL
	`
	_, err := db.Pool.Exec(ctx, query, tokenHash)
	return err
}

func (db *Postgres) RotateRefreshToken(ctx context.Context, oldTokenID int64, userID int64, newTokenHash string, newExpiresAt time.Time) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err = tx.Exec(ctx, `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE id = $1 AND revoked_at IS NULL
	`, oldTokenID); err != nil {
		return err
	}

	if _, err = tx.Exec(ctx, `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at, created_at)
		VALUES ($1, $2, $3, NOW())
	`, userID, newTokenHash, newExpiresAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
