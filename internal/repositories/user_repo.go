package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"taskmatch/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	query := `
		INSERT INTO users (name, surname, email, phone, password_hash, role, token_balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		user.Name, user.Surname, user.Email, user.Phone, user.Password, user.Role,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "users_email_key") {
			return models.User{}, models.ErrDuplicateEmail
		}
		if strings.Contains(err.Error(), "users_phone_key") {
			return models.User{}, models.ErrDuplicatePhone
		}
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var user models.User
	query := `
		SELECT id, name, surname, email, phone, role, avatar_path, token_balance, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Surname, &user.Email, &user.Phone, &user.Role,
		&user.AvatarPath, &user.TokenBalance, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// GetUserForSignIn matches by email or phone and returns the stored hash in
// the Password field for the service layer to compare.
func (r *UserRepository) GetUserForSignIn(ctx context.Context, email, phone string) (models.User, error) {
	var user models.User
	query := `
		SELECT id, name, surname, email, phone, password_hash, role, avatar_path, token_balance, created_at, updated_at
		FROM users
		WHERE ($1 <> '' AND email = $1) OR ($2 <> '' AND phone = $2)
	`
	err := r.DB.QueryRowContext(ctx, query, email, phone).Scan(
		&user.ID, &user.Name, &user.Surname, &user.Email, &user.Phone, &user.Password, &user.Role,
		&user.AvatarPath, &user.TokenBalance, &user.CreatedAt, &user.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, userID int, avatarPath string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE users SET avatar_path = $1, updated_at = NOW() WHERE id = $2`, avatarPath, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrUserNotFound
	}
	return nil
}

// CreditTokens adds purchased platform tokens to the balance.
func (r *UserRepository) CreditTokens(ctx context.Context, userID, tokens int) (int, error) {
	var balance int
	err := r.DB.QueryRowContext(ctx, `
		UPDATE users SET token_balance = token_balance + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING token_balance
	`, tokens, userID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.ErrUserNotFound
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// DebitTokens spends tokens; the condition keeps the balance non-negative.
func (r *UserRepository) DebitTokens(ctx context.Context, userID, tokens int) (int, error) {
	var balance int
	err := r.DB.QueryRowContext(ctx, `
		UPDATE users SET token_balance = token_balance - $1, updated_at = NOW()
		WHERE id = $2 AND token_balance >= $1
		RETURNING token_balance
	`, tokens, userID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, models.ErrInsufficientTokens
	}
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (r *UserRepository) CreateSession(ctx context.Context, session models.Session) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO sessions (user_id, refresh_token, role, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO UPDATE SET refresh_token = EXCLUDED.refresh_token, expires_at = EXCLUDED.expires_at
	`, session.UserID, session.RefreshToken, session.Role, session.ExpiresAt)
	return err
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	var session models.Session
	query := `
		SELECT id, user_id, refresh_token, role, expires_at, created_at
		FROM sessions
		WHERE refresh_token = $1
	`
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&session.ID, &session.UserID, &session.RefreshToken, &session.Role, &session.ExpiresAt, &session.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// SaveFCMToken registers a device token for push delivery.
func (r *UserRepository) SaveFCMToken(ctx context.Context, userID int, token string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO fcm_tokens (user_id, token, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (token) DO UPDATE SET user_id = EXCLUDED.user_id
	`, userID, token)
	return err
}

func (r *UserRepository) GetFCMTokens(ctx context.Context, userID int) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT token FROM fcm_tokens WHERE user_id = $1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := []string{}
	for rows.Next() {
		var token string
		if err := rows.Scan(&token); err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, rows.Err()
}
