package storage

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
)

const userOpTimeout = 3 * time.Second

// Known user roles.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// User is a dashboard account.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UserRepo persists dashboard accounts. Passwords are stored as salted
// SHA-256 digests; the salt is per user and random.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a user repository on the given database.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new user with the given role and password.
func (r *UserRepo) Create(ctx context.Context, username, password, role string) (User, error) {
	ctx, cancel := context.WithTimeout(ctx, userOpTimeout)
	defer cancel()

	if role != RoleAdmin {
		role = RoleViewer
	}

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return User{}, fmt.Errorf("generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (username, role, salt, pass_hash) VALUES (?, ?, ?, ?)`,
		username, role, saltHex, hashPassword(saltHex, password))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return User{}, err
	}
	return User{ID: id, Username: username, Role: role}, nil
}

// Authenticate checks a username/password pair and returns the user.
func (r *UserRepo) Authenticate(ctx context.Context, username, password string) (User, error) {
	ctx, cancel := context.WithTimeout(ctx, userOpTimeout)
	defer cancel()

	var (
		u        User
		salt     string
		passHash string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, role, salt, pass_hash FROM users WHERE username = ?`, username).
		Scan(&u.ID, &u.Username, &u.Role, &salt, &passHash)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrBadCredentials
	}
	if err != nil {
		return User{}, fmt.Errorf("query user %s: %w", username, err)
	}

	if subtle.ConstantTimeCompare([]byte(passHash), []byte(hashPassword(salt, password))) != 1 {
		return User{}, ErrBadCredentials
	}
	return u, nil
}

// GetByUsername returns a user without credential columns.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (User, error) {
	ctx, cancel := context.WithTimeout(ctx, userOpTimeout)
	defer cancel()

	var u User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, role FROM users WHERE username = ?`, username).
		Scan(&u.ID, &u.Username, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, fmt.Errorf("query user %s: %w", username, err)
	}
	return u, nil
}

// Count returns the number of accounts.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, userOpTimeout)
	defer cancel()

	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func hashPassword(saltHex, password string) string {
	sum := sha256.Sum256([]byte(saltHex + ":" + password))
	return hex.EncodeToString(sum[:])
}
