package identity

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotFound indicates no user matches the given id or email.
	ErrNotFound = errors.New("user not found")

	// ErrEmailTaken indicates another user already registered the email.
	ErrEmailTaken = errors.New("email already registered")
)

// Repository persists users and their carts.
type Repository interface {
	Create(ctx context.Context, user User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)

	// IncrementCartItem atomically adds quantity to a single cart entry and
	// returns the full updated cart. The stored quantity floors at zero.
	IncrementCartItem(ctx context.Context, id, productID string, quantity int64) (Cart, error)
}

// PostgresRepository implements Repository using PostgreSQL. Carts are stored
// as a JSONB column on the users row.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed identity repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const uniqueViolation = "23505"

// Create inserts a new user. A unique index on email closes the race between
// the service's duplicate check and the insert.
func (r *PostgresRepository) Create(ctx context.Context, user User) error {
	userID, err := uuid.Parse(user.ID)
	if err != nil {
		return err
	}
	cart, err := json.Marshal(user.Cart)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO users (id, name, email, password_hash, cart, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`, userID, user.Name, user.Email, user.PasswordHash, cart, user.CreatedAt.UTC())
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrEmailTaken
	}
	return err
}

// FindByEmail fetches a user by email address.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, password_hash, cart, created_at
        FROM users WHERE email = $1`, email)
	return scanUser(row)
}

// FindByID fetches a user by identifier.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return User{}, ErrNotFound
	}
	row := r.db.QueryRow(ctx, `SELECT id, name, email, password_hash, cart, created_at
        FROM users WHERE id = $1`, userID)
	return scanUser(row)
}

// IncrementCartItem performs the increment inside a single UPDATE so two
// concurrent adds for the same user cannot lose one another's write.
func (r *PostgresRepository) IncrementCartItem(ctx context.Context, id, productID string, quantity int64) (Cart, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	const query = `
        UPDATE users
        SET cart = jsonb_set(
                COALESCE(cart, '{}'::jsonb),
                ARRAY[$2],
                to_jsonb(GREATEST(COALESCE((cart->>$2)::bigint, 0) + $3, 0)))
        WHERE id = $1
        RETURNING cart`
	var raw []byte
	if err := r.db.QueryRow(ctx, query, userID, productID, quantity).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return decodeCart(raw)
}

func scanUser(row pgx.Row) (User, error) {
	var (
		id        uuid.UUID
		raw       []byte
		createdAt time.Time
		user      User
	)
	if err := row.Scan(&id, &user.Name, &user.Email, &user.PasswordHash, &raw, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	cart, err := decodeCart(raw)
	if err != nil {
		return User{}, err
	}
	user.ID = id.String()
	user.Cart = cart
	user.CreatedAt = createdAt.UTC()
	return user, nil
}

func decodeCart(raw []byte) (Cart, error) {
	cart := Cart{}
	if len(raw) == 0 {
		return cart, nil
	}
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, err
	}
	return cart, nil
}
