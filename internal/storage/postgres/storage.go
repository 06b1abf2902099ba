package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/admart/backend/internal/domain/errors"
	"github.com/admart/backend/internal/domain/model"
	"github.com/admart/backend/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on.
// Tests substitute it with a pgxmock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

var _ repository.Factory = (*Storage)(nil)

type userRepository struct {
	storage *Storage
}

type advertiserRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Advertisers() repository.AdvertiserRepository {
	return &advertiserRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id BIGSERIAL PRIMARY KEY,
            username TEXT UNIQUE NOT NULL,
            email TEXT NOT NULL DEFAULT '',
            password_hash TEXT NOT NULL,
            is_superuser BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS advertisers (
            id BIGSERIAL PRIMARY KEY,
            user_id BIGINT UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
            phone TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            last_change TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS items (
            id BIGSERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            last_change TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS addresses (
            id BIGSERIAL PRIMARY KEY,
            state TEXT NOT NULL DEFAULT '',
            address TEXT NOT NULL DEFAULT '',
            neighborhood TEXT NOT NULL DEFAULT '',
            number TEXT NOT NULL DEFAULT '',
            complement TEXT NOT NULL DEFAULT '',
            city TEXT NOT NULL DEFAULT '',
            cep TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            last_change TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id BIGSERIAL PRIMARY KEY,
            advertiser_id BIGINT NOT NULL REFERENCES advertisers(id) ON DELETE CASCADE,
            item_id BIGINT NOT NULL REFERENCES items(id),
            address_id BIGINT NOT NULL REFERENCES addresses(id),
            status TEXT NOT NULL DEFAULT 'open',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            last_change TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_advertiser ON orders(advertiser_id, created_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- UserRepository implementation ---

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT id, username, email, password_hash, is_superuser, created_at FROM users WHERE username=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, username).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsSuperuser, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, username, email, password_hash, is_superuser, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsSuperuser, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- AdvertiserRepository implementation ---

// Create writes the user identity and advertiser rows in one transaction so
// a failure in either leaves nothing behind.
func (r *advertiserRepository) Create(ctx context.Context, reg repository.NewAdvertiser) (*model.Advertiser, *model.User, error) {
	var (
		user model.User
		adv  model.Advertiser
	)

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertUser = `INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
		err := tx.QueryRow(ctx, insertUser, reg.Username, reg.Email, reg.PasswordHash).Scan(&user.ID, &user.CreatedAt)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				return domainErrors.ErrAlreadyExists
			}
			return err
		}
		user.Username = reg.Username
		user.Email = reg.Email
		user.PasswordHash = reg.PasswordHash

		const insertAdvertiser = `INSERT INTO advertisers (user_id, phone) VALUES ($1, $2) RETURNING id, created_at, last_change`
		if err := tx.QueryRow(ctx, insertAdvertiser, user.ID, reg.Phone).Scan(&adv.ID, &adv.CreatedAt, &adv.LastChange); err != nil {
			return err
		}
		adv.UserID = user.ID
		adv.Phone = reg.Phone
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &adv, &user, nil
}

func (r *advertiserRepository) GetByUserID(ctx context.Context, userID int64) (*model.Advertiser, error) {
	const query = `SELECT id, user_id, phone, created_at, last_change FROM advertisers WHERE user_id=$1`
	var adv model.Advertiser
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&adv.ID, &adv.UserID, &adv.Phone, &adv.CreatedAt, &adv.LastChange)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &adv, nil
}

// --- OrderRepository implementation ---

const orderColumns = `o.id, o.advertiser_id, o.status, o.created_at, o.last_change,
                      i.id, i.name, i.description,
                      a.id, a.state, a.address, a.neighborhood, a.number, a.complement, a.city, a.cep`

const orderFrom = ` FROM orders o
                    JOIN items i ON i.id = o.item_id
                    JOIN addresses a ON a.id = o.address_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID, &o.AdvertiserID, &o.Status, &o.CreatedAt, &o.LastChange,
		&o.Item.ID, &o.Item.Name, &o.Item.Description,
		&o.ShippingAddress.ID, &o.ShippingAddress.State, &o.ShippingAddress.Address,
		&o.ShippingAddress.Neighborhood, &o.ShippingAddress.Number,
		&o.ShippingAddress.Complement, &o.ShippingAddress.City, &o.ShippingAddress.CEP,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create allocates fresh item and address rows and the order referencing
// them, all inside one transaction. Status is always open.
func (r *orderRepository) Create(ctx context.Context, advertiserID int64, item model.Item, address model.Address) (*model.Order, error) {
	var order model.Order

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertItem = `INSERT INTO items (name, description) VALUES ($1, $2) RETURNING id`
		if err := tx.QueryRow(ctx, insertItem, item.Name, item.Description).Scan(&item.ID); err != nil {
			return err
		}

		const insertAddress = `INSERT INTO addresses (state, address, neighborhood, number, complement, city, cep)
                               VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
		if err := tx.QueryRow(ctx, insertAddress,
			address.State, address.Address, address.Neighborhood, address.Number,
			address.Complement, address.City, address.CEP).Scan(&address.ID); err != nil {
			return err
		}

		const insertOrder = `INSERT INTO orders (advertiser_id, item_id, address_id, status)
                             VALUES ($1, $2, $3, $4) RETURNING id, status, created_at, last_change`
		if err := tx.QueryRow(ctx, insertOrder, advertiserID, item.ID, address.ID, model.OrderStatusOpen).
			Scan(&order.ID, &order.Status, &order.CreatedAt, &order.LastChange); err != nil {
			return err
		}

		order.AdvertiserID = advertiserID
		order.Item = item
		order.ShippingAddress = address
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + orderFrom + ` WHERE o.id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + orderFrom + ` ORDER BY o.created_at, o.id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func (r *orderRepository) ListByAdvertiser(ctx context.Context, advertiserID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + orderFrom + ` WHERE o.advertiser_id=$1 ORDER BY o.created_at, o.id`
	rows, err := r.storage.pool.Query(ctx, query, advertiserID)
	if err != nil {
		return nil, err
	}
	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]model.Order, error) {
	defer rows.Close()

	result := make([]model.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update persists the merged order together with its item and address rows
// in one transaction.
func (r *orderRepository) Update(ctx context.Context, order *model.Order) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const updateItem = `UPDATE items SET name=$1, description=$2, last_change=NOW() WHERE id=$3`
		if _, err := tx.Exec(ctx, updateItem, order.Item.Name, order.Item.Description, order.Item.ID); err != nil {
			return err
		}

		const updateAddress = `UPDATE addresses SET state=$1, address=$2, neighborhood=$3, number=$4,
                               complement=$5, city=$6, cep=$7, last_change=NOW() WHERE id=$8`
		if _, err := tx.Exec(ctx, updateAddress,
			order.ShippingAddress.State, order.ShippingAddress.Address,
			order.ShippingAddress.Neighborhood, order.ShippingAddress.Number,
			order.ShippingAddress.Complement, order.ShippingAddress.City,
			order.ShippingAddress.CEP, order.ShippingAddress.ID); err != nil {
			return err
		}

		const updateOrder = `UPDATE orders SET status=$1, last_change=NOW() WHERE id=$2`
		tag, err := tx.Exec(ctx, updateOrder, order.Status, order.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
}

// Delete removes the order and cascades to its item and address rows.
func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectRefs = `SELECT item_id, address_id FROM orders WHERE id=$1`
		var itemID, addressID int64
		if err := tx.QueryRow(ctx, selectRefs, id).Scan(&itemID, &addressID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM items WHERE id=$1`, itemID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM addresses WHERE id=$1`, addressID); err != nil {
			return err
		}
		return nil
	})
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
