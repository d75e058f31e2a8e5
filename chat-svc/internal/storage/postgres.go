package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"overcooked-chatbot/chat-svc/internal/domain"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// maxCreateAttempts bounds the find-or-insert loop for pending carts.
const maxCreateAttempts = 3

const (
	menuColumns = `id, restaurant_id, name, price, category, available`
	cartColumns = `id, restaurant_id, session_id, status, total, order_type, source, created_at, updated_at`
	lineColumns = `id, cart_id, menu_item_id, name, quantity, unit_price, total_price, created_at`
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM restaurants WHERE id = $1", id).
		Scan(&rest.ID, &rest.Name, &rest.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query restaurant: %w", err)
	}
	return &rest, nil
}

func (r *PostgresRepository) FindMenuItemByName(ctx context.Context, restaurantID int, name string) (*domain.MenuItem, error) {
	item, err := scanMenuItem(r.DB.QueryRowContext(ctx, `
		SELECT `+menuColumns+`
		FROM menu_items
		WHERE restaurant_id = $1 AND LOWER(name) = LOWER($2)
		ORDER BY id
		LIMIT 1`, restaurantID, name))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query menu item by name: %w", err)
	}
	return item, nil
}

func (r *PostgresRepository) SearchMenuItems(ctx context.Context, restaurantID int, fragment string, limit int) ([]domain.MenuItem, error) {
	if limit <= 0 {
		limit = math.MaxInt32
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuColumns+`
		FROM menu_items
		WHERE restaurant_id = $1 AND name ILIKE $2 ESCAPE '\'
		ORDER BY id
		LIMIT $3`, restaurantID, "%"+escapeLike(fragment)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("search menu items: %w", err)
	}
	return collectMenuItems(rows)
}

func (r *PostgresRepository) ListAvailableMenuItems(ctx context.Context, restaurantID, limit int) ([]domain.MenuItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuColumns+`
		FROM menu_items
		WHERE restaurant_id = $1 AND available
		ORDER BY category, name, id
		LIMIT $2`, restaurantID, limit)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return collectMenuItems(rows)
}

func (r *PostgresRepository) ListCategories(ctx context.Context, restaurantID int) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT DISTINCT category
		FROM menu_items
		WHERE restaurant_id = $1 AND available AND category <> ''
		ORDER BY category`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) GetMenuItems(ctx context.Context, restaurantID int, ids []int) ([]domain.MenuItem, error) {
	keys := make([]int64, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, int64(id))
	}
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+menuColumns+`
		FROM menu_items
		WHERE restaurant_id = $1 AND id = ANY($2)
		ORDER BY id`, restaurantID, pq.Array(keys))
	if err != nil {
		return nil, fmt.Errorf("get menu items: %w", err)
	}
	return collectMenuItems(rows)
}

// GetOrCreatePending relies on the partial unique index over
// (restaurant_id, session_id) WHERE status = 'PENDING': a losing insert
// returns no row, and the next pass finds the winner's cart.
func (r *PostgresRepository) GetOrCreatePending(ctx context.Context, restaurantID int, sessionID string) (*domain.Cart, error) {
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		cart, err := scanCart(r.DB.QueryRowContext(ctx, `
			SELECT `+cartColumns+`
			FROM carts
			WHERE restaurant_id = $1 AND session_id = $2 AND status = 'PENDING'`, restaurantID, sessionID))
		if err == nil {
			return r.withLines(ctx, cart)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("find pending cart: %w", err)
		}

		cart, err = scanCart(r.DB.QueryRowContext(ctx, `
			INSERT INTO carts (restaurant_id, session_id, status, total, order_type, source)
			VALUES ($1, $2, 'PENDING', 0, $3, $4)
			ON CONFLICT (restaurant_id, session_id) WHERE status = 'PENDING' DO NOTHING
			RETURNING `+cartColumns,
			restaurantID, sessionID, domain.OrderTypeTakeaway, domain.OrderSourceChat))
		if err == nil {
			cart.Items = []domain.LineItem{}
			return cart, nil
		}
		if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
			continue
		}
		return nil, fmt.Errorf("insert pending cart: %w", err)
	}
	return nil, domain.ErrCartContention
}

func (r *PostgresRepository) GetCart(ctx context.Context, cartID int) (*domain.Cart, error) {
	cart, err := scanCart(r.DB.QueryRowContext(ctx,
		"SELECT "+cartColumns+" FROM carts WHERE id = $1", cartID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query cart: %w", err)
	}
	return r.withLines(ctx, cart)
}

// AddLine merges into an existing line for the same menu item. The unit
// price captured on first insert is kept; only quantity and line total move.
func (r *PostgresRepository) AddLine(ctx context.Context, cartID int, item domain.MenuItem, quantity int) (*domain.LineItem, error) {
	var line *domain.LineItem
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := lockPendingCart(ctx, tx, cartID); err != nil {
			return err
		}

		var err error
		line, err = scanLine(tx.QueryRowContext(ctx, `
			INSERT INTO cart_items (cart_id, menu_item_id, name, quantity, unit_price, total_price)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (cart_id, menu_item_id) DO UPDATE
			SET quantity = cart_items.quantity + EXCLUDED.quantity,
			    total_price = cart_items.unit_price * (cart_items.quantity + EXCLUDED.quantity)
			WHERE cart_items.quantity::bigint + EXCLUDED.quantity <= $7
			RETURNING `+lineColumns,
			cartID, item.ID, item.Name, quantity, item.Price, item.Price.Mul(decimal.NewFromInt(int64(quantity))), domain.MaxQuantity))
		if errors.Is(err, sql.ErrNoRows) {
			// the conflicting row failed the WHERE, so nothing was written
			return &domain.QuantityError{Raw: quantity, Reason: domain.QuantityTooLarge}
		}
		if err != nil {
			return fmt.Errorf("upsert cart item: %w", err)
		}

		_, err = recalcTotal(ctx, tx, cartID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return line, nil
}

func (r *PostgresRepository) RemoveLine(ctx context.Context, cartID, menuItemID int, quantity domain.QuantityFunc) (*domain.RemoveOutcome, error) {
	var outcome *domain.RemoveOutcome
	err := r.inTx(ctx, func(tx *sql.Tx) error {
		if err := lockPendingCart(ctx, tx, cartID); err != nil {
			return err
		}

		var (
			lineID    int
			name      string
			current   int
			unitPrice decimal.Decimal
		)
		err := tx.QueryRowContext(ctx, `
			SELECT id, name, quantity, unit_price
			FROM cart_items
			WHERE cart_id = $1 AND menu_item_id = $2
			FOR UPDATE`, cartID, menuItemID).
			Scan(&lineID, &name, &current, &unitPrice)
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrItemNotInCart
		}
		if err != nil {
			return fmt.Errorf("lock cart item: %w", err)
		}

		n, err := quantity(current)
		if err != nil {
			return err
		}

		if n >= current {
			if _, err := tx.ExecContext(ctx, "DELETE FROM cart_items WHERE id = $1", lineID); err != nil {
				return fmt.Errorf("delete cart item: %w", err)
			}
			outcome = &domain.RemoveOutcome{Name: name, Removed: current, Deleted: true}
		} else {
			remaining := current - n
			_, err := tx.ExecContext(ctx,
				"UPDATE cart_items SET quantity = $1, total_price = $2 WHERE id = $3",
				remaining, unitPrice.Mul(decimal.NewFromInt(int64(remaining))), lineID)
			if err != nil {
				return fmt.Errorf("update cart item: %w", err)
			}
			outcome = &domain.RemoveOutcome{Name: name, Removed: n, Remaining: remaining}
		}

		_, err = recalcTotal(ctx, tx, cartID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

func (r *PostgresRepository) ClearLines(ctx context.Context, cartID int) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := lockPendingCart(ctx, tx, cartID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM cart_items WHERE cart_id = $1", cartID); err != nil {
			return fmt.Errorf("delete cart items: %w", err)
		}
		_, err := recalcTotal(ctx, tx, cartID)
		return err
	})
}

func (r *PostgresRepository) RecalcTotal(ctx context.Context, cartID int) (decimal.Decimal, error) {
	return recalcTotal(ctx, r.DB, cartID)
}

func (r *PostgresRepository) ConfirmCart(ctx context.Context, cartID int) error {
	return r.inTx(ctx, func(tx *sql.Tx) error {
		if err := lockPendingCart(ctx, tx, cartID); err != nil {
			return err
		}

		var lines int
		if err := tx.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM cart_items WHERE cart_id = $1", cartID).Scan(&lines); err != nil {
			return fmt.Errorf("count cart items: %w", err)
		}
		if lines == 0 {
			return domain.ErrEmptyCart
		}

		_, err := tx.ExecContext(ctx,
			"UPDATE carts SET status = 'CONFIRMED', updated_at = NOW() WHERE id = $1", cartID)
		if err != nil {
			return fmt.Errorf("confirm cart: %w", err)
		}
		return nil
	})
}

func (r *PostgresRepository) TopSellingItems(ctx context.Context, restaurantID, limit int) ([]domain.ItemSales, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT ci.menu_item_id, SUM(ci.quantity) AS sold
		FROM cart_items ci
		JOIN carts c ON ci.cart_id = c.id
		WHERE c.restaurant_id = $1 AND c.status = 'CONFIRMED'
		GROUP BY ci.menu_item_id
		ORDER BY sold DESC, ci.menu_item_id
		LIMIT $2`, restaurantID, limit)
	if err != nil {
		return nil, fmt.Errorf("top selling items: %w", err)
	}
	defer rows.Close()

	var sales []domain.ItemSales
	for rows.Next() {
		var s domain.ItemSales
		if err := rows.Scan(&s.MenuItemID, &s.Sold); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *PostgresRepository) withLines(ctx context.Context, cart *domain.Cart) (*domain.Cart, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+lineColumns+" FROM cart_items WHERE cart_id = $1 ORDER BY id", cart.ID)
	if err != nil {
		return nil, fmt.Errorf("query cart items: %w", err)
	}
	defer rows.Close()

	cart.Items = []domain.LineItem{}
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, *line)
	}
	return cart, rows.Err()
}

func (r *PostgresRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// lockPendingCart takes the cart row lock that serializes every mutation of
// one cart.
func lockPendingCart(ctx context.Context, tx *sql.Tx, cartID int) error {
	var status domain.CartStatus
	err := tx.QueryRowContext(ctx, "SELECT status FROM carts WHERE id = $1 FOR UPDATE", cartID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrCartNotFound
	}
	if err != nil {
		return fmt.Errorf("lock cart: %w", err)
	}
	if status != domain.CartStatusPending {
		return domain.ErrCartNotPending
	}
	return nil
}

func recalcTotal(ctx context.Context, q rowQuerier, cartID int) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := q.QueryRowContext(ctx, `
		UPDATE carts
		SET total = (SELECT COALESCE(SUM(total_price), 0) FROM cart_items WHERE cart_id = $1),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING total`, cartID).Scan(&total)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, domain.ErrCartNotFound
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("recalc total: %w", err)
	}
	return total, nil
}

func scanMenuItem(row rowScanner) (*domain.MenuItem, error) {
	var item domain.MenuItem
	if err := row.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.Category, &item.Available); err != nil {
		return nil, err
	}
	return &item, nil
}

func collectMenuItems(rows *sql.Rows) ([]domain.MenuItem, error) {
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func scanCart(row rowScanner) (*domain.Cart, error) {
	var cart domain.Cart
	err := row.Scan(&cart.ID, &cart.RestaurantID, &cart.SessionID, &cart.Status, &cart.Total,
		&cart.OrderType, &cart.Source, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func scanLine(row rowScanner) (*domain.LineItem, error) {
	var line domain.LineItem
	err := row.Scan(&line.ID, &line.CartID, &line.MenuItemID, &line.Name, &line.Quantity,
		&line.UnitPrice, &line.TotalPrice, &line.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
