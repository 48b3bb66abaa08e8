package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/craftlink/marketplace/internal/domain/errors"
	"github.com/craftlink/marketplace/internal/domain/model"
	"github.com/craftlink/marketplace/internal/domain/repository"
)

// Pool is the subset of pgxpool.Pool the storage layer relies on.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   Pool
	logger *slog.Logger
}

type bulkOrderRepository struct {
	storage *Storage
}

type rfqRepository struct {
	storage *Storage
}

type catalogRepository struct {
	storage *Storage
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (Pool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
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
func (s *Storage) BulkOrders() repository.BulkOrderRepository {
	return &bulkOrderRepository{storage: s}
}

func (s *Storage) RFQs() repository.RFQRepository {
	return &rfqRepository{storage: s}
}

func (s *Storage) Catalog() repository.CatalogRepository {
	return &catalogRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id UUID PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL DEFAULT '',
            phone_number TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS shops (
            id UUID PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL DEFAULT '',
            phone_number TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS products (
            id UUID PRIMARY KEY,
            shop_id UUID NOT NULL REFERENCES shops(id),
            name TEXT NOT NULL,
            category TEXT NOT NULL,
            rating DOUBLE PRECISION
        )`,
		`CREATE TABLE IF NOT EXISTS bulk_orders (
            id UUID PRIMARY KEY,
            user_id UUID NOT NULL,
            product_name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            quantity INTEGER NOT NULL DEFAULT 0,
            category TEXT NOT NULL,
            reference_image TEXT NOT NULL DEFAULT '',
            budget NUMERIC NOT NULL DEFAULT 0,
            delivery_deadline TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            shipping_address TEXT NOT NULL DEFAULT '',
            packaging_requirements TEXT NOT NULL DEFAULT '',
            supplier_location_preference TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'Pending',
            accepted_offer UUID,
            payment_info JSONB,
            paid_at TIMESTAMPTZ,
            delivered_at TIMESTAMPTZ,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS rfqs (
            id UUID PRIMARY KEY,
            bulk_order_id UUID NOT NULL REFERENCES bulk_orders(id),
            shop_id UUID NOT NULL,
            user_id UUID NOT NULL,
            price NUMERIC,
            price_per_unit NUMERIC,
            delivery_time TEXT NOT NULL DEFAULT '',
            terms TEXT NOT NULL DEFAULT '',
            warranty TEXT NOT NULL DEFAULT '',
            available_quantity INTEGER,
            expiration_date TIMESTAMPTZ,
            packaging_details TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'Pending',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            UNIQUE (bulk_order_id, shop_id)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_bulk_orders_user ON bulk_orders(user_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_rfqs_shop ON rfqs(shop_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

const bulkOrderColumns = `id, user_id, product_name, description, quantity, category, reference_image,
        budget, delivery_deadline, shipping_address, packaging_requirements, supplier_location_preference,
        status, accepted_offer, payment_info, paid_at, delivered_at, created_at, updated_at`

const rfqColumns = `id, bulk_order_id, shop_id, user_id, price, price_per_unit, delivery_time, terms,
        warranty, available_quantity, expiration_date, packaging_details, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBulkOrder(row rowScanner, o *model.BulkOrder) error {
	return row.Scan(
		&o.ID, &o.UserID, &o.ProductName, &o.Description, &o.Quantity, &o.Category, &o.ReferenceImage,
		&o.Budget, &o.DeliveryDeadline, &o.ShippingAddress, &o.PackagingRequirements, &o.SupplierLocationPreference,
		&o.Status, &o.AcceptedOffer, &o.PaymentInfo, &o.PaidAt, &o.DeliveredAt, &o.CreatedAt, &o.UpdatedAt,
	)
}

func scanRFQ(row rowScanner, r *model.RFQ) error {
	return row.Scan(
		&r.ID, &r.BulkOrderID, &r.ShopID, &r.UserID, &r.Price, &r.PricePerUnit, &r.DeliveryTime, &r.Terms,
		&r.Warranty, &r.AvailableQuantity, &r.ExpirationDate, &r.PackagingDetails, &r.Status, &r.CreatedAt, &r.UpdatedAt,
	)
}

// --- BulkOrderRepository implementation ---

func (r *bulkOrderRepository) Create(ctx context.Context, order *model.BulkOrder) error {
	const query = `INSERT INTO bulk_orders
        (id, user_id, product_name, description, quantity, category, reference_image, budget,
         delivery_deadline, shipping_address, packaging_requirements, supplier_location_preference, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        RETURNING created_at, updated_at`

	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.Status == "" {
		order.Status = model.BulkOrderStatusPending
	}

	return r.storage.pool.QueryRow(ctx, query,
		order.ID, order.UserID, order.ProductName, order.Description, order.Quantity, order.Category,
		order.ReferenceImage, order.Budget, order.DeliveryDeadline, order.ShippingAddress,
		order.PackagingRequirements, order.SupplierLocationPreference, order.Status,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
}

func (r *bulkOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.BulkOrder, error) {
	query := `SELECT ` + bulkOrderColumns + ` FROM bulk_orders WHERE id=$1`
	var order model.BulkOrder
	if err := scanBulkOrder(r.storage.pool.QueryRow(ctx, query, id), &order); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *bulkOrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.BulkOrder, error) {
	query := `SELECT ` + bulkOrderColumns + ` FROM bulk_orders WHERE user_id=$1 ORDER BY created_at DESC`
	return r.listOrders(ctx, query, userID)
}

func (r *bulkOrderRepository) ListInFulfillmentByUser(ctx context.Context, userID uuid.UUID) ([]model.BulkOrder, error) {
	query := `SELECT ` + bulkOrderColumns + ` FROM bulk_orders
        WHERE user_id=$1 AND status IN ('Processing', 'Shipping', 'Delivered')
        ORDER BY created_at DESC`
	return r.listOrders(ctx, query, userID)
}

func (r *bulkOrderRepository) listOrders(ctx context.Context, query string, args ...any) ([]model.BulkOrder, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.BulkOrder
	for rows.Next() {
		var o model.BulkOrder
		if err := scanBulkOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *bulkOrderRepository) UpdateStatus(ctx context.Context, orderID uuid.UUID, status model.BulkOrderStatus) (*model.BulkOrder, error) {
	query := `UPDATE bulk_orders
        SET status=$1,
            delivered_at = CASE WHEN $1 = 'Delivered' THEN NOW() ELSE delivered_at END,
            updated_at = NOW()
        WHERE id=$2
        RETURNING ` + bulkOrderColumns

	var order model.BulkOrder
	if err := scanBulkOrder(r.storage.pool.QueryRow(ctx, query, status, orderID), &order); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *bulkOrderRepository) Delete(ctx context.Context, orderID uuid.UUID) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		// Shares the bulk-order row lock with Accept so deletion cannot
		// interleave with a concurrent acceptance.
		const lockQuery = `SELECT status FROM bulk_orders WHERE id=$1 FOR UPDATE`
		var status model.BulkOrderStatus
		if err := tx.QueryRow(ctx, lockQuery, orderID).Scan(&status); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		const acceptedQuery = `SELECT EXISTS(SELECT 1 FROM rfqs WHERE bulk_order_id=$1 AND status='Accepted')`
		var hasAccepted bool
		if err := tx.QueryRow(ctx, acceptedQuery, orderID).Scan(&hasAccepted); err != nil {
			return err
		}
		if hasAccepted {
			return domainErrors.ErrOfferAccepted
		}

		if _, err := tx.Exec(ctx, `DELETE FROM rfqs WHERE bulk_order_id=$1`, orderID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, `DELETE FROM bulk_orders WHERE id=$1`, orderID); err != nil {
			return err
		}
		return nil
	})
}

// --- RFQRepository implementation ---

func (r *rfqRepository) CreateForSellers(ctx context.Context, bulkOrderID, userID uuid.UUID, shopIDs []uuid.UUID) ([]model.RFQ, error) {
	query := `INSERT INTO rfqs (id, bulk_order_id, shop_id, user_id, status)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (bulk_order_id, shop_id) DO NOTHING
        RETURNING ` + rfqColumns

	// One insert per target seller. A failure partway leaves the earlier
	// slots in place; the uniqueness constraint makes a retry safe.
	var created []model.RFQ
	for _, shopID := range shopIDs {
		var rfq model.RFQ
		err := scanRFQ(r.storage.pool.QueryRow(ctx, query, uuid.New(), bulkOrderID, shopID, userID, model.RFQStatusPending), &rfq)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return created, err
		}
		created = append(created, rfq)
	}
	return created, nil
}

func (r *rfqRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.RFQ, error) {
	query := `SELECT ` + rfqColumns + ` FROM rfqs WHERE id=$1`
	var rfq model.RFQ
	if err := scanRFQ(r.storage.pool.QueryRow(ctx, query, id), &rfq); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rfq, nil
}

const sellerOrderQuery = `SELECT
        r.id, r.bulk_order_id, r.shop_id, r.user_id, r.price, r.price_per_unit, r.delivery_time, r.terms,
        r.warranty, r.available_quantity, r.expiration_date, r.packaging_details, r.status, r.created_at, r.updated_at,
        b.id, b.user_id, b.product_name, b.description, b.quantity, b.category, b.reference_image,
        b.budget, b.delivery_deadline, b.shipping_address, b.packaging_requirements, b.supplier_location_preference,
        b.status, b.accepted_offer, b.payment_info, b.paid_at, b.delivered_at, b.created_at, b.updated_at,
        COALESCE(u.name, ''), COALESCE(u.email, ''), COALESCE(u.phone_number, '')
        FROM rfqs r
        JOIN bulk_orders b ON b.id = r.bulk_order_id
        LEFT JOIN users u ON u.id = r.user_id`

func (r *rfqRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]model.SellerOrder, error) {
	query := sellerOrderQuery + ` WHERE r.shop_id=$1 ORDER BY r.created_at DESC`
	return r.listSellerOrders(ctx, query, shopID)
}

func (r *rfqRepository) ListAcceptedByShop(ctx context.Context, shopID uuid.UUID) ([]model.SellerOrder, error) {
	query := sellerOrderQuery + ` WHERE r.shop_id=$1 AND r.status='Accepted' ORDER BY r.created_at DESC`
	return r.listSellerOrders(ctx, query, shopID)
}

func (r *rfqRepository) listSellerOrders(ctx context.Context, query string, args ...any) ([]model.SellerOrder, error) {
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SellerOrder
	for rows.Next() {
		var so model.SellerOrder
		err := rows.Scan(
			&so.RFQ.ID, &so.RFQ.BulkOrderID, &so.RFQ.ShopID, &so.RFQ.UserID, &so.RFQ.Price, &so.RFQ.PricePerUnit,
			&so.RFQ.DeliveryTime, &so.RFQ.Terms, &so.RFQ.Warranty, &so.RFQ.AvailableQuantity, &so.RFQ.ExpirationDate,
			&so.RFQ.PackagingDetails, &so.RFQ.Status, &so.RFQ.CreatedAt, &so.RFQ.UpdatedAt,
			&so.BulkOrder.ID, &so.BulkOrder.UserID, &so.BulkOrder.ProductName, &so.BulkOrder.Description,
			&so.BulkOrder.Quantity, &so.BulkOrder.Category, &so.BulkOrder.ReferenceImage, &so.BulkOrder.Budget,
			&so.BulkOrder.DeliveryDeadline, &so.BulkOrder.ShippingAddress, &so.BulkOrder.PackagingRequirements,
			&so.BulkOrder.SupplierLocationPreference, &so.BulkOrder.Status, &so.BulkOrder.AcceptedOffer,
			&so.BulkOrder.PaymentInfo, &so.BulkOrder.PaidAt, &so.BulkOrder.DeliveredAt, &so.BulkOrder.CreatedAt,
			&so.BulkOrder.UpdatedAt,
			&so.Buyer.Name, &so.Buyer.Email, &so.Buyer.PhoneNumber,
		)
		if err != nil {
			return nil, err
		}
		so.Buyer.ID = so.RFQ.UserID
		result = append(result, so)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *rfqRepository) ListOffersForBulkOrder(ctx context.Context, bulkOrderID uuid.UUID) ([]model.BuyerOffer, error) {
	const query = `SELECT
        r.id, r.bulk_order_id, r.shop_id, r.user_id, r.price, r.price_per_unit, r.delivery_time, r.terms,
        r.warranty, r.available_quantity, r.expiration_date, r.packaging_details, r.status, r.created_at, r.updated_at,
        COALESCE(s.name, ''), COALESCE(s.email, ''), COALESCE(s.phone_number, '')
        FROM rfqs r
        LEFT JOIN shops s ON s.id = r.shop_id
        WHERE r.bulk_order_id=$1 AND r.price IS NOT NULL
        ORDER BY r.created_at`

	rows, err := r.storage.pool.Query(ctx, query, bulkOrderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.BuyerOffer
	for rows.Next() {
		var bo model.BuyerOffer
		err := rows.Scan(
			&bo.RFQ.ID, &bo.RFQ.BulkOrderID, &bo.RFQ.ShopID, &bo.RFQ.UserID, &bo.RFQ.Price, &bo.RFQ.PricePerUnit,
			&bo.RFQ.DeliveryTime, &bo.RFQ.Terms, &bo.RFQ.Warranty, &bo.RFQ.AvailableQuantity, &bo.RFQ.ExpirationDate,
			&bo.RFQ.PackagingDetails, &bo.RFQ.Status, &bo.RFQ.CreatedAt, &bo.RFQ.UpdatedAt,
			&bo.Shop.Name, &bo.Shop.Email, &bo.Shop.PhoneNumber,
		)
		if err != nil {
			return nil, err
		}
		bo.Shop.ID = bo.RFQ.ShopID
		result = append(result, bo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *rfqRepository) GetOfferDetails(ctx context.Context, rfqID uuid.UUID) (*model.OfferDetails, error) {
	const query = `SELECT
        r.id, r.bulk_order_id, r.shop_id, r.user_id, r.price, r.price_per_unit, r.delivery_time, r.terms,
        r.warranty, r.available_quantity, r.expiration_date, r.packaging_details, r.status, r.created_at, r.updated_at,
        b.id, b.user_id, b.product_name, b.description, b.quantity, b.category, b.reference_image,
        b.budget, b.delivery_deadline, b.shipping_address, b.packaging_requirements, b.supplier_location_preference,
        b.status, b.accepted_offer, b.payment_info, b.paid_at, b.delivered_at, b.created_at, b.updated_at,
        COALESCE(s.name, ''), COALESCE(s.email, ''), COALESCE(s.phone_number, ''),
        (SELECT AVG(COALESCE(p.rating, 0)) FROM products p WHERE p.shop_id = r.shop_id)
        FROM rfqs r
        JOIN bulk_orders b ON b.id = r.bulk_order_id
        LEFT JOIN shops s ON s.id = r.shop_id
        WHERE r.id=$1`

	var d model.OfferDetails
	err := r.storage.pool.QueryRow(ctx, query, rfqID).Scan(
		&d.RFQ.ID, &d.RFQ.BulkOrderID, &d.RFQ.ShopID, &d.RFQ.UserID, &d.RFQ.Price, &d.RFQ.PricePerUnit,
		&d.RFQ.DeliveryTime, &d.RFQ.Terms, &d.RFQ.Warranty, &d.RFQ.AvailableQuantity, &d.RFQ.ExpirationDate,
		&d.RFQ.PackagingDetails, &d.RFQ.Status, &d.RFQ.CreatedAt, &d.RFQ.UpdatedAt,
		&d.BulkOrder.ID, &d.BulkOrder.UserID, &d.BulkOrder.ProductName, &d.BulkOrder.Description,
		&d.BulkOrder.Quantity, &d.BulkOrder.Category, &d.BulkOrder.ReferenceImage, &d.BulkOrder.Budget,
		&d.BulkOrder.DeliveryDeadline, &d.BulkOrder.ShippingAddress, &d.BulkOrder.PackagingRequirements,
		&d.BulkOrder.SupplierLocationPreference, &d.BulkOrder.Status, &d.BulkOrder.AcceptedOffer,
		&d.BulkOrder.PaymentInfo, &d.BulkOrder.PaidAt, &d.BulkOrder.DeliveredAt, &d.BulkOrder.CreatedAt,
		&d.BulkOrder.UpdatedAt,
		&d.Shop.Name, &d.Shop.Email, &d.Shop.PhoneNumber,
		&d.ShopRating,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	d.Shop.ID = d.RFQ.ShopID
	return &d, nil
}

func (r *rfqRepository) SubmitOffer(ctx context.Context, rfqID uuid.UUID, offer model.Offer) (*model.RFQ, error) {
	var updated model.RFQ
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		current, err := lockRFQ(ctx, tx, rfqID)
		if err != nil {
			return err
		}
		if current.HasOffer() {
			return domainErrors.ErrOfferAlreadySubmitted
		}
		return writeOffer(ctx, tx, rfqID, offer, model.RFQStatusOfferSubmitted, &updated)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *rfqRepository) UpdateOffer(ctx context.Context, rfqID uuid.UUID, offer model.Offer) (*model.RFQ, error) {
	var updated model.RFQ
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		current, err := lockRFQ(ctx, tx, rfqID)
		if err != nil {
			return err
		}
		if current.Status == model.RFQStatusAccepted {
			return domainErrors.ErrOfferAccepted
		}
		return writeOffer(ctx, tx, rfqID, offer, current.Status, &updated)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *rfqRepository) DeleteOffer(ctx context.Context, rfqID uuid.UUID) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		current, err := lockRFQ(ctx, tx, rfqID)
		if err != nil {
			return err
		}
		if current.Status == model.RFQStatusAccepted {
			return domainErrors.ErrOfferAccepted
		}
		_, err = tx.Exec(ctx, `DELETE FROM rfqs WHERE id=$1`, rfqID)
		return err
	})
}

func (r *rfqRepository) Accept(ctx context.Context, rfqID uuid.UUID, paymentInfo []byte) (*model.BulkOrder, *model.RFQ, error) {
	var (
		order model.BulkOrder
		rfq   model.RFQ
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var bulkOrderID uuid.UUID
		err := tx.QueryRow(ctx, `SELECT bulk_order_id FROM rfqs WHERE id=$1`, rfqID).Scan(&bulkOrderID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		// Lock the bulk order before the RFQ, matching Delete, so concurrent
		// acceptance and deletion serialize on the same row.
		lockOrderQuery := `SELECT ` + bulkOrderColumns + ` FROM bulk_orders WHERE id=$1 FOR UPDATE`
		if err := scanBulkOrder(tx.QueryRow(ctx, lockOrderQuery, bulkOrderID), &order); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		locked, err := lockRFQ(ctx, tx, rfqID)
		if err != nil {
			return err
		}
		rfq = *locked
		if rfq.Status == model.RFQStatusAccepted {
			return domainErrors.ErrOfferAccepted
		}

		const siblingQuery = `SELECT EXISTS(SELECT 1 FROM rfqs WHERE bulk_order_id=$1 AND status='Accepted' AND id<>$2)`
		var siblingAccepted bool
		if err := tx.QueryRow(ctx, siblingQuery, bulkOrderID, rfqID).Scan(&siblingAccepted); err != nil {
			return err
		}
		if siblingAccepted {
			return domainErrors.ErrOfferAccepted
		}

		const updateOrder = `UPDATE bulk_orders
            SET status='Processing', payment_info=$1, paid_at=NOW(), accepted_offer=$2, updated_at=NOW()
            WHERE id=$3
            RETURNING paid_at, updated_at`
		if err := tx.QueryRow(ctx, updateOrder, paymentInfo, rfqID, bulkOrderID).Scan(&order.PaidAt, &order.UpdatedAt); err != nil {
			return err
		}
		order.Status = model.BulkOrderStatusProcessing
		order.PaymentInfo = paymentInfo
		accepted := rfqID
		order.AcceptedOffer = &accepted

		const acceptRFQ = `UPDATE rfqs SET status='Accepted', updated_at=NOW() WHERE id=$1 RETURNING updated_at`
		if err := tx.QueryRow(ctx, acceptRFQ, rfqID).Scan(&rfq.UpdatedAt); err != nil {
			return err
		}
		rfq.Status = model.RFQStatusAccepted

		const declineSiblings = `UPDATE rfqs SET status='Declined', updated_at=NOW() WHERE bulk_order_id=$1 AND id<>$2`
		if _, err := tx.Exec(ctx, declineSiblings, bulkOrderID, rfqID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &order, &rfq, nil
}

func lockRFQ(ctx context.Context, tx pgx.Tx, rfqID uuid.UUID) (*model.RFQ, error) {
	query := `SELECT ` + rfqColumns + ` FROM rfqs WHERE id=$1 FOR UPDATE`
	var rfq model.RFQ
	if err := scanRFQ(tx.QueryRow(ctx, query, rfqID), &rfq); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &rfq, nil
}

func writeOffer(ctx context.Context, tx pgx.Tx, rfqID uuid.UUID, offer model.Offer, status model.RFQStatus, updated *model.RFQ) error {
	query := `UPDATE rfqs
        SET price=$1, price_per_unit=$2, delivery_time=$3, terms=$4, warranty=$5,
            available_quantity=$6, expiration_date=$7, packaging_details=$8, status=$9, updated_at=NOW()
        WHERE id=$10
        RETURNING ` + rfqColumns
	return scanRFQ(tx.QueryRow(ctx, query,
		offer.Price, offer.PricePerUnit, offer.DeliveryTime, offer.Terms, offer.Warranty,
		offer.AvailableQuantity, offer.ExpirationDate, offer.PackagingDetails, status, rfqID,
	), updated)
}

// --- CatalogRepository implementation ---

func (r *catalogRepository) SellersForCategory(ctx context.Context, category string) ([]model.Shop, error) {
	const query = `SELECT DISTINCT s.id, s.name, COALESCE(s.email, ''), COALESCE(s.phone_number, ''), s.created_at
        FROM products p
        JOIN shops s ON s.id = p.shop_id
        WHERE p.category=$1
        ORDER BY s.id`

	rows, err := r.storage.pool.Query(ctx, query, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Shop
	for rows.Next() {
		var s model.Shop
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.PhoneNumber, &s.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *catalogRepository) ShopByID(ctx context.Context, id uuid.UUID) (*model.Shop, error) {
	const query = `SELECT id, name, email, phone_number, created_at FROM shops WHERE id=$1`
	var s model.Shop
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Email, &s.PhoneNumber, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *catalogRepository) UserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	const query = `SELECT id, name, email, phone_number, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.PhoneNumber, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
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
