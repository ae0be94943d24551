package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stitchworks/atelier/internal/geocode"
	"github.com/stitchworks/atelier/internal/syncer"
)

// Store implements the sync repository. Get-or-create primitives rely on
// the unique constraints over the natural keys: an insert that loses a race
// hits ON CONFLICT DO NOTHING and the row is re-fetched by its key.
type Store struct {
	db  *sql.DB
	geo geocode.Geocoder
}

func New(db *sql.DB, geo geocode.Geocoder) *Store {
	return &Store{db: db, geo: geo}
}

func (s *Store) LastImport(ctx context.Context) (*syncer.ImportBatch, error) {
	query := `
		SELECT id, shipments, created_at
		FROM import_batches
		ORDER BY created_at DESC
		LIMIT 1
	`

	var (
		batch   syncer.ImportBatch
		numbers textArray
	)

	if err := s.db.QueryRowContext(ctx, query).Scan(&batch.ID, &numbers, &batch.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("loading last import: %w", err)
	}

	batch.Shipments = numbers

	return &batch, nil
}

func (s *Store) ListImports(ctx context.Context) ([]*syncer.ImportBatch, error) {
	query := `
		SELECT id, shipments, created_at
		FROM import_batches
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing imports: %w", err)
	}
	defer rows.Close()

	var batches []*syncer.ImportBatch

	for rows.Next() {
		var (
			batch   syncer.ImportBatch
			numbers textArray
		)

		if err := rows.Scan(&batch.ID, &numbers, &batch.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning import batch: %w", err)
		}

		batch.Shipments = numbers
		batches = append(batches, &batch)
	}

	return batches, rows.Err()
}

type syncTx struct {
	tx  *sql.Tx
	geo geocode.Geocoder
}

func (s *Store) BeginSync(ctx context.Context) (syncer.SyncTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning sync tx: %w", err)
	}

	return &syncTx{tx: tx, geo: s.geo}, nil
}

func (t *syncTx) Commit() error   { return t.tx.Commit() }
func (t *syncTx) Rollback() error { return t.tx.Rollback() }

func (t *syncTx) ShipmentExists(ctx context.Context, number string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM shipments WHERE number = $1)`
	if err := t.tx.QueryRowContext(ctx, query, number).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking shipment number: %w", err)
	}

	return exists, nil
}

// GetOrCreateLocation reconciles by formatted address. A brand-new address
// is geocoded before insert; when geocoding fails the whole batch
// transaction aborts rather than persisting an unresolvable location.
func (t *syncTx) GetOrCreateLocation(ctx context.Context, params syncer.LocationParams) (uuid.UUID, error) {
	var id uuid.UUID

	selectQuery := `SELECT id FROM locations WHERE formatted_address = $1 LIMIT 1`

	err := t.tx.QueryRowContext(ctx, selectQuery, params.FormattedAddress).Scan(&id)
	if err == nil {
		return id, nil
	}

	if err != sql.ErrNoRows {
		return uuid.Nil, fmt.Errorf("looking up location: %w", err)
	}

	point, err := t.geo.Geocode(ctx, params.FormattedAddress)
	if err != nil {
		return uuid.Nil, fmt.Errorf("geocoding %q: %w", params.FormattedAddress, err)
	}

	insertQuery := `
		INSERT INTO locations (
			route, street_number, subpremise, sublocality, locality,
			administrative_area_level_1, country, postal_code,
			formatted_address, lat, lng, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (formatted_address) DO NOTHING
		RETURNING id
	`

	err = t.tx.QueryRowContext(ctx, insertQuery,
		params.Route, params.StreetNumber, params.Subpremise, params.Sublocality,
		params.Locality, params.AdministrativeAreaLevel1, params.Country,
		params.PostalCode, params.FormattedAddress, point.Lat, point.Lng,
	).Scan(&id)
	if err == nil {
		return id, nil
	}

	if err != sql.ErrNoRows {
		return uuid.Nil, fmt.Errorf("inserting location: %w", err)
	}

	// Lost the race: another caller inserted the same address.
	if err := t.tx.QueryRowContext(ctx, selectQuery, params.FormattedAddress).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("re-fetching location: %w", err)
	}

	return id, nil
}

func (t *syncTx) GetOrCreateBusinessInfo(ctx context.Context, params syncer.BusinessInfoParams) (uuid.UUID, error) {
	selectQuery := `SELECT id FROM business_infos WHERE name_corporate_reason = $1 LIMIT 1`
	insertQuery := `
		INSERT INTO business_infos (
			name_corporate_reason, cnpj_cpf, phone_fax, contact,
			state_registration, trade_name, modification_date, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (name_corporate_reason) DO NOTHING
		RETURNING id
	`

	return t.getOrCreate(ctx, "business info",
		func() (uuid.UUID, error) {
			var id uuid.UUID
			err := t.tx.QueryRowContext(ctx, selectQuery, params.NameCorporateReason).Scan(&id)

			return id, err
		},
		func() (uuid.UUID, error) {
			var id uuid.UUID
			err := t.tx.QueryRowContext(ctx, insertQuery,
				params.NameCorporateReason, params.CNPJCPF, params.PhoneFax, params.Contact,
				params.StateRegistration, params.TradeName, params.ModificationDate,
			).Scan(&id)

			return id, err
		},
	)
}

func (t *syncTx) GetOrCreateSeamstress(ctx context.Context, internalCode string, locationID, businessInfoID uuid.UUID) (uuid.UUID, error) {
	selectQuery := `SELECT id FROM seamstresses WHERE internal_code = $1 LIMIT 1`
	insertQuery := `
		INSERT INTO seamstresses (internal_code, location_id, business_info_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (internal_code) DO NOTHING
		RETURNING id
	`

	return t.getOrCreate(ctx, "seamstress",
		func() (uuid.UUID, error) {
			var id uuid.UUID
			err := t.tx.QueryRowContext(ctx, selectQuery, internalCode).Scan(&id)

			return id, err
		},
		func() (uuid.UUID, error) {
			var id uuid.UUID
			err := t.tx.QueryRowContext(ctx, insertQuery, internalCode, locationID, businessInfoID).Scan(&id)

			return id, err
		},
	)
}

// CreateFinancialSummary always inserts a fresh row: summaries are
// one-to-one with shipments and carry no natural key of their own.
func (t *syncTx) CreateFinancialSummary(ctx context.Context, params syncer.FinancialParams) (uuid.UUID, error) {
	query := `
		INSERT INTO financial_summaries (
			icms_base, icms_value, st_icms_base, st_icms_value, fcp_value,
			pis_value, cofins_value, ipi_value, total_product_value,
			freight_value, insurance_value, discount, other_expenses,
			total_invoice_value, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW())
		RETURNING id
	`

	var id uuid.UUID

	err := t.tx.QueryRowContext(ctx, query,
		params.ICMSBase, params.ICMSValue, params.STICMSBase, params.STICMSValue,
		params.FCPValue, params.PISValue, params.COFINSValue, params.IPIValue,
		params.TotalProductValue, params.FreightValue, params.InsuranceValue,
		params.Discount, params.OtherExpenses, params.TotalInvoiceValue,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting financial summary: %w", err)
	}

	return id, nil
}

// CreateShipment inserts keyed by number. A conflict means the shipment was
// imported before (or concurrently); the pre-existing row is returned so a
// double-import never duplicates an invoice.
func (t *syncTx) CreateShipment(ctx context.Context, record *syncer.Record, recipientID, financialSummaryID uuid.UUID) (uuid.UUID, error) {
	selectQuery := `SELECT id FROM shipments WHERE number = $1 LIMIT 1`
	insertQuery := `
		INSERT INTO shipments (
			number, access_key, series, type, authorization_protocol,
			issue_date, entry_exit_date, entry_exit_time, transportation_type,
			recipient_id, financial_summary_id, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (number) DO NOTHING
		RETURNING id
	`

	issueDate := record.IssueDate
	if issueDate.IsZero() {
		issueDate = time.Now().UTC()
	}

	return t.getOrCreate(ctx, "shipment",
		func() (uuid.UUID, error) {
			var id uuid.UUID
			err := t.tx.QueryRowContext(ctx, selectQuery, record.Number).Scan(&id)

			return id, err
		},
		func() (uuid.UUID, error) {
			var id uuid.UUID
			err := t.tx.QueryRowContext(ctx, insertQuery,
				record.Number, record.AccessKey, record.Series, record.Type,
				record.AuthorizationProtocol, issueDate, record.EntryExitDate,
				record.EntryExitTime, record.TransportationType,
				recipientID, financialSummaryID,
			).Scan(&id)

			return id, err
		},
	)
}

func (t *syncTx) GetOrCreateShipmentItems(ctx context.Context, shipmentID uuid.UUID, items []syncer.ItemParams) ([]syncer.ItemLink, error) {
	links := make([]syncer.ItemLink, 0, len(items))

	for _, item := range items {
		unitID, err := t.getOrCreateUnit(ctx, item.Unit)
		if err != nil {
			return nil, err
		}

		productID, err := t.getOrCreateProduct(ctx, item)
		if err != nil {
			return nil, err
		}

		itemID, err := t.getOrCreateItem(ctx, shipmentID, productID, unitID, item)
		if err != nil {
			return nil, err
		}

		links = append(links, syncer.ItemLink{ItemID: itemID, OrderCode: item.OrderCode})
	}

	return links, nil
}

func (t *syncTx) getOrCreateUnit(ctx context.Context, name string) (*uuid.UUID, error) {
	if name == "" {
		return nil, nil
	}

	selectQuery := `SELECT id FROM units WHERE unit_name = $1 LIMIT 1`
	insertQuery := `
		INSERT INTO units (unit_name)
		VALUES ($1)
		ON CONFLICT (unit_name) DO NOTHING
		RETURNING id
	`

	id, err := t.getOrCreate(ctx, "unit",
		func() (uuid.UUID, error) {
			var id uuid.UUID
			err := t.tx.QueryRowContext(ctx, selectQuery, name).Scan(&id)

			return id, err
		},
		func() (uuid.UUID, error) {
			var id uuid.UUID
			err := t.tx.QueryRowContext(ctx, insertQuery, name).Scan(&id)

			return id, err
		},
	)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func (t *syncTx) getOrCreateProduct(ctx context.Context, item syncer.ItemParams) (uuid.UUID, error) {
	selectQuery := `SELECT id FROM products WHERE code = $1 LIMIT 1`
	insertQuery := `
		INSERT INTO products (code, description, price, category, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (code) DO NOTHING
		RETURNING id
	`

	return t.getOrCreate(ctx, "product",
		func() (uuid.UUID, error) {
			var id uuid.UUID
			err := t.tx.QueryRowContext(ctx, selectQuery, item.Code).Scan(&id)

			return id, err
		},
		func() (uuid.UUID, error) {
			var id uuid.UUID
			err := t.tx.QueryRowContext(ctx, insertQuery, item.Code, item.Description, item.Price, item.Category).Scan(&id)

			return id, err
		},
	)
}

// getOrCreateItem is keyed by (shipment, product, quantity): re-processing
// the same invoice line is a no-op while distinct quantities stay distinct
// rows.
func (t *syncTx) getOrCreateItem(ctx context.Context, shipmentID, productID uuid.UUID, unitID *uuid.UUID, item syncer.ItemParams) (uuid.UUID, error) {
	selectQuery := `
		SELECT id FROM shipment_items
		WHERE shipment_id = $1 AND product_id = $2 AND quantity = $3
		LIMIT 1
	`
	insertQuery := `
		INSERT INTO shipment_items (shipment_id, product_id, unit_id, quantity, produced_quantity, unit_price, created_at)
		VALUES ($1, $2, $3, $4, 0, $5, NOW())
		ON CONFLICT (shipment_id, product_id, quantity) DO NOTHING
		RETURNING id
	`

	return t.getOrCreate(ctx, "shipment item",
		func() (uuid.UUID, error) {
			var id uuid.UUID
			err := t.tx.QueryRowContext(ctx, selectQuery, shipmentID, productID, item.Quantity).Scan(&id)

			return id, err
		},
		func() (uuid.UUID, error) {
			var id uuid.UUID
			err := t.tx.QueryRowContext(ctx, insertQuery, shipmentID, productID, unitID, item.Quantity, item.UnitPrice).Scan(&id)

			return id, err
		},
	)
}

// GetOrCreateOrders batch-inserts with conflict-ignore, then re-selects the
// whole code set in one round trip so new and pre-existing orders come back
// together.
func (t *syncTx) GetOrCreateOrders(ctx context.Context, codes []string) (map[string]uuid.UUID, error) {
	distinct := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))

	for _, code := range codes {
		if code == "" {
			continue
		}

		if _, ok := seen[code]; ok {
			continue
		}

		seen[code] = struct{}{}
		distinct = append(distinct, code)
	}

	if len(distinct) == 0 {
		return map[string]uuid.UUID{}, nil
	}

	insertQuery := `
		INSERT INTO orders (code_reference, created_at)
		SELECT unnest($1::text[]), NOW()
		ON CONFLICT (code_reference) DO NOTHING
	`
	if _, err := t.tx.ExecContext(ctx, insertQuery, textArray(distinct)); err != nil {
		return nil, fmt.Errorf("inserting orders: %w", err)
	}

	selectQuery := `SELECT id, code_reference FROM orders WHERE code_reference = ANY($1::text[])`

	rows, err := t.tx.QueryContext(ctx, selectQuery, textArray(distinct))
	if err != nil {
		return nil, fmt.Errorf("selecting orders: %w", err)
	}
	defer rows.Close()

	orders := make(map[string]uuid.UUID, len(distinct))

	for rows.Next() {
		var (
			id   uuid.UUID
			code string
		)

		if err := rows.Scan(&id, &code); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}

		orders[code] = id
	}

	return orders, rows.Err()
}

func (t *syncTx) LinkShipmentToOrders(ctx context.Context, shipmentID uuid.UUID, orderIDs []uuid.UUID) error {
	query := `
		INSERT INTO shipments_to_orders (shipment_id, order_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	for _, orderID := range orderIDs {
		if _, err := t.tx.ExecContext(ctx, query, shipmentID, orderID); err != nil {
			return fmt.Errorf("linking shipment to order: %w", err)
		}
	}

	return nil
}

func (t *syncTx) LinkItemsToOrders(ctx context.Context, links []syncer.ItemOrderLink) error {
	query := `
		INSERT INTO shipment_items_to_orders (shipment_item_id, order_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	for _, link := range links {
		if _, err := t.tx.ExecContext(ctx, query, link.ItemID, link.OrderID); err != nil {
			return fmt.Errorf("linking item to order: %w", err)
		}
	}

	return nil
}

func (t *syncTx) RecordImport(ctx context.Context, numbers []string) error {
	query := `
		INSERT INTO import_batches (shipments, created_at)
		VALUES ($1, NOW())
	`

	if _, err := t.tx.ExecContext(ctx, query, textArray(numbers)); err != nil {
		return fmt.Errorf("inserting import batch: %w", err)
	}

	return nil
}

// getOrCreate runs the insert-then-refetch protocol: select by natural key,
// insert on miss, and on a lost race (conflict-ignored insert returning no
// row) select again.
func (t *syncTx) getOrCreate(ctx context.Context, entity string, selectFn, insertFn func() (uuid.UUID, error)) (uuid.UUID, error) {
	id, err := selectFn()
	if err == nil {
		return id, nil
	}

	if err != sql.ErrNoRows {
		return uuid.Nil, fmt.Errorf("looking up %s: %w", entity, err)
	}

	id, err = insertFn()
	if err == nil {
		return id, nil
	}

	if err != sql.ErrNoRows {
		return uuid.Nil, fmt.Errorf("inserting %s: %w", entity, err)
	}

	id, err = selectFn()
	if err != nil {
		return uuid.Nil, fmt.Errorf("re-fetching %s: %w", entity, err)
	}

	return id, nil
}
