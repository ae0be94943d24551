package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchworks/atelier/internal/seamstress"
	"github.com/stitchworks/atelier/internal/shipment"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectShipmentColumns = `
	s.id, s.number, s.access_key, s.series, s.type, s.authorization_protocol,
	s.issue_date, s.entry_exit_date, s.entry_exit_time, s.transportation_type,
	s.recipient_id, s.financial_summary_id,
	s.confirmed_at, s.delivered_at, s.finished_at, s.collected_at, s.refused_at,
	s.archived_at, s.system_estimation, s.informed_estimation,
	s.created_at, s.updated_at, s.deleted_at,
	r.internal_code, r.location_id, r.business_info_id,
	l.route, l.street_number, l.subpremise, l.sublocality, l.locality,
	l.administrative_area_level_1, l.administrative_area_level_2, l.country,
	l.postal_code, l.formatted_address, l.lat, l.lng,
	b.name_corporate_reason, b.cnpj_cpf, b.email, b.phone_fax, b.contact,
	b.state_registration, b.trade_name, b.modification_date,
	f.icms_base, f.icms_value, f.st_icms_base, f.st_icms_value, f.fcp_value,
	f.pis_value, f.cofins_value, f.ipi_value, f.total_product_value,
	f.freight_value, f.insurance_value, f.discount, f.other_expenses,
	f.total_invoice_value
`

const shipmentJoins = `
	FROM shipments s
	JOIN seamstresses r ON s.recipient_id = r.id
	JOIN locations l ON r.location_id = l.id
	JOIN business_infos b ON r.business_info_id = b.id
	JOIN financial_summaries f ON s.financial_summary_id = f.id
`

// scanShipment reads one joined row. Column order must match
// selectShipmentColumns.
func scanShipment(sc scanner) (*shipment.Shipment, error) {
	var (
		sh  shipment.Shipment
		rec seamstress.Seamstress
		loc seamstress.Location
		biz seamstress.BusinessInfo
		fin shipment.FinancialSummary

		lat, lng sql.NullString
	)

	if err := sc.Scan(
		&sh.ID, &sh.Number, &sh.AccessKey, &sh.Series, &sh.Type, &sh.AuthorizationProtocol,
		&sh.IssueDate, &sh.EntryExitDate, &sh.EntryExitTime, &sh.TransportationType,
		&sh.RecipientID, &sh.FinancialSummaryID,
		&sh.ConfirmedAt, &sh.DeliveredAt, &sh.FinishedAt, &sh.CollectedAt, &sh.RefusedAt,
		&sh.ArchivedAt, &sh.SystemEstimation, &sh.InformedEstimation,
		&sh.CreatedAt, &sh.UpdatedAt, &sh.DeletedAt,
		&rec.InternalCode, &rec.LocationID, &rec.BusinessInfoID,
		&loc.Route, &loc.StreetNumber, &loc.Subpremise, &loc.Sublocality, &loc.Locality,
		&loc.AdministrativeAreaLevel1, &loc.AdministrativeAreaLevel2, &loc.Country,
		&loc.PostalCode, &loc.FormattedAddress, &lat, &lng,
		&biz.NameCorporateReason, &biz.CNPJCPF, &biz.Email, &biz.PhoneFax, &biz.Contact,
		&biz.StateRegistration, &biz.TradeName, &biz.ModificationDate,
		&fin.ICMSBase, &fin.ICMSValue, &fin.STICMSBase, &fin.STICMSValue, &fin.FCPValue,
		&fin.PISValue, &fin.COFINSValue, &fin.IPIValue, &fin.TotalProductValue,
		&fin.FreightValue, &fin.InsuranceValue, &fin.Discount, &fin.OtherExpenses,
		&fin.TotalInvoiceValue,
	); err != nil {
		return nil, err
	}

	rec.ID = sh.RecipientID
	loc.ID = rec.LocationID
	biz.ID = rec.BusinessInfoID
	fin.ID = sh.FinancialSummaryID

	if lat.Valid {
		d, err := decimal.NewFromString(lat.String)
		if err == nil {
			loc.Lat = &d
		}
	}

	if lng.Valid {
		d, err := decimal.NewFromString(lng.String)
		if err == nil {
			loc.Lng = &d
		}
	}

	rec.Location = &loc
	rec.BusinessInfo = &biz
	sh.Recipient = &rec
	sh.FinancialSummary = &fin

	return &sh, nil
}

func (s *Store) GetShipment(ctx context.Context, id uuid.UUID) (*shipment.Shipment, error) {
	query := `SELECT ` + selectShipmentColumns + shipmentJoins + `
		WHERE s.id = $1 AND s.deleted_at IS NULL`

	sh, err := scanShipment(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, shipment.ErrNotFound
		}

		return nil, fmt.Errorf("getting shipment: %w", err)
	}

	if err := s.loadItems(ctx, []*shipment.Shipment{sh}); err != nil {
		return nil, err
	}

	return sh, nil
}

func (s *Store) ListShipments(ctx context.Context, filter shipment.ListFilter) ([]*shipment.Shipment, error) {
	query := `SELECT ` + selectShipmentColumns + shipmentJoins + `
		WHERE s.deleted_at IS NULL`

	var args []any

	argIdx := 1

	if filter.Archived {
		query += " AND s.confirmed_at IS NOT NULL"
	} else {
		query += " AND s.archived_at IS NULL"
	}

	if filter.RecipientID != nil {
		query += fmt.Sprintf(" AND s.recipient_id = $%d", argIdx)

		args = append(args, *filter.RecipientID)
		argIdx++
	}

	query += " ORDER BY s.issue_date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing shipments: %w", err)
	}
	defer rows.Close()

	var shipments []*shipment.Shipment

	for rows.Next() {
		sh, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning shipment: %w", err)
		}

		shipments = append(shipments, sh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating shipment rows: %w", err)
	}

	if err := s.loadItems(ctx, shipments); err != nil {
		return nil, err
	}

	return shipments, nil
}

// loadItems attaches line items (with product and unit) to each shipment.
func (s *Store) loadItems(ctx context.Context, shipments []*shipment.Shipment) error {
	if len(shipments) == 0 {
		return nil
	}

	byID := make(map[uuid.UUID]*shipment.Shipment, len(shipments))
	ids := make([]string, 0, len(shipments))

	for _, sh := range shipments {
		byID[sh.ID] = sh
		ids = append(ids, sh.ID.String())
	}

	query := `
		SELECT i.id, i.shipment_id, i.product_id, i.unit_id,
			i.quantity, i.produced_quantity, i.unit_price, i.quantity * i.unit_price,
			i.created_at,
			p.code, p.description, p.price, p.category,
			u.unit_name
		FROM shipment_items i
		JOIN products p ON i.product_id = p.id
		LEFT JOIN units u ON i.unit_id = u.id
		WHERE i.shipment_id = ANY(string_to_array($1, ',')::uuid[])
		ORDER BY i.created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, strings.Join(ids, ","))
	if err != nil {
		return fmt.Errorf("listing shipment items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item     shipment.Item
			product  shipment.Product
			price    sql.NullString
			unitName sql.NullString
		)

		if err := rows.Scan(
			&item.ID, &item.ShipmentID, &item.ProductID, &item.UnitID,
			&item.Quantity, &item.ProducedQuantity, &item.UnitPrice, &item.TotalPrice,
			&item.CreatedAt,
			&product.Code, &product.Description, &price, &product.Category,
			&unitName,
		); err != nil {
			return fmt.Errorf("scanning shipment item: %w", err)
		}

		product.ID = item.ProductID

		if price.Valid {
			if d, err := decimal.NewFromString(price.String); err == nil {
				product.Price = d
			}
		}

		item.Product = &product

		if item.UnitID != nil && unitName.Valid {
			item.Unit = &shipment.Unit{ID: *item.UnitID, Name: unitName.String}
		}

		if sh, ok := byID[item.ShipmentID]; ok {
			sh.Items = append(sh.Items, &item)
		}
	}

	return rows.Err()
}

// markerColumns in the order the plan declares them.
var markerColumns = []string{
	"confirmed_at", "delivered_at", "finished_at", "collected_at", "refused_at",
}

func planOps(plan shipment.TransitionPlan) []shipment.MarkerOp {
	return []shipment.MarkerOp{
		plan.ConfirmedAt, plan.DeliveredAt, plan.FinishedAt, plan.CollectedAt, plan.RefusedAt,
	}
}

// ApplyTransition performs the transition and patch in one UPDATE so no
// reader ever observes a partially applied marker set.
func (s *Store) ApplyTransition(ctx context.Context, id uuid.UUID, plan shipment.TransitionPlan, patch shipment.UpdateFields, now time.Time) (*shipment.Shipment, error) {
	sets := []string{"updated_at = NOW()"}

	var args []any

	argIdx := 1

	addArg := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, argIdx))
		args = append(args, value)
		argIdx++
	}

	for i, op := range planOps(plan) {
		switch op {
		case shipment.OpSet:
			addArg(markerColumns[i], now)
		case shipment.OpClear:
			sets = append(sets, markerColumns[i]+" = NULL")
		}
	}

	if patch.InformedEstimation != nil {
		addArg("informed_estimation", *patch.InformedEstimation)
	}

	if patch.SystemEstimation != nil {
		addArg("system_estimation", *patch.SystemEstimation)
	}

	if patch.ArchivedAt != nil {
		addArg("archived_at", *patch.ArchivedAt)
	}

	query := "UPDATE shipments SET "

	for i, set := range sets {
		if i > 0 {
			query += ", "
		}

		query += set
	}

	query += fmt.Sprintf(" WHERE id = $%d AND deleted_at IS NULL RETURNING id", argIdx)
	args = append(args, id)

	var updatedID uuid.UUID
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == sql.ErrNoRows {
			return nil, shipment.ErrNotFound
		}

		return nil, fmt.Errorf("applying transition: %w", err)
	}

	return s.GetShipment(ctx, updatedID)
}

func (s *Store) SoftDeleteShipment(ctx context.Context, id uuid.UUID) (*shipment.Shipment, error) {
	sh, err := s.GetShipment(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE shipments
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	if _, err := s.db.ExecContext(ctx, query, id); err != nil {
		return nil, fmt.Errorf("deleting shipment: %w", err)
	}

	return sh, nil
}
