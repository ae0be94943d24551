package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchworks/atelier/internal/seamstress"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectSeamstressColumns = `
	r.id, r.internal_code, r.location_id, r.business_info_id,
	r.created_at, r.updated_at, r.deleted_at,
	l.route, l.street_number, l.subpremise, l.sublocality, l.locality,
	l.administrative_area_level_1, l.administrative_area_level_2, l.country,
	l.postal_code, l.formatted_address, l.lat, l.lng, l.created_at,
	b.name_corporate_reason, b.cnpj_cpf, b.email, b.phone_fax, b.contact,
	b.state_registration, b.trade_name, b.modification_date, b.created_at
`

const seamstressJoins = `
	FROM seamstresses r
	JOIN locations l ON r.location_id = l.id
	JOIN business_infos b ON r.business_info_id = b.id
`

func scanSeamstress(sc scanner) (*seamstress.Seamstress, error) {
	var (
		rec seamstress.Seamstress
		loc seamstress.Location
		biz seamstress.BusinessInfo

		lat, lng sql.NullString
	)

	if err := sc.Scan(
		&rec.ID, &rec.InternalCode, &rec.LocationID, &rec.BusinessInfoID,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.DeletedAt,
		&loc.Route, &loc.StreetNumber, &loc.Subpremise, &loc.Sublocality, &loc.Locality,
		&loc.AdministrativeAreaLevel1, &loc.AdministrativeAreaLevel2, &loc.Country,
		&loc.PostalCode, &loc.FormattedAddress, &lat, &lng, &loc.CreatedAt,
		&biz.NameCorporateReason, &biz.CNPJCPF, &biz.Email, &biz.PhoneFax, &biz.Contact,
		&biz.StateRegistration, &biz.TradeName, &biz.ModificationDate, &biz.CreatedAt,
	); err != nil {
		return nil, err
	}

	if lat.Valid && lng.Valid {
		latDec, err := decimal.NewFromString(lat.String)
		if err != nil {
			return nil, fmt.Errorf("parsing lat: %w", err)
		}

		lngDec, err := decimal.NewFromString(lng.String)
		if err != nil {
			return nil, fmt.Errorf("parsing lng: %w", err)
		}

		loc.Lat = &latDec
		loc.Lng = &lngDec
	}

	loc.ID = rec.LocationID
	biz.ID = rec.BusinessInfoID
	rec.Location = &loc
	rec.BusinessInfo = &biz

	return &rec, nil
}

func (s *Store) GetSeamstress(ctx context.Context, id uuid.UUID) (*seamstress.Seamstress, error) {
	query := `SELECT` + selectSeamstressColumns + seamstressJoins + `WHERE r.id = $1 AND r.deleted_at IS NULL`

	rec, err := scanSeamstress(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, seamstress.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading seamstress: %w", err)
	}

	return rec, nil
}

func (s *Store) GetSeamstressByCode(ctx context.Context, internalCode string) (*seamstress.Seamstress, error) {
	query := `SELECT` + selectSeamstressColumns + seamstressJoins + `WHERE r.internal_code = $1 AND r.deleted_at IS NULL`

	rec, err := scanSeamstress(s.db.QueryRowContext(ctx, query, internalCode))
	if err == sql.ErrNoRows {
		return nil, seamstress.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading seamstress by code: %w", err)
	}

	return rec, nil
}

func (s *Store) ListSeamstresses(ctx context.Context) ([]*seamstress.Seamstress, error) {
	query := `SELECT` + selectSeamstressColumns + seamstressJoins + `
		WHERE r.deleted_at IS NULL
		ORDER BY b.name_corporate_reason
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing seamstresses: %w", err)
	}
	defer rows.Close()

	var records []*seamstress.Seamstress

	for rows.Next() {
		rec, err := scanSeamstress(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning seamstress: %w", err)
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}

func (s *Store) ListUnresolvedLocations(ctx context.Context) ([]*seamstress.Location, error) {
	query := `
		SELECT id, route, street_number, subpremise, sublocality, locality,
			administrative_area_level_1, administrative_area_level_2, country,
			postal_code, formatted_address, created_at
		FROM locations
		WHERE lat IS NULL OR lng IS NULL
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing unresolved locations: %w", err)
	}
	defer rows.Close()

	var locations []*seamstress.Location

	for rows.Next() {
		var loc seamstress.Location
		if err := rows.Scan(
			&loc.ID, &loc.Route, &loc.StreetNumber, &loc.Subpremise, &loc.Sublocality,
			&loc.Locality, &loc.AdministrativeAreaLevel1, &loc.AdministrativeAreaLevel2,
			&loc.Country, &loc.PostalCode, &loc.FormattedAddress, &loc.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning location: %w", err)
		}

		locations = append(locations, &loc)
	}

	return locations, rows.Err()
}

func (s *Store) SetLocationCoordinates(ctx context.Context, id uuid.UUID, lat, lng decimal.Decimal) error {
	query := `UPDATE locations SET lat = $2, lng = $3 WHERE id = $1`

	if _, err := s.db.ExecContext(ctx, query, id, lat, lng); err != nil {
		return fmt.Errorf("setting location coordinates: %w", err)
	}

	return nil
}
