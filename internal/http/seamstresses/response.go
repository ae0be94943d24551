package seamstresses

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stitchworks/atelier/internal/seamstress"
)

type seamstressResponse struct {
	ID           uuid.UUID             `json:"id"`
	InternalCode string                `json:"internalCode"`
	Location     *locationResponse     `json:"location,omitempty"`
	BusinessInfo *businessInfoResponse `json:"businessInfo,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    *time.Time            `json:"updatedAt,omitempty"`
}

type locationResponse struct {
	ID               uuid.UUID        `json:"id"`
	FormattedAddress string           `json:"formattedAddress"`
	Route            string           `json:"route"`
	StreetNumber     string           `json:"streetNumber"`
	Subpremise       *string          `json:"subpremise,omitempty"`
	Sublocality      string           `json:"sublocality"`
	Locality         string           `json:"locality"`
	State            string           `json:"state"`
	Country          string           `json:"country"`
	PostalCode       string           `json:"postalCode"`
	Lat              *decimal.Decimal `json:"lat,omitempty"`
	Lng              *decimal.Decimal `json:"lng,omitempty"`
}

type businessInfoResponse struct {
	ID                  uuid.UUID `json:"id"`
	NameCorporateReason string    `json:"nameCorporateReason"`
	CNPJCPF             string    `json:"cnpjCpf"`
	Email               *string   `json:"email,omitempty"`
	PhoneFax            *string   `json:"phoneFax,omitempty"`
	Contact             *string   `json:"contact,omitempty"`
	TradeName           *string   `json:"tradeName,omitempty"`
}

func toResponse(rec *seamstress.Seamstress) seamstressResponse {
	resp := seamstressResponse{
		ID:           rec.ID,
		InternalCode: rec.InternalCode,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}

	if rec.Location != nil {
		resp.Location = &locationResponse{
			ID:               rec.Location.ID,
			FormattedAddress: rec.Location.FormattedAddress,
			Route:            rec.Location.Route,
			StreetNumber:     rec.Location.StreetNumber,
			Subpremise:       rec.Location.Subpremise,
			Sublocality:      rec.Location.Sublocality,
			Locality:         rec.Location.Locality,
			State:            rec.Location.AdministrativeAreaLevel1,
			Country:          rec.Location.Country,
			PostalCode:       rec.Location.PostalCode,
			Lat:              rec.Location.Lat,
			Lng:              rec.Location.Lng,
		}
	}

	if rec.BusinessInfo != nil {
		resp.BusinessInfo = &businessInfoResponse{
			ID:                  rec.BusinessInfo.ID,
			NameCorporateReason: rec.BusinessInfo.NameCorporateReason,
			CNPJCPF:             rec.BusinessInfo.CNPJCPF,
			Email:               rec.BusinessInfo.Email,
			PhoneFax:            rec.BusinessInfo.PhoneFax,
			Contact:             rec.BusinessInfo.Contact,
			TradeName:           rec.BusinessInfo.TradeName,
		}
	}

	return resp
}

func toResponseList(records []*seamstress.Seamstress) []seamstressResponse {
	resp := make([]seamstressResponse, len(records))
	for i, rec := range records {
		resp[i] = toResponse(rec)
	}

	return resp
}
