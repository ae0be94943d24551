package syncer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/stitchworks/atelier/internal/erp"
	"github.com/stitchworks/atelier/internal/events"
	"github.com/stitchworks/atelier/internal/shipment"
)

// crossRefConcurrency bounds the parallel profile fetches against the
// upstream webservice.
const crossRefConcurrency = 8

// ShipmentLoader fetches the full persisted shipment after commit so the
// published event carries the complete record.
type ShipmentLoader interface {
	GetShipment(ctx context.Context, id uuid.UUID) (*shipment.Shipment, error)
}

type Service struct {
	erp       erp.Client
	repo      Repository
	shipments ShipmentLoader
	publisher events.Publisher
}

func NewService(erpClient erp.Client, repo Repository, shipments ShipmentLoader, publisher events.Publisher) *Service {
	return &Service{
		erp:       erpClient,
		repo:      repo,
		shipments: shipments,
		publisher: publisher,
	}
}

func (s *Service) ListImports(ctx context.Context) ([]*ImportBatch, error) {
	return s.repo.ListImports(ctx)
}

// Overdue reports whether no run has succeeded within staleAfter.
// A database without any import batch yet counts as overdue.
func (s *Service) Overdue(ctx context.Context, staleAfter time.Duration) (bool, error) {
	last, err := s.repo.LastImport(ctx)
	if err != nil {
		return false, fmt.Errorf("loading last import: %w", err)
	}

	if last == nil {
		return true, nil
	}

	return time.Since(last.CreatedAt) >= staleAfter, nil
}

// Run executes one synchronization pass for the given date and returns how
// many shipments were newly imported. An upstream service exception ends
// the run quietly with zero. Run never panics out into the host: the
// pipeline must stay safe to re-invoke on the next tick.
func (s *Service) Run(ctx context.Context, date time.Time) (imported int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sync run panicked: %v", r)
		}
	}()

	invoices, err := s.erp.ListInvoices(ctx, date)
	if err != nil {
		var svcErr *erp.ServiceError
		if errors.As(err, &svcErr) {
			slog.Info("erp reported a service exception, nothing to sync", "message", svcErr.Message)
			return 0, nil
		}

		return 0, fmt.Errorf("fetching invoices: %w", err)
	}

	if len(invoices) == 0 {
		return 0, nil
	}

	seamstresses, err := s.crossReferenceClients(ctx, invoices)
	if err != nil {
		return 0, fmt.Errorf("cross-referencing clients: %w", err)
	}

	// Keep only invoices addressed to a recognized seamstress.
	var kept []retainedInvoice

	for _, inv := range invoices {
		company, ok := seamstresses[strings.TrimSpace(inv.Cliente)]
		if !ok {
			continue
		}

		kept = append(kept, retainedInvoice{invoice: inv, company: company})
	}

	if len(kept) == 0 {
		return 0, nil
	}

	materials, err := s.crossReferenceMaterials(ctx, kept)
	if err != nil {
		return 0, fmt.Errorf("cross-referencing materials: %w", err)
	}

	records := make([]*Record, 0, len(kept))

	for _, entry := range kept {
		record, err := Transform(entry.invoice, entry.company, materials)
		if err != nil {
			return 0, fmt.Errorf("transforming invoice: %w", err)
		}

		if len(record.Items) == 0 {
			continue
		}

		records = append(records, record)
	}

	if err := ValidateRecords(records); err != nil {
		return 0, err
	}

	createdIDs, err := s.persist(ctx, records)
	if err != nil {
		return 0, err
	}

	s.publishCreated(ctx, createdIDs)

	return len(createdIDs), nil
}

// crossReferenceClients fetches profiles for every distinct client code and
// keeps the ones in the seamstress division.
func (s *Service) crossReferenceClients(ctx context.Context, invoices []erp.Invoice) (map[string]erp.Company, error) {
	codes := make([]string, 0, len(invoices))
	seen := make(map[string]struct{}, len(invoices))

	for _, inv := range invoices {
		code := strings.TrimSpace(inv.Cliente)
		if code == "" {
			continue
		}

		if _, ok := seen[code]; ok {
			continue
		}

		seen[code] = struct{}{}
		codes = append(codes, code)
	}

	results := make([]erp.Company, len(codes))
	found := make([]bool, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(crossRefConcurrency)

	for i, code := range codes {
		i, code := i, code

		g.Go(func() error {
			companies, err := s.erp.GetCompanyByCode(gctx, code)
			if err != nil {
				return fmt.Errorf("client %s: %w", code, err)
			}

			if len(companies) > 0 {
				results[i] = companies[0]
				found[i] = true
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	seamstresses := make(map[string]erp.Company)

	for i, code := range codes {
		if !found[i] {
			continue
		}

		if results[i].CodigoDivisao != erp.SeamstressDivision {
			continue
		}

		seamstresses[code] = results[i]
	}

	return seamstresses, nil
}

// retainedInvoice is an invoice paired with its resolved seamstress profile.
type retainedInvoice struct {
	invoice erp.Invoice
	company erp.Company
}

func (s *Service) crossReferenceMaterials(ctx context.Context, kept []retainedInvoice) (map[string]erp.Material, error) {
	var codes []string

	seen := make(map[string]struct{})

	for _, entry := range kept {
		for _, item := range entry.invoice.Itens {
			code := strings.TrimSpace(item.CodigoMaterial)
			if code == "" {
				continue
			}

			if _, ok := seen[code]; ok {
				continue
			}

			seen[code] = struct{}{}
			codes = append(codes, code)
		}
	}

	results := make([][]erp.Material, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(crossRefConcurrency)

	for i, code := range codes {
		i, code := i, code

		g.Go(func() error {
			materials, err := s.erp.GetMaterialByCode(gctx, code)
			if err != nil {
				return fmt.Errorf("material %s: %w", code, err)
			}

			results[i] = materials

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	materials := make(map[string]erp.Material)

	for i, code := range codes {
		if len(results[i]) == 0 {
			continue
		}

		materials[code] = results[i][0]
	}

	return materials, nil
}

// persist runs the reconciliation chain for every record inside a single
// transaction. A shipment number that already exists is skipped silently:
// that duplicate check is the idempotence guard against double imports.
func (s *Service) persist(ctx context.Context, records []*Record) ([]uuid.UUID, error) {
	tx, err := s.repo.BeginSync(ctx)
	if err != nil {
		return nil, fmt.Errorf("beginning sync transaction: %w", err)
	}
	defer tx.Rollback()

	var (
		createdIDs []uuid.UUID
		numbers    []string
	)

	for _, record := range records {
		exists, err := tx.ShipmentExists(ctx, record.Number)
		if err != nil {
			return nil, fmt.Errorf("checking shipment %s: %w", record.Number, err)
		}

		if exists {
			continue
		}

		id, err := s.persistRecord(ctx, tx, record)
		if err != nil {
			return nil, fmt.Errorf("persisting shipment %s: %w", record.Number, err)
		}

		createdIDs = append(createdIDs, id)
		numbers = append(numbers, record.Number)
	}

	if len(numbers) > 0 {
		if err := tx.RecordImport(ctx, numbers); err != nil {
			return nil, fmt.Errorf("recording import batch: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing sync transaction: %w", err)
	}

	return createdIDs, nil
}

func (s *Service) persistRecord(ctx context.Context, tx SyncTx, record *Record) (uuid.UUID, error) {
	locationID, err := tx.GetOrCreateLocation(ctx, record.Recipient.Location)
	if err != nil {
		return uuid.Nil, fmt.Errorf("location: %w", err)
	}

	businessInfoID, err := tx.GetOrCreateBusinessInfo(ctx, record.Recipient.BusinessInfo)
	if err != nil {
		return uuid.Nil, fmt.Errorf("business info: %w", err)
	}

	recipientID, err := tx.GetOrCreateSeamstress(ctx, record.Recipient.InternalCode, locationID, businessInfoID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("seamstress: %w", err)
	}

	financialSummaryID, err := tx.CreateFinancialSummary(ctx, record.Financial)
	if err != nil {
		return uuid.Nil, fmt.Errorf("financial summary: %w", err)
	}

	shipmentID, err := tx.CreateShipment(ctx, record, recipientID, financialSummaryID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("shipment: %w", err)
	}

	itemLinks, err := tx.GetOrCreateShipmentItems(ctx, shipmentID, record.Items)
	if err != nil {
		return uuid.Nil, fmt.Errorf("items: %w", err)
	}

	var codes []string

	for _, link := range itemLinks {
		if link.OrderCode != "" {
			codes = append(codes, link.OrderCode)
		}
	}

	if len(codes) == 0 {
		return shipmentID, nil
	}

	orderIDs, err := tx.GetOrCreateOrders(ctx, codes)
	if err != nil {
		return uuid.Nil, fmt.Errorf("orders: %w", err)
	}

	allOrderIDs := make([]uuid.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		allOrderIDs = append(allOrderIDs, id)
	}

	if err := tx.LinkShipmentToOrders(ctx, shipmentID, allOrderIDs); err != nil {
		return uuid.Nil, fmt.Errorf("linking shipment to orders: %w", err)
	}

	var itemOrderLinks []ItemOrderLink

	for _, link := range itemLinks {
		orderID, ok := orderIDs[link.OrderCode]
		if !ok {
			continue
		}

		itemOrderLinks = append(itemOrderLinks, ItemOrderLink{ItemID: link.ItemID, OrderID: orderID})
	}

	if len(itemOrderLinks) > 0 {
		if err := tx.LinkItemsToOrders(ctx, itemOrderLinks); err != nil {
			return uuid.Nil, fmt.Errorf("linking items to orders: %w", err)
		}
	}

	return shipmentID, nil
}

// publishCreated emits shipment:new for every freshly imported shipment.
// Emission failures are logged, never surfaced: the rows are committed.
func (s *Service) publishCreated(ctx context.Context, ids []uuid.UUID) {
	for _, id := range ids {
		sh, err := s.shipments.GetShipment(ctx, id)
		if err != nil {
			slog.Error("failed to load shipment for event", "id", id, "error", err)
			continue
		}

		if err := s.publisher.Publish(ctx, events.ShipmentNew, id.String(), shipment.NewView(sh)); err != nil {
			slog.Error("failed to publish shipment:new", "id", id, "error", err)
		}
	}
}
