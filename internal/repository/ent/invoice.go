package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cadencehq/cadence/ent"
	entInvoice "github.com/cadencehq/cadence/ent/invoice"
	"github.com/cadencehq/cadence/ent/schema"
	domainInvoice "github.com/cadencehq/cadence/internal/domain/invoice"
	ierr "github.com/cadencehq/cadence/internal/errors"
	"github.com/cadencehq/cadence/internal/logger"
	"github.com/cadencehq/cadence/internal/postgres"
	"github.com/cadencehq/cadence/internal/types"
	"github.com/lib/pq"
	"github.com/samber/lo"
)

type invoiceRepository struct {
	client postgres.IClient
	logger *logger.Logger
}

func NewInvoiceRepository(client postgres.IClient, logger *logger.Logger) domainInvoice.Repository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

// CreateWithLineItems creates an invoice with its line items in a single transaction
func (r *invoiceRepository) CreateWithLineItems(ctx context.Context, inv *domainInvoice.Invoice) error {
	r.logger.Debugw("creating invoice with line items",
		"id", inv.ID,
		"line_items_count", len(inv.LineItems))

	return r.client.WithTx(ctx, func(ctx context.Context) error {
		client := r.client.Querier(ctx)

		created, err := client.Invoice.Create().
			SetID(inv.ID).
			SetTenantID(inv.TenantID).
			SetCustomerID(inv.CustomerID).
			SetNillableServiceID(inv.ServiceID).
			SetNillableBillingCycleID(inv.BillingCycleID).
			SetInvoiceNumber(inv.InvoiceNumber).
			SetIssueDate(inv.IssueDate).
			SetNillableDueDate(inv.DueDate).
			SetInvoiceStatus(string(inv.InvoiceStatus)).
			SetTotal(inv.Total).
			SetIsLateIssued(inv.IsLateIssued).
			SetNillablePaidAt(inv.PaidAt).
			SetNillableVoidedAt(inv.VoidedAt).
			SetStatus(string(inv.Status)).
			SetCreatedAt(inv.CreatedAt).
			SetUpdatedAt(inv.UpdatedAt).
			SetCreatedBy(inv.CreatedBy).
			SetUpdatedBy(inv.UpdatedBy).
			Save(ctx)
		if err != nil {
			return r.mapCreateError(err, inv)
		}

		for _, item := range inv.LineItems {
			_, err := client.InvoiceLineItem.Create().
				SetID(item.ID).
				SetTenantID(inv.TenantID).
				SetInvoiceID(created.ID).
				SetNillableServiceID(item.ServiceID).
				SetDescription(item.Description).
				SetAmount(item.Amount).
				SetQuantity(item.Quantity).
				SetNillablePeriodStart(item.PeriodStart).
				SetNillablePeriodEnd(item.PeriodEnd).
				SetStatus(string(types.StatusPublished)).
				SetCreatedAt(inv.CreatedAt).
				SetUpdatedAt(inv.UpdatedAt).
				SetCreatedBy(inv.CreatedBy).
				SetUpdatedBy(inv.UpdatedBy).
				Save(ctx)
			if err != nil {
				return ierr.WithError(err).
					WithHint("invoice line item creation failed").
					WithReportableDetails(map[string]any{
						"invoice_id":   inv.ID,
						"line_item_id": item.ID,
					}).
					Mark(ierr.ErrDatabase)
			}
		}

		*inv = *domainInvoice.FromEnt(created)
		return nil
	})
}

func (r *invoiceRepository) mapCreateError(err error, inv *domainInvoice.Invoice) error {
	r.logger.Errorw("failed to create invoice", "error", err, "invoice_id", inv.ID)

	if ent.IsConstraintError(err) {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Constraint == schema.Idx_tenant_invoice_number_unique {
				return ierr.WithError(err).
					WithHint("Invoice with same invoice number already exists").
					WithReportableDetails(map[string]any{
						"invoice_id":     inv.ID,
						"invoice_number": inv.InvoiceNumber,
					}).
					Mark(ierr.ErrAlreadyExists)
			}
			if pqErr.Constraint == schema.Idx_tenant_billing_cycle_unique {
				return ierr.WithError(err).
					WithHint("Invoice for this billing cycle already exists").
					WithReportableDetails(map[string]any{
						"invoice_id":       inv.ID,
						"billing_cycle_id": lo.FromPtr(inv.BillingCycleID),
					}).
					Mark(ierr.ErrAlreadyExists)
			}
		}

		return ierr.WithError(err).
			WithHint("invoice creation failed").
			WithReportableDetails(map[string]any{
				"invoice_id": inv.ID,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	return ierr.WithError(err).WithHint("invoice creation failed").Mark(ierr.ErrDatabase)
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*domainInvoice.Invoice, error) {
	client := r.client.Querier(ctx)

	inv, err := client.Invoice.Query().
		Where(
			entInvoice.ID(id),
			entInvoice.TenantID(types.GetTenantID(ctx)),
			entInvoice.StatusNEQ(string(types.StatusDeleted)),
		).
		WithLineItems().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHintf("Invoice %s not found", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).WithHint("invoice lookup failed").Mark(ierr.ErrDatabase)
	}

	return domainInvoice.FromEnt(inv), nil
}

func (r *invoiceRepository) Update(ctx context.Context, inv *domainInvoice.Invoice) error {
	client := r.client.Querier(ctx)

	updated, err := client.Invoice.UpdateOneID(inv.ID).
		SetInvoiceStatus(string(inv.InvoiceStatus)).
		SetTotal(inv.Total).
		SetNillableDueDate(inv.DueDate).
		SetNillablePaidAt(inv.PaidAt).
		SetNillableVoidedAt(inv.VoidedAt).
		SetStatus(string(inv.Status)).
		SetUpdatedBy(types.GetUserID(ctx)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ierr.WithError(err).
				WithHintf("Invoice %s not found", inv.ID).
				Mark(ierr.ErrNotFound)
		}
		return ierr.WithError(err).WithHint("invoice update failed").Mark(ierr.ErrDatabase)
	}

	*inv = *domainInvoice.FromEnt(updated)
	return nil
}

func (r *invoiceRepository) ListByCustomer(ctx context.Context, customerID string) ([]*domainInvoice.Invoice, error) {
	client := r.client.Querier(ctx)

	invoices, err := client.Invoice.Query().
		Where(
			entInvoice.TenantID(types.GetTenantID(ctx)),
			entInvoice.CustomerID(customerID),
			entInvoice.StatusNEQ(string(types.StatusDeleted)),
		).
		WithLineItems().
		Order(ent.Desc(entInvoice.FieldIssueDate)).
		All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("invoice listing failed").Mark(ierr.ErrDatabase)
	}

	return domainInvoice.FromEntList(invoices), nil
}

func (r *invoiceRepository) ListOutstanding(ctx context.Context) ([]*domainInvoice.Invoice, error) {
	client := r.client.Querier(ctx)

	invoices, err := client.Invoice.Query().
		Where(
			entInvoice.TenantID(types.GetTenantID(ctx)),
			entInvoice.StatusNEQ(string(types.StatusDeleted)),
			entInvoice.InvoiceStatusIn(
				string(types.InvoiceStatusDraft),
				string(types.InvoiceStatusPending),
				string(types.InvoiceStatusOverdue),
			),
		).
		Order(ent.Asc(entInvoice.FieldDueDate)).
		All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("outstanding invoice query failed").Mark(ierr.ErrDatabase)
	}

	return domainInvoice.FromEntList(invoices), nil
}

func (r *invoiceRepository) ListOutstandingAllTenants(ctx context.Context, limit int) ([]*domainInvoice.Invoice, error) {
	client := r.client.Querier(ctx)

	invoices, err := client.Invoice.Query().
		Where(
			entInvoice.StatusNEQ(string(types.StatusDeleted)),
			entInvoice.InvoiceStatusIn(
				string(types.InvoiceStatusPending),
				string(types.InvoiceStatusOverdue),
			),
			entInvoice.DueDateNotNil(),
		).
		Order(ent.Asc(entInvoice.FieldDueDate)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, ierr.WithError(err).WithHint("outstanding invoice query failed").Mark(ierr.ErrDatabase)
	}

	return domainInvoice.FromEntList(invoices), nil
}

func (r *invoiceRepository) GetByBillingCycleID(ctx context.Context, cycleID string) (*domainInvoice.Invoice, error) {
	client := r.client.Querier(ctx)

	inv, err := client.Invoice.Query().
		Where(
			entInvoice.TenantID(types.GetTenantID(ctx)),
			entInvoice.BillingCycleID(cycleID),
			entInvoice.StatusNEQ(string(types.StatusDeleted)),
		).
		WithLineItems().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ierr.WithError(err).
				WithHintf("No invoice linked to billing cycle %s", cycleID).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).WithHint("invoice lookup by cycle failed").Mark(ierr.ErrDatabase)
	}

	return domainInvoice.FromEnt(inv), nil
}

func (r *invoiceRepository) GetNextInvoiceNumber(ctx context.Context) (string, error) {
	yearMonth := time.Now().UTC().Format("200601") // YYYYMM
	tenantID := types.GetTenantID(ctx)

	// Raw SQL for the atomic increment since ent doesn't support RETURNING
	// with OnConflict.
	query := `
		INSERT INTO invoice_sequences (tenant_id, year_month, last_value, created_at, updated_at)
		VALUES ($1, $2, 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (tenant_id, year_month) DO UPDATE
		SET last_value = invoice_sequences.last_value + 1,
			updated_at = CURRENT_TIMESTAMP
		RETURNING last_value`

	var lastValue int64
	rows, err := r.client.Querier(ctx).QueryContext(ctx, query, tenantID, yearMonth)
	if err != nil {
		return "", ierr.WithError(err).WithHint("invoice number generation failed").Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	if !rows.Next() {
		return "", ierr.NewError("no sequence value returned").
			WithHint("invoice number generation failed").
			Mark(ierr.ErrDatabase)
	}

	if err := rows.Scan(&lastValue); err != nil {
		return "", ierr.WithError(err).WithHint("invoice number generation failed").Mark(ierr.ErrDatabase)
	}

	return fmt.Sprintf("INV-%s-%05d", yearMonth, lastValue), nil
}
