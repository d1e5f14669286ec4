package service

import (
	"context"
	"time"

	"invoicing-be/internal/dto"
	"invoicing-be/internal/entity"
	"invoicing-be/internal/pkg/apperror"
	"invoicing-be/internal/pkg/logger"
	"invoicing-be/internal/repository/specification"
	"invoicing-be/internal/repository/unitofwork"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const dateLayout = "2006-01-02"

// totalTolerance is the allowed drift between the declared invoice total and
// the sum of its item totals at creation.
var totalTolerance = decimal.NewFromFloat(0.01)

// sortColumns whitelists the sortable fields exposed by the list endpoint.
var sortColumns = map[string]string{
	"createdAt":  "created_at",
	"paymentDue": "payment_due",
	"total":      "total",
}

type IInvoiceService interface {
	Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.CreateInvoiceResponse, error)
	GetAll(ctx context.Context, req *dto.ListInvoicesRequest) ([]*dto.InvoiceListItem, error)
	GetById(ctx context.Context, id uint) (*dto.InvoiceDetailResponse, error)
	Update(ctx context.Context, req *dto.UpdateInvoiceRequest) (*dto.UpdateInvoiceResponse, error)
	Delete(ctx context.Context, id uint) (*dto.DeleteInvoiceResponse, error)
	AddItem(ctx context.Context, req *dto.AddInvoiceItemRequest) (*dto.InvoiceItemResponse, error)
}

type invoiceService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	log              logger.ILogger
}

func NewInvoiceService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IInvoiceService {
	return &invoiceService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		log:              log,
	}
}

// verifyInvoiceExists signals an integrity failure when the invoice id is
// unknown. Runs against the UoW so in-transaction callers see their own
// writes.
func (s *invoiceService) verifyInvoiceExists(ctx context.Context, uow unitofwork.UnitOfWork, id uint) (*entity.Invoice, error) {
	invoice, err := uow.InvoiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewIntegrity("invoice", id)
	}
	return invoice, nil
}

// verifyAddressExists is a no-op for a nil id; otherwise the referenced
// address must exist, and the failure names the role it was referenced as.
func (s *invoiceService) verifyAddressExists(ctx context.Context, uow unitofwork.UnitOfWork, id *uint, role entity.AddressRole) error {
	if id == nil {
		return nil
	}
	address, err := uow.AddressRepository().FindOne(ctx, specification.ByID{ID: *id})
	if err != nil {
		return err
	}
	if address == nil {
		return apperror.NewIntegrity(string(role), *id)
	}
	return nil
}

// addressInUse reports whether any invoice still references the address in
// either slot.
func (s *invoiceService) addressInUse(ctx context.Context, uow unitofwork.UnitOfWork, id uint) (bool, error) {
	count, err := uow.InvoiceRepository().Count(ctx, specification.ReferencingAddress{AddressID: id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *invoiceService) publishEvent(ctx context.Context, eventType string, invoiceId uint) {
	// Event delivery is best-effort; the mutation already committed.
	if err := s.publisherService.PublishInvoiceEvent(ctx, eventType, invoiceId); err != nil {
		s.log.Warn("invoice", "failed to publish invoice event", map[string]interface{}{
			"type":       eventType,
			"invoice_id": invoiceId,
			"error":      err.Error(),
		})
	}
}

func (s *invoiceService) Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.CreateInvoiceResponse, error) {
	paymentDue, err := time.Parse(dateLayout, req.PaymentDue)
	if err != nil {
		return nil, apperror.NewValidation("payment_due must be an ISO date (YYYY-MM-DD)")
	}

	declaredTotal := decimal.NewFromFloat(req.Total)
	itemSum := decimal.Zero
	for _, item := range req.Items {
		itemSum = itemSum.Add(decimal.NewFromFloat(item.Total))
	}
	if itemSum.Sub(declaredTotal).Abs().GreaterThan(totalTolerance) {
		return nil, apperror.NewValidation(
			"invoice total %s does not match sum of item totals %s",
			declaredTotal.StringFixed(2), itemSum.StringFixed(2),
		)
	}

	status := entity.InvoiceStatus(req.Status)
	if status == "" {
		status = entity.StatusDraft
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	senderAddress := entity.Address{
		Street:   req.SenderAddress.Street,
		City:     req.SenderAddress.City,
		PostCode: req.SenderAddress.PostCode,
		Country:  req.SenderAddress.Country,
	}
	if err := uow.AddressRepository().Create(ctx, &senderAddress); err != nil {
		return nil, err
	}

	clientAddress := entity.Address{
		Street:   req.ClientAddress.Street,
		City:     req.ClientAddress.City,
		PostCode: req.ClientAddress.PostCode,
		Country:  req.ClientAddress.Country,
	}
	if err := uow.AddressRepository().Create(ctx, &clientAddress); err != nil {
		return nil, err
	}

	invoice := entity.Invoice{
		PaymentDue:      paymentDue,
		Description:     req.Description,
		PaymentTerms:    req.PaymentTerms,
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		Status:          status,
		Total:           declaredTotal,
		SenderAddressId: &senderAddress.Id,
		ClientAddressId: &clientAddress.Id,
	}
	if err := uow.InvoiceRepository().Create(ctx, &invoice); err != nil {
		return nil, err
	}

	items := lo.Map(req.Items, func(item dto.InvoiceItemPayload, _ int) *entity.InvoiceItem {
		return &entity.InvoiceItem{
			InvoiceId: invoice.Id,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     decimal.NewFromFloat(item.Price),
			Total:     decimal.NewFromFloat(item.Total),
		}
	})
	if err := uow.InvoiceItemRepository().CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, dto.EventInvoiceCreated, invoice.Id)

	return &dto.CreateInvoiceResponse{
		Id:              invoice.Id,
		SenderAddressId: senderAddress.Id,
		ClientAddressId: clientAddress.Id,
	}, nil
}

func (s *invoiceService) GetAll(ctx context.Context, req *dto.ListInvoicesRequest) ([]*dto.InvoiceListItem, error) {
	limit := req.Limit
	if limit == 0 {
		limit = 10
	}
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return nil, apperror.NewValidation("unsupported sort field '%s'", sortBy)
	}
	desc := req.SortOrder != "asc"

	specs := []specification.Specification{}
	if req.Status != "" {
		specs = append(specs, specification.ByStatus{Status: req.Status})
	}
	specs = append(specs,
		specification.OrderBy{Field: column, Desc: desc},
		specification.Pagination{Limit: limit, Offset: req.Offset},
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	invoices, err := uow.InvoiceRepository().FindAllWithSender(ctx, specs...)
	if err != nil {
		return nil, err
	}

	return lo.Map(invoices, func(inv *entity.Invoice, _ int) *dto.InvoiceListItem {
		return &dto.InvoiceListItem{
			Id:            inv.Id,
			PaymentDue:    inv.PaymentDue.Format(dateLayout),
			ClientName:    inv.ClientName,
			Status:        string(inv.Status),
			Total:         inv.Total.InexactFloat64(),
			CreatedAt:     inv.CreatedAt,
			SenderAddress: toAddressResponse(inv.SenderAddress),
		}
	}), nil
}

func (s *invoiceService) GetById(ctx context.Context, id uint) (*dto.InvoiceDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	invoice, err := uow.InvoiceRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFound("invoice", id)
	}

	var (
		items         []*entity.InvoiceItem
		senderAddress *entity.Address
		clientAddress *entity.Address
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = uow.InvoiceItemRepository().FindAll(gctx, specification.ByInvoiceID{InvoiceID: id})
		return err
	})
	g.Go(func() error {
		var err error
		senderAddress, err = s.fetchLinkedAddress(gctx, uow, invoice.SenderAddressId, entity.AddressRoleSender, id)
		return err
	})
	g.Go(func() error {
		var err error
		clientAddress, err = s.fetchLinkedAddress(gctx, uow, invoice.ClientAddressId, entity.AddressRoleClient, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	itemResponses := lo.Map(items, func(item *entity.InvoiceItem, _ int) *dto.InvoiceItemResponse {
		return toItemResponse(item)
	})

	return &dto.InvoiceDetailResponse{
		Id:            invoice.Id,
		PaymentDue:    invoice.PaymentDue.Format(dateLayout),
		Description:   invoice.Description,
		PaymentTerms:  invoice.PaymentTerms,
		ClientName:    invoice.ClientName,
		ClientEmail:   invoice.ClientEmail,
		Status:        string(invoice.Status),
		Total:         invoice.Total.InexactFloat64(),
		CreatedAt:     invoice.CreatedAt,
		UpdatedAt:     invoice.UpdatedAt,
		Items:         itemResponses,
		SenderAddress: toAddressResponse(senderAddress),
		ClientAddress: toAddressResponse(clientAddress),
	}, nil
}

// fetchLinkedAddress implements the lenient read policy: a stored address id
// with no matching row is logged and masked as absent instead of failing the
// request. Writes stay strict; only reads forgive the dangling reference.
func (s *invoiceService) fetchLinkedAddress(ctx context.Context, uow unitofwork.UnitOfWork, id *uint, role entity.AddressRole, invoiceId uint) (*entity.Address, error) {
	if id == nil {
		return nil, nil
	}
	address, err := uow.AddressRepository().FindOne(ctx, specification.ByID{ID: *id})
	if err != nil {
		return nil, err
	}
	if address == nil {
		s.log.Warn("invoice", "invoice references missing address", map[string]interface{}{
			"invoice_id": invoiceId,
			"address_id": *id,
			"role":       string(role),
		})
	}
	return address, nil
}

func (s *invoiceService) Update(ctx context.Context, req *dto.UpdateInvoiceRequest) (*dto.UpdateInvoiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	invoice, err := s.verifyInvoiceExists(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	// A supplied non-null address id must point at an existing row.
	// Explicit null detaches; an absent field leaves the link untouched.
	if req.SenderAddressId.Set {
		if err := s.verifyAddressExists(ctx, uow, req.SenderAddressId.Ptr(), entity.AddressRoleSender); err != nil {
			return nil, err
		}
		invoice.SenderAddressId = req.SenderAddressId.Ptr()
	}
	if req.ClientAddressId.Set {
		if err := s.verifyAddressExists(ctx, uow, req.ClientAddressId.Ptr(), entity.AddressRoleClient); err != nil {
			return nil, err
		}
		invoice.ClientAddressId = req.ClientAddressId.Ptr()
	}

	if req.Status != nil {
		invoice.Status = entity.InvoiceStatus(*req.Status)
	}
	if req.Description != nil {
		invoice.Description = *req.Description
	}
	if req.PaymentTerms != nil {
		invoice.PaymentTerms = *req.PaymentTerms
	}
	if req.ClientName != nil {
		invoice.ClientName = *req.ClientName
	}
	if req.ClientEmail != nil {
		invoice.ClientEmail = *req.ClientEmail
	}
	if req.Total != nil {
		// The item-sum invariant is not re-checked here; the recorded total
		// may drift from the items after creation.
		invoice.Total = decimal.NewFromFloat(*req.Total)
	}

	now := time.Now()
	invoice.UpdatedAt = &now

	if err := uow.InvoiceRepository().Update(ctx, invoice); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, dto.EventInvoiceUpdated, invoice.Id)

	return &dto.UpdateInvoiceResponse{
		Id:              invoice.Id,
		PaymentDue:      invoice.PaymentDue.Format(dateLayout),
		Description:     invoice.Description,
		PaymentTerms:    invoice.PaymentTerms,
		ClientName:      invoice.ClientName,
		ClientEmail:     invoice.ClientEmail,
		Status:          string(invoice.Status),
		Total:           invoice.Total.InexactFloat64(),
		SenderAddressId: invoice.SenderAddressId,
		ClientAddressId: invoice.ClientAddressId,
		CreatedAt:       invoice.CreatedAt,
		UpdatedAt:       invoice.UpdatedAt,
	}, nil
}

func (s *invoiceService) Delete(ctx context.Context, id uint) (*dto.DeleteInvoiceResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	invoice, err := s.verifyInvoiceExists(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	// Manual cascade: items first, then the invoice, then conditional
	// address cleanup. The address usage count must run after the invoice
	// row is gone so it reflects post-delete state.
	if err := uow.InvoiceItemRepository().DeleteByInvoiceId(ctx, id); err != nil {
		return nil, err
	}
	if err := uow.InvoiceRepository().Delete(ctx, id); err != nil {
		return nil, err
	}

	for _, addressId := range []*uint{invoice.SenderAddressId, invoice.ClientAddressId} {
		if addressId == nil {
			continue
		}
		inUse, err := s.addressInUse(ctx, uow, *addressId)
		if err != nil {
			return nil, err
		}
		if !inUse {
			if err := uow.AddressRepository().Delete(ctx, *addressId); err != nil {
				return nil, err
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, dto.EventInvoiceDeleted, id)

	return &dto.DeleteInvoiceResponse{Success: true}, nil
}

func (s *invoiceService) AddItem(ctx context.Context, req *dto.AddInvoiceItemRequest) (*dto.InvoiceItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if _, err := s.verifyInvoiceExists(ctx, uow, req.InvoiceId); err != nil {
		return nil, err
	}

	// The parent invoice total is intentionally not re-validated: this is
	// the fast append path, and the recorded total may drift from the item
	// sum until the caller updates it.
	item := entity.InvoiceItem{
		InvoiceId: req.InvoiceId,
		Name:      req.Item.Name,
		Quantity:  req.Item.Quantity,
		Price:     decimal.NewFromFloat(req.Item.Price),
		Total:     decimal.NewFromFloat(req.Item.Total),
	}
	if err := uow.InvoiceItemRepository().Create(ctx, &item); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, dto.EventInvoiceItemAdded, req.InvoiceId)

	return toItemResponse(&item), nil
}

func toAddressResponse(a *entity.Address) *dto.AddressResponse {
	if a == nil {
		return nil
	}
	return &dto.AddressResponse{
		Id:       a.Id,
		Street:   a.Street,
		City:     a.City,
		PostCode: a.PostCode,
		Country:  a.Country,
	}
}

func toItemResponse(item *entity.InvoiceItem) *dto.InvoiceItemResponse {
	return &dto.InvoiceItemResponse{
		Id:        item.Id,
		InvoiceId: item.InvoiceId,
		Name:      item.Name,
		Quantity:  item.Quantity,
		Price:     item.Price.InexactFloat64(),
		Total:     item.Total.InexactFloat64(),
	}
}
