package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/policy"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// AccountingUseCase registro de asientos contables y cálculo de saldos por cuenta.
type AccountingUseCase struct {
	repo   repository.AccountingMovementRepository
	orders repository.PurchaseOrderRepository
}

// NewAccountingUseCase construye el caso de uso.
func NewAccountingUseCase(repo repository.AccountingMovementRepository, orders repository.PurchaseOrderRepository) *AccountingUseCase {
	return &AccountingUseCase{repo: repo, orders: orders}
}

// Create registra un asiento. El número de asiento es único; la orden referenciada, si viene, debe existir.
func (uc *AccountingUseCase) Create(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if in.EntryNumber <= 0 {
		return nil, invalid("entry_number debe ser > 0")
	}
	if err := requireID("account_id", in.AccountID); err != nil {
		return nil, err
	}
	mt := entity.MovementType(strings.ToUpper(strings.TrimSpace(in.Type)))
	if !mt.Valid() {
		return nil, invalid("type debe ser D o C")
	}
	if err := validateMoney("amount", in.Amount); err != nil {
		return nil, err
	}
	posted, err := dto.ParseDate(in.PostingDate)
	if err != nil {
		return nil, invalid("posting_date: %v", err)
	}
	if in.PurchaseOrderID != nil && *in.PurchaseOrderID != "" {
		order, err := uc.orders.GetByID(ctx, *in.PurchaseOrderID)
		if err != nil {
			return nil, err
		}
		if order == nil {
			return nil, domain.ErrNotFound
		}
	} else {
		in.PurchaseOrderID = nil
	}
	existing, err := uc.repo.GetByEntryNumber(ctx, in.EntryNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	m := &entity.AccountingMovement{
		ID:              uuid.New().String(),
		EntryNumber:     in.EntryNumber,
		AccountID:       strings.TrimSpace(in.AccountID),
		PurchaseOrderID: in.PurchaseOrderID,
		PostingDate:     posted,
		Type:            mt,
		Amount:          in.Amount,
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return toMovementResponse(m), nil
}

// GetByID obtiene un asiento por ID.
func (uc *AccountingUseCase) GetByID(ctx context.Context, id string) (*dto.MovementResponse, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return toMovementResponse(m), nil
}

// List lista asientos por cuenta, orden y/o rango de fechas.
func (uc *AccountingUseCase) List(ctx context.Context, q dto.MovementQuery) (*dto.MovementListResponse, error) {
	page := dto.PageRequest{Limit: q.Limit, Offset: q.Offset}
	page.DefaultPage()
	filter, err := movementFilter(q.AccountID, q.From, q.To)
	if err != nil {
		return nil, err
	}
	filter.PurchaseOrderID = q.PurchaseOrderID
	filter.Limit, filter.Offset = page.Limit, page.Offset

	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *toMovementResponse(m))
	}
	return &dto.MovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Balance saldo (débitos - créditos) de una cuenta. from y to son opcionales pero van juntos:
// con ambos se calcula el saldo de la ventana [from, to].
func (uc *AccountingUseCase) Balance(ctx context.Context, accountID, from, to string) (*dto.BalanceResponse, error) {
	if err := requireID("account_id", accountID); err != nil {
		return nil, err
	}
	if (strings.TrimSpace(from) == "") != (strings.TrimSpace(to) == "") {
		return nil, invalid("from y to deben informarse juntos")
	}
	filter, err := movementFilter(accountID, from, to)
	if err != nil {
		return nil, err
	}
	if filter.From != nil && filter.To.Before(*filter.From) {
		return nil, invalid("to anterior a from")
	}
	movements, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	var summary policy.LedgerSummary
	if filter.From != nil {
		summary = policy.Summarize(policy.InWindow(movements, *filter.From, *filter.To))
	} else {
		summary = policy.Summarize(movements)
	}
	out := &dto.BalanceResponse{
		AccountID: filter.AccountID,
		Debits:    summary.Debits,
		Credits:   summary.Credits,
		Balance:   summary.Balance,
		Count:     summary.Count,
	}
	if filter.From != nil {
		out.From = filter.From.Format(dto.DateLayout)
		out.To = filter.To.Format(dto.DateLayout)
	}
	return out, nil
}

func movementFilter(accountID, from, to string) (repository.MovementFilter, error) {
	f := repository.MovementFilter{AccountID: strings.TrimSpace(accountID)}
	var err error
	if f.From, err = dto.ParseOptionalDate(from); err != nil {
		return f, invalid("from: %v", err)
	}
	if f.To, err = dto.ParseOptionalDate(to); err != nil {
		return f, invalid("to: %v", err)
	}
	return f, nil
}

func toMovementResponse(m *entity.AccountingMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:              m.ID,
		EntryNumber:     m.EntryNumber,
		AccountID:       m.AccountID,
		PurchaseOrderID: m.PurchaseOrderID,
		PostingDate:     m.PostingDate.Format(dto.DateLayout),
		Type:            string(m.Type),
		Amount:          m.Amount,
		CreatedAt:       m.CreatedAt,
	}
}
