package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Compras-api/internal/application/dto"
	"github.com/jhoicas/Compras-api/internal/domain"
	"github.com/jhoicas/Compras-api/internal/domain/entity"
	"github.com/jhoicas/Compras-api/internal/domain/policy"
	"github.com/jhoicas/Compras-api/internal/domain/repository"
)

// PurchaseOrderUseCase CRUD de órdenes de compra y consulta de órdenes atrasadas.
//
// Update es permisivo por defecto: cualquier estado puede escribirse sobre cualquier otro
// (una transición fuera del grafo solo se registra como advertencia). Con strictTransitions
// las transiciones fuera del grafo se rechazan con domain.ErrConflict.
type PurchaseOrderUseCase struct {
	repo              repository.PurchaseOrderRepository
	clock             Clock
	strictTransitions bool
	log               zerolog.Logger
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(
	repo repository.PurchaseOrderRepository,
	clock Clock,
	strictTransitions bool,
	log zerolog.Logger,
) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo, clock: clock, strictTransitions: strictTransitions, log: log}
}

// Create crea una orden. Sin estado explícito inicia en PENDING.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	status := entity.OrderStatusPending
	if strings.TrimSpace(in.Status) != "" {
		s, err := parseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		status = s
	}
	if err := validateMoney("value", in.Value); err != nil {
		return nil, err
	}
	delivery, err := dto.ParseDate(in.ExpectedDelivery)
	if err != nil {
		return nil, invalid("expected_delivery: %v", err)
	}
	order := &entity.PurchaseOrder{
		ID:               uuid.New().String(),
		Value:            in.Value,
		ExpectedDelivery: delivery,
		Status:           status,
		CreatedAt:        time.Now(),
	}
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return uc.toResponse(order, nil), nil
}

// GetByID obtiene una orden con su indicador de atraso a la fecha de referencia.
func (uc *PurchaseOrderUseCase) GetByID(ctx context.Context, id string, ref *time.Time) (*dto.PurchaseOrderResponse, error) {
	order, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(order, ref), nil
}

// Update reemplaza la orden completa, incluido el estado.
func (uc *PurchaseOrderUseCase) Update(ctx context.Context, id string, in dto.UpdatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	status, err := parseStatus(in.Status)
	if err != nil {
		return nil, err
	}
	if err := validateMoney("value", in.Value); err != nil {
		return nil, err
	}
	delivery, err := dto.ParseDate(in.ExpectedDelivery)
	if err != nil {
		return nil, invalid("expected_delivery: %v", err)
	}
	order, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanTransition(order.Status, status) {
		if uc.strictTransitions {
			return nil, fmt.Errorf("%w: transición %s -> %s no permitida", domain.ErrConflict, order.Status, status)
		}
		uc.log.Warn().
			Str("purchase_order_id", order.ID).
			Str("from", string(order.Status)).
			Str("to", string(status)).
			Msg("transición de estado fuera del flujo esperado")
	}
	order.Value = in.Value
	order.ExpectedDelivery = delivery
	order.Status = status
	if err := uc.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return uc.toResponse(order, nil), nil
}

// List lista órdenes filtrando por estado, rango de entrega y rango de valor.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, q dto.PurchaseOrderQuery, ref *time.Time) (*dto.PurchaseOrderListResponse, error) {
	page := dto.PageRequest{Limit: q.Limit, Offset: q.Offset}
	page.DefaultPage()
	filter := repository.PurchaseOrderFilter{Limit: page.Limit, Offset: page.Offset}

	if strings.TrimSpace(q.Status) != "" {
		s, err := parseStatus(q.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &s
	}
	var err error
	if filter.DeliveryFrom, err = dto.ParseOptionalDate(q.DeliveryFrom); err != nil {
		return nil, invalid("delivery_from: %v", err)
	}
	if filter.DeliveryTo, err = dto.ParseOptionalDate(q.DeliveryTo); err != nil {
		return nil, invalid("delivery_to: %v", err)
	}
	if filter.MinValue, err = parseOptionalDecimal("min_value", q.MinValue); err != nil {
		return nil, err
	}
	if filter.MaxValue, err = parseOptionalDecimal("max_value", q.MaxValue); err != nil {
		return nil, err
	}

	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *uc.toResponse(o, ref))
	}
	return &dto.PurchaseOrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListOverdue órdenes abiertas cuya entrega esperada ya pasó respecto a la fecha de referencia.
func (uc *PurchaseOrderUseCase) ListOverdue(ctx context.Context, ref *time.Time) ([]dto.PurchaseOrderResponse, error) {
	today := referenceDate(uc.clock, ref)
	candidates, err := uc.repo.ListOpenDeliveredBefore(ctx, today)
	if err != nil {
		return nil, err
	}
	overdue := policy.OverdueOrders(candidates, today)
	out := make([]dto.PurchaseOrderResponse, 0, len(overdue))
	for _, o := range overdue {
		out = append(out, *uc.toResponse(o, &today))
	}
	return out, nil
}

func (uc *PurchaseOrderUseCase) load(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (uc *PurchaseOrderUseCase) toResponse(o *entity.PurchaseOrder, ref *time.Time) *dto.PurchaseOrderResponse {
	next := policy.NextStatuses(o.Status)
	names := make([]string, 0, len(next))
	for _, s := range next {
		names = append(names, string(s))
	}
	return &dto.PurchaseOrderResponse{
		ID:               o.ID,
		Value:            o.Value,
		ExpectedDelivery: o.ExpectedDelivery.Format(dto.DateLayout),
		Status:           string(o.Status),
		Overdue:          policy.IsOverdue(o, referenceDate(uc.clock, ref)),
		NextStatuses:     names,
		CreatedAt:        o.CreatedAt,
	}
}

func parseStatus(s string) (entity.OrderStatus, error) {
	status := entity.OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.Valid() {
		return "", invalid("status %q desconocido", s)
	}
	return status, nil
}

func parseOptionalDecimal(field, s string) (*decimal.Decimal, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, invalid("%s no es un número válido", field)
	}
	return &d, nil
}
