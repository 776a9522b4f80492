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

// ProductUseCase casos de uso CRUD para productos y clasificación de stock.
type ProductUseCase struct {
	repo    repository.ProductRepository
	batches repository.BatchRepository
	clock   Clock
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, batches repository.BatchRepository, clock Clock) *ProductUseCase {
	return &ProductUseCase{repo: repo, batches: batches, clock: clock}
}

// Create crea un nuevo producto. El código de barras, si viene, debe ser único.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, invalid("name y description son requeridos")
	}
	if err := requireID("unit_measure_id", in.UnitMeasureID); err != nil {
		return nil, err
	}
	if err := validateThresholds(in.StockMax, in.StockMin, in.ReorderPoint); err != nil {
		return nil, err
	}
	if err := validateTemperature(in.IdealTemperature); err != nil {
		return nil, err
	}
	barcode := optionalText(in.Barcode)
	if barcode != nil {
		existing, err := uc.repo.GetByBarcode(ctx, *barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Name:              strings.TrimSpace(in.Name),
		Description:       in.Description,
		StorageLocationID: optionalText(in.StorageLocationID),
		UnitMeasureID:     in.UnitMeasureID,
		Barcode:           barcode,
		IdealTemperature:  in.IdealTemperature,
		StockMax:          in.StockMax,
		StockMin:          in.StockMin,
		ReorderPoint:      in.ReorderPoint,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto; los campos nil del request se conservan.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, invalid("name no puede ser vacío")
		}
		product.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.StorageLocationID != nil {
		product.StorageLocationID = optionalText(in.StorageLocationID)
	}
	if in.UnitMeasureID != nil {
		product.UnitMeasureID = *in.UnitMeasureID
	}
	if in.Barcode != nil {
		// "" borra el código de barras
		barcode := optionalText(in.Barcode)
		if barcode != nil && (product.Barcode == nil || *product.Barcode != *barcode) {
			existing, err := uc.repo.GetByBarcode(ctx, *barcode)
			if err != nil {
				return nil, err
			}
			if existing != nil && existing.ID != product.ID {
				return nil, domain.ErrDuplicate
			}
		}
		product.Barcode = barcode
	}
	if in.IdealTemperature != nil {
		product.IdealTemperature = in.IdealTemperature
	}
	if in.StockMax != nil {
		product.StockMax = in.StockMax
	}
	if in.StockMin != nil {
		product.StockMin = in.StockMin
	}
	if in.ReorderPoint != nil {
		product.ReorderPoint = in.ReorderPoint
	}
	if err := validateThresholds(product.StockMax, product.StockMin, product.ReorderPoint); err != nil {
		return nil, err
	}
	if err := validateTemperature(product.IdealTemperature); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list, page), nil
}

// Search busca por coincidencia parcial (sin distinguir mayúsculas) en nombre o descripción.
func (uc *ProductUseCase) Search(ctx context.Context, term string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, invalid("q es requerido")
	}
	page.DefaultPage()
	list, err := uc.repo.Search(ctx, term, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toProductList(list, page), nil
}

// StockStatus clasifica el stock del producto para la cantidad informada (nil => UNDEFINED).
func (uc *ProductUseCase) StockStatus(ctx context.Context, id string, quantity *int) (*dto.StockStatusResponse, error) {
	if quantity != nil && *quantity < 0 {
		return nil, invalid("quantity no puede ser negativa")
	}
	product, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.StockStatusResponse{
		ProductID: product.ID,
		Quantity:  quantity,
		Status:    string(policy.ClassifyStock(product, quantity)),
	}, nil
}

// StockStatusFromBatches clasifica usando como cantidad la suma de los lotes no vencidos a la fecha de referencia.
func (uc *ProductUseCase) StockStatusFromBatches(ctx context.Context, id string, ref *time.Time) (*dto.StockStatusResponse, error) {
	product, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	batches, err := uc.batches.List(ctx, repository.BatchFilter{ProductID: id})
	if err != nil {
		return nil, err
	}
	total := 0
	for _, b := range policy.ValidBatches(batches, referenceDate(uc.clock, ref)) {
		total += b.Quantity
	}
	return &dto.StockStatusResponse{
		ProductID: product.ID,
		Quantity:  &total,
		Status:    string(policy.ClassifyStock(product, &total)),
	}, nil
}

func (uc *ProductUseCase) load(ctx context.Context, id string) (*entity.Product, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func toProductList(list []*entity.Product, page dto.PageRequest) *dto.ProductListResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		StorageLocationID: p.StorageLocationID,
		UnitMeasureID:     p.UnitMeasureID,
		Barcode:           p.Barcode,
		IdealTemperature:  p.IdealTemperature,
		StockMax:          p.StockMax,
		StockMin:          p.StockMin,
		ReorderPoint:      p.ReorderPoint,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
