package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sangkips/cafeteria-pos/internal/domain/entity"
	"github.com/sangkips/cafeteria-pos/internal/domain/repository"
	"github.com/sangkips/cafeteria-pos/pkg/apperror"
	"github.com/sangkips/cafeteria-pos/pkg/utils"
	"go.uber.org/zap"
)

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ProductService handles the register catalog
type ProductService struct {
	itemRepo     repository.ItemRepository
	images       repository.ImageStore
	maxImageSize int64
	logger       *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(
	itemRepo repository.ItemRepository,
	images repository.ImageStore,
	maxImageSize int64,
	logger *zap.Logger,
) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		itemRepo:     itemRepo,
		images:       images,
		maxImageSize: maxImageSize,
		logger:       logger,
	}
}

// ProductInput represents the create and update product input
type ProductInput struct {
	Name  string
	Price float64
	Group string
	// Image is a base64 payload, optionally a data URL. Empty keeps the
	// current image.
	Image string
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *ProductInput) (*entity.Item, error) {
	if err := validateProduct(input); err != nil {
		return nil, err
	}

	item := &entity.Item{
		ID:    uuid.New(),
		Name:  strings.TrimSpace(input.Name),
		Price: utils.ToCents(input.Price),
	}
	if input.Image != "" {
		path, err := s.saveImage(ctx, item.ID, input.Image)
		if err != nil {
			return nil, err
		}
		item.ImagePath = path
	}

	if err := s.itemRepo.Create(ctx, item, strings.TrimSpace(input.Group)); err != nil {
		s.discardImage(ctx, item.ImagePath)
		return nil, err
	}
	return item, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return item, nil
}

// UpdateProduct updates a product and replaces its group
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Item, error) {
	if err := validateProduct(input); err != nil {
		return nil, err
	}

	item, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Name = strings.TrimSpace(input.Name)
	item.Price = utils.ToCents(input.Price)

	oldImage := ""
	if input.Image != "" {
		path, err := s.saveImage(ctx, item.ID, input.Image)
		if err != nil {
			return nil, err
		}
		if path != item.ImagePath {
			oldImage = item.ImagePath
		}
		item.ImagePath = path
	}

	if err := s.itemRepo.Update(ctx, item, strings.TrimSpace(input.Group)); err != nil {
		return nil, err
	}
	s.discardImage(ctx, oldImage)
	return item, nil
}

// DeleteProduct deletes a product, its group links and its image
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	item, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.discardImage(ctx, item.ImagePath)
	return nil
}

// ListProducts returns the catalog ordered by name
func (s *ProductService) ListProducts(ctx context.Context) ([]entity.Item, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.Item{}
	}
	return items, nil
}

// RegisterItems returns the items shown on the register, filtered by any of
// groups and a case-insensitive name search.
func (s *ProductService) RegisterItems(ctx context.Context, groups []string, search string) ([]entity.Item, error) {
	params := &repository.ItemFilterParams{Search: strings.TrimSpace(search)}
	for _, g := range groups {
		if g = strings.TrimSpace(g); g != "" {
			params.Groups = append(params.Groups, g)
		}
	}

	items, err := s.itemRepo.ListForRegister(ctx, params)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.Item{}
	}
	return items, nil
}

// Groups returns the distinct register groups
func (s *ProductService) Groups(ctx context.Context) ([]string, error) {
	groups, err := s.itemRepo.Groups(ctx)
	if err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []string{}
	}
	return groups, nil
}

func validateProduct(input *ProductInput) error {
	var fieldErrors []apperror.FieldError
	if strings.TrimSpace(input.Name) == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price cannot be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

func (s *ProductService) saveImage(ctx context.Context, id uuid.UUID, payload string) (string, error) {
	data, err := decodeImage(payload)
	if err != nil {
		return "", apperror.NewBadRequestError(err.Error())
	}
	if s.maxImageSize > 0 && int64(len(data)) > s.maxImageSize {
		return "", apperror.NewBadRequestError(fmt.Sprintf("Image exceeds %d bytes", s.maxImageSize))
	}

	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", apperror.NewBadRequestError("Unsupported image type " + contentType)
	}

	path, err := s.images.Save(ctx, id.String()+ext, data, contentType)
	if err != nil {
		s.logger.Error("failed to save product image", zap.String("item_id", id.String()), zap.Error(err))
		return "", err
	}
	return path, nil
}

func (s *ProductService) discardImage(ctx context.Context, location string) {
	if location == "" {
		return
	}
	if err := s.images.Delete(ctx, location); err != nil {
		s.logger.Warn("failed to delete product image", zap.String("location", location), zap.Error(err))
	}
}

// decodeImage accepts raw base64 or a data URL
func decodeImage(payload string) ([]byte, error) {
	if strings.HasPrefix(payload, "data:") {
		_, rest, found := strings.Cut(payload, ",")
		if !found {
			return nil, fmt.Errorf("malformed image data URL")
		}
		payload = rest
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return nil, fmt.Errorf("image is not valid base64")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("image is empty")
	}
	return data, nil
}
