package menu

import (
	"context"
	"errors"
	"fmt"
	"restaurant-backend/domain"
	"restaurant-backend/entities"
	"restaurant-backend/internal/utils"
	"restaurant-backend/internal/utils/storage"
	"restaurant-backend/pkg/session"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenuService interface {
		GetMenuItems(ctx context.Context, sess *session.Session) (domain.MenuItemListResponse, error)
		AddMenuItem(ctx context.Context, sess *session.Session, req domain.MenuItemRequest) (domain.MenuItemListResponse, error)
		UpdateMenuItem(ctx context.Context, sess *session.Session, id string, req domain.MenuItemRequest) (domain.MenuItemListResponse, error)
		DeleteMenuItem(ctx context.Context, sess *session.Session, id string, confirmed bool) (domain.MenuItemListResponse, error)
		UploadMenuImage(ctx context.Context, sess *session.Session, id string, req domain.UploadMenuImageRequest) (domain.MenuItemResponse, error)
		GetCatalog(ctx context.Context) (domain.MenuCatalogResponse, error)
	}

	menuService struct {
		menuRepository MenuRepository
		s3             storage.AwsS3
		validator      *validator.Validate
	}
)

func NewMenuService(menuRepository MenuRepository, s3 storage.AwsS3, validator *validator.Validate) MenuService {
	return &menuService{
		menuRepository: menuRepository,
		s3:             s3,
		validator:      validator,
	}
}

func (s *menuService) GetMenuItems(ctx context.Context, sess *session.Session) (domain.MenuItemListResponse, error) {
	if !sess.HasPermission(session.CapRead) {
		return domain.MenuItemListResponse{}, domain.ErrPermissionDenied
	}
	return s.reload(ctx, sess)
}

func (s *menuService) AddMenuItem(ctx context.Context, sess *session.Session, req domain.MenuItemRequest) (domain.MenuItemListResponse, error) {
	if !sess.HasPermission(session.CapWrite) {
		return domain.MenuItemListResponse{}, domain.ErrPermissionDenied
	}
	if err := s.validate(req); err != nil {
		return domain.MenuItemListResponse{}, err
	}

	item := &entities.MenuItem{ID: uuid.New()}
	applyRequest(item, req)

	if err := s.menuRepository.AddMenuItem(ctx, item); err != nil {
		log.Errorw("error saving menu item", "err", err)
		return domain.MenuItemListResponse{}, err
	}
	return s.reload(ctx, sess)
}

func (s *menuService) UpdateMenuItem(ctx context.Context, sess *session.Session, id string, req domain.MenuItemRequest) (domain.MenuItemListResponse, error) {
	if !sess.HasPermission(session.CapWrite) {
		return domain.MenuItemListResponse{}, domain.ErrPermissionDenied
	}
	if err := s.validate(req); err != nil {
		return domain.MenuItemListResponse{}, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.MenuItemListResponse{}, domain.ErrParseUUID
	}

	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemListResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemListResponse{}, err
	}

	applyRequest(item, req)
	if err := s.menuRepository.UpdateMenuItem(ctx, item); err != nil {
		log.Errorw("error updating menu item", "id", id, "err", err)
		return domain.MenuItemListResponse{}, err
	}
	return s.reload(ctx, sess)
}

func (s *menuService) DeleteMenuItem(ctx context.Context, sess *session.Session, id string, confirmed bool) (domain.MenuItemListResponse, error) {
	if !sess.HasPermission(session.CapDelete) {
		return domain.MenuItemListResponse{}, domain.ErrPermissionDenied
	}
	if !confirmed {
		return domain.MenuItemListResponse{}, domain.ErrConfirmationRequired
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.MenuItemListResponse{}, domain.ErrParseUUID
	}

	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemListResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemListResponse{}, err
	}

	if err := s.menuRepository.DeleteMenuItem(ctx, id); err != nil {
		log.Errorw("error deleting menu item", "id", id, "err", err)
		return domain.MenuItemListResponse{}, err
	}

	if item.ImageURL != "" {
		if objectKey := s.s3.GetObjectKeyFromLink(item.ImageURL); objectKey != "" {
			if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
				log.Warnw("failed to delete menu item image", "key", objectKey, "err", err)
			}
		}
	}

	return s.reload(ctx, sess)
}

func (s *menuService) UploadMenuImage(ctx context.Context, sess *session.Session, id string, req domain.UploadMenuImageRequest) (domain.MenuItemResponse, error) {
	if !sess.HasPermission(session.CapWrite) {
		return domain.MenuItemResponse{}, domain.ErrPermissionDenied
	}
	if req.Image == nil {
		v := domain.NewValidationError(domain.MessageRequiredFields)
		v.Add("image", "required")
		return domain.MenuItemResponse{}, v
	}
	if _, err := uuid.Parse(id); err != nil {
		return domain.MenuItemResponse{}, domain.ErrParseUUID
	}

	item, err := s.menuRepository.GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItemResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.MenuItemResponse{}, err
	}

	fileName := fmt.Sprintf("menu-item-%s", item.ID.String())
	var objectKey string
	var uploadErr error

	if existingKey := s.s3.GetObjectKeyFromLink(item.ImageURL); existingKey != "" {
		objectKey, uploadErr = s.s3.UpdateFile(ctx, existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, uploadErr = s.s3.UploadFile(ctx, fileName, req.Image, "menu-items", storage.AllowImage...)
	}
	if uploadErr != nil {
		return domain.MenuItemResponse{}, uploadErr
	}

	item.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.menuRepository.UpdateMenuItem(ctx, item); err != nil {
		return domain.MenuItemResponse{}, err
	}
	return toResponse(item), nil
}

func (s *menuService) GetCatalog(ctx context.Context) (domain.MenuCatalogResponse, error) {
	items, err := s.menuRepository.GetMenuItems(ctx)
	if err != nil {
		log.Errorw("error loading menu items", "err", err)
		return domain.MenuCatalogResponse{}, err
	}
	return BuildCatalog(items), nil
}

// reload re-fetches the full list; callers never patch their previous copy.
func (s *menuService) reload(ctx context.Context, sess *session.Session) (domain.MenuItemListResponse, error) {
	items, err := s.menuRepository.GetMenuItems(ctx)
	if err != nil {
		log.Errorw("error loading menu items", "err", err)
		return domain.MenuItemListResponse{}, err
	}

	res := domain.MenuItemListResponse{
		Items:     make([]domain.MenuItemResponse, 0, len(items)),
		Total:     len(items),
		CanEdit:   sess.HasPermission(session.CapWrite),
		CanDelete: sess.HasPermission(session.CapDelete),
	}
	for _, item := range items {
		res.Items = append(res.Items, toResponse(item))
	}
	return res, nil
}

func (s *menuService) validate(req domain.MenuItemRequest) error {
	if err := s.validator.Struct(req); err != nil {
		v := domain.NewValidationError(domain.MessageRequiredFields)
		for field, tag := range utils.FieldErrors(err) {
			v.Add(field, tag)
		}
		if !v.HasErrors() {
			v.Add("request", err.Error())
		}
		return v
	}
	return nil
}

func applyRequest(item *entities.MenuItem, req domain.MenuItemRequest) {
	item.Name = strings.TrimSpace(req.Name)
	item.Price = req.Price
	item.Description = strings.TrimSpace(req.Description)
	item.Category = strings.TrimSpace(req.Category)
	item.Icon = strings.TrimSpace(req.Icon)
	item.Tags = strings.TrimSpace(req.Tags)
	item.HasAllergies = req.HasAllergies
	item.AllergyDetails = ""
	if req.HasAllergies {
		item.AllergyDetails = strings.TrimSpace(req.AllergyDetails)
	}
	if req.ImageURL != "" {
		item.ImageURL = strings.TrimSpace(req.ImageURL)
	}
}

func toResponse(item *entities.MenuItem) domain.MenuItemResponse {
	return domain.MenuItemResponse{
		ID:             item.ID.String(),
		Name:           item.Name,
		Price:          item.Price,
		Description:    item.Description,
		Category:       item.Category,
		Icon:           item.Icon,
		Tags:           SplitTags(item.Tags),
		HasAllergies:   item.HasAllergies,
		AllergyDetails: item.AllergyDetails,
		ImageURL:       item.ImageURL,
		CreatedAt:      item.CreatedAt,
	}
}
