package menu

import (
	"context"
	"errors"
	"mime/multipart"
	"restaurant-backend/domain"
	"restaurant-backend/entities"
	"restaurant-backend/internal/testutil"
	"restaurant-backend/internal/utils"
	"restaurant-backend/pkg/session"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	admin   = &session.Session{UserID: "admin-1", Role: session.RoleAdmin}
	manager = &session.Session{UserID: "manager-1", Role: session.RoleManager}
	viewer  = &session.Session{UserID: "viewer-1", Role: session.RoleUser}
)

type fakeS3 struct {
	deleted []string
	uploads []string
}

func (f *fakeS3) UploadFile(_ context.Context, fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	key := folder + "/" + fileName
	f.uploads = append(f.uploads, key)
	return key, nil
}

func (f *fakeS3) UpdateFile(_ context.Context, objectKey string, _ *multipart.FileHeader, _ ...string) (string, error) {
	f.uploads = append(f.uploads, objectKey)
	return objectKey, nil
}

func (f *fakeS3) DeleteFile(_ context.Context, objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func (f *fakeS3) GetPublicLinkKey(objectKey string) string {
	return "https://bucket.example.com/" + objectKey
}

func (f *fakeS3) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://bucket.example.com/")
}

type failingMenuRepository struct {
	MenuRepository
}

func (failingMenuRepository) GetMenuItems(context.Context) ([]*entities.MenuItem, error) {
	return nil, errors.New("connection refused")
}

func newTestService(t *testing.T) (MenuService, *gorm.DB, *fakeS3) {
	t.Helper()
	utils.InitValidator()
	db := testutil.NewDB(t)
	s3 := &fakeS3{}
	return NewMenuService(NewMenuRepository(db), s3, utils.Validate), db, s3
}

func validRequest() domain.MenuItemRequest {
	return domain.MenuItemRequest{
		Name:        "Margherita",
		Price:       11.5,
		Description: "Tomato, mozzarella, basil",
		Category:    "mains",
		Tags:        "vegetarian, classic",
	}
}

func TestAddMenuItemReturnsFreshList(t *testing.T) {
	svc, db, _ := newTestService(t)
	testutil.SeedMenuItem(t, db, "Soup", "starters", 6)

	res, err := svc.AddMenuItem(context.Background(), manager, validRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.True(t, res.CanEdit)
	assert.False(t, res.CanDelete)

	names := []string{}
	for _, it := range res.Items {
		names = append(names, it.Name)
	}
	assert.ElementsMatch(t, []string{"Soup", "Margherita"}, names)
}

func TestAddMenuItemValidation(t *testing.T) {
	tests := map[string]func(*domain.MenuItemRequest){
		"missing name":      func(r *domain.MenuItemRequest) { r.Name = "" },
		"blank description": func(r *domain.MenuItemRequest) { r.Description = "   " },
		"zero price":        func(r *domain.MenuItemRequest) { r.Price = 0 },
		"negative price":    func(r *domain.MenuItemRequest) { r.Price = -3 },
		"missing category":  func(r *domain.MenuItemRequest) { r.Category = "" },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			svc, db, _ := newTestService(t)
			req := validRequest()
			mutate(&req)

			_, err := svc.AddMenuItem(context.Background(), admin, req)
			require.Error(t, err)
			assert.True(t, domain.IsValidationError(err))
			assert.Contains(t, err.Error(), domain.MessageRequiredFields)
			assert.Zero(t, testutil.Count(t, db, &entities.MenuItem{}))
		})
	}
}

func TestAddMenuItemRequiresWrite(t *testing.T) {
	svc, db, _ := newTestService(t)

	_, err := svc.AddMenuItem(context.Background(), viewer, validRequest())
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = svc.AddMenuItem(context.Background(), nil, validRequest())
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
	assert.Zero(t, testutil.Count(t, db, &entities.MenuItem{}))
}

func TestUpdateMenuItem(t *testing.T) {
	svc, db, _ := newTestService(t)
	existing := testutil.SeedMenuItem(t, db, "Soup", "starters", 6)

	req := validRequest()
	req.Name = "Tomato Soup"
	req.HasAllergies = true
	req.AllergyDetails = "celery"
	res, err := svc.UpdateMenuItem(context.Background(), admin, existing.ID.String(), req)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Tomato Soup", res.Items[0].Name)
	assert.Equal(t, "celery", res.Items[0].AllergyDetails)
	assert.Equal(t, []string{"vegetarian", "classic"}, res.Items[0].Tags)

	_, err = svc.UpdateMenuItem(context.Background(), admin, uuid.NewString(), req)
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)

	_, err = svc.UpdateMenuItem(context.Background(), admin, "nope", req)
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestDeleteMenuItemByUserRoleMutatesNothing(t *testing.T) {
	svc, db, s3 := newTestService(t)
	existing := testutil.SeedMenuItem(t, db, "Soup", "starters", 6)

	_, err := svc.DeleteMenuItem(context.Background(), viewer, existing.ID.String(), true)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	_, err = svc.DeleteMenuItem(context.Background(), manager, existing.ID.String(), true)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	assert.Equal(t, int64(1), testutil.Count(t, db, &entities.MenuItem{}))
	assert.Empty(t, s3.deleted)
}

func TestDeleteMenuItemNeedsConfirmation(t *testing.T) {
	svc, db, _ := newTestService(t)
	existing := testutil.SeedMenuItem(t, db, "Soup", "starters", 6)

	_, err := svc.DeleteMenuItem(context.Background(), admin, existing.ID.String(), false)
	assert.ErrorIs(t, err, domain.ErrConfirmationRequired)
	assert.Equal(t, int64(1), testutil.Count(t, db, &entities.MenuItem{}))
}

func TestDeleteMenuItemRemovesImage(t *testing.T) {
	svc, db, s3 := newTestService(t)
	existing := testutil.SeedMenuItem(t, db, "Soup", "starters", 6)
	require.NoError(t, db.Model(existing).Update("image_url", "https://bucket.example.com/menu-items/soup.png").Error)

	res, err := svc.DeleteMenuItem(context.Background(), admin, existing.ID.String(), true)
	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.Equal(t, []string{"menu-items/soup.png"}, s3.deleted)

	_, err = svc.DeleteMenuItem(context.Background(), admin, existing.ID.String(), true)
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestUploadMenuImage(t *testing.T) {
	svc, db, s3 := newTestService(t)
	existing := testutil.SeedMenuItem(t, db, "Soup", "starters", 6)

	_, err := svc.UploadMenuImage(context.Background(), admin, existing.ID.String(), domain.UploadMenuImageRequest{})
	assert.True(t, domain.IsValidationError(err))

	res, err := svc.UploadMenuImage(context.Background(), admin, existing.ID.String(), domain.UploadMenuImageRequest{Image: &multipart.FileHeader{Filename: "soup.png"}})
	require.NoError(t, err)
	assert.Equal(t, "https://bucket.example.com/menu-items/menu-item-"+existing.ID.String(), res.ImageURL)
	assert.Len(t, s3.uploads, 1)

	_, err = svc.UploadMenuImage(context.Background(), viewer, existing.ID.String(), domain.UploadMenuImageRequest{Image: &multipart.FileHeader{}})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestUploadMenuImageRejectsMalformedID(t *testing.T) {
	svc, _, s3 := newTestService(t)

	_, err := svc.UploadMenuImage(context.Background(), admin, "not-a-uuid", domain.UploadMenuImageRequest{Image: &multipart.FileHeader{Filename: "soup.png"}})
	assert.ErrorIs(t, err, domain.ErrParseUUID)
	assert.Empty(t, s3.uploads)
}

func TestGetMenuItemsRequiresRead(t *testing.T) {
	svc, db, _ := newTestService(t)
	testutil.SeedMenuItem(t, db, "Soup", "starters", 6)

	res, err := svc.GetMenuItems(context.Background(), viewer)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.False(t, res.CanEdit)

	_, err = svc.GetMenuItems(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestGetCatalogFailure(t *testing.T) {
	utils.InitValidator()
	db := testutil.NewDB(t)
	svc := NewMenuService(failingMenuRepository{NewMenuRepository(db)}, &fakeS3{}, utils.Validate)

	_, err := svc.GetCatalog(context.Background())
	assert.Error(t, err)
}
