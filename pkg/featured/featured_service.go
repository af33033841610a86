package featured

import (
	"context"
	"errors"
	"restaurant-backend/domain"
	"restaurant-backend/entities"
	"restaurant-backend/pkg/menu"
	"restaurant-backend/pkg/session"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FeaturedService interface {
		LoadFeatured(ctx context.Context, sess *session.Session) (domain.FeaturedBoardResponse, error)
		GetBoard(ctx context.Context, sess *session.Session) (domain.FeaturedBoardResponse, error)
		SelectSlot(ctx context.Context, sess *session.Session, slot int) (domain.FeaturedBoardResponse, error)
		AssignDish(ctx context.Context, sess *session.Session, req domain.AssignFeaturedRequest) (domain.FeaturedBoardResponse, error)
		RemoveSlot(ctx context.Context, sess *session.Session, slot int) (domain.FeaturedBoardResponse, error)
		SaveFeatured(ctx context.Context, sess *session.Session) (domain.FeaturedBoardResponse, error)
		ClearFeatured(ctx context.Context, sess *session.Session, confirmed bool) (domain.FeaturedBoardResponse, error)
		GetPublicFeatured(ctx context.Context) ([]domain.PublicFeaturedDish, error)
		ForgetDraft(userID string)
	}

	featuredService struct {
		featuredRepository FeaturedRepository
		menuRepository     menu.MenuRepository
		drafts             *Drafts
	}
)

func NewFeaturedService(featuredRepository FeaturedRepository, menuRepository menu.MenuRepository, drafts *Drafts) FeaturedService {
	return &featuredService{
		featuredRepository: featuredRepository,
		menuRepository:     menuRepository,
		drafts:             drafts,
	}
}

// LoadFeatured replaces the caller's draft with the persisted selection. A
// storage failure is only logged: the caller gets the draft it already had.
func (s *featuredService) LoadFeatured(ctx context.Context, sess *session.Session) (domain.FeaturedBoardResponse, error) {
	if !sess.HasPermission(session.CapRead) {
		return domain.FeaturedBoardResponse{}, domain.ErrPermissionDenied
	}

	rows, err := s.featuredRepository.GetFeaturedItems(ctx)
	if err != nil {
		log.Errorw("error loading featured items", "err", err)
		state := s.drafts.Snapshot(sess.UserID)
		return s.board(ctx, state, nil, true), nil
	}

	assignments := make([]Assignment, 0, len(rows))
	for _, row := range rows {
		if row.MenuItem == nil {
			continue
		}
		assignments = append(assignments, Assignment{Slot: row.SlotNumber, Dish: ToDish(row.MenuItem)})
	}

	state, _ := s.drafts.Apply(sess.UserID, Loaded{Assignments: assignments})
	return s.board(ctx, state, nil, true), nil
}

func (s *featuredService) GetBoard(ctx context.Context, sess *session.Session) (domain.FeaturedBoardResponse, error) {
	if !sess.HasPermission(session.CapRead) {
		return domain.FeaturedBoardResponse{}, domain.ErrPermissionDenied
	}
	return s.board(ctx, s.drafts.Snapshot(sess.UserID), nil, true), nil
}

func (s *featuredService) SelectSlot(ctx context.Context, sess *session.Session, slot int) (domain.FeaturedBoardResponse, error) {
	if !sess.HasPermission(session.CapRead) {
		return domain.FeaturedBoardResponse{}, domain.ErrPermissionDenied
	}
	return s.apply(ctx, sess, SelectSlot{Slot: slot})
}

// AssignDish puts a menu item into req.Slot, or into the pending slot when
// req.Slot is zero. Only the draft changes.
func (s *featuredService) AssignDish(ctx context.Context, sess *session.Session, req domain.AssignFeaturedRequest) (domain.FeaturedBoardResponse, error) {
	if !sess.HasPermission(session.CapRead) {
		return domain.FeaturedBoardResponse{}, domain.ErrPermissionDenied
	}

	item, err := s.menuRepository.GetMenuItemByID(ctx, req.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FeaturedBoardResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.FeaturedBoardResponse{}, err
	}

	dish := ToDish(item)
	if req.Slot == 0 {
		return s.apply(ctx, sess, PickDish{Dish: dish})
	}
	return s.apply(ctx, sess, AssignDish{Dish: dish, Slot: req.Slot})
}

func (s *featuredService) RemoveSlot(ctx context.Context, sess *session.Session, slot int) (domain.FeaturedBoardResponse, error) {
	if !sess.HasPermission(session.CapRead) {
		return domain.FeaturedBoardResponse{}, domain.ErrPermissionDenied
	}
	return s.apply(ctx, sess, RemoveSlot{Slot: slot})
}

// SaveFeatured persists the caller's draft as the complete featured set.
func (s *featuredService) SaveFeatured(ctx context.Context, sess *session.Session) (domain.FeaturedBoardResponse, error) {
	if !sess.HasPermission(session.CapWrite) {
		return domain.FeaturedBoardResponse{}, domain.ErrPermissionDenied
	}

	release, ok := s.drafts.TryBegin(sess.UserID)
	if !ok {
		return domain.FeaturedBoardResponse{}, domain.ErrRequestInProgress
	}
	defer release()

	state := s.drafts.Snapshot(sess.UserID)
	if state.IsEmpty() {
		v := domain.NewValidationError(domain.MessageNoFeaturedSelected)
		v.Add("slots", domain.MessageNoFeaturedSelected)
		return domain.FeaturedBoardResponse{}, v
	}

	rows := make([]entities.FeaturedItem, 0, len(state.Assignments))
	for _, a := range state.Assignments {
		id, err := uuid.Parse(a.Dish.ID)
		if err != nil {
			return domain.FeaturedBoardResponse{}, domain.ErrParseUUID
		}
		rows = append(rows, NewFeaturedItem(a.Slot, id))
	}

	if err := s.featuredRepository.ReplaceFeaturedItems(ctx, rows); err != nil {
		log.Errorw("error saving featured items", "err", err)
		return domain.FeaturedBoardResponse{}, err
	}

	log.Infow("featured items saved", "user", sess.Email, "count", len(rows))
	notice := domain.NewNotice(domain.NoticeSuccess, domain.MessageSuccessSaveFeatured)
	return s.board(ctx, state, []domain.Notice{notice}, false), nil
}

func (s *featuredService) ClearFeatured(ctx context.Context, sess *session.Session, confirmed bool) (domain.FeaturedBoardResponse, error) {
	if !sess.HasPermission(session.CapWrite) {
		return domain.FeaturedBoardResponse{}, domain.ErrPermissionDenied
	}
	if !confirmed {
		return domain.FeaturedBoardResponse{}, domain.ErrConfirmationRequired
	}

	release, ok := s.drafts.TryBegin(sess.UserID)
	if !ok {
		return domain.FeaturedBoardResponse{}, domain.ErrRequestInProgress
	}
	defer release()

	if err := s.featuredRepository.DeleteAllFeaturedItems(ctx); err != nil {
		log.Errorw("error clearing featured items", "err", err)
		return domain.FeaturedBoardResponse{}, err
	}

	state, _ := s.drafts.Apply(sess.UserID, Cleared{})
	log.Infow("featured items cleared", "user", sess.Email)
	notice := domain.NewNotice(domain.NoticeSuccess, domain.MessageSuccessClearFeatured)
	return s.board(ctx, state, []domain.Notice{notice}, true), nil
}

func (s *featuredService) GetPublicFeatured(ctx context.Context) ([]domain.PublicFeaturedDish, error) {
	rows, err := s.featuredRepository.GetFeaturedItems(ctx)
	if err != nil {
		log.Errorw("error loading featured items", "err", err)
		return nil, err
	}

	out := make([]domain.PublicFeaturedDish, 0, len(rows))
	for _, row := range rows {
		if row.MenuItem == nil || row.SlotNumber > s.drafts.SlotCount() {
			continue
		}
		out = append(out, domain.PublicFeaturedDish{Slot: row.SlotNumber, MenuCard: menu.NewMenuCard(row.MenuItem)})
	}
	return out, nil
}

func (s *featuredService) ForgetDraft(userID string) {
	s.drafts.Forget(userID)
}

// apply runs an in-memory event. A rejected event surfaces as an error and
// leaves the draft untouched.
func (s *featuredService) apply(ctx context.Context, sess *session.Session, ev Event) (domain.FeaturedBoardResponse, error) {
	state, effects := s.drafts.Apply(sess.UserID, ev)

	notices := make([]domain.Notice, 0, len(effects))
	for _, e := range effects {
		if e.Err != nil {
			return domain.FeaturedBoardResponse{}, e.Err
		}
		notices = append(notices, e.Notice)
	}
	return s.board(ctx, state, notices, false), nil
}

func (s *featuredService) board(ctx context.Context, state State, notices []domain.Notice, withAvailable bool) domain.FeaturedBoardResponse {
	res := domain.FeaturedBoardResponse{
		Slots:       Slots(state),
		PendingSlot: state.Pending,
		Notices:     notices,
	}
	if !withAvailable {
		return res
	}

	items, err := s.menuRepository.GetMenuItems(ctx)
	if err != nil {
		log.Errorw("error loading available dishes", "err", err)
		return res
	}
	res.Available = Available(state, items)
	return res
}

// Available lists every menu item, marking the ones already featured.
func Available(state State, items []*entities.MenuItem) []domain.AvailableDish {
	out := make([]domain.AvailableDish, 0, len(items))
	for _, item := range items {
		dish := ToDish(item)
		out = append(out, domain.AvailableDish{
			FeaturedDish:  dish,
			CategoryTitle: menu.CategoryTitle(item.Category),
			Selected:      state.SlotOf(dish.ID) != 0,
		})
	}
	return out
}

func ToDish(item *entities.MenuItem) domain.FeaturedDish {
	return domain.FeaturedDish{
		ID:             item.ID.String(),
		Name:           item.Name,
		Price:          item.Price,
		Description:    item.Description,
		Category:       item.Category,
		Icon:           item.Icon,
		Tags:           item.Tags,
		HasAllergies:   item.HasAllergies,
		AllergyDetails: item.AllergyDetails,
		ImageURL:       item.ImageURL,
	}
}
