package reservation

import (
	"context"
	"fmt"
	"restaurant-backend/domain"
	"restaurant-backend/entities"
	"restaurant-backend/internal/utils"
	"restaurant-backend/pkg/notify"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

// Rules are the booking limits that come from configuration.
type Rules struct {
	MaxGuests     int
	AdvanceMonths int
	Location      *time.Location
	Now           func() time.Time
}

// RulesFromConfig reads the limits from the loaded configuration. An unknown
// time zone falls back to UTC.
func RulesFromConfig() Rules {
	loc, err := time.LoadLocation(utils.GetConfig("APP_TIMEZONE"))
	if err != nil {
		log.Warnw("unknown APP_TIMEZONE, using UTC", "err", err)
		loc = time.UTC
	}
	return Rules{
		MaxGuests:     utils.GetConfigInt("RESERVATION_MAX_GUESTS", 20),
		AdvanceMonths: utils.GetConfigInt("RESERVATION_ADVANCE_MONTHS", 3),
		Location:      loc,
		Now:           time.Now,
	}
}

type (
	ReservationService interface {
		Submit(ctx context.Context, req domain.CreateReservationRequest) (domain.ReservationResponse, error)
		GetTimeOptions(date string) (domain.TimeOptionsResponse, error)
	}

	reservationService struct {
		reservationRepository ReservationRepository
		dispatcher            notify.Dispatcher
		validator             *validator.Validate
		rules                 Rules
	}
)

func NewReservationService(reservationRepository ReservationRepository, dispatcher notify.Dispatcher, validator *validator.Validate, rules Rules) ReservationService {
	if rules.Location == nil {
		rules.Location = time.UTC
	}
	if rules.Now == nil {
		rules.Now = time.Now
	}
	return &reservationService{
		reservationRepository: reservationRepository,
		dispatcher:            dispatcher,
		validator:             validator,
		rules:                 rules,
	}
}

// Submit validates the request and stores it as a pending reservation. Nothing
// is written when any field is invalid.
func (s *reservationService) Submit(ctx context.Context, req domain.CreateReservationRequest) (domain.ReservationResponse, error) {
	req = trim(req)
	if verr := s.validate(req); verr.HasErrors() {
		return domain.ReservationResponse{}, verr
	}

	reservation := &entities.Reservation{
		ID:              uuid.New(),
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Date:            req.Date,
		Time:            req.Time,
		Guests:          req.Guests,
		SpecialRequests: req.SpecialRequests,
		SubmittedAt:     s.rules.Now().UTC(),
		Status:          domain.ReservationStatusPending,
	}
	if err := s.reservationRepository.CreateReservation(ctx, reservation); err != nil {
		log.Errorw("error creating reservation", "err", err)
		return domain.ReservationResponse{}, err
	}

	res := toResponse(reservation)
	log.Infow("reservation created", "id", res.ID, "date", res.Date, "time", res.Time, "guests", res.Guests)
	if s.dispatcher != nil {
		s.dispatcher.Dispatch(domain.ReservationNotice{Reservation: res})
	}
	return res, nil
}

func (s *reservationService) GetTimeOptions(date string) (domain.TimeOptionsResponse, error) {
	d, err := ParseDate(strings.TrimSpace(date), s.rules.Location)
	if err != nil {
		return domain.TimeOptionsResponse{}, err
	}
	return domain.TimeOptionsResponse{
		Date:    d.Format(DateLayout),
		Weekday: d.Weekday().String(),
		Times:   TimeOptions(d),
	}, nil
}

func (s *reservationService) validate(req domain.CreateReservationRequest) *domain.ValidationError {
	verr := domain.NewValidationError(domain.MessageFailedValidation)
	if err := s.validator.Struct(req); err != nil {
		for field, tag := range utils.FieldErrors(err) {
			verr.Add(field, messageFor(tag))
		}
	}

	if _, bad := verr.Fields["date"]; !bad {
		s.validateDate(verr, req)
	}

	if _, bad := verr.Fields["guests"]; !bad && (req.Guests < 1 || req.Guests > s.rules.MaxGuests) {
		verr.Add("guests", domain.MessageInvalidGuests)
	}
	return verr
}

func (s *reservationService) validateDate(verr *domain.ValidationError, req domain.CreateReservationRequest) {
	d, err := ParseDate(req.Date, s.rules.Location)
	if err != nil {
		verr.Add("date", domain.MessageInvalidDate)
		return
	}

	today := Today(s.rules.Now(), s.rules.Location)
	switch {
	case d.Before(today):
		verr.Add("date", domain.MessagePastDate)
		return
	case s.rules.AdvanceMonths > 0 && d.After(today.AddDate(0, s.rules.AdvanceMonths, 0)):
		verr.Add("date", fmt.Sprintf(domain.MessageDateTooFar, s.rules.AdvanceMonths))
		return
	}

	if _, bad := verr.Fields["time"]; !bad && !OnLadder(d, req.Time) {
		verr.Add("time", domain.MessageInvalidTime)
	}
}

func messageFor(tag string) string {
	switch tag {
	case "reservation_email":
		return domain.MessageInvalidEmail
	case "reservation_phone":
		return domain.MessageInvalidPhone
	default:
		return domain.MessageFieldRequired
	}
}

func trim(req domain.CreateReservationRequest) domain.CreateReservationRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	req.SpecialRequests = strings.TrimSpace(req.SpecialRequests)
	return req
}

func toResponse(r *entities.Reservation) domain.ReservationResponse {
	return domain.ReservationResponse{
		ID:              r.ID.String(),
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Date:            r.Date,
		Time:            r.Time,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
		SubmittedAt:     r.SubmittedAt,
		Status:          r.Status,
	}
}
