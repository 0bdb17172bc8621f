package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	hotelModel "hotel/internal/domains/hotel/model"
	hotelRepo "hotel/internal/domains/hotel/repository"
	userModel "hotel/internal/domains/user/model"
	userRepo "hotel/internal/domains/user/repository"
	"hotel/internal/session"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

// Access answers manager authorization questions against the current store
// state. Nothing is cached and unknown users or hotels are denied.
type Access interface {
	RequireManager(ctx context.Context, userID int64) (bool, error)
	RequireHotelManager(ctx context.Context, userID, hotelID int64) (bool, error)
	EnsureManager(ctx context.Context) (int64, error)
	EnsureHotelManager(ctx context.Context, hotelID int64) (int64, error)
}

type serviceImpl struct {
	userRepo  userRepo.User
	hotelRepo hotelRepo.Hotel
	otel      otel.Otel
}

func New(userRepo userRepo.User, hotelRepo hotelRepo.Hotel, otel otel.Otel) Access {
	return &serviceImpl{
		userRepo:  userRepo,
		hotelRepo: hotelRepo,
		otel:      otel,
	}
}

func (s *serviceImpl) RequireManager(ctx context.Context, userID int64) (ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequireManager")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ok, err = s.userRepo.Exist(ctx, shared.FilterAll(userModel.TableName, map[string]any{
		userModel.FieldID:       userID,
		userModel.FieldUserType: constant.RoleManager,
	}))
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("failed to check manager role")

		return false, fmt.Errorf("failed to check manager role: %w", err)
	}

	return ok, nil
}

func (s *serviceImpl) RequireHotelManager(ctx context.Context, userID, hotelID int64) (ok bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequireHotelManager")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ok, err = s.RequireManager(ctx, userID)
	if err != nil || !ok {
		return false, err
	}

	ok, err = s.hotelRepo.Exist(ctx, shared.FilterAll(hotelModel.TableName, map[string]any{
		hotelModel.FieldID:            hotelID,
		hotelModel.FieldManagerUserID: userID,
	}))
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Int64("hotelID", hotelID).Msg("failed to check hotel manager")

		return false, fmt.Errorf("failed to check hotel manager: %w", err)
	}

	return ok, nil
}

// EnsureManager returns the session user when it is a manager.
func (s *serviceImpl) EnsureManager(ctx context.Context) (int64, error) {
	userID, ok := session.UserID(ctx)
	if !ok {
		return 0, failure.LoginRequiredError
	}

	ok, err := s.RequireManager(ctx, userID)
	if err != nil {
		return 0, err
	}

	if !ok {
		return 0, failure.ForbiddenError
	}

	return userID, nil
}

// EnsureHotelManager returns the session user when it manages hotelID.
func (s *serviceImpl) EnsureHotelManager(ctx context.Context, hotelID int64) (int64, error) {
	userID, err := s.EnsureManager(ctx)
	if err != nil {
		return 0, err
	}

	ok, err := s.RequireHotelManager(ctx, userID, hotelID)
	if err != nil {
		return 0, err
	}

	if !ok {
		return 0, failure.HotelRestrictedError
	}

	return userID, nil
}
