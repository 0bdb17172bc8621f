package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	access "hotel/internal/domains/access/service"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/shared/validator"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Room interface {
	Update(ctx context.Context, req dto.UpdateRoomRequest) error
	RecentUpdates(ctx context.Context) ([]dto.UpdateLogResponse, error)
}

type serviceImpl struct {
	repo       repository.Room
	access     access.Access
	transactor postgres.Transactor
	otel       otel.Otel
}

func New(repo repository.Room, access access.Access, transactor postgres.Transactor, otel otel.Otel) Room {
	return &serviceImpl{
		repo:       repo,
		access:     access,
		transactor: transactor,
		otel:       otel,
	}
}

// Update changes the price and image of a room the session manager runs and
// appends the audit entry in the same transaction.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	managerID, err := s.access.EnsureHotelManager(ctx, req.HotelID)
	if err != nil {
		return err //nolint:wrapcheck
	}

	filter := model.ByKey(req.HotelID, req.RoomNumber)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, req.Fields(), filter); err != nil {
			return fmt.Errorf("failed to update room: %w", err)
		}

		entry := model.UpdateLog{
			ManagerID:  managerID,
			HotelID:    req.HotelID,
			RoomNumber: req.RoomNumber,
			UpdatedOn:  timezone.Now(),
		}

		if err := s.repo.InsertUpdateLogTx(ctx, tx, entry); err != nil {
			return fmt.Errorf("failed to log room update: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("hotelID", req.HotelID).Int64("roomNumber", req.RoomNumber).Msg("failed to update room")

		return err //nolint:wrapcheck
	}

	log.Info().Int64("managerID", managerID).Int64("hotelID", req.HotelID).Int64("roomNumber", req.RoomNumber).Msg("room updated")

	return nil
}

func (s *serviceImpl) RecentUpdates(ctx context.Context) (res []dto.UpdateLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecentUpdates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	managerID, err := s.access.EnsureManager(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	entries, err := s.repo.RecentUpdates(ctx, managerID, constant.ReportLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent room updates")

		return nil, fmt.Errorf("failed to get recent room updates: %w", err)
	}

	res = make([]dto.UpdateLogResponse, len(entries))
	for i, entry := range entries {
		res[i].FromModel(entry)
	}

	return res, nil
}
