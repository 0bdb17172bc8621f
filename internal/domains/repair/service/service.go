package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	access "hotel/internal/domains/access/service"
	"hotel/internal/domains/repair/model"
	"hotel/internal/domains/repair/model/dto"
	"hotel/internal/domains/repair/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"hotel/shared/validator"
	"strconv"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Repair interface {
	RequestRepair(ctx context.Context, req dto.RepairRequest) (dto.RepairRequestResponse, error)
	History(ctx context.Context) ([]dto.HistoryResponse, error)
}

type serviceImpl struct {
	repo       repository.Repair
	roomRepo   roomRepo.Room
	access     access.Access
	transactor postgres.Transactor
	kafka      kafka.Client
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Repair,
	roomRepo roomRepo.Room,
	access access.Access,
	transactor postgres.Transactor,
	kafka kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Repair {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		access:     access,
		transactor: transactor,
		kafka:      kafka,
		cfg:        cfg,
		otel:       otel,
	}
}

// RequestRepair records a repair and the manager's request for it in one
// transaction, the request pointing at the ID the repair insert returned.
// The maintenance company is notified after the commit.
func (s *serviceImpl) RequestRepair(ctx context.Context, req dto.RepairRequest) (res dto.RepairRequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestRepair")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	managerID, err := s.access.EnsureHotelManager(ctx, req.HotelID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	exist, err := s.roomRepo.Exist(ctx, roomModel.ByKey(req.HotelID, req.RoomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	exist, err = s.repo.CompanyExist(ctx, req.CompanyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if maintenance company exists")

		return res, fmt.Errorf("failed to check if maintenance company exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("maintenance company not found") //nolint:wrapcheck
	}

	repairDate := timezone.Today()

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		repairID, err := s.repo.InsertRepairTx(ctx, tx, req.ToModel(repairDate))
		if err != nil {
			return fmt.Errorf("failed to create repair: %w", err)
		}

		requestID, err := s.repo.InsertRequestTx(ctx, tx, model.Request{ManagerID: managerID, RepairID: repairID})
		if err != nil {
			return fmt.Errorf("failed to create repair request: %w", err)
		}

		res = dto.RepairRequestResponse{
			RequestID:  requestID,
			RepairID:   repairID,
			CompanyID:  req.CompanyID,
			HotelID:    req.HotelID,
			RoomNumber: req.RoomNumber,
			RepairDate: timezone.FormatDate(repairDate),
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("hotelID", req.HotelID).Int64("roomNumber", req.RoomNumber).Msg("failed to request repair")

		return dto.RepairRequestResponse{}, err //nolint:wrapcheck
	}

	s.publish(ctx, managerID, res)

	return res, nil
}

func (s *serviceImpl) publish(ctx context.Context, managerID int64, res dto.RepairRequestResponse) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".RepairRequested")
	defer scope.End()

	message := kafka.Message{
		Key:   strconv.FormatInt(res.CompanyID, 10),
		Value: dto.RepairRequestedEvent{RepairRequestResponse: res, ManagerID: managerID},
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.RepairTopic, message); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("requestID", res.RequestID).Msg("failed to notify maintenance company")
	}
}

func (s *serviceImpl) History(ctx context.Context) (res []dto.HistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	managerID, err := s.access.EnsureManager(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	entries, err := s.repo.History(ctx, managerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get repair history")

		return nil, fmt.Errorf("failed to get repair history: %w", err)
	}

	res = make([]dto.HistoryResponse, len(entries))
	for i, entry := range entries {
		res[i].FromModel(entry)
	}

	return res, nil
}
