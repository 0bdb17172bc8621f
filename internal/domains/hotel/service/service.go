package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/hotel/model"
	"hotel/internal/domains/hotel/model/dto"
	"hotel/internal/domains/hotel/repository"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/validator"
	"math"

	"github.com/rs/zerolog/log"
)

type Hotel interface {
	HotelsWithin(ctx context.Context, origin model.Coordinate, threshold float64) ([]string, error)
	Nearby(ctx context.Context, req dto.NearbyRequest) (dto.NearbyHotelsResponse, error)
}

type serviceImpl struct {
	repo repository.Hotel
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Hotel, cfg *config.Config, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// Distance is the flat Euclidean distance between two raw coordinates, with no
// great-circle correction.
func Distance(a, b model.Coordinate) float64 {
	return math.Sqrt(math.Pow(a.Latitude-b.Latitude, 2) + math.Pow(a.Longitude-b.Longitude, 2))
}

// HotelsWithin returns the names of every hotel no further than threshold from origin.
func (s *serviceImpl) HotelsWithin(ctx context.Context, origin model.Coordinate, threshold float64) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HotelsWithin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	// No distance is negative, so nothing can be within a negative threshold.
	if threshold < 0 || math.IsNaN(threshold) {
		return []string{}, nil
	}

	hotels, err := s.within(ctx, origin, threshold)
	if err != nil {
		return nil, err
	}

	res = make([]string, 0, len(hotels))
	for _, hotel := range hotels {
		res = append(res, hotel.Name)
	}

	return res, nil
}

func (s *serviceImpl) Nearby(ctx context.Context, req dto.NearbyRequest) (res dto.NearbyHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Nearby")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	radius := req.Radius
	if radius == 0 {
		radius = s.cfg.App.SearchRadius
	}

	hotels, err := s.within(ctx, req.Origin(), radius)
	if err != nil {
		return res, err
	}

	res.Radius = radius
	res.Hotels = hotels

	return res, nil
}

func (s *serviceImpl) within(ctx context.Context, origin model.Coordinate, threshold float64) ([]dto.NearbyHotel, error) {
	params := gDto.QueryParams{SortBy: model.FieldID, SortDir: gDto.SortDirAsc}

	hotels, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{}, model.FieldID, model.FieldName, model.FieldLatitude, model.FieldLongitude)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return nil, fmt.Errorf("failed to get hotels: %w", err)
	}

	res := []dto.NearbyHotel{}

	for _, hotel := range hotels {
		distance := Distance(origin, hotel.Coordinate())
		if distance > threshold {
			continue
		}

		res = append(res, dto.NearbyHotel{
			ID:       hotel.ID,
			Name:     hotel.Name,
			Distance: distance,
		})
	}

	return res, nil
}
