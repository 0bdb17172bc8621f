package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/repair/model"
	"hotel/shared"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

const queryHistory = `SELECT req.id AS request_id, rep.company_id, rep.hotel_id, rep.room_number, rep.repair_date
FROM room_repair_requests req
JOIN room_repairs rep ON rep.id = req.repair_id
WHERE req.manager_id = :manager_id
ORDER BY rep.repair_date DESC, req.id DESC`

type Repair interface {
	CompanyExist(ctx context.Context, companyID int64) (bool, error)
	InsertRepairTx(ctx context.Context, sqltx *sqlx.Tx, repair model.Repair) (int64, error)
	InsertRequestTx(ctx context.Context, sqltx *sqlx.Tx, request model.Request) (int64, error)
	History(ctx context.Context, managerID int64) ([]model.HistoryEntry, error)
}

type repositoryImpl struct {
	repairs   gRepo.Repository[model.Repair]
	requests  gRepo.Repository[model.Request]
	companies gRepo.Repository[model.Company]
	db        *postgres.Connection
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Repair {
	return &repositoryImpl{
		repairs:   gRepo.NewRepository[model.Repair](model.EntityName, model.TableName, model.FieldID, db, otel),
		requests:  gRepo.NewRepository[model.Request](model.RequestEntityName, model.RequestTableName, model.RequestFieldID, db, otel),
		companies: gRepo.NewRepository[model.Company](model.CompanyEntityName, model.CompanyTableName, model.CompanyFieldID, db, otel),
		db:        db,
		otel:      otel,
	}
}

func (r *repositoryImpl) CompanyExist(ctx context.Context, companyID int64) (bool, error) {
	return r.companies.Exist(ctx, shared.FilterByID(companyID, model.CompanyFieldID, model.CompanyTableName)) //nolint:wrapcheck
}

// InsertRepairTx stores the repair and returns its generated ID within sqltx.
func (r *repositoryImpl) InsertRepairTx(ctx context.Context, sqltx *sqlx.Tx, repair model.Repair) (int64, error) {
	return r.repairs.InsertReturningIDTx(ctx, sqltx, repair)
}

func (r *repositoryImpl) InsertRequestTx(ctx context.Context, sqltx *sqlx.Tx, request model.Request) (int64, error) {
	return r.requests.InsertReturningIDTx(ctx, sqltx, request)
}

// History returns the requests of managerID with their repairs, newest repair first.
func (r *repositoryImpl) History(ctx context.Context, managerID int64) ([]model.HistoryEntry, error) {
	res := []model.HistoryEntry{}

	err := r.requests.Query(ctx, &res, queryHistory, map[string]any{"manager_id": managerID})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	return res, nil
}
