package uow

import (
	"context"

	"github.com/ScoutDevs/Rechartering/internal/domain/application"
	"github.com/ScoutDevs/Rechartering/internal/domain/guardian"
	"github.com/ScoutDevs/Rechartering/internal/domain/organization"
	"github.com/ScoutDevs/Rechartering/internal/domain/user"
	"github.com/ScoutDevs/Rechartering/internal/domain/volunteer"
	"github.com/ScoutDevs/Rechartering/internal/domain/youth"
)

// Repos are bound to one transaction.
type Repos struct {
	Applications  application.Repository
	Youth         youth.Repository
	Organizations organization.Repository
	Guardians     guardian.Repository
	Volunteers    volunteer.Repository
	Users         user.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.Application) error) error
}
