package services

import (
	"github.com/ghuser/personregistry/pkg/app"
	"github.com/ghuser/personregistry/pkg/cache"
	"github.com/ghuser/personregistry/services/person/domain/services"
	"github.com/ghuser/personregistry/services/person/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded
// context. It wires domain services with their infrastructure
// implementations.
type Services struct {
	Person *PersonService
}

// New wires the person services with infrastructure from the Application
// container.
func New(a *app.Application) *Services {
	repo := postgres.NewPersonRepository(a.Db, a.EventBus)
	personCache := cache.NewPersonCache(a.Redis)
	checker := services.NewUniquenessChecker(repo)
	return &Services{
		Person: NewPersonService(repo, checker, personCache, a.Logger),
	}
}
