//go:build integration

package postgres

import (
	"context"
	"log"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

type RepositoryIntegrationTestSuite struct {
	suite.Suite
	ctx      context.Context
	pgc      *tcpostgres.PostgresContainer
	pool     *pgxpool.Pool
	users    *UserRepo
	homes    *HomeRepo
	messages *MessageRepo
	tx       *TxRunner
}

func TestRepositoryIntegration(t *testing.T) {
	suite.Run(t, new(RepositoryIntegrationTestSuite))
}

func (s *RepositoryIntegrationTestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgc, err := tcpostgres.Run(s.ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("homes"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("no se pudo iniciar el contenedor postgres: %s", err)
	}
	s.pgc = pgc

	dsn, err := pgc.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.pool, err = NewPoolFromDSN(s.ctx, dsn)
	s.Require().NoError(err)
	s.Require().NoError(ApplySchema(s.ctx, s.pool))

	s.users = NewUserRepository(s.pool)
	s.homes = NewHomeRepository(s.pool)
	s.messages = NewMessageRepository(s.pool)
	s.tx = NewTxRunner(s.pool)
}

func (s *RepositoryIntegrationTestSuite) TearDownSuite() {
	s.pool.Close()
	if err := s.pgc.Terminate(s.ctx); err != nil {
		log.Fatalf("no se pudo terminar el contenedor: %s", err)
	}
}

func (s *RepositoryIntegrationTestSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE messages, images, homes, users`)
	s.Require().NoError(err)
}

func (s *RepositoryIntegrationTestSuite) createUser(email, role string) *entity.User {
	now := time.Now().UTC()
	u := &entity.User{
		ID: uuid.NewString(), Name: "Usuario " + role, Email: email, Phone: "081234567890",
		PasswordHash: "$2a$10$hash", Role: role, CreatedAt: now, UpdatedAt: now,
	}
	s.Require().NoError(s.users.Create(s.ctx, u))
	return u
}

func (s *RepositoryIntegrationTestSuite) createHome(realtorID, city string, price int64, urls ...string) *entity.Home {
	now := time.Now().UTC().Truncate(time.Microsecond)
	h := &entity.Home{
		ID: uuid.NewString(), Address: "Calle 1", City: city, Price: decimal.NewFromInt(price),
		PropertyType: entity.PropertyResidential, NumberOfBedrooms: 3,
		NumberOfBathrooms: decimal.RequireFromString("2.5"), LandSize: decimal.NewFromInt(200),
		ListedDate: now, RealtorID: realtorID, CreatedAt: now, UpdatedAt: now,
	}
	images := make([]entity.Image, 0, len(urls))
	for i, u := range urls {
		images = append(images, entity.Image{ID: uuid.NewString(), URL: u, HomeID: h.ID, CreatedAt: now.Add(time.Duration(i) * time.Second)})
	}
	err := s.tx.RunHomes(s.ctx, func(repo repository.HomeRepository) error {
		if err := repo.Create(s.ctx, h); err != nil {
			return err
		}
		return repo.CreateImages(s.ctx, images)
	})
	s.Require().NoError(err)
	return h
}

func (s *RepositoryIntegrationTestSuite) TestUser_EmailDuplicado() {
	s.createUser("a@example.com", entity.RoleBuyer)

	dup := &entity.User{ID: uuid.NewString(), Name: "x", Email: "a@example.com", Phone: "0812", PasswordHash: "h", Role: entity.RoleBuyer}
	s.ErrorIs(s.users.Create(s.ctx, dup), domain.ErrEmailAlreadyExists)

	found, err := s.users.FindByEmail(s.ctx, "a@example.com")
	s.NoError(err)
	s.NotNil(found)

	missing, err := s.users.FindByID(s.ctx, "no-es-uuid")
	s.NoError(err)
	s.Nil(missing)
}

func (s *RepositoryIntegrationTestSuite) TestHome_ListConFiltroYPortada() {
	r := s.createUser("r@example.com", entity.RoleRealtor)
	h1 := s.createHome(r.ID, "Bandung", 100, "https://img/1a", "https://img/1b")
	s.createHome(r.ID, "Bandung", 900, "https://img/2")
	s.createHome(r.ID, "Jakarta", 100, "https://img/3")

	city := "Bandung"
	max := decimal.NewFromInt(500)
	list, err := s.homes.List(s.ctx, repository.HomeFilter{City: &city, MaxPrice: &max})
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(h1.ID, list[0].ID)
	s.Equal("https://img/1a", list[0].CoverImage)
	s.True(list[0].Price.Equal(decimal.NewFromInt(100)))
}

func (s *RepositoryIntegrationTestSuite) TestHome_DetalleConRealtor() {
	r := s.createUser("r@example.com", entity.RoleRealtor)
	h := s.createHome(r.ID, "Bandung", 100, "https://img/1a", "https://img/1b")

	d, err := s.homes.GetDetail(s.ctx, h.ID)
	s.Require().NoError(err)
	s.Require().NotNil(d)
	s.Len(d.Images, 2)
	s.Equal("r@example.com", d.Realtor.Email)
	s.True(d.NumberOfBathrooms.Equal(decimal.RequireFromString("2.5")))
}

func (s *RepositoryIntegrationTestSuite) TestHome_BorradoTransaccional() {
	r := s.createUser("r@example.com", entity.RoleRealtor)
	b := s.createUser("b@example.com", entity.RoleBuyer)
	h := s.createHome(r.ID, "Bandung", 100, "https://img/1a")
	s.Require().NoError(s.messages.Create(s.ctx, &entity.Message{
		ID: uuid.NewString(), Message: "hola", HomeID: h.ID, BuyerID: b.ID, RealtorID: r.ID, CreatedAt: time.Now(),
	}))

	err := s.tx.RunHomes(s.ctx, func(repo repository.HomeRepository) error {
		if err := repo.DeleteImagesByHome(s.ctx, h.ID); err != nil {
			return err
		}
		return repo.Delete(s.ctx, h.ID)
	})
	s.Require().NoError(err)

	got, err := s.homes.GetByID(s.ctx, h.ID)
	s.NoError(err)
	s.Nil(got)
}

func (s *RepositoryIntegrationTestSuite) TestHome_ValorFueraDeRangoEsEntradaInvalida() {
	r := s.createUser("r@example.com", entity.RoleRealtor)
	h := s.createHome(r.ID, "Bandung", 100)

	h.NumberOfBathrooms = decimal.NewFromInt(1000)
	s.ErrorIs(s.homes.Update(s.ctx, h), domain.ErrInvalidInput)

	now := time.Now().UTC()
	big := &entity.Home{
		ID: uuid.NewString(), Address: "Calle 2", City: "Bandung", Price: decimal.RequireFromString("1e13"),
		PropertyType: entity.PropertyCondo, NumberOfBedrooms: 1,
		NumberOfBathrooms: decimal.NewFromInt(1), LandSize: decimal.NewFromInt(50),
		ListedDate: now, RealtorID: r.ID, CreatedAt: now, UpdatedAt: now,
	}
	s.ErrorIs(s.homes.Create(s.ctx, big), domain.ErrInvalidInput)
}

func (s *RepositoryIntegrationTestSuite) TestHome_UpdateInexistente() {
	err := s.homes.Update(s.ctx, &entity.Home{ID: uuid.NewString(), Price: decimal.NewFromInt(1), NumberOfBathrooms: decimal.NewFromInt(1), LandSize: decimal.NewFromInt(1)})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *RepositoryIntegrationTestSuite) TestMessage_ListaConContactoDelComprador() {
	r := s.createUser("r@example.com", entity.RoleRealtor)
	b := s.createUser("b@example.com", entity.RoleBuyer)
	h := s.createHome(r.ID, "Bandung", 100, "https://img/1a")
	s.Require().NoError(s.messages.Create(s.ctx, &entity.Message{
		ID: uuid.NewString(), Message: "¿Disponible?", HomeID: h.ID, BuyerID: b.ID, RealtorID: r.ID, CreatedAt: time.Now(),
	}))

	list, err := s.messages.ListByHome(s.ctx, h.ID)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("¿Disponible?", list[0].Message.Message)
	s.Equal("b@example.com", list[0].Buyer.Email)
	s.Equal(r.ID, list[0].RealtorID)
}
