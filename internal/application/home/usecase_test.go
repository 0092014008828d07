package home_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/home"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/testutil/memstore"
	"github.com/jhoicas/Inmobiliaria-api/pkg/logger"
)

const (
	realtorID = "realtor-1"
	buyerID   = "buyer-1"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []home.InquiryCreatedEvent
	err    error
}

func (p *recordingPublisher) PublishInquiryCreated(_ context.Context, ev home.InquiryCreatedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, ev)
	return nil
}

func newHomeUseCase(t *testing.T) (*home.HomeUseCase, *memstore.Store, *recordingPublisher) {
	t.Helper()
	store := memstore.New()
	store.AddUser(entity.User{ID: realtorID, Name: "Rita", Email: "rita@example.com", Phone: "081200000001", PasswordHash: "hash-r", Role: entity.RoleRealtor})
	store.AddUser(entity.User{ID: buyerID, Name: "Bruno", Email: "bruno@example.com", Phone: "081200000002", PasswordHash: "hash-b", Role: entity.RoleBuyer})
	pub := &recordingPublisher{}
	uc := home.NewHomeUseCase(store.Homes(), store.Messages(), store, pub, logger.Nop())
	return uc, store, pub
}

func seedHome(store *memstore.Store, id, city string, price int64, propertyType string, urls ...string) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.AddHome(entity.Home{
		ID:                id,
		Address:           "Calle " + id,
		City:              city,
		Price:             decimal.NewFromInt(price),
		PropertyType:      propertyType,
		NumberOfBedrooms:  3,
		NumberOfBathrooms: decimal.NewFromFloat(2.5),
		LandSize:          decimal.NewFromInt(120),
		ListedDate:        now,
		RealtorID:         realtorID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, urls...)
}

func createReq() dto.CreateHomeRequest {
	return dto.CreateHomeRequest{
		Address:           "Av. Siempre Viva 742",
		NumberOfBedrooms:  4,
		NumberOfBathrooms: decimal.NewFromInt(2),
		City:              "Bandung",
		Price:             decimal.NewFromInt(1500000),
		LandSize:          decimal.NewFromInt(300),
		PropertyType:      entity.PropertyResidential,
		Images: []dto.ImageRequest{
			{URL: "https://img.example.com/1.jpg"},
			{URL: "https://img.example.com/2.jpg"},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ListHomes
// ──────────────────────────────────────────────────────────────────────────────

func TestListHomes_FiltraPorCiudadYPrecio(t *testing.T) {
	uc, store, _ := newHomeUseCase(t)
	seedHome(store, "h1", "Bandung", 100, entity.PropertyResidential, "https://img/h1a", "https://img/h1b")
	seedHome(store, "h2", "Bandung", 500, entity.PropertyCondo, "https://img/h2")
	seedHome(store, "h3", "Jakarta", 200, entity.PropertyResidential, "https://img/h3")

	out, err := uc.ListHomes(context.Background(), dto.HomeQuery{City: "Bandung", MinPrice: "50", MaxPrice: "300"})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "h1", out[0].ID)
	assert.Equal(t, "https://img/h1a", out[0].Image, "la portada es la primera imagen")
}

func TestListHomes_SinFiltroDevuelveTodos(t *testing.T) {
	uc, store, _ := newHomeUseCase(t)
	seedHome(store, "h1", "Bandung", 100, entity.PropertyResidential, "https://img/h1")
	seedHome(store, "h2", "Jakarta", 500, entity.PropertyCondo, "https://img/h2")

	out, err := uc.ListHomes(context.Background(), dto.HomeQuery{})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestListHomes_VacioEsNotFound(t *testing.T) {
	uc, store, _ := newHomeUseCase(t)
	seedHome(store, "h1", "Bandung", 100, entity.PropertyResidential, "https://img/h1")

	_, err := uc.ListHomes(context.Background(), dto.HomeQuery{City: "Surabaya"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListHomes_FiltroInvalido(t *testing.T) {
	uc, _, _ := newHomeUseCase(t)
	_, err := uc.ListHomes(context.Background(), dto.HomeQuery{MinPrice: "barato"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetHomeByID
// ──────────────────────────────────────────────────────────────────────────────

func TestGetHomeByID_IncluyeImagenesYContactoSinPassword(t *testing.T) {
	uc, store, _ := newHomeUseCase(t)
	seedHome(store, "h1", "Bandung", 100, entity.PropertyResidential, "https://img/a", "https://img/b")

	out, err := uc.GetHomeByID(context.Background(), "h1")
	require.NoError(t, err)
	require.Len(t, out.Images, 2)
	assert.Equal(t, "https://img/a", out.Images[0].URL)
	assert.Equal(t, "rita@example.com", out.Realtor.Email)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash-r")
	assert.NotContains(t, string(raw), "realtor_id")
}

func TestGetHomeByID_NoExiste(t *testing.T) {
	uc, _, _ := newHomeUseCase(t)
	_, err := uc.GetHomeByID(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// CreateHome
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateHome_PersisteInmuebleEImagenes(t *testing.T) {
	uc, store, _ := newHomeUseCase(t)
	ctx := context.Background()

	out, err := uc.CreateHome(ctx, realtorID, createReq())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "https://img.example.com/1.jpg", out.Image)
	assert.False(t, out.ListedDate.IsZero())
	assert.Equal(t, 2, store.ImageCount(out.ID))

	h, err := store.Homes().GetByID(ctx, out.ID)
	require.NoError(t, err)
	require.NotNil(t, h)
	assert.Equal(t, realtorID, h.RealtorID)
}

func TestCreateHome_FalloEnImagenesRevierte(t *testing.T) {
	uc, store, _ := newHomeUseCase(t)
	store.FailCreateImages = true

	_, err := uc.CreateHome(context.Background(), realtorID, createReq())
	require.Error(t, err)
	assert.Equal(t, 0, store.HomeCount(), "no debe quedar un inmueble sin imágenes")
}

func TestCreateHome_SinImagenes(t *testing.T) {
	uc, _, _ := newHomeUseCase(t)
	req := createReq()
	req.Images = nil
	_, err := uc.CreateHome(context.Background(), realtorID, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateHome / DeleteHome
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateHome_Parcial(t *testing.T) {
	uc, store, _ := newHomeUseCase(t)
	seedHome(store, "h1", "Bandung", 100, entity.PropertyResidential, "https://img/h1")

	price := decimal.NewFromInt(250)
	out, err := uc.UpdateHome(context.Background(), "h1", dto.UpdateHomeRequest{Price: &price})
	require.NoError(t, err)
	assert.True(t, out.Price.Equal(price))
	assert.Equal(t, "Bandung", out.City, "los campos ausentes no cambian")
	assert.Equal(t, 3, out.NumberOfBedrooms)
	assert.Equal(t, "https://img/h1", out.Image, "la respuesta conserva la portada")
}

func TestUpdateHome_NoExiste(t *testing.T) {
	uc, _, _ := newHomeUseCase(t)
	city := "X"
	_, err := uc.UpdateHome(context.Background(), "nada", dto.UpdateHomeRequest{City: &city})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteHome_BorraImagenesYDevuelveRestantes(t *testing.T) {
	uc, store, _ := newHomeUseCase(t)
	seedHome(store, "h1", "Bandung", 100, entity.PropertyResidential, "https://img/h1a", "https://img/h1b")
	seedHome(store, "h2", "Jakarta", 200, entity.PropertyCondo, "https://img/h2")

	out, err := uc.DeleteHome(context.Background(), "h1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "h2", out[0].ID)
	assert.Equal(t, 0, store.ImageCount("h1"))
}

func TestDeleteHome_UltimoDevuelveListaVacia(t *testing.T) {
	uc, store, _ := newHomeUseCase(t)
	seedHome(store, "h1", "Bandung", 100, entity.PropertyResidential, "https://img/h1")

	out, err := uc.DeleteHome(context.Background(), "h1")
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestDeleteHome_NoExiste(t *testing.T) {
	uc, _, _ := newHomeUseCase(t)
	_, err := uc.DeleteHome(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetRealtorByHomeID(t *testing.T) {
	uc, store, _ := newHomeUseCase(t)
	seedHome(store, "h1", "Bandung", 100, entity.PropertyResidential, "https://img/h1")

	id, err := uc.GetRealtorByHomeID(context.Background(), "h1")
	require.NoError(t, err)
	assert.Equal(t, realtorID, id)

	_, err = uc.GetRealtorByHomeID(context.Background(), "nada")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInquire_DirigidoAlRealtorDueñoYPublicaEvento(t *testing.T) {
	uc, store, pub := newHomeUseCase(t)
	seedHome(store, "h1", "Bandung", 100, entity.PropertyResidential, "https://img/h1")

	out, err := uc.Inquire(context.Background(), dto.Principal{ID: buyerID, Name: "Bruno", Role: entity.RoleBuyer}, "h1", "  ¿Sigue disponible?  ")
	require.NoError(t, err)
	assert.Equal(t, realtorID, out.RealtorID)
	assert.Equal(t, buyerID, out.BuyerID)
	assert.Equal(t, "¿Sigue disponible?", out.Message)

	require.Len(t, pub.events, 1)
	assert.Equal(t, home.EventInquiryCreated, pub.events[0].EventType)
	assert.Equal(t, out.ID, pub.events[0].MessageID)
}

func TestInquire_FalloDelBusNoRevierte(t *testing.T) {
	uc, store, pub := newHomeUseCase(t)
	pub.err = errors.New("nats caído")
	seedHome(store, "h1", "Bandung", 100, entity.PropertyResidential, "https://img/h1")

	_, err := uc.Inquire(context.Background(), dto.Principal{ID: buyerID}, "h1", "hola")
	require.NoError(t, err)
	assert.Equal(t, 1, store.MessageCount())
}

func TestInquire_InmuebleNoExiste(t *testing.T) {
	uc, store, _ := newHomeUseCase(t)
	_, err := uc.Inquire(context.Background(), dto.Principal{ID: buyerID}, "nada", "hola")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, store.MessageCount())
}

func TestListMessagesByHome_IncluyeContactoDelComprador(t *testing.T) {
	uc, store, _ := newHomeUseCase(t)
	seedHome(store, "h1", "Bandung", 100, entity.PropertyResidential, "https://img/h1")
	_, err := uc.Inquire(context.Background(), dto.Principal{ID: buyerID}, "h1", "hola")
	require.NoError(t, err)

	out, err := uc.ListMessagesByHome(context.Background(), "h1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Buyer)
	assert.Equal(t, "bruno@example.com", out[0].Buyer.Email)
	assert.Equal(t, "081200000002", out[0].Buyer.Phone)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash-b")
}
