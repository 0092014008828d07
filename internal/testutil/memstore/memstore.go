// Package memstore repositorios en memoria para tests de casos de uso y handlers.
// RunHomes restaura el estado previo si la función falla, emulando un rollback.
package memstore

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Inmobiliaria-api/internal/domain"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/repository"
)

var (
	_ repository.UserRepository    = (*UserRepo)(nil)
	_ repository.HomeRepository    = (*HomeRepo)(nil)
	_ repository.MessageRepository = (*MessageRepo)(nil)
)

// Store estado compartido por los tres repositorios.
type Store struct {
	mu       sync.Mutex
	users    map[string]entity.User
	homes    map[string]entity.Home
	images   []entity.Image
	messages []entity.Message

	// FailCreateImages fuerza un error en CreateImages.
	FailCreateImages bool
}

// New crea un store vacío.
func New() *Store {
	return &Store{users: map[string]entity.User{}, homes: map[string]entity.Home{}}
}

// Users repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Homes repositorio de inmuebles e imágenes.
func (s *Store) Homes() *HomeRepo { return &HomeRepo{s: s} }

// Messages repositorio de consultas.
func (s *Store) Messages() *MessageRepo { return &MessageRepo{s: s} }

// AddUser inserta un usuario tal cual.
func (s *Store) AddUser(u entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = u
}

// AddHome inserta un inmueble y sus imágenes, una por segundo a partir de CreatedAt.
func (s *Store) AddHome(h entity.Home, urls ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.homes[h.ID] = h
	for i, u := range urls {
		s.images = append(s.images, entity.Image{
			ID:        h.ID + "-img-" + string(rune('a'+i)),
			URL:       u,
			HomeID:    h.ID,
			CreatedAt: h.CreatedAt.Add(time.Duration(i) * time.Second),
		})
	}
}

// HomeCount cantidad de inmuebles.
func (s *Store) HomeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.homes)
}

// ImageCount cantidad de imágenes de un inmueble.
func (s *Store) ImageCount(homeID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.imagesOf(homeID))
}

// MessageCount cantidad total de consultas.
func (s *Store) MessageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

// RunHomes ejecuta fn con el repositorio de inmuebles; si falla, descarta sus cambios.
func (s *Store) RunHomes(_ context.Context, fn func(repository.HomeRepository) error) error {
	s.mu.Lock()
	homes := make(map[string]entity.Home, len(s.homes))
	for k, v := range s.homes {
		homes[k] = v
	}
	images := append([]entity.Image(nil), s.images...)
	s.mu.Unlock()

	if err := fn(s.Homes()); err != nil {
		s.mu.Lock()
		s.homes = homes
		s.images = images
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) imagesOf(homeID string) []entity.Image {
	var out []entity.Image
	for _, img := range s.images {
		if img.HomeID == homeID {
			out = append(out, img)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// ── Users ──

// UserRepo usuarios en memoria; el email es único.
type UserRepo struct{ s *Store }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

// ── Homes ──

// HomeRepo inmuebles e imágenes en memoria. Delete falla si quedan imágenes, como la FK real.
type HomeRepo struct{ s *Store }

func (r *HomeRepo) Create(_ context.Context, h *entity.Home) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.homes[h.ID] = *h
	return nil
}

func (r *HomeRepo) GetByID(_ context.Context, id string) (*entity.Home, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h, ok := r.s.homes[id]
	if !ok {
		return nil, nil
	}
	return &h, nil
}

func (r *HomeRepo) GetDetail(_ context.Context, id string) (*entity.HomeDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h, ok := r.s.homes[id]
	if !ok {
		return nil, nil
	}
	d := &entity.HomeDetail{Home: h, Images: r.s.imagesOf(id)}
	if u, ok := r.s.users[h.RealtorID]; ok {
		d.Realtor = u.Contact()
	}
	return d, nil
}

func (r *HomeRepo) List(_ context.Context, f repository.HomeFilter) ([]entity.HomeWithImage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entity.HomeWithImage{}
	for _, h := range r.s.homes {
		if f.City != nil && h.City != *f.City {
			continue
		}
		if f.PropertyType != nil && h.PropertyType != *f.PropertyType {
			continue
		}
		if f.MinPrice != nil && h.Price.LessThan(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && h.Price.GreaterThan(*f.MaxPrice) {
			continue
		}
		item := entity.HomeWithImage{Home: h}
		if imgs := r.s.imagesOf(h.ID); len(imgs) > 0 {
			item.CoverImage = imgs[0].URL
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *HomeRepo) Update(_ context.Context, h *entity.Home) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.homes[h.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.homes[h.ID] = *h
	return nil
}

func (r *HomeRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if len(r.s.imagesOf(id)) > 0 {
		return errors.New("violación de FK: el inmueble aún tiene imágenes")
	}
	if _, ok := r.s.homes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.homes, id)
	kept := r.s.messages[:0]
	for _, m := range r.s.messages {
		if m.HomeID != id {
			kept = append(kept, m)
		}
	}
	r.s.messages = kept
	return nil
}

func (r *HomeRepo) CreateImages(_ context.Context, images []entity.Image) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.FailCreateImages {
		return errors.New("fallo al insertar imágenes")
	}
	r.s.images = append(r.s.images, images...)
	return nil
}

func (r *HomeRepo) DeleteImagesByHome(_ context.Context, homeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	kept := r.s.images[:0]
	for _, img := range r.s.images {
		if img.HomeID != homeID {
			kept = append(kept, img)
		}
	}
	r.s.images = kept
	return nil
}

// ── Messages ──

// MessageRepo consultas en memoria, en orden de inserción.
type MessageRepo struct{ s *Store }

func (r *MessageRepo) Create(_ context.Context, m *entity.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.homes[m.HomeID]; !ok {
		return domain.ErrNotFound
	}
	r.s.messages = append(r.s.messages, *m)
	return nil
}

func (r *MessageRepo) ListByHome(_ context.Context, homeID string) ([]entity.MessageWithBuyer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []entity.MessageWithBuyer{}
	for _, m := range r.s.messages {
		if m.HomeID != homeID {
			continue
		}
		buyer := r.s.users[m.BuyerID]
		out = append(out, entity.MessageWithBuyer{Message: m, Buyer: buyer.Contact()})
	}
	return out, nil
}
