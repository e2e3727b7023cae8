package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskdeck/taskdeck/internal/domain"
	"github.com/taskdeck/taskdeck/internal/store"
)

type fakeUserStore struct {
	users map[uuid.UUID]domain.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]domain.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *domain.User) error {
	for _, existing := range s.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return store.ErrEmailExists
		}
	}
	stored := *user
	stored.Password = ""
	stored.HashedPassword = "fake-hash"
	s.users[user.ID] = stored
	return nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			u := user
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *fakeUserStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *fakeUserStore) WithTx(_ *sql.Tx) store.UserStore { return s }

func newUserRouter(users store.UserStore) *chi.Mux {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewUserHandler(users, log)

	r := chi.NewRouter()
	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", handler.CreateUser)
		r.Get("/{id}", handler.GetUser)
		r.Delete("/{id}", handler.DeleteUser)
	})
	return r
}

func TestUserHandler_CreateUser(t *testing.T) {
	t.Parallel()

	t.Run("registers a user without exposing password material", func(t *testing.T) {
		t.Parallel()

		users := newFakeUserStore()
		router := newUserRouter(users)

		body := `{"email":"ada@example.com","password":"correct horse battery"}`
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "ada@example.com", resp.Email)
		assert.NotEqual(t, uuid.Nil, resp.ID)
		assert.NotContains(t, rr.Body.String(), "password")
		assert.NotContains(t, rr.Body.String(), "correct horse battery")
	})

	t.Run("409 for a duplicate email", func(t *testing.T) {
		t.Parallel()

		users := newFakeUserStore()
		router := newUserRouter(users)

		body := `{"email":"dup@example.com","password":"long enough secret"}`
		first := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, first)
		require.Equal(t, http.StatusCreated, rr.Code)

		second := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(body))
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, second)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), "already registered")
	})

	t.Run("rejects a short password", func(t *testing.T) {
		t.Parallel()

		router := newUserRouter(newFakeUserStore())

		body := `{"email":"short@example.com","password":"tiny"}`
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		t.Parallel()

		router := newUserRouter(newFakeUserStore())

		body := `{"email":"not-an-email","password":"long enough secret"}`
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Parallel()

	t.Run("returns the user", func(t *testing.T) {
		t.Parallel()

		users := newFakeUserStore()
		user, err := domain.NewUser("grace@example.com", "long enough secret")
		require.NoError(t, err)
		require.NoError(t, users.Create(context.Background(), user))
		router := newUserRouter(users)

		req := httptest.NewRequest(http.MethodGet, "/api/users/"+user.ID.String(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp UserResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, user.ID, resp.ID)
		assert.Equal(t, "grace@example.com", resp.Email)
	})

	t.Run("404 for unknown user", func(t *testing.T) {
		t.Parallel()

		router := newUserRouter(newFakeUserStore())

		req := httptest.NewRequest(http.MethodGet, "/api/users/"+uuid.NewString(), nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Parallel()

	users := newFakeUserStore()
	user, err := domain.NewUser("gone@example.com", "long enough secret")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), user))
	router := newUserRouter(users)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+user.ID.String(), nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, users.users)
}
