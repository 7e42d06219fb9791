package handler

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/holextra/accounts-api/internal/model"
	"github.com/holextra/accounts-api/internal/queue"
	"github.com/holextra/accounts-api/internal/service"
)

// fakeStore is an in-memory service.UserStore so handler tests exercise the
// full handler -> service pipeline without a document store.  failWith makes
// every operation fail, simulating an infrastructure outage.
type fakeStore struct {
	users    map[primitive.ObjectID]model.User
	failWith error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[primitive.ObjectID]model.User{}}
}

func (f *fakeStore) add(u model.User) primitive.ObjectID {
	if u.DBID.IsZero() {
		u.DBID = primitive.NewObjectID()
	}
	f.users[u.DBID] = u
	return u.DBID
}

func (f *fakeStore) GetByEmailPassword(_ context.Context, email, password string) (*model.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.users {
		if u.Email == email && u.Password == password {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetByDBID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (f *fakeStore) GetAllByEmail(_ context.Context, email string) ([]model.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []model.User
	for _, u := range f.users {
		if u.Email == email {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeStore) GetAll(_ context.Context) ([]model.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []model.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeStore) Insert(_ context.Context, u model.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.add(u)
	return nil
}

func (f *fakeStore) Update(_ context.Context, dbID primitive.ObjectID, u model.User) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	cur, ok := f.users[dbID]
	if !ok {
		return false, nil
	}
	u.DBID = dbID
	u.Created = cur.Created
	u.Token = cur.Token
	f.users[dbID] = u
	return true, nil
}

func (f *fakeStore) SaveAuthToken(_ context.Context, email, password, token string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	for id, u := range f.users {
		if u.Email == email && u.Password == password {
			u.Token = token
			f.users[id] = u
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Delete(_ context.Context, dbID primitive.ObjectID) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	if _, ok := f.users[dbID]; !ok {
		return false, nil
	}
	delete(f.users, dbID)
	return true, nil
}

// noopPublish swallows audit events; tests never dial a broker.
func noopPublish(context.Context, queue.AccountEvent) error { return nil }

// newTestHandlers wires both handlers over a service backed by the fake store.
func newTestHandlers(store *fakeStore) (*AuthHandler, *UserHandler) {
	svc := service.NewUserService(store, "TRFTS")
	a := NewAuthHandler(svc)
	a.publish = noopPublish
	u := NewUserHandler(svc)
	u.publish = noopPublish
	return a, u
}

// doRequest runs a handler through a minimal echo context and returns the recorder.
func doRequest(req *http.Request, h echo.HandlerFunc) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	_ = h(c)
	return rec
}
