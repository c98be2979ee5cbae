package stateuserroute_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"menlo.ai/state-user-api/app/domain/common"
	"menlo.ai/state-user-api/app/domain/stateuser"
	stateuserroute "menlo.ai/state-user-api/app/interfaces/http/routes/api/stateuser"
	"menlo.ai/state-user-api/app/utils/ptr"
)

type memoryRepo struct {
	mu        sync.Mutex
	byAddress map[string]*stateuser.StateUser
	lookups   int
	err       error
}

func (m *memoryRepo) FindByAddress(ctx context.Context, address string) (*stateuser.StateUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookups++
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.byAddress[address]
	if !ok {
		return nil, stateuser.ErrUserNotFound
	}
	clone := *entry
	return &clone, nil
}

func (m *memoryRepo) Upsert(ctx context.Context, u *stateuser.StateUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *u
	m.byAddress[u.Address] = &clone
	return nil
}

type memoryCache struct {
	mu        sync.Mutex
	entries   map[string]string
	setStatus string
}

func (m *memoryCache) Get(ctx context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[key]
	return value, ok, nil
}

func (m *memoryCache) Set(ctx context.Context, key string, value string, expiration time.Duration) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setStatus != stateuser.CacheSetOK {
		return m.setStatus, nil
	}
	m.entries[key] = value
	return m.setStatus, nil
}

type fixture struct {
	engine *gin.Engine
	repo   *memoryRepo
	cache  *memoryCache
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &memoryRepo{byAddress: map[string]*stateuser.StateUser{
		"0xabc": {Address: "0xabc", Username: ptr.ToString("bob")},
	}}
	cache := &memoryCache{entries: map[string]string{}, setStatus: stateuser.CacheSetOK}
	route := stateuserroute.NewStateUserRoute(stateuser.NewService(repo, cache))

	engine := gin.New()
	route.RegisterRouter(engine.Group("/api"))
	return &fixture{engine: engine, repo: repo, cache: cache}
}

func (f *fixture) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, req)
	return rec
}

func TestGetStateUserSuccess(t *testing.T) {
	f := newFixture(t)

	rec := f.post(`{"address":"0xABC"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"address":"0xabc","image":null,"username":"bob"}`, rec.Body.String())
	assert.JSONEq(t, `{"address":"0xabc","image":null,"username":"bob"}`, f.cache.entries["state_user_0xabc"])
}

func TestGetStateUserCachedResponseSkipsStore(t *testing.T) {
	f := newFixture(t)
	f.cache.entries["state_user_0xcafe"] = `{"address":"0xcafe","image":"https://pbs.twimg.com/c.png","username":"carol"}`

	rec := f.post(`{"address":"0xCAFE"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"address":"0xcafe","image":"https://pbs.twimg.com/c.png","username":"carol"}`, rec.Body.String())
	assert.Zero(t, f.repo.lookups)
}

func TestGetStateUserMissingAddress(t *testing.T) {
	cases := map[string]string{
		"empty object":    `{}`,
		"empty address":   `{"address":""}`,
		"no body":         ``,
		"malformed json":  `{"address":`,
		"non-string type": `{"address":42}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)

			rec := f.post(body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"Missing address"}`, rec.Body.String())
			assert.Zero(t, f.repo.lookups)
		})
	}
}

func TestGetStateUserUnknownAddress(t *testing.T) {
	f := newFixture(t)

	rec := f.post(`{"address":"0xdead"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"No User found"}`, rec.Body.String())
}

func TestGetStateUserCacheUpdateFailure(t *testing.T) {
	f := newFixture(t)
	f.cache.setStatus = ""

	rec := f.post(`{"address":"0xabc"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Error updating cache"}`, rec.Body.String())
}

func TestGetStateUserStoreErrorMessagePassesThrough(t *testing.T) {
	f := newFixture(t)
	f.repo.err = errors.New("pq: too many connections")

	rec := f.post(`{"address":"0xabc"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"pq: too many connections"}`, rec.Body.String())
}

func TestGetStateUserEmptyErrorUsesGenericMessage(t *testing.T) {
	f := newFixture(t)
	f.repo.err = &common.Error{Code: "no-message"}

	rec := f.post(`{"address":"0xabc"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}

func TestGetStateUserRejectsOtherMethods(t *testing.T) {
	f := newFixture(t)

	rec := httptest.NewRecorder()
	f.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
