package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yleroy/coffeehouse-be/internal/auth"
	"github.com/yleroy/coffeehouse-be/internal/config"
	"github.com/yleroy/coffeehouse-be/internal/models"
)

type stubAuthService struct{}

func (stubAuthService) Register(context.Context, string, string, string, string) error { return nil }
func (stubAuthService) Login(context.Context, string, string, string) (models.User, string, error) {
	return models.User{}, "", models.ErrUserNotFound
}
func (stubAuthService) AutoLogin(context.Context, string) (models.User, bool) {
	return models.User{}, false
}
func (stubAuthService) Update(context.Context, string, string, map[string]any) (models.User, error) {
	return models.User{}, nil
}
func (stubAuthService) Logout(context.Context, string) {}
func (stubAuthService) GetUserByID(context.Context, string) (models.User, error) {
	return models.User{}, models.ErrUserNotFound
}

type stubCoffeeService struct{}

func (stubCoffeeService) GetAllCoffees(context.Context) ([]models.Coffee, error) {
	return []models.Coffee{}, nil
}
func (stubCoffeeService) GetCoffeeByID(context.Context, string) (models.Coffee, error) {
	return models.Coffee{}, models.ErrCoffeeNotFound
}
func (stubCoffeeService) CreateCoffee(_ context.Context, c models.Coffee) (models.Coffee, error) {
	return c, nil
}
func (stubCoffeeService) UpdateCoffee(context.Context, string, map[string]any) (models.Coffee, error) {
	return models.Coffee{}, nil
}
func (stubCoffeeService) DeleteCoffee(context.Context, string) error { return nil }

func newTestRouter(t *testing.T) (http.Handler, *auth.TokenIssuer) {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)

	issuer := auth.NewTokenIssuer("test-secret")
	return NewRouter(cfg, stubAuthService{}, stubCoffeeService{}, issuer), issuer
}

func TestRouter_Routes(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodPost, "/api/user", `{"email":"a@x.com","username":"al","password":"p"}`, http.StatusCreated},
		{http.MethodPost, "/api/user/login", `{"email":"a@x.com","password":"p"}`, http.StatusNonAuthoritativeInfo},
		{http.MethodGet, "/api/user/autologin", "", http.StatusOK},
		{http.MethodPost, "/api/user/logout", "", http.StatusOK},
		{http.MethodGet, "/api/coffees", "", http.StatusOK},
		{http.MethodGet, "/api/coffees/64f000000000000000000000", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_CoffeeMutationsRequireToken(t *testing.T) {
	router, issuer := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/coffees",
		strings.NewReader(`{"name":"Yirgacheffe","price":12.5}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := issuer.Issue(models.User{Email: "a@x.com"})
	require.NoError(t, err)

	req = httptest.NewRequest(http.MethodPost, "/api/coffees",
		strings.NewReader(`{"name":"Yirgacheffe","price":12.5}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
