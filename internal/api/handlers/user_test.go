package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolhub/internal/api/dto"
	"toolhub/internal/api/middleware"
	"toolhub/internal/domain"
	"toolhub/internal/repository"
	"toolhub/internal/testutil"
)

const testJWTKey = "test-secret"

func setupUserHandlerTest(t *testing.T) (*UserHandler, *testutil.MemoryStore, *echo.Echo) {
	t.Helper()
	store := testutil.NewMemoryStore()
	return NewUserHandler(store, testJWTKey), store, echo.New()
}

func signIn(t *testing.T, h *UserHandler, e *echo.Echo, email string, profile domain.User) dto.UserTokenResponse {
	t.Helper()
	req := newJSONRequest(t, http.MethodPut, "/user/"+email, profile)
	c, rec := newContext(e, req, map[string]string{"email": email})
	require.NoError(t, h.SignIn(c))
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeBody[dto.UserTokenResponse](t, rec)
}

func TestUserHandler_SignIn(t *testing.T) {
	handler, store, e := setupUserHandlerTest(t)

	t.Run("returns update result and a token for the email", func(t *testing.T) {
		resp := signIn(t, handler, e, "alice@example.com", domain.User{Name: "Alice"})
		require.NotNil(t, resp.Result)
		assert.Equal(t, int64(1), resp.Result.UpsertedCount)
		require.NotEmpty(t, resp.Token)

		parsed, err := jwtv5.Parse(resp.Token, func(t *jwtv5.Token) (interface{}, error) {
			return []byte(testJWTKey), nil
		})
		require.NoError(t, err)
		claims := parsed.Claims.(jwtv5.MapClaims)
		assert.Equal(t, "alice@example.com", claims["email"])
	})

	t.Run("same email twice keeps one document with the latest fields", func(t *testing.T) {
		signIn(t, handler, e, "bob@example.com", domain.User{Name: "Bob", Location: "Oslo"})
		resp := signIn(t, handler, e, "bob@example.com", domain.User{Name: "Robert", Location: "Bergen"})
		assert.Equal(t, int64(1), resp.Result.MatchedCount)
		assert.Equal(t, int64(0), resp.Result.UpsertedCount)

		c, rec := newContext(e, httptest.NewRequest(http.MethodGet, "/users", nil), nil)
		require.NoError(t, handler.GetUsers(c))
		users := decodeBody[[]domain.User](t, rec)

		var bobs []domain.User
		for _, u := range users {
			if u.Email == "bob@example.com" {
				bobs = append(bobs, u)
			}
		}
		require.Len(t, bobs, 1)
		assert.Equal(t, "Robert", bobs[0].Name)
		assert.Equal(t, "Bergen", bobs[0].Location)
		assert.Equal(t, 2, store.C(repository.UsersCollection).Len())
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	handler, _, e := setupUserHandlerTest(t)

	req := newJSONRequest(t, http.MethodPut, "/users/carol@example.com", domain.User{Name: "Carol"})
	c, rec := newContext(e, req, map[string]string{"email": "carol@example.com"})
	require.NoError(t, handler.UpdateUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	res := decodeBody[dto.UpdateResult](t, rec)
	assert.True(t, res.Acknowledged)
	assert.Equal(t, int64(1), res.UpsertedCount)
	assert.NotNil(t, res.UpsertedID)
}

func TestUserHandler_GetUser(t *testing.T) {
	handler, _, e := setupUserHandlerTest(t)
	signIn(t, handler, e, "dana@example.com", domain.User{Name: "Dana"})

	t.Run("known email", func(t *testing.T) {
		c, rec := newContext(e, httptest.NewRequest(http.MethodGet, "/users/dana@example.com", nil), map[string]string{"email": "dana@example.com"})
		require.NoError(t, handler.GetUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		user := decodeBody[domain.User](t, rec)
		assert.Equal(t, "Dana", user.Name)
		assert.False(t, user.ID.IsZero())
	})

	t.Run("unknown email answers null", func(t *testing.T) {
		c, rec := newContext(e, httptest.NewRequest(http.MethodGet, "/users/x@example.com", nil), map[string]string{"email": "x@example.com"})
		require.NoError(t, handler.GetUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	handler, store, e := setupUserHandlerTest(t)
	resp := signIn(t, handler, e, "erin@example.com", domain.User{Name: "Erin"})
	id, ok := resp.Result.UpsertedID.(string)
	require.True(t, ok)

	c, rec := newContext(e, httptest.NewRequest(http.MethodDelete, "/users/"+id, nil), map[string]string{"id": id})
	require.NoError(t, handler.DeleteUser(c))
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, rec.Body.String())
	assert.Equal(t, 0, store.C(repository.UsersCollection).Len())
}

func TestUserHandler_Admin(t *testing.T) {
	handler, _, e := setupUserHandlerTest(t)
	signIn(t, handler, e, "alice@example.com", domain.User{Name: "Alice"})

	getAdmin := func(email string) (*httptest.ResponseRecorder, error) {
		c, rec := newContext(e, httptest.NewRequest(http.MethodGet, "/admin/"+email, nil), map[string]string{"email": email})
		return rec, handler.GetAdmin(c)
	}

	t.Run("regular user is not admin", func(t *testing.T) {
		rec, err := getAdmin("alice@example.com")
		require.NoError(t, err)
		assert.JSONEq(t, `{"admin":false}`, rec.Body.String())
	})

	t.Run("promotion makes the user admin", func(t *testing.T) {
		c, rec := newContext(e, httptest.NewRequest(http.MethodPut, "/user/admin/alice@example.com", nil), map[string]string{"email": "alice@example.com"})
		require.NoError(t, handler.MakeAdmin(c))
		res := decodeBody[dto.UpdateResult](t, rec)
		assert.Equal(t, int64(1), res.MatchedCount)

		rec, err := getAdmin("alice@example.com")
		require.NoError(t, err)
		assert.JSONEq(t, `{"admin":true}`, rec.Body.String())
	})

	t.Run("unknown email is a fault", func(t *testing.T) {
		_, err := getAdmin("nobody@example.com")
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("sign in cannot grant admin", func(t *testing.T) {
		signIn(t, handler, e, "mallory@example.com", domain.User{Role: domain.RoleAdmin})
		rec, err := getAdmin("mallory@example.com")
		require.NoError(t, err)
		assert.JSONEq(t, `{"admin":false}`, rec.Body.String())
	})
}

func TestUserHandler_EncodedEmailParam(t *testing.T) {
	handler, store, e := setupUserHandlerTest(t)

	signIn(t, handler, e, "alice%40example.com", domain.User{Name: "Alice"})
	signIn(t, handler, e, "alice@example.com", domain.User{Phone: "42"})
	require.Equal(t, 1, store.C(repository.UsersCollection).Len())

	c, rec := newContext(e, httptest.NewRequest(http.MethodGet, "/users/alice%40example.com", nil), map[string]string{"email": "alice%40example.com"})
	require.NoError(t, handler.GetUser(c))
	user := decodeBody[domain.User](t, rec)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "42", user.Phone)

	c, rec = newContext(e, httptest.NewRequest(http.MethodGet, "/admin/alice%40example.com", nil), map[string]string{"email": "alice%40example.com"})
	require.NoError(t, handler.GetAdmin(c))
	assert.JSONEq(t, `{"admin":false}`, rec.Body.String())
}

func TestUserHandler_MalformedEmailEscape(t *testing.T) {
	handler, store, e := setupUserHandlerTest(t)

	tests := []struct {
		name    string
		method  string
		handler echo.HandlerFunc
	}{
		{"get user", http.MethodGet, handler.GetUser},
		{"update user", http.MethodPut, handler.UpdateUser},
		{"get admin", http.MethodGet, handler.GetAdmin},
		{"make admin", http.MethodPut, handler.MakeAdmin},
		{"sign in", http.MethodPut, handler.SignIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newJSONRequest(t, tt.method, "/users/x", domain.User{Name: "X"})
			c, rec := newContext(e, req, map[string]string{"email": "bad%zzescape"})

			require.NoError(t, tt.handler(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"invalid email"}`, rec.Body.String())
		})
	}

	assert.Equal(t, 0, store.Calls())
}

func TestUserHandler_MakeAdminLogsActor(t *testing.T) {
	handler, _, e := setupUserHandlerTest(t)
	signIn(t, handler, e, "alice@example.com", domain.User{Name: "Alice"})

	var buf bytes.Buffer
	e.Logger.SetOutput(&buf)
	e.Logger.SetLevel(log.INFO)

	req := httptest.NewRequest(http.MethodPut, "/user/admin/alice@example.com", nil)
	req = req.WithContext(middleware.ContextWithEmail(req.Context(), "root@example.com"))
	c, rec := newContext(e, req, map[string]string{"email": "alice@example.com"})

	require.NoError(t, handler.MakeAdmin(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "admin role granted to alice@example.com by root@example.com")
}
