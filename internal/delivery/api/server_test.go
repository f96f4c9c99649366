package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"grainauth/config"
	"grainauth/internal/delivery/api/middleware"
	"grainauth/internal/delivery/api/router"
	"grainauth/internal/delivery/api/router/handler"
	"grainauth/internal/domain/entity"
	domainerrors "grainauth/internal/domain/errors"
	mockUC "grainauth/internal/mocks/usecase"
	"grainauth/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const goodToken = "good-token"

type apiFixtures struct {
	echo           *echo.Echo
	userUC         *mockUC.MockUserUsecase
	sessionUC      *mockUC.MockSessionUsecase
	tarifUC        *mockUC.MockTarifUsecase
	subscriptionUC *mockUC.MockSubscriptionUsecase
	paymentUC      *mockUC.MockPaymentUsecase
	itemUC         *mockUC.MockItemUsecase
}

func newAPIFixtures(t *testing.T) *apiFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1M"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	f := &apiFixtures{
		userUC:         mockUC.NewMockUserUsecase(t),
		sessionUC:      mockUC.NewMockSessionUsecase(t),
		tarifUC:        mockUC.NewMockTarifUsecase(t),
		subscriptionUC: mockUC.NewMockSubscriptionUsecase(t),
		paymentUC:      mockUC.NewMockPaymentUsecase(t),
		itemUC:         mockUC.NewMockItemUsecase(t),
	}

	f.echo = NewEcho(cfg, logger)
	router.NewRouter(router.RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			UserUC: f.userUC, SessionUC: f.sessionUC, Logger: logger,
		}),
		TarifHandler:        handler.NewTarifHandler(handler.TarifHandlerParams{TarifUC: f.tarifUC, Logger: logger}),
		SubscriptionHandler: handler.NewSubscriptionHandler(handler.SubscriptionHandlerParams{SubscriptionUC: f.subscriptionUC, Logger: logger}),
		PaymentHandler:      handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: f.paymentUC, Logger: logger}),
		ItemHandler:         handler.NewItemHandler(handler.ItemHandlerParams{ItemUC: f.itemUC, Logger: logger}),
		HealthHandler:       handler.NewHealthHandler(handler.HealthHandlerParams{DB: db, Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{SessionUC: f.sessionUC, Logger: logger}),
	}).RegisterRoutes(f.echo)

	return f
}

// authenticateAs makes goodToken resolve to userID with the given scopes.
func (f *apiFixtures) authenticateAs(userID int64, scopes ...string) *entity.TokenClaims {
	claims := &entity.TokenClaims{
		TokenID:   "jti-1",
		UserID:    userID,
		Username:  "alice",
		Scopes:    scopes,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	f.sessionUC.EXPECT().Authenticate(mock.Anything, goodToken).Return(claims, nil)

	return claims
}

func (f *apiFixtures) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func bearer() map[string]string {
	return map[string]string{echo.HeaderAuthorization: "Bearer " + goodToken}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.userUC.EXPECT().
			Register(mock.Anything, &usecase.RegisterUserInput{
				Username: "alice",
				Email:    "alice@example.com",
				FullName: "Alice",
				Password: "Password123!",
			}).
			Return(&entity.User{ID: 1, Username: "alice", Email: "alice@example.com", FullName: "Alice"}, nil)

		rec := f.do(http.MethodPost, "/users",
			`{"username":"alice","email":"alice@example.com","full_name":"Alice","password":"Password123!"}`, nil)

		assert.Equal(t, http.StatusCreated, rec.Code)
		env := decode(t, rec)
		var user handler.UserResponse
		require.NoError(t, json.Unmarshal(env.Data, &user))
		assert.Equal(t, int64(1), user.ID)
		assert.NotContains(t, rec.Body.String(), "password")
		assert.NotEmpty(t, env.Meta.RequestID)
		assert.Equal(t, env.Meta.RequestID, rec.Header().Get(echo.HeaderXRequestID))
	})

	t.Run("validation failure", func(t *testing.T) {
		f := newAPIFixtures(t)

		rec := f.do(http.MethodPost, "/users", `{"username":"al","email":"not-an-email","password":"x"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Contains(t, env.Error.Details, "username")
	})

	t.Run("username taken", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.userUC.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrUsernameTaken.WithDetails("alice"), "failed to register user"))

		rec := f.do(http.MethodPost, "/users", `{"username":"alice","email":"alice@example.com","password":"Password123!"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "USERNAME_TAKEN", decode(t, rec).Error.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("form encoded password grant", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.userUC.EXPECT().
			Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "secret", Scopes: []string{"me", "items"}}).
			Return(&usecase.LoginOutput{
				AccessToken: &entity.AccessToken{Token: "signed", TokenType: "bearer", ExpiresAt: time.Now().Add(30 * time.Minute)},
				User:        &entity.User{ID: 1},
			}, nil)

		form := url.Values{"username": {"alice"}, "password": {"secret"}, "scope": {"me items"}}
		rec := f.do(http.MethodPost, "/token", form.Encode(),
			map[string]string{echo.HeaderContentType: echo.MIMEApplicationForm})

		assert.Equal(t, http.StatusOK, rec.Code)
		var token handler.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &token))
		assert.Equal(t, "signed", token.AccessToken)
		assert.Equal(t, "bearer", token.TokenType)
		assert.InDelta(t, 1800, token.ExpiresIn, 5)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.userUC.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

		rec := f.do(http.MethodPost, "/token", `{"username":"alice","password":"nope"}`, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		assert.Equal(t, "INVALID_CREDENTIALS", decode(t, rec).Error.Code)
	})
}

func TestAuthentication(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		f := newAPIFixtures(t)

		rec := f.do(http.MethodGet, "/users/me", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	})

	t.Run("revoked token", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.sessionUC.EXPECT().Authenticate(mock.Anything, goodToken).Return(nil, domainerrors.ErrTokenRevoked)

		rec := f.do(http.MethodGet, "/users/me", "", bearer())

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "TOKEN_REVOKED", decode(t, rec).Error.Code)
	})

	t.Run("missing scope", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.authenticateAs(1, entity.ScopeItems)

		rec := f.do(http.MethodGet, "/users/me", "", bearer())

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, `Bearer scope="me"`, rec.Header().Get(echo.HeaderWWWAuthenticate))
		env := decode(t, rec)
		assert.Equal(t, "INSUFFICIENT_SCOPE", env.Error.Code)
		assert.Nil(t, env.Error.Details)
	})

	t.Run("inactive user", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.authenticateAs(1, entity.ScopeMe)
		f.userUC.EXPECT().GetActiveUser(mock.Anything, int64(1)).Return(nil, domainerrors.ErrInactiveUser)

		rec := f.do(http.MethodGet, "/users/me", "", bearer())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INACTIVE_USER", decode(t, rec).Error.Code)
	})

	t.Run("me", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.authenticateAs(1, entity.ScopeMe)
		f.userUC.EXPECT().GetActiveUser(mock.Anything, int64(1)).Return(&entity.User{ID: 1, Username: "alice"}, nil)

		rec := f.do(http.MethodGet, "/users/me", "", bearer())

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	f := newAPIFixtures(t)
	claims := f.authenticateAs(1)
	f.sessionUC.EXPECT().Logout(mock.Anything, claims).Return(nil)

	rec := f.do(http.MethodPost, "/logout", "", bearer())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, string(decode(t, rec).Data))
}

func TestUpdateUser(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.authenticateAs(1, entity.ScopeMe)
		email := "new@example.com"
		f.userUC.EXPECT().GetActiveUser(mock.Anything, int64(1)).Return(&entity.User{ID: 1}, nil)
		f.userUC.EXPECT().
			UpdateUser(mock.Anything, int64(1), int64(1), &usecase.UpdateUserInput{Email: &email}).
			Return(&entity.User{ID: 1, Email: email}, nil)

		rec := f.do(http.MethodPut, "/users/1", `{"email":"new@example.com"}`, bearer())

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("other user", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.authenticateAs(1, entity.ScopeMe)
		f.userUC.EXPECT().GetActiveUser(mock.Anything, int64(1)).Return(&entity.User{ID: 1}, nil)
		f.userUC.EXPECT().UpdateUser(mock.Anything, int64(1), int64(2), mock.Anything).
			Return(nil, domainerrors.ErrForbidden.WithDetails("you can only update your own user"))

		rec := f.do(http.MethodPut, "/users/2", `{}`, bearer())

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.authenticateAs(1, entity.ScopeMe)
		f.userUC.EXPECT().GetActiveUser(mock.Anything, int64(1)).Return(&entity.User{ID: 1}, nil)

		rec := f.do(http.MethodPut, "/users/abc", `{}`, bearer())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTarifs(t *testing.T) {
	t.Run("explicit zero price", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.authenticateAs(1)
		f.tarifUC.EXPECT().
			CreateTarif(mock.Anything, mock.MatchedBy(func(in *usecase.TarifInput) bool {
				return in.Name == "Free" && in.Price != nil && *in.Price == 0 && in.Currency == nil
			})).
			Return(&entity.Tarif{ID: 1, Name: "Free", Price: 0, Currency: "USD", Scope: "basic", Terms: "monthly"}, nil)

		rec := f.do(http.MethodPost, "/tarifs", `{"name":"Free","price":0}`, bearer())

		assert.Equal(t, http.StatusCreated, rec.Code)
		var tarif handler.TarifResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &tarif))
		assert.Equal(t, "0.00", tarif.Price)
	})

	t.Run("string price", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.authenticateAs(1)
		f.tarifUC.EXPECT().
			CreateTarif(mock.Anything, mock.MatchedBy(func(in *usecase.TarifInput) bool {
				return in.Price != nil && *in.Price == 1999
			})).
			Return(&entity.Tarif{ID: 2, Price: 1999}, nil)

		rec := f.do(http.MethodPost, "/tarifs", `{"name":"Pro","price":"19.99"}`, bearer())

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("filters", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.authenticateAs(1)
		f.tarifUC.EXPECT().
			ListTarifs(mock.Anything, mock.MatchedBy(func(filter entity.TarifFilter) bool {
				return filter.Scope != nil && *filter.Scope == "basic" && filter.Terms == nil
			})).
			Return([]*entity.Tarif{}, nil)

		rec := f.do(http.MethodGet, "/tarifs?scope=basic", "", bearer())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
	})

	t.Run("referenced delete", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.authenticateAs(1)
		f.tarifUC.EXPECT().DeleteTarif(mock.Anything, int64(5)).
			Return(errors.Wrap(domainerrors.ErrReferentialIntegrity, "failed to delete tarif"))

		rec := f.do(http.MethodDelete, "/tarifs/5", "", bearer())

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "REFERENTIAL_INTEGRITY", decode(t, rec).Error.Code)
	})
}

func TestSubscribeIgnoresClientStartDate(t *testing.T) {
	f := newAPIFixtures(t)
	f.authenticateAs(3)
	f.subscriptionUC.EXPECT().
		Subscribe(mock.Anything, int64(3), &usecase.SubscribeInput{TarifID: 5}).
		Return(&entity.Subscription{ID: 11, UserID: 3, TarifID: 5, Status: entity.SubscriptionStatusActive}, nil)

	rec := f.do(http.MethodPost, "/subscriptions", `{"tarif_id":5,"start_date":"2001-01-01T00:00:00Z"}`, bearer())

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestSubscriptions(t *testing.T) {
	f := newAPIFixtures(t)
	f.authenticateAs(3)
	status := entity.SubscriptionStatusCancelled
	f.subscriptionUC.EXPECT().
		UpdateSubscription(mock.Anything, int64(3), int64(11), &usecase.UpdateSubscriptionInput{Status: &status}).
		Return(&entity.Subscription{ID: 11, UserID: 3, Status: status}, nil)

	rec := f.do(http.MethodPatch, "/subscriptions/11", `{"status":"cancelled"}`, bearer())

	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodPatch, "/subscriptions/11", `{"status":"paused"}`, bearer())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordPayment(t *testing.T) {
	f := newAPIFixtures(t)
	f.authenticateAs(3)
	f.paymentUC.EXPECT().
		RecordPayment(mock.Anything, int64(3), &usecase.RecordPaymentInput{TarifID: 5, Amount: 2550, Currency: "usd"}).
		Return(&entity.Payment{ID: 1, UserID: 3, TarifID: 5, Amount: 2550, Currency: "USD"}, nil)

	rec := f.do(http.MethodPost, "/payments", `{"tarif_id":5,"amount":"25.50","currency":"usd"}`, bearer())

	assert.Equal(t, http.StatusCreated, rec.Code)
	var payment handler.PaymentResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &payment))
	assert.Equal(t, "25.50", payment.Amount)
}

func TestItems(t *testing.T) {
	t.Run("create returns geojson location", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.authenticateAs(3, entity.ScopeItems)
		lat, lon := 40.7128, -74.0060
		f.itemUC.EXPECT().
			CreateItem(mock.Anything, int64(3), mock.AnythingOfType("*usecase.ItemInput")).
			Return(&entity.Item{ID: 31, Title: "NYC", Latitude: &lat, Longitude: &lon, Location: orb.Point{lon, lat}}, nil)

		rec := f.do(http.MethodPost, "/items", `{"title":"NYC","latitude":40.7128,"longitude":-74.0060}`, bearer())

		assert.Equal(t, http.StatusCreated, rec.Code)
		var item struct {
			Location struct {
				Type        string     `json:"type"`
				Coordinates [2]float64 `json:"coordinates"`
			} `json:"location"`
		}
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &item))
		assert.Equal(t, "Point", item.Location.Type)
		assert.Equal(t, [2]float64{lon, lat}, item.Location.Coordinates)
	})

	t.Run("out of range latitude", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.authenticateAs(3, entity.ScopeItems)

		rec := f.do(http.MethodPost, "/items", `{"title":"Bad","latitude":91,"longitude":0}`, bearer())

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("requires items scope", func(t *testing.T) {
		f := newAPIFixtures(t)
		f.authenticateAs(3, entity.ScopeMe)

		rec := f.do(http.MethodGet, "/users/me/items", "", bearer())

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestUnhandledErrorIsHidden(t *testing.T) {
	f := newAPIFixtures(t)
	f.authenticateAs(3)
	f.paymentUC.EXPECT().ListPayments(mock.Anything, int64(3)).Return(nil, errors.New("connection reset by peer"))

	rec := f.do(http.MethodGet, "/payments", "", bearer())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", decode(t, rec).Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestHealth(t *testing.T) {
	f := newAPIFixtures(t)

	rec := f.do(http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var health handler.HealthResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "ok", health.Database)
}
