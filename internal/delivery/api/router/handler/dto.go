package handler

import (
	"encoding/json"
	"time"

	"grainauth/internal/domain/entity"

	"github.com/paulmach/orb/geojson"
)

// UserResponse is the public view of an account; the password hash never leaves the service.
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Disabled  bool      `json:"disabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Disabled:  u.Disabled,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// TokenResponse follows the OAuth2 token endpoint shape and is not enveloped.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type TarifResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Currency    string    `json:"currency"`
	Scope       string    `json:"scope"`
	Terms       string    `json:"terms"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTarifResponse(t *entity.Tarif) TarifResponse {
	return TarifResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Price:       t.Price.String(),
		Currency:    t.Currency,
		Scope:       t.Scope,
		Terms:       t.Terms,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type SubscriptionResponse struct {
	ID        int64      `json:"id"`
	UserID    int64      `json:"user_id"`
	TarifID   int64      `json:"tarif_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func toSubscriptionResponse(s *entity.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		ID:        s.ID,
		UserID:    s.UserID,
		TarifID:   s.TarifID,
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type PaymentResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	TarifID   int64     `json:"tarif_id"`
	Amount    string    `json:"amount"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

func toPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		TarifID:   p.TarifID,
		Amount:    p.Amount.String(),
		Currency:  p.Currency,
		CreatedAt: p.CreatedAt,
	}
}

// ItemResponse renders the derived location as a GeoJSON point.
type ItemResponse struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	Latitude  *float64          `json:"latitude"`
	Longitude *float64          `json:"longitude"`
	Location  *geojson.Geometry `json:"location"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func toItemResponse(i *entity.Item) ItemResponse {
	return ItemResponse{
		ID:        i.ID,
		Title:     i.Title,
		Latitude:  i.Latitude,
		Longitude: i.Longitude,
		Location:  geojson.NewGeometry(i.Location),
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}

	return out
}

// parseMoney converts a validated json.Number ("10", "10.5", 10.50) into cents.
func parseMoney(n json.Number) (entity.Money, error) {
	return entity.ParseMoney(n.String())
}
