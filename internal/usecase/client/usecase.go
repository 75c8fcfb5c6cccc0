package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"lendcore-backend/internal/domain/client"
	"lendcore-backend/pkg/id"
)

var ErrInvalidInput = errors.New("invalid client input")

type CreateClientInput struct {
	FullName      string
	Phone         string
	DateOfBirth   *time.Time
	HasGuarantor  bool
	HasCollateral bool
}

type ClientDTO struct {
	ClientID      string     `json:"client_id"`
	FullName      string     `json:"full_name"`
	Phone         string     `json:"phone"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	HasGuarantor  bool       `json:"has_guarantor"`
	HasCollateral bool       `json:"has_collateral"`
	CreatedAt     time.Time  `json:"created_at"`
}

type Usecase struct{ repo client.Repository }

func NewUsecase(r client.Repository) *Usecase { return &Usecase{repo: r} }

func (u *Usecase) Create(ctx context.Context, in CreateClientInput) (*ClientDTO, error) {
	if in.FullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if in.DateOfBirth != nil && in.DateOfBirth.After(time.Now().UTC()) {
		return nil, fmt.Errorf("%w: date of birth is in the future", ErrInvalidInput)
	}

	c := &client.Client{
		ClientID:      id.NewID32(),
		FullName:      in.FullName,
		Phone:         in.Phone,
		DateOfBirth:   in.DateOfBirth,
		HasGuarantor:  in.HasGuarantor,
		HasCollateral: in.HasCollateral,
	}
	if err := u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) Get(ctx context.Context, clientID string) (*ClientDTO, error) {
	c, err := u.repo.GetByClientID(ctx, clientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, client.ErrNotFound
		}
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) List(ctx context.Context) ([]ClientDTO, error) {
	cs, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ClientDTO, 0, len(cs))
	for i := range cs {
		out = append(out, *toDTO(&cs[i]))
	}
	return out, nil
}

func toDTO(c *client.Client) *ClientDTO {
	return &ClientDTO{
		ClientID:      c.ClientID,
		FullName:      c.FullName,
		Phone:         c.Phone,
		DateOfBirth:   c.DateOfBirth,
		HasGuarantor:  c.HasGuarantor,
		HasCollateral: c.HasCollateral,
		CreatedAt:     c.CreatedAt,
	}
}
