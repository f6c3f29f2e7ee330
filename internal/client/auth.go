package client

import (
	"context"

	"vendorpanel/internal/domain/entity"
)

type AuthService struct {
	client *Client
}

type LoginResult struct {
	AccessToken string      `json:"accessToken"`
	User        entity.User `json:"user"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result LoginResult
	if err := s.client.post(ctx, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.client.post(ctx, "/auth/forget-password", map[string]string{"email": email}, nil)
}

func (s *AuthService) VerifyCode(ctx context.Context, email, otp string) error {
	return s.client.post(ctx, "/auth/verify-code", map[string]string{"email": email, "otp": otp}, nil)
}

func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	body := map[string]string{"email": email, "newPassword": newPassword}
	return s.client.post(ctx, "/auth/reset-password", body, nil)
}

func (s *AuthService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{"oldPassword": oldPassword, "newPassword": newPassword}
	return s.client.post(ctx, "/user/change-password", body, nil)
}
