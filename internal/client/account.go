package client

import (
	"context"
	"net/url"

	"vendorpanel/internal/domain/entity"
	"vendorpanel/pkg/response"
)

type AccountService struct {
	client *Client
}

func (s *AccountService) Get(ctx context.Context, userID string) (*entity.User, error) {
	var user entity.User
	if err := s.client.get(ctx, "/user/"+url.PathEscape(userID), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type AccountForm struct {
	Name  string
	Email string
	Phone string
}

func (a *AccountForm) form() *form {
	f := &form{}
	f.addOptionalField("name", a.Name)
	f.addOptionalField("email", a.Email)
	f.addOptionalField("phone", a.Phone)
	return f
}

func (s *AccountService) Update(ctx context.Context, userID string, input AccountForm) (*entity.User, error) {
	var user entity.User
	if err := s.client.doMultipart(ctx, "PUT", "/user/"+url.PathEscape(userID), input.form(), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *AccountService) Avatar(ctx context.Context, userID string) (string, error) {
	var result struct {
		URL string `json:"url"`
	}
	if err := s.client.get(ctx, "/user/upload-avatar/"+url.PathEscape(userID), nil, &result); err != nil {
		return "", err
	}
	return result.URL, nil
}

func (s *AccountService) UploadAvatar(ctx context.Context, userID string, avatar File) error {
	f := &form{}
	f.addFile("avatar", avatar)
	return s.client.doMultipart(ctx, "PUT", "/user/upload-avatar/"+url.PathEscape(userID), f, nil)
}

func (s *AccountService) UploadStoreLogo(ctx context.Context, storeID string, logo File) error {
	f := &form{}
	f.addFile("storeLogo", logo)
	return s.client.doMultipart(ctx, "PUT", "/vendor/store/"+url.PathEscape(storeID)+"/upload-logo", f, nil)
}

type adminPage struct {
	Items      []entity.User       `json:"items"`
	Admins     []entity.User       `json:"admins"`
	Pagination response.Pagination `json:"pagination"`
}

func (s *AccountService) AllAdmins(ctx context.Context, page, limit int) ([]entity.User, *response.Pagination, error) {
	var result adminPage
	if err := s.client.get(ctx, "/user/all-admins", pageQuery(page, limit), &result); err != nil {
		return nil, nil, err
	}
	items := result.Items
	if items == nil {
		items = result.Admins
	}
	return items, &result.Pagination, nil
}
