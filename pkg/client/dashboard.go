package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/smartshop/shopdeck/pkg/domain"
)

// CreateShopRequest is the payload for registering a new shop.
type CreateShopRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Website     string `json:"website,omitempty"`
}

// DashboardStats returns the platform-wide totals (admin only).
func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := c.get(ctx, "/dashboard/stats/", &stats); err != nil {
		return nil, fmt.Errorf("client.DashboardStats: %w", err)
	}
	return &stats, nil
}

// ListShops returns the shops visible to the caller. Admins see every
// shop; shop owners see their own.
func (c *Client) ListShops(ctx context.Context) ([]domain.Shop, error) {
	var shops []domain.Shop
	if err := c.get(ctx, "/dashboard/shops/", &shops); err != nil {
		return nil, fmt.Errorf("client.ListShops: %w", err)
	}
	return shops, nil
}

// CreateShop registers a new shop owned by the caller.
func (c *Client) CreateShop(ctx context.Context, req CreateShopRequest) (*domain.Shop, error) {
	var shop domain.Shop
	if err := c.post(ctx, "/dashboard/shops/", req, &shop); err != nil {
		return nil, fmt.Errorf("client.CreateShop: %w", err)
	}
	return &shop, nil
}

// ListProducts returns the products of a shop.
func (c *Client) ListProducts(ctx context.Context, shopID string) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.get(ctx, "/dashboard/shops/"+url.PathEscape(shopID)+"/products/", &products); err != nil {
		return nil, fmt.Errorf("client.ListProducts: %w", err)
	}
	return products, nil
}

// DeleteProduct removes a product from a shop.
func (c *Client) DeleteProduct(ctx context.Context, shopID, productID string) error {
	path := "/dashboard/shops/" + url.PathEscape(shopID) + "/products/" + url.PathEscape(productID) + "/"
	if err := c.doRequest(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("client.DeleteProduct: %w", err)
	}
	return nil
}

// ListBookings returns the bookings visible to the caller: their own for
// customers, their shop's for owners, all for admins.
func (c *Client) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := c.get(ctx, "/bookings/", &bookings); err != nil {
		return nil, fmt.Errorf("client.ListBookings: %w", err)
	}
	return bookings, nil
}

// UpdateBookingStatus moves a booking to a new status.
func (c *Client) UpdateBookingStatus(ctx context.Context, id, status string) (*domain.Booking, error) {
	var booking domain.Booking
	body := map[string]string{"status": status}
	if err := c.patch(ctx, "/bookings/"+url.PathEscape(id)+"/", body, &booking); err != nil {
		return nil, fmt.Errorf("client.UpdateBookingStatus: %w", err)
	}
	return &booking, nil
}

// ListReviews returns the reviews visible to the caller.
func (c *Client) ListReviews(ctx context.Context) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.get(ctx, "/reviews/", &reviews); err != nil {
		return nil, fmt.Errorf("client.ListReviews: %w", err)
	}
	return reviews, nil
}

// DeleteReview removes a review (admin only).
func (c *Client) DeleteReview(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/reviews/"+url.PathEscape(id)+"/", nil, nil); err != nil {
		return fmt.Errorf("client.DeleteReview: %w", err)
	}
	return nil
}

// ListMediaItems returns the media hub items visible to the caller.
func (c *Client) ListMediaItems(ctx context.Context) ([]domain.MediaItem, error) {
	var items []domain.MediaItem
	if err := c.get(ctx, "/media-items/", &items); err != nil {
		return nil, fmt.Errorf("client.ListMediaItems: %w", err)
	}
	return items, nil
}

// DeleteMediaItem removes a media hub item.
func (c *Client) DeleteMediaItem(ctx context.Context, id string) error {
	if err := c.doRequest(ctx, http.MethodDelete, "/media-items/"+url.PathEscape(id)+"/", nil, nil); err != nil {
		return fmt.Errorf("client.DeleteMediaItem: %w", err)
	}
	return nil
}
