package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/smartshop/shopdeck/pkg/domain"
)

func TestReviewsRendering(t *testing.T) {
	m := newReviewsModel(nil)
	m, _ = m.Update(reviewsLoadedMsg{reviews: []domain.Review{
		{ID: uuid.New(), ShopName: "Corner Books", User: "ada", Rating: 4, Comment: "great picks", CreatedAt: time.Now()},
	}})

	view := m.View()
	if !strings.Contains(view, "★★★★☆") {
		t.Error("expected the star rating in the list")
	}
	if !strings.Contains(view, "great picks") {
		t.Error("expected the comment in the list")
	}
}

func TestReviewsDeleteIsAdminOnly(t *testing.T) {
	reviews := []domain.Review{{ID: uuid.New(), ShopName: "Corner Books", Rating: 1}}

	m := newReviewsModel(nil)
	m.role = domain.RoleShopOwner
	m, _ = m.Update(reviewsLoadedMsg{reviews: reviews})
	if _, cmd := m.Update(keyMsg("x")); cmd != nil {
		t.Error("shop owner got a delete command, moderation is admin-only")
	}

	m.role = domain.RoleAdmin
	if _, cmd := m.Update(keyMsg("x")); cmd == nil {
		t.Error("admin got no delete command")
	}
}
