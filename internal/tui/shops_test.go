package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/smartshop/shopdeck/pkg/domain"
)

var errTest = errors.New("boom")

func testShops() []domain.Shop {
	return []domain.Shop{
		{ID: uuid.New(), Name: "Corner Books", Category: "books", IsVerified: true, Rating: 4.5, TotalReviews: 12},
		{ID: uuid.New(), Name: "Plant Palace", Category: "garden"},
	}
}

func TestShopsListRendering(t *testing.T) {
	m := newShopsModel(nil)
	m, _ = m.Update(shopsLoadedMsg{shops: testShops()})

	view := m.View()
	if !strings.Contains(view, "Corner Books") {
		t.Error("expected the shop name in the list")
	}
	if !strings.Contains(view, "✓") {
		t.Error("expected the verified mark")
	}
	if !strings.Contains(view, "4.5") {
		t.Error("expected the rating")
	}
}

func TestShopsEnterOpensProducts(t *testing.T) {
	m := newShopsModel(nil)
	m, _ = m.Update(shopsLoadedMsg{shops: testShops()})

	m, cmd := m.updateList(keyMsg("enter"))
	if !m.detail {
		t.Fatal("detail not opened on enter")
	}
	if cmd == nil {
		t.Error("expected a product load command")
	}

	m, _ = m.updateDetail(keyMsg("esc"))
	if m.detail {
		t.Error("detail still open after esc")
	}
}

func TestShopsProductRendering(t *testing.T) {
	m := newShopsModel(nil)
	m, _ = m.Update(shopsLoadedMsg{shops: testShops()})
	m.detail = true
	m, _ = m.Update(productsLoadedMsg{products: []domain.Product{
		{ID: uuid.New(), Name: "Field Guide", Price: 24.99, Stock: 3, IsActive: true},
		{ID: uuid.New(), Name: "Rare Print", Price: 120, Stock: 0, IsActive: false},
	}})

	view := m.View()
	if !strings.Contains(view, "$24.99") {
		t.Error("expected the product price")
	}
	if !strings.Contains(view, "out of stock") {
		t.Error("expected the out-of-stock marker")
	}
	if !strings.Contains(view, "inactive") {
		t.Error("expected the inactive marker")
	}
}

func TestShopsDeleteProductRequiresRole(t *testing.T) {
	m := newShopsModel(nil)
	m.role = domain.RoleCustomer
	m, _ = m.Update(shopsLoadedMsg{shops: testShops()})
	m.detail = true
	m, _ = m.Update(productsLoadedMsg{products: []domain.Product{
		{ID: uuid.New(), Name: "Field Guide"},
	}})

	if _, cmd := m.updateDetail(keyMsg("x")); cmd != nil {
		t.Error("customer got a delete command, want none")
	}

	m.role = domain.RoleAdmin
	if _, cmd := m.updateDetail(keyMsg("x")); cmd == nil {
		t.Error("admin got no delete command")
	}
}
