package session

import (
	"testing"

	"github.com/smartshop/shopdeck/pkg/domain"
)

func TestStoreLifecycle(t *testing.T) {
	s := NewStore()

	if st := s.State(); st.Status != StatusIdle || st.User != nil {
		t.Fatalf("fresh store = %+v, want idle with no user", st)
	}

	s.Begin()
	if st := s.State(); st.Status != StatusLoading {
		t.Errorf("after Begin: status = %v, want loading", st.Status)
	}

	s.Succeed(&domain.User{ID: "u-1", Token: "tok", Role: domain.RoleCustomer})
	st := s.State()
	if st.Status != StatusSucceeded {
		t.Errorf("after Succeed: status = %v, want succeeded", st.Status)
	}
	if st.User == nil || st.User.ID != "u-1" {
		t.Errorf("after Succeed: user = %+v, want u-1", st.User)
	}
	if !st.Authenticated() {
		t.Error("Authenticated() = false after Succeed with token")
	}

	s.Fail("bad credentials")
	st = s.State()
	if st.Status != StatusFailed {
		t.Errorf("after Fail: status = %v, want failed", st.Status)
	}
	if st.User != nil {
		t.Error("after Fail: user still present, failed must never carry a user")
	}
	if st.Err != "bad credentials" {
		t.Errorf("after Fail: err = %q, want the message kept", st.Err)
	}
}

func TestSucceedNilUserDowngradesToFailure(t *testing.T) {
	s := NewStore()
	s.Begin()
	s.Succeed(nil)

	st := s.State()
	if st.Status != StatusFailed {
		t.Errorf("status = %v, want failed when no user is available", st.Status)
	}
	if st.User != nil {
		t.Error("user present after Succeed(nil)")
	}
}

func TestResetClearsShopContext(t *testing.T) {
	s := NewStore()
	s.Succeed(&domain.User{ID: "u-1", Token: "tok"})
	s.SetShop(&domain.ShopRef{ID: "s-1", Name: "Corner Books"})

	s.Reset()
	st := s.State()
	if st.User != nil || st.Shop != nil || st.Status != StatusIdle {
		t.Errorf("after Reset: %+v, want the zero state", st)
	}
}

func TestClearShopKeepsUser(t *testing.T) {
	s := NewStore()
	s.Succeed(&domain.User{ID: "u-1", Token: "tok"})
	s.SetShop(&domain.ShopRef{ID: "s-1"})

	s.ClearShop()
	st := s.State()
	if st.Shop != nil {
		t.Error("shop still present after ClearShop")
	}
	if st.User == nil {
		t.Error("user dropped by ClearShop")
	}
}

func TestAuthenticatedRequiresToken(t *testing.T) {
	st := State{User: &domain.User{ID: "u-1"}, Status: StatusSucceeded}
	if st.Authenticated() {
		t.Error("Authenticated() = true for a user without a token")
	}
}
