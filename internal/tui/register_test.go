package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartshop/shopdeck/pkg/domain"
)

func TestRegisterVisibleFieldsPerType(t *testing.T) {
	m := newRegisterModel(newTestSessions(t))

	if got := len(m.visible()); got != 7 {
		t.Errorf("customer visible fields = %d, want 7", got)
	}

	m.userType = domain.RoleShopOwner
	fields := m.visible()
	if fields[len(fields)-1] != regLicense || fields[len(fields)-2] != regShopName {
		t.Errorf("shop owner fields = %v, want shop name and license appended", fields)
	}

	m.userType = domain.RoleAdmin
	fields = m.visible()
	if fields[len(fields)-1] != regAdminCode {
		t.Errorf("admin fields = %v, want admin code appended", fields)
	}
}

func TestRegisterAccountTypeCycling(t *testing.T) {
	m := newRegisterModel(newTestSessions(t))
	if m.userType != domain.RoleCustomer {
		t.Fatalf("default type = %v, want customer", m.userType)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.userType != domain.RoleShopOwner {
		t.Errorf("after right: %v, want shop_owner", m.userType)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.userType != domain.RoleCustomer {
		t.Errorf("after left: %v, want customer", m.userType)
	}
}

func TestRegisterFocusClampedWhenFieldsShrink(t *testing.T) {
	m := newRegisterModel(newTestSessions(t))
	m.userType = domain.RoleShopOwner
	m.focus = len(m.visible()) // last row: business license

	// Cycling to admin removes the two shop rows.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.focus >= len(m.visible())+1 {
		t.Errorf("focus = %d past %d visible rows", m.focus, len(m.visible()))
	}
}

func TestRegisterSubmitRequiresCoreFields(t *testing.T) {
	m := newRegisterModel(newTestSessions(t))

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("expected no command when core fields are empty")
	}
	if m.errMsg == "" {
		t.Error("expected a validation message")
	}
}

func TestRegisterSubmitBuildsRequest(t *testing.T) {
	m := newRegisterModel(newTestSessions(t))
	m.userType = domain.RoleShopOwner
	m.values[regUsername] = "owner"
	m.values[regEmail] = " owner@example.com "
	m.values[regPassword] = "pw"
	m.values[regPassword2] = "pw"
	m.values[regShopName] = "Corner Books"

	m, cmd := m.submit()
	if cmd == nil {
		t.Fatal("expected a register command")
	}
	if !m.submitting {
		t.Error("submitting not set")
	}
}
