package account_test

import (
	"testing"

	"github.com/acadinfo/backend/core/account"
	testutil "github.com/acadinfo/backend/tests"
)

func TestSession(t *testing.T) {
	svc, repo, _ := newTestService(t)
	testutil.CreateAccount(t, repo, "jdoe", "jdoe@test.test", "Secret123", "John Doe", account.TypeStudent)

	sess, err := svc.Authenticate("jdoe", "Secret123")
	if err != nil {
		t.Fatalf("Authenticate() failed: %v", err)
	}
	if sess.Username() != "jdoe" {
		t.Errorf("Username() = %q, want %q", sess.Username(), "jdoe")
	}

	t.Run("account access", func(t *testing.T) {
		acct, err := sess.Account()
		if err != nil {
			t.Fatalf("Account() failed: %v", err)
		}
		if acct.Username != "jdoe" {
			t.Errorf("Username = %q, want %q", acct.Username, "jdoe")
		}
	})

	t.Run("premium via session", func(t *testing.T) {
		acct, err := sess.UpgradeToPremium(account.PlanMonthly)
		if err != nil {
			t.Fatalf("UpgradeToPremium() failed: %v", err)
		}
		if !acct.Premium {
			t.Error("Premium = false, want true")
		}
		if acct, err = sess.CancelPremiumRenewal(); err != nil {
			t.Fatalf("CancelPremiumRenewal() failed: %v", err)
		}
		if acct.PremiumAutoRenew {
			t.Error("PremiumAutoRenew = true, want false")
		}
	})

	t.Run("logout invalidates the binding", func(t *testing.T) {
		sess.Logout()
		if _, err := sess.Account(); err != account.ErrUnauthenticated {
			t.Errorf("Account() error = %v, want %v", err, account.ErrUnauthenticated)
		}
		if _, err := sess.UpgradeToPremium(account.PlanYearly); err != account.ErrUnauthenticated {
			t.Errorf("UpgradeToPremium() error = %v, want %v", err, account.ErrUnauthenticated)
		}

		// the stored account is untouched
		acct, err := svc.GetByUsername("jdoe")
		if err != nil {
			t.Fatalf("GetByUsername() failed: %v", err)
		}
		if !acct.Premium {
			t.Error("Premium = false, want membership unaffected by logout")
		}
	})
}
