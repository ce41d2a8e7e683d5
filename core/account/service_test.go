package account_test

import (
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/acadinfo/backend/core"
	"github.com/acadinfo/backend/core/account"
	emailsvc "github.com/acadinfo/backend/services/email"
	inmemdb "github.com/acadinfo/backend/storage/inmem"
	testutil "github.com/acadinfo/backend/tests"
)

func newTestService(t *testing.T) (*account.Service, account.Repository, *inmemdb.DB) {
	t.Helper()
	core.Conf.TestMode = true

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	repo := inmemdb.NewAccountRepository(db)
	return account.NewService(repo, emailsvc.NewConsoleServiceMock()), repo, db
}

func TestServiceRegister(t *testing.T) {
	svc, repo, _ := newTestService(t)
	testutil.CreateAccount(t, repo, "taken", "taken@test.test", "Secret123", "Already Here", account.TypeStudent)

	tests := []struct {
		name      string
		na        account.NewAccount
		wantErr   bool
		wantField string // set when a specific field must be rejected
	}{
		{
			name: "valid student",
			na: account.NewAccount{
				Username: "jdoe", Email: "JDoe@Test.test",
				Password: "Secret123", PasswordConfirm: "Secret123",
				FullName: "John Doe", Phone: "5551234567",
			},
		},
		{
			name: "valid parent with spaces trimmed",
			na: account.NewAccount{
				Username: "  mdoe  ", Email: " mdoe@test.test ",
				Password: "Secret123", PasswordConfirm: "Secret123",
				Type: "parent",
			},
		},
		{
			name: "usernames are case-sensitive",
			na: account.NewAccount{
				Username: "JDoe", Email: "jdoe2@test.test",
				Password: "Secret123", PasswordConfirm: "Secret123",
			},
		},
		{
			name:    "missing username",
			na:      account.NewAccount{Email: "a@test.test", Password: "Secret123", PasswordConfirm: "Secret123"},
			wantErr: true,
		},
		{
			name:    "invalid email",
			na:      account.NewAccount{Username: "bademail", Email: "nope", Password: "Secret123", PasswordConfirm: "Secret123"},
			wantErr: true,
		},
		{
			name:    "administrator type not registrable",
			na:      account.NewAccount{Username: "boss", Email: "boss@test.test", Password: "Secret123", PasswordConfirm: "Secret123", Type: "administrator"},
			wantErr: true,
		},
		{
			name:    "password too short",
			na:      account.NewAccount{Username: "shorty", Email: "shorty@test.test", Password: "Shor1", PasswordConfirm: "Shor1"},
			wantErr: true,
		},
		{
			name:    "password missing digit",
			na:      account.NewAccount{Username: "nodigit", Email: "nodigit@test.test", Password: "Longenough", PasswordConfirm: "Longenough"},
			wantErr: true,
		},
		{
			name:    "password missing uppercase",
			na:      account.NewAccount{Username: "noupper", Email: "noupper@test.test", Password: "longenough1", PasswordConfirm: "longenough1"},
			wantErr: true,
		},
		{
			name: "password meets exactly the policy",
			na: account.NewAccount{
				Username: "barely", Email: "barely@test.test",
				Password: "Longenough1", PasswordConfirm: "Longenough1",
			},
		},
		{
			name:    "password confirmation mismatch",
			na:      account.NewAccount{Username: "mismatch", Email: "mismatch@test.test", Password: "Secret123", PasswordConfirm: "Secret124"},
			wantErr: true,
		},
		{
			name:      "username taken",
			na:        account.NewAccount{Username: "taken", Email: "fresh@test.test", Password: "Secret123", PasswordConfirm: "Secret123"},
			wantErr:   true,
			wantField: "username",
		},
		{
			name:      "email taken",
			na:        account.NewAccount{Username: "fresh", Email: "Taken@Test.test", Password: "Secret123", PasswordConfirm: "Secret123"},
			wantErr:   true,
			wantField: "email",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct, err := svc.Register(tt.na)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Register() error = nil, want error")
				}
				if tt.wantField != "" {
					var vErr *core.ValidationError
					if !errors.As(err, &vErr) {
						t.Fatalf("Register() error = %v, want *core.ValidationError", err)
					}
					if len(vErr.Fields) != 1 || vErr.Fields[0].Field != tt.wantField {
						t.Errorf("Register() field errors = %+v, want field %q", vErr.Fields, tt.wantField)
					}
				}
				return
			}
			if err != nil {
				t.Fatalf("Register() failed: %v", err)
			}
			if acct.Username != strings.TrimSpace(tt.na.Username) {
				t.Errorf("Username = %q, want %q", acct.Username, strings.TrimSpace(tt.na.Username))
			}
			if acct.Email != strings.ToLower(strings.TrimSpace(tt.na.Email)) {
				t.Errorf("Email = %q; want it cleaned and lowered", acct.Email)
			}
			wantType := tt.na.Type
			if wantType == "" {
				wantType = account.TypeStudent
			}
			if acct.Type != wantType {
				t.Errorf("Type = %q, want %q", acct.Type, wantType)
			}
			if acct.Joined.IsZero() || acct.LastLogin.IsZero() {
				t.Error("Joined/LastLogin not set")
			}
			if acct.Bookings == nil || len(acct.Bookings) != 0 {
				t.Errorf("Bookings = %v, want empty ledger", acct.Bookings)
			}
			if err := acct.CheckPassword(tt.na.Password); err != nil {
				t.Errorf("CheckPassword() failed on registered account: %v", err)
			}
		})
	}
}

func TestServiceAuthenticate(t *testing.T) {
	svc, repo, _ := newTestService(t)
	acct := testutil.CreateAccount(t, repo, "jdoe", "jdoe@test.test", "Secret123", "John Doe", account.TypeStudent,
		time.Now().UTC().Add(-24*time.Hour))

	t.Run("unknown username", func(t *testing.T) {
		if _, err := svc.Authenticate("ghost", "Secret123"); errors.Cause(err) != account.ErrNotFound {
			t.Errorf("Authenticate() error = %v, want %v", err, account.ErrNotFound)
		}
	})

	t.Run("wrong password leaves account untouched", func(t *testing.T) {
		if _, err := svc.Authenticate("jdoe", "WrongPass1"); err != account.ErrBadPassword {
			t.Errorf("Authenticate() error = %v, want %v", err, account.ErrBadPassword)
		}
		got, err := svc.GetByUsername("jdoe")
		if err != nil {
			t.Fatalf("GetByUsername() failed: %v", err)
		}
		if !got.LastLogin.Equal(acct.LastLogin) {
			t.Errorf("LastLogin = %v, want unchanged %v", got.LastLogin, acct.LastLogin)
		}
	})

	t.Run("username lookup is case-sensitive", func(t *testing.T) {
		if _, err := svc.Authenticate("JDoe", "Secret123"); errors.Cause(err) != account.ErrNotFound {
			t.Errorf("Authenticate() error = %v, want %v", err, account.ErrNotFound)
		}
	})

	t.Run("ok updates LastLogin", func(t *testing.T) {
		sess, err := svc.Authenticate("  jdoe  ", "Secret123")
		if err != nil {
			t.Fatalf("Authenticate() failed: %v", err)
		}
		got, err := sess.Account()
		if err != nil {
			t.Fatalf("sess.Account() failed: %v", err)
		}
		if !got.LastLogin.After(acct.LastLogin) {
			t.Errorf("LastLogin = %v, want after %v", got.LastLogin, acct.LastLogin)
		}
	})
}

func TestServicePremium(t *testing.T) {
	svc, repo, _ := newTestService(t)
	testutil.CreateAccount(t, repo, "jdoe", "jdoe@test.test", "Secret123", "John Doe", account.TypeStudent)

	today := time.Now().UTC().Truncate(24 * time.Hour)

	t.Run("invalid plan", func(t *testing.T) {
		if _, err := svc.UpgradeToPremium("jdoe", "weekly"); err == nil {
			t.Fatal("UpgradeToPremium() error = nil, want validation error")
		}
	})

	t.Run("yearly plan", func(t *testing.T) {
		acct, err := svc.UpgradeToPremium("jdoe", account.PlanYearly)
		if err != nil {
			t.Fatalf("UpgradeToPremium() failed: %v", err)
		}
		if !acct.Premium || !acct.PremiumAutoRenew {
			t.Errorf("Premium/AutoRenew = %v/%v, want true/true", acct.Premium, acct.PremiumAutoRenew)
		}
		if !acct.PremiumSince.Equal(today) {
			t.Errorf("PremiumSince = %v, want %v", acct.PremiumSince, today)
		}
		if want := today.AddDate(0, 0, 365); !acct.PremiumUntil.Equal(want) {
			t.Errorf("PremiumUntil = %v, want %v", acct.PremiumUntil, want)
		}
	})

	t.Run("repeat upgrade refreshes, latest plan wins", func(t *testing.T) {
		acct, err := svc.UpgradeToPremium("jdoe", account.PlanMonthly)
		if err != nil {
			t.Fatalf("UpgradeToPremium() failed: %v", err)
		}
		if !acct.Premium || !acct.PremiumAutoRenew {
			t.Errorf("Premium/AutoRenew = %v/%v, want true/true", acct.Premium, acct.PremiumAutoRenew)
		}
		if !acct.PremiumUntil.IsZero() {
			t.Errorf("PremiumUntil = %v, want zero on monthly plan", acct.PremiumUntil)
		}
	})

	t.Run("cancel only clears auto-renew", func(t *testing.T) {
		acct, err := svc.CancelPremiumRenewal("jdoe")
		if err != nil {
			t.Fatalf("CancelPremiumRenewal() failed: %v", err)
		}
		if acct.PremiumAutoRenew {
			t.Error("PremiumAutoRenew = true, want false")
		}
		if !acct.Premium {
			t.Error("Premium = false, want membership kept until period end")
		}
		if !acct.PremiumSince.Equal(today) {
			t.Errorf("PremiumSince = %v, want unchanged %v", acct.PremiumSince, today)
		}
	})

	t.Run("repeat cancel is a no-op", func(t *testing.T) {
		acct, err := svc.CancelPremiumRenewal("jdoe")
		if err != nil {
			t.Fatalf("CancelPremiumRenewal() failed: %v", err)
		}
		if acct.PremiumAutoRenew {
			t.Error("PremiumAutoRenew = true, want false")
		}
	})
}

func TestServicePasswordReset(t *testing.T) {
	svc, repo, _ := newTestService(t)
	acct := testutil.CreateAccount(t, repo, "jdoe", "jdoe@test.test", "Secret123", "John Doe", account.TypeStudent)

	t.Run("unknown email", func(t *testing.T) {
		if err := svc.RequestPasswordReset("ghost@test.test"); errors.Cause(err) != account.ErrNotFound {
			t.Errorf("RequestPasswordReset() error = %v, want %v", err, account.ErrNotFound)
		}
	})

	t.Run("full reset flow", func(t *testing.T) {
		if err := svc.RequestPasswordReset("JDoe@Test.test"); err != nil {
			t.Fatalf("RequestPasswordReset() failed: %v", err)
		}

		token, err := account.MakeToken(acct)
		if err != nil {
			t.Fatalf("MakeToken() failed: %v", err)
		}
		rp := account.ResetAccountPassword{
			Token:           token,
			UID:             account.EncodeUID(acct),
			Password:        "NewSecret1",
			PasswordConfirm: "NewSecret1",
		}
		if err := svc.ResetPassword(rp); err != nil {
			t.Fatalf("ResetPassword() failed: %v", err)
		}

		if _, err := svc.Authenticate("jdoe", "Secret123"); err != account.ErrBadPassword {
			t.Errorf("old password still accepted, error = %v", err)
		}
		if _, err := svc.Authenticate("jdoe", "NewSecret1"); err != nil {
			t.Errorf("Authenticate() with new password failed: %v", err)
		}

		// digest changed; the token is spent
		if err := svc.ResetPassword(rp); err == nil {
			t.Error("ResetPassword() accepted a spent token")
		}
	})
}

func TestServicePersistFailureKeepsMutation(t *testing.T) {
	svc, repo, db := newTestService(t)
	testutil.CreateAccount(t, repo, "jdoe", "jdoe@test.test", "Secret123", "John Doe", account.TypeStudent)

	db.PersistFunc = func() error { return errors.New("disk gone") }
	defer func() { db.PersistFunc = nil }()

	_, err := svc.UpgradeToPremium("jdoe", account.PlanYearly)
	if errors.Cause(err) != account.ErrStoreUnavailable {
		t.Fatalf("UpgradeToPremium() error = %v, want %v", err, account.ErrStoreUnavailable)
	}

	// no rollback: the in-memory record keeps the mutation
	got, err := svc.GetByUsername("jdoe")
	if err != nil {
		t.Fatalf("GetByUsername() failed: %v", err)
	}
	if !got.Premium {
		t.Error("Premium = false, want mutation kept after failed flush")
	}
}
