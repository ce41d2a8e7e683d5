package testutil

import (
	"testing"
	"time"

	"github.com/acadinfo/backend/core/account"
)

func CreateAccount(
	t *testing.T,
	repo account.Repository,
	uname, email, pwd, fullName, typ string,
	joined ...time.Time,
) account.Account {
	tstamp := time.Now().UTC()
	if len(joined) > 0 {
		tstamp = joined[0].UTC()
	}
	acct := account.Account{
		Username:  uname,
		Email:     email,
		FullName:  fullName,
		Type:      typ,
		Joined:    tstamp,
		LastLogin: tstamp,
		Bookings:  []account.Booking{},
	}
	if pwd != "" {
		if err := acct.SetPassword(pwd); err != nil {
			t.Fatalf("createAccount() failed: %v", err)
		}
	}
	acct, err := repo.CreateAccount(acct)
	if err != nil {
		t.Fatalf("createAccount() failed: %v", err)
	}
	return acct
}
