package main

import (
	"time"

	"github.com/acadinfo/backend/core"
	"github.com/acadinfo/backend/core/account"
)

// addAdmin updates or creates an administrator account.
func (cli *commandLine) addAdmin(uname, email, pwd string) error {
	uname = core.CleanString(uname)
	email = core.CleanString(email, true /* lower */)

	var create bool
	acct, err := cli.repo.GetAccount(uname)
	if err != nil {
		if err != account.ErrNotFound {
			return err
		}
		create = true
		now := time.Now().UTC()
		acct = account.Account{
			Username:  uname,
			Email:     email,
			Joined:    now,
			LastLogin: now,
			Bookings:  []account.Booking{},
		}
	}
	acct.Type = account.TypeAdministrator
	acct.Premium = true
	if err := acct.SetPassword(pwd); err != nil {
		return err
	}

	if create {
		_, err = cli.repo.CreateAccount(acct)
		return err
	}
	_, err = cli.repo.UpdateAccount(acct)
	return err
}
