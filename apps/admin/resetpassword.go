package main

import (
	"github.com/acadinfo/backend/core"
	"github.com/acadinfo/backend/core/account"
)

func (cli *commandLine) resetPassword(uname, pwd string) error {
	acct, err := cli.repo.GetAccount(core.CleanString(uname))
	if err != nil {
		if err != account.ErrNotFound {
			return err
		}
		// fall back to an email lookup
		if acct, err = cli.repo.GetAccountByEmail(core.CleanString(uname, true /* lower */)); err != nil {
			return err
		}
	}
	if err := acct.SetPassword(pwd); err != nil {
		return err
	}
	_, err = cli.repo.UpdateAccount(acct)
	return err
}
