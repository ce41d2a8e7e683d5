package docstore

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/acadinfo/backend/core"
	"github.com/acadinfo/backend/core/account"
)

type accountTable struct {
	sync.RWMutex
	table map[string]*account.Account
}

// accountRecord is the on-disk shape of one account. Timestamps are stored
// as local-format strings and the password digest as a string, matching the
// document layout the desktop client writes.
type accountRecord struct {
	Password         string            `json:"password"`
	Email            string            `json:"email"`
	FullName         string            `json:"full_name"`
	Phone            string            `json:"phone"`
	Type             string            `json:"type,omitempty"`
	Premium          bool              `json:"premium"`
	PremiumSince     string            `json:"premium_since,omitempty"`
	PremiumUntil     string            `json:"premium_until,omitempty"`
	PremiumAutoRenew *bool             `json:"premium_auto_renew,omitempty"`
	Joined           string            `json:"joined"`
	LastLogin        string            `json:"last_login"`
	Bookings         []account.Booking `json:"bookings"`
}

func toRecord(acct account.Account) accountRecord {
	rec := accountRecord{
		Password:  string(acct.PasswordHash),
		Email:     acct.Email,
		FullName:  acct.FullName,
		Phone:     acct.Phone,
		Type:      acct.Type,
		Premium:   acct.Premium,
		Joined:    acct.Joined.Format(dateFormat),
		LastLogin: acct.LastLogin.Format(datetimeFormat),
		Bookings:  acct.Bookings,
	}
	if rec.Bookings == nil {
		rec.Bookings = []account.Booking{}
	}
	if !acct.PremiumSince.IsZero() {
		rec.PremiumSince = acct.PremiumSince.Format(dateFormat)
	}
	if !acct.PremiumUntil.IsZero() {
		rec.PremiumUntil = acct.PremiumUntil.Format(dateFormat)
	}
	if acct.Premium || acct.PremiumAutoRenew {
		renew := acct.PremiumAutoRenew
		rec.PremiumAutoRenew = &renew
	}
	return rec
}

func (rec accountRecord) toAccount(username string) (account.Account, error) {
	acct := account.Account{
		Username:     username,
		PasswordHash: []byte(rec.Password),
		Email:        rec.Email,
		FullName:     rec.FullName,
		Phone:        rec.Phone,
		Type:         rec.Type,
		Premium:      rec.Premium,
		Bookings:     rec.Bookings,
	}
	if acct.Type == "" {
		// older documents carry no type key; the seeded administrator is
		// recognized by its configured username, everyone else is a student
		if username == core.Conf.Admin.Username && acct.Premium {
			acct.Type = account.TypeAdministrator
		} else {
			acct.Type = account.TypeStudent
		}
	}
	if acct.Bookings == nil {
		acct.Bookings = []account.Booking{}
	}
	if rec.PremiumAutoRenew != nil {
		acct.PremiumAutoRenew = *rec.PremiumAutoRenew
	}

	var err error
	if acct.Joined, err = parseDate(dateFormat, rec.Joined, username, "joined"); err != nil {
		return account.Account{}, err
	}
	if acct.LastLogin, err = parseDate(datetimeFormat, rec.LastLogin, username, "last_login"); err != nil {
		return account.Account{}, err
	}
	if rec.PremiumSince != "" {
		if acct.PremiumSince, err = parseDate(dateFormat, rec.PremiumSince, username, "premium_since"); err != nil {
			return account.Account{}, err
		}
	}
	if rec.PremiumUntil != "" {
		if acct.PremiumUntil, err = parseDate(dateFormat, rec.PremiumUntil, username, "premium_until"); err != nil {
			return account.Account{}, err
		}
	}
	return acct, nil
}

func parseDate(layout, val, username, field string) (time.Time, error) {
	if val == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(layout, val, time.UTC)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "account %q: bad %s", username, field)
	}
	return t, nil
}
