package inmemdb

import (
	"github.com/pkg/errors"

	"github.com/acadinfo/backend/core/account"
)

type accountRepository struct {
	db *DB
}

var _ account.Repository = (*accountRepository)(nil) // interface compliance check

func NewAccountRepository(db *DB) account.Repository {
	return &accountRepository{db: db}
}

func (repo *accountRepository) query() []account.Account {
	accts := make([]account.Account, 0, len(repo.db.accounts.table))
	for _, a := range repo.db.accounts.table {
		accts = append(accts, a.Clone())
	}
	return accts
}

func (repo *accountRepository) CheckUniqueness(username, email string) error {
	repo.db.accounts.RLock()
	defer repo.db.accounts.RUnlock()

	if _, ok := repo.db.accounts.table[username]; ok {
		return account.ErrUsernameTaken
	}
	for _, acct := range repo.db.accounts.table {
		if acct.Email == email {
			return account.ErrEmailTaken
		}
	}
	return nil
}

func (repo *accountRepository) CreateAccount(acct account.Account) (account.Account, error) {
	repo.db.accounts.Lock()
	defer repo.db.accounts.Unlock()

	if _, ok := repo.db.accounts.table[acct.Username]; ok {
		return account.Account{}, account.ErrUsernameTaken
	}
	for _, a := range repo.db.accounts.table {
		if a.Email == acct.Email {
			return account.Account{}, account.ErrEmailTaken
		}
	}

	cp := acct.Clone()
	repo.db.accounts.table[acct.Username] = &cp
	if err := repo.db.persist(); err != nil {
		// record stays; the caller learns the flush failed
		return acct, errors.Wrap(account.ErrStoreUnavailable, err.Error())
	}
	return acct, nil
}

func (repo *accountRepository) QueryAllAccounts() ([]account.Account, error) {
	repo.db.accounts.RLock()
	defer repo.db.accounts.RUnlock()
	return repo.query(), nil
}

func (repo *accountRepository) GetAccount(username string) (account.Account, error) {
	repo.db.accounts.RLock()
	defer repo.db.accounts.RUnlock()

	if acct, ok := repo.db.accounts.table[username]; ok {
		return acct.Clone(), nil
	}
	return account.Account{}, account.ErrNotFound
}

func (repo *accountRepository) GetAccountByEmail(email string) (account.Account, error) {
	repo.db.accounts.RLock()
	defer repo.db.accounts.RUnlock()

	for _, acct := range repo.db.accounts.table {
		if acct.Email == email {
			return acct.Clone(), nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (repo *accountRepository) UpdateAccount(acct account.Account) (account.Account, error) {
	repo.db.accounts.Lock()
	defer repo.db.accounts.Unlock()

	orig, ok := repo.db.accounts.table[acct.Username]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}

	// bookings are append-only; updates never touch them
	cp := acct.Clone()
	cp.Bookings = orig.Bookings
	repo.db.accounts.table[acct.Username] = &cp

	if err := repo.db.persist(); err != nil {
		return cp.Clone(), errors.Wrap(account.ErrStoreUnavailable, err.Error())
	}
	return cp.Clone(), nil
}

func (repo *accountRepository) AppendBooking(username string, b account.Booking) (account.Account, error) {
	repo.db.accounts.Lock()
	defer repo.db.accounts.Unlock()

	acct, ok := repo.db.accounts.table[username]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	acct.Bookings = append(acct.Bookings, b)

	if err := repo.db.persist(); err != nil {
		return acct.Clone(), errors.Wrap(account.ErrStoreUnavailable, err.Error())
	}
	return acct.Clone(), nil
}
