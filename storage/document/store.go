package docstore

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/acadinfo/backend/core"
	"github.com/acadinfo/backend/core/account"
)

const (
	dateFormat     = "2006-01-02"
	datetimeFormat = "2006-01-02 15:04:05"
)

// Store is a flat-file account store: one JSON document keyed by username,
// rewritten in full on every mutation. The whole store is guarded by a single
// lock, so a uniqueness check and the following insert are one atomic step.
type Store struct {
	db   *accountTable
	path string
}

var _ account.Repository = (*Store)(nil) // interface compliance check

// Open loads the accounts document at path, creating it with the seeded
// administrator account on first run. A document that cannot be parsed is
// unrecoverable and yields a shutdown error.
func Open(path string) (*Store, error) {
	st := &Store{
		db:   &accountTable{table: make(map[string]*account.Account)},
		path: path,
	}

	raw, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		if err = st.seedAdmin(); err != nil {
			return nil, errors.Wrap(err, "seeding admin account")
		}
		return st, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	var doc map[string]accountRecord
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, core.NewShutdownError("accounts document is corrupt: " + err.Error())
	}
	for uname, rec := range doc {
		acct, err := rec.toAccount(uname)
		if err != nil {
			return nil, core.NewShutdownError("accounts document is corrupt: " + err.Error())
		}
		st.db.table[uname] = &acct
	}
	return st, nil
}

func (st *Store) seedAdmin() error {
	now := time.Now().UTC()
	admin := account.Account{
		Username:  core.Conf.Admin.Username,
		Email:     core.Conf.Admin.Email,
		FullName:  core.Conf.Admin.FullName,
		Phone:     core.Conf.Admin.Phone,
		Type:      account.TypeAdministrator,
		Premium:   true,
		Joined:    now,
		LastLogin: now,
		Bookings:  []account.Booking{},
	}
	if err := admin.SetPassword(core.Conf.Admin.Password); err != nil {
		return err
	}
	st.db.table[admin.Username] = &admin
	return st.persist()
}

// persist writes the whole document to a temp file and renames it into
// place. The caller must hold the write lock.
func (st *Store) persist() error {
	doc := make(map[string]accountRecord, len(st.db.table))
	for uname, acct := range st.db.table {
		doc[uname] = toRecord(*acct)
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(st.path)
	tmp, err := ioutil.TempFile(dir, ".users-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), st.path)
}

func (st *Store) CheckUniqueness(username, email string) error {
	st.db.RLock()
	defer st.db.RUnlock()
	return st.checkUniqueness(username, email)
}

func (st *Store) checkUniqueness(username, email string) error {
	if _, ok := st.db.table[username]; ok {
		return account.ErrUsernameTaken
	}
	for _, acct := range st.db.table {
		if acct.Email == email {
			return account.ErrEmailTaken
		}
	}
	return nil
}

func (st *Store) CreateAccount(acct account.Account) (account.Account, error) {
	st.db.Lock()
	defer st.db.Unlock()

	if err := st.checkUniqueness(acct.Username, acct.Email); err != nil {
		return account.Account{}, err
	}

	cp := acct.Clone()
	st.db.table[acct.Username] = &cp
	if err := st.persist(); err != nil {
		// the record stays; the caller learns the flush failed
		return acct, errors.Wrap(account.ErrStoreUnavailable, err.Error())
	}
	return acct, nil
}

func (st *Store) QueryAllAccounts() ([]account.Account, error) {
	st.db.RLock()
	defer st.db.RUnlock()

	accts := make([]account.Account, 0, len(st.db.table))
	for _, acct := range st.db.table {
		accts = append(accts, acct.Clone())
	}
	return accts, nil
}

func (st *Store) GetAccount(username string) (account.Account, error) {
	st.db.RLock()
	defer st.db.RUnlock()

	if acct, ok := st.db.table[username]; ok {
		return acct.Clone(), nil
	}
	return account.Account{}, account.ErrNotFound
}

func (st *Store) GetAccountByEmail(email string) (account.Account, error) {
	st.db.RLock()
	defer st.db.RUnlock()

	for _, acct := range st.db.table {
		if acct.Email == email {
			return acct.Clone(), nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (st *Store) UpdateAccount(acct account.Account) (account.Account, error) {
	st.db.Lock()
	defer st.db.Unlock()

	orig, ok := st.db.table[acct.Username]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}

	// bookings are append-only; updates never touch them
	cp := acct.Clone()
	cp.Bookings = orig.Bookings
	st.db.table[acct.Username] = &cp

	if err := st.persist(); err != nil {
		return cp.Clone(), errors.Wrap(account.ErrStoreUnavailable, err.Error())
	}
	return cp.Clone(), nil
}

func (st *Store) AppendBooking(username string, b account.Booking) (account.Account, error) {
	st.db.Lock()
	defer st.db.Unlock()

	acct, ok := st.db.table[username]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	acct.Bookings = append(acct.Bookings, b)

	if err := st.persist(); err != nil {
		return acct.Clone(), errors.Wrap(account.ErrStoreUnavailable, err.Error())
	}
	return acct.Clone(), nil
}
