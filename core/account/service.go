package account

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"github.com/acadinfo/backend/core"
)

var (
	// errors
	ErrNotFound         = errors.New("account not found")
	ErrEmailTaken       = errors.New("an account with this email already exists")
	ErrUsernameTaken    = errors.New("an account with this username already exists")
	ErrBadPassword      = errors.New("invalid password")
	ErrUnauthenticated  = errors.New("not authenticated")
	ErrStoreUnavailable = errors.New("account store unavailable")
)

type (
	// Repository is the durable account store. Every mutating call persists
	// the full store before returning; a failed flush surfaces
	// ErrStoreUnavailable but the in-memory mutation is kept (no rollback).
	Repository interface {
		CheckUniqueness(username, email string) error
		CreateAccount(acct Account) (Account, error)
		QueryAllAccounts() ([]Account, error)
		GetAccount(username string) (Account, error)
		GetAccountByEmail(email string) (Account, error)
		UpdateAccount(acct Account) (Account, error)
		// AppendBooking appends one ledger record to the account's bookings.
		// There is deliberately no edit or remove counterpart.
		AppendBooking(username string, b Booking) (Account, error)
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, mailSvc: mailSvc}
}

func (svc *Service) checkUniqueness(uname, email string) error {
	if err := svc.repo.CheckUniqueness(uname, email); err != nil {
		var field string
		switch errors.Cause(err) {
		case ErrUsernameTaken:
			field = "username"
		case ErrEmailTaken:
			field = "email"
		default:
			return err
		}
		return core.NewValidationError(err, core.FieldError{Field: field, Error: err.Error()})
	}
	return nil
}

// Register validates na and creates the Account. Validation rules are applied
// in order (missing fields, password policy, username free, email free) and
// the first violation is returned; the store is untouched on rejection.
func (svc *Service) Register(na NewAccount) (Account, error) {
	if err := na.Validate(svc); err != nil {
		return Account{}, err
	}

	typ := na.Type
	if typ == "" {
		typ = TypeStudent
	}
	now := NowFunc().UTC()
	acct := Account{
		Username:  na.Username,
		Email:     na.Email,
		FullName:  na.FullName,
		Phone:     na.Phone,
		Type:      typ,
		Joined:    now,
		LastLogin: now,
		Bookings:  []Booking{},
	}
	if err := acct.SetPassword(na.Password); err != nil {
		return Account{}, err
	}
	return svc.repo.CreateAccount(acct)
}

// Authenticate verifies the credentials and returns a Session bound to the
// account. ErrNotFound and ErrBadPassword leave the account untouched.
func (svc *Service) Authenticate(username, pwd string) (*Session, error) {
	acct, err := svc.repo.GetAccount(core.CleanString(username))
	if err != nil {
		return nil, err
	}
	if err = acct.CheckPassword(pwd); err != nil {
		return nil, ErrBadPassword
	}

	acct.LastLogin = NowFunc().UTC()
	if _, err = svc.repo.UpdateAccount(acct); err != nil {
		return nil, errors.Wrap(err, "setting lastLogin")
	}
	return newSession(svc, acct.Username), nil
}

func (svc *Service) QueryAll() ([]Account, error) {
	return svc.repo.QueryAllAccounts()
}

func (svc *Service) GetByUsername(uname string) (Account, error) {
	return svc.repo.GetAccount(core.CleanString(uname))
}

// FindByEmail is the password-recovery lookup.
func (svc *Service) FindByEmail(email string) (Account, error) {
	return svc.repo.GetAccountByEmail(core.CleanString(email, true /* lower */))
}

// AppendBooking appends one record to the account's ledger and persists.
func (svc *Service) AppendBooking(username string, b Booking) (Account, error) {
	return svc.repo.AppendBooking(username, b)
}

// UpgradeToPremium activates (or refreshes) the premium membership.
// Idempotent: repeat calls simply refresh the dates, the latest plan's
// fields win. A yearly plan sets PremiumUntil to 365 days out.
func (svc *Service) UpgradeToPremium(username, plan string) (Account, error) {
	if plan != PlanMonthly && plan != PlanYearly {
		return Account{}, core.NewValidationError(
			errors.New("invalid plan"),
			core.FieldError{Field: "plan", Error: fmt.Sprintf("plan must be one of: %s, %s", PlanMonthly, PlanYearly)},
		)
	}

	acct, err := svc.repo.GetAccount(username)
	if err != nil {
		return Account{}, err
	}

	today := NowFunc().UTC().Truncate(24 * time.Hour)
	acct.Premium = true
	acct.PremiumSince = today
	acct.PremiumAutoRenew = true
	if plan == PlanYearly {
		acct.PremiumUntil = today.AddDate(0, 0, 365)
	} else {
		acct.PremiumUntil = time.Time{}
	}
	return svc.repo.UpdateAccount(acct)
}

// CancelPremiumRenewal disables auto-renewal only; premium stays active
// until the end of the running period. A repeat call is a no-op.
func (svc *Service) CancelPremiumRenewal(username string) (Account, error) {
	acct, err := svc.repo.GetAccount(username)
	if err != nil {
		return Account{}, err
	}
	if !acct.PremiumAutoRenew {
		return acct, nil
	}
	acct.PremiumAutoRenew = false
	return svc.repo.UpdateAccount(acct)
}

// RequestPasswordReset emails a reset token to the account registered with
// the given email address. The digest never leaves the store.
func (svc *Service) RequestPasswordReset(email string) error {
	acct, err := svc.FindByEmail(email)
	if err != nil {
		return err
	}
	if core.Conf.TestMode {
		// run synchronously
		svc.sendPasswordResetMail(acct)
		return nil
	}
	go svc.sendPasswordResetMail(acct)
	return nil
}

func (svc *Service) sendPasswordResetMail(acct Account) {
	token, err := MakeToken(acct)
	if err != nil {
		return
	}
	uid := EncodeUID(acct)
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: acct.FullName, Address: acct.Email}},
		Subject: "Password Reset",
		BodyStr: fmt.Sprintf(
			"A password reset was requested for your %s account.\n\n"+
				"Visit %s/password-reset/%s/%s to choose a new password.\n\n"+
				"If you did not request this, you can safely ignore this email.",
			core.Conf.AppName, core.Conf.FrontendBaseURL, uid, token,
		),
	})
}

// ResetPassword verifies the recovery token and sets the new password.
func (svc *Service) ResetPassword(rp ResetAccountPassword) error {
	if err := rp.Validate(); err != nil {
		return err
	}

	uname, err := decodeUID(rp.UID)
	if err != nil {
		return core.NewValidationError(errInvalidToken)
	}
	acct, err := svc.repo.GetAccount(uname)
	if err != nil {
		if errors.Cause(err) == ErrNotFound {
			return core.NewValidationError(errInvalidToken)
		}
		return err
	}
	if err = verifyToken(acct, rp.Token); err != nil {
		return core.NewValidationError(err)
	}

	if err = acct.SetPassword(rp.Password); err != nil {
		return err
	}
	_, err = svc.repo.UpdateAccount(acct)
	return err
}
