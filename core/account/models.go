package account

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/acadinfo/backend/core"
)

// Account types
const (
	TypeStudent       = "student"
	TypeParent        = "parent"
	TypeAdministrator = "administrator" // only ever held by the seeded account
)

// RegistrableTypes are the account types self-registration may pick.
var RegistrableTypes = []string{TypeStudent, TypeParent}

// Premium plans
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
)

// Booking kinds
const (
	KindAcademy = "academy"
	KindCourse  = "course"
	KindWebinar = "webinar"
)

// Booking statuses
const (
	StatusPending        = "Pending"
	StatusEnrolled       = "Enrolled"
	StatusPaymentPending = "Payment Pending"
	StatusConfirmed      = "Confirmed"
)

// Booking is one append-only ledger entry on an Account. Records are never
// edited or removed once appended.
type Booking struct {
	ID     string `json:"id,omitempty"`
	Kind   string `json:"type"`
	Name   string `json:"name"`
	Sport  string `json:"sport,omitempty"` // academy & course bookings
	Date   string `json:"date"`
	Time   string `json:"time,omitempty"`  // webinar bookings
	Price  int    `json:"price,omitempty"` // webinar bookings
	Status string `json:"status"`
}

type Account struct {
	Username         string    `json:"username"` // unique key, case-sensitive, immutable
	PasswordHash     []byte    `json:"-"`
	Email            string    `json:"email"` // unique across the store
	FullName         string    `json:"full_name"`
	Phone            string    `json:"phone"`
	Type             string    `json:"type"`
	Premium          bool      `json:"premium"`
	PremiumSince     time.Time `json:"premium_since"`
	PremiumUntil     time.Time `json:"premium_until"`
	PremiumAutoRenew bool      `json:"premium_auto_renew"`
	Joined           time.Time `json:"joined"`     // UTC, set once
	LastLogin        time.Time `json:"last_login"` // UTC, updated on every successful login
	Bookings         []Booking `json:"bookings"`
}

func (a *Account) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

// CheckPassword re-derives the digest from the candidate secret and compares;
// plaintext is never stored or compared directly.
func (a *Account) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(a.PasswordHash, []byte(pwd))
}

func (a *Account) IsAdmin() bool {
	return a.Type == TypeAdministrator
}

// Clone returns a deep copy; the bookings slice is not shared with the
// original so ledger appends go through the store only.
func (a Account) Clone() Account {
	cp := a
	if a.Bookings != nil {
		cp.Bookings = make([]Booking, len(a.Bookings))
		copy(cp.Bookings, a.Bookings)
	}
	if a.PasswordHash != nil {
		cp.PasswordHash = append([]byte(nil), a.PasswordHash...)
	}
	return cp
}

// NewAccount contains information needed to register a new Account.
type NewAccount struct {
	Username        string `json:"username" validate:"required,alphanum_"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	FullName        string `json:"full_name"`
	Phone           string `json:"phone"`
	Type            string `json:"type" validate:"omitempty,accounttype"`
}

func (na *NewAccount) Validate(svc *Service) error {
	na.Username = core.CleanString(na.Username)
	na.Email = core.CleanString(na.Email, true /* lower */)
	na.FullName = core.CleanString(na.FullName)
	na.Phone = core.CleanString(na.Phone)
	na.Type = core.CleanString(na.Type, true /* lower */)

	if err := core.Validate.Struct(na); err != nil {
		return err
	}
	return svc.checkUniqueness(na.Username, na.Email)
}

// ResetAccountPassword carries a password-recovery confirmation.
type ResetAccountPassword struct {
	Token           string `json:"token,omitempty" validate:"required"`
	UID             string `json:"uid,omitempty" validate:"required"`
	Password        string `json:"password,omitempty" validate:"required"`
	PasswordConfirm string `json:"password_confirm,omitempty" validate:"required,eqfield=Password"`
}

func (rp ResetAccountPassword) Validate() error { return core.Validate.Struct(rp) }
