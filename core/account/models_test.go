package account

import "testing"

func TestSetCheckPassword(t *testing.T) {
	var acct Account
	if err := acct.SetPassword("Secret123"); err != nil {
		t.Fatalf("SetPassword() failed: %v", err)
	}
	if string(acct.PasswordHash) == "Secret123" {
		t.Fatal("password stored in clear")
	}
	if err := acct.CheckPassword("Secret123"); err != nil {
		t.Errorf("CheckPassword() failed: %v", err)
	}
	if err := acct.CheckPassword("secret123"); err == nil {
		t.Error("CheckPassword() accepted a wrong password")
	}
}

func TestAccountClone(t *testing.T) {
	acct := Account{Username: "jdoe", Bookings: []Booking{{ID: "b1", Kind: KindCourse, Name: "Yoga", Status: StatusEnrolled}}}
	_ = acct.SetPassword("Secret123")

	cp := acct.Clone()
	cp.Bookings[0].Status = StatusPending
	cp.Bookings = append(cp.Bookings, Booking{ID: "b2"})
	cp.PasswordHash[0] ^= 0xff

	if acct.Bookings[0].Status != StatusEnrolled {
		t.Error("Clone() shares the bookings slice")
	}
	if len(acct.Bookings) != 1 {
		t.Errorf("len(Bookings) = %d, want 1", len(acct.Bookings))
	}
	if err := acct.CheckPassword("Secret123"); err != nil {
		t.Error("Clone() shares the password hash")
	}
}
