package workflow

import (
	"errors"
	"testing"
	"time"

	"lalibela_manager/constants"
	"lalibela_manager/model"
)

// 2030-01-04 is a Friday (weekend slots), 2030-01-02 a Wednesday.
const (
	weekendDate = "2030-01-04"
	weekdayDate = "2030-01-02"
)

func allZonesOpen(string) bool { return true }

func storedCreate(code string) func(*model.Reservation) error {
	return func(r *model.Reservation) error {
		r.ReferenceCode = code
		return nil
	}
}

func TestHappyPath(t *testing.T) {
	st := NewStore(time.Hour)
	sess := st.Start()

	if sess.Step != StepArrival {
		t.Fatalf("new session starts at %s, want %s", sess.Step, StepArrival)
	}

	sess, err := st.Arrival(sess.ID, ArrivalInput{Date: weekendDate, Time: "7:30 PM", Guests: "4"})
	if err != nil {
		t.Fatalf("arrival: %v", err)
	}
	if sess.Step != StepAtmosphere {
		t.Fatalf("after arrival at %s, want %s", sess.Step, StepAtmosphere)
	}

	sess, err = st.Atmosphere(sess.ID, constants.ZONE_VILLAGE, allZonesOpen)
	if err != nil {
		t.Fatalf("atmosphere: %v", err)
	}

	sess, err = st.Table(sess.ID, "V3", nil)
	if err != nil {
		t.Fatalf("table: %v", err)
	}

	var created *model.Reservation
	create := func(r *model.Reservation) error {
		r.ReferenceCode = "LAL-AB12CD"
		created = r
		return nil
	}
	sess, err = st.Contact(sess.ID, ContactInput{
		Name: "Amara", Email: "a@x.com", Phone: "123", Notes: "window seat",
	}, create, true)
	if err != nil {
		t.Fatalf("contact: %v", err)
	}

	if sess.Step != StepSuccess {
		t.Errorf("final step %s, want %s", sess.Step, StepSuccess)
	}
	if sess.ReferenceCode != "LAL-AB12CD" {
		t.Errorf("session reference code %q, want the stored one", sess.ReferenceCode)
	}
	if created == nil {
		t.Fatal("create was never called")
	}
	if created.Status != constants.STATUS_CONFIRMED {
		t.Errorf("status %s, want Confirmed under auto-confirm", created.Status)
	}
	if created.Date != weekendDate || created.Time != "7:30 PM" || created.Guests != "4" {
		t.Errorf("record %+v missing arrival data", created)
	}
	if created.TableZone != constants.ZONE_VILLAGE || created.TableId != "V3" {
		t.Errorf("record %+v missing table data", created)
	}
	if created.Name != "Amara" || created.Email != "a@x.com" || created.Phone != "123" {
		t.Errorf("record %+v missing contact data", created)
	}
}

func TestAutoConfirmOffSubmitsPending(t *testing.T) {
	st := NewStore(time.Hour)
	sess := st.Start()
	st.Arrival(sess.ID, ArrivalInput{Date: weekdayDate, Time: "8:00 PM", Guests: "2"})
	st.Atmosphere(sess.ID, constants.ZONE_BAR, allZonesOpen)
	st.Table(sess.ID, "B1", nil)

	var created *model.Reservation
	_, err := st.Contact(sess.ID, ContactInput{Name: "A", Email: "a@x.com", Phone: "1"},
		func(r *model.Reservation) error {
			r.ReferenceCode = "LAL-000001"
			created = r
			return nil
		}, false)
	if err != nil {
		t.Fatalf("contact: %v", err)
	}
	if created.Status != constants.STATUS_PENDING {
		t.Errorf("status %s, want Pending with auto-confirm off", created.Status)
	}
}

func TestArrivalGuards(t *testing.T) {
	st := NewStore(time.Hour)

	cases := []struct {
		name string
		in   ArrivalInput
	}{
		{"empty date", ArrivalInput{Time: "7:00 PM", Guests: "2"}},
		{"past date", ArrivalInput{Date: "2020-01-01", Time: "7:00 PM", Guests: "2"}},
		{"slot not offered on a weekday", ArrivalInput{Date: weekdayDate, Time: "6:30 PM", Guests: "2"}},
		{"no slot chosen", ArrivalInput{Date: weekendDate, Guests: "2"}},
		{"more without custom count", ArrivalInput{Date: weekendDate, Time: "7:00 PM", Guests: "more"}},
		{"zero guests", ArrivalInput{Date: weekendDate, Time: "7:00 PM", Guests: "0"}},
		{"non-numeric guests", ArrivalInput{Date: weekendDate, Time: "7:00 PM", Guests: "many"}},
	}

	for _, tc := range cases {
		sess := st.Start()
		got, err := st.Arrival(sess.ID, tc.in)
		if err == nil {
			t.Errorf("%s: arrival should fail", tc.name)
		}
		if got.Step != StepArrival {
			t.Errorf("%s: failed arrival moved to %s", tc.name, got.Step)
		}
	}
}

func TestArrivalCustomGuestCount(t *testing.T) {
	st := NewStore(time.Hour)
	sess := st.Start()

	sess, err := st.Arrival(sess.ID, ArrivalInput{
		Date: weekendDate, Time: "7:00 PM", Guests: "more", CustomGuestCount: "12",
	})
	if err != nil {
		t.Fatalf("arrival: %v", err)
	}
	if sess.Guests != "12" {
		t.Errorf("guests %q, want the custom count", sess.Guests)
	}
}

func TestAtmosphereGuards(t *testing.T) {
	st := NewStore(time.Hour)
	sess := st.Start()
	st.Arrival(sess.ID, ArrivalInput{Date: weekendDate, Time: "7:00 PM", Guests: "2"})

	if _, err := st.Atmosphere(sess.ID, "Rooftop", allZonesOpen); err == nil {
		t.Error("unknown zone should be rejected")
	}

	closed := func(string) bool { return false }
	if _, err := st.Atmosphere(sess.ID, constants.ZONE_OUTDOOR, closed); err == nil {
		t.Error("closed zone should be rejected")
	}
}

func TestZoneChangeResetsTable(t *testing.T) {
	st := NewStore(time.Hour)
	sess := st.Start()
	st.Arrival(sess.ID, ArrivalInput{Date: weekendDate, Time: "7:00 PM", Guests: "2"})
	st.Atmosphere(sess.ID, constants.ZONE_BAR, allZonesOpen)
	st.Table(sess.ID, "B2", nil)

	// Back to atmosphere, pick a different zone: the old table must not leak.
	st.Back(sess.ID)
	sess, err := st.Atmosphere(sess.ID, constants.ZONE_CHURCH, allZonesOpen)
	if err != nil {
		t.Fatalf("atmosphere: %v", err)
	}
	if sess.TableId != "" {
		t.Errorf("table id %q survived a zone change", sess.TableId)
	}
}

func TestTableGuards(t *testing.T) {
	st := NewStore(time.Hour)
	sess := st.Start()
	st.Arrival(sess.ID, ArrivalInput{Date: weekendDate, Time: "7:00 PM", Guests: "2"})
	st.Atmosphere(sess.ID, constants.ZONE_BAR, allZonesOpen)

	if _, err := st.Table(sess.ID, "V1", nil); err == nil {
		t.Error("table outside the chosen zone should be rejected")
	}

	taken := []model.Reservation{
		{Date: weekendDate, Time: "8:00 PM", TableId: "B1", Status: constants.STATUS_CONFIRMED},
	}
	if _, err := st.Table(sess.ID, "B1", taken); err == nil {
		t.Error("occupied table should be rejected")
	}
	if _, err := st.Table(sess.ID, "B2", taken); err != nil {
		t.Errorf("free table rejected: %v", err)
	}
}

func TestContactGuards(t *testing.T) {
	st := NewStore(time.Hour)
	sess := st.Start()
	st.Arrival(sess.ID, ArrivalInput{Date: weekendDate, Time: "7:00 PM", Guests: "2"})
	st.Atmosphere(sess.ID, constants.ZONE_BAR, allZonesOpen)
	st.Table(sess.ID, "B1", nil)

	for _, in := range []ContactInput{
		{Email: "a@x.com", Phone: "1"},
		{Name: "A", Phone: "1"},
		{Name: "A", Email: "a@x.com"},
		{Name: "  ", Email: "a@x.com", Phone: "1"},
	} {
		if _, err := st.Contact(sess.ID, in, storedCreate("LAL-FFFFFF"), true); err == nil {
			t.Errorf("contact %+v should be rejected", in)
		}
	}
}

// A failed create keeps the guest on the contact step with data intact and
// never fabricates a reference code.
func TestCreateFailureStaysInContact(t *testing.T) {
	st := NewStore(time.Hour)
	sess := st.Start()
	st.Arrival(sess.ID, ArrivalInput{Date: weekendDate, Time: "7:00 PM", Guests: "2"})
	st.Atmosphere(sess.ID, constants.ZONE_BAR, allZonesOpen)
	st.Table(sess.ID, "B1", nil)

	failing := func(*model.Reservation) error { return errors.New("database unreachable") }
	in := ContactInput{Name: "Amara", Email: "a@x.com", Phone: "123"}

	got, err := st.Contact(sess.ID, in, failing, true)
	if err == nil {
		t.Fatal("contact should surface the create failure")
	}
	if got.Step != StepContact {
		t.Errorf("step %s after failure, want %s", got.Step, StepContact)
	}
	if got.ReferenceCode != "" {
		t.Errorf("reference code %q fabricated without server confirmation", got.ReferenceCode)
	}
	if got.Name != "Amara" {
		t.Errorf("entered data lost after failure: %+v", got)
	}

	// Retrying with a working create succeeds from where the guest stands.
	got, err = st.Contact(sess.ID, in, storedCreate("LAL-AB12CD"), true)
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if got.Step != StepSuccess {
		t.Errorf("retry ended at %s, want %s", got.Step, StepSuccess)
	}
}

func TestBackNavigation(t *testing.T) {
	st := NewStore(time.Hour)
	sess := st.Start()

	if _, err := st.Back(sess.ID); err == nil {
		t.Error("cannot go back from arrival")
	}

	st.Arrival(sess.ID, ArrivalInput{Date: weekendDate, Time: "7:00 PM", Guests: "2"})
	st.Atmosphere(sess.ID, constants.ZONE_BAR, allZonesOpen)
	st.Table(sess.ID, "B1", nil)

	for _, want := range []Step{StepTable, StepAtmosphere, StepArrival} {
		got, err := st.Back(sess.ID)
		if err != nil {
			t.Fatalf("back: %v", err)
		}
		if got.Step != want {
			t.Fatalf("back landed on %s, want %s", got.Step, want)
		}
	}
}

func TestSuccessIsTerminal(t *testing.T) {
	st := NewStore(time.Hour)
	sess := st.Start()
	st.Arrival(sess.ID, ArrivalInput{Date: weekendDate, Time: "7:00 PM", Guests: "2"})
	st.Atmosphere(sess.ID, constants.ZONE_BAR, allZonesOpen)
	st.Table(sess.ID, "B1", nil)
	st.Contact(sess.ID, ContactInput{Name: "A", Email: "a@x.com", Phone: "1"}, storedCreate("LAL-123456"), true)

	if _, err := st.Back(sess.ID); err == nil {
		t.Error("cannot go back from success")
	}
	if _, err := st.Contact(sess.ID, ContactInput{Name: "A", Email: "a@x.com", Phone: "1"}, storedCreate("LAL-654321"), true); err == nil {
		t.Error("cannot resubmit from success")
	}
}

func TestUnknownSession(t *testing.T) {
	st := NewStore(time.Hour)

	if _, err := st.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Get unknown = %v, want ErrSessionNotFound", err)
	}
	if _, err := st.Arrival("nope", ArrivalInput{}); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("Arrival unknown = %v, want ErrSessionNotFound", err)
	}
}

func TestSweep(t *testing.T) {
	st := NewStore(0)
	sess := st.Start()

	time.Sleep(time.Millisecond)
	if n := st.Sweep(); n != 1 {
		t.Fatalf("swept %d sessions, want 1", n)
	}
	if _, err := st.Get(sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Error("swept session should be gone")
	}
}
