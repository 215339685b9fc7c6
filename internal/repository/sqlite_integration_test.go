package repository_test

import (
	"context"
	"testing"
	"time"

	"battery_alert/internal/models"
	"battery_alert/internal/repository"
	"battery_alert/internal/repository/db"
)

func openMemory(t *testing.T) *repository.Repository {
	t.Helper()
	conn, err := db.InitDB(":memory:")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return repository.NewRepository(conn)
}

func TestSQLite_AlertAndProfileRoundTrip(t *testing.T) {
	repos := openMemory(t)
	c := context.Background()

	id, err := repos.ProfileRepo.Create(c, models.DeviceProfile{Label: "BrandX", Strategy: models.HighActive})
	if err != nil {
		t.Fatalf("Create profile: %v", err)
	}
	p, err := repos.ProfileRepo.Get(c, id)
	if err != nil || p == nil {
		t.Fatalf("Get profile: %+v, %v", p, err)
	}
	if p.Label != "BrandX" || p.Strategy != models.HighActive {
		t.Fatalf("unexpected profile: %+v", p)
	}

	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	records := []models.AlertRecord{
		{OccurredAt: base, Target: models.ToController, Strategy: models.Passive, TemperatureC: 20, Breach: models.Normal},
		{OccurredAt: base.Add(time.Minute), Target: models.ToEmail, Strategy: models.Passive, TemperatureC: -1, Breach: models.TooLow},
		{OccurredAt: base.Add(2 * time.Minute), Target: models.ToEmail, Strategy: models.HighActive, TemperatureC: 46, Breach: models.TooHigh},
	}
	for _, r := range records {
		if _, err := repos.AlertRepo.Append(c, r); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	all, err := repos.AlertRepo.List(c, time.Time{}, time.Time{}, "", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("want 3 records, got %d", len(all))
	}
	if all[0].ID == "" || !all[0].OccurredAt.Equal(base) {
		t.Fatalf("unexpected first record: %+v", all[0])
	}

	emails, err := repos.AlertRepo.List(c, base.Add(time.Minute), base.Add(2*time.Minute), "", "EMAIL")
	if err != nil {
		t.Fatalf("List filtered: %v", err)
	}
	if len(emails) != 2 || emails[0].Breach != models.TooLow || emails[1].Breach != models.TooHigh {
		t.Fatalf("unexpected filtered records: %+v", emails)
	}
}

func TestSQLite_UserRoundTrip(t *testing.T) {
	conn, err := db.InitDB(":memory:")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	users := repository.NewUserRepository(conn)
	c := context.Background()

	id, err := users.Create(c, models.User{Username: "operator", PasswordHash: "hash", Role: models.RoleOperator})
	if err != nil {
		t.Fatalf("Create user: %v", err)
	}
	if _, err := users.Create(c, models.User{Username: "operator", PasswordHash: "other", Role: models.RoleViewer}); err == nil {
		t.Fatal("expected unique constraint error on duplicate username")
	}

	u, err := users.GetByUsername(c, "operator")
	if err != nil || u == nil {
		t.Fatalf("GetByUsername: %+v, %v", u, err)
	}
	if u.ID != id || u.PasswordHash != "hash" || u.Role != models.RoleOperator || u.CreatedAt.IsZero() {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestSQLite_AlertListSubSecondBounds(t *testing.T) {
	repos := openMemory(t)
	c := context.Background()

	base := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	offsets := []time.Duration{
		0,
		5 * time.Millisecond,
		123456789 * time.Nanosecond,
		500 * time.Millisecond,
		time.Second,
	}
	stamps := make([]time.Time, len(offsets))
	for i, off := range offsets {
		stamps[i] = base.Add(off)
		rec := models.AlertRecord{OccurredAt: stamps[i], Target: models.ToController, Strategy: models.Passive, Breach: models.Normal}
		if _, err := repos.AlertRepo.Append(c, rec); err != nil {
			t.Fatalf("Append %v: %v", off, err)
		}
	}

	cases := []struct {
		name     string
		from, to time.Time
		want     []time.Time
	}{
		{"all", time.Time{}, time.Time{}, stamps},
		{"inclusive both ends", stamps[1], stamps[3], stamps[1:4]},
		{"single instant", stamps[2], stamps[2], stamps[2:3]},
		{"from just past a record excludes it", stamps[2].Add(time.Nanosecond), time.Time{}, stamps[3:]},
		{"to just before a record excludes it", time.Time{}, stamps[1].Add(-time.Nanosecond), stamps[:1]},
		{"cursor past last is empty", stamps[4].Add(time.Nanosecond), time.Time{}, nil},
		{"whole second lower bound keeps fractional records", base, base.Add(999 * time.Millisecond), stamps[:4]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repos.AlertRepo.List(c, tc.from, tc.to, "", "")
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("want %d records, got %d: %+v", len(tc.want), len(got), got)
			}
			for i := range got {
				if !got[i].OccurredAt.Equal(tc.want[i]) {
					t.Fatalf("record %d: want %v, got %v", i, tc.want[i], got[i].OccurredAt)
				}
			}
		})
	}
}

func TestSQLite_TailFollowsInsertOrderNotTimestamps(t *testing.T) {
	repos := openMemory(t)
	c := context.Background()

	last, err := repos.AlertRepo.LastSeq(c)
	if err != nil || last != 0 {
		t.Fatalf("LastSeq on empty history: (%d, %v)", last, err)
	}

	t2 := time.Date(2025, 3, 1, 8, 0, 0, 2000, time.UTC)
	t1 := t2.Add(-time.Microsecond)

	// stamped later, stored first
	seqB, err := repos.AlertRepo.Append(c, models.AlertRecord{ID: "b", OccurredAt: t2, Target: models.ToEmail, Breach: models.TooHigh})
	if err != nil {
		t.Fatalf("Append b: %v", err)
	}
	page, err := repos.AlertRepo.ListAfter(c, 0, 10)
	if err != nil || len(page) != 1 || page[0].ID != "b" {
		t.Fatalf("first page: %+v, %v", page, err)
	}
	cursor := page[0].Seq

	seqA, err := repos.AlertRepo.Append(c, models.AlertRecord{ID: "a", OccurredAt: t1, Target: models.ToEmail, Breach: models.TooLow})
	if err != nil {
		t.Fatalf("Append a: %v", err)
	}
	if seqA <= seqB {
		t.Fatalf("seq must grow with inserts: a=%d b=%d", seqA, seqB)
	}

	page, err = repos.AlertRepo.ListAfter(c, cursor, 10)
	if err != nil {
		t.Fatalf("ListAfter: %v", err)
	}
	if len(page) != 1 || page[0].ID != "a" || page[0].Seq != seqA {
		t.Fatalf("earlier-stamped record committed later must be returned, got %+v", page)
	}

	if last, _ = repos.AlertRepo.LastSeq(c); last != seqA {
		t.Fatalf("LastSeq: want %d, got %d", seqA, last)
	}
	if page, _ = repos.AlertRepo.ListAfter(c, seqA, 10); len(page) != 0 {
		t.Fatalf("nothing should follow the last seq, got %+v", page)
	}
}
