package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestColorWireFormat(t *testing.T) {
	data, err := json.Marshal(Color{Hue: 0.5, Saturation: 0.25, Brightness: 1})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if got := string(data); got != `{"h":0.5,"s":0.25,"b":1}` {
		t.Errorf("color json = %s", got)
	}

	var c Color
	if err := json.Unmarshal([]byte(`{"h":0.9,"s":0.7,"b":0.8}`), &c); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if c.Hue != 0.9 || c.Saturation != 0.7 || c.Brightness != 0.8 {
		t.Errorf("color = %+v", c)
	}
}

func TestLoggedHabitTimestampIsRFC3339(t *testing.T) {
	event := LoggedHabit{
		UserID:    "you",
		HabitName: "Daily run",
		Timestamp: time.Date(2024, 3, 22, 10, 30, 0, 0, time.UTC),
	}
	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"timestamp":"2024-03-22T10:30:00Z"`) {
		t.Errorf("event json = %s", data)
	}
}

func TestUserIdentityIsIDNotName(t *testing.T) {
	a := User{ID: "1", Name: "Same"}
	b := User{ID: "2", Name: "Same"}
	c := User{ID: "1", Name: "Renamed"}

	if a.Equal(b) {
		t.Error("users with distinct ids compare equal")
	}
	if !a.Equal(c) {
		t.Error("renaming a user changed its identity")
	}
}

func TestUserOptionalFields(t *testing.T) {
	var u User
	if err := json.Unmarshal([]byte(`{"id":"ben","name":"Ben"}`), &u); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if u.Color != nil || u.Bio != nil {
		t.Errorf("absent optionals decoded non-nil: %+v", u)
	}
}

func TestHabitOrderingAndIdentity(t *testing.T) {
	apple := Habit{Name: "Apple", Category: Category{Name: "A"}}
	zebra := Habit{Name: "Zebra", Category: Category{Name: "Z"}}

	if !apple.Less(zebra) || zebra.Less(apple) {
		t.Error("habits do not order by name")
	}
	if apple.ID() != "Apple" {
		t.Errorf("habit id = %q", apple.ID())
	}

	recategorized := Habit{Name: "Apple", Category: Category{Name: "B"}}
	if !apple.Equal(recategorized) {
		t.Error("habit identity should ignore the category")
	}
}

func TestHabitCountDelegatesToHabit(t *testing.T) {
	hc := HabitCount{Habit: Habit{Name: "Meditation"}, Count: 5}
	other := HabitCount{Habit: Habit{Name: "Meditation"}, Count: 9}

	if hc.ID() != "Meditation" {
		t.Errorf("id = %q", hc.ID())
	}
	if !hc.Equal(other) {
		t.Error("counts with the same habit should compare equal")
	}
	if hc.Less(other) || other.Less(hc) {
		t.Error("equal habits should not order before each other")
	}
}
