package tm30

import (
	"strings"
	"testing"
)

func testPeople() []Person {
	return []Person{
		{
			NameAndSurname: "MAIJA MEIKALAINEN",
			Nationality:    "FINNISH",
			PassportNumber: "FI1234567",
			TypeOfVisa:     "TOURIST",
			DateOfArrival:  "2024-01-30",
			ExpiryDate:     "2024-03-01",
			PointOfEntry:   "BKK",
			PeriodOfStay:   "2024-01-30 to 2024-02-02",
			Relationship:   "PRIMARY",
		},
		{
			NameAndSurname: "CHILD ONE",
			Relationship:   "CHILD",
			PeriodOfStay:   "2024-01-30 to 2024-02-02",
		},
	}
}

func TestRender(t *testing.T) {
	var buf strings.Builder
	err := Render(&buf, testPeople(), FormOptions{
		PropertyName: "SkyCave Residence",
		Signatory:    "R. Scovell",
		PadRows:      true,
	})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"NAME OF ALIENS IN RESIDENCE",
		"บัญชีรายชื่อคนต่างด้าวที่พักอาศัย",
		"MAIJA MEIKALAINEN",
		"CHILD ONE",
		"2024-01-30 to 2024-02-02",
		"SkyCave Residence",
		"R. Scovell",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered form is missing %q", want)
		}
	}
	// two data rows padded with eight blank ones.
	if got := strings.Count(out, "empty-row"); got != 8 {
		t.Errorf("blank rows = %d, want 8", got)
	}
	// the blank rows continue the numbering.
	if !strings.Contains(out, "<td>10</td>") {
		t.Errorf("padded rows do not reach sequence number 10")
	}
}

func TestRender_noPadding(t *testing.T) {
	var buf strings.Builder
	if err := Render(&buf, testPeople(), FormOptions{}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(buf.String(), "empty-row") {
		t.Errorf("padding rendered although disabled")
	}
}

func TestRender_padsBeyondTenOnlyWhenConfigured(t *testing.T) {
	people := make([]Person, 12)
	for i := range people {
		people[i] = Person{NameAndSurname: "GUEST", Relationship: "PRIMARY"}
	}
	var buf strings.Builder
	if err := Render(&buf, people, FormOptions{PadRows: true}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(buf.String(), "empty-row") {
		t.Errorf("blank rows added although table already exceeds the minimum")
	}
}
