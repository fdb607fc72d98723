package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/naebu/naebu_backend/internal/models"
)

func TestCSVEmptyListYieldsHeaderOnly(t *testing.T) {
	payload, err := CSV(nil)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(payload, []byte{0xEF, 0xBB, 0xBF}) {
		t.Fatal("expected UTF-8 BOM prefix")
	}
	lines := strings.Split(strings.TrimSpace(string(payload[3:])), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header-only payload, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "id,이름,연락처") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
}

func TestCSVEscapesDelimiters(t *testing.T) {
	created := time.Date(2025, 11, 10, 9, 30, 0, 0, time.UTC)
	in := []models.Estimate{
		{
			ID:        "est-1",
			Name:      `Kim, "민수"`,
			Phone:     "010-1234-5678",
			Budget:    "3000만원",
			Space:     "아파트",
			Message:   "첫 줄\n둘째 줄",
			Status:    models.StatusInProgress,
			Memo:      "전화, 재확인 필요",
			Read:      true,
			CreatedAt: created,
		},
		{
			ID:        "est-2",
			Name:      "Lee",
			Phone:     "010-0000-0000",
			Status:    models.StatusPending,
			CreatedAt: created.Add(-time.Hour),
		},
	}

	payload, err := CSV(in)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	// The payload must survive a round trip through a CSV reader.
	rd := csv.NewReader(bytes.NewReader(payload[3:]))
	records, err := rd.ReadAll()
	if err != nil {
		t.Fatalf("payload is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(records))
	}

	row := records[1]
	if row[1] != `Kim, "민수"` {
		t.Fatalf("name not escaped correctly: %q", row[1])
	}
	if row[5] != "첫 줄\n둘째 줄" {
		t.Fatalf("message not escaped correctly: %q", row[5])
	}
	if row[7] != "전화, 재확인 필요" {
		t.Fatalf("memo not escaped correctly: %q", row[7])
	}
	if row[8] != "Y" || records[2][8] != "N" {
		t.Fatalf("read flags wrong: %q %q", row[8], records[2][8])
	}
	if row[9] != "2025-11-10 09:30:00" {
		t.Fatalf("timestamp format wrong: %q", row[9])
	}
}
