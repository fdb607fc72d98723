// Package export renders inquiry lists as downloadable tabular payloads.
package export

import (
	"bytes"
	"encoding/csv"

	"github.com/naebu/naebu_backend/internal/models"
)

var csvHeader = []string{
	"id", "이름", "연락처", "예산", "공간", "문의내용", "상태", "메모", "열람", "접수일시",
}

// CSV renders the inquiries as delimited text. Pure function of its input:
// either the full payload is returned or an error, never a truncated one.
// Zero inquiries yields a header-only payload.
func CSV(estimates []models.Estimate) ([]byte, error) {
	var buf bytes.Buffer
	// BOM so Excel detects UTF-8 and the Korean columns survive.
	buf.Write([]byte{0xEF, 0xBB, 0xBF})

	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, e := range estimates {
		read := "N"
		if e.Read {
			read = "Y"
		}
		record := []string{
			e.ID,
			e.Name,
			e.Phone,
			e.Budget,
			e.Space,
			e.Message,
			e.Status,
			e.Memo,
			read,
			e.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
